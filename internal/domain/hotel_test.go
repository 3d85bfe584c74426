package domain

import (
	"reflect"
	"testing"
)

func TestParseAmenities(t *testing.T) {
	tests := []struct {
		name string
		wire string
		want Amenities
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "WiFi", Amenities{"WiFi"}},
		{"multiple with spaces", "WiFi, Pool ,  Gym", Amenities{"WiFi", "Pool", "Gym"}},
		{"empty entries dropped", "WiFi,,Pool,", Amenities{"WiFi", "Pool"}},
		{"only separators", ", ,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmenities(tt.wire)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseAmenities(%q) = %v, want %v", tt.wire, got, tt.want)
			}
		})
	}
}

func TestAmenitiesWireRoundTrip(t *testing.T) {
	a := Amenities{"WiFi", "Pool", "Room Service"}
	wire := a.Wire()
	if wire != "WiFi, Pool, Room Service" {
		t.Fatalf("Wire() = %q", wire)
	}
	if got := ParseAmenities(wire); !reflect.DeepEqual(got, a) {
		t.Fatalf("round trip = %v, want %v", got, a)
	}
}

func TestAmenitiesRemove(t *testing.T) {
	a := Amenities{"WiFi", "Pool", "wifi"}

	got := a.Remove(" WIFI ")
	want := Amenities{"Pool", "wifi"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Remove = %v, want %v", got, want)
	}

	// Removing an absent label leaves the list untouched.
	if got := a.Remove("Sauna"); !reflect.DeepEqual(got, a) {
		t.Fatalf("Remove(absent) = %v, want %v", got, a)
	}
}

func TestAmenitiesAddAndContains(t *testing.T) {
	var a Amenities
	a = a.Add("WiFi")
	a = a.Add("  ")
	a = a.Add(" Pool ")

	want := Amenities{"WiFi", "Pool"}
	if !reflect.DeepEqual(a, want) {
		t.Fatalf("after adds = %v, want %v", a, want)
	}
	if !a.Contains("pool") {
		t.Fatal("Contains should match case-insensitively")
	}
	if a.Contains("Gym") {
		t.Fatal("Contains reported an absent label")
	}
}
