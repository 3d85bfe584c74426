package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestBearerAttachedWhenTokenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(srv.URL, WithTokenSource(func() string { return "abc123" }))
	if err := client.Get(context.Background(), "/thing", nil, "failed"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
}

func TestNoBearerWhenTokenEmpty(t *testing.T) {
	var gotAuth string
	var hasHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(srv.URL, WithTokenSource(func() string { return "" }))
	if err := client.Get(context.Background(), "/thing", nil, "failed"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hasHeader {
		t.Fatalf("Authorization header should be absent, got %q", gotAuth)
	}
}

func TestUnauthorizedFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()

	var hookFired int
	client := New(srv.URL, WithUnauthorizedHook(func() { hookFired++ }))

	err := client.Get(context.Background(), "/thing", nil, "failed")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("Status = %d", apiErr.Status)
	}
	if apiErr.Message != "token expired" {
		t.Fatalf("Message = %q, server body should win", apiErr.Message)
	}
	if hookFired != 1 {
		t.Fatalf("hook fired %d times, want 1", hookFired)
	}
}

func TestUnauthorizedFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(srv.URL)
	err := client.Get(context.Background(), "/thing", nil, "failed")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T", err)
	}
	if apiErr.Message != UnauthorizedMessage {
		t.Fatalf("Message = %q, want the fixed unauthorized message", apiErr.Message)
	}
}

func TestServerErrorMessagePrecedence(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message wins", `{"message":"hotel not found","title":"Not Found"}`, "hotel not found"},
		{"title next", `{"title":"Not Found"}`, "Not Found"},
		{"fallback last", `{}`, "Failed to fetch hotel"},
		{"unparseable body", `<html>oops</html>`, "Failed to fetch hotel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := New(srv.URL)
			err := client.Get(context.Background(), "/thing", nil, "Failed to fetch hotel")
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("err = %T", err)
			}
			if apiErr.Message != tt.want {
				t.Fatalf("Message = %q, want %q", apiErr.Message, tt.want)
			}
			if apiErr.Status != http.StatusNotFound {
				t.Fatalf("Status = %d", apiErr.Status)
			}
		})
	}
}

func TestTimeoutNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := New(srv.URL, WithTimeout(20*time.Millisecond))
	err := client.Get(context.Background(), "/slow", nil, "failed")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T: %v", err, err)
	}
	if !apiErr.IsTimeout {
		t.Fatalf("IsTimeout = false: %+v", apiErr)
	}
	if apiErr.Message != TimeoutErrorMessage {
		t.Fatalf("Message = %q", apiErr.Message)
	}
	if apiErr.Status != 0 {
		t.Fatalf("Status = %d, want 0 for no response", apiErr.Status)
	}
}

func TestNetworkErrorNormalized(t *testing.T) {
	// A server that is already closed guarantees a connection refusal.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(srv.URL)
	err := client.Get(context.Background(), "/thing", nil, "failed")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T: %v", err, err)
	}
	if !apiErr.IsNetworkError {
		t.Fatalf("IsNetworkError = false: %+v", apiErr)
	}
	if apiErr.Message != NetworkErrorMessage {
		t.Fatalf("Message = %q", apiErr.Message)
	}
}

func TestMalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": `))
	}))
	defer srv.Close()

	client := New(srv.URL)
	var out struct {
		Name string `json:"name"`
	}
	err := client.Get(context.Background(), "/thing", &out, "failed")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T", err)
	}
	if apiErr.Message != InvalidFormatErrorMessage {
		t.Fatalf("Message = %q", apiErr.Message)
	}
}

func TestDeleteIgnoresBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(srv.URL)
	if err := client.Delete(context.Background(), "/thing/1", "failed"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestPostSetsContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	var out struct {
		OK bool `json:"ok"`
	}
	if err := client.Post(context.Background(), "/thing", map[string]string{"a": "b"}, &out, "failed"); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if !out.OK {
		t.Fatal("response not decoded")
	}
}
