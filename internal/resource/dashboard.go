package resource

import (
	"context"
	"sync"

	"github.com/voyagedesk/voyagedesk/internal/domain"
)

// DashboardSummary is the joined result of the dashboard's fetches. The
// individual queries race freely; Load waits for all of them so the view
// renders a consistent combined snapshot.
type DashboardSummary struct {
	Destinations []domain.Destination
	Hotels       []domain.Hotel
	Flights      []domain.Flight
	Bookings     []domain.Booking
}

type Dashboard struct {
	Destinations *Destinations
	Hotels       *Hotels
	Flights      *Flights
	Bookings     *Bookings
}

// Load fetches every list the dashboard needs and joins the results.
// The first error wins; later ones only land in their query's state.
func (d *Dashboard) Load(ctx context.Context) (*DashboardSummary, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		summary  DashboardSummary
	)

	record := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		out, err := d.Destinations.FetchList(ctx)
		record(err)
		mu.Lock()
		summary.Destinations = out
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		out, err := d.Hotels.FetchList(ctx)
		record(err)
		mu.Lock()
		summary.Hotels = out
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		out, err := d.Flights.FetchList(ctx)
		record(err)
		mu.Lock()
		summary.Flights = out
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		out, err := d.Bookings.FetchList(ctx)
		record(err)
		mu.Lock()
		summary.Bookings = out
		mu.Unlock()
	}()

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return &summary, nil
}
