package domain

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// FlightInfo is the read-only view of a flight exposed by listings and the
// flights cache.
type FlightInfo struct {
	RouteCode string `json:"route_code"`
	Date      string `json:"date"`
	Aircraft  string `json:"aircraft"`
	Capacity  int    `json:"capacity"`
	SeatsSold int    `json:"seats_sold"`
	Completed bool   `json:"completed"`
}

// Flight is one scheduled occurrence of a route, flown by one aircraft on
// one calendar date. It owns the ticket inventory for that occurrence and
// enforces the capacity invariant: tickets sold never exceed the aircraft's
// seat capacity.
//
// The mutex makes the capacity check and the ticket issuance one atomic
// unit per flight, so concurrent sales for the same flight cannot both pass
// the check when their combined quantity would overflow it. Sales on
// different flights do not contend.
type Flight struct {
	route    Route
	aircraft Aircraft
	date     string

	mu        sync.Mutex
	tickets   []*Ticket
	completed bool
}

func NewFlight(route Route, date string, aircraft Aircraft) *Flight {
	return &Flight{route: route, aircraft: aircraft, date: date}
}

func (f *Flight) Route() Route       { return f.route }
func (f *Flight) Aircraft() Aircraft { return f.aircraft }
func (f *Flight) Date() string       { return f.date }

func (f *Flight) Key() FlightKey {
	return FlightKey{RouteCode: f.route.Code, Date: f.date}
}

func (f *Flight) SeatsSold() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickets)
}

func (f *Flight) Completed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.completed
}

// SellTo issues quantity tickets to the client at the fare the route
// charges for this flight's date and the client's classification. The sale
// is all or nothing: if fewer than quantity seats remain, the flight is
// left untouched and ErrFlightOversold is returned. Returns the total
// amount charged.
func (f *Flight) SellTo(c *Client, quantity int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.tickets)+quantity > f.aircraft.Capacity {
		return 0, fmt.Errorf("%w: route %s date %s has %d seats left, requested %d",
			ErrFlightOversold, f.route.Code, f.date, f.aircraft.Capacity-len(f.tickets), quantity)
	}

	fare, err := f.route.Fare(c.Classification(), f.date)
	if err != nil {
		return 0, err
	}

	batch := make([]*Ticket, 0, quantity)
	for i := 0; i < quantity; i++ {
		t := &Ticket{
			Code:      uuid.NewString(),
			RouteCode: f.route.Code,
			Date:      f.date,
			ClientID:  c.ID(),
			Fare:      fare,
		}
		f.tickets = append(f.tickets, t)
		batch = append(batch, t)
	}
	c.add(batch)

	return fare * quantity, nil
}

// Complete marks the flight as flown. Marking an already completed flight
// is a no-op. Returns the ids of the clients holding tickets on the flight
// (in issuance order, deduplicated) and whether the flight was already
// completed.
func (f *Flight) Complete() (clientIDs []string, already bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.completed {
		return nil, true
	}
	f.completed = true

	seen := make(map[string]bool)
	for _, t := range f.tickets {
		if !seen[t.ClientID] {
			seen[t.ClientID] = true
			clientIDs = append(clientIDs, t.ClientID)
		}
	}
	return clientIDs, false
}

// Info snapshots the flight for listings.
func (f *Flight) Info() FlightInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FlightInfo{
		RouteCode: f.route.Code,
		Date:      f.date,
		Aircraft:  f.aircraft.Name,
		Capacity:  f.aircraft.Capacity,
		SeatsSold: len(f.tickets),
		Completed: f.completed,
	}
}

// Restore wires a persisted ticket into both the flight inventory and the
// owning client, preserving its fare and used flag. The loader validates
// the snapshot structurally before calling this, so no capacity check or
// fare computation happens here.
func Restore(f *Flight, c *Client, t *Ticket) {
	f.mu.Lock()
	f.tickets = append(f.tickets, t)
	f.mu.Unlock()
	c.restore(t)
}

// RestoreCompleted sets the completed flag on a flight rebuilt from a
// snapshot.
func RestoreCompleted(f *Flight) {
	f.mu.Lock()
	f.completed = true
	f.mu.Unlock()
}
