package airline

import (
	"fmt"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/persistence"
)

// Snapshot captures the whole inventory in the plain structural form the
// persistence codecs understand. Flights are captured before tickets: a
// completion racing the capture is then seen at worst as a not-completed
// flight with used tickets, never as a completed flight whose tickets
// still look pending.
func (a *Airline) Snapshot() *persistence.Snapshot {
	snap := &persistence.Snapshot{
		Aircraft: a.Aircraft(),
		Routes:   a.Routes(),
	}
	for _, info := range a.Clients() {
		snap.Clients = append(snap.Clients, persistence.ClientRecord{
			ID:       info.ID,
			Kind:     info.Kind,
			Discount: info.Discount,
		})
	}
	for _, info := range a.Flights() {
		snap.Flights = append(snap.Flights, persistence.FlightRecord{
			RouteCode: info.RouteCode,
			Date:      info.Date,
			Aircraft:  info.Aircraft,
			Completed: info.Completed,
		})
	}
	snap.Tickets = a.Tickets()
	return snap
}

// FromSnapshot rebuilds an airline from its structural form. Validation is
// purely structural: every reference must resolve, ticket codes must be
// unique, dates must parse, and no flight may carry more tickets than its
// aircraft seats. Fares are taken from the snapshot as stored, never
// recomputed.
func FromSnapshot(snap *persistence.Snapshot) (*Airline, error) {
	a := New()

	for _, ac := range snap.Aircraft {
		if err := a.RegisterAircraft(ac.Name, ac.Capacity); err != nil {
			return nil, fmt.Errorf("snapshot aircraft %q: %w", ac.Name, err)
		}
	}
	for _, r := range snap.Routes {
		if err := a.RegisterRoute(r.Code, r.Origin, r.Destination, r.Fares); err != nil {
			return nil, fmt.Errorf("snapshot route %q: %w", r.Code, err)
		}
	}
	for _, c := range snap.Clients {
		if err := a.RegisterClient(c.ID, domain.Classification{Kind: c.Kind, Discount: c.Discount}); err != nil {
			return nil, fmt.Errorf("snapshot client %q: %w", c.ID, err)
		}
	}

	completed := make(map[domain.FlightKey]bool)
	for _, fr := range snap.Flights {
		if _, err := a.ScheduleFlight(fr.Date, fr.RouteCode, fr.Aircraft); err != nil {
			return nil, fmt.Errorf("snapshot flight %s %s: %w", fr.RouteCode, fr.Date, err)
		}
		if fr.Completed {
			completed[domain.FlightKey{RouteCode: fr.RouteCode, Date: fr.Date}] = true
		}
	}

	codes := make(map[string]bool)
	counts := make(map[domain.FlightKey]int)
	for _, t := range snap.Tickets {
		if t.Code == "" || codes[t.Code] {
			return nil, fmt.Errorf("snapshot ticket %q: duplicate or empty code", t.Code)
		}
		codes[t.Code] = true

		key := t.Flight()
		flight, ok := a.byKey[key]
		if !ok {
			return nil, fmt.Errorf("snapshot ticket %s: %w: route %s on %s", t.Code, domain.ErrUnknownFlight, t.RouteCode, t.Date)
		}
		client, ok := a.clients[t.ClientID]
		if !ok {
			return nil, fmt.Errorf("snapshot ticket %s: %w: %s", t.Code, domain.ErrUnknownClient, t.ClientID)
		}

		counts[key]++
		if counts[key] > flight.Aircraft().Capacity {
			return nil, fmt.Errorf("snapshot flight %s %s: tickets exceed capacity %d",
				t.RouteCode, t.Date, flight.Aircraft().Capacity)
		}

		ticket := t
		domain.Restore(flight, client, &ticket)
	}

	// A snapshot taken mid-completion may carry a completed flight whose
	// tickets were not yet consumed. Completing the flight again is a no-op,
	// so settle those tickets here or they would stay pending forever.
	for key := range completed {
		domain.RestoreCompleted(a.byKey[key])
		for _, client := range a.clients {
			client.Consume(key)
		}
	}

	return a, nil
}
