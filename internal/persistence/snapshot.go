package persistence

import "github.com/Domenick1991/airinventory/internal/domain"

// Snapshot is the plain structural form of the whole airline state. It
// captures every entity and relationship; all invariants already hold in
// the stored data, so a loader only validates structure and never
// recomputes fares.
type Snapshot struct {
	Aircraft []domain.Aircraft `json:"aircraft" yaml:"aircraft"`
	Routes   []domain.Route    `json:"routes" yaml:"routes"`
	Clients  []ClientRecord    `json:"clients" yaml:"clients"`
	Flights  []FlightRecord    `json:"flights" yaml:"flights"`
	Tickets  []domain.Ticket   `json:"tickets" yaml:"tickets"`
}

type ClientRecord struct {
	ID       string            `json:"id" yaml:"id"`
	Kind     domain.ClientKind `json:"kind" yaml:"kind"`
	Discount float64           `json:"discount,omitempty" yaml:"discount,omitempty"`
}

type FlightRecord struct {
	RouteCode string `json:"route_code" yaml:"route_code"`
	Date      string `json:"date" yaml:"date"`
	Aircraft  string `json:"aircraft" yaml:"aircraft"`
	Completed bool   `json:"completed" yaml:"completed"`
}
