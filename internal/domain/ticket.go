package domain

// FlightKey identifies one flight occurrence: the unit of capacity
// enforcement and of ticket consumption.
type FlightKey struct {
	RouteCode string `json:"route_code"`
	Date      string `json:"date"`
}

// Ticket is an issued sale record. The fare is fixed at issuance and never
// recomputed; the used flag flips false->true exactly once, when the flight
// the ticket belongs to is completed.
type Ticket struct {
	Code      string `json:"code" yaml:"code"`
	RouteCode string `json:"route_code" yaml:"route_code"`
	Date      string `json:"date" yaml:"date"`
	ClientID  string `json:"client_id" yaml:"client_id"`
	Fare      int    `json:"fare" yaml:"fare"`
	Used      bool   `json:"used" yaml:"used"`
}

func (t Ticket) Flight() FlightKey {
	return FlightKey{RouteCode: t.RouteCode, Date: t.Date}
}

// Settlement summarizes the tickets of one client consumed by a flight
// completion.
type Settlement struct {
	ClientID string `json:"client_id"`
	Tickets  int    `json:"tickets"`
	Amount   int    `json:"amount"`
}
