package domain

import "sync"

type ClientKind string

const (
	ClientRegular   ClientKind = "REGULAR"
	ClientCorporate ClientKind = "CORPORATE"
)

// Classification is the fare-relevant part of a client: regular clients pay
// the table fare, corporate clients get a configured discount off it.
type Classification struct {
	Kind     ClientKind `json:"kind"`
	Discount float64    `json:"discount,omitempty"`
}

// ClientInfo is the read-only view of a client exposed by listings.
type ClientInfo struct {
	ID             string     `json:"id"`
	Kind           ClientKind `json:"kind"`
	Discount       float64    `json:"discount,omitempty"`
	PendingTickets int        `json:"pending_tickets"`
	PendingBalance int        `json:"pending_balance"`
}

// Client is a ticket buyer. Its tickets are partitioned into pending
// (unused, counted toward the owed balance) and used, with the pending side
// grouped by flight occurrence so that completing one flight settles only
// the tickets sold for that flight.
type Client struct {
	id             string
	classification Classification

	mu      sync.Mutex
	pending map[FlightKey][]*Ticket
	used    []*Ticket
}

func NewClient(id string, cl Classification) *Client {
	return &Client{
		id:             id,
		classification: cl,
		pending:        make(map[FlightKey][]*Ticket),
	}
}

func (c *Client) ID() string { return c.id }

func (c *Client) Classification() Classification { return c.classification }

// add attaches a freshly issued batch to the pending side. Called by
// Flight.SellTo with the batch already counted against the flight capacity.
func (c *Client) add(batch []*Ticket) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range batch {
		key := t.Flight()
		c.pending[key] = append(c.pending[key], t)
	}
}

// PendingBalance sums the fares of all tickets not yet used.
func (c *Client) PendingBalance() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, batch := range c.pending {
		for _, t := range batch {
			total += t.Fare
		}
	}
	return total
}

// Consume settles the client's pending tickets for one flight occurrence:
// each ticket is marked used and moved to the used side. Tickets on other
// flights are untouched. Consuming a flight the client holds no pending
// tickets for is a no-op.
func (c *Client) Consume(key FlightKey) Settlement {
	c.mu.Lock()
	defer c.mu.Unlock()
	settled := Settlement{ClientID: c.id}
	for _, t := range c.pending[key] {
		t.Used = true
		c.used = append(c.used, t)
		settled.Tickets++
		settled.Amount += t.Fare
	}
	delete(c.pending, key)
	return settled
}

// Tickets returns value copies of all of the client's tickets, used ones
// last.
func (c *Client) Tickets() []Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Ticket, 0, len(c.used))
	for _, batch := range c.pending {
		for _, t := range batch {
			out = append(out, *t)
		}
	}
	for _, t := range c.used {
		out = append(out, *t)
	}
	return out
}

// Info snapshots the client for listings.
func (c *Client) Info() ClientInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	info := ClientInfo{ID: c.id, Kind: c.classification.Kind, Discount: c.classification.Discount}
	for _, batch := range c.pending {
		for _, t := range batch {
			info.PendingTickets++
			info.PendingBalance += t.Fare
		}
	}
	return info
}

// restore re-attaches a persisted ticket without touching its fare or flags.
func (c *Client) restore(t *Ticket) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.Used {
		c.used = append(c.used, t)
		return
	}
	key := t.Flight()
	c.pending[key] = append(c.pending[key], t)
}
