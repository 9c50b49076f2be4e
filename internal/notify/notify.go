package notify

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airinventory/internal/kafka"
)

// Sender turns inventory events into client notifications. Delivery is a
// stand-in for a real mail gateway.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.InventoryEvent) error {
	switch event.Type {
	case kafka.EventTicketsSold:
		fmt.Printf("notify %s: %d ticket(s) on %s %s, charged %d\n",
			event.ClientID, event.Quantity, event.RouteCode, event.Date, event.Amount)
	case kafka.EventFlightCompleted:
		for _, settled := range event.Settlements {
			fmt.Printf("notify %s: flight %s %s completed, %d ticket(s) used (%d)\n",
				settled.ClientID, event.RouteCode, event.Date, settled.Tickets, settled.Amount)
		}
	default:
		fmt.Printf("notify: %s for flight %s %s\n", event.Type, event.RouteCode, event.Date)
	}
	return nil
}
