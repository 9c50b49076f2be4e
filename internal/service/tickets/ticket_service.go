package tickets

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/kafka"
)

// ErrSaleInProgress is returned when another instance holds the sale lock
// for the same flight occurrence.
var ErrSaleInProgress = errors.New("another sale for this flight is in progress")

// Inventory is the slice of the airline aggregate the ticket service needs.
type Inventory interface {
	SellTickets(clientID, date, routeCode string, quantity int) (int, error)
	PendingBalance(clientID string) (int, error)
	Tickets() []domain.Ticket
}

// Locker serializes sales for one flight occurrence across instances of
// the same logical inventory. In-process exclusion is already guaranteed
// by the flight itself.
type Locker interface {
	AcquireSaleLock(ctx context.Context, key domain.FlightKey, ttl time.Duration) (bool, error)
	ReleaseSaleLock(ctx context.Context, key domain.FlightKey) error
}

type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type TicketUseCase interface {
	Sell(ctx context.Context, input SellInput) (*SellResult, error)
	PendingBalance(ctx context.Context, clientID string) (int, error)
	List(ctx context.Context) ([]domain.Ticket, error)
}

type SellInput struct {
	ClientID  string `json:"client_id"`
	Date      string `json:"date"`
	RouteCode string `json:"route_code"`
	Quantity  int    `json:"quantity"`
}

type SellResult struct {
	ClientID  string `json:"client_id"`
	RouteCode string `json:"route_code"`
	Date      string `json:"date"`
	Quantity  int    `json:"quantity"`
	UnitFare  int    `json:"unit_fare"`
	Amount    int    `json:"amount"`
}

type TicketService struct {
	inv         Inventory
	locker      Locker
	cache       Cache
	producer    Producer
	eventsTopic string
	lockTTL     time.Duration
}

func NewTicketService(inv Inventory, locker Locker, cache Cache, producer Producer, eventsTopic string, lockTTL time.Duration) *TicketService {
	return &TicketService{
		inv:         inv,
		locker:      locker,
		cache:       cache,
		producer:    producer,
		eventsTopic: eventsTopic,
		lockTTL:     lockTTL,
	}
}

// Sell charges a client for quantity tickets on one flight occurrence. The
// sale is all or nothing; on success the amount charged is quantity times
// the fare locked at sale time.
func (s *TicketService) Sell(ctx context.Context, input SellInput) (*SellResult, error) {
	if input.Quantity <= 0 {
		return nil, errors.New("ticket quantity must be positive")
	}
	if input.ClientID == "" {
		return nil, errors.New("client id is required")
	}

	key := domain.FlightKey{RouteCode: input.RouteCode, Date: input.Date}
	if s.locker != nil {
		ok, err := s.locker.AcquireSaleLock(ctx, key, s.lockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrSaleInProgress
		}
		defer func() {
			_ = s.locker.ReleaseSaleLock(ctx, key)
		}()
	}

	amount, err := s.inv.SellTickets(input.ClientID, input.Date, input.RouteCode, input.Quantity)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	s.publish(ctx, kafka.InventoryEvent{
		Type:      kafka.EventTicketsSold,
		RouteCode: input.RouteCode,
		Date:      input.Date,
		ClientID:  input.ClientID,
		Quantity:  input.Quantity,
		Amount:    amount,
		At:        time.Now(),
	})

	return &SellResult{
		ClientID:  input.ClientID,
		RouteCode: input.RouteCode,
		Date:      input.Date,
		Quantity:  input.Quantity,
		UnitFare:  amount / input.Quantity,
		Amount:    amount,
	}, nil
}

func (s *TicketService) PendingBalance(ctx context.Context, clientID string) (int, error) {
	return s.inv.PendingBalance(clientID)
}

func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	return s.inv.Tickets(), nil
}

func (s *TicketService) publish(ctx context.Context, event kafka.InventoryEvent) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, event.Key(), event); err != nil {
		log.Printf("WARNING: failed to publish %s event for flight %s %s: %v", event.Type, event.RouteCode, event.Date, err)
	}
}

var _ TicketUseCase = (*TicketService)(nil)
