package flights

import (
	"context"
	"log"
	"time"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/kafka"
)

// Inventory is the slice of the airline aggregate the flight service needs.
type Inventory interface {
	ScheduleFlight(date, routeCode, aircraftName string) (domain.FlightInfo, error)
	MarkFlightCompleted(date, routeCode string) ([]domain.Settlement, error)
	Flights() []domain.FlightInfo
	Flight(routeCode, date string) (domain.FlightInfo, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.FlightInfo, error)
	SetFlights(ctx context.Context, flights []domain.FlightInfo) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type FlightUseCase interface {
	Schedule(ctx context.Context, date, routeCode, aircraftName string) (domain.FlightInfo, error)
	List(ctx context.Context) ([]domain.FlightInfo, error)
	Get(ctx context.Context, routeCode, date string) (domain.FlightInfo, error)
	Complete(ctx context.Context, date, routeCode string) ([]domain.Settlement, error)
}

type FlightService struct {
	inv                Inventory
	cache              Cache
	producer           Producer
	eventsTopic        string
	notificationsTopic string
}

type FlightServiceOption func(*FlightService)

func WithNotificationsTopic(topic string) FlightServiceOption {
	return func(s *FlightService) {
		s.notificationsTopic = topic
	}
}

func NewFlightService(inv Inventory, cache Cache, producer Producer, eventsTopic string, opts ...FlightServiceOption) *FlightService {
	service := &FlightService{
		inv:         inv,
		cache:       cache,
		producer:    producer,
		eventsTopic: eventsTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *FlightService) Schedule(ctx context.Context, date, routeCode, aircraftName string) (domain.FlightInfo, error) {
	info, err := s.inv.ScheduleFlight(date, routeCode, aircraftName)
	if err != nil {
		return domain.FlightInfo{}, err
	}

	s.invalidate(ctx)
	s.publish(ctx, kafka.InventoryEvent{
		Type:      kafka.EventFlightScheduled,
		RouteCode: info.RouteCode,
		Date:      info.Date,
		Aircraft:  info.Aircraft,
		At:        time.Now(),
	})
	return info, nil
}

func (s *FlightService) List(ctx context.Context) ([]domain.FlightInfo, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights := s.inv.Flights()
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) Get(ctx context.Context, routeCode, date string) (domain.FlightInfo, error) {
	return s.inv.Flight(routeCode, date)
}

func (s *FlightService) Complete(ctx context.Context, date, routeCode string) ([]domain.Settlement, error) {
	settlements, err := s.inv.MarkFlightCompleted(date, routeCode)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	if len(settlements) > 0 {
		s.publish(ctx, kafka.InventoryEvent{
			Type:        kafka.EventFlightCompleted,
			RouteCode:   routeCode,
			Date:        date,
			Settlements: settlements,
			At:          time.Now(),
		})
	}
	return settlements, nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

func (s *FlightService) publish(ctx context.Context, event kafka.InventoryEvent) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, event.Key(), event); err != nil {
		log.Printf("WARNING: failed to publish %s event for flight %s %s: %v", event.Type, event.RouteCode, event.Date, err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, event.Key(), event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for flight %s %s: %v", event.Type, event.RouteCode, event.Date, err)
		}
	}
}

var _ FlightUseCase = (*FlightService)(nil)
