package fleet

import (
	"context"

	"github.com/Domenick1991/airinventory/internal/domain"
)

// Inventory is the slice of the airline aggregate the fleet service needs.
type Inventory interface {
	RegisterAircraft(name string, capacity int) error
	RegisterRoute(code, origin, destination string, fares domain.FareTable) error
	RegisterClient(id string, cl domain.Classification) error
	Aircraft() []domain.Aircraft
	Routes() []domain.Route
	Clients() []domain.ClientInfo
}

type FleetUseCase interface {
	RegisterAircraft(ctx context.Context, name string, capacity int) error
	RegisterRoute(ctx context.Context, input RegisterRouteInput) error
	RegisterClient(ctx context.Context, input RegisterClientInput) error
	ListAircraft(ctx context.Context) ([]domain.Aircraft, error)
	ListRoutes(ctx context.Context) ([]domain.Route, error)
	ListClients(ctx context.Context) ([]domain.ClientInfo, error)
}

type RegisterRouteInput struct {
	Code        string           `json:"code"`
	Origin      string           `json:"origin"`
	Destination string           `json:"destination"`
	Fares       domain.FareTable `json:"fares"`
}

type RegisterClientInput struct {
	ID       string            `json:"id"`
	Kind     domain.ClientKind `json:"kind"`
	Discount float64           `json:"discount"`
}

type FleetService struct {
	inv Inventory
}

func NewFleetService(inv Inventory) *FleetService {
	return &FleetService{inv: inv}
}

func (s *FleetService) RegisterAircraft(ctx context.Context, name string, capacity int) error {
	return s.inv.RegisterAircraft(name, capacity)
}

func (s *FleetService) RegisterRoute(ctx context.Context, input RegisterRouteInput) error {
	return s.inv.RegisterRoute(input.Code, input.Origin, input.Destination, input.Fares)
}

func (s *FleetService) RegisterClient(ctx context.Context, input RegisterClientInput) error {
	kind := input.Kind
	if kind == "" {
		kind = domain.ClientRegular
	}
	return s.inv.RegisterClient(input.ID, domain.Classification{Kind: kind, Discount: input.Discount})
}

func (s *FleetService) ListAircraft(ctx context.Context) ([]domain.Aircraft, error) {
	return s.inv.Aircraft(), nil
}

func (s *FleetService) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	return s.inv.Routes(), nil
}

func (s *FleetService) ListClients(ctx context.Context) ([]domain.ClientInfo, error) {
	return s.inv.Clients(), nil
}

var _ FleetUseCase = (*FleetService)(nil)
