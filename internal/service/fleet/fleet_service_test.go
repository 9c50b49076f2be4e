package fleet

import (
	"context"
	"testing"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) RegisterAircraft(name string, capacity int) error {
	args := m.Called(name, capacity)
	return args.Error(0)
}

func (m *MockInventory) RegisterRoute(code, origin, destination string, fares domain.FareTable) error {
	args := m.Called(code, origin, destination, fares)
	return args.Error(0)
}

func (m *MockInventory) RegisterClient(id string, cl domain.Classification) error {
	args := m.Called(id, cl)
	return args.Error(0)
}

func (m *MockInventory) Aircraft() []domain.Aircraft {
	args := m.Called()
	return args.Get(0).([]domain.Aircraft)
}

func (m *MockInventory) Routes() []domain.Route {
	args := m.Called()
	return args.Get(0).([]domain.Route)
}

func (m *MockInventory) Clients() []domain.ClientInfo {
	args := m.Called()
	return args.Get(0).([]domain.ClientInfo)
}

func TestFleetService_RegisterAircraft(t *testing.T) {
	mockInv := &MockInventory{}
	service := NewFleetService(mockInv)
	ctx := context.Background()

	mockInv.On("RegisterAircraft", "A1", 150).Return(nil).Once()
	assert.NoError(t, service.RegisterAircraft(ctx, "A1", 150))

	mockInv.On("RegisterAircraft", "A1", 150).Return(domain.ErrDuplicateAircraft).Once()
	assert.ErrorIs(t, service.RegisterAircraft(ctx, "A1", 150), domain.ErrDuplicateAircraft)

	mockInv.AssertExpectations(t)
}

func TestFleetService_RegisterClient_DefaultsToRegular(t *testing.T) {
	mockInv := &MockInventory{}
	service := NewFleetService(mockInv)
	ctx := context.Background()

	mockInv.On("RegisterClient", "C1", domain.Classification{Kind: domain.ClientRegular}).Return(nil).Once()

	err := service.RegisterClient(ctx, RegisterClientInput{ID: "C1"})
	require.NoError(t, err)
	mockInv.AssertExpectations(t)
}

func TestFleetService_RegisterRoute(t *testing.T) {
	mockInv := &MockInventory{}
	service := NewFleetService(mockInv)
	ctx := context.Background()

	fares := domain.FareTable{Low: 100, High: 300}
	mockInv.On("RegisterRoute", "R1", "BOG", "MDE", fares).Return(nil).Once()

	err := service.RegisterRoute(ctx, RegisterRouteInput{
		Code: "R1", Origin: "BOG", Destination: "MDE", Fares: fares,
	})
	require.NoError(t, err)
	mockInv.AssertExpectations(t)
}

func TestFleetService_Listings(t *testing.T) {
	mockInv := &MockInventory{}
	service := NewFleetService(mockInv)
	ctx := context.Background()

	aircraft := []domain.Aircraft{{Name: "A1", Capacity: 150}}
	routes := []domain.Route{{Code: "R1"}}
	clients := []domain.ClientInfo{{ID: "C1", Kind: domain.ClientRegular}}

	mockInv.On("Aircraft").Return(aircraft).Once()
	mockInv.On("Routes").Return(routes).Once()
	mockInv.On("Clients").Return(clients).Once()

	gotAircraft, err := service.ListAircraft(ctx)
	require.NoError(t, err)
	assert.Equal(t, aircraft, gotAircraft)

	gotRoutes, err := service.ListRoutes(ctx)
	require.NoError(t, err)
	assert.Equal(t, routes, gotRoutes)

	gotClients, err := service.ListClients(ctx)
	require.NoError(t, err)
	assert.Equal(t, clients, gotClients)
}
