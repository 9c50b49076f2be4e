package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/service/tickets"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTicketUseCase is a mock implementation of tickets.TicketUseCase
type MockTicketUseCase struct {
	mock.Mock
}

func (m *MockTicketUseCase) Sell(ctx context.Context, input tickets.SellInput) (*tickets.SellResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tickets.SellResult), args.Error(1)
}

func (m *MockTicketUseCase) PendingBalance(ctx context.Context, clientID string) (int, error) {
	args := m.Called(ctx, clientID)
	return args.Int(0), args.Error(1)
}

func (m *MockTicketUseCase) List(ctx context.Context) ([]domain.Ticket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func TestTicketHandler_sell(t *testing.T) {
	mockService := &MockTicketUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"client_id":"C1","date":"2024-03-10","route_code":"R1","quantity":2}`
	c.Request = httptest.NewRequest("POST", "/tickets", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := tickets.SellInput{ClientID: "C1", Date: "2024-03-10", RouteCode: "R1", Quantity: 2}
	result := &tickets.SellResult{ClientID: "C1", RouteCode: "R1", Date: "2024-03-10", Quantity: 2, UnitFare: 100, Amount: 200}
	mockService.On("Sell", c.Request.Context(), input).Return(result, nil)

	handler.sell(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"amount":200`)
	mockService.AssertExpectations(t)
}

func TestTicketHandler_sell_Oversold(t *testing.T) {
	mockService := &MockTicketUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"client_id":"C1","date":"2024-03-10","route_code":"R1","quantity":3}`
	c.Request = httptest.NewRequest("POST", "/tickets", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := tickets.SellInput{ClientID: "C1", Date: "2024-03-10", RouteCode: "R1", Quantity: 3}
	mockService.On("Sell", c.Request.Context(), input).Return(nil, domain.ErrFlightOversold)

	handler.sell(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

func TestTicketHandler_balance(t *testing.T) {
	mockService := &MockTicketUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "client", Value: "C1"}}
	c.Request = httptest.NewRequest("GET", "/tickets/balance/C1", nil)

	mockService.On("PendingBalance", c.Request.Context(), "C1").Return(300, nil)

	handler.balance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pending_balance":300`)
	mockService.AssertExpectations(t)
}

func TestTicketHandler_balance_UnknownClient(t *testing.T) {
	mockService := &MockTicketUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "client", Value: "ghost"}}
	c.Request = httptest.NewRequest("GET", "/tickets/balance/ghost", nil)

	mockService.On("PendingBalance", c.Request.Context(), "ghost").Return(0, domain.ErrUnknownClient)

	handler.balance(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestTicketHandler_list(t *testing.T) {
	mockService := &MockTicketUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/tickets", nil)

	list := []domain.Ticket{{Code: "t-1", RouteCode: "R1", Date: "2024-03-10", ClientID: "C1", Fare: 100}}
	mockService.On("List", c.Request.Context()).Return(list, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
