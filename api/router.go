package api

import (
	"github.com/Domenick1991/airinventory/internal/service/fleet"
	"github.com/Domenick1991/airinventory/internal/service/flights"
	"github.com/Domenick1991/airinventory/internal/service/tickets"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the inventory handlers onto a gin engine.
func NewRouter(fleetSvc fleet.FleetUseCase, flightSvc flights.FlightUseCase, ticketSvc tickets.TicketUseCase) *gin.Engine {
	router := gin.Default()

	fleetHandler := NewFleetHandler(fleetSvc)
	fleetHandler.RegisterAircraft(router.Group("/aircraft"))
	fleetHandler.RegisterRoutes(router.Group("/routes"))
	fleetHandler.RegisterClients(router.Group("/clients"))

	NewFlightHandler(flightSvc).Register(router.Group("/flights"))
	NewTicketHandler(ticketSvc).Register(router.Group("/tickets"))

	return router
}
