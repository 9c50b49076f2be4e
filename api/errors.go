package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/service/tickets"
	"github.com/gin-gonic/gin"
)

// statusFor maps the inventory's caller-visible error kinds onto HTTP
// status codes. Everything else is a bad request.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownAircraft),
		errors.Is(err, domain.ErrUnknownRoute),
		errors.Is(err, domain.ErrUnknownClient),
		errors.Is(err, domain.ErrUnknownFlight):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateAircraft),
		errors.Is(err, domain.ErrDuplicateRoute),
		errors.Is(err, domain.ErrDuplicateClient),
		errors.Is(err, domain.ErrAircraftConflict),
		errors.Is(err, domain.ErrFlightOversold),
		errors.Is(err, tickets.ErrSaleInProgress):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
