package domain

import "errors"

var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrUnknownAircraft   = errors.New("aircraft not found")
	ErrUnknownRoute      = errors.New("route not found")
	ErrUnknownClient     = errors.New("client not found")
	ErrUnknownFlight     = errors.New("flight not found")
	ErrDuplicateAircraft = errors.New("aircraft already registered")
	ErrDuplicateRoute    = errors.New("route already registered")
	ErrDuplicateClient   = errors.New("client already registered")
	ErrAircraftConflict  = errors.New("aircraft already scheduled on this date")
	ErrFlightOversold    = errors.New("not enough seats left on the flight")
)
