package airline

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Domenick1991/airinventory/internal/domain"
)

// Airline is the aggregate root of the inventory: it owns all aircraft,
// routes, flights and clients, and every cross-entity lookup goes through
// it.
//
// The aggregate mutex guards the registries and the flight list, so a
// schedule call performs its conflict check and insertion atomically with
// respect to other schedule calls. Ticket sales lock only the flight they
// touch (see domain.Flight), so sales on different flights run
// concurrently.
type Airline struct {
	mu        sync.RWMutex
	aircraft  map[string]domain.Aircraft
	routes    map[string]domain.Route
	clients   map[string]*domain.Client
	flights   []*domain.Flight
	byKey     map[domain.FlightKey]*domain.Flight
	busy      map[string]map[string]bool // aircraft name -> set of dates
	order     []string                   // aircraft registration order
	routeKeys []string                   // route registration order
}

func New() *Airline {
	return &Airline{
		aircraft: make(map[string]domain.Aircraft),
		routes:   make(map[string]domain.Route),
		clients:  make(map[string]*domain.Client),
		byKey:    make(map[domain.FlightKey]*domain.Flight),
		busy:     make(map[string]map[string]bool),
	}
}

func (a *Airline) RegisterAircraft(name string, capacity int) error {
	if name == "" {
		return errors.New("aircraft name is required")
	}
	if capacity <= 0 {
		return errors.New("aircraft capacity must be positive")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.aircraft[name]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateAircraft, name)
	}
	a.aircraft[name] = domain.Aircraft{Name: name, Capacity: capacity}
	a.order = append(a.order, name)
	return nil
}

func (a *Airline) RegisterRoute(code, origin, destination string, fares domain.FareTable) error {
	if code == "" {
		return errors.New("route code is required")
	}
	if fares.Low <= 0 || fares.High <= 0 {
		return errors.New("route fares must be positive")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.routes[code]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateRoute, code)
	}
	a.routes[code] = domain.Route{Code: code, Origin: origin, Destination: destination, Fares: fares}
	a.routeKeys = append(a.routeKeys, code)
	return nil
}

func (a *Airline) RegisterClient(id string, cl domain.Classification) error {
	if id == "" {
		return errors.New("client id is required")
	}
	if cl.Kind != domain.ClientRegular && cl.Kind != domain.ClientCorporate {
		return fmt.Errorf("unknown client kind %q", cl.Kind)
	}
	if cl.Discount < 0 || cl.Discount >= 1 {
		return errors.New("client discount must be in [0, 1)")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.clients[id]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateClient, id)
	}
	a.clients[id] = domain.NewClient(id, cl)
	return nil
}

// ScheduleFlight validates, in order: the date is a real calendar date, the
// aircraft exists, the route exists, and the aircraft is free on that date.
// The first violated condition determines the error. On success a new
// flight with zero tickets is appended to the inventory.
func (a *Airline) ScheduleFlight(date, routeCode, aircraftName string) (domain.FlightInfo, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return domain.FlightInfo{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	aircraft, ok := a.aircraft[aircraftName]
	if !ok {
		return domain.FlightInfo{}, fmt.Errorf("%w: %s", domain.ErrUnknownAircraft, aircraftName)
	}
	route, ok := a.routes[routeCode]
	if !ok {
		return domain.FlightInfo{}, fmt.Errorf("%w: %s", domain.ErrUnknownRoute, routeCode)
	}
	if a.busy[aircraftName][date] {
		return domain.FlightInfo{}, fmt.Errorf("%w: %s on %s", domain.ErrAircraftConflict, aircraftName, date)
	}

	f := domain.NewFlight(route, date, aircraft)
	a.insertFlight(f)
	return f.Info(), nil
}

// insertFlight appends a flight and indexes it. Caller holds the aggregate
// lock. The (route, date) index keeps the first flight scheduled for a key,
// matching lookup semantics for sales and completion.
func (a *Airline) insertFlight(f *domain.Flight) {
	a.flights = append(a.flights, f)
	key := f.Key()
	if _, ok := a.byKey[key]; !ok {
		a.byKey[key] = f
	}
	name := f.Aircraft().Name
	if a.busy[name] == nil {
		a.busy[name] = make(map[string]bool)
	}
	a.busy[name][f.Date()] = true
}

// SellTickets sells quantity tickets on the flight identified by route code
// and date to the given client. The sale is all or nothing and the amount
// charged is quantity times the fare the route yields for the flight date
// and the client classification.
func (a *Airline) SellTickets(clientID, date, routeCode string, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, errors.New("ticket quantity must be positive")
	}

	a.mu.RLock()
	client, ok := a.clients[clientID]
	if !ok {
		a.mu.RUnlock()
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownClient, clientID)
	}
	if _, ok := a.routes[routeCode]; !ok {
		a.mu.RUnlock()
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownRoute, routeCode)
	}
	flight, ok := a.byKey[domain.FlightKey{RouteCode: routeCode, Date: date}]
	a.mu.RUnlock()
	if !ok {
		return 0, fmt.Errorf("%w: route %s on %s", domain.ErrUnknownFlight, routeCode, date)
	}

	// Flights are never removed, so the flight's own lock is enough from
	// here on.
	return flight.SellTo(client, quantity)
}

// MarkFlightCompleted marks the flight as flown and settles the pending
// tickets every booked client holds on that flight. Completing an already
// completed flight is a no-op. Only tickets of that occurrence are
// consumed; pending tickets on other flights keep counting toward client
// balances.
func (a *Airline) MarkFlightCompleted(date, routeCode string) ([]domain.Settlement, error) {
	a.mu.RLock()
	flight, ok := a.byKey[domain.FlightKey{RouteCode: routeCode, Date: date}]
	a.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: route %s on %s", domain.ErrUnknownFlight, routeCode, date)
	}

	clientIDs, already := flight.Complete()
	if already {
		return nil, nil
	}

	key := flight.Key()
	settlements := make([]domain.Settlement, 0, len(clientIDs))
	for _, id := range clientIDs {
		a.mu.RLock()
		client := a.clients[id]
		a.mu.RUnlock()
		if client == nil {
			continue
		}
		settlements = append(settlements, client.Consume(key))
	}
	return settlements, nil
}

// PendingBalance sums the fares of the client's unused tickets.
func (a *Airline) PendingBalance(clientID string) (int, error) {
	a.mu.RLock()
	client, ok := a.clients[clientID]
	a.mu.RUnlock()
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownClient, clientID)
	}
	return client.PendingBalance(), nil
}

// Aircraft lists registered aircraft in registration order.
func (a *Airline) Aircraft() []domain.Aircraft {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]domain.Aircraft, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, a.aircraft[name])
	}
	return out
}

// Routes lists registered routes in registration order.
func (a *Airline) Routes() []domain.Route {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]domain.Route, 0, len(a.routeKeys))
	for _, code := range a.routeKeys {
		out = append(out, a.routes[code])
	}
	return out
}

// Clients lists registered clients with their pending balances.
func (a *Airline) Clients() []domain.ClientInfo {
	a.mu.RLock()
	clients := make([]*domain.Client, 0, len(a.clients))
	for _, c := range a.clients {
		clients = append(clients, c)
	}
	a.mu.RUnlock()

	out := make([]domain.ClientInfo, 0, len(clients))
	for _, c := range clients {
		out = append(out, c.Info())
	}
	sortClientInfos(out)
	return out
}

// Flights lists flights in schedule order.
func (a *Airline) Flights() []domain.FlightInfo {
	a.mu.RLock()
	flights := make([]*domain.Flight, len(a.flights))
	copy(flights, a.flights)
	a.mu.RUnlock()

	out := make([]domain.FlightInfo, 0, len(flights))
	for _, f := range flights {
		out = append(out, f.Info())
	}
	return out
}

// Flight looks up one flight occurrence by route code and date.
func (a *Airline) Flight(routeCode, date string) (domain.FlightInfo, error) {
	a.mu.RLock()
	flight, ok := a.byKey[domain.FlightKey{RouteCode: routeCode, Date: date}]
	a.mu.RUnlock()
	if !ok {
		return domain.FlightInfo{}, fmt.Errorf("%w: route %s on %s", domain.ErrUnknownFlight, routeCode, date)
	}
	return flight.Info(), nil
}

// Tickets lists every issued ticket, flattened across clients. Used flags
// are read under each client's lock, so a completed batch is either fully
// visible or not started.
func (a *Airline) Tickets() []domain.Ticket {
	a.mu.RLock()
	clients := make([]*domain.Client, 0, len(a.clients))
	for _, c := range a.clients {
		clients = append(clients, c)
	}
	a.mu.RUnlock()
	sortClients(clients)

	var out []domain.Ticket
	for _, c := range clients {
		out = append(out, c.Tickets()...)
	}
	return out
}
