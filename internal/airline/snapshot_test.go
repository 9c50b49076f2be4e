package airline

import (
	"path/filepath"
	"testing"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAirlineForSnapshot(t *testing.T) *Airline {
	t.Helper()
	a := New()
	require.NoError(t, a.RegisterAircraft("A1", 4))
	require.NoError(t, a.RegisterAircraft("A2", 10))
	require.NoError(t, a.RegisterRoute("R1", "BOG", "MDE", domain.FareTable{Low: 100, High: 300}))
	require.NoError(t, a.RegisterRoute("R2", "MDE", "CTG", domain.FareTable{Low: 80, High: 160}))
	require.NoError(t, a.RegisterClient("C1", domain.Classification{Kind: domain.ClientRegular}))
	require.NoError(t, a.RegisterClient("ACME", domain.Classification{Kind: domain.ClientCorporate, Discount: 0.2}))

	_, err := a.ScheduleFlight("2024-03-10", "R1", "A1")
	require.NoError(t, err)
	_, err = a.ScheduleFlight("2024-07-01", "R2", "A2")
	require.NoError(t, err)

	_, err = a.SellTickets("C1", "2024-03-10", "R1", 2)
	require.NoError(t, err)
	_, err = a.SellTickets("ACME", "2024-07-01", "R2", 3)
	require.NoError(t, err)

	_, err = a.MarkFlightCompleted("2024-03-10", "R1")
	require.NoError(t, err)
	return a
}

func TestSnapshot_RoundTrip(t *testing.T) {
	for _, codec := range []persistence.Codec{persistence.JSON, persistence.YAML} {
		t.Run(codec.Name(), func(t *testing.T) {
			a := buildAirlineForSnapshot(t)

			path := filepath.Join(t.TempDir(), "airline."+codec.Name())
			require.NoError(t, persistence.SaveFile(path, codec, a.Snapshot()))

			snap, err := persistence.LoadFile(path, codec)
			require.NoError(t, err)

			restored, err := FromSnapshot(snap)
			require.NoError(t, err)

			// Balances survive without any fare recomputation.
			balance, err := restored.PendingBalance("ACME")
			require.NoError(t, err)
			assert.Equal(t, 384, balance) // 3 * (160 - 20%)

			balance, err = restored.PendingBalance("C1")
			require.NoError(t, err)
			assert.Equal(t, 0, balance, "used tickets stay used after restore")

			flights := restored.Flights()
			require.Len(t, flights, 2)
			assert.True(t, flights[0].Completed)
			assert.Equal(t, 2, flights[0].SeatsSold)
			assert.False(t, flights[1].Completed)
			assert.Equal(t, 3, flights[1].SeatsSold)

			assert.Len(t, restored.Tickets(), 5)

			// Capacity is still enforced on the restored inventory.
			_, err = restored.SellTickets("C1", "2024-07-01", "R2", 8)
			assert.ErrorIs(t, err, domain.ErrFlightOversold)
		})
	}
}

func TestFromSnapshot_SettlesTicketsOnCompletedFlight(t *testing.T) {
	// Shape a capture can produce when it races a completion: the flight is
	// already flagged completed but its tickets were not yet consumed.
	snap := &persistence.Snapshot{
		Aircraft: []domain.Aircraft{{Name: "A1", Capacity: 4}},
		Routes: []domain.Route{{
			Code: "R1", Origin: "BOG", Destination: "MDE",
			Fares: domain.FareTable{Low: 100, High: 300},
		}},
		Clients: []persistence.ClientRecord{{ID: "C1", Kind: domain.ClientRegular}},
		Flights: []persistence.FlightRecord{{RouteCode: "R1", Date: "2024-03-10", Aircraft: "A1", Completed: true}},
		Tickets: []domain.Ticket{
			{Code: "t-1", RouteCode: "R1", Date: "2024-03-10", ClientID: "C1", Fare: 100},
		},
	}

	restored, err := FromSnapshot(snap)
	require.NoError(t, err)

	// The restore settles the stranded ticket; nothing stays pending on a
	// flight that can never be completed again.
	balance, err := restored.PendingBalance("C1")
	require.NoError(t, err)
	assert.Equal(t, 0, balance)

	tickets := restored.Tickets()
	require.Len(t, tickets, 1)
	assert.True(t, tickets[0].Used)

	settlements, err := restored.MarkFlightCompleted("2024-03-10", "R1")
	require.NoError(t, err)
	assert.Empty(t, settlements)
}

func TestFromSnapshot_StructuralValidation(t *testing.T) {
	base := buildAirlineForSnapshot(t).Snapshot()

	t.Run("unknown flight ref", func(t *testing.T) {
		snap := *base
		snap.Tickets = append([]domain.Ticket{}, base.Tickets...)
		snap.Tickets = append(snap.Tickets, domain.Ticket{
			Code: "orphan", RouteCode: "R9", Date: "2024-03-10", ClientID: "C1", Fare: 100,
		})
		_, err := FromSnapshot(&snap)
		assert.ErrorIs(t, err, domain.ErrUnknownFlight)
	})

	t.Run("unknown client ref", func(t *testing.T) {
		snap := *base
		snap.Tickets = append([]domain.Ticket{}, base.Tickets...)
		snap.Tickets = append(snap.Tickets, domain.Ticket{
			Code: "orphan", RouteCode: "R1", Date: "2024-03-10", ClientID: "ghost", Fare: 100,
		})
		_, err := FromSnapshot(&snap)
		assert.ErrorIs(t, err, domain.ErrUnknownClient)
	})

	t.Run("duplicate ticket code", func(t *testing.T) {
		snap := *base
		snap.Tickets = append([]domain.Ticket{}, base.Tickets...)
		snap.Tickets = append(snap.Tickets, snap.Tickets[0])
		_, err := FromSnapshot(&snap)
		assert.Error(t, err)
	})

	t.Run("tickets above capacity", func(t *testing.T) {
		snap := *base
		snap.Tickets = append([]domain.Ticket{}, base.Tickets...)
		for i := 0; i < 3; i++ {
			snap.Tickets = append(snap.Tickets, domain.Ticket{
				Code: "extra-" + string(rune('a'+i)), RouteCode: "R1", Date: "2024-03-10", ClientID: "C1", Fare: 100,
			})
		}
		_, err := FromSnapshot(&snap)
		assert.Error(t, err)
	})

	t.Run("conflicting flights", func(t *testing.T) {
		snap := *base
		snap.Flights = append([]persistence.FlightRecord{}, base.Flights...)
		snap.Flights = append(snap.Flights, persistence.FlightRecord{
			RouteCode: "R2", Date: "2024-03-10", Aircraft: "A1",
		})
		_, err := FromSnapshot(&snap)
		assert.ErrorIs(t, err, domain.ErrAircraftConflict)
	})
}
