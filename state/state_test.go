// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/database"
	"github.com/luxfi/database/memdb"
	"github.com/luxfi/ids"

	"github.com/luxfi/surety/status"
)

func newTestState(t *testing.T, db database.Database) State {
	s, err := New(db)
	require.NoError(t, err)
	return s
}

func TestStateAirlinePersistence(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	s := newTestState(t, db)

	airlineID := ids.GenerateTestShortID()
	_, err := s.GetAirline(airlineID)
	require.ErrorIs(err, database.ErrNotFound)

	airline := &Airline{
		Code:     "AL1",
		Accepted: true,
		Funded:   true,
		Votes:    3,
	}
	s.PutAirline(airlineID, airline)
	s.AddAirlineCode("AL1", airlineID)
	require.NoError(s.Commit())

	// Reload from the same database.
	s = newTestState(t, db)

	got, err := s.GetAirline(airlineID)
	require.NoError(err)
	require.Equal(airline, got)

	gotID, err := s.GetAirlineByCode("AL1")
	require.NoError(err)
	require.Equal(airlineID, gotID)

	_, err = s.GetAirlineByCode("AL2")
	require.ErrorIs(err, database.ErrNotFound)
}

func TestStateActiveAirlines(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	s := newTestState(t, db)

	num, err := s.NumActiveAirlines()
	require.NoError(err)
	require.Zero(num)

	first := ids.GenerateTestShortID()
	second := ids.GenerateTestShortID()
	s.AddActiveAirline(first)
	s.AddActiveAirline(second)
	// The list is append-only and keeps duplicates.
	s.AddActiveAirline(first)
	require.NoError(s.Commit())

	s = newTestState(t, db)

	active, err := s.GetActiveAirlines()
	require.NoError(err)
	require.Equal([]ids.ShortID{first, second, first}, active)

	num, err = s.NumActiveAirlines()
	require.NoError(err)
	require.Equal(3, num)
}

func TestStateVotes(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	s := newTestState(t, db)

	voter := ids.GenerateTestShortID()
	candidate := ids.GenerateTestShortID()

	voted, err := s.HasVoted(voter, candidate)
	require.NoError(err)
	require.False(voted)

	s.AddVote(voter, candidate)

	voted, err = s.HasVoted(voter, candidate)
	require.NoError(err)
	require.True(voted)

	// The reverse pair is a distinct vote.
	voted, err = s.HasVoted(candidate, voter)
	require.NoError(err)
	require.False(voted)

	require.NoError(s.Commit())
	s = newTestState(t, db)

	voted, err = s.HasVoted(voter, candidate)
	require.NoError(err)
	require.True(voted)
}

func TestStateFlightPersistence(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	s := newTestState(t, db)

	flight := &Flight{
		AirlineID: ids.GenerateTestShortID(),
		Number:    "FL100",
		Timestamp: 1700000000,
		Status:    status.Unknown,
	}
	flightKey := flight.Key()

	_, err := s.GetFlight(flightKey)
	require.ErrorIs(err, database.ErrNotFound)

	s.PutFlight(flightKey, flight)
	require.NoError(s.Commit())

	s = newTestState(t, db)

	got, err := s.GetFlight(flightKey)
	require.NoError(err)
	require.Equal(flight, got)
	require.Equal(flightKey, got.Key())
}

func TestStateSuretyPersistence(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	s := newTestState(t, db)

	purchaser := ids.GenerateTestShortID()
	flightKey := ids.GenerateTestID()
	surety := &Surety{
		Passenger: ids.GenerateTestShortID(),
		FlightKey: flightKey,
		Premium:   100,
	}

	_, err := s.GetSurety(purchaser, flightKey)
	require.ErrorIs(err, database.ErrNotFound)

	s.PutSurety(purchaser, surety)
	s.AddInsuredPurchaser(flightKey, purchaser)
	s.AddPurchaserFlight(purchaser, flightKey)
	require.NoError(s.Commit())

	s = newTestState(t, db)

	got, err := s.GetSurety(purchaser, flightKey)
	require.NoError(err)
	require.Equal(surety, got)

	insured, err := s.GetInsuredPurchasers(flightKey)
	require.NoError(err)
	require.Equal([]ids.ShortID{purchaser}, insured)

	flightKeys, err := s.GetPurchaserFlights(purchaser)
	require.NoError(err)
	require.Equal([]ids.ID{flightKey}, flightKeys)
}

func TestStateTreasury(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	s := newTestState(t, db)

	treasury, err := s.GetTreasury()
	require.NoError(err)
	require.Zero(treasury)

	s.SetTreasury(12_000_000)
	require.NoError(s.Commit())

	s = newTestState(t, db)

	treasury, err = s.GetTreasury()
	require.NoError(err)
	require.Equal(uint64(12_000_000), treasury)
}

func TestStateInitializedFlag(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	s := newTestState(t, db)

	initialized, err := s.IsInitialized()
	require.NoError(err)
	require.False(initialized)

	s.SetInitialized()
	require.NoError(s.Commit())

	s = newTestState(t, db)

	initialized, err = s.IsInitialized()
	require.NoError(err)
	require.True(initialized)
}

func TestStateAbortDropsChanges(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	s := newTestState(t, db)

	airlineID := ids.GenerateTestShortID()
	s.PutAirline(airlineID, &Airline{Code: "AL1"})
	s.AddAirlineCode("AL1", airlineID)
	s.Abort()
	require.NoError(s.Commit())

	s = newTestState(t, db)

	_, err := s.GetAirline(airlineID)
	require.ErrorIs(err, database.ErrNotFound)
	_, err = s.GetAirlineByCode("AL1")
	require.ErrorIs(err, database.ErrNotFound)
}

func TestFlightKeyDeterminism(t *testing.T) {
	require := require.New(t)

	airlineID := ids.GenerateTestShortID()
	key := FlightKey(airlineID, "FL100", 1700000000)

	require.Equal(key, FlightKey(airlineID, "FL100", 1700000000))
	require.NotEqual(key, FlightKey(airlineID, "FL101", 1700000000))
	require.NotEqual(key, FlightKey(airlineID, "FL100", 1700000001))
	require.NotEqual(key, FlightKey(ids.GenerateTestShortID(), "FL100", 1700000000))
}
