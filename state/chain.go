// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/luxfi/ids"
)

// Chain collects all methods to read and mutate the ledger state. Both the
// durable [State] and the in-memory [Diff] implement it; transactions always
// execute against a Diff so that a failed precondition leaves no observable
// change.
//
// Getters return database.ErrNotFound for missing records. Setters never
// fail; encoding and storage errors surface when the state is committed.
type Chain interface {
	// GetAirline returns the airline record for [airlineID].
	GetAirline(airlineID ids.ShortID) (*Airline, error)

	// PutAirline adds or overwrites the airline record for [airlineID].
	PutAirline(airlineID ids.ShortID, airline *Airline)

	// GetAirlineByCode returns the identity registered under [code].
	// Airline codes are unique; uniqueness is enforced at insertion.
	GetAirlineByCode(code string) (ids.ShortID, error)

	// AddAirlineCode claims [code] for [airlineID].
	AddAirlineCode(code string, airlineID ids.ShortID)

	// GetActiveAirlines returns the ordered list of airlines that became
	// both accepted and funded, in qualification order. The list is
	// append-only and may contain duplicates.
	GetActiveAirlines() ([]ids.ShortID, error)

	// NumActiveAirlines returns the length of the active airline list.
	NumActiveAirlines() (int, error)

	// AddActiveAirline appends [airlineID] to the active airline list.
	AddActiveAirline(airlineID ids.ShortID)

	// HasVoted returns whether [voter] already voted for [candidate].
	HasVoted(voter, candidate ids.ShortID) (bool, error)

	// AddVote marks that [voter] voted for [candidate].
	AddVote(voter, candidate ids.ShortID)

	// GetFlight returns the flight record for [flightKey].
	GetFlight(flightKey ids.ID) (*Flight, error)

	// PutFlight adds or overwrites the flight record for [flightKey].
	PutFlight(flightKey ids.ID, flight *Flight)

	// GetInsuredPurchasers returns the purchasers holding a surety against
	// [flightKey], in purchase order.
	GetInsuredPurchasers(flightKey ids.ID) ([]ids.ShortID, error)

	// AddInsuredPurchaser adds [purchaser] to the insured-purchaser set of
	// [flightKey].
	AddInsuredPurchaser(flightKey ids.ID, purchaser ids.ShortID)

	// GetSurety returns the surety purchased by [purchaser] against
	// [flightKey].
	GetSurety(purchaser ids.ShortID, flightKey ids.ID) (*Surety, error)

	// PutSurety adds or overwrites the surety purchased by [purchaser]
	// against the surety's flight key.
	PutSurety(purchaser ids.ShortID, surety *Surety)

	// GetPurchaserFlights returns the flight keys [purchaser] holds
	// sureties against, in purchase order.
	GetPurchaserFlights(purchaser ids.ShortID) ([]ids.ID, error)

	// AddPurchaserFlight appends [flightKey] to the purchaser's policy
	// index.
	AddPurchaserFlight(purchaser ids.ShortID, flightKey ids.ID)

	// GetTreasury returns the contract's available balance.
	GetTreasury() (uint64, error)

	// SetTreasury sets the contract's available balance.
	SetTreasury(amount uint64)
}
