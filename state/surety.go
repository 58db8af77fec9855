// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/luxfi/ids"
)

// Surety is a passenger insurance policy against a single flight, keyed by
// (purchaser, flight key). Premium is fixed at purchase. Payout and Credited
// are stamped by the credit sweep when the flight is confirmed delayed and
// cleared again when the payout is withdrawn.
type Surety struct {
	// Passenger is the payout beneficiary. May differ from the purchaser.
	Passenger ids.ShortID `serialize:"true" json:"passenger"`

	// FlightKey identifies the insured flight.
	FlightKey ids.ID `serialize:"true" json:"flightKey"`

	// Premium is the amount paid at purchase.
	Premium uint64 `serialize:"true" json:"premium"`

	// Payout is the credited amount awaiting withdrawal. Zero unless
	// Credited.
	Payout uint64 `serialize:"true" json:"payout"`

	// Credited is set by the credit sweep and cleared at settlement.
	Credited bool `serialize:"true" json:"credited"`

	// Settled is set once the payout has been withdrawn. A settled surety
	// is skipped by later credit sweeps and can never pay out again.
	Settled bool `serialize:"true" json:"settled"`
}

// SuretyKey identifies a surety by its purchaser and insured flight.
type SuretyKey struct {
	Purchaser ids.ShortID
	FlightKey ids.ID
}

func (k SuretyKey) Bytes() []byte {
	bytes := make([]byte, ids.ShortIDLen+ids.IDLen)
	copy(bytes, k.Purchaser[:])
	copy(bytes[ids.ShortIDLen:], k.FlightKey[:])
	return bytes
}
