// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/ids"
)

var _ UnsignedTx = (*BuySuretyTx)(nil)

// BuySuretyTx is the value-bearing transaction that purchases insurance
// against a registered flight. The purchaser (Caller) holds the surety; the
// Passenger is the beneficiary the payout is transferred to and may differ
// from the purchaser. One surety per (purchaser, flight).
type BuySuretyTx struct {
	// Caller is the purchaser paying the premium.
	Caller ids.ShortID `serialize:"true" json:"caller"`
	// Passenger is the payout beneficiary.
	Passenger ids.ShortID `serialize:"true" json:"passenger"`
	// FlightKey identifies the insured flight.
	FlightKey ids.ID `serialize:"true" json:"flightKey"`
	// Premium is the attached payment.
	Premium uint64 `serialize:"true" json:"premium"`
}

// SyntacticVerify returns nil iff [tx] is well formed
func (tx *BuySuretyTx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.Caller == ids.ShortEmpty:
		return ErrEmptyIdentifier
	case tx.Passenger == ids.ShortEmpty:
		return ErrEmptyIdentifier
	case tx.FlightKey == ids.Empty:
		return ErrEmptyIdentifier
	case tx.Premium == 0:
		return ErrInvalidAmount
	}
	return nil
}

func (tx *BuySuretyTx) Visit(visitor Visitor) error {
	return visitor.BuySuretyTx(tx)
}
