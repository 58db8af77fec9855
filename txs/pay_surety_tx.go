// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/ids"
)

var _ UnsignedTx = (*PaySuretyTx)(nil)

// PaySuretyTx withdraws a credited payout. The surety is settled before the
// transfer to the beneficiary is issued, so a repeated withdrawal observes an
// already-settled surety and fails.
type PaySuretyTx struct {
	// Caller is the purchaser that holds the surety.
	Caller ids.ShortID `serialize:"true" json:"caller"`
	// FlightKey identifies the insured flight.
	FlightKey ids.ID `serialize:"true" json:"flightKey"`
}

// SyntacticVerify returns nil iff [tx] is well formed
func (tx *PaySuretyTx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.Caller == ids.ShortEmpty:
		return ErrEmptyIdentifier
	case tx.FlightKey == ids.Empty:
		return ErrEmptyIdentifier
	}
	return nil
}

func (tx *PaySuretyTx) Visit(visitor Visitor) error {
	return visitor.PaySuretyTx(tx)
}
