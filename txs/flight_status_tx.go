// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/surety/status"

	"github.com/luxfi/ids"
)

var _ UnsignedTx = (*FlightStatusTx)(nil)

// FlightStatusTx records the resolved status of a registered flight. The
// status code is produced by the oracle collaborator; this VM only validates
// that the code is defined. A transition to the configured delay code
// triggers the credit sweep over the flight's sureties.
type FlightStatusTx struct {
	// Caller is the identity submitting the resolved status.
	Caller ids.ShortID `serialize:"true" json:"caller"`
	// FlightKey identifies the flight being updated.
	FlightKey ids.ID `serialize:"true" json:"flightKey"`
	// Status is the resolved status code.
	Status status.Code `serialize:"true" json:"status"`
}

// SyntacticVerify returns nil iff [tx] is well formed
func (tx *FlightStatusTx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.Caller == ids.ShortEmpty:
		return ErrEmptyIdentifier
	case tx.FlightKey == ids.Empty:
		return ErrEmptyIdentifier
	}
	return tx.Status.Valid()
}

func (tx *FlightStatusTx) Visit(visitor Visitor) error {
	return visitor.FlightStatusTx(tx)
}
