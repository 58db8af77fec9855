// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/luxfi/surety/status"

	"github.com/luxfi/ids"
)

var (
	_ UnsignedTx = (*RegisterFlightTx)(nil)

	errZeroTimestamp = errors.New("flight timestamp must be positive")
)

// RegisterFlightTx registers a flight for insurance purchase. The flight key
// is derived deterministically from (airline, number, timestamp); registering
// the same triple twice is rejected.
type RegisterFlightTx struct {
	// Caller must be an enabled airline and is recorded as the flight's
	// operator.
	Caller ids.ShortID `serialize:"true" json:"caller"`
	// Number is the flight designator, e.g. "FL100".
	Number string `serialize:"true" json:"number"`
	// Timestamp is the scheduled departure, in unix seconds.
	Timestamp int64 `serialize:"true" json:"timestamp"`
	// Status is the initial status code, normally status.Unknown.
	Status status.Code `serialize:"true" json:"status"`
}

// SyntacticVerify returns nil iff [tx] is well formed
func (tx *RegisterFlightTx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.Caller == ids.ShortEmpty:
		return ErrEmptyIdentifier
	case tx.Number == "":
		return ErrEmptyIdentifier
	case tx.Timestamp <= 0:
		return errZeroTimestamp
	}
	return tx.Status.Valid()
}

func (tx *RegisterFlightTx) Visit(visitor Visitor) error {
	return visitor.RegisterFlightTx(tx)
}
