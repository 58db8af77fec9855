// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/ids"
)

var _ UnsignedTx = (*RegisterAirlineTx)(nil)

// RegisterAirlineTx creates a new airline record. The caller must be an
// enabled airline. The new airline starts unfunded with zero votes;
// DirectAccept marks it accepted immediately, which is how members are added
// before the voting quorum is reached.
type RegisterAirlineTx struct {
	// Caller is the enabled airline registering the new member.
	Caller ids.ShortID `serialize:"true" json:"caller"`
	// Airline is the identity of the member being registered.
	Airline ids.ShortID `serialize:"true" json:"airline"`
	// Code is the unique airline code, e.g. "AL1".
	Code string `serialize:"true" json:"code"`
	// DirectAccept registers the airline as already accepted instead of
	// queued for votes.
	DirectAccept bool `serialize:"true" json:"directAccept"`
}

// SyntacticVerify returns nil iff [tx] is well formed
func (tx *RegisterAirlineTx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.Caller == ids.ShortEmpty:
		return ErrEmptyIdentifier
	case tx.Airline == ids.ShortEmpty:
		return ErrEmptyIdentifier
	case tx.Code == "":
		return ErrEmptyIdentifier
	}
	return nil
}

func (tx *RegisterAirlineTx) Visit(visitor Visitor) error {
	return visitor.RegisterAirlineTx(tx)
}
