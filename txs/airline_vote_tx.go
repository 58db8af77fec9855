// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/luxfi/ids"
)

var (
	_ UnsignedTx = (*AirlineVoteTx)(nil)

	errZeroRequiredVotes = errors.New("required votes must be positive")
)

// AirlineVoteTx records one enabled airline's vote to accept a candidate
// airline. The vote only counts once per (voter, candidate) pair; the
// candidate becomes accepted when its vote count reaches RequiredVotes.
type AirlineVoteTx struct {
	// Caller is the enabled airline casting the vote.
	Caller ids.ShortID `serialize:"true" json:"caller"`
	// Airline is the candidate being voted for.
	Airline ids.ShortID `serialize:"true" json:"airline"`
	// Code must match the candidate's registered code.
	Code string `serialize:"true" json:"code"`
	// RequiredVotes is the acceptance threshold for this vote round.
	RequiredVotes uint32 `serialize:"true" json:"requiredVotes"`
}

// SyntacticVerify returns nil iff [tx] is well formed
func (tx *AirlineVoteTx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.Caller == ids.ShortEmpty:
		return ErrEmptyIdentifier
	case tx.Airline == ids.ShortEmpty:
		return ErrEmptyIdentifier
	case tx.Code == "":
		return ErrEmptyIdentifier
	case tx.RequiredVotes == 0:
		return errZeroRequiredVotes
	}
	return nil
}

func (tx *AirlineVoteTx) Visit(visitor Visitor) error {
	return visitor.AirlineVoteTx(tx)
}
