// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/ids"
)

var _ UnsignedTx = (*FundAirlineTx)(nil)

// FundAirlineTx is the value-bearing transaction by which a registered
// airline stakes its membership. The attached amount is credited to the
// treasury. Once an airline is both funded and accepted it may register
// flights and vote.
type FundAirlineTx struct {
	// Caller is the airline funding its own membership.
	Caller ids.ShortID `serialize:"true" json:"caller"`
	// Code must match the caller's registered code.
	Code string `serialize:"true" json:"code"`
	// Amount is the attached stake.
	Amount uint64 `serialize:"true" json:"amount"`
}

// SyntacticVerify returns nil iff [tx] is well formed
func (tx *FundAirlineTx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.Caller == ids.ShortEmpty:
		return ErrEmptyIdentifier
	case tx.Code == "":
		return ErrEmptyIdentifier
	case tx.Amount == 0:
		return ErrInvalidAmount
	}
	return nil
}

func (tx *FundAirlineTx) Visit(visitor Visitor) error {
	return visitor.FundAirlineTx(tx)
}
