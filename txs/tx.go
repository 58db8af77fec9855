// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package txs defines the transaction types of the surety VM. Every mutating
// operation of the insurance scheme is expressed as one of these types and
// executed by a Visitor.
package txs

import "errors"

var (
	ErrNilTx = errors.New("tx is nil")

	// ErrEmptyIdentifier is returned when a caller, airline, passenger, or
	// airline code field is missing.
	ErrEmptyIdentifier = errors.New("empty identifier")

	// ErrInvalidAmount is returned when a value-bearing field is outside
	// its allowed range.
	ErrInvalidAmount = errors.New("invalid amount")
)

// UnsignedTx is a transaction of the surety VM. The Caller carried by each
// concrete type is the authenticated identity supplied by the hosting
// execution environment; it is validated before the transaction body runs.
type UnsignedTx interface {
	// SyntacticVerify attempts to verify this transaction without any
	// provided state.
	SyntacticVerify() error

	// Visit calls [visitor] with this transaction's concrete type
	Visit(visitor Visitor) error
}
