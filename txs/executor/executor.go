// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package executor implements the state-transition logic of the surety VM.
// Each transaction executes against a state.Diff; the caller applies the
// diff only when execution succeeds, so a failed precondition leaves no
// observable state change.
package executor

import (
	"github.com/luxfi/surety/state"
	"github.com/luxfi/surety/txs"

	"github.com/luxfi/ids"
)

var _ txs.Visitor = (*Executor)(nil)

// Transfer is a pending value transfer produced by a successful PaySuretyTx.
// The hosting VM issues it after the settling writes are in place.
type Transfer struct {
	To     ids.ShortID
	Amount uint64
}

// Executor executes one transaction against [State].
type Executor struct {
	*Backend
	State state.Diff

	// Transfer is set iff the executed transaction requires a value
	// transfer to be issued on success.
	Transfer *Transfer
}

// activateAirline appends [airlineID] to the active airline list. Both the
// funding-after-vote and vote-after-funding transitions land here, which can
// list the same airline twice; the duplicate is preserved unless deduping is
// configured.
func (e *Executor) activateAirline(airlineID ids.ShortID) error {
	if e.Config.DedupeActiveAirlines {
		active, err := e.State.GetActiveAirlines()
		if err != nil {
			return err
		}
		for _, id := range active {
			if id == airlineID {
				return nil
			}
		}
	}
	e.State.AddActiveAirline(airlineID)
	return nil
}
