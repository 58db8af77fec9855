// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"fmt"

	"github.com/luxfi/surety/state"
	"github.com/luxfi/surety/txs"

	"github.com/luxfi/database"
	"github.com/luxfi/ids"

	safemath "github.com/luxfi/math"
)

// getEnabledAirline returns the airline record for [airlineID] iff it exists
// and is accepted and funded.
func (e *Executor) getEnabledAirline(airlineID ids.ShortID) (*state.Airline, error) {
	airline, err := e.State.GetAirline(airlineID)
	if err == database.ErrNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotEnabled, airlineID)
	}
	if err != nil {
		return nil, err
	}
	if !airline.Enabled() {
		return nil, fmt.Errorf("%w: %s", ErrNotEnabled, airlineID)
	}
	return airline, nil
}

func (e *Executor) RegisterAirlineTx(tx *txs.RegisterAirlineTx) error {
	if _, err := e.getEnabledAirline(tx.Caller); err != nil {
		return err
	}

	_, err := e.State.GetAirline(tx.Airline)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, tx.Airline)
	}
	if err != database.ErrNotFound {
		return err
	}

	// Codes are unique across airlines; claim at insertion.
	_, err = e.State.GetAirlineByCode(tx.Code)
	if err == nil {
		return fmt.Errorf("%w: code %q", ErrAlreadyExists, tx.Code)
	}
	if err != database.ErrNotFound {
		return err
	}

	e.State.PutAirline(tx.Airline, &state.Airline{
		Code:     tx.Code,
		Accepted: tx.DirectAccept,
	})
	e.State.AddAirlineCode(tx.Code, tx.Airline)

	e.Log.Debug("registered airline",
		"airline", tx.Airline,
		"code", tx.Code,
		"directAccept", tx.DirectAccept,
	)
	return nil
}

func (e *Executor) AirlineVoteTx(tx *txs.AirlineVoteTx) error {
	numActive, err := e.State.NumActiveAirlines()
	if err != nil {
		return err
	}
	if numActive < e.Config.VoteQuorum {
		return fmt.Errorf("%w: %d of %d", ErrQuorumNotReached, numActive, e.Config.VoteQuorum)
	}

	if _, err := e.getEnabledAirline(tx.Caller); err != nil {
		return err
	}

	candidate, err := e.State.GetAirline(tx.Airline)
	if err == database.ErrNotFound {
		return fmt.Errorf("%w: %s", ErrNotExists, tx.Airline)
	}
	if err != nil {
		return err
	}
	if candidate.Code != tx.Code {
		return fmt.Errorf("%w: %s under code %q", ErrNotExists, tx.Airline, tx.Code)
	}

	voted, err := e.State.HasVoted(tx.Caller, tx.Airline)
	if err != nil {
		return err
	}
	if voted {
		return fmt.Errorf("%w: %s -> %s", ErrDoubleVote, tx.Caller, tx.Airline)
	}

	if candidate.Accepted {
		return fmt.Errorf("%w: %s", ErrAlreadyAccepted, tx.Airline)
	}

	e.State.AddVote(tx.Caller, tx.Airline)
	candidate.Votes++

	if candidate.Votes >= tx.RequiredVotes {
		candidate.Accepted = true
		if candidate.Funded {
			if err := e.activateAirline(tx.Airline); err != nil {
				return err
			}
		}
		e.Log.Info("airline accepted by vote",
			"airline", tx.Airline,
			"votes", candidate.Votes,
		)
	}

	e.State.PutAirline(tx.Airline, candidate)
	return nil
}

func (e *Executor) FundAirlineTx(tx *txs.FundAirlineTx) error {
	if tx.Amount < e.Config.MinAirlineStake {
		return fmt.Errorf("%w: %d < %d", ErrInsufficientStake, tx.Amount, e.Config.MinAirlineStake)
	}

	airline, err := e.State.GetAirline(tx.Caller)
	if err == database.ErrNotFound {
		return fmt.Errorf("%w: %s", ErrNotExists, tx.Caller)
	}
	if err != nil {
		return err
	}
	if airline.Code != tx.Code {
		return fmt.Errorf("%w: %s under code %q", ErrNotExists, tx.Caller, tx.Code)
	}

	if airline.Funded {
		return fmt.Errorf("%w: %s", ErrAlreadyFunded, tx.Caller)
	}

	treasury, err := e.State.GetTreasury()
	if err != nil {
		return err
	}
	newTreasury, err := safemath.Add(treasury, tx.Amount)
	if err != nil {
		return err
	}
	e.State.SetTreasury(newTreasury)

	airline.Funded = true
	if airline.Accepted {
		if err := e.activateAirline(tx.Caller); err != nil {
			return err
		}
	}
	e.State.PutAirline(tx.Caller, airline)

	e.Log.Info("airline funded",
		"airline", tx.Caller,
		"stake", tx.Amount,
	)
	return nil
}
