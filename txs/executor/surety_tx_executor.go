// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"fmt"

	"github.com/luxfi/surety/state"
	"github.com/luxfi/surety/txs"

	"github.com/luxfi/database"

	safemath "github.com/luxfi/math"
)

func (e *Executor) BuySuretyTx(tx *txs.BuySuretyTx) error {
	flight, err := e.State.GetFlight(tx.FlightKey)
	if err == database.ErrNotFound {
		return fmt.Errorf("%w: %s", ErrNotRegistered, tx.FlightKey)
	}
	if err != nil {
		return err
	}

	if flight.Status.Departed() {
		return fmt.Errorf("%w: %s is %s", ErrFlightAlreadyStarted, tx.FlightKey, flight.Status)
	}

	_, err = e.State.GetSurety(tx.Caller, tx.FlightKey)
	if err == nil {
		return fmt.Errorf("%w: %s on %s", ErrAlreadyInsured, tx.Caller, tx.FlightKey)
	}
	if err != database.ErrNotFound {
		return err
	}

	if tx.Premium > e.Config.MaxPolicyPremium {
		return fmt.Errorf("%w: premium %d exceeds cap %d", txs.ErrInvalidAmount, tx.Premium, e.Config.MaxPolicyPremium)
	}

	treasury, err := e.State.GetTreasury()
	if err != nil {
		return err
	}
	newTreasury, err := safemath.Add(treasury, tx.Premium)
	if err != nil {
		return err
	}
	e.State.SetTreasury(newTreasury)

	e.State.PutSurety(tx.Caller, &state.Surety{
		Passenger: tx.Passenger,
		FlightKey: tx.FlightKey,
		Premium:   tx.Premium,
	})
	e.State.AddInsuredPurchaser(tx.FlightKey, tx.Caller)
	e.State.AddPurchaserFlight(tx.Caller, tx.FlightKey)

	e.Log.Debug("surety purchased",
		"purchaser", tx.Caller,
		"passenger", tx.Passenger,
		"flightKey", tx.FlightKey,
		"premium", tx.Premium,
	)
	return nil
}

func (e *Executor) PaySuretyTx(tx *txs.PaySuretyTx) error {
	surety, err := e.State.GetSurety(tx.Caller, tx.FlightKey)
	if err == database.ErrNotFound {
		return fmt.Errorf("%w: %s on %s", ErrNotAuthorized, tx.Caller, tx.FlightKey)
	}
	if err != nil {
		return err
	}

	if !surety.Credited || surety.Payout == 0 {
		return fmt.Errorf("%w: %s on %s", ErrNotAuthorized, tx.Caller, tx.FlightKey)
	}

	treasury, err := e.State.GetTreasury()
	if err != nil {
		return err
	}
	if treasury < surety.Payout {
		return fmt.Errorf("%w: %d < %d", ErrInsufficientFunds, treasury, surety.Payout)
	}

	amount := surety.Payout
	e.State.SetTreasury(treasury - amount)

	// Settle before the transfer is issued so that nothing, including a
	// reentrant call, can observe a withdrawable surety. LegacyPayout
	// reproduces the historical ledger, which left the surety credited.
	if !e.Config.LegacyPayout {
		surety.Payout = 0
		surety.Credited = false
		surety.Settled = true
		e.State.PutSurety(tx.Caller, surety)
	}

	e.Transfer = &Transfer{
		To:     surety.Passenger,
		Amount: amount,
	}

	e.Log.Info("surety paid out",
		"purchaser", tx.Caller,
		"passenger", surety.Passenger,
		"flightKey", tx.FlightKey,
		"amount", amount,
	)
	return nil
}
