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

func (e *Executor) RegisterFlightTx(tx *txs.RegisterFlightTx) error {
	if _, err := e.getEnabledAirline(tx.Caller); err != nil {
		return err
	}

	flightKey := state.FlightKey(tx.Caller, tx.Number, tx.Timestamp)
	_, err := e.State.GetFlight(flightKey)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, flightKey)
	}
	if err != database.ErrNotFound {
		return err
	}

	e.State.PutFlight(flightKey, &state.Flight{
		AirlineID: tx.Caller,
		Number:    tx.Number,
		Timestamp: tx.Timestamp,
		Status:    tx.Status,
	})

	e.Log.Debug("registered flight",
		"airline", tx.Caller,
		"number", tx.Number,
		"flightKey", flightKey,
	)
	return nil
}

func (e *Executor) FlightStatusTx(tx *txs.FlightStatusTx) error {
	flight, err := e.State.GetFlight(tx.FlightKey)
	if err == database.ErrNotFound {
		return fmt.Errorf("%w: %s", ErrNotRegistered, tx.FlightKey)
	}
	if err != nil {
		return err
	}

	flight.Status = tx.Status
	e.State.PutFlight(tx.FlightKey, flight)

	if tx.Status != e.Config.DelayedStatus {
		return nil
	}
	return e.creditSureties(tx.FlightKey)
}

// creditSureties stamps the payout amount onto every unsettled surety of the
// flight. The sweep is idempotent per surety: a duplicate delay event finds
// the surety already credited (or settled) and leaves it untouched.
func (e *Executor) creditSureties(flightKey ids.ID) error {
	insured, err := e.State.GetInsuredPurchasers(flightKey)
	if err != nil {
		return err
	}

	for _, purchaser := range insured {
		surety, err := e.State.GetSurety(purchaser, flightKey)
		if err != nil {
			return fmt.Errorf("missing surety of %s on %s: %w", purchaser, flightKey, err)
		}
		if surety.Credited || surety.Settled {
			continue
		}

		// payout = premium * 1.5, truncating fractional units
		payout, err := safemath.Add(surety.Premium, surety.Premium/2)
		if err != nil {
			return err
		}
		surety.Credited = true
		surety.Payout = payout
		e.State.PutSurety(purchaser, surety)
	}

	e.Log.Info("credited sureties for delayed flight",
		"flightKey", flightKey,
		"purchasers", len(insured),
	)
	return nil
}
