// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import "errors"

var (
	// Airline membership
	ErrNotExists         = errors.New("airline does not exist")
	ErrAlreadyExists     = errors.New("airline already exists")
	ErrNotEnabled        = errors.New("airline is not accepted and funded")
	ErrAlreadyFunded     = errors.New("airline membership already funded")
	ErrInsufficientStake = errors.New("stake is below the membership minimum")
	ErrQuorumNotReached  = errors.New("not enough active airlines for peer voting")
	ErrDoubleVote        = errors.New("airline already voted for this candidate")
	ErrAlreadyAccepted   = errors.New("candidate airline already accepted")

	// Flights
	ErrAlreadyRegistered = errors.New("flight already registered")
	ErrNotRegistered     = errors.New("flight is not registered")

	// Sureties
	ErrFlightAlreadyStarted = errors.New("flight is no longer open for insurance")
	ErrAlreadyInsured       = errors.New("purchaser already insured this flight")
	ErrNotAuthorized        = errors.New("no credited payout to withdraw")
	ErrInsufficientFunds    = errors.New("treasury can't cover the payout")
)
