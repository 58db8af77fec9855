// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package status defines the lifecycle codes a registered flight moves
// through. A flight starts at Unknown; the oracle collaborator resolves it to
// one of the terminal codes. Only LateAirline entitles sureties to a payout.
package status

import (
	"errors"
	"fmt"
)

var ErrUnknownCode = errors.New("invalid status code")

// Code is a flight status code.
type Code uint8

const (
	Unknown Code = 0
	OnTime  Code = 10
	// LateAirline is the delay-confirmed code. A transition to this code
	// credits every unsettled surety on the flight.
	LateAirline   Code = 20
	LateWeather   Code = 30
	LateTechnical Code = 40
	LateOther     Code = 50
)

func (c Code) String() string {
	switch c {
	case Unknown:
		return "unknown"
	case OnTime:
		return "on time"
	case LateAirline:
		return "late (airline)"
	case LateWeather:
		return "late (weather)"
	case LateTechnical:
		return "late (technical)"
	case LateOther:
		return "late (other)"
	default:
		return fmt.Sprintf("invalid status: %d", c)
	}
}

// Valid returns nil iff [c] is a defined status code.
func (c Code) Valid() error {
	switch c {
	case Unknown, OnTime, LateAirline, LateWeather, LateTechnical, LateOther:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCode, c)
	}
}

// Departed returns true once the flight is no longer open for insurance
// purchase.
func (c Code) Departed() bool {
	return c != Unknown
}
