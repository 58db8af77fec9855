// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"

	"github.com/luxfi/surety/status"
	"github.com/luxfi/surety/utils/units"
)

var Default = Config{
	MinAirlineStake:      10 * units.Lux,
	MaxPolicyPremium:     units.Lux,
	VoteQuorum:           4,
	DelayedStatus:        status.LateAirline,
	DedupeActiveAirlines: false,
	LegacyPayout:         false,
}

// Config contains all of the user-configurable parameters of the surety VM.
type Config struct {
	// MinAirlineStake is the minimum amount an airline must attach to fund
	// its membership.
	MinAirlineStake uint64 `json:"min-airline-stake"`

	// MaxPolicyPremium caps the amount a passenger may pay for a single
	// surety.
	MaxPolicyPremium uint64 `json:"max-policy-premium"`

	// VoteQuorum is the number of active airlines required before peer
	// voting governs airline acceptance.
	VoteQuorum int `json:"vote-quorum"`

	// DelayedStatus is the flight status code that triggers the credit
	// sweep.
	DelayedStatus status.Code `json:"delayed-status"`

	// DedupeActiveAirlines suppresses duplicate appends to the active
	// airline list when an airline qualifies through both the funding and
	// voting transitions. The default preserves the duplicate, matching the
	// historical ledger behavior.
	DedupeActiveAirlines bool `json:"dedupe-active-airlines"`

	// LegacyPayout skips settling a surety after a successful payout,
	// reproducing the historical double-withdraw defect. Only enable for
	// compatibility testing.
	LegacyPayout bool `json:"legacy-payout"`
}

// GetConfig returns a Config from the provided json encoded bytes. If a
// parameter is not set, the default value is used.
func GetConfig(b []byte) (*Config, error) {
	ec := Default

	if len(b) == 0 {
		return &ec, nil
	}

	if err := json.Unmarshal(b, &ec); err != nil {
		return nil, err
	}
	return &ec, nil
}
