// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/surety/status"
	"github.com/luxfi/surety/utils/units"
)

func TestGetConfigDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := GetConfig(nil)
	require.NoError(err)
	require.Equal(&Default, cfg)

	require.Equal(10*units.Lux, cfg.MinAirlineStake)
	require.Equal(units.Lux, cfg.MaxPolicyPremium)
	require.Equal(4, cfg.VoteQuorum)
	require.Equal(status.LateAirline, cfg.DelayedStatus)
	require.False(cfg.DedupeActiveAirlines)
	require.False(cfg.LegacyPayout)
}

func TestGetConfigOverrides(t *testing.T) {
	require := require.New(t)

	cfg, err := GetConfig([]byte(`{
		"min-airline-stake": 5,
		"vote-quorum": 2,
		"dedupe-active-airlines": true
	}`))
	require.NoError(err)

	require.Equal(uint64(5), cfg.MinAirlineStake)
	require.Equal(2, cfg.VoteQuorum)
	require.True(cfg.DedupeActiveAirlines)

	// Unset parameters keep their defaults.
	require.Equal(units.Lux, cfg.MaxPolicyPremium)
	require.Equal(status.LateAirline, cfg.DelayedStatus)
}

func TestGetConfigInvalid(t *testing.T) {
	_, err := GetConfig([]byte(`{not json`))
	require.Error(t, err)
}
