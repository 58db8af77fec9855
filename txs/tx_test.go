// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ids"

	"github.com/luxfi/surety/status"
)

func TestRegisterAirlineTxSyntacticVerify(t *testing.T) {
	validTx := func() *RegisterAirlineTx {
		return &RegisterAirlineTx{
			Caller:  ids.GenerateTestShortID(),
			Airline: ids.GenerateTestShortID(),
			Code:    "AL1",
		}
	}

	tests := []struct {
		name        string
		setup       func(*RegisterAirlineTx) *RegisterAirlineTx
		expectedErr error
	}{
		{
			name: "valid",
			setup: func(tx *RegisterAirlineTx) *RegisterAirlineTx {
				return tx
			},
			expectedErr: nil,
		},
		{
			name: "nil tx",
			setup: func(*RegisterAirlineTx) *RegisterAirlineTx {
				return nil
			},
			expectedErr: ErrNilTx,
		},
		{
			name: "empty caller",
			setup: func(tx *RegisterAirlineTx) *RegisterAirlineTx {
				tx.Caller = ids.ShortEmpty
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name: "empty airline",
			setup: func(tx *RegisterAirlineTx) *RegisterAirlineTx {
				tx.Airline = ids.ShortEmpty
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name: "empty code",
			setup: func(tx *RegisterAirlineTx) *RegisterAirlineTx {
				tx.Code = ""
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := tt.setup(validTx())
			require.ErrorIs(t, tx.SyntacticVerify(), tt.expectedErr)
		})
	}
}

func TestAirlineVoteTxSyntacticVerify(t *testing.T) {
	validTx := func() *AirlineVoteTx {
		return &AirlineVoteTx{
			Caller:        ids.GenerateTestShortID(),
			Airline:       ids.GenerateTestShortID(),
			Code:          "AL2",
			RequiredVotes: 2,
		}
	}

	tests := []struct {
		name        string
		setup       func(*AirlineVoteTx) *AirlineVoteTx
		expectedErr error
	}{
		{
			name: "valid",
			setup: func(tx *AirlineVoteTx) *AirlineVoteTx {
				return tx
			},
			expectedErr: nil,
		},
		{
			name: "nil tx",
			setup: func(*AirlineVoteTx) *AirlineVoteTx {
				return nil
			},
			expectedErr: ErrNilTx,
		},
		{
			name: "empty caller",
			setup: func(tx *AirlineVoteTx) *AirlineVoteTx {
				tx.Caller = ids.ShortEmpty
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name: "empty candidate",
			setup: func(tx *AirlineVoteTx) *AirlineVoteTx {
				tx.Airline = ids.ShortEmpty
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name: "empty code",
			setup: func(tx *AirlineVoteTx) *AirlineVoteTx {
				tx.Code = ""
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name: "zero required votes",
			setup: func(tx *AirlineVoteTx) *AirlineVoteTx {
				tx.RequiredVotes = 0
				return tx
			},
			expectedErr: errZeroRequiredVotes,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := tt.setup(validTx())
			require.ErrorIs(t, tx.SyntacticVerify(), tt.expectedErr)
		})
	}
}

func TestFundAirlineTxSyntacticVerify(t *testing.T) {
	validTx := func() *FundAirlineTx {
		return &FundAirlineTx{
			Caller: ids.GenerateTestShortID(),
			Code:   "AL1",
			Amount: 10,
		}
	}

	tests := []struct {
		name        string
		setup       func(*FundAirlineTx) *FundAirlineTx
		expectedErr error
	}{
		{
			name: "valid",
			setup: func(tx *FundAirlineTx) *FundAirlineTx {
				return tx
			},
			expectedErr: nil,
		},
		{
			name: "nil tx",
			setup: func(*FundAirlineTx) *FundAirlineTx {
				return nil
			},
			expectedErr: ErrNilTx,
		},
		{
			name: "empty caller",
			setup: func(tx *FundAirlineTx) *FundAirlineTx {
				tx.Caller = ids.ShortEmpty
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name: "empty code",
			setup: func(tx *FundAirlineTx) *FundAirlineTx {
				tx.Code = ""
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name: "zero amount",
			setup: func(tx *FundAirlineTx) *FundAirlineTx {
				tx.Amount = 0
				return tx
			},
			expectedErr: ErrInvalidAmount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := tt.setup(validTx())
			require.ErrorIs(t, tx.SyntacticVerify(), tt.expectedErr)
		})
	}
}

func TestRegisterFlightTxSyntacticVerify(t *testing.T) {
	validTx := func() *RegisterFlightTx {
		return &RegisterFlightTx{
			Caller:    ids.GenerateTestShortID(),
			Number:    "FL100",
			Timestamp: 1700000000,
			Status:    status.Unknown,
		}
	}

	tests := []struct {
		name        string
		setup       func(*RegisterFlightTx) *RegisterFlightTx
		expectedErr error
	}{
		{
			name: "valid",
			setup: func(tx *RegisterFlightTx) *RegisterFlightTx {
				return tx
			},
			expectedErr: nil,
		},
		{
			name: "nil tx",
			setup: func(*RegisterFlightTx) *RegisterFlightTx {
				return nil
			},
			expectedErr: ErrNilTx,
		},
		{
			name: "empty caller",
			setup: func(tx *RegisterFlightTx) *RegisterFlightTx {
				tx.Caller = ids.ShortEmpty
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name: "empty number",
			setup: func(tx *RegisterFlightTx) *RegisterFlightTx {
				tx.Number = ""
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name: "zero timestamp",
			setup: func(tx *RegisterFlightTx) *RegisterFlightTx {
				tx.Timestamp = 0
				return tx
			},
			expectedErr: errZeroTimestamp,
		},
		{
			name: "negative timestamp",
			setup: func(tx *RegisterFlightTx) *RegisterFlightTx {
				tx.Timestamp = -1
				return tx
			},
			expectedErr: errZeroTimestamp,
		},
		{
			name: "undefined status",
			setup: func(tx *RegisterFlightTx) *RegisterFlightTx {
				tx.Status = status.Code(0xff)
				return tx
			},
			expectedErr: status.ErrUnknownCode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := tt.setup(validTx())
			require.ErrorIs(t, tx.SyntacticVerify(), tt.expectedErr)
		})
	}
}

func TestFlightStatusTxSyntacticVerify(t *testing.T) {
	validTx := func() *FlightStatusTx {
		return &FlightStatusTx{
			Caller:    ids.GenerateTestShortID(),
			FlightKey: ids.GenerateTestID(),
			Status:    status.LateAirline,
		}
	}

	tests := []struct {
		name        string
		setup       func(*FlightStatusTx) *FlightStatusTx
		expectedErr error
	}{
		{
			name: "valid",
			setup: func(tx *FlightStatusTx) *FlightStatusTx {
				return tx
			},
			expectedErr: nil,
		},
		{
			name: "nil tx",
			setup: func(*FlightStatusTx) *FlightStatusTx {
				return nil
			},
			expectedErr: ErrNilTx,
		},
		{
			name: "empty caller",
			setup: func(tx *FlightStatusTx) *FlightStatusTx {
				tx.Caller = ids.ShortEmpty
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name: "empty flight key",
			setup: func(tx *FlightStatusTx) *FlightStatusTx {
				tx.FlightKey = ids.Empty
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name: "undefined status",
			setup: func(tx *FlightStatusTx) *FlightStatusTx {
				tx.Status = status.Code(3)
				return tx
			},
			expectedErr: status.ErrUnknownCode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := tt.setup(validTx())
			require.ErrorIs(t, tx.SyntacticVerify(), tt.expectedErr)
		})
	}
}

func TestBuySuretyTxSyntacticVerify(t *testing.T) {
	validTx := func() *BuySuretyTx {
		return &BuySuretyTx{
			Caller:    ids.GenerateTestShortID(),
			Passenger: ids.GenerateTestShortID(),
			FlightKey: ids.GenerateTestID(),
			Premium:   1,
		}
	}

	tests := []struct {
		name        string
		setup       func(*BuySuretyTx) *BuySuretyTx
		expectedErr error
	}{
		{
			name: "valid",
			setup: func(tx *BuySuretyTx) *BuySuretyTx {
				return tx
			},
			expectedErr: nil,
		},
		{
			name: "nil tx",
			setup: func(*BuySuretyTx) *BuySuretyTx {
				return nil
			},
			expectedErr: ErrNilTx,
		},
		{
			name: "empty caller",
			setup: func(tx *BuySuretyTx) *BuySuretyTx {
				tx.Caller = ids.ShortEmpty
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name: "empty passenger",
			setup: func(tx *BuySuretyTx) *BuySuretyTx {
				tx.Passenger = ids.ShortEmpty
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name: "empty flight key",
			setup: func(tx *BuySuretyTx) *BuySuretyTx {
				tx.FlightKey = ids.Empty
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name: "zero premium",
			setup: func(tx *BuySuretyTx) *BuySuretyTx {
				tx.Premium = 0
				return tx
			},
			expectedErr: ErrInvalidAmount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := tt.setup(validTx())
			require.ErrorIs(t, tx.SyntacticVerify(), tt.expectedErr)
		})
	}
}

func TestPaySuretyTxSyntacticVerify(t *testing.T) {
	validTx := func() *PaySuretyTx {
		return &PaySuretyTx{
			Caller:    ids.GenerateTestShortID(),
			FlightKey: ids.GenerateTestID(),
		}
	}

	tests := []struct {
		name        string
		setup       func(*PaySuretyTx) *PaySuretyTx
		expectedErr error
	}{
		{
			name: "valid",
			setup: func(tx *PaySuretyTx) *PaySuretyTx {
				return tx
			},
			expectedErr: nil,
		},
		{
			name: "nil tx",
			setup: func(*PaySuretyTx) *PaySuretyTx {
				return nil
			},
			expectedErr: ErrNilTx,
		},
		{
			name: "empty caller",
			setup: func(tx *PaySuretyTx) *PaySuretyTx {
				tx.Caller = ids.ShortEmpty
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name: "empty flight key",
			setup: func(tx *PaySuretyTx) *PaySuretyTx {
				tx.FlightKey = ids.Empty
				return tx
			},
			expectedErr: ErrEmptyIdentifier,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := tt.setup(validTx())
			require.ErrorIs(t, tx.SyntacticVerify(), tt.expectedErr)
		})
	}
}
