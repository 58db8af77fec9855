// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

// Allow the vm to execute custom logic against the underlying transaction
// types.
type Visitor interface {
	// Airline membership:
	RegisterAirlineTx(*RegisterAirlineTx) error
	AirlineVoteTx(*AirlineVoteTx) error
	FundAirlineTx(*FundAirlineTx) error

	// Flight lifecycle:
	RegisterFlightTx(*RegisterFlightTx) error
	FlightStatusTx(*FlightStatusTx) error

	// Insurance lifecycle:
	BuySuretyTx(*BuySuretyTx) error
	PaySuretyTx(*PaySuretyTx) error
}
