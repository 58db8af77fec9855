// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/luxfi/surety/status"
	"github.com/luxfi/surety/utils/hashing"
	"github.com/luxfi/surety/utils/wrappers"

	"github.com/luxfi/ids"
)

// Flight is a registered flight. Created once by an enabled airline and
// never deleted; only Status is mutated afterwards. The insured-purchaser
// membership is kept as a separate index, not embedded here.
type Flight struct {
	// AirlineID is the operating airline.
	AirlineID ids.ShortID `serialize:"true" json:"airlineID"`

	// Number is the flight designator.
	Number string `serialize:"true" json:"number"`

	// Timestamp is the scheduled departure, in unix seconds.
	Timestamp int64 `serialize:"true" json:"timestamp"`

	// Status is the last processed status code.
	Status status.Code `serialize:"true" json:"status"`
}

// Key returns the flight key of this flight.
func (f *Flight) Key() ids.ID {
	return FlightKey(f.AirlineID, f.Number, f.Timestamp)
}

// FlightKey derives the deterministic key of a flight from the operating
// airline, the flight designator, and the scheduled departure time.
func FlightKey(airlineID ids.ShortID, number string, timestamp int64) ids.ID {
	p := wrappers.Packer{
		MaxSize: ids.ShortIDLen + wrappers.StringLen(number) + wrappers.LongLen,
	}
	p.PackFixedBytes(airlineID[:])
	p.PackStr(number)
	p.PackLong(uint64(timestamp))
	return ids.ID(hashing.ComputeHash256Array(p.Bytes))
}
