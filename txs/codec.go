// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/luxfi/codec"
	"github.com/luxfi/codec/linearcodec"
)

const CodecVersion = 0

// Codec is the codec for serializing surety VM transactions.
var Codec codec.Manager

func init() {
	c := linearcodec.NewDefault()

	err := errors.Join(
		c.RegisterType(&RegisterAirlineTx{}),
		c.RegisterType(&AirlineVoteTx{}),
		c.RegisterType(&FundAirlineTx{}),
		c.RegisterType(&RegisterFlightTx{}),
		c.RegisterType(&FlightStatusTx{}),
		c.RegisterType(&BuySuretyTx{}),
		c.RegisterType(&PaySuretyTx{}),
	)
	if err != nil {
		panic(err)
	}

	Codec = codec.NewDefaultManager()
	if err := Codec.RegisterCodec(CodecVersion, c); err != nil {
		panic(err)
	}
}
