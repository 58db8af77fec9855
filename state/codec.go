// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"errors"

	"github.com/luxfi/codec"
	"github.com/luxfi/codec/linearcodec"
)

const CodecVersion = 0

// Codec serializes the records persisted by this package.
var Codec codec.Manager

func init() {
	c := linearcodec.NewDefault()

	err := errors.Join(
		c.RegisterType(&Airline{}),
		c.RegisterType(&Flight{}),
		c.RegisterType(&Surety{}),
	)
	if err != nil {
		panic(err)
	}

	Codec = codec.NewDefaultManager()
	if err := Codec.RegisterCodec(CodecVersion, c); err != nil {
		panic(err)
	}
}
