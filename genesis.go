// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package surety

import (
	"errors"

	"github.com/luxfi/codec"
	"github.com/luxfi/codec/linearcodec"
	"github.com/luxfi/ids"
)

const GenesisCodecVersion = 0

var (
	errEmptyGenesisOwner   = errors.New("genesis owner must not be empty")
	errEmptyGenesisAirline = errors.New("genesis airline must not be empty")

	// GenesisCodec serializes the genesis state of the surety VM.
	GenesisCodec codec.Manager
)

func init() {
	c := linearcodec.NewDefault()
	if err := c.RegisterType(&Genesis{}); err != nil {
		panic(err)
	}

	GenesisCodec = codec.NewDefaultManager()
	if err := GenesisCodec.RegisterCodec(GenesisCodecVersion, c); err != nil {
		panic(err)
	}
}

// GenesisAirline is an airline that is accepted, funded and active from the
// first block, used to bootstrap the membership before peer voting can
// govern acceptance.
type GenesisAirline struct {
	ID   ids.ShortID `serialize:"true" json:"id"`
	Code string      `serialize:"true" json:"code"`
}

// Genesis is the initial state of the surety VM.
type Genesis struct {
	// Owner is the identity allowed to flip the operational mode.
	Owner ids.ShortID `serialize:"true" json:"owner"`

	// Airlines seed the membership. Each is recorded as accepted and
	// funded, and appended to the active airline list in order.
	Airlines []GenesisAirline `serialize:"true" json:"airlines"`

	// Treasury is the balance the contract starts with, covering the
	// stakes of the seeded airlines.
	Treasury uint64 `serialize:"true" json:"treasury"`
}

func (g *Genesis) Verify() error {
	if g.Owner == ids.ShortEmpty {
		return errEmptyGenesisOwner
	}
	for _, airline := range g.Airlines {
		if airline.ID == ids.ShortEmpty || airline.Code == "" {
			return errEmptyGenesisAirline
		}
	}
	return nil
}

func (g *Genesis) Bytes() ([]byte, error) {
	return GenesisCodec.Marshal(GenesisCodecVersion, g)
}

// ParseGenesis parses a codec-encoded genesis and verifies it.
func ParseGenesis(b []byte) (*Genesis, error) {
	g := &Genesis{}
	if _, err := GenesisCodec.Unmarshal(b, g); err != nil {
		return nil, err
	}
	return g, g.Verify()
}
