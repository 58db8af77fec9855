// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package gate implements the operational kill switch that cross-cuts every
// mutating operation of the VM. The owner identity and initial mode are fixed
// at construction; only the owner may flip the mode afterwards.
package gate

import (
	"errors"
	"sync"

	"github.com/luxfi/ids"
)

var (
	ErrNotOperational = errors.New("contract is not operational")
	ErrNotOwner       = errors.New("caller is not the contract owner")
)

// Gate guards the VM's mutating entry points.
type Gate struct {
	mu          sync.RWMutex
	owner       ids.ShortID
	operational bool
}

func New(owner ids.ShortID) *Gate {
	return &Gate{
		owner:       owner,
		operational: true,
	}
}

// IsOperational returns whether mutating operations are currently allowed.
func (g *Gate) IsOperational() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.operational
}

// Owner returns the identity allowed to flip the operational mode.
func (g *Gate) Owner() ids.ShortID {
	return g.owner
}

// SetOperational sets the operational mode. Returns ErrNotOwner unless
// [caller] is the configured owner.
func (g *Gate) SetOperational(caller ids.ShortID, mode bool) error {
	if caller != g.owner {
		return ErrNotOwner
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.operational = mode
	return nil
}

// Check returns ErrNotOperational if the gate is closed.
func (g *Gate) Check() error {
	if !g.IsOperational() {
		return ErrNotOperational
	}
	return nil
}
