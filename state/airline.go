// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

// Airline is the membership record of a participant airline. A record is
// created at registration and never deleted. Votes and Accepted are mutated
// by the voting flow; Funded flips once when the membership stake is paid.
type Airline struct {
	// Code is the unique airline code. A record with a non-empty code
	// exists; registration enforces uniqueness at insertion.
	Code string `serialize:"true" json:"code"`

	// Accepted is one-way true, set either at registration (direct accept)
	// or when Votes reaches the required threshold.
	Accepted bool `serialize:"true" json:"accepted"`

	// Funded is one-way true, set when the membership stake is paid.
	Funded bool `serialize:"true" json:"funded"`

	// Votes is the number of distinct enabled airlines that have voted for
	// this candidate.
	Votes uint32 `serialize:"true" json:"votes"`
}

// Enabled returns whether the airline may register flights and vote.
func (a *Airline) Enabled() bool {
	return a.Accepted && a.Funded
}
