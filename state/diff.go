// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/luxfi/ids"
)

var _ Diff = (*diff)(nil)

// Diff is an in-memory overlay on a parent Chain. Transactions execute
// against a Diff; Apply flushes the accumulated changes to the parent only
// after the whole transaction succeeded, giving every operation
// all-or-nothing semantics.
type Diff interface {
	Chain

	Apply(Chain)
}

type diff struct {
	parent Chain

	modifiedAirlines map[ids.ShortID]*Airline
	addedCodes       map[string]ids.ShortID
	addedActive      []ids.ShortID
	addedVotes       map[voteKey]struct{}
	modifiedFlights  map[ids.ID]*Flight
	addedInsured     map[ids.ID][]ids.ShortID
	modifiedSureties map[SuretyKey]*Surety
	addedIndex       map[ids.ShortID][]ids.ID

	treasury    uint64
	treasurySet bool
}

// NewDiffOn returns an empty Diff on top of [parent].
func NewDiffOn(parent Chain) Diff {
	return &diff{
		parent:           parent,
		modifiedAirlines: make(map[ids.ShortID]*Airline),
		addedCodes:       make(map[string]ids.ShortID),
		addedVotes:       make(map[voteKey]struct{}),
		modifiedFlights:  make(map[ids.ID]*Flight),
		addedInsured:     make(map[ids.ID][]ids.ShortID),
		modifiedSureties: make(map[SuretyKey]*Surety),
		addedIndex:       make(map[ids.ShortID][]ids.ID),
	}
}

func (d *diff) GetAirline(airlineID ids.ShortID) (*Airline, error) {
	if airline, ok := d.modifiedAirlines[airlineID]; ok {
		return airline, nil
	}

	airline, err := d.parent.GetAirline(airlineID)
	if err != nil {
		return nil, err
	}
	// Copy so callers can mutate and Put without touching the parent.
	cp := *airline
	return &cp, nil
}

func (d *diff) PutAirline(airlineID ids.ShortID, airline *Airline) {
	d.modifiedAirlines[airlineID] = airline
}

func (d *diff) GetAirlineByCode(code string) (ids.ShortID, error) {
	if airlineID, ok := d.addedCodes[code]; ok {
		return airlineID, nil
	}
	return d.parent.GetAirlineByCode(code)
}

func (d *diff) AddAirlineCode(code string, airlineID ids.ShortID) {
	d.addedCodes[code] = airlineID
}

func (d *diff) GetActiveAirlines() ([]ids.ShortID, error) {
	list, err := d.parent.GetActiveAirlines()
	if err != nil {
		return nil, err
	}
	out := make([]ids.ShortID, 0, len(list)+len(d.addedActive))
	out = append(out, list...)
	return append(out, d.addedActive...), nil
}

func (d *diff) NumActiveAirlines() (int, error) {
	num, err := d.parent.NumActiveAirlines()
	if err != nil {
		return 0, err
	}
	return num + len(d.addedActive), nil
}

func (d *diff) AddActiveAirline(airlineID ids.ShortID) {
	d.addedActive = append(d.addedActive, airlineID)
}

func (d *diff) HasVoted(voter, candidate ids.ShortID) (bool, error) {
	if _, ok := d.addedVotes[voteKey{voter: voter, candidate: candidate}]; ok {
		return true, nil
	}
	return d.parent.HasVoted(voter, candidate)
}

func (d *diff) AddVote(voter, candidate ids.ShortID) {
	d.addedVotes[voteKey{voter: voter, candidate: candidate}] = struct{}{}
}

func (d *diff) GetFlight(flightKey ids.ID) (*Flight, error) {
	if flight, ok := d.modifiedFlights[flightKey]; ok {
		return flight, nil
	}

	flight, err := d.parent.GetFlight(flightKey)
	if err != nil {
		return nil, err
	}
	cp := *flight
	return &cp, nil
}

func (d *diff) PutFlight(flightKey ids.ID, flight *Flight) {
	d.modifiedFlights[flightKey] = flight
}

func (d *diff) GetInsuredPurchasers(flightKey ids.ID) ([]ids.ShortID, error) {
	insured, err := d.parent.GetInsuredPurchasers(flightKey)
	if err != nil {
		return nil, err
	}
	added := d.addedInsured[flightKey]
	out := make([]ids.ShortID, 0, len(insured)+len(added))
	out = append(out, insured...)
	return append(out, added...), nil
}

func (d *diff) AddInsuredPurchaser(flightKey ids.ID, purchaser ids.ShortID) {
	d.addedInsured[flightKey] = append(d.addedInsured[flightKey], purchaser)
}

func (d *diff) GetSurety(purchaser ids.ShortID, flightKey ids.ID) (*Surety, error) {
	if surety, ok := d.modifiedSureties[SuretyKey{Purchaser: purchaser, FlightKey: flightKey}]; ok {
		return surety, nil
	}

	surety, err := d.parent.GetSurety(purchaser, flightKey)
	if err != nil {
		return nil, err
	}
	cp := *surety
	return &cp, nil
}

func (d *diff) PutSurety(purchaser ids.ShortID, surety *Surety) {
	d.modifiedSureties[SuretyKey{Purchaser: purchaser, FlightKey: surety.FlightKey}] = surety
}

func (d *diff) GetPurchaserFlights(purchaser ids.ShortID) ([]ids.ID, error) {
	flightKeys, err := d.parent.GetPurchaserFlights(purchaser)
	if err != nil {
		return nil, err
	}
	added := d.addedIndex[purchaser]
	out := make([]ids.ID, 0, len(flightKeys)+len(added))
	out = append(out, flightKeys...)
	return append(out, added...), nil
}

func (d *diff) AddPurchaserFlight(purchaser ids.ShortID, flightKey ids.ID) {
	d.addedIndex[purchaser] = append(d.addedIndex[purchaser], flightKey)
}

func (d *diff) GetTreasury() (uint64, error) {
	if d.treasurySet {
		return d.treasury, nil
	}
	return d.parent.GetTreasury()
}

func (d *diff) SetTreasury(amount uint64) {
	d.treasury = amount
	d.treasurySet = true
}

func (d *diff) Apply(chain Chain) {
	for airlineID, airline := range d.modifiedAirlines {
		chain.PutAirline(airlineID, airline)
	}
	for code, airlineID := range d.addedCodes {
		chain.AddAirlineCode(code, airlineID)
	}
	for _, airlineID := range d.addedActive {
		chain.AddActiveAirline(airlineID)
	}
	for key := range d.addedVotes {
		chain.AddVote(key.voter, key.candidate)
	}
	for flightKey, flight := range d.modifiedFlights {
		chain.PutFlight(flightKey, flight)
	}
	for flightKey, insured := range d.addedInsured {
		for _, purchaser := range insured {
			chain.AddInsuredPurchaser(flightKey, purchaser)
		}
	}
	for key, surety := range d.modifiedSureties {
		chain.PutSurety(key.Purchaser, surety)
	}
	for purchaser, flightKeys := range d.addedIndex {
		for _, flightKey := range flightKeys {
			chain.AddPurchaserFlight(purchaser, flightKey)
		}
	}
	if d.treasurySet {
		chain.SetTreasury(d.treasury)
	}
}
