// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"fmt"

	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/database/versiondb"
	"github.com/luxfi/ids"
)

var (
	_ State = (*state)(nil)

	AirlinePrefix   = []byte("airline")
	CodePrefix      = []byte("airlineCode")
	VotePrefix      = []byte("vote")
	FlightPrefix    = []byte("flight")
	InsuredPrefix   = []byte("insured")
	SuretyPrefix    = []byte("surety")
	IndexPrefix     = []byte("purchaserIndex")
	SingletonPrefix = []byte("singleton")

	ActiveAirlinesKey = []byte("active airlines")
	TreasuryKey       = []byte("treasury")
	InitializedKey    = []byte("initialized")
)

// State is the durable ledger state. All mutations are buffered until Commit,
// which flushes them to the backing database atomically; Abort drops them.
type State interface {
	Chain

	// IsInitialized returns whether the genesis state has been applied.
	IsInitialized() (bool, error)

	// SetInitialized marks the genesis state as applied.
	SetInitialized()

	// Commit writes all pending changes to the base database atomically.
	Commit() error

	// Abort drops all pending changes.
	Abort()

	// Close releases the backing database resources.
	Close() error
}

type voteKey struct {
	voter     ids.ShortID
	candidate ids.ShortID
}

func (k voteKey) bytes() []byte {
	bytes := make([]byte, 2*ids.ShortIDLen)
	copy(bytes, k.voter[:])
	copy(bytes[ids.ShortIDLen:], k.candidate[:])
	return bytes
}

type state struct {
	baseDB *versiondb.Database

	airlineDB   database.Database
	codeDB      database.Database
	voteDB      database.Database
	flightDB    database.Database
	insuredDB   database.Database
	suretyDB    database.Database
	indexDB     database.Database
	singletonDB database.Database

	// loaded once at construction, written back on Commit when dirty
	activeAirlines []ids.ShortID
	activeDirty    bool
	treasury       uint64
	treasuryDirty  bool
	initialized    bool
	initDirty      bool

	modifiedAirlines map[ids.ShortID]*Airline
	addedCodes       map[string]ids.ShortID
	addedVotes       map[voteKey]struct{}
	modifiedFlights  map[ids.ID]*Flight
	modifiedInsured  map[ids.ID][]ids.ShortID
	modifiedSureties map[SuretyKey]*Surety
	modifiedIndex    map[ids.ShortID][]ids.ID
}

// New returns a State persisted in [db].
func New(db database.Database) (State, error) {
	baseDB := versiondb.New(db)
	s := &state{
		baseDB:      baseDB,
		airlineDB:   prefixdb.New(AirlinePrefix, baseDB),
		codeDB:      prefixdb.New(CodePrefix, baseDB),
		voteDB:      prefixdb.New(VotePrefix, baseDB),
		flightDB:    prefixdb.New(FlightPrefix, baseDB),
		insuredDB:   prefixdb.New(InsuredPrefix, baseDB),
		suretyDB:    prefixdb.New(SuretyPrefix, baseDB),
		indexDB:     prefixdb.New(IndexPrefix, baseDB),
		singletonDB: prefixdb.New(SingletonPrefix, baseDB),

		modifiedAirlines: make(map[ids.ShortID]*Airline),
		addedCodes:       make(map[string]ids.ShortID),
		addedVotes:       make(map[voteKey]struct{}),
		modifiedFlights:  make(map[ids.ID]*Flight),
		modifiedInsured:  make(map[ids.ID][]ids.ShortID),
		modifiedSureties: make(map[SuretyKey]*Surety),
		modifiedIndex:    make(map[ids.ShortID][]ids.ID),
	}

	activeBytes, err := s.singletonDB.Get(ActiveAirlinesKey)
	switch err {
	case nil:
		s.activeAirlines, err = unpackShortIDs(activeBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse active airline list: %w", err)
		}
	case database.ErrNotFound:
	default:
		return nil, err
	}

	s.treasury, err = database.GetUInt64(s.singletonDB, TreasuryKey)
	if err == database.ErrNotFound {
		s.treasury = 0
	} else if err != nil {
		return nil, err
	}

	s.initialized, err = s.singletonDB.Has(InitializedKey)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *state) IsInitialized() (bool, error) {
	return s.initialized, nil
}

func (s *state) SetInitialized() {
	s.initialized = true
	s.initDirty = true
}

func (s *state) GetAirline(airlineID ids.ShortID) (*Airline, error) {
	if airline, ok := s.modifiedAirlines[airlineID]; ok {
		return airline, nil
	}

	bytes, err := s.airlineDB.Get(airlineID[:])
	if err != nil {
		return nil, err
	}

	airline := &Airline{}
	if _, err := Codec.Unmarshal(bytes, airline); err != nil {
		return nil, fmt.Errorf("failed to parse airline %s: %w", airlineID, err)
	}
	return airline, nil
}

func (s *state) PutAirline(airlineID ids.ShortID, airline *Airline) {
	s.modifiedAirlines[airlineID] = airline
}

func (s *state) GetAirlineByCode(code string) (ids.ShortID, error) {
	if airlineID, ok := s.addedCodes[code]; ok {
		return airlineID, nil
	}

	bytes, err := s.codeDB.Get([]byte(code))
	if err != nil {
		return ids.ShortEmpty, err
	}
	return ids.ToShortID(bytes)
}

func (s *state) AddAirlineCode(code string, airlineID ids.ShortID) {
	s.addedCodes[code] = airlineID
}

func (s *state) GetActiveAirlines() ([]ids.ShortID, error) {
	list := make([]ids.ShortID, len(s.activeAirlines))
	copy(list, s.activeAirlines)
	return list, nil
}

func (s *state) NumActiveAirlines() (int, error) {
	return len(s.activeAirlines), nil
}

func (s *state) AddActiveAirline(airlineID ids.ShortID) {
	s.activeAirlines = append(s.activeAirlines, airlineID)
	s.activeDirty = true
}

func (s *state) HasVoted(voter, candidate ids.ShortID) (bool, error) {
	key := voteKey{voter: voter, candidate: candidate}
	if _, ok := s.addedVotes[key]; ok {
		return true, nil
	}
	return s.voteDB.Has(key.bytes())
}

func (s *state) AddVote(voter, candidate ids.ShortID) {
	s.addedVotes[voteKey{voter: voter, candidate: candidate}] = struct{}{}
}

func (s *state) GetFlight(flightKey ids.ID) (*Flight, error) {
	if flight, ok := s.modifiedFlights[flightKey]; ok {
		return flight, nil
	}

	bytes, err := s.flightDB.Get(flightKey[:])
	if err != nil {
		return nil, err
	}

	flight := &Flight{}
	if _, err := Codec.Unmarshal(bytes, flight); err != nil {
		return nil, fmt.Errorf("failed to parse flight %s: %w", flightKey, err)
	}
	return flight, nil
}

func (s *state) PutFlight(flightKey ids.ID, flight *Flight) {
	s.modifiedFlights[flightKey] = flight
}

func (s *state) GetInsuredPurchasers(flightKey ids.ID) ([]ids.ShortID, error) {
	if insured, ok := s.modifiedInsured[flightKey]; ok {
		return insured, nil
	}

	bytes, err := s.insuredDB.Get(flightKey[:])
	switch err {
	case nil:
		return unpackShortIDs(bytes)
	case database.ErrNotFound:
		return nil, nil
	default:
		return nil, err
	}
}

func (s *state) AddInsuredPurchaser(flightKey ids.ID, purchaser ids.ShortID) {
	insured, _ := s.GetInsuredPurchasers(flightKey)
	s.modifiedInsured[flightKey] = append(insured, purchaser)
}

func (s *state) GetSurety(purchaser ids.ShortID, flightKey ids.ID) (*Surety, error) {
	key := SuretyKey{Purchaser: purchaser, FlightKey: flightKey}
	if surety, ok := s.modifiedSureties[key]; ok {
		return surety, nil
	}

	bytes, err := s.suretyDB.Get(key.Bytes())
	if err != nil {
		return nil, err
	}

	surety := &Surety{}
	if _, err := Codec.Unmarshal(bytes, surety); err != nil {
		return nil, fmt.Errorf("failed to parse surety of %s: %w", purchaser, err)
	}
	return surety, nil
}

func (s *state) PutSurety(purchaser ids.ShortID, surety *Surety) {
	key := SuretyKey{Purchaser: purchaser, FlightKey: surety.FlightKey}
	s.modifiedSureties[key] = surety
}

func (s *state) GetPurchaserFlights(purchaser ids.ShortID) ([]ids.ID, error) {
	if flightKeys, ok := s.modifiedIndex[purchaser]; ok {
		return flightKeys, nil
	}

	bytes, err := s.indexDB.Get(purchaser[:])
	switch err {
	case nil:
		return unpackIDs(bytes)
	case database.ErrNotFound:
		return nil, nil
	default:
		return nil, err
	}
}

func (s *state) AddPurchaserFlight(purchaser ids.ShortID, flightKey ids.ID) {
	flightKeys, _ := s.GetPurchaserFlights(purchaser)
	s.modifiedIndex[purchaser] = append(flightKeys, flightKey)
}

func (s *state) GetTreasury() (uint64, error) {
	return s.treasury, nil
}

func (s *state) SetTreasury(amount uint64) {
	s.treasury = amount
	s.treasuryDirty = true
}

func (s *state) Commit() error {
	if err := s.write(); err != nil {
		return err
	}
	return s.baseDB.Commit()
}

func (s *state) Abort() {
	clear(s.modifiedAirlines)
	clear(s.addedCodes)
	clear(s.addedVotes)
	clear(s.modifiedFlights)
	clear(s.modifiedInsured)
	clear(s.modifiedSureties)
	clear(s.modifiedIndex)
	s.baseDB.Abort()
}

func (s *state) Close() error {
	return s.baseDB.Close()
}

// write flushes the buffered mutations into the prefixed databases. The
// underlying versiondb makes the subsequent Commit atomic.
func (s *state) write() error {
	for airlineID, airline := range s.modifiedAirlines {
		bytes, err := Codec.Marshal(CodecVersion, airline)
		if err != nil {
			return fmt.Errorf("failed to serialize airline %s: %w", airlineID, err)
		}
		if err := s.airlineDB.Put(airlineID[:], bytes); err != nil {
			return err
		}
	}
	clear(s.modifiedAirlines)

	for code, airlineID := range s.addedCodes {
		if err := s.codeDB.Put([]byte(code), airlineID[:]); err != nil {
			return err
		}
	}
	clear(s.addedCodes)

	for key := range s.addedVotes {
		if err := s.voteDB.Put(key.bytes(), nil); err != nil {
			return err
		}
	}
	clear(s.addedVotes)

	for flightKey, flight := range s.modifiedFlights {
		bytes, err := Codec.Marshal(CodecVersion, flight)
		if err != nil {
			return fmt.Errorf("failed to serialize flight %s: %w", flightKey, err)
		}
		if err := s.flightDB.Put(flightKey[:], bytes); err != nil {
			return err
		}
	}
	clear(s.modifiedFlights)

	for flightKey, insured := range s.modifiedInsured {
		if err := s.insuredDB.Put(flightKey[:], packShortIDs(insured)); err != nil {
			return err
		}
	}
	clear(s.modifiedInsured)

	for key, surety := range s.modifiedSureties {
		bytes, err := Codec.Marshal(CodecVersion, surety)
		if err != nil {
			return fmt.Errorf("failed to serialize surety of %s: %w", key.Purchaser, err)
		}
		if err := s.suretyDB.Put(key.Bytes(), bytes); err != nil {
			return err
		}
	}
	clear(s.modifiedSureties)

	for purchaser, flightKeys := range s.modifiedIndex {
		if err := s.indexDB.Put(purchaser[:], packIDs(flightKeys)); err != nil {
			return err
		}
	}
	clear(s.modifiedIndex)

	if s.activeDirty {
		if err := s.singletonDB.Put(ActiveAirlinesKey, packShortIDs(s.activeAirlines)); err != nil {
			return err
		}
		s.activeDirty = false
	}

	if s.treasuryDirty {
		if err := database.PutUInt64(s.singletonDB, TreasuryKey, s.treasury); err != nil {
			return err
		}
		s.treasuryDirty = false
	}

	if s.initDirty {
		if err := s.singletonDB.Put(InitializedKey, nil); err != nil {
			return err
		}
		s.initDirty = false
	}
	return nil
}
