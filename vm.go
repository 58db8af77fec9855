// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package surety implements a flight-delay surety ledger. Airlines join a
// weighted-voting membership, register flights, and fund a shared treasury;
// passengers buy sureties against registered flights and withdraw a credited
// payout once the flight is reported delayed.
package surety

import (
	"errors"
	"fmt"
	"sync"

	"github.com/luxfi/surety/config"
	"github.com/luxfi/surety/gate"
	"github.com/luxfi/surety/metrics"
	"github.com/luxfi/surety/state"
	"github.com/luxfi/surety/status"
	"github.com/luxfi/surety/txs"
	"github.com/luxfi/surety/txs/executor"
	"github.com/luxfi/surety/utils/timer/mockable"

	"github.com/luxfi/database"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/luxfi/metric"
)

var (
	// ErrReentrant is returned when an operation is invoked while another
	// operation on the same VM is still executing, which only happens when
	// a payer callback re-enters the VM.
	ErrReentrant = errors.New("reentrant call rejected")

	ErrFlightInPast = errors.New("flight departure is in the past")

	errNoPayer = errors.New("no payer configured for value transfers")
)

// Payer issues value transfers out of the treasury to external accounts.
// Implementations may call back into the VM; such calls fail with
// ErrReentrant while the transfer is in flight.
type Payer interface {
	Pay(to ids.ShortID, amount uint64) error
}

// VM is the surety state machine. Every mutating operation executes a single
// transaction against a diff of the durable state and commits atomically on
// success; a failed precondition leaves no observable change.
type VM struct {
	config *config.Config
	log    log.Logger

	metrics metrics.Metrics
	clock   mockable.Clock

	gate  *gate.Gate
	state state.State
	payer Payer

	backend *executor.Backend

	// entry serializes all operations. TryLock instead of Lock so that a
	// payer callback re-entering the VM fails fast instead of deadlocking.
	entry sync.Mutex
}

// Initialize sets up the VM's state from [db], applying [genesisBytes] the
// first time the database is used. [configBytes] is an optional json encoded
// config.Config; zero-length means defaults.
func (vm *VM) Initialize(
	db database.Database,
	genesisBytes []byte,
	configBytes []byte,
	logger log.Logger,
	registerer metric.Registerer,
	payer Payer,
) error {
	if logger == nil {
		logger = log.NoLog{}
	}
	vm.log = logger

	cfg, err := config.GetConfig(configBytes)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	vm.config = cfg

	genesis, err := ParseGenesis(genesisBytes)
	if err != nil {
		return fmt.Errorf("failed to parse genesis: %w", err)
	}

	vm.metrics, err = metrics.New(registerer)
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	vm.state, err = state.New(db)
	if err != nil {
		return fmt.Errorf("failed to initialize state: %w", err)
	}

	vm.gate = gate.New(genesis.Owner)
	vm.payer = payer
	vm.backend = &executor.Backend{
		Config: vm.config,
		Log:    vm.log,
	}

	if err := vm.applyGenesis(genesis); err != nil {
		return fmt.Errorf("failed to apply genesis: %w", err)
	}

	numActive, err := vm.state.NumActiveAirlines()
	if err != nil {
		return err
	}
	treasury, err := vm.state.GetTreasury()
	if err != nil {
		return err
	}
	vm.metrics.SetActiveAirlines(numActive)
	vm.metrics.SetTreasuryBalance(treasury)

	vm.log.Info("initialized surety VM",
		"owner", genesis.Owner,
		"activeAirlines", numActive,
		"treasury", treasury,
	)
	return nil
}

// applyGenesis seeds the membership and treasury on first use. The genesis
// bytes are constant for the lifetime of the chain, so subsequent restarts
// only re-derive the owner.
func (vm *VM) applyGenesis(genesis *Genesis) error {
	initialized, err := vm.state.IsInitialized()
	if err != nil {
		return err
	}
	if initialized {
		return nil
	}

	for _, airline := range genesis.Airlines {
		vm.state.PutAirline(airline.ID, &state.Airline{
			Code:     airline.Code,
			Accepted: true,
			Funded:   true,
		})
		vm.state.AddAirlineCode(airline.Code, airline.ID)
		vm.state.AddActiveAirline(airline.ID)
	}
	vm.state.SetTreasury(genesis.Treasury)
	vm.state.SetInitialized()
	return vm.state.Commit()
}

// Shutdown releases the VM's resources.
func (vm *VM) Shutdown() error {
	if vm.state == nil {
		return nil
	}
	return vm.state.Close()
}

// SetOperational flips the operational mode. Only the genesis owner may call
// this; it is the only mutating operation that works while the gate is
// closed.
func (vm *VM) SetOperational(caller ids.ShortID, mode bool) error {
	if !vm.entry.TryLock() {
		return ErrReentrant
	}
	defer vm.entry.Unlock()

	if err := vm.gate.SetOperational(caller, mode); err != nil {
		return err
	}
	vm.log.Info("operational mode changed", "mode", mode)
	return nil
}

// IsOperational returns whether mutating operations are currently allowed.
func (vm *VM) IsOperational() bool {
	return vm.gate.IsOperational()
}

// Owner returns the identity allowed to flip the operational mode.
func (vm *VM) Owner() ids.ShortID {
	return vm.gate.Owner()
}

// RegisterAirline registers [airline] under [code]. While the membership is
// below the voting quorum the registration is accepted immediately;
// afterwards the airline is left pending peer votes.
func (vm *VM) RegisterAirline(caller, airline ids.ShortID, code string) error {
	if !vm.entry.TryLock() {
		return ErrReentrant
	}
	defer vm.entry.Unlock()

	if err := vm.gate.Check(); err != nil {
		return err
	}

	numActive, err := vm.state.NumActiveAirlines()
	if err != nil {
		return err
	}
	return vm.issue(&txs.RegisterAirlineTx{
		Caller:       caller,
		Airline:      airline,
		Code:         code,
		DirectAccept: numActive < vm.config.VoteQuorum,
	})
}

// VoteAirline casts [caller]'s vote for the pending airline registered as
// [airline] under [code]. The airline is accepted once votes from half of
// the active membership have been cast.
func (vm *VM) VoteAirline(caller, airline ids.ShortID, code string) error {
	if !vm.entry.TryLock() {
		return ErrReentrant
	}
	defer vm.entry.Unlock()

	if err := vm.gate.Check(); err != nil {
		return err
	}

	numActive, err := vm.state.NumActiveAirlines()
	if err != nil {
		return err
	}
	return vm.issue(&txs.AirlineVoteTx{
		Caller:        caller,
		Airline:       airline,
		Code:          code,
		RequiredVotes: uint32((numActive + 1) / 2),
	})
}

// FundAirline attaches [amount] as [caller]'s membership stake. The amount
// is absorbed into the treasury.
func (vm *VM) FundAirline(caller ids.ShortID, code string, amount uint64) error {
	if !vm.entry.TryLock() {
		return ErrReentrant
	}
	defer vm.entry.Unlock()

	if err := vm.gate.Check(); err != nil {
		return err
	}
	return vm.issue(&txs.FundAirlineTx{
		Caller: caller,
		Code:   code,
		Amount: amount,
	})
}

// RegisterFlight registers a flight operated by [caller] departing at unix
// time [timestamp] and returns its key.
func (vm *VM) RegisterFlight(caller ids.ShortID, number string, timestamp int64, stat status.Code) (ids.ID, error) {
	if !vm.entry.TryLock() {
		return ids.Empty, ErrReentrant
	}
	defer vm.entry.Unlock()

	if err := vm.gate.Check(); err != nil {
		return ids.Empty, err
	}

	if timestamp <= vm.clock.Time().Unix() {
		return ids.Empty, fmt.Errorf("%w: %d", ErrFlightInPast, timestamp)
	}

	err := vm.issue(&txs.RegisterFlightTx{
		Caller:    caller,
		Number:    number,
		Timestamp: timestamp,
		Status:    stat,
	})
	if err != nil {
		return ids.Empty, err
	}
	return state.FlightKey(caller, number, timestamp), nil
}

// SetFlightStatus records the reported status of the flight [flightKey].
// Reporting the delay-triggering status credits every open surety against
// the flight.
func (vm *VM) SetFlightStatus(caller ids.ShortID, flightKey ids.ID, stat status.Code) error {
	if !vm.entry.TryLock() {
		return ErrReentrant
	}
	defer vm.entry.Unlock()

	if err := vm.gate.Check(); err != nil {
		return err
	}
	return vm.issue(&txs.FlightStatusTx{
		Caller:    caller,
		FlightKey: flightKey,
		Status:    stat,
	})
}

// BuySurety purchases a surety for [passenger] against the flight
// [flightKey], paying [premium] into the treasury. One surety per purchaser
// per flight.
func (vm *VM) BuySurety(caller, passenger ids.ShortID, flightKey ids.ID, premium uint64) error {
	if !vm.entry.TryLock() {
		return ErrReentrant
	}
	defer vm.entry.Unlock()

	if err := vm.gate.Check(); err != nil {
		return err
	}
	return vm.issue(&txs.BuySuretyTx{
		Caller:    caller,
		Passenger: passenger,
		FlightKey: flightKey,
		Premium:   premium,
	})
}

// PaySurety settles [caller]'s credited surety against [flightKey] and
// transfers the payout to the recorded passenger.
func (vm *VM) PaySurety(caller ids.ShortID, flightKey ids.ID) error {
	if !vm.entry.TryLock() {
		return ErrReentrant
	}
	defer vm.entry.Unlock()

	if err := vm.gate.Check(); err != nil {
		return err
	}
	return vm.issue(&txs.PaySuretyTx{
		Caller:    caller,
		FlightKey: flightKey,
	})
}

// issue executes [utx] against a diff of the durable state and commits on
// success. If execution produced a pending transfer, the transfer is issued
// after the settling writes are staged and before anything is committed, so
// a failed transfer leaves no state change. The entry lock must be held.
func (vm *VM) issue(utx txs.UnsignedTx) error {
	if err := utx.SyntacticVerify(); err != nil {
		return err
	}

	diff := state.NewDiffOn(vm.state)
	e := &executor.Executor{
		Backend: vm.backend,
		State:   diff,
	}
	if err := utx.Visit(e); err != nil {
		vm.metrics.MarkTxRejected()
		return err
	}

	if e.Transfer != nil {
		if vm.payer == nil {
			vm.metrics.MarkTxRejected()
			return errNoPayer
		}
		if err := vm.payer.Pay(e.Transfer.To, e.Transfer.Amount); err != nil {
			vm.metrics.MarkTxRejected()
			return fmt.Errorf("transfer failed: %w", err)
		}
	}

	diff.Apply(vm.state)
	if err := vm.state.Commit(); err != nil {
		vm.state.Abort()
		return err
	}

	if err := vm.metrics.MarkTxAccepted(utx); err != nil {
		vm.log.Debug("failed to mark tx accepted", "error", err)
	}
	if numActive, err := vm.state.NumActiveAirlines(); err == nil {
		vm.metrics.SetActiveAirlines(numActive)
	}
	if treasury, err := vm.state.GetTreasury(); err == nil {
		vm.metrics.SetTreasuryBalance(treasury)
	}
	return nil
}

// GetAirline returns the airline record for [airlineID].
func (vm *VM) GetAirline(airlineID ids.ShortID) (*state.Airline, error) {
	if !vm.entry.TryLock() {
		return nil, ErrReentrant
	}
	defer vm.entry.Unlock()
	return vm.state.GetAirline(airlineID)
}

// GetAirlineByCode returns the identity registered under [code].
func (vm *VM) GetAirlineByCode(code string) (ids.ShortID, error) {
	if !vm.entry.TryLock() {
		return ids.ShortEmpty, ErrReentrant
	}
	defer vm.entry.Unlock()
	return vm.state.GetAirlineByCode(code)
}

// GetActiveAirlines returns the airlines eligible to vote, in qualification
// order.
func (vm *VM) GetActiveAirlines() ([]ids.ShortID, error) {
	if !vm.entry.TryLock() {
		return nil, ErrReentrant
	}
	defer vm.entry.Unlock()
	return vm.state.GetActiveAirlines()
}

// GetFlight returns the flight record for [flightKey].
func (vm *VM) GetFlight(flightKey ids.ID) (*state.Flight, error) {
	if !vm.entry.TryLock() {
		return nil, ErrReentrant
	}
	defer vm.entry.Unlock()
	return vm.state.GetFlight(flightKey)
}

// GetSurety returns the surety [purchaser] holds against [flightKey].
func (vm *VM) GetSurety(purchaser ids.ShortID, flightKey ids.ID) (*state.Surety, error) {
	if !vm.entry.TryLock() {
		return nil, ErrReentrant
	}
	defer vm.entry.Unlock()
	return vm.state.GetSurety(purchaser, flightKey)
}

// GetSureties returns every surety [purchaser] holds, in purchase order.
func (vm *VM) GetSureties(purchaser ids.ShortID) ([]*state.Surety, error) {
	if !vm.entry.TryLock() {
		return nil, ErrReentrant
	}
	defer vm.entry.Unlock()

	flightKeys, err := vm.state.GetPurchaserFlights(purchaser)
	if err != nil {
		return nil, err
	}
	sureties := make([]*state.Surety, 0, len(flightKeys))
	for _, flightKey := range flightKeys {
		surety, err := vm.state.GetSurety(purchaser, flightKey)
		if err != nil {
			return nil, err
		}
		sureties = append(sureties, surety)
	}
	return sureties, nil
}

// TreasuryBalance returns the balance available to back payouts.
func (vm *VM) TreasuryBalance() (uint64, error) {
	if !vm.entry.TryLock() {
		return 0, ErrReentrant
	}
	defer vm.entry.Unlock()
	return vm.state.GetTreasury()
}

// Clock returns the VM's clock, settable in tests.
func (vm *VM) Clock() *mockable.Clock {
	return &vm.clock
}
