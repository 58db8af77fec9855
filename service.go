// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package surety

import (
	"net/http"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"

	"github.com/luxfi/ids"

	"github.com/luxfi/surety/status"

	avajson "github.com/luxfi/surety/utils/json"
)

// CreateHandlers returns the http handlers exposing the surety API.
func (vm *VM) CreateHandlers() (map[string]http.Handler, error) {
	server := rpc.NewServer()
	codec := json2.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	return map[string]http.Handler{
		"": server,
	}, server.RegisterService(&Service{vm: vm}, "surety")
}

// Service provides the JSON-RPC endpoints of the surety VM.
type Service struct {
	vm *VM
}

type RegisterAirlineArgs struct {
	Caller  string `json:"caller"`
	Airline string `json:"airline"`
	Code    string `json:"code"`
}

func (s *Service) RegisterAirline(_ *http.Request, args *RegisterAirlineArgs, _ *struct{}) error {
	s.vm.log.Debug("API called", "service", "surety", "method", "registerAirline")

	caller, err := ids.ShortFromString(args.Caller)
	if err != nil {
		return err
	}
	airline, err := ids.ShortFromString(args.Airline)
	if err != nil {
		return err
	}
	return s.vm.RegisterAirline(caller, airline, args.Code)
}

type VoteAirlineArgs struct {
	Caller  string `json:"caller"`
	Airline string `json:"airline"`
	Code    string `json:"code"`
}

func (s *Service) VoteAirline(_ *http.Request, args *VoteAirlineArgs, _ *struct{}) error {
	s.vm.log.Debug("API called", "service", "surety", "method", "voteAirline")

	caller, err := ids.ShortFromString(args.Caller)
	if err != nil {
		return err
	}
	airline, err := ids.ShortFromString(args.Airline)
	if err != nil {
		return err
	}
	return s.vm.VoteAirline(caller, airline, args.Code)
}

type FundAirlineArgs struct {
	Caller string         `json:"caller"`
	Code   string         `json:"code"`
	Amount avajson.Uint64 `json:"amount"`
}

func (s *Service) FundAirline(_ *http.Request, args *FundAirlineArgs, _ *struct{}) error {
	s.vm.log.Debug("API called", "service", "surety", "method", "fundAirline")

	caller, err := ids.ShortFromString(args.Caller)
	if err != nil {
		return err
	}
	return s.vm.FundAirline(caller, args.Code, uint64(args.Amount))
}

type RegisterFlightArgs struct {
	Caller    string         `json:"caller"`
	Number    string         `json:"number"`
	Timestamp avajson.Uint64 `json:"timestamp"`
	Status    avajson.Uint32 `json:"status"`
}

type RegisterFlightReply struct {
	FlightKey ids.ID `json:"flightKey"`
}

func (s *Service) RegisterFlight(_ *http.Request, args *RegisterFlightArgs, reply *RegisterFlightReply) error {
	s.vm.log.Debug("API called", "service", "surety", "method", "registerFlight")

	caller, err := ids.ShortFromString(args.Caller)
	if err != nil {
		return err
	}
	flightKey, err := s.vm.RegisterFlight(
		caller,
		args.Number,
		int64(args.Timestamp),
		status.Code(args.Status),
	)
	if err != nil {
		return err
	}
	reply.FlightKey = flightKey
	return nil
}

type SetFlightStatusArgs struct {
	Caller    string         `json:"caller"`
	FlightKey string         `json:"flightKey"`
	Status    avajson.Uint32 `json:"status"`
}

func (s *Service) SetFlightStatus(_ *http.Request, args *SetFlightStatusArgs, _ *struct{}) error {
	s.vm.log.Debug("API called", "service", "surety", "method", "setFlightStatus")

	caller, err := ids.ShortFromString(args.Caller)
	if err != nil {
		return err
	}
	flightKey, err := ids.FromString(args.FlightKey)
	if err != nil {
		return err
	}
	return s.vm.SetFlightStatus(caller, flightKey, status.Code(args.Status))
}

type BuySuretyArgs struct {
	Caller    string         `json:"caller"`
	Passenger string         `json:"passenger"`
	FlightKey string         `json:"flightKey"`
	Premium   avajson.Uint64 `json:"premium"`
}

func (s *Service) BuySurety(_ *http.Request, args *BuySuretyArgs, _ *struct{}) error {
	s.vm.log.Debug("API called", "service", "surety", "method", "buySurety")

	caller, err := ids.ShortFromString(args.Caller)
	if err != nil {
		return err
	}
	passenger, err := ids.ShortFromString(args.Passenger)
	if err != nil {
		return err
	}
	flightKey, err := ids.FromString(args.FlightKey)
	if err != nil {
		return err
	}
	return s.vm.BuySurety(caller, passenger, flightKey, uint64(args.Premium))
}

type PaySuretyArgs struct {
	Caller    string `json:"caller"`
	FlightKey string `json:"flightKey"`
}

func (s *Service) PaySurety(_ *http.Request, args *PaySuretyArgs, _ *struct{}) error {
	s.vm.log.Debug("API called", "service", "surety", "method", "paySurety")

	caller, err := ids.ShortFromString(args.Caller)
	if err != nil {
		return err
	}
	flightKey, err := ids.FromString(args.FlightKey)
	if err != nil {
		return err
	}
	return s.vm.PaySurety(caller, flightKey)
}

type SetOperationalArgs struct {
	Caller string `json:"caller"`
	Mode   bool   `json:"mode"`
}

func (s *Service) SetOperational(_ *http.Request, args *SetOperationalArgs, _ *struct{}) error {
	s.vm.log.Debug("API called", "service", "surety", "method", "setOperational")

	caller, err := ids.ShortFromString(args.Caller)
	if err != nil {
		return err
	}
	return s.vm.SetOperational(caller, args.Mode)
}

type IsOperationalReply struct {
	Operational bool `json:"operational"`
}

func (s *Service) IsOperational(_ *http.Request, _ *struct{}, reply *IsOperationalReply) error {
	reply.Operational = s.vm.IsOperational()
	return nil
}

type GetAirlineArgs struct {
	Airline string `json:"airline"`
}

type GetAirlineReply struct {
	Code     string         `json:"code"`
	Accepted bool           `json:"accepted"`
	Funded   bool           `json:"funded"`
	Enabled  bool           `json:"enabled"`
	Votes    avajson.Uint32 `json:"votes"`
}

func (s *Service) GetAirline(_ *http.Request, args *GetAirlineArgs, reply *GetAirlineReply) error {
	s.vm.log.Debug("API called", "service", "surety", "method", "getAirline")

	airlineID, err := ids.ShortFromString(args.Airline)
	if err != nil {
		return err
	}
	airline, err := s.vm.GetAirline(airlineID)
	if err != nil {
		return err
	}
	reply.Code = airline.Code
	reply.Accepted = airline.Accepted
	reply.Funded = airline.Funded
	reply.Enabled = airline.Enabled()
	reply.Votes = avajson.Uint32(airline.Votes)
	return nil
}

type GetActiveAirlinesReply struct {
	Airlines []string `json:"airlines"`
}

func (s *Service) GetActiveAirlines(_ *http.Request, _ *struct{}, reply *GetActiveAirlinesReply) error {
	s.vm.log.Debug("API called", "service", "surety", "method", "getActiveAirlines")

	active, err := s.vm.GetActiveAirlines()
	if err != nil {
		return err
	}
	reply.Airlines = make([]string, len(active))
	for i, airlineID := range active {
		reply.Airlines[i] = airlineID.String()
	}
	return nil
}

type GetFlightArgs struct {
	FlightKey string `json:"flightKey"`
}

type GetFlightReply struct {
	Airline   string         `json:"airline"`
	Number    string         `json:"number"`
	Timestamp avajson.Uint64 `json:"timestamp"`
	Status    string         `json:"status"`
}

func (s *Service) GetFlight(_ *http.Request, args *GetFlightArgs, reply *GetFlightReply) error {
	s.vm.log.Debug("API called", "service", "surety", "method", "getFlight")

	flightKey, err := ids.FromString(args.FlightKey)
	if err != nil {
		return err
	}
	flight, err := s.vm.GetFlight(flightKey)
	if err != nil {
		return err
	}
	reply.Airline = flight.AirlineID.String()
	reply.Number = flight.Number
	reply.Timestamp = avajson.Uint64(flight.Timestamp)
	reply.Status = flight.Status.String()
	return nil
}

type GetSuretyArgs struct {
	Purchaser string `json:"purchaser"`
	FlightKey string `json:"flightKey"`
}

type GetSuretyReply struct {
	Passenger string         `json:"passenger"`
	Premium   avajson.Uint64 `json:"premium"`
	Payout    avajson.Uint64 `json:"payout"`
	Credited  bool           `json:"credited"`
	Settled   bool           `json:"settled"`
}

func (s *Service) GetSurety(_ *http.Request, args *GetSuretyArgs, reply *GetSuretyReply) error {
	s.vm.log.Debug("API called", "service", "surety", "method", "getSurety")

	purchaser, err := ids.ShortFromString(args.Purchaser)
	if err != nil {
		return err
	}
	flightKey, err := ids.FromString(args.FlightKey)
	if err != nil {
		return err
	}
	surety, err := s.vm.GetSurety(purchaser, flightKey)
	if err != nil {
		return err
	}
	reply.Passenger = surety.Passenger.String()
	reply.Premium = avajson.Uint64(surety.Premium)
	reply.Payout = avajson.Uint64(surety.Payout)
	reply.Credited = surety.Credited
	reply.Settled = surety.Settled
	return nil
}

type GetTreasuryReply struct {
	Balance avajson.Uint64 `json:"balance"`
}

func (s *Service) GetTreasury(_ *http.Request, _ *struct{}, reply *GetTreasuryReply) error {
	s.vm.log.Debug("API called", "service", "surety", "method", "getTreasury")

	balance, err := s.vm.TreasuryBalance()
	if err != nil {
		return err
	}
	reply.Balance = avajson.Uint64(balance)
	return nil
}
