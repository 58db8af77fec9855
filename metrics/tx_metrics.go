// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"github.com/luxfi/metric"

	"github.com/luxfi/surety/txs"
)

const txLabel = "tx"

var (
	_ txs.Visitor = (*txMetrics)(nil)

	txLabels = []string{txLabel}
)

type txMetrics struct {
	numTxs metric.CounterVec
}

func newTxMetrics(registerer metric.Registerer) (*txMetrics, error) {
	m := &txMetrics{
		numTxs: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "txs_accepted",
				Help: "number of transactions accepted",
			},
			txLabels,
		),
	}
	return m, nil
}

func (m *txMetrics) RegisterAirlineTx(*txs.RegisterAirlineTx) error {
	m.numTxs.With(metric.Labels{
		txLabel: "register_airline",
	}).Inc()
	return nil
}

func (m *txMetrics) AirlineVoteTx(*txs.AirlineVoteTx) error {
	m.numTxs.With(metric.Labels{
		txLabel: "airline_vote",
	}).Inc()
	return nil
}

func (m *txMetrics) FundAirlineTx(*txs.FundAirlineTx) error {
	m.numTxs.With(metric.Labels{
		txLabel: "fund_airline",
	}).Inc()
	return nil
}

func (m *txMetrics) RegisterFlightTx(*txs.RegisterFlightTx) error {
	m.numTxs.With(metric.Labels{
		txLabel: "register_flight",
	}).Inc()
	return nil
}

func (m *txMetrics) FlightStatusTx(*txs.FlightStatusTx) error {
	m.numTxs.With(metric.Labels{
		txLabel: "flight_status",
	}).Inc()
	return nil
}

func (m *txMetrics) BuySuretyTx(*txs.BuySuretyTx) error {
	m.numTxs.With(metric.Labels{
		txLabel: "buy_surety",
	}).Inc()
	return nil
}

func (m *txMetrics) PaySuretyTx(*txs.PaySuretyTx) error {
	m.numTxs.With(metric.Labels{
		txLabel: "pay_surety",
	}).Inc()
	return nil
}
