// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"github.com/luxfi/metric"

	"github.com/luxfi/surety/txs"
	"github.com/luxfi/surety/utils/wrappers"
)

var _ Metrics = (*metricsImpl)(nil)

type Metrics interface {
	// MarkTxAccepted updates all metrics relating to the acceptance of a
	// transaction.
	MarkTxAccepted(tx txs.UnsignedTx) error
	// MarkTxRejected updates all metrics relating to a transaction that
	// failed execution.
	MarkTxRejected()
	// SetTreasuryBalance records the current treasury balance.
	SetTreasuryBalance(balance uint64)
	// SetActiveAirlines records the current number of voting members.
	SetActiveAirlines(n int)
}

type metricsImpl struct {
	txMetrics *txMetrics

	numTxsRejected metric.Counter
	treasury       metric.Gauge
	activeAirlines metric.Gauge
}

func (m *metricsImpl) MarkTxAccepted(tx txs.UnsignedTx) error {
	return tx.Visit(m.txMetrics)
}

func (m *metricsImpl) MarkTxRejected() {
	m.numTxsRejected.Inc()
}

func (m *metricsImpl) SetTreasuryBalance(balance uint64) {
	m.treasury.Set(float64(balance))
}

func (m *metricsImpl) SetActiveAirlines(n int) {
	m.activeAirlines.Set(float64(n))
}

func New(registerer metric.Registerer) (Metrics, error) {
	txMetrics, err := newTxMetrics(registerer)
	errs := wrappers.Errs{Err: err}

	m := &metricsImpl{txMetrics: txMetrics}

	m.numTxsRejected = metric.NewCounter(metric.CounterOpts{
		Name: "txs_rejected",
		Help: "number of transactions that failed execution",
	})
	m.treasury = metric.NewGauge(metric.GaugeOpts{
		Name: "treasury_balance",
		Help: "pooled premiums and stakes backing payouts",
	})
	m.activeAirlines = metric.NewGauge(metric.GaugeOpts{
		Name: "active_airlines",
		Help: "number of airlines eligible to vote",
	})
	return m, errs.Err
}
