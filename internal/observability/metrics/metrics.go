// Package metrics exposes prometheus counters for the billing core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	TransactionsIngested prometheus.Counter
	PaymentsRecorded     prometheus.Counter
	BalanceRuns          prometheus.Counter
	BalanceCheckpoints   prometheus.Counter
	KeysIssued           prometheus.Counter
	KeysRevoked          prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TransactionsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "metermint_transactions_ingested_total",
			Help: "Transactions accepted by batch ingestion.",
		}),
		PaymentsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "metermint_payments_recorded_total",
			Help: "Payments recorded against organizations.",
		}),
		BalanceRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "metermint_balance_runs_total",
			Help: "Completed calculate-balances runs.",
		}),
		BalanceCheckpoints: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "metermint_balance_checkpoints_total",
			Help: "Balance checkpoint rows written.",
		}),
		KeysIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "metermint_access_keys_issued_total",
			Help: "Access keys issued.",
		}),
		KeysRevoked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "metermint_access_keys_revoked_total",
			Help: "Access keys revoked.",
		}),
	}

	reg.MustRegister(
		m.TransactionsIngested,
		m.PaymentsRecorded,
		m.BalanceRuns,
		m.BalanceCheckpoints,
		m.KeysIssued,
		m.KeysRevoked,
	)
	return m
}
