package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersRegisterAndIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.TransactionsIngested.Add(3)
	m.BalanceRuns.Inc()
	m.KeysIssued.Inc()
	m.KeysRevoked.Inc()

	assert.Equal(t, 3.0, testutil.ToFloat64(m.TransactionsIngested))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BalanceRuns))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.KeysIssued))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.KeysRevoked))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.BalanceCheckpoints))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 6)
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	require.Panics(t, func() { New(reg) })
}
