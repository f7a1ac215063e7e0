package metrics

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/gopheropt/opt"
	"github.com/crillab/gopheropt/pb"
)

func TestObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	o := New(reg)
	o.Checked(opt.StatusSat, 2*time.Millisecond)
	o.Checked(opt.StatusSat, time.Millisecond)
	o.Checked(opt.StatusUnsat, time.Second)
	o.Concluded(0, opt.Optimal, 3)
	o.Concluded(1, opt.BestEffort, 7)

	assert.Equal(t, 2.0, testutil.ToFloat64(o.checks.WithLabelValues("SAT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.checks.WithLabelValues("UNSAT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.objectives.WithLabelValues("best-effort")))
	assert.Equal(t, 7.0, testutil.ToFloat64(o.lastRounds.WithLabelValues("1")))
	assert.Equal(t, 2, testutil.CollectAndCount(o.checkTime))

	expected := `
# HELP gopheropt_objectives_total Objectives whose maximization ended, by outcome.
# TYPE gopheropt_objectives_total counter
gopheropt_objectives_total{outcome="best-effort"} 1
gopheropt_objectives_total{outcome="optimal"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "gopheropt_objectives_total")
	assert.NoError(t, err)
}

func TestDoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}

func TestSolverFeedsObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	o := New(reg)
	ctx := pb.New()
	x, err := ctx.Int("x", 0, 5)
	require.NoError(t, err)
	s, err := opt.New(ctx, opt.WithObserver(o))
	require.NoError(t, err)
	i, err := s.Register(x, opt.Adjuster{})
	require.NoError(t, err)
	_, err = s.MaximizeAll(context.Background())
	require.NoError(t, err)

	st := s.Stats()
	assert.Equal(t, float64(st.NbSat), testutil.ToFloat64(o.checks.WithLabelValues("SAT")))
	assert.Equal(t, float64(st.NbUnsat), testutil.ToFloat64(o.checks.WithLabelValues("UNSAT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.objectives.WithLabelValues("optimal")))
	assert.Equal(t, float64(st.NbRounds), testutil.ToFloat64(o.lastRounds.WithLabelValues("0")))
	v, err := s.Value(i)
	require.NoError(t, err)
	assert.Equal(t, "5", v.String())
}
