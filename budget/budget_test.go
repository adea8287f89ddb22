package budget_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcone/budget"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock.
type fakeClock struct{ now float64 }

func (c *fakeClock) Now() float64 { return c.now }

func TestNew_RejectsOutOfRange(t *testing.T) {
	for _, limit := range []float64{-1, budget.MaxLimit + 1, math.NaN()} {
		_, err := budget.New(limit)
		require.ErrorIs(t, err, budget.ErrInvalidBudget, "limit %v", limit)
	}
	b, err := budget.New(0)
	require.NoError(t, err)
	require.False(t, b.IsUnlimited())
}

func TestUnlimited_NeverTimesOut(t *testing.T) {
	b := budget.Unlimited()
	require.True(t, b.IsUnlimited())
	for i := 0; i < 1000; i++ {
		require.False(t, b.Tick())
	}
	require.False(t, b.IsTimedOut())
	require.NoError(t, b.PrepareForNewLoop(0)) // ignored
	require.True(t, b.Fork().IsUnlimited())
	require.Equal(t, "Budget(UNLIMITED)", b.String())
}

func TestPrepareForNewLoop_Validates(t *testing.T) {
	b, err := budget.New(1, budget.WithClock(&fakeClock{}))
	require.NoError(t, err)
	require.ErrorIs(t, b.PrepareForNewLoop(0), budget.ErrInvalidBudget)
	require.ErrorIs(t, b.PrepareForNewLoop(257), budget.ErrInvalidBudget)
	require.NoError(t, b.PrepareForNewLoop(budget.MaxVariability))
	require.Equal(t, budget.MaxVariability, b.Variability())
	require.Equal(t, int64(1), b.Interval())
}

func TestIsTimedOut_IntervalDoublesWhileCheap(t *testing.T) {
	b, err := budget.New(100, budget.WithClock(&fakeClock{}))
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		require.False(t, b.IsTimedOut())
	}
	require.Equal(t, int64(64), b.Interval())
	for i := 0; i < 30; i++ {
		require.False(t, b.IsTimedOut())
	}
	require.Equal(t, int64(budget.MaxInterval), b.Interval())
}

func TestIsTimedOut_IntervalHalvesWhenExpensive(t *testing.T) {
	clk := &fakeClock{}
	b, err := budget.New(100, budget.WithClock(clk))
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		require.False(t, b.IsTimedOut())
	}
	require.Equal(t, int64(64), b.Interval())

	clk.now = 30
	require.False(t, b.IsTimedOut())
	require.Equal(t, int64(2), b.Interval())
	clk.now = 60
	require.False(t, b.IsTimedOut())
	require.Equal(t, int64(1), b.Interval())

	clk.now = 100.5
	require.True(t, b.IsTimedOut())
}

func TestTick_ReadsClockOnlyAtCountdownZero(t *testing.T) {
	clk := &fakeClock{}
	b, err := budget.New(1, budget.WithClock(clk))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.False(t, b.IsTimedOut())
	}
	require.Equal(t, int64(16), b.Interval())

	clk.now = 5
	// The next 15 ticks only count down.
	for i := 0; i < 15; i++ {
		require.False(t, b.Tick())
	}
	require.True(t, b.Tick())
	require.True(t, b.Expired())
}

// The estimator never trips before the trigger, and always trips after
// trigger plus epsilon, for any mix of calls.
func TestIsTimedOut_DeadlineProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		clk := &fakeClock{now: rng.Float64() * 10}
		limit := 0.5 + rng.Float64()*5
		trigger := clk.now + limit
		epsilon := limit*budget.EpsilonFraction + budget.EpsilonFloor
		b, err := budget.New(limit, budget.WithClock(clk))
		require.NoError(t, err)

		for step := 0; step < 400; step++ {
			clk.now += rng.Float64() * limit / 50
			if rng.Intn(20) == 0 {
				require.NoError(t, b.PrepareForNewLoop(1+rng.Intn(budget.MaxVariability)))
				continue
			}
			timedOut := b.IsTimedOut()
			if clk.now <= trigger {
				require.False(t, timedOut, "trial %d step %d: early trip", trial, step)
			}
			if clk.now > trigger+epsilon {
				require.True(t, timedOut, "trial %d step %d: missed deadline", trial, step)
			}
		}
	}
}

func TestFork_SharesTrigger(t *testing.T) {
	clk := &fakeClock{}
	b, err := budget.New(2, budget.WithClock(clk))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		b.IsTimedOut()
	}
	f := b.Fork()
	require.Equal(t, int64(1), f.Interval())
	require.Equal(t, b.Variability(), f.Variability())

	clk.now = 1.5
	require.False(t, f.IsTimedOut())
	clk.now = 2.5
	require.True(t, f.IsTimedOut())
	require.True(t, b.IsTimedOut())
}
