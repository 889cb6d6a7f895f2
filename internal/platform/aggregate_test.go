package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btc-projection/internal/model"
	"btc-projection/internal/rate"
)

func assumptions() model.PlatformAssumptions {
	return model.PlatformAssumptions{
		Market: model.MarketConditions{
			InitialPriceEUR: 50000,
			CAGR:            0.15,
		},
		PerUserDCAEUR:     200,
		YieldRate:         0.08,
		YieldFeePct:       0.10,
		ExchangeFeePct:    0.01,
		PlatformYieldRate: 0.05,
	}
}

func growthTimeline(t *testing.T) []model.TimelinePoint {
	t.Helper()
	points, err := UsersTimeline(model.TimelineSpec{
		UserStarts: 100, UserEnds: 1000, Growth: model.GrowthLinear, Years: 2,
	})
	require.NoError(t, err)
	return points
}

func TestBuildMonthlySnapshots(t *testing.T) {
	timeline := growthTimeline(t)
	snaps, err := BuildMonthlySnapshots(timeline, assumptions())
	require.NoError(t, err)
	require.Len(t, snaps, len(timeline))

	t.Run("month zero collects nothing", func(t *testing.T) {
		assert.Equal(t, 0.0, snaps[0].FeesBTC)
		assert.Equal(t, 100, snaps[0].TotalUsers)
	})

	t.Run("fees are non-negative and cumulative", func(t *testing.T) {
		cum := 0.0
		for _, s := range snaps {
			assert.GreaterOrEqual(t, s.YieldFeeBTC, 0.0)
			assert.GreaterOrEqual(t, s.ExchangeFeeBTC, 0.0)
			assert.InDelta(t, s.YieldFeeBTC+s.ExchangeFeeBTC, s.FeesBTC, 1e-15)
			cum += s.FeesBTC
			assert.InDelta(t, cum, s.CumFeesBTC, 1e-12)
		}
	})

	t.Run("first month matches a hand convolution", func(t *testing.T) {
		// Only the starting cohort has been in for a full month. Its
		// exchange fee is dca/price * pct per user.
		price := rate.PriceAt(50000, 0.15, 1)
		wantExchange := 100 * (200 / price) * 0.01
		assert.InDelta(t, wantExchange, snaps[1].ExchangeFeeBTC, 1e-12)
	})

	t.Run("cohorts scale linearly", func(t *testing.T) {
		doubled := make([]model.TimelinePoint, len(timeline))
		for i, p := range timeline {
			doubled[i] = model.TimelinePoint{Month: p.Month, NewUsers: 2 * p.NewUsers, TotalUsers: 2 * p.TotalUsers}
		}
		snaps2, err := BuildMonthlySnapshots(doubled, assumptions())
		require.NoError(t, err)
		for i := range snaps {
			assert.InDelta(t, 2*snaps[i].FeesBTC, snaps2[i].FeesBTC, 1e-12)
		}
	})

	t.Run("no treasury without investment", func(t *testing.T) {
		for _, s := range snaps {
			assert.Equal(t, 0.0, s.TreasuryBTC)
		}
	})
}

func TestBuildMonthlySnapshotsWithInvestment(t *testing.T) {
	timeline := growthTimeline(t)
	a := assumptions()
	snaps, err := BuildMonthlySnapshotsWithInvestment(timeline, a)
	require.NoError(t, err)

	t.Run("initial principal is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, snaps[0].TreasuryBTC)
	})

	t.Run("treasury follows the compounding recurrence", func(t *testing.T) {
		monthly := rate.Monthly(a.PlatformYieldRate)
		prev := 0.0
		for _, s := range snaps[1:] {
			wantYield := prev * monthly
			want := prev + s.FeesBTC + wantYield
			assert.InDelta(t, wantYield, s.TreasuryYieldBTC, 1e-12)
			assert.InDelta(t, want, s.TreasuryBTC, 1e-12)
			prev = s.TreasuryBTC
		}
	})

	t.Run("treasury holds at least the cumulative fees", func(t *testing.T) {
		last := snaps[len(snaps)-1]
		assert.GreaterOrEqual(t, last.TreasuryBTC, last.CumFeesBTC)
	})
}

func TestBuildMonthlySnapshots_Invalid(t *testing.T) {
	_, err := BuildMonthlySnapshots(nil, assumptions())
	assert.Error(t, err)

	a := assumptions()
	a.YieldFeePct = 1.5
	_, err = BuildMonthlySnapshots(growthTimeline(t), a)
	assert.Error(t, err)
}
