package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btc-projection/internal/model"
)

func baseInput() model.SimulationInput {
	return model.SimulationInput{
		Market: model.MarketConditions{
			InitialPriceEUR: 100000,
			CAGR:            0.21,
			CPIRate:         0.03,
			Years:           10,
		},
		Contribution: model.ContributionPolicy{
			MonthlyEUR:     500,
			ExchangeFeePct: 0.01,
		},
		Lending: model.LendingPolicy{
			LTV:                     0.25,
			LoanRate:                0.06,
			YieldRate:               0.10,
			PlatformFeeFromYieldPct: 0.10,
		},
	}
}

func TestRun_SnapshotBoundaries(t *testing.T) {
	res, err := Run(baseInput(), Options{})
	require.NoError(t, err)
	require.NotEmpty(t, res.Snapshots)

	first := res.Snapshots[0]
	assert.Equal(t, 0, first.Month)
	assert.Equal(t, 0.0, first.BTCHolding)
	assert.Equal(t, 0.0, first.ContributionEUR)
	assert.Equal(t, 0.0, first.NetWorthEUR)
	assert.Equal(t, 0.0, first.TotalContribEUR)
	assert.Equal(t, 1.0, first.InflationIndex)

	last := res.Snapshots[len(res.Snapshots)-1]
	assert.Equal(t, 120, last.Month)

	for i := 1; i < len(res.Snapshots); i++ {
		assert.Greater(t, res.Snapshots[i].Month, res.Snapshots[i-1].Month,
			"snapshot months must be strictly increasing")
	}
}

func TestRun_ReferenceScenario(t *testing.T) {
	in := model.SimulationInput{
		Market: model.MarketConditions{
			InitialPriceEUR: 100000,
			CAGR:            0.21,
			Years:           21,
		},
		Contribution: model.ContributionPolicy{MonthlyEUR: 50000.0 / 12},
	}
	res, err := Run(in, Options{})
	require.NoError(t, err)

	last := res.Snapshots[len(res.Snapshots)-1]
	assert.Equal(t, 252, last.Month)
	wantPrice := 100000 * math.Pow(1.21, 21)
	assert.InDelta(t, wantPrice, last.PriceEUR, wantPrice*1e-9)
	assert.Equal(t, 0.0, last.LoanOutstandingEUR)
	assert.Equal(t, 0.0, last.CashBalanceEUR)
	assert.InDelta(t, 1050000, last.TotalContribEUR, 1e-6)
}

func TestRun_Identities(t *testing.T) {
	res, err := Run(baseInput(), Options{AutoDrawToTarget: true})
	require.NoError(t, err)

	for _, s := range res.Snapshots {
		assert.InDelta(t, s.BTCValueEUR-s.LoanOutstandingEUR+s.CashBalanceEUR, s.NetWorthEUR, 1e-6)
		assert.InDelta(t, s.NetWorthEUR-s.TotalContribEUR, s.PnLNetEUR, 1e-6)
		assert.InDelta(t, s.NetWorthEUR/s.InflationIndex, s.RealNetWorthEUR, 1e-6)
		assert.InDelta(t, s.RealNetWorthEUR-s.TotalContribRealEUR, s.RealPnLNetEUR, 1e-6)
	}
}

func TestRun_AutoDrawHoldsLTVAtSnapshots(t *testing.T) {
	res, err := Run(baseInput(), Options{AutoDrawToTarget: true})
	require.NoError(t, err)

	for _, s := range res.Snapshots[1:] {
		if s.BTCValueEUR <= 0 {
			continue
		}
		assert.InDelta(t, 0.25, s.LoanOutstandingEUR/s.BTCValueEUR, 1e-9,
			"month %d", s.Month)
	}
}

func TestRun_RepayOnlyNeverDraws(t *testing.T) {
	res, err := Run(baseInput(), Options{})
	require.NoError(t, err)
	for _, s := range res.Snapshots {
		assert.Equal(t, 0.0, s.LoanOutstandingEUR)
	}
}

func TestRun_HoldingMonotonicWithoutDeficits(t *testing.T) {
	in := baseInput()
	// Yield comfortably above borrowing cost: no deficit months.
	res, err := Run(in, Options{AutoDrawToTarget: true})
	require.NoError(t, err)

	prev := -1.0
	for _, s := range res.Snapshots {
		assert.GreaterOrEqual(t, s.BTCHolding, prev)
		prev = s.BTCHolding
	}
}

func TestRun_DeficitAbsorptionFloorsHoldingAtZero(t *testing.T) {
	in := baseInput()
	in.Lending.LoanRate = 0.80
	in.Lending.YieldRate = 0.01
	in.Lending.LTV = 0.9
	res, err := Run(in, Options{AutoDrawToTarget: true})
	require.NoError(t, err)

	for _, s := range res.Snapshots {
		assert.GreaterOrEqual(t, s.BTCHolding, 0.0)
		assert.GreaterOrEqual(t, s.CashBalanceEUR, 0.0)
	}
}

func TestRun_EdgeCases(t *testing.T) {
	t.Run("fractional years round to whole months", func(t *testing.T) {
		in := baseInput()
		in.Market.Years = 1.5
		res, err := Run(in, Options{})
		require.NoError(t, err)
		assert.Equal(t, 18, res.Snapshots[len(res.Snapshots)-1].Month)
	})

	t.Run("zero contribution", func(t *testing.T) {
		in := baseInput()
		in.Contribution.MonthlyEUR = 0
		res, err := Run(in, Options{})
		require.NoError(t, err)
		last := res.Snapshots[len(res.Snapshots)-1]
		assert.Equal(t, 0.0, last.TotalContribEUR)
		assert.Equal(t, 0.0, last.BTCHolding)
	})

	t.Run("flat price under zero CAGR", func(t *testing.T) {
		in := baseInput()
		in.Market.CAGR = 0
		res, err := Run(in, Options{})
		require.NoError(t, err)
		for _, s := range res.Snapshots {
			assert.Equal(t, 100000.0, s.PriceEUR)
		}
	})

	t.Run("zero loan rate", func(t *testing.T) {
		in := baseInput()
		in.Lending.LoanRate = 0
		res, err := Run(in, Options{AutoDrawToTarget: true})
		require.NoError(t, err)
		for _, s := range res.Snapshots {
			assert.Equal(t, 0.0, s.InterestAccruedEUR)
		}
	})

	t.Run("zero yield rate", func(t *testing.T) {
		in := baseInput()
		in.Lending.YieldRate = 0
		res, err := Run(in, Options{AutoDrawToTarget: true})
		require.NoError(t, err)
		for _, s := range res.Snapshots {
			assert.Equal(t, 0.0, s.YieldEarnedEUR)
		}
	})

	t.Run("zero LTV never borrows", func(t *testing.T) {
		in := baseInput()
		in.Lending.LTV = 0
		res, err := Run(in, Options{AutoDrawToTarget: true})
		require.NoError(t, err)
		for _, s := range res.Snapshots {
			assert.Equal(t, 0.0, s.LoanOutstandingEUR)
			assert.Equal(t, 0.0, s.YieldEarnedEUR)
		}
	})
}

func TestRun_InflationIndexing(t *testing.T) {
	in := baseInput()
	in.Contribution.IndexToInflation = true
	res, err := Run(in, Options{})
	require.NoError(t, err)

	// Indexed contributions deflate back to the base amount, so the real
	// total is months * base.
	last := res.Snapshots[len(res.Snapshots)-1]
	assert.InDelta(t, 120*500.0, last.TotalContribRealEUR, 1e-6)
	assert.Greater(t, last.TotalContribEUR, last.TotalContribRealEUR)
}

func TestRun_Idempotent(t *testing.T) {
	a, err := Run(baseInput(), Options{AutoDrawToTarget: true})
	require.NoError(t, err)
	b, err := Run(baseInput(), Options{AutoDrawToTarget: true})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_SnapshotStepOverride(t *testing.T) {
	res, err := Run(baseInput(), Options{SnapshotStep: 12})
	require.NoError(t, err)
	require.Len(t, res.Snapshots, 11)
	assert.Equal(t, 12, res.Snapshots[1].Month)
}

func TestRun_InvalidInput(t *testing.T) {
	t.Run("negative years", func(t *testing.T) {
		in := baseInput()
		in.Market.Years = -1
		_, err := Run(in, Options{})
		assert.Error(t, err)
	})

	t.Run("CAGR at -100 percent", func(t *testing.T) {
		in := baseInput()
		in.Market.CAGR = -1
		_, err := Run(in, Options{})
		assert.Error(t, err)
	})

	t.Run("non-finite contribution", func(t *testing.T) {
		in := baseInput()
		in.Contribution.MonthlyEUR = math.NaN()
		_, err := Run(in, Options{})
		assert.Error(t, err)
	})
}
