package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btc-projection/internal/model"
	"btc-projection/internal/sim"
)

func TestFirstMonthForCollateralLoan(t *testing.T) {
	series := []model.Snapshot{
		{Month: 0, BTCValueEUR: 0, LoanOutstandingEUR: 0},
		{Month: 3, BTCValueEUR: 10000, LoanOutstandingEUR: 0},
		{Month: 6, BTCValueEUR: 40000, LoanOutstandingEUR: 5000},
		{Month: 9, BTCValueEUR: 100000, LoanOutstandingEUR: 5000},
	}

	t.Run("earliest qualifying month", func(t *testing.T) {
		// ltv 0.5: capacity is 0, 5000, 15000, 45000.
		assert.Equal(t, 3, FirstMonthForCollateralLoan(series, 5000, 0.5))
		assert.Equal(t, 6, FirstMonthForCollateralLoan(series, 10000, 0.5))
		assert.Equal(t, 9, FirstMonthForCollateralLoan(series, 20000, 0.5))
	})

	t.Run("zero desired amount matches immediately", func(t *testing.T) {
		assert.Equal(t, 0, FirstMonthForCollateralLoan(series, 0, 0.5))
	})

	t.Run("never satisfied", func(t *testing.T) {
		assert.Equal(t, NoMonth, FirstMonthForCollateralLoan(series, 1e9, 0.5))
		assert.Equal(t, NoMonth, FirstMonthForCollateralLoan(nil, 1, 0.5))
	})
}

func TestRankByFinalNetWorth(t *testing.T) {
	small := model.SimulationInput{
		Market:       model.MarketConditions{InitialPriceEUR: 100000, CAGR: 0.10, Years: 5},
		Contribution: model.ContributionPolicy{MonthlyEUR: 100},
	}
	big := small
	big.Contribution.MonthlyEUR = 1000
	invalid := small
	invalid.Market.Years = -1

	ranked := RankByFinalNetWorth([]NamedInput{
		{Name: "small", Input: small},
		{Name: "invalid", Input: invalid},
		{Name: "big", Input: big},
	}, sim.Options{})

	require.Len(t, ranked, 2)
	assert.Equal(t, "big", ranked[0].Name)
	assert.Equal(t, "small", ranked[1].Name)
	assert.Greater(t, ranked[0].FinalNetWorthEUR, ranked[1].FinalNetWorthEUR)
}
