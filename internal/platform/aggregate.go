package platform

import (
	"errors"
	"fmt"

	"btc-projection/internal/model"
	"btc-projection/internal/rate"
	"btc-projection/internal/sim"
)

// userCurve holds the fees one user generates per month after joining.
// Index is the cohort-relative month; index 0 is the join month itself,
// which produces nothing (contributions start the month after, matching
// the user engine).
type userCurve struct {
	yieldFeeBTC    []float64
	exchangeFeeBTC []float64
}

func buildUserCurve(a model.PlatformAssumptions, months int) userCurve {
	c := userCurve{
		yieldFeeBTC:    make([]float64, months+1),
		exchangeFeeBTC: make([]float64, months+1),
	}
	monthlyYield := rate.Monthly(a.YieldRate)
	holding := 0.0
	for k := 1; k <= months; k++ {
		res := sim.ApplyPeriod(sim.PeriodInput{
			MonthlyYieldRate: monthlyYield,
			BTCPriceEUR:      rate.PriceAt(a.Market.InitialPriceEUR, a.Market.CAGR, k),
			HoldingBTC:       holding,
			DCAEUR:           a.PerUserDCAEUR,
			YieldFeePct:      a.YieldFeePct,
			ExchangeFeePct:   a.ExchangeFeePct,
		})
		holding = res.HoldingBTC
		c.yieldFeeBTC[k] = res.YieldFeeBTC
		c.exchangeFeeBTC[k] = res.ExchangeFeeBTC
	}
	return c
}

// BuildMonthlySnapshots convolves the per-user fee curve with the user
// growth timeline: each cohort contributes the same curve shifted by its
// join month.
func BuildMonthlySnapshots(timeline []model.TimelinePoint, a model.PlatformAssumptions) ([]model.PlatformSnapshot, error) {
	return buildSnapshots(timeline, a, false)
}

// BuildMonthlySnapshotsWithInvestment additionally compounds the
// collected fees in the platform treasury at the platform yield rate.
func BuildMonthlySnapshotsWithInvestment(timeline []model.TimelinePoint, a model.PlatformAssumptions) ([]model.PlatformSnapshot, error) {
	return buildSnapshots(timeline, a, true)
}

func buildSnapshots(timeline []model.TimelinePoint, a model.PlatformAssumptions, invest bool) ([]model.PlatformSnapshot, error) {
	if len(timeline) == 0 {
		return nil, errors.New("empty user timeline")
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid platform assumptions: %w", err)
	}

	months := timeline[len(timeline)-1].Month
	if len(timeline) != months+1 {
		return nil, errors.New("user timeline must cover contiguous months from 0")
	}
	curve := buildUserCurve(a, months)

	// Cohort sizes by join month: the starting population is the
	// month-0 cohort.
	cohorts := make([]int, months+1)
	for _, p := range timeline {
		if p.Month == 0 {
			cohorts[0] = p.TotalUsers
		} else {
			cohorts[p.Month] = p.NewUsers
		}
	}

	monthlyTreasuryRate := rate.Monthly(a.PlatformYieldRate)

	out := make([]model.PlatformSnapshot, 0, months+1)
	cumFees := 0.0
	treasury := 0.0
	for m := 0; m <= months; m++ {
		var yieldFee, exchangeFee float64
		for j := 0; j <= m; j++ {
			if cohorts[j] == 0 {
				continue
			}
			yieldFee += float64(cohorts[j]) * curve.yieldFeeBTC[m-j]
			exchangeFee += float64(cohorts[j]) * curve.exchangeFeeBTC[m-j]
		}
		fees := yieldFee + exchangeFee
		cumFees += fees
		price := rate.PriceAt(a.Market.InitialPriceEUR, a.Market.CAGR, m)

		snap := model.PlatformSnapshot{
			Month:          m,
			TotalUsers:     timeline[m].TotalUsers,
			PriceEUR:       price,
			YieldFeeBTC:    yieldFee,
			ExchangeFeeBTC: exchangeFee,
			FeesBTC:        fees,
			FeesEUR:        fees * price,
			CumFeesBTC:     cumFees,
		}

		if invest && m > 0 {
			// Working capital is last month's closing principal; it
			// earns one month of treasury yield before this month's
			// fees arrive.
			yield := treasury * monthlyTreasuryRate
			treasury = treasury + fees + yield
			snap.TreasuryYieldBTC = yield
			snap.TreasuryBTC = treasury
			snap.TreasuryEUR = treasury * price
		}

		out = append(out, snap)
	}
	return out, nil
}
