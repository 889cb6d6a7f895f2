package sim

import (
	"fmt"

	"btc-projection/internal/model"
	"btc-projection/internal/rate"
)

// Options tunes one engine run.
type Options struct {
	// AutoDrawToTarget selects the symmetric rebalance policy; the
	// default is the conservative repay-only policy.
	AutoDrawToTarget bool

	// SnapshotStep overrides the market's sampling cadence when > 0.
	SnapshotStep int

	// MonthlyBTCIncome is an optional per-month BTC overlay added to the
	// holding before rebalancing (e.g. referral income), indexed by
	// calendar month. Months beyond its length receive nothing.
	MonthlyBTCIncome []float64
}

func (o Options) policy() RebalancePolicy {
	if o.AutoDrawToTarget {
		return AutoDrawPolicy{}
	}
	return RepayOnlyPolicy{}
}

// Result is the output of one engine run.
type Result struct {
	Snapshots []model.Snapshot

	FinalNetWorthEUR float64
	FinalBTCHolding  float64

	TotalContribEUR      float64
	TotalInterestEUR     float64
	TotalYieldFeesEUR    float64
	TotalExchangeFeesEUR float64
}

// Run executes the monthly state-evolution loop over the full horizon
// and returns the sampled snapshot series. The first snapshot is always
// month 0, the last always the final month.
func Run(in model.SimulationInput, opts Options) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation input: %w", err)
	}
	return run(in, in.Months(), opts), nil
}

// run is the validated core, parameterized on the month count so that
// referral composition can truncate horizons without re-rounding years.
func run(in model.SimulationInput, months int, opts Options) *Result {
	step := opts.SnapshotStep
	if step <= 0 {
		step = in.Market.SnapshotStep
	}
	if step <= 0 {
		step = model.DefaultSnapshotStep
	}

	monthlyLoanRate := rate.Monthly(in.Lending.LoanRate)
	monthlyYieldRate := rate.Monthly(in.Lending.YieldRate)
	policy := opts.policy()

	st := model.AccountState{}
	q := model.QuarterAccruals{}
	res := &Result{Snapshots: make([]model.Snapshot, 0, months/step+2)}

	for m := 0; m <= months; m++ {
		price := rate.PriceAt(in.Market.InitialPriceEUR, in.Market.CAGR, m)
		inflation := rate.InflationIndexAt(in.Market.CPIRate, m)

		var contribEUR, btcBought float64

		if m > 0 {
			// Contribution phase.
			contribEUR = in.Contribution.MonthlyEUR
			if in.Contribution.IndexToInflation {
				contribEUR *= inflation
			}
			if contribEUR > 0 {
				netEUR := contribEUR * (1 - in.Contribution.ExchangeFeePct)
				btcBought = netEUR / price
				st.BTCHolding += btcBought
				st.TotalContribEUR += contribEUR
				st.TotalContribRealEUR += contribEUR / inflation
				res.TotalExchangeFeesEUR += contribEUR - netEUR
			}

			// Accrual phase: interest owed on the loan, yield earned on
			// the deployed principal.
			interest := st.LoanOutstandingEUR * monthlyLoanRate
			grossYield := st.LoanOutstandingEUR * monthlyYieldRate
			q.InterestEUR += interest
			q.GrossYieldEUR += grossYield
			res.TotalInterestEUR += interest

			yieldFee := grossYield * in.Lending.PlatformFeeFromYieldPct
			res.TotalYieldFeesEUR += yieldFee

			net := grossYield - yieldFee - interest
			if net >= 0 {
				st.BTCHolding += net / price
			} else {
				deficit := -net
				fromCash := deficit
				if st.CashBalanceEUR < fromCash {
					fromCash = st.CashBalanceEUR
				}
				if fromCash > 0 {
					st.CashBalanceEUR -= fromCash
					deficit -= fromCash
				}
				if deficit > 0 {
					st.BTCHolding -= deficit / price
					if st.BTCHolding < 0 {
						st.BTCHolding = 0
					}
				}
			}
		}

		if opts.MonthlyBTCIncome != nil && m < len(opts.MonthlyBTCIncome) {
			st.BTCHolding += opts.MonthlyBTCIncome[m]
		}

		if m == 0 || m%step == 0 || m == months {
			btcValue := st.BTCHolding * price
			policy.Rebalance(in.Lending.LTV*btcValue, &st)

			netWorth := btcValue - st.LoanOutstandingEUR + st.CashBalanceEUR
			realNetWorth := netWorth / inflation
			res.Snapshots = append(res.Snapshots, model.Snapshot{
				Month:               m,
				PriceEUR:            price,
				ContributionEUR:     contribEUR,
				BTCBought:           btcBought,
				BTCHolding:          st.BTCHolding,
				BTCValueEUR:         btcValue,
				LoanOutstandingEUR:  st.LoanOutstandingEUR,
				InterestAccruedEUR:  q.InterestEUR,
				YieldEarnedEUR:      q.GrossYieldEUR,
				CashBalanceEUR:      st.CashBalanceEUR,
				TotalContribEUR:     st.TotalContribEUR,
				TotalContribRealEUR: st.TotalContribRealEUR,
				NetWorthEUR:         netWorth,
				PnLNetEUR:           netWorth - st.TotalContribEUR,
				InflationIndex:      inflation,
				RealNetWorthEUR:     realNetWorth,
				RealPnLNetEUR:       realNetWorth - st.TotalContribRealEUR,
			})
			q = model.QuarterAccruals{}
		}
	}

	last := res.Snapshots[len(res.Snapshots)-1]
	res.FinalNetWorthEUR = last.NetWorthEUR
	res.FinalBTCHolding = last.BTCHolding
	res.TotalContribEUR = last.TotalContribEUR
	return res
}
