package sim

// PeriodInput feeds one month of DCA + yield accrual for a single user.
// Rates and fee shares are fractions (0.02 = 2%).
type PeriodInput struct {
	MonthlyYieldRate float64
	BTCPriceEUR      float64
	HoldingBTC       float64
	DCAEUR           float64
	YieldFeePct      float64
	ExchangeFeePct   float64
}

// PeriodResult captures what happened in one period.
type PeriodResult struct {
	HoldingBTC         float64 // updated accumulated holding
	NetContributionBTC float64 // DCA after the exchange-fee skim
	GrossYieldBTC      float64
	NetYieldBTC        float64 // gross yield minus the platform cut
	YieldFeeBTC        float64 // platform revenue from yield
	ExchangeFeeBTC     float64 // platform revenue from conversion
}

// ApplyPeriod advances one user-month: convert the DCA amount at the
// current price, skim the exchange fee, accrue yield on the
// post-contribution balance, and split the platform's cut.
//
// Yield accrues on capital that already includes this month's net
// contribution; the ordering is part of the contract.
func ApplyPeriod(in PeriodInput) PeriodResult {
	res := PeriodResult{}

	var dcaBTC float64
	if in.DCAEUR > 0 {
		dcaBTC = in.DCAEUR / in.BTCPriceEUR
	}
	res.NetContributionBTC = dcaBTC * (1 - in.ExchangeFeePct)
	res.ExchangeFeeBTC = dcaBTC - res.NetContributionBTC

	res.GrossYieldBTC = (in.HoldingBTC + res.NetContributionBTC) * in.MonthlyYieldRate
	res.YieldFeeBTC = res.GrossYieldBTC * in.YieldFeePct
	res.NetYieldBTC = res.GrossYieldBTC - res.YieldFeeBTC

	res.HoldingBTC = in.HoldingBTC + res.NetContributionBTC + res.NetYieldBTC
	return res
}
