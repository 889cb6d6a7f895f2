// Package analysis answers questions about finished simulation runs:
// collateral capacity thresholds and scenario rankings.
package analysis

import "btc-projection/internal/model"

// NoMonth is returned when a query is never satisfied on the series.
const NoMonth = -1

// FirstMonthForCollateralLoan returns the earliest snapshot month at
// which the series could support an additional loan of desiredEUR at the
// given LTV, i.e. ltv*btcValue - loanOutstanding >= desiredEUR.
// Snapshots are chronologically ordered, so the scan exits on the first
// match.
func FirstMonthForCollateralLoan(series []model.Snapshot, desiredEUR, ltv float64) int {
	for _, s := range series {
		if ltv*s.BTCValueEUR-s.LoanOutstandingEUR >= desiredEUR {
			return s.Month
		}
	}
	return NoMonth
}
