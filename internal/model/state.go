package model

// AccountState captures the mutable per-participant balances carried
// through the month loop.
type AccountState struct {
	// BTCHolding is cumulative BTC. It only decreases when a yield
	// deficit exceeds available cash, and is floored at 0.
	BTCHolding float64

	// LoanOutstandingEUR is the borrowed principal. It changes only at
	// rebalance boundaries, never between them.
	LoanOutstandingEUR float64

	// CashBalanceEUR is the buffer absorbing net-yield shortfalls and
	// funding loan repayments.
	CashBalanceEUR float64

	TotalContribEUR     float64
	TotalContribRealEUR float64
}

// QuarterAccruals accumulates interest and gross yield between snapshot
// boundaries. It is reported on each snapshot and then reset.
type QuarterAccruals struct {
	InterestEUR   float64
	GrossYieldEUR float64
}
