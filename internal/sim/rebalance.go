package sim

import "btc-projection/internal/model"

// RebalancePolicy adjusts the loan principal toward the LTV target at
// each snapshot boundary. A delta of exactly zero performs no action.
type RebalancePolicy interface {
	Name() string
	Rebalance(targetLoanEUR float64, st *model.AccountState)
}

// AutoDrawPolicy is the symmetric policy: draw up to the target when
// below it, repay down to it (bounded by available cash) when above.
// Drawn capital is deployed collateral capacity, not a BTC purchase.
type AutoDrawPolicy struct{}

func (AutoDrawPolicy) Name() string { return "auto-draw" }

func (AutoDrawPolicy) Rebalance(targetLoanEUR float64, st *model.AccountState) {
	switch {
	case targetLoanEUR > st.LoanOutstandingEUR:
		st.LoanOutstandingEUR = targetLoanEUR
	case targetLoanEUR < st.LoanOutstandingEUR:
		repay(targetLoanEUR, st)
	}
}

// RepayOnlyPolicy is the conservative policy: excess loan above target is
// repaid from cash, but the loan is never proactively drawn. Borrowing
// capacity accumulates until an explicit draw.
type RepayOnlyPolicy struct{}

func (RepayOnlyPolicy) Name() string { return "repay-only" }

func (RepayOnlyPolicy) Rebalance(targetLoanEUR float64, st *model.AccountState) {
	if targetLoanEUR < st.LoanOutstandingEUR {
		repay(targetLoanEUR, st)
	}
}

func repay(targetLoanEUR float64, st *model.AccountState) {
	excess := st.LoanOutstandingEUR - targetLoanEUR
	available := st.CashBalanceEUR
	if available < 0 {
		available = 0
	}
	if excess > available {
		excess = available
	}
	st.LoanOutstandingEUR -= excess
	st.CashBalanceEUR -= excess
}
