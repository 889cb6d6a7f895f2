package sim

import (
	"encoding/csv"
	"os"
	"strconv"

	"btc-projection/internal/model"
)

func WriteSnapshotsCSV(path string, snapshots []model.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"month",
		"price_eur",
		"contribution_eur",
		"btc_bought",
		"btc_holding",
		"btc_value_eur",
		"loan_outstanding_eur",
		"interest_accrued_eur",
		"yield_earned_eur",
		"cash_balance_eur",
		"total_contrib_eur",
		"total_contrib_real_eur",
		"net_worth_eur",
		"pnl_net_eur",
		"inflation_index",
		"real_net_worth_eur",
		"real_pnl_net_eur",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range snapshots {
		row := []string{
			strconv.Itoa(s.Month),
			fmtFloat(s.PriceEUR),
			fmtFloat(s.ContributionEUR),
			fmtFloat(s.BTCBought),
			fmtFloat(s.BTCHolding),
			fmtFloat(s.BTCValueEUR),
			fmtFloat(s.LoanOutstandingEUR),
			fmtFloat(s.InterestAccruedEUR),
			fmtFloat(s.YieldEarnedEUR),
			fmtFloat(s.CashBalanceEUR),
			fmtFloat(s.TotalContribEUR),
			fmtFloat(s.TotalContribRealEUR),
			fmtFloat(s.NetWorthEUR),
			fmtFloat(s.PnLNetEUR),
			fmtFloat(s.InflationIndex),
			fmtFloat(s.RealNetWorthEUR),
			fmtFloat(s.RealPnLNetEUR),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 8, 64)
}
