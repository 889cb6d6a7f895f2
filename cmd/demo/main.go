package main

import (
	"flag"
	"fmt"

	"btc-projection/internal/config"
	"btc-projection/internal/model"
	"btc-projection/internal/sim"
)

// Demo:
// - Build a projection input (defaults, or --config to load YAML)
// - Run the monthly engine over the full horizon
// - Print the sampled snapshots to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	autoDraw := flag.Bool("auto-draw", true, "Rebalance loans up to the LTV target")
	outCSV := flag.String("out", "", "Optional path to write snapshot CSV (e.g. results/projection.csv)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	in := model.SimulationInput{
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
	opts := sim.Options{AutoDrawToTarget: *autoDraw}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		in = cfg.ToInput()
		opts.AutoDrawToTarget = cfg.Options.AutoDrawToTarget
	}

	result, err := sim.Run(in, opts)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Projecting %d months (%.1f years), monthly DCA=%.2f EUR\n",
		in.Months(), in.Market.Years, in.Contribution.MonthlyEUR)
	fmt.Printf("LTV target=%.2f  loan=%.2f%%/yr  yield=%.2f%%/yr  auto-draw=%v\n\n",
		in.Lending.LTV, in.Lending.LoanRate*100, in.Lending.YieldRate*100, opts.AutoDrawToTarget)

	for _, s := range result.Snapshots {
		fmt.Printf(
			"m=%3d  price=%10.2f  btc=%.6f  value=%12.2f  loan=%10.2f  cash=%9.2f  net=%12.2f  pnl=%12.2f\n",
			s.Month,
			s.PriceEUR,
			s.BTCHolding,
			s.BTCValueEUR,
			s.LoanOutstandingEUR,
			s.CashBalanceEUR,
			s.NetWorthEUR,
			s.PnLNetEUR,
		)
	}

	if *outCSV != "" {
		if err := sim.WriteSnapshotsCSV(*outCSV, result.Snapshots); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nDone. Final BTC=%.6f  Net worth=%.2f EUR  Contributed=%.2f EUR\n",
		result.FinalBTCHolding, result.FinalNetWorthEUR, result.TotalContribEUR)
}
