package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"btc-projection/internal/analysis"
	"btc-projection/internal/config"
	"btc-projection/internal/model"
	"btc-projection/internal/platform"
	"btc-projection/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	case "timeline":
		cmdTimeline(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/projection.csv")
	fmt.Println("  cli rank --scenarios examples/scenarios")
	fmt.Println("  cli timeline --starts 100 --ends 10000 --growth exponential --years 5")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate outputs one CSV row per sampled month")
	fmt.Println("  - rank runs every scenario preset and sorts by final net worth")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "results/projection.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	res, err := sim.Run(cfg.ToInput(), sim.Options{
		AutoDrawToTarget: cfg.Options.AutoDrawToTarget,
	})
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := sim.WriteSnapshotsCSV(*outPath, res.Snapshots); err != nil {
		panic(err)
	}

	last := res.Snapshots[len(res.Snapshots)-1]
	fmt.Printf("Wrote %d rows to %s\n", len(res.Snapshots), *outPath)
	fmt.Printf("Final net worth=%.2f EUR  BTC=%.6f  PnL=%.2f EUR\n",
		last.NetWorthEUR, last.BTCHolding, last.PnLNetEUR)
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	scenarioDir := fs.String("scenarios", "examples/scenarios", "Directory of scenario YAML presets")
	autoDraw := fs.Bool("auto-draw", true, "Rebalance loans up to the LTV target")
	_ = fs.Parse(args)

	entries, err := os.ReadDir(*scenarioDir)
	if err != nil {
		panic(err)
	}

	scenarios := make([]analysis.NamedInput, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		sc, err := config.LoadScenarioFile(filepath.Join(*scenarioDir, e.Name()))
		if err != nil {
			panic(err)
		}
		cfg := &config.Config{Scenario: sc}
		name := sc.Name
		if name == "" {
			name = strings.TrimSuffix(e.Name(), ".yaml")
		}
		scenarios = append(scenarios, analysis.NamedInput{Name: name, Input: cfg.ToInput()})
	}

	ranked := analysis.RankByFinalNetWorth(scenarios, sim.Options{AutoDrawToTarget: *autoDraw})
	fmt.Printf("%-4s %-24s %-8s %-14s %-14s %-12s %-12s\n",
		"rank", "scenario", "months", "net_worth", "pnl", "btc", "fees")
	for i, r := range ranked {
		fmt.Printf("%-4d %-24s %-8d %-14.2f %-14.2f %-12.6f %-12.2f\n",
			i+1,
			r.Name,
			r.Months,
			r.FinalNetWorthEUR,
			r.FinalPnLEUR,
			r.FinalBTCHolding,
			r.TotalFeesEUR,
		)
	}
}

func cmdTimeline(args []string) {
	fs := flag.NewFlagSet("timeline", flag.ExitOnError)
	starts := fs.Int("starts", 100, "Users at month 0")
	ends := fs.Int("ends", 10000, "Users at the final month")
	growth := fs.String("growth", "linear", "Growth type: linear or exponential")
	years := fs.Float64("years", 5, "Horizon in years")
	_ = fs.Parse(args)

	points, err := platform.UsersTimeline(model.TimelineSpec{
		UserStarts: *starts,
		UserEnds:   *ends,
		Growth:     model.GrowthType(*growth),
		Years:      *years,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-8s %-10s %-10s\n", "month", "new", "total")
	for _, p := range points {
		fmt.Printf("%-8d %-10d %-10d\n", p.Month, p.NewUsers, p.TotalUsers)
	}
}
