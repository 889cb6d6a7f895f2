package analysis

import (
	"sort"

	"btc-projection/internal/model"
	"btc-projection/internal/sim"
)

// ScenarioOutcome is a scenario-level summary used for ranking.
type ScenarioOutcome struct {
	Name string

	Months           int
	FinalNetWorthEUR float64
	FinalPnLEUR      float64
	FinalRealPnLEUR  float64
	FinalBTCHolding  float64
	TotalContribEUR  float64
	TotalFeesEUR     float64
}

// Summarize condenses one finished run into a rankable outcome.
func Summarize(name string, res *sim.Result) ScenarioOutcome {
	last := res.Snapshots[len(res.Snapshots)-1]
	return ScenarioOutcome{
		Name:             name,
		Months:           last.Month,
		FinalNetWorthEUR: last.NetWorthEUR,
		FinalPnLEUR:      last.PnLNetEUR,
		FinalRealPnLEUR:  last.RealPnLNetEUR,
		FinalBTCHolding:  last.BTCHolding,
		TotalContribEUR:  last.TotalContribEUR,
		TotalFeesEUR:     res.TotalYieldFeesEUR + res.TotalExchangeFeesEUR,
	}
}

// NamedInput pairs a scenario label with its simulation input.
type NamedInput struct {
	Name  string
	Input model.SimulationInput
}

// RankByFinalNetWorth runs every scenario and sorts descending by final
// net worth. Scenarios that fail validation are skipped.
func RankByFinalNetWorth(scenarios []NamedInput, opts sim.Options) []ScenarioOutcome {
	out := make([]ScenarioOutcome, 0, len(scenarios))
	for _, sc := range scenarios {
		res, err := sim.Run(sc.Input, opts)
		if err != nil {
			continue
		}
		out = append(out, Summarize(sc.Name, res))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FinalNetWorthEUR > out[j].FinalNetWorthEUR
	})
	return out
}
