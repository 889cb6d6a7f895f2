package model

import (
	"errors"
	"fmt"
	"math"
)

// DefaultSnapshotStep is the sampling cadence when none is configured:
// one snapshot per quarter.
const DefaultSnapshotStep = 3

// MarketConditions defines the deterministic market path for one run.
// Units:
// - InitialPriceEUR: EUR/BTC
// - CAGR, CPIRate: annual fractions (0.21 = +21%/yr), may be negative but > -1
// - Years: horizon, may be fractional
// - SnapshotStep: months between snapshots (0 = DefaultSnapshotStep)
type MarketConditions struct {
	InitialPriceEUR float64
	CAGR            float64
	CPIRate         float64
	Years           float64
	SnapshotStep    int
}

// ContributionPolicy defines the monthly DCA inflow.
type ContributionPolicy struct {
	MonthlyEUR       float64
	IndexToInflation bool
	// ExchangeFeePct is the fraction of each contribution lost to
	// fiat->BTC conversion (0.01 = 1%).
	ExchangeFeePct float64
}

// LendingPolicy defines the collateralized-loan side of the product.
// All rates are annual fractions; fee shares are fractions of gross yield.
type LendingPolicy struct {
	LTV                     float64
	LoanRate                float64
	YieldRate               float64
	PlatformFeeFromYieldPct float64
}

// SimulationInput bundles everything the monthly engine needs.
type SimulationInput struct {
	Market       MarketConditions
	Contribution ContributionPolicy
	Lending      LendingPolicy
}

// Months returns the total month count for the horizon.
func (in SimulationInput) Months() int {
	return int(math.Round(in.Market.Years * 12))
}

func (in SimulationInput) Validate() error {
	m := in.Market
	if !isFinite(m.InitialPriceEUR) || m.InitialPriceEUR <= 0 {
		return errors.New("market: InitialPriceEUR must be > 0")
	}
	if !isFinite(m.Years) || m.Years <= 0 {
		return errors.New("market: Years must be > 0")
	}
	if m.SnapshotStep < 0 {
		return errors.New("market: SnapshotStep must be >= 0")
	}
	// Rates at or below -100% would push (1+r)^x into NaN territory;
	// reject them here instead of letting the paths degenerate.
	for _, r := range []struct {
		name string
		val  float64
	}{
		{"market: CAGR", m.CAGR},
		{"market: CPIRate", m.CPIRate},
		{"lending: LoanRate", in.Lending.LoanRate},
		{"lending: YieldRate", in.Lending.YieldRate},
	} {
		if !isFinite(r.val) || r.val <= -1 {
			return fmt.Errorf("%s must be a finite fraction > -1", r.name)
		}
	}
	c := in.Contribution
	if !isFinite(c.MonthlyEUR) || c.MonthlyEUR < 0 {
		return errors.New("contribution: MonthlyEUR must be >= 0")
	}
	if c.ExchangeFeePct < 0 || c.ExchangeFeePct > 1 {
		return errors.New("contribution: ExchangeFeePct must be in [0, 1]")
	}
	l := in.Lending
	if !isFinite(l.LTV) || l.LTV < 0 {
		return errors.New("lending: LTV must be >= 0")
	}
	if l.PlatformFeeFromYieldPct < 0 || l.PlatformFeeFromYieldPct > 1 {
		return errors.New("lending: PlatformFeeFromYieldPct must be in [0, 1]")
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
