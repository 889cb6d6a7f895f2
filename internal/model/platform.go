package model

import (
	"errors"
	"fmt"
	"math"
)

type GrowthType string

const (
	GrowthLinear      GrowthType = "linear"
	GrowthExponential GrowthType = "exponential"
)

// TimelineSpec describes platform user growth between two endpoints.
type TimelineSpec struct {
	UserStarts int
	UserEnds   int
	Growth     GrowthType
	Years      float64
}

func (s TimelineSpec) Months() int {
	return int(math.Round(s.Years * 12))
}

func (s TimelineSpec) Validate() error {
	if !isFinite(s.Years) || s.Years <= 0 {
		return errors.New("timeline: Years must be > 0")
	}
	if s.Months() < 1 {
		return errors.New("timeline: horizon shorter than one month")
	}
	if s.UserStarts < 1 {
		return errors.New("timeline: UserStarts must be >= 1")
	}
	if s.UserEnds < s.UserStarts {
		return errors.New("timeline: UserEnds must be >= UserStarts")
	}
	switch s.Growth {
	case GrowthLinear, GrowthExponential:
		return nil
	default:
		return fmt.Errorf("timeline: unsupported growth type %q", s.Growth)
	}
}

// TimelinePoint is one month of the user-growth timeline.
// Invariant: TotalUsers at the final month equals UserEnds exactly.
type TimelinePoint struct {
	Month      int
	NewUsers   int
	TotalUsers int
}

// PlatformAssumptions holds the per-user curve inputs and the platform's
// own treasury rate for the aggregation engine.
type PlatformAssumptions struct {
	Market MarketConditions

	PerUserDCAEUR  float64
	YieldRate      float64 // annual, per-user deployed capital
	YieldFeePct    float64 // platform cut of gross yield
	ExchangeFeePct float64

	// PlatformYieldRate compounds the collected fees (annual fraction).
	// Only used by the with-investment aggregation.
	PlatformYieldRate float64
}

func (a PlatformAssumptions) Validate() error {
	if !isFinite(a.Market.InitialPriceEUR) || a.Market.InitialPriceEUR <= 0 {
		return errors.New("platform: InitialPriceEUR must be > 0")
	}
	if !isFinite(a.Market.CAGR) || a.Market.CAGR <= -1 {
		return errors.New("platform: CAGR must be a finite fraction > -1")
	}
	if !isFinite(a.PerUserDCAEUR) || a.PerUserDCAEUR < 0 {
		return errors.New("platform: PerUserDCAEUR must be >= 0")
	}
	if !isFinite(a.YieldRate) || a.YieldRate <= -1 {
		return errors.New("platform: YieldRate must be a finite fraction > -1")
	}
	if !isFinite(a.PlatformYieldRate) || a.PlatformYieldRate <= -1 {
		return errors.New("platform: PlatformYieldRate must be a finite fraction > -1")
	}
	if a.YieldFeePct < 0 || a.YieldFeePct > 1 {
		return errors.New("platform: YieldFeePct must be in [0, 1]")
	}
	if a.ExchangeFeePct < 0 || a.ExchangeFeePct > 1 {
		return errors.New("platform: ExchangeFeePct must be in [0, 1]")
	}
	return nil
}

// PlatformSnapshot is one calendar month of platform-level aggregates.
type PlatformSnapshot struct {
	Month      int
	TotalUsers int
	PriceEUR   float64

	// Fees collected this month, summed over all joined cohorts.
	YieldFeeBTC    float64
	ExchangeFeeBTC float64
	FeesBTC        float64
	FeesEUR        float64

	CumFeesBTC float64

	// Treasury fields are zero unless built with investment.
	TreasuryYieldBTC float64
	TreasuryBTC      float64
	TreasuryEUR      float64
}
