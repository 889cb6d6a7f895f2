package models

// SimulateRequest represents the request body for running a projection
type SimulateRequest struct {
	Config  SimulateConfig  `json:"config" binding:"required"`
	Options SimulateOptions `json:"options,omitempty"`
}

// SimulateConfig contains the scenario, either inline or by preset name
type SimulateConfig struct {
	ScenarioFile string       `json:"scenario_file,omitempty"`
	Scenario     ScenarioBody `json:"scenario,omitempty"`
}

// ScenarioBody defines simulation parameters
type ScenarioBody struct {
	Name         string           `json:"name,omitempty"`
	Market       MarketBody       `json:"market,omitempty"`
	Contribution ContributionBody `json:"contribution,omitempty"`
	Lending      LendingBody      `json:"lending,omitempty"`
}

type MarketBody struct {
	InitialPriceEUR float64 `json:"initial_price_eur"`
	CAGR            float64 `json:"cagr"`
	CPIRate         float64 `json:"cpi_rate"`
	Years           float64 `json:"years"`
	SnapshotStep    int     `json:"snapshot_step,omitempty"`
}

type ContributionBody struct {
	MonthlyEUR       float64 `json:"monthly_eur"`
	IndexToInflation bool    `json:"index_to_inflation,omitempty"`
	ExchangeFeePct   float64 `json:"exchange_fee_pct,omitempty"`
}

type LendingBody struct {
	LTV                     float64 `json:"ltv"`
	LoanRate                float64 `json:"loan_rate"`
	YieldRate               float64 `json:"yield_rate"`
	PlatformFeeFromYieldPct float64 `json:"platform_fee_from_yield_pct"`
}

// SimulateOptions contains optional projection parameters
type SimulateOptions struct {
	AutoDrawToTarget bool `json:"auto_draw_to_target,omitempty"`
	SnapshotStep     int  `json:"snapshot_step,omitempty"`
	IncludeSeries    bool `json:"include_series,omitempty"` // default: false
}

// ReferralsRequest represents a root user plus a referral tree
type ReferralsRequest struct {
	Config    SimulateConfig  `json:"config" binding:"required"`
	Referrals []ReferralBody  `json:"referrals" binding:"required"`
	Options   SimulateOptions `json:"options,omitempty"`
}

// ReferralBody is one referral node; children nest recursively
type ReferralBody struct {
	Config           SimulateConfig `json:"config"`
	JoinDelayMonths  int            `json:"join_delay_months,omitempty"`
	UpstreamSharePct float64        `json:"upstream_share_pct"`
	Children         []ReferralBody `json:"children,omitempty"`
}

// CompareRequest represents a request to compare scenario variations
type CompareRequest struct {
	BaseConfig SimulateConfig  `json:"base_config" binding:"required"`
	Variations []Variation     `json:"variations" binding:"required"`
	Options    SimulateOptions `json:"options,omitempty"`
}

// Variation defines one named scenario override to test
type Variation struct {
	Name   string         `json:"name" binding:"required"`
	Config SimulateConfig `json:"config" binding:"required"`
}

// PlatformRequest represents a platform aggregation request
type PlatformRequest struct {
	Timeline       TimelineBody `json:"timeline" binding:"required"`
	Assumptions    PlatformBody `json:"assumptions" binding:"required"`
	WithInvestment bool         `json:"with_investment,omitempty"`
	IncludeSeries  bool         `json:"include_series,omitempty"`
}

type TimelineBody struct {
	UserStarts int     `json:"user_starts" binding:"required"`
	UserEnds   int     `json:"user_ends" binding:"required"`
	GrowthType string  `json:"growth_type" binding:"required"` // "linear" or "exponential"
	Years      float64 `json:"years" binding:"required"`
}

type PlatformBody struct {
	InitialPriceEUR   float64 `json:"initial_price_eur"`
	CAGR              float64 `json:"cagr"`
	PerUserDCAEUR     float64 `json:"per_user_dca_eur"`
	YieldRate         float64 `json:"yield_rate"`
	YieldFeePct       float64 `json:"yield_fee_pct"`
	ExchangeFeePct    float64 `json:"exchange_fee_pct,omitempty"`
	PlatformYieldRate float64 `json:"platform_yield_rate,omitempty"`
}
