package models

// SimulateResponse represents the response from a projection run
type SimulateResponse struct {
	ID      string        `json:"id,omitempty"`
	Status  string        `json:"status"`
	Summary Summary       `json:"summary"`
	Series  []SnapshotRow `json:"series,omitempty"`
}

// Summary contains aggregated projection results
type Summary struct {
	Months           int     `json:"months"`
	Snapshots        int     `json:"snapshots"`
	FinalPriceEUR    float64 `json:"final_price_eur"`
	FinalBTCHolding  float64 `json:"final_btc_holding"`
	FinalNetWorthEUR float64 `json:"final_net_worth_eur"`
	FinalPnLEUR      float64 `json:"final_pnl_eur"`
	FinalRealPnLEUR  float64 `json:"final_real_pnl_eur"`
	TotalContribEUR  float64 `json:"total_contrib_eur"`
	TotalInterestEUR float64 `json:"total_interest_eur"`
	TotalFeesEUR     float64 `json:"total_fees_eur"`
}

// SnapshotRow represents one sampled month in the projection series
type SnapshotRow struct {
	Month               int     `json:"month"`
	PriceEUR            float64 `json:"price_eur"`
	ContributionEUR     float64 `json:"contribution_eur"`
	BTCBought           float64 `json:"btc_bought"`
	BTCHolding          float64 `json:"btc_holding"`
	BTCValueEUR         float64 `json:"btc_value_eur"`
	LoanOutstandingEUR  float64 `json:"loan_outstanding_eur"`
	InterestAccruedEUR  float64 `json:"interest_accrued_eur"`
	YieldEarnedEUR      float64 `json:"yield_earned_eur"`
	CashBalanceEUR      float64 `json:"cash_balance_eur"`
	TotalContribEUR     float64 `json:"total_contrib_eur"`
	TotalContribRealEUR float64 `json:"total_contrib_real_eur"`
	NetWorthEUR         float64 `json:"net_worth_eur"`
	PnLNetEUR           float64 `json:"pnl_net_eur"`
	InflationIndex      float64 `json:"inflation_index"`
	RealNetWorthEUR     float64 `json:"real_net_worth_eur"`
	RealPnLNetEUR       float64 `json:"real_pnl_net_eur"`

	// Referral runs only.
	BTCFromReferrals float64 `json:"btc_from_referrals,omitempty"`
	EURFromReferrals float64 `json:"eur_from_referrals,omitempty"`
}

// ReferralsResponse adds referral income totals to a projection run
type ReferralsResponse struct {
	Status  string        `json:"status"`
	Summary Summary       `json:"summary"`
	Series  []SnapshotRow `json:"series,omitempty"`

	TotalBTCFromReferrals float64 `json:"total_btc_from_referrals"`
	TotalEURFromReferrals float64 `json:"total_eur_from_referrals"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name    string  `json:"name"`
	Summary Summary `json:"summary"`
}

// PlatformResponse represents platform-level aggregates
type PlatformResponse struct {
	Status  string                `json:"status"`
	Summary PlatformSummary       `json:"summary"`
	Series  []PlatformSnapshotRow `json:"series,omitempty"`
}

type PlatformSummary struct {
	Months           int     `json:"months"`
	FinalTotalUsers  int     `json:"final_total_users"`
	TotalFeesBTC     float64 `json:"total_fees_btc"`
	FinalTreasuryBTC float64 `json:"final_treasury_btc,omitempty"`
	FinalTreasuryEUR float64 `json:"final_treasury_eur,omitempty"`
}

type PlatformSnapshotRow struct {
	Month            int     `json:"month"`
	TotalUsers       int     `json:"total_users"`
	PriceEUR         float64 `json:"price_eur"`
	YieldFeeBTC      float64 `json:"yield_fee_btc"`
	ExchangeFeeBTC   float64 `json:"exchange_fee_btc"`
	FeesBTC          float64 `json:"fees_btc"`
	FeesEUR          float64 `json:"fees_eur"`
	CumFeesBTC       float64 `json:"cum_fees_btc"`
	TreasuryYieldBTC float64 `json:"treasury_yield_btc,omitempty"`
	TreasuryBTC      float64 `json:"treasury_btc,omitempty"`
	TreasuryEUR      float64 `json:"treasury_eur,omitempty"`
}

// TimelineResponse represents a user-growth timeline
type TimelineResponse struct {
	Timeline []TimelinePointRow `json:"timeline"`
	Count    int                `json:"count"`
}

type TimelinePointRow struct {
	Month      int `json:"month"`
	NewUsers   int `json:"new_users"`
	TotalUsers int `json:"total_users"`
}

// ScenarioInfo represents information about a scenario preset
type ScenarioInfo struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	File  string        `json:"file"`
	Specs ScenarioSpecs `json:"specs"`
}

// ScenarioSpecs contains headline scenario parameters
type ScenarioSpecs struct {
	Years      float64 `json:"years"`
	CAGR       float64 `json:"cagr"`
	MonthlyEUR float64 `json:"monthly_eur"`
	LTV        float64 `json:"ltv"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
