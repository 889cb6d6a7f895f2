package model

// Snapshot is one sampled month of a simulation run.
// This is the primary artifact for "what happened" in a projection.
type Snapshot struct {
	Month int

	PriceEUR        float64
	ContributionEUR float64
	BTCBought       float64

	BTCHolding         float64
	BTCValueEUR        float64
	LoanOutstandingEUR float64

	// InterestAccruedEUR and YieldEarnedEUR cover the window since the
	// previous snapshot, not the whole run.
	InterestAccruedEUR float64
	YieldEarnedEUR     float64

	CashBalanceEUR      float64
	TotalContribEUR     float64
	TotalContribRealEUR float64

	NetWorthEUR float64
	PnLNetEUR   float64

	InflationIndex  float64
	RealNetWorthEUR float64
	RealPnLNetEUR   float64
}

// ReferralSnapshot extends a root-user snapshot with the income routed
// upstream from the referral tree, cumulative since month 0.
type ReferralSnapshot struct {
	Snapshot

	BTCFromReferrals float64
	EURFromReferrals float64
}
