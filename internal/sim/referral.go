package sim

import (
	"fmt"

	"btc-projection/internal/model"
	"btc-projection/internal/rate"
)

// ReferralResult is a root-user run with the referral tree's upstream
// income folded in.
type ReferralResult struct {
	Snapshots []model.ReferralSnapshot

	FinalNetWorthEUR      float64
	FinalBTCHolding       float64
	TotalBTCFromReferrals float64
	TotalEURFromReferrals float64
}

// RunWithReferrals simulates the root user plus a tree of referrals.
// Every node in the tree runs its own independent simulation over the
// root's month range, shifted by its join delay, and shares a fraction
// of its net-of-platform-fee yield upstream. Shares are credited to the
// root as BTC at the root market's price for the calendar month.
func RunWithReferrals(root model.SimulationInput, referrals []model.ReferralNode, opts Options) (*ReferralResult, error) {
	if err := root.Validate(); err != nil {
		return nil, fmt.Errorf("invalid root input: %w", err)
	}
	for i, n := range referrals {
		if err := n.Validate(); err != nil {
			return nil, fmt.Errorf("referral %d: %w", i, err)
		}
	}

	months := root.Months()

	// Per-calendar-month EUR shared by the whole tree. Nested levels are
	// flattened: each node shares its own yield, whatever its depth, and
	// a child's delay is counted from month 0 like its parent's.
	sharedEUR := make([]float64, months+1)
	var walk func(nodes []model.ReferralNode)
	walk = func(nodes []model.ReferralNode) {
		for _, n := range nodes {
			accumulateShare(n, months, sharedEUR, opts.AutoDrawToTarget)
			walk(n.Children)
		}
	}
	walk(referrals)

	// Convert to a BTC overlay on the root run.
	incomeBTC := make([]float64, months+1)
	cumBTC := make([]float64, months+1)
	cumEUR := make([]float64, months+1)
	var runBTC, runEUR float64
	for m := 0; m <= months; m++ {
		if sharedEUR[m] > 0 {
			price := rate.PriceAt(root.Market.InitialPriceEUR, root.Market.CAGR, m)
			incomeBTC[m] = sharedEUR[m] / price
			runBTC += incomeBTC[m]
			runEUR += sharedEUR[m]
		}
		cumBTC[m] = runBTC
		cumEUR[m] = runEUR
	}

	rootOpts := opts
	rootOpts.MonthlyBTCIncome = incomeBTC
	rootRes := run(root, months, rootOpts)

	out := &ReferralResult{
		Snapshots:             make([]model.ReferralSnapshot, len(rootRes.Snapshots)),
		FinalNetWorthEUR:      rootRes.FinalNetWorthEUR,
		FinalBTCHolding:       rootRes.FinalBTCHolding,
		TotalBTCFromReferrals: runBTC,
		TotalEURFromReferrals: runEUR,
	}
	for i, snap := range rootRes.Snapshots {
		out.Snapshots[i] = model.ReferralSnapshot{
			Snapshot:         snap,
			BTCFromReferrals: cumBTC[snap.Month],
			EURFromReferrals: cumEUR[snap.Month],
		}
	}
	return out, nil
}

// accumulateShare runs one referral's simulation month by month and adds
// its upstream share into dst, indexed by calendar month. The share can
// never exceed the node's own yield net of its platform fee.
func accumulateShare(n model.ReferralNode, rootMonths int, dst []float64, autoDraw bool) {
	if n.UpstreamSharePct <= 0 || n.JoinDelayMonths >= rootMonths {
		return
	}
	nodeMonths := rootMonths - n.JoinDelayMonths

	nodeRes := run(n.Input, nodeMonths, Options{SnapshotStep: 1, AutoDrawToTarget: autoDraw})
	for _, snap := range nodeRes.Snapshots {
		if snap.Month == 0 {
			continue
		}
		// With a 1-month step, YieldEarnedEUR is that single month's
		// gross yield.
		netOfFee := snap.YieldEarnedEUR * (1 - n.Input.Lending.PlatformFeeFromYieldPct)
		if netOfFee <= 0 {
			continue
		}
		share := netOfFee * n.UpstreamSharePct
		if share > netOfFee {
			share = netOfFee
		}
		dst[n.JoinDelayMonths+snap.Month] += share
	}
}
