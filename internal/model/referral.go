package model

import (
	"errors"
	"fmt"
)

// ReferralNode is one referred participant. Ownership is strictly
// parent->child: nodes are value types, there are no back-references and
// the tree cannot cycle.
type ReferralNode struct {
	Input SimulationInput

	// JoinDelayMonths delays the referral's first contribution; months
	// before the delay contribute nothing upstream.
	JoinDelayMonths int

	// UpstreamSharePct is the fraction of this node's net-of-platform-fee
	// yield routed to the root each month.
	UpstreamSharePct float64

	Children []ReferralNode
}

func (n ReferralNode) Validate() error {
	if err := n.Input.Validate(); err != nil {
		return fmt.Errorf("referral input: %w", err)
	}
	if n.JoinDelayMonths < 0 {
		return errors.New("referral: JoinDelayMonths must be >= 0")
	}
	if n.UpstreamSharePct < 0 || n.UpstreamSharePct > 1 {
		return errors.New("referral: UpstreamSharePct must be in [0, 1]")
	}
	for i, child := range n.Children {
		if err := child.Validate(); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	return nil
}
