// Package platform aggregates per-user fee curves across a growing user
// base and compounds the platform's own treasury.
package platform

import (
	"fmt"
	"math"
	"sort"

	"btc-projection/internal/model"
)

// UsersTimeline expands a growth spec into per-month new/total user
// counts. Month 0 carries the starting population; increments are
// distributed over months 1..N so that the final total equals UserEnds
// exactly and the increments sum to UserEnds-UserStarts, in both growth
// modes.
func UsersTimeline(spec model.TimelineSpec) ([]model.TimelinePoint, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid timeline spec: %w", err)
	}

	months := spec.Months()
	delta := spec.UserEnds - spec.UserStarts

	var increments []int
	switch spec.Growth {
	case model.GrowthLinear:
		increments = linearIncrements(delta, months)
	case model.GrowthExponential:
		increments = exponentialIncrements(spec.UserStarts, spec.UserEnds, months)
	}

	points := make([]model.TimelinePoint, 0, months+1)
	points = append(points, model.TimelinePoint{Month: 0, TotalUsers: spec.UserStarts})
	total := spec.UserStarts
	for m := 1; m <= months; m++ {
		total += increments[m-1]
		points = append(points, model.TimelinePoint{
			Month:      m,
			NewUsers:   increments[m-1],
			TotalUsers: total,
		})
	}
	return points, nil
}

// linearIncrements spreads delta evenly, handing the rounding leftover to
// the earliest months (every fractional remainder ties, so month order
// decides).
func linearIncrements(delta, months int) []int {
	out := make([]int, months)
	base := delta / months
	leftover := delta - base*months
	for m := range out {
		out[m] = base
		if m < leftover {
			out[m]++
		}
	}
	return out
}

// exponentialIncrements derives real-valued increments from a constant
// per-month growth factor, floors them, and redistributes the shortfall
// to the months with the largest fractional remainder.
func exponentialIncrements(starts, ends, months int) []int {
	growth := math.Pow(float64(ends)/float64(starts), 1.0/float64(months))

	out := make([]int, months)
	fracs := make([]struct {
		month int
		frac  float64
	}, months)

	assigned := 0
	prevTotal := float64(starts)
	for m := 0; m < months; m++ {
		total := float64(starts) * math.Pow(growth, float64(m+1))
		raw := total - prevTotal
		prevTotal = total

		floor := int(math.Floor(raw))
		out[m] = floor
		assigned += floor
		fracs[m] = struct {
			month int
			frac  float64
		}{m, raw - float64(floor)}
	}

	// Largest-remainder closure: the floored increments undershoot the
	// exact delta; hand the missing units to the biggest remainders.
	shortfall := (ends - starts) - assigned
	sort.SliceStable(fracs, func(i, j int) bool {
		if fracs[i].frac != fracs[j].frac {
			return fracs[i].frac > fracs[j].frac
		}
		return fracs[i].month < fracs[j].month
	})
	for i := 0; i < shortfall && i < len(fracs); i++ {
		out[fracs[i].month]++
	}
	return out
}
