package handlers

import (
	"net/http"

	"btc-projection/internal/api/models"
	"btc-projection/internal/model"
	"btc-projection/internal/sim"

	"github.com/gin-gonic/gin"
)

// ReferralHandler handles referral-tree composition requests
type ReferralHandler struct{}

func NewReferralHandler() *ReferralHandler {
	return &ReferralHandler{}
}

// RunWithReferrals handles POST /api/v1/simulate/referrals
func (h *ReferralHandler) RunWithReferrals(c *gin.Context) {
	var req models.ReferralsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	root, err := buildInput(req.Config)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	referrals, err := buildReferralTree(req.Referrals)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REFERRALS",
				Message: err.Error(),
			},
		})
		return
	}

	res, err := sim.RunWithReferrals(root, referrals, simOptions(req.Options))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	response := models.ReferralsResponse{
		Status:                "completed",
		Summary:               referralSummary(res),
		TotalBTCFromReferrals: res.TotalBTCFromReferrals,
		TotalEURFromReferrals: res.TotalEURFromReferrals,
	}
	if req.Options.IncludeSeries {
		response.Series = convertReferralSeries(res.Snapshots)
	}
	c.JSON(http.StatusOK, response)
}

func buildReferralTree(bodies []models.ReferralBody) ([]model.ReferralNode, error) {
	nodes := make([]model.ReferralNode, 0, len(bodies))
	for _, b := range bodies {
		in, err := buildInput(b.Config)
		if err != nil {
			return nil, err
		}
		children, err := buildReferralTree(b.Children)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, model.ReferralNode{
			Input:            in,
			JoinDelayMonths:  b.JoinDelayMonths,
			UpstreamSharePct: b.UpstreamSharePct,
			Children:         children,
		})
	}
	return nodes, nil
}

func referralSummary(res *sim.ReferralResult) models.Summary {
	last := res.Snapshots[len(res.Snapshots)-1]
	return models.Summary{
		Months:           last.Month,
		Snapshots:        len(res.Snapshots),
		FinalPriceEUR:    last.PriceEUR,
		FinalBTCHolding:  last.BTCHolding,
		FinalNetWorthEUR: last.NetWorthEUR,
		FinalPnLEUR:      last.PnLNetEUR,
		FinalRealPnLEUR:  last.RealPnLNetEUR,
		TotalContribEUR:  last.TotalContribEUR,
	}
}

func convertReferralSeries(series []model.ReferralSnapshot) []models.SnapshotRow {
	out := make([]models.SnapshotRow, len(series))
	for i, s := range series {
		row := convertSeries([]model.Snapshot{s.Snapshot})[0]
		row.BTCFromReferrals = s.BTCFromReferrals
		row.EURFromReferrals = s.EURFromReferrals
		out[i] = row
	}
	return out
}
