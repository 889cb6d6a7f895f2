package handlers

import (
	"net/http"
	"strconv"

	"btc-projection/internal/api/models"
	"btc-projection/internal/model"
	"btc-projection/internal/platform"

	"github.com/gin-gonic/gin"
)

// PlatformHandler handles platform-level aggregation requests
type PlatformHandler struct{}

func NewPlatformHandler() *PlatformHandler {
	return &PlatformHandler{}
}

// GetTimeline handles GET /api/v1/platform/timeline
func (h *PlatformHandler) GetTimeline(c *gin.Context) {
	spec, err := timelineSpecFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAM",
				Message: err.Error(),
			},
		})
		return
	}

	points, err := platform.UsersTimeline(spec)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_TIMELINE",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.TimelineResponse{
		Timeline: convertTimeline(points),
		Count:    len(points),
	})
}

// BuildSnapshots handles POST /api/v1/platform/snapshots
func (h *PlatformHandler) BuildSnapshots(c *gin.Context) {
	var req models.PlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	timeline, err := platform.UsersTimeline(model.TimelineSpec{
		UserStarts: req.Timeline.UserStarts,
		UserEnds:   req.Timeline.UserEnds,
		Growth:     model.GrowthType(req.Timeline.GrowthType),
		Years:      req.Timeline.Years,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_TIMELINE",
				Message: err.Error(),
			},
		})
		return
	}

	assumptions := model.PlatformAssumptions{
		Market: model.MarketConditions{
			InitialPriceEUR: req.Assumptions.InitialPriceEUR,
			CAGR:            req.Assumptions.CAGR,
		},
		PerUserDCAEUR:     req.Assumptions.PerUserDCAEUR,
		YieldRate:         req.Assumptions.YieldRate,
		YieldFeePct:       req.Assumptions.YieldFeePct,
		ExchangeFeePct:    req.Assumptions.ExchangeFeePct,
		PlatformYieldRate: req.Assumptions.PlatformYieldRate,
	}

	build := platform.BuildMonthlySnapshots
	if req.WithInvestment {
		build = platform.BuildMonthlySnapshotsWithInvestment
	}
	snaps, err := build(timeline, assumptions)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "AGGREGATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	last := snaps[len(snaps)-1]
	response := models.PlatformResponse{
		Status: "completed",
		Summary: models.PlatformSummary{
			Months:           last.Month,
			FinalTotalUsers:  last.TotalUsers,
			TotalFeesBTC:     last.CumFeesBTC,
			FinalTreasuryBTC: last.TreasuryBTC,
			FinalTreasuryEUR: last.TreasuryEUR,
		},
	}
	if req.IncludeSeries {
		response.Series = convertPlatformSeries(snaps)
	}
	c.JSON(http.StatusOK, response)
}

func timelineSpecFromQuery(c *gin.Context) (model.TimelineSpec, error) {
	spec := model.TimelineSpec{
		Growth: model.GrowthType(c.DefaultQuery("growth_type", string(model.GrowthLinear))),
	}
	var err error
	if spec.UserStarts, err = strconv.Atoi(c.Query("user_starts")); err != nil {
		return spec, err
	}
	if spec.UserEnds, err = strconv.Atoi(c.Query("user_ends")); err != nil {
		return spec, err
	}
	if spec.Years, err = strconv.ParseFloat(c.Query("years"), 64); err != nil {
		return spec, err
	}
	return spec, nil
}

func convertTimeline(points []model.TimelinePoint) []models.TimelinePointRow {
	out := make([]models.TimelinePointRow, len(points))
	for i, p := range points {
		out[i] = models.TimelinePointRow{
			Month:      p.Month,
			NewUsers:   p.NewUsers,
			TotalUsers: p.TotalUsers,
		}
	}
	return out
}

func convertPlatformSeries(snaps []model.PlatformSnapshot) []models.PlatformSnapshotRow {
	out := make([]models.PlatformSnapshotRow, len(snaps))
	for i, s := range snaps {
		out[i] = models.PlatformSnapshotRow{
			Month:            s.Month,
			TotalUsers:       s.TotalUsers,
			PriceEUR:         s.PriceEUR,
			YieldFeeBTC:      s.YieldFeeBTC,
			ExchangeFeeBTC:   s.ExchangeFeeBTC,
			FeesBTC:          s.FeesBTC,
			FeesEUR:          s.FeesEUR,
			CumFeesBTC:       s.CumFeesBTC,
			TreasuryYieldBTC: s.TreasuryYieldBTC,
			TreasuryBTC:      s.TreasuryBTC,
			TreasuryEUR:      s.TreasuryEUR,
		}
	}
	return out
}
