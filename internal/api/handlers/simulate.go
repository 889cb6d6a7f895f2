package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"btc-projection/internal/api/models"
	"btc-projection/internal/config"
	"btc-projection/internal/model"
	"btc-projection/internal/sim"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles projection-related requests
type SimulateHandler struct {
	store *ResultStore
}

// NewSimulateHandler creates a new projection handler
func NewSimulateHandler(store *ResultStore) *SimulateHandler {
	return &SimulateHandler{store: store}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	in, err := buildInput(req.Config)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	res, err := sim.Run(in, simOptions(req.Options))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	response := models.SimulateResponse{
		ID:      h.store.Put(res.Snapshots),
		Status:  "completed",
		Summary: buildSummary(res),
	}
	if req.Options.IncludeSeries {
		response.Series = convertSeries(res.Snapshots)
	}
	c.JSON(http.StatusOK, response)
}

// GetSeries handles GET /api/v1/simulate/:id/series
func (h *SimulateHandler) GetSeries(c *gin.Context) {
	id := c.Param("id")
	series, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "RESULT_NOT_FOUND",
				Message: "Unknown or expired result id. Re-run the simulation or use include_series=true.",
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":     id,
		"series": convertSeries(series),
	})
}

// Compare handles POST /api/v1/simulate/compare
func (h *SimulateHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		merged := mergeConfigs(req.BaseConfig, variation.Config)
		in, err := buildInput(merged)
		if err != nil {
			continue // Skip invalid variations
		}
		res, err := sim.Run(in, simOptions(req.Options))
		if err != nil {
			continue
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Summary: buildSummary(res),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// Helper methods

func simOptions(o models.SimulateOptions) sim.Options {
	return sim.Options{
		AutoDrawToTarget: o.AutoDrawToTarget,
		SnapshotStep:     o.SnapshotStep,
	}
}

// buildInput resolves an inline scenario, optionally merged on top of a
// named preset from the scenario directory.
func buildInput(req models.SimulateConfig) (model.SimulationInput, error) {
	scenario := toScenarioConfig(req.Scenario)

	if req.ScenarioFile != "" {
		// scenario_file is just the preset name (e.g. "1_steady_dca");
		// files are looked up in the scenario directory.
		path := filepath.Join(ScenarioDir(), req.ScenarioFile+".yaml")
		loaded, err := config.LoadScenarioFile(path)
		if err != nil {
			log.Printf("SimulateHandler: failed to load scenario file %s: %v", path, err)
			return model.SimulationInput{}, err
		}
		scenario = config.MergeScenario(loaded, scenario)
	}

	cfg := &config.Config{Scenario: scenario}
	if err := cfg.Validate(); err != nil {
		return model.SimulationInput{}, err
	}
	return cfg.ToInput(), nil
}

func toScenarioConfig(body models.ScenarioBody) config.ScenarioConfig {
	return config.ScenarioConfig{
		Name: body.Name,
		Market: config.MarketConfig{
			InitialPriceEUR: body.Market.InitialPriceEUR,
			CAGR:            body.Market.CAGR,
			CPIRate:         body.Market.CPIRate,
			Years:           body.Market.Years,
			SnapshotStep:    body.Market.SnapshotStep,
		},
		Contribution: config.ContributionConfig{
			MonthlyEUR:       body.Contribution.MonthlyEUR,
			IndexToInflation: body.Contribution.IndexToInflation,
			ExchangeFeePct:   body.Contribution.ExchangeFeePct,
		},
		Lending: config.LendingConfig{
			LTV:                     body.Lending.LTV,
			LoanRate:                body.Lending.LoanRate,
			YieldRate:               body.Lending.YieldRate,
			PlatformFeeFromYieldPct: body.Lending.PlatformFeeFromYieldPct,
		},
	}
}

func mergeConfigs(base, override models.SimulateConfig) models.SimulateConfig {
	merged := base
	if override.ScenarioFile != "" {
		merged.ScenarioFile = override.ScenarioFile
	}
	mergedScenario := config.MergeScenario(toScenarioConfig(base.Scenario), toScenarioConfig(override.Scenario))
	merged.Scenario = fromScenarioConfig(mergedScenario)
	return merged
}

func fromScenarioConfig(sc config.ScenarioConfig) models.ScenarioBody {
	return models.ScenarioBody{
		Name: sc.Name,
		Market: models.MarketBody{
			InitialPriceEUR: sc.Market.InitialPriceEUR,
			CAGR:            sc.Market.CAGR,
			CPIRate:         sc.Market.CPIRate,
			Years:           sc.Market.Years,
			SnapshotStep:    sc.Market.SnapshotStep,
		},
		Contribution: models.ContributionBody{
			MonthlyEUR:       sc.Contribution.MonthlyEUR,
			IndexToInflation: sc.Contribution.IndexToInflation,
			ExchangeFeePct:   sc.Contribution.ExchangeFeePct,
		},
		Lending: models.LendingBody{
			LTV:                     sc.Lending.LTV,
			LoanRate:                sc.Lending.LoanRate,
			YieldRate:               sc.Lending.YieldRate,
			PlatformFeeFromYieldPct: sc.Lending.PlatformFeeFromYieldPct,
		},
	}
}

func buildSummary(res *sim.Result) models.Summary {
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
		TotalInterestEUR: res.TotalInterestEUR,
		TotalFeesEUR:     res.TotalYieldFeesEUR + res.TotalExchangeFeesEUR,
	}
}

func convertSeries(series []model.Snapshot) []models.SnapshotRow {
	out := make([]models.SnapshotRow, len(series))
	for i, s := range series {
		out[i] = models.SnapshotRow{
			Month:               s.Month,
			PriceEUR:            s.PriceEUR,
			ContributionEUR:     s.ContributionEUR,
			BTCBought:           s.BTCBought,
			BTCHolding:          s.BTCHolding,
			BTCValueEUR:         s.BTCValueEUR,
			LoanOutstandingEUR:  s.LoanOutstandingEUR,
			InterestAccruedEUR:  s.InterestAccruedEUR,
			YieldEarnedEUR:      s.YieldEarnedEUR,
			CashBalanceEUR:      s.CashBalanceEUR,
			TotalContribEUR:     s.TotalContribEUR,
			TotalContribRealEUR: s.TotalContribRealEUR,
			NetWorthEUR:         s.NetWorthEUR,
			PnLNetEUR:           s.PnLNetEUR,
			InflationIndex:      s.InflationIndex,
			RealNetWorthEUR:     s.RealNetWorthEUR,
			RealPnLNetEUR:       s.RealPnLNetEUR,
		}
	}
	return out
}

// ScenarioDir resolves the scenario preset directory (SCENARIO_DIR, or
// examples/scenarios relative to the working directory).
func ScenarioDir() string {
	dir := os.Getenv("SCENARIO_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "scenarios")
		} else {
			dir = "./examples/scenarios"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}
