package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"btc-projection/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load a scenario from a separate YAML preset (e.g.
	// examples/scenarios/*.yaml). If both ScenarioFile and Scenario are
	// provided, Scenario overrides ScenarioFile field by field.
	ScenarioFile string         `yaml:"scenario_file"`
	Scenario     ScenarioConfig `yaml:"scenario"`
	Options      OptionsConfig  `yaml:"options"`
}

type ScenarioConfig struct {
	Name         string             `yaml:"name"`
	Market       MarketConfig       `yaml:"market"`
	Contribution ContributionConfig `yaml:"contribution"`
	Lending      LendingConfig      `yaml:"lending"`
}

type MarketConfig struct {
	InitialPriceEUR float64 `yaml:"initial_price_eur"`
	CAGR            float64 `yaml:"cagr"`
	CPIRate         float64 `yaml:"cpi_rate"`
	Years           float64 `yaml:"years"`
	SnapshotStep    int     `yaml:"snapshot_step"`
}

type ContributionConfig struct {
	MonthlyEUR       float64 `yaml:"monthly_eur"`
	IndexToInflation bool    `yaml:"index_to_inflation"`
	ExchangeFeePct   float64 `yaml:"exchange_fee_pct"`
}

type LendingConfig struct {
	LTV                     float64 `yaml:"ltv"`
	LoanRate                float64 `yaml:"loan_rate"`
	YieldRate               float64 `yaml:"yield_rate"`
	PlatformFeeFromYieldPct float64 `yaml:"platform_fee_from_yield_pct"`
}

type OptionsConfig struct {
	AutoDrawToTarget bool `yaml:"auto_draw_to_target"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If scenario_file is set, load it and merge in any explicit
	// overrides from c.Scenario.
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer interpreting relative paths as relative to the
			// config file directory, but fall back to the provided path
			// (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := LoadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.ToInput().Validate(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	return nil
}

func (c *Config) ToInput() model.SimulationInput {
	return model.SimulationInput{
		Market: model.MarketConditions{
			InitialPriceEUR: c.Scenario.Market.InitialPriceEUR,
			CAGR:            c.Scenario.Market.CAGR,
			CPIRate:         c.Scenario.Market.CPIRate,
			Years:           c.Scenario.Market.Years,
			SnapshotStep:    c.Scenario.Market.SnapshotStep,
		},
		Contribution: model.ContributionPolicy{
			MonthlyEUR:       c.Scenario.Contribution.MonthlyEUR,
			IndexToInflation: c.Scenario.Contribution.IndexToInflation,
			ExchangeFeePct:   c.Scenario.Contribution.ExchangeFeePct,
		},
		Lending: model.LendingPolicy{
			LTV:                     c.Scenario.Lending.LTV,
			LoanRate:                c.Scenario.Lending.LoanRate,
			YieldRate:               c.Scenario.Lending.YieldRate,
			PlatformFeeFromYieldPct: c.Scenario.Lending.PlatformFeeFromYieldPct,
		},
	}
}

type scenarioFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

// LoadScenarioFile reads a scenario preset (a YAML file with a single
// top-level scenario block).
func LoadScenarioFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, err
	}
	return w.Scenario, nil
}

// MergeScenario overlays non-zero fields from override onto base.
// This is used when loading a scenario preset and then applying
// overrides from the config or an API request.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Market.InitialPriceEUR != 0 {
		out.Market.InitialPriceEUR = override.Market.InitialPriceEUR
	}
	if override.Market.CAGR != 0 {
		out.Market.CAGR = override.Market.CAGR
	}
	if override.Market.CPIRate != 0 {
		out.Market.CPIRate = override.Market.CPIRate
	}
	if override.Market.Years != 0 {
		out.Market.Years = override.Market.Years
	}
	if override.Market.SnapshotStep != 0 {
		out.Market.SnapshotStep = override.Market.SnapshotStep
	}
	if override.Contribution.MonthlyEUR != 0 {
		out.Contribution.MonthlyEUR = override.Contribution.MonthlyEUR
	}
	if override.Contribution.IndexToInflation {
		out.Contribution.IndexToInflation = true
	}
	if override.Contribution.ExchangeFeePct != 0 {
		out.Contribution.ExchangeFeePct = override.Contribution.ExchangeFeePct
	}
	if override.Lending.LTV != 0 {
		out.Lending.LTV = override.Lending.LTV
	}
	if override.Lending.LoanRate != 0 {
		out.Lending.LoanRate = override.Lending.LoanRate
	}
	if override.Lending.YieldRate != 0 {
		out.Lending.YieldRate = override.Lending.YieldRate
	}
	if override.Lending.PlatformFeeFromYieldPct != 0 {
		out.Lending.PlatformFeeFromYieldPct = override.Lending.PlatformFeeFromYieldPct
	}
	return out
}
