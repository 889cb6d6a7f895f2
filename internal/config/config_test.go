package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
scenario:
  name: test
  market:
    initial_price_eur: 100000
    cagr: 0.21
    cpi_rate: 0.03
    years: 10
  contribution:
    monthly_eur: 500
    exchange_fee_pct: 0.01
  lending:
    ltv: 0.25
    loan_rate: 0.06
    yield_rate: 0.10
    platform_fee_from_yield_pct: 0.10
options:
  auto_draw_to_target: true
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid config", func(t *testing.T) {
		path := writeFile(t, dir, "config.yaml", validConfig)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "test", cfg.Scenario.Name)
		assert.True(t, cfg.Options.AutoDrawToTarget)

		in := cfg.ToInput()
		assert.Equal(t, 120, in.Months())
		assert.Equal(t, 0.25, in.Lending.LTV)
	})

	t.Run("invalid scenario rejected", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "scenario: {market: {initial_price_eur: -1, years: 10}}")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestLoad_ScenarioFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "preset.yaml", `
scenario:
  name: preset
  market:
    initial_price_eur: 100000
    cagr: 0.21
    years: 21
  contribution:
    monthly_eur: 4000
`)
	path := writeFile(t, dir, "config.yaml", `
scenario_file: preset.yaml
scenario:
  market:
    years: 5
  lending:
    ltv: 0.3
    yield_rate: 0.08
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "preset", cfg.Scenario.Name)
	assert.Equal(t, 100000.0, cfg.Scenario.Market.InitialPriceEUR)
	assert.Equal(t, 5.0, cfg.Scenario.Market.Years, "override wins")
	assert.Equal(t, 0.3, cfg.Scenario.Lending.LTV)
	assert.Equal(t, 4000.0, cfg.Scenario.Contribution.MonthlyEUR)
}

func TestMergeScenario_ZeroFieldsKeepBase(t *testing.T) {
	base := ScenarioConfig{
		Name:   "base",
		Market: MarketConfig{InitialPriceEUR: 100, CAGR: 0.1, Years: 2},
	}
	out := MergeScenario(base, ScenarioConfig{})
	assert.Equal(t, base, out)
}
