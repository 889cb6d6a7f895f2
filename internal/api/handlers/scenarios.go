package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"btc-projection/internal/api/models"
	"btc-projection/internal/config"

	"github.com/gin-gonic/gin"
)

// ScenariosHandler handles scenario preset requests
type ScenariosHandler struct {
	scenarioDir string
}

// NewScenariosHandler creates a new scenario handler
func NewScenariosHandler() *ScenariosHandler {
	dir := ScenarioDir()
	log.Printf("ScenariosHandler: Using scenario directory: %s", dir)
	return &ScenariosHandler{scenarioDir: dir}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenariosHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{}

	entries, err := os.ReadDir(h.scenarioDir)
	if err != nil {
		log.Printf("ScenariosHandler: failed to read scenario directory %s: %v", h.scenarioDir, err)
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.scenarioDir, entry.Name())
		info, err := h.loadScenarioInfo(path, entry.Name())
		if err != nil {
			log.Printf("ScenariosHandler: failed to load scenario file %s: %v", path, err)
			continue // Skip invalid files
		}
		scenarios = append(scenarios, *info)
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}

func (h *ScenariosHandler) loadScenarioInfo(path, filename string) (*models.ScenarioInfo, error) {
	sc, err := config.LoadScenarioFile(path)
	if err != nil {
		return nil, err
	}

	// Keep the filename without extension as the ID, matching what the
	// simulate endpoint accepts as scenario_file.
	id := strings.TrimSuffix(filename, ".yaml")

	name := sc.Name
	if name == "" {
		name = id
	}

	return &models.ScenarioInfo{
		ID:   id,
		Name: name,
		File: path,
		Specs: models.ScenarioSpecs{
			Years:      sc.Market.Years,
			CAGR:       sc.Market.CAGR,
			MonthlyEUR: sc.Contribution.MonthlyEUR,
			LTV:        sc.Lending.LTV,
		},
	}, nil
}
