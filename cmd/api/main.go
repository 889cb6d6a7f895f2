package main

import (
	"fmt"
	"log"
	"os"

	"btc-projection/internal/api/handlers"
	"btc-projection/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	store := handlers.NewResultStore()
	simulateHandler := handlers.NewSimulateHandler(store)
	referralHandler := handlers.NewReferralHandler()
	platformHandler := handlers.NewPlatformHandler()
	scenariosHandler := handlers.NewScenariosHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.GET("/simulate/:id/series", simulateHandler.GetSeries)
		api.POST("/simulate/compare", simulateHandler.Compare)
		api.POST("/simulate/referrals", referralHandler.RunWithReferrals)

		api.GET("/platform/timeline", platformHandler.GetTimeline)
		api.POST("/platform/snapshots", platformHandler.BuildSnapshots)

		api.GET("/scenarios", scenariosHandler.ListScenarios)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
