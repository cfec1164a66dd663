package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/jmorley-dev/sales-insights-api/internal/router"
	"github.com/jmorley-dev/sales-insights-api/pkg/ai"
	"github.com/jmorley-dev/sales-insights-api/pkg/global"
	"github.com/jmorley-dev/sales-insights-api/pkg/mongo"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongo.InitMongoDB()
	mongo.EnsureIndexesOnStartup()

	// Credential validation happens here, once. A deployment without an API
	// key dies now instead of failing on the first question.
	analyzer, err := ai.NewAnalyzer(mongo.SalesStore{})
	if err != nil {
		log.Fatalf("Failed to initialize sales analyzer: %v", err)
	}

	router.InitEngine()
	router.InitializeRoutes(analyzer, mongo.SalesStore{})

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
