package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jmorley-dev/sales-insights-api/pkg/global"
)

var Router *gin.Engine

func InitEngine() {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	Router = gin.Default()

	Router.Use(MetricsMiddleware())

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     global.GetAllowedOrigins(),
		AllowMethods:     []string{"GET", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

// InitializeRoutes wires the endpoints to their collaborators. The analyzer
// and the sales store are injected so handler tests can run against stubs.
func InitializeRoutes(svc InsightService, store ProductRanker) {
	insights = svc
	ranker = store

	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		insightRoutes := api.Group("/insights")
		insightRoutes.Use(SalesInsightMiddleware())
		{
			insightRoutes.GET("/sales", SalesInsights)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/top-products", GetTopProducts)
		}

		products := api.Group("/products")
		{
			products.DELETE("/:sku", DeleteProductBySKU)
		}

		customers := api.Group("/customers")
		{
			customers.DELETE("/:id", DeleteCustomer)
		}
	}

	Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
