package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jmorley-dev/sales-insights-api/pkg/global"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// MetricsMiddleware records request counts and latency per route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

// SalesInsightMiddleware validates the question and day-window parameters
// before the analyzer runs, so the core only ever sees pre-validated input.
func SalesInsightMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		question := c.Request.URL.Query().Get("question")
		if len(question) < 3 || len(question) > 200 {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid question", []global.ValidationError{
				{Field: "question", Message: "question must be between 3 and 200 characters", Code: "invalid_length"},
			}))
			c.Abort()
			return
		}

		days := 7
		if raw := c.Request.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > 365 {
				c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid days parameter", []global.ValidationError{
					{Field: "days", Message: "days must be an integer between 1 and 365", Code: "out_of_range"},
				}))
				c.Abort()
				return
			}
			days = parsed
		}

		c.Set("question", question)
		c.Set("days", days)
		c.Next()
	}
}
