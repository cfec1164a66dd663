package router

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jmorley-dev/sales-insights-api/pkg/ai"
	"github.com/jmorley-dev/sales-insights-api/pkg/global"
	"github.com/jmorley-dev/sales-insights-api/pkg/models"
	"github.com/jmorley-dev/sales-insights-api/pkg/mongo"
	"github.com/jmorley-dev/sales-insights-api/pkg/redis"
)

// InsightService is the question-answering capability behind /insights/sales.
type InsightService interface {
	Analyze(ctx context.Context, question string, days int) (*ai.Insight, error)
}

// ProductRanker is the aggregate query behind /analytics/top-products.
type ProductRanker interface {
	TopProducts(ctx context.Context, days, limit int) ([]models.TopProduct, error)
}

var (
	insights InsightService
	ranker   ProductRanker
)

func HealthCheck(c *gin.Context) {
	if err := mongo.Ping(c); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Database connection failed", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}))
}

// SalesInsights answers a free-text question about the recent sales window.
// question and days arrive pre-validated from SalesInsightMiddleware.
func SalesInsights(c *gin.Context) {
	question := c.GetString("question")
	days := c.GetInt("days")

	insight, err := insights.Analyze(c.Request.Context(), question, days)
	if err != nil {
		// Full detail stays in the server log; the caller gets a generic message.
		log.Printf("Error generating sales insight: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error processing your question", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(insight))
}

// GetTopProducts returns the best selling products for a window, with a short
// lived Redis read-through so repeated dashboard loads skip the aggregation.
func GetTopProducts(c *gin.Context) {
	days, ok := boundedQueryInt(c, "days", 30, 1, 365)
	if !ok {
		return
	}
	limit, ok := boundedQueryInt(c, "limit", 5, 1, 20)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if cached, err := redis.GetTopProductsFromCache(ctx, days, limit); err == nil {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, global.SuccessResponse(cached))
		return
	}

	report, err := ranker.TopProducts(ctx, days, limit)
	if err != nil {
		// Never render a failed aggregate as an empty list.
		log.Printf("Error fetching top products: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error fetching top products", nil))
		return
	}

	if cacheErr := redis.CacheTopProducts(ctx, days, limit, report); cacheErr != nil {
		log.Printf("Warning: Failed to cache top products report: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(report))
}

// DeleteProductBySKU removes a catalog entry. Products referenced by sales are
// protected: the sales history must stay resolvable.
func DeleteProductBySKU(c *gin.Context) {
	sku := c.Param("sku")
	if len(sku) < 3 || len(sku) > 32 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid SKU format", []global.ValidationError{
			{Field: "sku", Message: "SKU must be between 3 and 32 characters", Code: "invalid_format"},
		}))
		return
	}

	deleted, err := mongo.DeleteProductBySKU(c.Request.Context(), sku)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrProductNotFound):
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "sku", Message: "No product exists with this SKU", Code: "not_found"},
			}))
		case errors.Is(err, mongo.ErrProductReferenced):
			c.JSON(http.StatusConflict, global.ErrorResponse("Product has sales history and cannot be deleted", nil))
		default:
			log.Printf("Error deleting product: %v", err)
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to delete product", nil))
		}
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"deleted_product": deleted,
		"message":         "Product successfully deleted",
	}))
}

// DeleteCustomer removes a customer; their sales survive with the customer
// reference cleared.
func DeleteCustomer(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid customer id", []global.ValidationError{
			{Field: "id", Message: "id must be a valid object id", Code: "invalid_format"},
		}))
		return
	}

	deleted, err := mongo.DeleteCustomerByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Customer not found", nil))
			return
		}
		log.Printf("Error deleting customer: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to delete customer", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"deleted_customer": deleted,
		"message":          "Customer successfully deleted",
	}))
}

// boundedQueryInt parses an optional integer query parameter and rejects the
// request when it falls outside [min, max].
func boundedQueryInt(c *gin.Context, name string, defaultValue, min, max int) (int, bool) {
	raw := c.Request.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < min || value > max {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid "+name+" parameter", []global.ValidationError{
			{Field: name, Message: name + " must be an integer between " +
				strconv.Itoa(min) + " and " + strconv.Itoa(max), Code: "out_of_range"},
		}))
		return 0, false
	}
	return value, true
}
