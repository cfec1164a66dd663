package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmorley-dev/sales-insights-api/pkg/models"
)

// reportTTL keeps the top-products aggregate fresh enough for dashboards while
// sparing the aggregation pipeline on hot windows. Analyzer answers are never
// cached here, only the deterministic aggregate.
const reportTTL = 5 * time.Minute

func topProductsKey(days, limit int) string {
	return fmt.Sprintf("report:top-products:%d:%d", days, limit)
}

// GetTopProductsFromCache returns the cached report for a window, or an error
// on miss or when Redis is unreachable. Callers treat any error as a miss.
func GetTopProductsFromCache(ctx context.Context, days, limit int) ([]models.TopProduct, error) {
	client := RedisClient()
	defer client.Close()

	raw, err := client.Get(ctx, topProductsKey(days, limit)).Result()
	if err != nil {
		return nil, err
	}

	var report []models.TopProduct
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached report: %w", err)
	}
	return report, nil
}

// CacheTopProducts stores a freshly computed report under its window key.
func CacheTopProducts(ctx context.Context, days, limit int, report []models.TopProduct) error {
	client := RedisClient()
	defer client.Close()

	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := client.Set(ctx, topProductsKey(days, limit), raw, reportTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache top products report: %w", err)
	}
	return nil
}
