package mongo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jmorley-dev/sales-insights-api/pkg/global"
	"github.com/jmorley-dev/sales-insights-api/pkg/models"
)

// SalesStore exposes the read-side analytics queries over the sales records.
// It satisfies the reader interfaces of the analyzer and the router, so tests
// can swap it out for stubs.
type SalesStore struct{}

// RecentSales returns the sales of the last N days joined with their product,
// most recent first. Sales whose product cannot be resolved are dropped by the
// $unwind stage, matching the inner-join semantics of the schema.
func (SalesStore) RecentSales(ctx context.Context, days int) ([]models.SaleWithProduct, error) {
	collection := GetCollection("sales")
	cutoff := time.Now().AddDate(0, 0, -days)

	pipeline := bson.A{
		bson.D{
			{Key: "$match", Value: bson.D{
				{Key: "sale_date", Value: bson.D{{Key: "$gte", Value: cutoff}}},
			}},
		},
		bson.D{
			{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: "products"},
				{Key: "localField", Value: "product_id"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "product"},
			}},
		},
		bson.D{
			{Key: "$unwind", Value: "$product"},
		},
		bson.D{
			{Key: "$sort", Value: bson.D{{Key: "sale_date", Value: -1}}},
		},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("Error querying recent sales: %v", err)
		return nil, &global.OperationalError{Message: "failed to fetch recent sales data", Cause: err}
	}
	defer cursor.Close(ctx)

	var rows []models.SaleWithProduct
	if err := cursor.All(ctx, &rows); err != nil {
		log.Printf("Error decoding recent sales: %v", err)
		return nil, &global.OperationalError{Message: "failed to fetch recent sales data", Cause: err}
	}

	return rows, nil
}

// TopProducts returns the best selling products of the last N days, grouped by
// product name, ordered by units sold descending and truncated to limit rows.
// Revenue is the sum of total_amount, rounded to cents.
func (SalesStore) TopProducts(ctx context.Context, days, limit int) ([]models.TopProduct, error) {
	collection := GetCollection("sales")
	cutoff := time.Now().AddDate(0, 0, -days)

	pipeline := bson.A{
		bson.D{
			{Key: "$match", Value: bson.D{
				{Key: "sale_date", Value: bson.D{{Key: "$gte", Value: cutoff}}},
			}},
		},
		bson.D{
			{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: "products"},
				{Key: "localField", Value: "product_id"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "product"},
			}},
		},
		bson.D{
			{Key: "$unwind", Value: "$product"},
		},
		bson.D{
			{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$product.name"},
				{Key: "total_sold", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
				{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$total_amount"}}},
			}},
		},
		bson.D{
			{Key: "$sort", Value: bson.D{{Key: "total_sold", Value: -1}}},
		},
		bson.D{
			{Key: "$limit", Value: limit},
		},
		bson.D{
			{Key: "$project", Value: bson.D{
				{Key: "_id", Value: 0},
				{Key: "product", Value: "$_id"},
				{Key: "total_sold", Value: 1},
				{Key: "revenue", Value: bson.D{{Key: "$round", Value: bson.A{"$revenue", 2}}}},
			}},
		},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("Error querying top products: %v", err)
		return nil, &global.OperationalError{Message: "failed to fetch top products data", Cause: err}
	}
	defer cursor.Close(ctx)

	var rows []models.TopProduct
	if err := cursor.All(ctx, &rows); err != nil {
		log.Printf("Error decoding top products: %v", err)
		return nil, &global.OperationalError{Message: "failed to fetch top products data", Cause: err}
	}

	return rows, nil
}
