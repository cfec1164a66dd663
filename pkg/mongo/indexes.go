package mongo

import (
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jmorley-dev/sales-insights-api/pkg/global"
)

type IndexConfig struct {
	CollectionName string
	IndexModel     mongo.IndexModel
}

var requiredIndexes = []IndexConfig{
	// Products: SKU is the unique business key
	{
		CollectionName: "products",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "sku", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_sku_unique"),
		},
	},
	{
		CollectionName: "products",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetName("idx_product_category_name"),
		},
	},

	// Customers: emails are stored lowercased, so uniqueness here also covers
	// case-only duplicates
	{
		CollectionName: "customers",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_customer_email_unique"),
		},
	},

	// Sales: the window queries filter on sale_date and join on product_id
	{
		CollectionName: "sales",
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "sale_date", Value: -1},
				{Key: "product_id", Value: 1},
			},
			Options: options.Index().SetName("idx_sale_date_product"),
		},
	},
	{
		CollectionName: "sales",
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "customer_id", Value: 1},
				{Key: "sale_date", Value: -1},
			},
			Options: options.Index().SetName("idx_sale_customer"),
		},
	},
}

func EnsureIndexes() error {
	log.Println("Starting index creation...")

	for _, idxConfig := range requiredIndexes {
		collection := GetCollection(idxConfig.CollectionName)
		ctx, cancel := global.GetDefaultTimer()
		defer cancel()

		indexName, err := collection.Indexes().CreateOne(ctx, idxConfig.IndexModel)
		if err != nil {
			log.Printf("Error creating index on collection %s: %v",
				idxConfig.CollectionName, err)
			return err
		}

		log.Printf("✓ Created index '%s' on collection '%s'", indexName, idxConfig.CollectionName)
	}

	log.Println("All indexes created successfully!")
	return nil
}

func EnsureIndexesOnStartup() {
	if err := EnsureIndexes(); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
}
