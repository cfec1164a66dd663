package mongo

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jmorley-dev/sales-insights-api/pkg/global"
)

var client *mongo.Client

// InitMongoDB connects the shared client and verifies the connection. Fatal on
// failure: the service cannot do anything useful without its record store.
func InitMongoDB() {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().ApplyURI(global.GetMongoURI()).SetServerAPIOptions(serverAPI)

	c, err := mongo.Connect(clientOptions)
	if err != nil {
		log.Fatalf("Failed to create MongoDB client: %v", err)
	}
	client = c

	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB successfully")
}

func GetDatabase() *mongo.Database {
	return client.Database(global.GetDatabaseName())
}

func GetCollection(collectionName string) *mongo.Collection {
	return GetDatabase().Collection(collectionName)
}

// Ping checks connectivity for the health endpoint.
func Ping(ctx context.Context) error {
	return client.Ping(ctx, nil)
}
