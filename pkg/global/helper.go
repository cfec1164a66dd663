package global

import (
	"context"
	"log"
	"os"
	"strings"
	"time"
)

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDefaultTimer() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func GetMongoURI() string {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI is not set in environment variables")
	}
	return mongoURI
}

func GetDatabaseName() string {
	dbName := GetEnvOrDefault("MONGODB_DATABASE", "sales_insights")
	return dbName
}

// GetAllowedOrigins returns the comma-separated CORS origin list from the
// environment, defaulting to the local frontend dev servers.
func GetAllowedOrigins() []string {
	raw := GetEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}
