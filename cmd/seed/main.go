package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"

	"github.com/jmorley-dev/sales-insights-api/pkg/models"
	"github.com/jmorley-dev/sales-insights-api/pkg/mongo"
)

// Loads a small demo dataset for local runs: a handful of products and
// customers, plus a month of sales spread over them.
func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongo.InitMongoDB()
	mongo.EnsureIndexesOnStartup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := mongo.InsertProducts(ctx, []models.Product{
		{SKU: "WID-001", Name: "Widget", Category: "Gadgets", Price: 10.00, StockQuantity: 120},
		{SKU: "GAD-PRO-2", Name: "Gadget Pro", Category: "Gadgets", Price: 49.90, StockQuantity: 45},
		{SKU: "CBL-USB-C", Name: "USB-C Cable", Category: "Accessories", Price: 7.25, StockQuantity: 300},
		{SKU: "HDP-BT", Name: "Bluetooth Headphones", Category: "Audio", Price: 89.99, StockQuantity: 60},
		{SKU: "SPK-MINI", Name: "Mini Speaker", Category: "Audio", Price: 29.50, StockQuantity: 80},
	})
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	log.Printf("Seeded %d products", len(products))

	customers, err := mongo.InsertCustomers(ctx, []models.Customer{
		{Name: "Alice Martin", Email: "Alice.Martin@example.com", Phone: "555-0101"},
		{Name: "Bruno Costa", Email: "bruno.costa@example.com", Address: "42 Harbor St"},
		{Name: "Chen Wei", Email: "chen.wei@example.com"},
	})
	if err != nil {
		log.Fatalf("Failed to seed customers: %v", err)
	}
	log.Printf("Seeded %d customers", len(customers))

	rng := rand.New(rand.NewSource(42))
	payments := []string{"credit_card", "debit_card", "cash", ""}

	var sales []models.Sale
	for i := 0; i < 60; i++ {
		product := products[rng.Intn(len(products))]
		quantity := 1 + rng.Intn(5)

		sale := models.Sale{
			ProductID:     product.ID,
			Quantity:      quantity,
			UnitPrice:     product.Price,
			TotalAmount:   models.Round2(float64(quantity) * product.Price),
			SaleDate:      time.Now().Add(-time.Duration(rng.Intn(30*24)) * time.Hour),
			PaymentMethod: payments[rng.Intn(len(payments))],
		}
		// Roughly a third of sales are anonymous walk-ins
		if rng.Intn(3) > 0 {
			customer := customers[rng.Intn(len(customers))]
			sale.CustomerID = &customer.ID
		}
		sales = append(sales, sale)
	}

	if err := mongo.InsertSales(ctx, sales); err != nil {
		log.Fatalf("Failed to seed sales: %v", err)
	}
	log.Printf("Seeded %d sales over the last 30 days", len(sales))
}
