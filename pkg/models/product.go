package models

import (
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var skuPattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

// Product represents a catalog entry sales records are joined against
type Product struct {
	ID            bson.ObjectID `json:"id" bson:"_id,omitempty"`
	SKU           string        `json:"sku" bson:"sku" validate:"required,min=3,max=32"`
	Name          string        `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Description   string        `json:"description,omitempty" bson:"description,omitempty" validate:"max=2000"`
	Category      string        `json:"category,omitempty" bson:"category,omitempty" validate:"max=50"`
	Price         float64       `json:"price" bson:"price" validate:"required,gt=0"`
	StockQuantity int           `json:"stock_quantity" bson:"stock_quantity" validate:"gte=0"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}

// Validate enforces the write-side invariants: SKU shape, positive price,
// non-negative stock. The price is rounded to cents before checking.
func (p *Product) Validate() error {
	if !skuPattern.MatchString(p.SKU) {
		return fmt.Errorf("SKU %q must contain only uppercase letters, numbers and hyphens", p.SKU)
	}
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	p.Price = Round2(p.Price)
	if p.Price <= 0 {
		return fmt.Errorf("product price must be positive")
	}
	if p.StockQuantity < 0 {
		return fmt.Errorf("stock quantity cannot be negative")
	}
	return nil
}

// SetTimestamps sets created_at on first call and always updates updated_at
func (p *Product) SetTimestamps() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
