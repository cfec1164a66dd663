package models

import (
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Sale represents a single sales transaction. CustomerID is optional: deleting
// a customer nulls the reference, while the referenced product must outlive
// every sale that points at it.
type Sale struct {
	ID            bson.ObjectID  `json:"id" bson:"_id,omitempty"`
	ProductID     bson.ObjectID  `json:"product_id" bson:"product_id" validate:"required"`
	CustomerID    *bson.ObjectID `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	Quantity      int            `json:"quantity" bson:"quantity" validate:"required,gte=1"`
	UnitPrice     float64        `json:"unit_price" bson:"unit_price" validate:"required,gt=0"`
	TotalAmount   float64        `json:"total_amount" bson:"total_amount" validate:"required,gt=0"`
	SaleDate      time.Time      `json:"sale_date" bson:"sale_date"`
	PaymentMethod string         `json:"payment_method,omitempty" bson:"payment_method,omitempty" validate:"max=20"`
}

// Validate checks the transaction invariants and rounds both amounts to cents.
// A zero sale_date defaults to now, matching the storage default in the schema.
func (s *Sale) Validate() error {
	if s.ProductID.IsZero() {
		return fmt.Errorf("sale must reference a product")
	}
	if s.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	s.UnitPrice = Round2(s.UnitPrice)
	s.TotalAmount = Round2(s.TotalAmount)
	if s.UnitPrice <= 0 || s.TotalAmount <= 0 {
		return fmt.Errorf("unit price and total amount must be positive")
	}
	if s.SaleDate.IsZero() {
		s.SaleDate = time.Now()
	}
	return nil
}

// Round2 rounds a monetary value to 2 fractional digits.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
