package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Customer represents a buyer in the sales records
type Customer struct {
	ID             bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string        `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email          string        `json:"email" bson:"email" validate:"required,email"`
	Phone          string        `json:"phone,omitempty" bson:"phone,omitempty" validate:"max=20"`
	Address        string        `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt      time.Time     `json:"created_at" bson:"created_at"`
	LastPurchaseAt time.Time     `json:"last_purchase_at,omitempty" bson:"last_purchase_at,omitempty"`
}

// Validate normalizes the email to lowercase and checks its shape. Emails are
// always stored lowercased so the unique index catches case-only duplicates.
func (c *Customer) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("customer name is required")
	}
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	if !emailPattern.MatchString(c.Email) {
		return fmt.Errorf("invalid email format: %q", c.Email)
	}
	return nil
}
