package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestProductValidateSKUPattern(t *testing.T) {
	valid := []string{"WID-001", "A1", "GAD-PRO-2", "123-456"}
	for _, sku := range valid {
		p := Product{SKU: sku, Name: "Thing", Price: 9.99}
		assert.NoError(t, p.Validate(), "sku %q should be valid", sku)
	}

	invalid := []string{"wid-001", "WID 001", "wïd", "", "WID_001"}
	for _, sku := range invalid {
		p := Product{SKU: sku, Name: "Thing", Price: 9.99}
		assert.Error(t, p.Validate(), "sku %q should be rejected", sku)
	}
}

func TestProductValidateRoundsPrice(t *testing.T) {
	p := Product{SKU: "WID-001", Name: "Widget", Price: 10.006}

	require.NoError(t, p.Validate())
	assert.Equal(t, 10.01, p.Price)
}

func TestProductValidateRejectsNonPositivePrice(t *testing.T) {
	p := Product{SKU: "WID-001", Name: "Widget", Price: 0}
	assert.Error(t, p.Validate())

	p = Product{SKU: "WID-001", Name: "Widget", Price: -5}
	assert.Error(t, p.Validate())
}

func TestProductValidateRejectsNegativeStock(t *testing.T) {
	p := Product{SKU: "WID-001", Name: "Widget", Price: 9.99, StockQuantity: -1}
	assert.Error(t, p.Validate())
}

func TestCustomerValidateNormalizesEmail(t *testing.T) {
	c := Customer{Name: "Alice Martin", Email: " Alice.Martin@Example.COM "}

	require.NoError(t, c.Validate())
	assert.Equal(t, "alice.martin@example.com", c.Email)
}

func TestCustomerValidateRejectsMalformedEmail(t *testing.T) {
	for _, email := range []string{"", "alice", "alice@", "@example.com", "a b@example.com"} {
		c := Customer{Name: "Alice", Email: email}
		assert.Error(t, c.Validate(), "email %q should be rejected", email)
	}
}

func TestSaleValidateRoundsAmounts(t *testing.T) {
	s := Sale{
		ProductID:   bson.NewObjectID(),
		Quantity:    3,
		UnitPrice:   10.004,
		TotalAmount: 30.012,
	}

	require.NoError(t, s.Validate())
	assert.Equal(t, 10.00, s.UnitPrice)
	assert.Equal(t, 30.01, s.TotalAmount)
}

func TestSaleValidateDefaultsSaleDate(t *testing.T) {
	s := Sale{ProductID: bson.NewObjectID(), Quantity: 1, UnitPrice: 5, TotalAmount: 5}

	require.NoError(t, s.Validate())
	assert.WithinDuration(t, time.Now(), s.SaleDate, 5*time.Second)
}

func TestSaleValidateRejectsBadValues(t *testing.T) {
	base := Sale{ProductID: bson.NewObjectID(), Quantity: 1, UnitPrice: 5, TotalAmount: 5}

	s := base
	s.ProductID = bson.ObjectID{}
	assert.Error(t, s.Validate())

	s = base
	s.Quantity = 0
	assert.Error(t, s.Validate())

	s = base
	s.UnitPrice = -1
	assert.Error(t, s.Validate())

	s = base
	s.TotalAmount = 0
	assert.Error(t, s.Validate())
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.0, Round2(10))
	assert.Equal(t, 10.01, Round2(10.006))
	assert.Equal(t, 9.99, Round2(9.994))
}
