package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jmorley-dev/sales-insights-api/pkg/models"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrProductReferenced is returned when a delete would orphan sales records
	ErrProductReferenced = errors.New("product is referenced by existing sales")
)

// InsertProducts validates and stores a batch of products.
func InsertProducts(ctx context.Context, products []models.Product) ([]models.Product, error) {
	collection := GetCollection("products")

	docs := make([]interface{}, 0, len(products))
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid product %q: %w", products[i].SKU, err)
		}
		products[i].SetTimestamps()
		if products[i].ID.IsZero() {
			products[i].ID = bson.NewObjectID()
		}
		docs = append(docs, products[i])
	}

	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return products, nil
}

// InsertCustomers validates, normalizes and stores a batch of customers.
func InsertCustomers(ctx context.Context, customers []models.Customer) ([]models.Customer, error) {
	collection := GetCollection("customers")

	docs := make([]interface{}, 0, len(customers))
	for i := range customers {
		if err := customers[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid customer %q: %w", customers[i].Email, err)
		}
		if customers[i].ID.IsZero() {
			customers[i].ID = bson.NewObjectID()
		}
		docs = append(docs, customers[i])
	}

	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return customers, nil
}

// InsertSales validates and stores a batch of sales transactions.
func InsertSales(ctx context.Context, sales []models.Sale) error {
	collection := GetCollection("sales")

	docs := make([]interface{}, 0, len(sales))
	for i := range sales {
		if err := sales[i].Validate(); err != nil {
			return fmt.Errorf("invalid sale: %w", err)
		}
		docs = append(docs, sales[i])
	}

	_, err := collection.InsertMany(ctx, docs)
	return err
}

// DeleteProductBySKU removes a product unless sales still reference it
// (restrict semantics: a sale must always resolve to its product).
func DeleteProductBySKU(ctx context.Context, sku string) (*models.Product, error) {
	products := GetCollection("products")

	var product models.Product
	err := products.FindOne(ctx, bson.D{{Key: "sku", Value: sku}}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	referencing, err := GetCollection("sales").CountDocuments(ctx,
		bson.D{{Key: "product_id", Value: product.ID}})
	if err != nil {
		return nil, err
	}
	if referencing > 0 {
		return nil, ErrProductReferenced
	}

	if _, err := products.DeleteOne(ctx, bson.D{{Key: "_id", Value: product.ID}}); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteCustomerByID removes a customer and nulls the reference on their sales
// (set-null semantics: the transactions survive anonymized).
func DeleteCustomerByID(ctx context.Context, id bson.ObjectID) (*models.Customer, error) {
	customers := GetCollection("customers")

	var customer models.Customer
	err := customers.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	_, err = GetCollection("sales").UpdateMany(ctx,
		bson.D{{Key: "customer_id", Value: id}},
		bson.D{{Key: "$unset", Value: bson.D{{Key: "customer_id", Value: ""}}}})
	if err != nil {
		return nil, err
	}

	if _, err := customers.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return nil, err
	}
	return &customer, nil
}
