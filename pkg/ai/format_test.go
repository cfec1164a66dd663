package ai

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jmorley-dev/sales-insights-api/pkg/models"
)

func saleRow(name string, quantity int, total float64, date time.Time) models.SaleWithProduct {
	return models.SaleWithProduct{
		Sale: models.Sale{
			Quantity:    quantity,
			TotalAmount: total,
			SaleDate:    date,
		},
		Product: models.Product{Name: name},
	}
}

func TestFormatSalesContextEmpty(t *testing.T) {
	assert.Equal(t, noSalesContext, FormatSalesContext(nil))
	assert.Equal(t, noSalesContext, FormatSalesContext([]models.SaleWithProduct{}))
}

func TestFormatSalesContextSingleSale(t *testing.T) {
	rows := []models.SaleWithProduct{
		saleRow("Widget", 3, 30.00, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)),
	}

	got := FormatSalesContext(rows)

	assert.Contains(t, got, "Widget")
	assert.Contains(t, got, "3 units")
	assert.Contains(t, got, "30.00")
	assert.Contains(t, got, "15/01/2024 10:30")
}

func TestFormatSalesContextPreservesInputOrder(t *testing.T) {
	rows := []models.SaleWithProduct{
		saleRow("Gadget Pro", 2, 99.80, time.Date(2024, 3, 2, 18, 5, 0, 0, time.UTC)),
		saleRow("Widget", 1, 10.00, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)),
		saleRow("Mini Speaker", 4, 118.00, time.Date(2024, 2, 28, 14, 45, 0, 0, time.UTC)),
	}

	got := FormatSalesContext(rows)
	lines := strings.Split(got, "\n")

	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Gadget Pro")
	assert.Contains(t, lines[1], "Widget")
	assert.Contains(t, lines[2], "Mini Speaker")
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestFormatSalesContextIsDeterministic(t *testing.T) {
	rows := []models.SaleWithProduct{
		saleRow("Widget", 3, 30.00, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)),
		saleRow("USB-C Cable", 10, 72.50, time.Date(2024, 1, 14, 8, 15, 0, 0, time.UTC)),
	}

	assert.Equal(t, FormatSalesContext(rows), FormatSalesContext(rows))
}

func TestFormatSalesContextRendersTwoDecimals(t *testing.T) {
	rows := []models.SaleWithProduct{
		saleRow("Widget", 1, 10, time.Date(2024, 6, 1, 0, 5, 0, 0, time.UTC)),
	}

	got := FormatSalesContext(rows)

	assert.Contains(t, got, "$10.00")
	assert.Contains(t, got, "01/06/2024 00:05")
}
