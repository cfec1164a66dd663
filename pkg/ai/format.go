package ai

import (
	"fmt"
	"strings"

	"github.com/jmorley-dev/sales-insights-api/pkg/models"
)

// FormatSalesContext renders joined sale/product rows into the text block the
// model receives. Pure and deterministic: one line per row in input order,
// amounts with exactly 2 fractional digits, timestamps as dd/mm/yyyy HH:MM.
// This output is part of the effective prompt contract, so any change here
// changes what the model sees.
func FormatSalesContext(rows []models.SaleWithProduct) string {
	if len(rows) == 0 {
		return noSalesContext
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("- %s: %d units ($%.2f) at %s",
			row.Product.Name,
			row.Sale.Quantity,
			row.Sale.TotalAmount,
			row.Sale.SaleDate.Format("02/01/2006 15:04")))
	}
	return strings.Join(lines, "\n")
}
