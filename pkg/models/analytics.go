package models

// SaleWithProduct is one row of the sale/product join used by the analytics
// queries. The sale fields are inlined so the document decodes flat.
type SaleWithProduct struct {
	Sale    Sale    `bson:",inline"`
	Product Product `bson:"product"`
}

// TopProduct is one row of the top-products aggregate: quantity and revenue
// summed per product name over the requested window.
type TopProduct struct {
	Product   string  `json:"product" bson:"product"`
	TotalSold int     `json:"total_sold" bson:"total_sold"`
	Revenue   float64 `json:"revenue" bson:"revenue"`
}
