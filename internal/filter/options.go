package filter

import "math"

// Categories are the grocery categories offered when the catalog has none.
var Categories = []string{"Fruits", "Vegetables", "Dairy", "Snacks", "Beverages", "Spices"}

// PriceOption is a selectable price preset.
type PriceOption struct {
	Range PriceRange
	Label string
}

var PriceRanges = []PriceOption{
	{Range: PriceRange{Min: 0, Max: 100}, Label: "Under ₹100"},
	{Range: PriceRange{Min: 100, Max: 300}, Label: "₹100 - ₹300"},
	{Range: PriceRange{Min: 300, Max: 500}, Label: "₹300 - ₹500"},
	{Range: PriceRange{Min: 500, Max: 1000}, Label: "₹500 - ₹1,000"},
	{Range: PriceRange{Min: 1000, Max: math.Inf(1)}, Label: "Above ₹1,000"},
}
