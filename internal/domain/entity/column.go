package entity

import "strings"

// Column identifica um atributo de Record pelo nome de cabeçalho da planilha.
type Column string

const (
	ColumnShipMode    Column = "Ship Mode"
	ColumnSegment     Column = "Segment"
	ColumnCategory    Column = "Category"
	ColumnSubCategory Column = "Sub-Category"
	ColumnSales       Column = "Sales"
	ColumnProfit      Column = "Profit"
	ColumnDiscount    Column = "Discount"
	ColumnQuantity    Column = "Quantity"
	ColumnRegion      Column = "Region"
	ColumnState       Column = "State"
	ColumnCity        Column = "City"
	ColumnPostalCode  Column = "Postal Code"
	ColumnLatitude    Column = "Latitude"
	ColumnLongitude   Column = "Longitude"
	ColumnOrderDate   Column = "Order Date"
)

// AllColumns lists every column a Record knows about, in display order.
var AllColumns = []Column{
	ColumnOrderDate,
	ColumnShipMode,
	ColumnSegment,
	ColumnCategory,
	ColumnSubCategory,
	ColumnRegion,
	ColumnState,
	ColumnCity,
	ColumnPostalCode,
	ColumnLatitude,
	ColumnLongitude,
	ColumnSales,
	ColumnProfit,
	ColumnDiscount,
	ColumnQuantity,
}

// GroupKeys são as colunas categóricas aceitas para agregação.
var GroupKeys = []Column{
	ColumnShipMode,
	ColumnSegment,
	ColumnCategory,
	ColumnSubCategory,
	ColumnState,
	ColumnCity,
	ColumnRegion,
}

// IsGroupKey reports whether c can be used to partition a dataset.
func (c Column) IsGroupKey() bool {
	for _, k := range GroupKeys {
		if k == c {
			return true
		}
	}
	return false
}

// ParseGroupKey resolves a user supplied name ("sub-category", "Ship Mode",
// "ship_mode") to a categorical column.
func ParseGroupKey(name string) (Column, bool) {
	c, ok := ParseColumn(name)
	if !ok || !c.IsGroupKey() {
		return "", false
	}
	return c, true
}

// ParseColumn resolves a header or flag value to a Column, ignoring case,
// spaces, dashes and underscores.
func ParseColumn(name string) (Column, bool) {
	c, ok := columnAliases[NormalizeHeader(name)]
	return c, ok
}

// NormalizeHeader reduz um cabeçalho à forma usada para comparação.
func NormalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	replacer := strings.NewReplacer(" ", "", "-", "", "_", "", ".", "")
	return replacer.Replace(name)
}

var columnAliases = map[string]Column{
	"shipmode":    ColumnShipMode,
	"segment":     ColumnSegment,
	"category":    ColumnCategory,
	"subcategory": ColumnSubCategory,
	"sales":       ColumnSales,
	"profit":      ColumnProfit,
	"discount":    ColumnDiscount,
	"quantity":    ColumnQuantity,
	"region":      ColumnRegion,
	"state":       ColumnState,
	"city":        ColumnCity,
	"postalcode":  ColumnPostalCode,
	"zipcode":     ColumnPostalCode,
	"latitude":    ColumnLatitude,
	"lat":         ColumnLatitude,
	"longitude":   ColumnLongitude,
	"lon":         ColumnLongitude,
	"lng":         ColumnLongitude,
	"orderdate":   ColumnOrderDate,
}
