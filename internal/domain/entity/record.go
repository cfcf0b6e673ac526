package entity

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Record represents one sales transaction. Values are copied out of the
// Dataset, so a loaded Record is never mutated by the pipeline.
type Record struct {
	ShipMode    string          `json:"ship_mode"`
	Segment     string          `json:"segment"`
	Category    string          `json:"category"`
	SubCategory string          `json:"sub_category"`
	Sales       decimal.Decimal `json:"sales"`
	Profit      decimal.Decimal `json:"profit"`
	Discount    decimal.Decimal `json:"discount"`
	Quantity    int             `json:"quantity"`
	Region      string          `json:"region"`
	State       string          `json:"state"`
	City        string          `json:"city"`
	PostalCode  string          `json:"postal_code"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	// HasLocation é falso quando a linha não trouxe latitude/longitude.
	HasLocation bool `json:"has_location"`
	// OrderDate zero significa data ausente.
	OrderDate time.Time `json:"order_date"`
}

// Categorical returns the value of a categorical column. The second result is
// false for columns that are not group keys.
func (r Record) Categorical(c Column) (string, bool) {
	switch c {
	case ColumnShipMode:
		return r.ShipMode, true
	case ColumnSegment:
		return r.Segment, true
	case ColumnCategory:
		return r.Category, true
	case ColumnSubCategory:
		return r.SubCategory, true
	case ColumnRegion:
		return r.Region, true
	case ColumnState:
		return r.State, true
	case ColumnCity:
		return r.City, true
	case ColumnPostalCode:
		return r.PostalCode, true
	}
	return "", false
}

// HasOrderDate reports whether the order date cell was filled.
func (r Record) HasOrderDate() bool {
	return !r.OrderDate.IsZero()
}

// Format renders a column for tables and CSV output.
func (r Record) Format(c Column) string {
	if v, ok := r.Categorical(c); ok {
		return v
	}
	switch c {
	case ColumnSales:
		return r.Sales.StringFixed(2)
	case ColumnProfit:
		return r.Profit.StringFixed(2)
	case ColumnDiscount:
		return r.Discount.String()
	case ColumnQuantity:
		return strconv.Itoa(r.Quantity)
	case ColumnLatitude:
		if !r.HasLocation {
			return ""
		}
		return strconv.FormatFloat(r.Latitude, 'f', -1, 64)
	case ColumnLongitude:
		if !r.HasLocation {
			return ""
		}
		return strconv.FormatFloat(r.Longitude, 'f', -1, 64)
	case ColumnOrderDate:
		if !r.HasOrderDate() {
			return ""
		}
		return r.OrderDate.Format("2006-01-02")
	}
	return ""
}
