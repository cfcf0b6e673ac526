package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregateRow holds the sums for one distinct value of the group key.
type AggregateRow struct {
	Key    string          `json:"key"`
	Sales  decimal.Decimal `json:"sales"`
	Profit decimal.Decimal `json:"profit"`
	Count  int             `json:"count"`
}

// TimeSeriesRow is one calendar month of a metric.
type TimeSeriesRow struct {
	// Month é sempre o primeiro dia do mês, em UTC.
	Month time.Time       `json:"month"`
	Value decimal.Decimal `json:"value"`
}

// Label formats the bucket as YYYY-MM.
func (t TimeSeriesRow) Label() string {
	return t.Month.Format("2006-01")
}

// LocationAggregate is an AggregateRow keyed by a coordinate pair, carrying
// the most frequent descriptive attributes of the records at that point.
type LocationAggregate struct {
	Latitude   float64         `json:"latitude"`
	Longitude  float64         `json:"longitude"`
	Metric     Metric          `json:"metric"`
	Value      decimal.Decimal `json:"value"`
	Discount   decimal.Decimal `json:"discount"`
	Quantity   int             `json:"quantity"`
	Region     string          `json:"region"`
	PostalCode string          `json:"postal_code"`
	State      string          `json:"state"`
	City       string          `json:"city"`
	Count      int             `json:"count"`
}

// ShareRow is the percentage of a metric total held by one group.
type ShareRow struct {
	Key     string          `json:"key"`
	Value   decimal.Decimal `json:"value"`
	Percent float64         `json:"percent"`
}

// HeatmapGrid bins location values into a latitude/longitude grid. Cells[0]
// is the northernmost row; Cells[i][0] the westernmost column.
type HeatmapGrid struct {
	MinLatitude  float64     `json:"min_latitude"`
	MaxLatitude  float64     `json:"max_latitude"`
	MinLongitude float64     `json:"min_longitude"`
	MaxLongitude float64     `json:"max_longitude"`
	RowLabels    []string    `json:"row_labels"`
	ColLabels    []string    `json:"col_labels"`
	Cells        [][]float64 `json:"cells"`
}

// Total sums all cells.
func (g HeatmapGrid) Total() float64 {
	total := 0.0
	for _, row := range g.Cells {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// DatasetSummary backs the "About the Data" section.
type DatasetSummary struct {
	Records           int             `json:"records"`
	Categories        *int            `json:"categories,omitempty"`
	SubCategories     *int            `json:"sub_categories,omitempty"`
	Regions           *int            `json:"regions,omitempty"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalProfit       decimal.Decimal `json:"total_profit"`
	FirstOrderDate    time.Time       `json:"first_order_date,omitempty"`
	LastOrderDate     time.Time       `json:"last_order_date,omitempty"`
	MissingColumns    []Column        `json:"missing_columns,omitempty"`
	RecordsNoDate     int             `json:"records_without_order_date"`
	RecordsNoLocation int             `json:"records_without_location"`
}
