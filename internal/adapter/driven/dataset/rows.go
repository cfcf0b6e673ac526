package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// dateLayouts são os formatos aceitos para Order Date em células de texto.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"1/2/2006",
	"01/02/2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"2006/01/02",
	"02-Jan-2006",
	"Jan 2, 2006",
}

// mapHeader resolves each header cell to a column. Unknown headers map to ""
// and are ignored; when a column appears twice the first one wins.
func mapHeader(header []string) ([]entity.Column, []entity.Column) {
	mapping := make([]entity.Column, len(header))
	seen := make(map[entity.Column]bool)
	present := make([]entity.Column, 0, len(header))

	for i, h := range header {
		c, ok := entity.ParseColumn(strings.TrimPrefix(h, "\ufeff"))
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		mapping[i] = c
		present = append(present, c)
	}
	return mapping, present
}

// buildDataset converts raw rows (header first) into a typed Dataset. Blank
// rows are skipped; malformed numbers or dates abort the load with the
// spreadsheet row number.
func buildDataset(source string, rows [][]string) (entity.Dataset, error) {
	if len(rows) == 0 {
		return entity.Dataset{}, fmt.Errorf("%s: no header row found", source)
	}

	mapping, present := mapHeader(rows[0])
	if len(present) == 0 {
		return entity.Dataset{}, fmt.Errorf("%s: none of the expected columns were found in the header", source)
	}

	records := make([]entity.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		rec, err := parseRecord(mapping, row)
		if err != nil {
			return entity.Dataset{}, fmt.Errorf("%s: row %d: %w", source, i+2, err)
		}
		records = append(records, rec)
	}

	return entity.NewDataset(source, present, records), nil
}

func parseRecord(mapping []entity.Column, row []string) (entity.Record, error) {
	rec := entity.Record{
		Sales:    decimal.Zero,
		Profit:   decimal.Zero,
		Discount: decimal.Zero,
	}
	var lat, lon *float64

	for i, c := range mapping {
		if c == "" || i >= len(row) {
			continue
		}
		val := strings.TrimSpace(row[i])

		var err error
		switch c {
		case entity.ColumnShipMode:
			rec.ShipMode = val
		case entity.ColumnSegment:
			rec.Segment = val
		case entity.ColumnCategory:
			rec.Category = val
		case entity.ColumnSubCategory:
			rec.SubCategory = val
		case entity.ColumnRegion:
			rec.Region = val
		case entity.ColumnState:
			rec.State = val
		case entity.ColumnCity:
			rec.City = val
		case entity.ColumnPostalCode:
			rec.PostalCode = val
		case entity.ColumnSales:
			rec.Sales, err = parseDecimal(val)
		case entity.ColumnProfit:
			rec.Profit, err = parseDecimal(val)
		case entity.ColumnDiscount:
			rec.Discount, err = parseDecimal(val)
		case entity.ColumnQuantity:
			rec.Quantity, err = parseQuantity(val)
		case entity.ColumnLatitude:
			lat, err = parseCoordinate(val)
		case entity.ColumnLongitude:
			lon, err = parseCoordinate(val)
		case entity.ColumnOrderDate:
			rec.OrderDate, err = parseDate(val)
		}
		if err != nil {
			return entity.Record{}, fmt.Errorf("column %q: %w", c, err)
		}
	}

	if lat != nil && lon != nil {
		rec.Latitude, rec.Longitude, rec.HasLocation = *lat, *lon, true
	}
	return rec, nil
}

func parseDecimal(val string) (decimal.Decimal, error) {
	if val == "" {
		return decimal.Zero, nil
	}
	val = strings.TrimPrefix(val, "$")
	d, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q", val)
	}
	return d, nil
}

func parseQuantity(val string) (int, error) {
	if val == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(val); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) || f >= math.MaxInt || f < math.MinInt {
		return 0, fmt.Errorf("invalid quantity %q", val)
	}
	return int(f), nil
}

func parseCoordinate(val string) (*float64, error) {
	if val == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("invalid coordinate %q", val)
	}
	return &f, nil
}

// parseDate accepts the text layouts above and Excel serial dates, which is
// what raw .xlsx cells hold for date-formatted columns.
func parseDate(val string) (time.Time, error) {
	if val == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(val, 64); err == nil && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", val)
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
