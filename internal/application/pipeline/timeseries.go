package pipeline

import (
	"time"

	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SupportsTimeSeries reports whether the dataset has an Order Date column.
// Callers check it first and skip the chart when it is false.
func SupportsTimeSeries(ds entity.Dataset) bool {
	return ds.Has(entity.ColumnOrderDate)
}

// MonthlyTimeSeries buckets records by calendar month of OrderDate and sums
// the metric. Records without an order date are left out. Every month between
// the first and the last bucket is present, empty months carrying zero.
func MonthlyTimeSeries(ds entity.Dataset, metric entity.Metric) ([]entity.TimeSeriesRow, error) {
	if !SupportsTimeSeries(ds) {
		return nil, &entity.MissingColumnError{Column: entity.ColumnOrderDate, Operation: "monthly time series"}
	}
	if !ds.Has(metric.Column()) {
		return nil, &entity.MissingColumnError{Column: metric.Column(), Operation: "monthly time series"}
	}

	buckets := make(map[time.Time]decimal.Decimal)
	var first, last time.Time

	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		if !r.HasOrderDate() {
			continue
		}

		month := monthStart(r.OrderDate)
		if len(buckets) == 0 || month.Before(first) {
			first = month
		}
		if len(buckets) == 0 || month.After(last) {
			last = month
		}

		sum, ok := buckets[month]
		if !ok {
			sum = decimal.Zero
		}
		buckets[month] = sum.Add(metric.Value(r))
	}

	rows := make([]entity.TimeSeriesRow, 0, len(buckets))
	if len(buckets) == 0 {
		return rows, nil
	}

	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		v, ok := buckets[m]
		if !ok {
			v = decimal.Zero
		}
		rows = append(rows, entity.TimeSeriesRow{Month: m, Value: v})
	}
	return rows, nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
