package pipeline

import (
	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Summarize collects the figures shown in the "About the Data" section.
// Distinct counts stay nil when the column is missing from the schema.
func Summarize(ds entity.Dataset) entity.DatasetSummary {
	summary := entity.DatasetSummary{
		Records:        ds.Len(),
		TotalSales:     decimal.Zero,
		TotalProfit:    decimal.Zero,
		MissingColumns: ds.MissingColumns(),
	}

	summary.Categories = distinctCount(ds, entity.ColumnCategory)
	summary.SubCategories = distinctCount(ds, entity.ColumnSubCategory)
	summary.Regions = distinctCount(ds, entity.ColumnRegion)

	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		summary.TotalSales = summary.TotalSales.Add(r.Sales)
		summary.TotalProfit = summary.TotalProfit.Add(r.Profit)

		if !r.HasLocation {
			summary.RecordsNoLocation++
		}
		if !r.HasOrderDate() {
			summary.RecordsNoDate++
			continue
		}
		if summary.FirstOrderDate.IsZero() || r.OrderDate.Before(summary.FirstOrderDate) {
			summary.FirstOrderDate = r.OrderDate
		}
		if r.OrderDate.After(summary.LastOrderDate) {
			summary.LastOrderDate = r.OrderDate
		}
	}

	return summary
}

func distinctCount(ds entity.Dataset, c entity.Column) *int {
	values, err := DistinctValues(ds, c)
	if err != nil {
		return nil
	}
	n := len(values)
	return &n
}
