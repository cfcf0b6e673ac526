// Package pipeline implements the aggregation steps behind every dashboard
// section. All functions are pure: they read the Dataset they are given and
// return fresh slices, so the same inputs always produce the same output.
package pipeline

import (
	"sort"

	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SortField selects the ordering applied by SortAggregates.
type SortField string

const (
	SortByKey    SortField = "key"
	SortBySales  SortField = "sales"
	SortByProfit SortField = "profit"
)

// AggregateBy partitions the dataset by groupKey and sums Sales and Profit per
// partition. Rows come out in first-seen order. Blank values are kept as their
// own group so the totals of the result always match the dataset totals.
func AggregateBy(ds entity.Dataset, groupKey entity.Column) ([]entity.AggregateRow, error) {
	if !groupKey.IsGroupKey() || !ds.Has(groupKey) {
		return nil, &entity.MissingColumnError{Column: groupKey, Operation: "aggregate"}
	}
	for _, c := range []entity.Column{entity.ColumnSales, entity.ColumnProfit} {
		if !ds.Has(c) {
			return nil, &entity.MissingColumnError{Column: c, Operation: "aggregate"}
		}
	}

	index := make(map[string]int)
	rows := make([]entity.AggregateRow, 0)

	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		key, _ := r.Categorical(groupKey)

		pos, ok := index[key]
		if !ok {
			pos = len(rows)
			index[key] = pos
			rows = append(rows, entity.AggregateRow{
				Key:    key,
				Sales:  decimal.Zero,
				Profit: decimal.Zero,
			})
		}

		rows[pos].Sales = rows[pos].Sales.Add(r.Sales)
		rows[pos].Profit = rows[pos].Profit.Add(r.Profit)
		rows[pos].Count++
	}

	return rows, nil
}

// SortAggregates sorts rows in place. Numeric fields sort descending, the key
// ascending; ties keep their previous relative order.
func SortAggregates(rows []entity.AggregateRow, by SortField) {
	sort.SliceStable(rows, func(i, j int) bool {
		switch by {
		case SortBySales:
			return rows[i].Sales.GreaterThan(rows[j].Sales)
		case SortByProfit:
			return rows[i].Profit.GreaterThan(rows[j].Profit)
		default:
			return rows[i].Key < rows[j].Key
		}
	})
}

// Share computes the slice of the metric total held by each group, as drawn
// by the distribution charts. Like a pie chart, only positive values take up
// space: groups with zero or negative values get 0%.
func Share(rows []entity.AggregateRow, metric entity.Metric) []entity.ShareRow {
	total := decimal.Zero
	for _, r := range rows {
		v := aggregateValue(r, metric)
		if v.IsPositive() {
			total = total.Add(v)
		}
	}

	out := make([]entity.ShareRow, 0, len(rows))
	for _, r := range rows {
		v := aggregateValue(r, metric)
		pct := 0.0
		if v.IsPositive() && total.IsPositive() {
			pct = v.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}
		out = append(out, entity.ShareRow{Key: r.Key, Value: v, Percent: pct})
	}
	return out
}

// TotalOf sums a metric over aggregate rows.
func TotalOf(rows []entity.AggregateRow, metric entity.Metric) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(aggregateValue(r, metric))
	}
	return total
}

func aggregateValue(r entity.AggregateRow, metric entity.Metric) decimal.Decimal {
	if metric == entity.MetricProfit {
		return r.Profit
	}
	return r.Sales
}
