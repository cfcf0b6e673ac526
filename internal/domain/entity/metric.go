package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Metric is the numeric measure summed by the time series and map views.
type Metric string

const (
	MetricSales  Metric = "Sales"
	MetricProfit Metric = "Profit"
)

// ParseMetric accepts "sales"/"profit" in any case.
func ParseMetric(name string) (Metric, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sales":
		return MetricSales, true
	case "profit":
		return MetricProfit, true
	}
	return "", false
}

// Column returns the dataset column backing the metric.
func (m Metric) Column() Column {
	if m == MetricProfit {
		return ColumnProfit
	}
	return ColumnSales
}

// Value extrai o valor da métrica de um registro.
func (m Metric) Value(r Record) decimal.Decimal {
	if m == MetricProfit {
		return r.Profit
	}
	return r.Sales
}
