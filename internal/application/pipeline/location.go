package pipeline

import (
	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

type coordinate struct {
	lat float64
	lon float64
}

// AggregateByLocation groups records by their (Latitude, Longitude) pair and
// sums the metric, Discount and Quantity. Region, PostalCode, State and City
// take the most frequent value among the records at that point.
//
// When two values are equally frequent the one seen first in the dataset wins.
// Records without coordinates are skipped.
func AggregateByLocation(ds entity.Dataset, metric entity.Metric) ([]entity.LocationAggregate, error) {
	for _, c := range []entity.Column{entity.ColumnLatitude, entity.ColumnLongitude, metric.Column()} {
		if !ds.Has(c) {
			return nil, &entity.MissingColumnError{Column: c, Operation: "aggregate by location"}
		}
	}

	type bucket struct {
		agg        entity.LocationAggregate
		region     modeCounter
		postalCode modeCounter
		state      modeCounter
		city       modeCounter
	}

	index := make(map[coordinate]int)
	buckets := make([]*bucket, 0)

	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		if !r.HasLocation {
			continue
		}

		key := coordinate{lat: r.Latitude, lon: r.Longitude}
		pos, ok := index[key]
		if !ok {
			pos = len(buckets)
			index[key] = pos
			buckets = append(buckets, &bucket{
				agg: entity.LocationAggregate{
					Latitude:  r.Latitude,
					Longitude: r.Longitude,
					Metric:    metric,
					Value:     decimal.Zero,
					Discount:  decimal.Zero,
				},
			})
		}

		b := buckets[pos]
		b.agg.Value = b.agg.Value.Add(metric.Value(r))
		b.agg.Discount = b.agg.Discount.Add(r.Discount)
		b.agg.Quantity += r.Quantity
		b.agg.Count++
		b.region.add(r.Region)
		b.postalCode.add(r.PostalCode)
		b.state.add(r.State)
		b.city.add(r.City)
	}

	out := make([]entity.LocationAggregate, 0, len(buckets))
	for _, b := range buckets {
		b.agg.Region = b.region.mode()
		b.agg.PostalCode = b.postalCode.mode()
		b.agg.State = b.state.mode()
		b.agg.City = b.city.mode()
		out = append(out, b.agg)
	}
	return out, nil
}

// modeCounter tracks value frequencies and the order values first appeared.
type modeCounter struct {
	counts map[string]int
	order  []string
}

func (m *modeCounter) add(v string) {
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	if _, ok := m.counts[v]; !ok {
		m.order = append(m.order, v)
	}
	m.counts[v]++
}

// mode returns the most frequent value; ties go to the earliest seen.
func (m *modeCounter) mode() string {
	best := ""
	bestCount := 0
	for _, v := range m.order {
		if m.counts[v] > bestCount {
			best = v
			bestCount = m.counts[v]
		}
	}
	return best
}
