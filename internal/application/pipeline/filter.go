package pipeline

import "github.com/diillson/sales-dashboard-go/internal/domain/entity"

// FilterByRegion returns the records whose Region equals region exactly. No
// match yields an empty dataset, not an error.
func FilterByRegion(ds entity.Dataset, region string) (entity.Dataset, error) {
	if !ds.Has(entity.ColumnRegion) {
		return entity.Dataset{}, &entity.MissingColumnError{Column: entity.ColumnRegion, Operation: "filter by region"}
	}
	return ds.Subset(func(r entity.Record) bool {
		return r.Region == region
	}), nil
}

// DistinctValues lists the values of a categorical column in first-seen order.
func DistinctValues(ds entity.Dataset, column entity.Column) ([]string, error) {
	if !ds.Has(column) {
		return nil, &entity.MissingColumnError{Column: column, Operation: "distinct values"}
	}

	seen := make(map[string]bool)
	values := make([]string, 0)
	for i := 0; i < ds.Len(); i++ {
		v, ok := ds.At(i).Categorical(column)
		if !ok {
			return nil, &entity.MissingColumnError{Column: column, Operation: "distinct values"}
		}
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values, nil
}
