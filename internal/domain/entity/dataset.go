package entity

// Dataset is the read-only collection of records loaded for one session,
// together with the schema (the columns the source actually provided).
type Dataset struct {
	source  string
	records []Record
	columns map[Column]bool
}

// NewDataset copies records so later changes to the caller's slice do not
// leak into the dataset.
func NewDataset(source string, columns []Column, records []Record) Dataset {
	cols := make(map[Column]bool, len(columns))
	for _, c := range columns {
		cols[c] = true
	}
	recs := make([]Record, len(records))
	copy(recs, records)
	return Dataset{source: source, records: recs, columns: cols}
}

// Source is the path or URI the dataset came from.
func (d Dataset) Source() string {
	return d.source
}

// Len returns the number of records.
func (d Dataset) Len() int {
	return len(d.records)
}

// At returns a copy of the i-th record.
func (d Dataset) At(i int) Record {
	return d.records[i]
}

// Records returns a copy of all records.
func (d Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Has reports whether the column was present in the loaded schema.
func (d Dataset) Has(c Column) bool {
	return d.columns[c]
}

// Columns returns the schema in AllColumns order.
func (d Dataset) Columns() []Column {
	out := make([]Column, 0, len(d.columns))
	for _, c := range AllColumns {
		if d.columns[c] {
			out = append(out, c)
		}
	}
	return out
}

// MissingColumns returns the expected columns the source did not provide.
func (d Dataset) MissingColumns() []Column {
	var out []Column
	for _, c := range AllColumns {
		if !d.columns[c] {
			out = append(out, c)
		}
	}
	return out
}

// Subset builds a dataset with the same schema holding only the records for
// which keep returns true.
func (d Dataset) Subset(keep func(Record) bool) Dataset {
	recs := make([]Record, 0)
	for _, r := range d.records {
		if keep(r) {
			recs = append(recs, r)
		}
	}
	return Dataset{source: d.source, records: recs, columns: d.columns}
}
