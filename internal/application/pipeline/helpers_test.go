package pipeline

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var (
	regions    = []string{"West", "East", "Central", "South"}
	categories = []string{"Furniture", "Office Supplies", "Technology"}
	subCats    = []string{"Chairs", "Binders", "Phones", "Tables", "Paper"}
	segments   = []string{"Consumer", "Corporate", "Home Office"}
	shipModes  = []string{"Standard Class", "Second Class", "First Class", "Same Day"}
)

// fakeDataset builds a full-schema dataset of n random records. The seed
// keeps every run reproducible.
func fakeDataset(seed uint64, n int) entity.Dataset {
	f := gofakeit.New(seed)
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	records := make([]entity.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, entity.Record{
			ShipMode:    f.RandomString(shipModes),
			Segment:     f.RandomString(segments),
			Category:    f.RandomString(categories),
			SubCategory: f.RandomString(subCats),
			Sales:       decimal.NewFromFloat(f.Float64Range(1, 2000)).Round(2),
			Profit:      decimal.NewFromFloat(f.Float64Range(-500, 800)).Round(2),
			Discount:    decimal.NewFromFloat(f.Float64Range(0, 0.8)).Round(2),
			Quantity:    f.IntRange(1, 14),
			Region:      f.RandomString(regions),
			State:       f.State(),
			City:        f.City(),
			PostalCode:  f.Zip(),
			Latitude:    float64(f.IntRange(25, 48)),
			Longitude:   float64(f.IntRange(-124, -67)),
			HasLocation: true,
			OrderDate:   f.DateRange(start, end),
		})
	}
	return entity.NewDataset("fake", entity.AllColumns, records)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
