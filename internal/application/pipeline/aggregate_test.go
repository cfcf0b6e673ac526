package pipeline

import (
	"errors"
	"testing"

	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AggregateTestSuite struct {
	suite.Suite
	ds entity.Dataset
}

func TestAggregateTestSuite(t *testing.T) {
	suite.Run(t, new(AggregateTestSuite))
}

func (s *AggregateTestSuite) SetupTest() {
	s.ds = fakeDataset(42, 500)
}

// TestAggregateBy_ConservesTotals checks that no group key drops or
// duplicates sales or profit.
func (s *AggregateTestSuite) TestAggregateBy_ConservesTotals() {
	wantSales, wantProfit := decimal.Zero, decimal.Zero
	for _, r := range s.ds.Records() {
		wantSales = wantSales.Add(r.Sales)
		wantProfit = wantProfit.Add(r.Profit)
	}

	for _, key := range entity.GroupKeys {
		s.Run(string(key), func() {
			rows, err := AggregateBy(s.ds, key)
			s.Require().NoError(err)

			count := 0
			for _, r := range rows {
				count += r.Count
			}
			s.Equal(s.ds.Len(), count)
			s.True(TotalOf(rows, entity.MetricSales).Equal(wantSales), "sales total")
			s.True(TotalOf(rows, entity.MetricProfit).Equal(wantProfit), "profit total")
		})
	}
}

func (s *AggregateTestSuite) TestAggregateBy_KeysAreExhaustiveAndUnique() {
	for _, key := range entity.GroupKeys {
		s.Run(string(key), func() {
			rows, err := AggregateBy(s.ds, key)
			s.Require().NoError(err)

			distinct, err := DistinctValues(s.ds, key)
			s.Require().NoError(err)

			keys := make([]string, 0, len(rows))
			seen := make(map[string]bool)
			for _, r := range rows {
				s.False(seen[r.Key], "duplicate key %q", r.Key)
				seen[r.Key] = true
				keys = append(keys, r.Key)
			}
			s.ElementsMatch(distinct, keys)
		})
	}
}

func (s *AggregateTestSuite) TestAggregateBy_Idempotent() {
	first, err := AggregateBy(s.ds, entity.ColumnCategory)
	s.Require().NoError(err)
	second, err := AggregateBy(s.ds, entity.ColumnCategory)
	s.Require().NoError(err)

	s.Require().Len(second, len(first))
	for i := range first {
		s.Equal(first[i].Key, second[i].Key)
		s.Equal(first[i].Count, second[i].Count)
		s.True(first[i].Sales.Equal(second[i].Sales))
		s.True(first[i].Profit.Equal(second[i].Profit))
	}
}

func (s *AggregateTestSuite) TestAggregateBy_MissingColumn() {
	ds := entity.NewDataset("partial", []entity.Column{entity.ColumnCategory, entity.ColumnSales, entity.ColumnProfit}, nil)

	_, err := AggregateBy(ds, entity.ColumnRegion)
	s.Require().Error(err)
	s.True(errors.Is(err, entity.ErrMissingColumn))

	var mce *entity.MissingColumnError
	s.Require().True(errors.As(err, &mce))
	s.Equal(entity.ColumnRegion, mce.Column)
}

func (s *AggregateTestSuite) TestAggregateBy_RejectsNumericColumn() {
	_, err := AggregateBy(s.ds, entity.ColumnSales)
	s.ErrorIs(err, entity.ErrMissingColumn)
}

func (s *AggregateTestSuite) TestAggregateBy_EmptyDataset() {
	ds := entity.NewDataset("empty", entity.AllColumns, nil)
	rows, err := AggregateBy(ds, entity.ColumnCategory)
	s.NoError(err)
	s.Empty(rows)
}

func TestAggregateBy_BlankValuesFormTheirOwnGroup(t *testing.T) {
	ds := entity.NewDataset("t", entity.AllColumns, []entity.Record{
		{Category: "Technology", Sales: dec("10"), Profit: dec("1")},
		{Category: "", Sales: dec("4.5"), Profit: dec("-2")},
		{Category: "Technology", Sales: dec("2.25"), Profit: dec("0.5")},
	})

	rows, err := AggregateBy(ds, entity.ColumnCategory)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Technology", rows[0].Key)
	assert.True(t, rows[0].Sales.Equal(dec("12.25")))
	assert.True(t, rows[0].Profit.Equal(dec("1.5")))
	assert.Equal(t, 2, rows[0].Count)

	assert.Equal(t, "", rows[1].Key)
	assert.True(t, rows[1].Sales.Equal(dec("4.5")))
}

func TestSortAggregates(t *testing.T) {
	rows := []entity.AggregateRow{
		{Key: "b", Sales: dec("5"), Profit: dec("3")},
		{Key: "a", Sales: dec("9"), Profit: dec("-1")},
		{Key: "c", Sales: dec("1"), Profit: dec("7")},
	}

	SortAggregates(rows, SortBySales)
	assert.Equal(t, []string{"a", "b", "c"}, keysOf(rows))

	SortAggregates(rows, SortByProfit)
	assert.Equal(t, []string{"c", "b", "a"}, keysOf(rows))

	SortAggregates(rows, SortByKey)
	assert.Equal(t, []string{"a", "b", "c"}, keysOf(rows))
}

func TestShare(t *testing.T) {
	rows := []entity.AggregateRow{
		{Key: "a", Sales: dec("30"), Profit: dec("10")},
		{Key: "b", Sales: dec("70"), Profit: dec("-5")},
	}

	sales := Share(rows, entity.MetricSales)
	require.Len(t, sales, 2)
	assert.InDelta(t, 30.0, sales[0].Percent, 1e-9)
	assert.InDelta(t, 70.0, sales[1].Percent, 1e-9)

	profit := Share(rows, entity.MetricProfit)
	assert.InDelta(t, 100.0, profit[0].Percent, 1e-9)
	assert.Zero(t, profit[1].Percent)
	assert.True(t, profit[1].Value.Equal(dec("-5")))
}

func keysOf(rows []entity.AggregateRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Key
	}
	return out
}
