package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/sales-dashboard-go/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `Order Date,Region,Category,Sales,Profit,Quantity
2023-01-05,West,Furniture,10,1.5,2
2023-01-20,East,Technology,5,-0.5,3
`

type fakeS3 struct {
	data   []byte
	err    error
	bucket string
	key    string
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket, f.key = *in.Bucket, *in.Key
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(f.data))}, nil
}

type DatasetRepositoryTestSuite struct {
	suite.Suite
	dir  string
	repo *DatasetRepositoryImpl
}

func TestDatasetRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DatasetRepositoryTestSuite))
}

func (s *DatasetRepositoryTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.repo = NewDatasetRepository().(*DatasetRepositoryImpl)
}

func (s *DatasetRepositoryTestSuite) TestLoadCSV() {
	path := filepath.Join(s.dir, "sales.csv")
	s.Require().NoError(os.WriteFile(path, []byte(sampleCSV), 0o644))

	ds, err := s.repo.LoadDataset(context.Background(), repository.DatasetSource{Location: path})
	s.Require().NoError(err)
	s.Equal(2, ds.Len())
	s.Equal(path, ds.Source())
	s.True(ds.Has(entity.ColumnOrderDate))
	s.False(ds.Has(entity.ColumnLatitude))
	s.Equal("-0.5", ds.At(1).Profit.String())
}

func (s *DatasetRepositoryTestSuite) TestLoadXLSX() {
	path := filepath.Join(s.dir, "sales.xlsx")

	f := excelize.NewFile()
	header := []interface{}{"Order Date", "Ship Mode", "Category", "Sales", "Profit", "Quantity", "Latitude", "Longitude"}
	s.Require().NoError(f.SetSheetRow("Sheet1", "A1", &header))
	row := []interface{}{time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC), "First Class", "Technology", 12.5, -3.25, 4, 40.7, -74.0}
	s.Require().NoError(f.SetSheetRow("Sheet1", "A2", &row))
	s.Require().NoError(f.SaveAs(path))
	s.Require().NoError(f.Close())

	ds, err := s.repo.LoadDataset(context.Background(), repository.DatasetSource{Location: path})
	s.Require().NoError(err)
	s.Require().Equal(1, ds.Len())

	r := ds.At(0)
	s.Equal("2023-01-05", r.OrderDate.Format("2006-01-02"))
	s.Equal("First Class", r.ShipMode)
	s.Equal("12.5", r.Sales.String())
	s.Equal("-3.25", r.Profit.String())
	s.Equal(4, r.Quantity)
	s.True(r.HasLocation)
	s.Equal(40.7, r.Latitude)
}

func (s *DatasetRepositoryTestSuite) TestLoadXLSX_UnknownSheet() {
	path := filepath.Join(s.dir, "sales.xlsx")
	f := excelize.NewFile()
	s.Require().NoError(f.SaveAs(path))
	s.Require().NoError(f.Close())

	_, err := s.repo.LoadDataset(context.Background(), repository.DatasetSource{Location: path, Sheet: "Orders"})
	s.Require().Error(err)
	s.Contains(err.Error(), `sheet "Orders" not found`)
}

func (s *DatasetRepositoryTestSuite) TestLoadErrors() {
	_, err := s.repo.LoadDataset(context.Background(), repository.DatasetSource{Location: filepath.Join(s.dir, "missing.csv")})
	s.ErrorContains(err, "error accessing dataset file")

	_, err = s.repo.LoadDataset(context.Background(), repository.DatasetSource{Location: s.dir})
	s.ErrorContains(err, "is a directory")

	path := filepath.Join(s.dir, "sales.parquet")
	s.Require().NoError(os.WriteFile(path, []byte("x"), 0o644))
	_, err = s.repo.LoadDataset(context.Background(), repository.DatasetSource{Location: path})
	s.ErrorContains(err, "unsupported dataset format")
}

func (s *DatasetRepositoryTestSuite) TestLoadFromS3() {
	fake := &fakeS3{data: []byte(sampleCSV)}
	var profiles []string
	s.repo.newS3Client = func(_ context.Context, profile, region string) (s3ObjectGetter, error) {
		profiles = append(profiles, profile+"/"+region)
		return fake, nil
	}

	src := repository.DatasetSource{Location: "s3://reports/2023/sales.csv", AWSProfile: "analytics", AWSRegion: "us-east-1"}
	ds, err := s.repo.LoadDataset(context.Background(), src)
	s.Require().NoError(err)
	s.Equal(2, ds.Len())
	s.Equal("reports", fake.bucket)
	s.Equal("2023/sales.csv", fake.key)

	_, err = s.repo.LoadDataset(context.Background(), src)
	s.Require().NoError(err)
	s.Equal([]string{"analytics/us-east-1"}, profiles, "client is built once per profile and region")
}

func (s *DatasetRepositoryTestSuite) TestLoadFromS3_Error() {
	s.repo.newS3Client = func(context.Context, string, string) (s3ObjectGetter, error) {
		return &fakeS3{err: errors.New("access denied")}, nil
	}

	_, err := s.repo.LoadDataset(context.Background(), repository.DatasetSource{Location: "s3://reports/sales.csv"})
	s.ErrorContains(err, "access denied")
}

func (s *DatasetRepositoryTestSuite) TestLoadCSV_GeneratedRowsKeepTotals() {
	f := gofakeit.New(42)
	path := filepath.Join(s.dir, "generated.csv")

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	s.Require().NoError(w.Write([]string{"Order Date", "Region", "City", "Sales", "Profit", "Quantity", "Latitude", "Longitude"}))

	wantSales := decimal.Zero
	const n = 50
	for i := 0; i < n; i++ {
		sales := decimal.NewFromFloat(f.Float64Range(1, 5000)).Round(2)
		wantSales = wantSales.Add(sales)
		s.Require().NoError(w.Write([]string{
			f.DateRange(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)).Format("2006-01-02"),
			f.RandomString([]string{"East", "West", "Central", "South"}),
			f.City(),
			sales.String(),
			decimal.NewFromFloat(f.Float64Range(-500, 500)).Round(2).String(),
			strconv.Itoa(f.IntRange(1, 10)),
			strconv.FormatFloat(f.Latitude(), 'f', 4, 64),
			strconv.FormatFloat(f.Longitude(), 'f', 4, 64),
		}))
	}
	w.Flush()
	s.Require().NoError(w.Error())
	s.Require().NoError(os.WriteFile(path, buf.Bytes(), 0o644))

	ds, err := s.repo.LoadDataset(context.Background(), repository.DatasetSource{Location: path})
	s.Require().NoError(err)
	s.Require().Equal(n, ds.Len())

	gotSales := decimal.Zero
	for _, r := range ds.Records() {
		gotSales = gotSales.Add(r.Sales)
		s.True(r.HasLocation)
		s.True(r.HasOrderDate())
	}
	s.True(wantSales.Equal(gotSales), "want %s, got %s", wantSales, gotSales)
}

func TestParseS3URI(t *testing.T) {
	bucket, key, err := parseS3URI("s3://my-bucket/a/b/c.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "my-bucket", bucket)
	assert.Equal(t, "a/b/c.xlsx", key)

	for _, bad := range []string{"s3://", "s3://bucket", "s3://bucket/", "https://bucket/key"} {
		_, _, err := parseS3URI(bad)
		assert.Error(t, err, bad)
	}
}
