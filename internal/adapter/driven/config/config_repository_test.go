package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigRepositoryTestSuite struct {
	suite.Suite
	dir  string
	repo *ConfigRepositoryImpl
}

func TestConfigRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigRepositoryTestSuite))
}

func (s *ConfigRepositoryTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.repo = NewConfigRepository().(*ConfigRepositoryImpl)
}

func (s *ConfigRepositoryTestSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *ConfigRepositoryTestSuite) TestLoadTOML() {
	path := s.write("dashboard.toml", `
file = "data/sales.xlsx"
group_by = "Sub-Category"
metric = "Profit"
region = "West"
report_type = ["csv", "json"]
`)

	cfg, err := s.repo.LoadConfigFile(path)
	s.Require().NoError(err)
	s.Equal("data/sales.xlsx", cfg.File)
	s.Equal("Sub-Category", cfg.GroupBy)
	s.Equal("Profit", cfg.Metric)
	s.Equal("West", cfg.Region)
	s.Equal([]string{"csv", "json"}, cfg.ReportType)
	s.Nil(cfg.PreviewRows)
}

func (s *ConfigRepositoryTestSuite) TestLoadYAML() {
	path := s.write("dashboard.yml", `
file: s3://bucket/sales.csv
map_metric: sales
preview_rows: 0
aws_profile: analytics
heatmap_rows: 6
debug: true
`)

	cfg, err := s.repo.LoadConfigFile(path)
	s.Require().NoError(err)
	s.Equal("s3://bucket/sales.csv", cfg.File)
	s.Equal("sales", cfg.MapMetric)
	s.Require().NotNil(cfg.PreviewRows)
	s.Equal(0, *cfg.PreviewRows)
	s.Equal("analytics", cfg.AWSProfile)
	s.Require().NotNil(cfg.HeatmapRows)
	s.Equal(6, *cfg.HeatmapRows)
	s.Nil(cfg.HeatmapCols)
	s.Require().NotNil(cfg.Debug)
	s.True(*cfg.Debug)
}

func (s *ConfigRepositoryTestSuite) TestLoadJSON() {
	path := s.write("dashboard.json", `{"file": "sales.csv", "group_by": "region", "sort_by": "profit"}`)

	cfg, err := s.repo.LoadConfigFile(path)
	s.Require().NoError(err)
	s.Equal("region", cfg.GroupBy)
	s.Equal("profit", cfg.SortBy)
}

func (s *ConfigRepositoryTestSuite) TestInvalidValues() {
	path := s.write("dashboard.yaml", "group_by: Sales\n")

	_, err := s.repo.LoadConfigFile(path)
	s.Require().Error(err)
	s.Contains(err.Error(), "group_by")
}

func (s *ConfigRepositoryTestSuite) TestErrors() {
	_, err := s.repo.LoadConfigFile(filepath.Join(s.dir, "nope.toml"))
	s.ErrorContains(err, "error accessing config file")

	_, err = s.repo.LoadConfigFile(s.dir)
	s.ErrorContains(err, "is a directory")

	_, err = s.repo.LoadConfigFile(s.write("dashboard.ini", "x=1"))
	s.ErrorContains(err, "unsupported config file format")

	_, err = s.repo.LoadConfigFile(s.write("broken.json", "{"))
	s.ErrorContains(err, "error parsing JSON file")
}

func (s *ConfigRepositoryTestSuite) TestLoadEnvFile() {
	const key = "SALES_DASHBOARD_TEST_FILE"
	path := s.write(".env", key+"=from-dotenv.csv\n")
	s.T().Setenv(key, "")
	s.Require().NoError(os.Unsetenv(key))

	s.Require().NoError(s.repo.LoadEnvFile(path))
	s.Equal("from-dotenv.csv", os.Getenv(key))

	s.NoError(s.repo.LoadEnvFile(filepath.Join(s.dir, "missing.env")))
}

func (s *ConfigRepositoryTestSuite) TestLoadEnvFile_DoesNotOverride() {
	const key = "SALES_DASHBOARD_TEST_FILE"
	path := s.write(".env", key+"=from-dotenv.csv\n")
	s.T().Setenv(key, "from-shell.csv")

	s.Require().NoError(s.repo.LoadEnvFile(path))
	s.Equal("from-shell.csv", os.Getenv(key))
}
