package usecase

import (
	"context"
	"fmt"

	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/sales-dashboard-go/internal/domain/repository"
	"github.com/diillson/sales-dashboard-go/internal/shared/types"
)

type fakeConsole struct {
	warnings  []string
	errors    []string
	successes []string
	sections  []string
	bars      map[string][]types.ChartPoint
	series    map[string][]types.ChartPoint
	heatmaps  map[string]types.HeatmapData
	tables    []*fakeTable
}

func newFakeConsole() *fakeConsole {
	return &fakeConsole{
		bars:     map[string][]types.ChartPoint{},
		series:   map[string][]types.ChartPoint{},
		heatmaps: map[string]types.HeatmapData{},
	}
}

func (c *fakeConsole) Print(a ...interface{})                   {}
func (c *fakeConsole) Printf(format string, a ...interface{})   {}
func (c *fakeConsole) Println(a ...interface{})                 {}
func (c *fakeConsole) LogInfo(format string, a ...interface{})  {}
func (c *fakeConsole) LogDebug(format string, a ...interface{}) {}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.successes = append(c.successes, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Status(message string) types.StatusHandle { return fakeStatus{} }
func (c *fakeConsole) Section(title, description string) {
	c.sections = append(c.sections, title)
}
func (c *fakeConsole) CreateTable() types.TableInterface {
	t := &fakeTable{}
	c.tables = append(c.tables, t)
	return t
}
func (c *fakeConsole) DisplayBarChart(title string, bars []types.ChartPoint) {
	c.bars[title] = bars
}
func (c *fakeConsole) DisplayDistribution(title string, slices []types.ChartSlice) {}
func (c *fakeConsole) DisplayTimeSeries(title string, points []types.ChartPoint) {
	c.series[title] = points
}
func (c *fakeConsole) DisplayHeatmap(title string, heatmap types.HeatmapData) {
	c.heatmaps[title] = heatmap
}

type fakeStatus struct{}

func (fakeStatus) Update(string) {}
func (fakeStatus) Stop()         {}

type fakeTable struct {
	columns []string
	rows    [][]interface{}
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}
func (t *fakeTable) AddRow(cells ...interface{}) { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string              { return "" }

type fakeDatasetRepo struct {
	ds  entity.Dataset
	err error
	src repository.DatasetSource
}

func (r *fakeDatasetRepo) LoadDataset(_ context.Context, src repository.DatasetSource) (entity.Dataset, error) {
	r.src = src
	return r.ds, r.err
}

type fakeExportRepo struct {
	reports []entity.DashboardReport
	formats []string
	failOn  string
}

func (r *fakeExportRepo) export(format string, report entity.DashboardReport) (string, error) {
	if format == r.failOn {
		return "", fmt.Errorf("disk full")
	}
	r.formats = append(r.formats, format)
	r.reports = append(r.reports, report)
	return "/tmp/report." + format, nil
}

func (r *fakeExportRepo) ExportToCSV(report entity.DashboardReport, _, _ string) (string, error) {
	return r.export("csv", report)
}
func (r *fakeExportRepo) ExportToJSON(report entity.DashboardReport, _, _ string) (string, error) {
	return r.export("json", report)
}
func (r *fakeExportRepo) ExportToPDF(report entity.DashboardReport, _, _ string) (string, error) {
	return r.export("pdf", report)
}
func (r *fakeExportRepo) ExportToSQLite(report entity.DashboardReport, _, _ string) (string, error) {
	return r.export("sqlite", report)
}

type fakeConfigRepo struct {
	cfg     *types.Config
	err     error
	envPath string
}

func (r *fakeConfigRepo) LoadConfigFile(string) (*types.Config, error) { return r.cfg, r.err }
func (r *fakeConfigRepo) LoadEnvFile(path string) error {
	r.envPath = path
	return nil
}
