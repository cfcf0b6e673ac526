package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/diillson/sales-dashboard-go/internal/application/pipeline"
	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/sales-dashboard-go/internal/shared/types"
)

// NoOrderDateNotice is shown instead of the time-series chart.
const NoOrderDateNotice = "No 'Order Date' column found. Unable to create chart."

// showAboutData exibe contagens gerais do dataset.
func (uc *DashboardUseCase) showAboutData(ds entity.Dataset, report *entity.DashboardReport) {
	summary := pipeline.Summarize(ds)
	report.Summary = summary

	uc.console.Section("About the Data", "Overview of the loaded dataset")

	table := uc.console.CreateTable()
	table.AddColumn("Field")
	table.AddColumn("Value")
	table.AddRow("Records", summary.Records)
	table.AddRow("Categories", countOrNA(summary.Categories))
	table.AddRow("Sub-Categories", countOrNA(summary.SubCategories))
	table.AddRow("Regions", countOrNA(summary.Regions))
	table.AddRow("Total Sales", formatMoney(summary.TotalSales))
	table.AddRow("Total Profit", colorProfit(summary.TotalProfit))
	if !summary.FirstOrderDate.IsZero() {
		table.AddRow("Order Dates", fmt.Sprintf("%s to %s",
			summary.FirstOrderDate.Format("2006-01-02"), summary.LastOrderDate.Format("2006-01-02")))
	}
	uc.console.Println(table.Render())

	if len(summary.MissingColumns) > 0 {
		names := make([]string, len(summary.MissingColumns))
		for i, c := range summary.MissingColumns {
			names[i] = string(c)
		}
		uc.console.LogInfo("Columns not present in the source: %s", strings.Join(names, ", "))
	}
	if summary.RecordsNoDate > 0 && ds.Has(entity.ColumnOrderDate) {
		uc.console.LogDebug("%d records have no order date", summary.RecordsNoDate)
	}
	if summary.RecordsNoLocation > 0 && ds.Has(entity.ColumnLatitude) {
		uc.console.LogDebug("%d records have no coordinates", summary.RecordsNoLocation)
	}
}

// showPreview exibe as primeiras linhas do dataset; limit 0 desativa.
func (uc *DashboardUseCase) showPreview(ds entity.Dataset, limit int) {
	if limit <= 0 || ds.Len() == 0 {
		return
	}
	if limit > ds.Len() {
		limit = ds.Len()
	}

	uc.console.Section("Data Preview", fmt.Sprintf("First %d of %d records", limit, ds.Len()))

	columns := ds.Columns()
	table := uc.console.CreateTable()
	for _, c := range columns {
		table.AddColumn(string(c))
	}
	for _, r := range ds.Records()[:limit] {
		cells := make([]interface{}, len(columns))
		for j, c := range columns {
			cells[j] = r.Format(c)
		}
		table.AddRow(cells...)
	}
	uc.console.Println(table.Render())
}

// showGroupBy exibe a tabela agregada, o gráfico de barras de vendas e as
// distribuições de vendas e lucro por grupo.
func (uc *DashboardUseCase) showGroupBy(ds entity.Dataset, args *types.CLIArgs, report *entity.DashboardReport) {
	groupKey, ok := entity.ParseGroupKey(args.GroupBy)
	if !ok {
		uc.notice(report, "%q cannot be used to group the data", args.GroupBy)
		return
	}

	uc.console.Section(fmt.Sprintf("Sales and Profit by %s", groupKey), "")

	rows, err := pipeline.AggregateBy(ds, groupKey)
	if err != nil {
		if errors.Is(err, entity.ErrMissingColumn) {
			uc.notice(report, "Group-by section skipped: %s", err)
			return
		}
		uc.console.LogError("Error aggregating by %s: %s", groupKey, err)
		return
	}
	if len(rows) == 0 {
		uc.notice(report, "No data to group by %s", groupKey)
		return
	}

	if args.SortBy != "" {
		pipeline.SortAggregates(rows, pipeline.SortField(args.SortBy))
	}
	report.GroupBy = groupKey
	report.Aggregates = rows

	table := uc.console.CreateTable()
	table.AddColumn(string(groupKey))
	table.AddColumn("Sales")
	table.AddColumn("Profit")
	table.AddColumn("Records")
	bars := make([]types.ChartPoint, 0, len(rows))
	for _, row := range rows {
		table.AddRow(displayKey(row.Key), formatMoney(row.Sales), colorProfit(row.Profit), row.Count)
		bars = append(bars, types.ChartPoint{
			Label:     displayKey(row.Key),
			Value:     row.Sales.InexactFloat64(),
			Secondary: row.Profit.InexactFloat64(),
		})
	}
	table.AddRow("Total", formatMoney(pipeline.TotalOf(rows, entity.MetricSales)),
		colorProfit(pipeline.TotalOf(rows, entity.MetricProfit)), ds.Len())
	uc.console.Println(table.Render())

	uc.console.DisplayBarChart(fmt.Sprintf("Sales by %s", groupKey), bars)
	uc.console.DisplayDistribution(fmt.Sprintf("Sales distribution by %s", groupKey), toSlices(pipeline.Share(rows, entity.MetricSales)))
	uc.console.DisplayDistribution(fmt.Sprintf("Profit distribution by %s", groupKey), toSlices(pipeline.Share(rows, entity.MetricProfit)))
}

// showTimeSeries exibe a série mensal da métrica escolhida para uma região.
func (uc *DashboardUseCase) showTimeSeries(ds entity.Dataset, args *types.CLIArgs, report *entity.DashboardReport) {
	if !pipeline.SupportsTimeSeries(ds) {
		uc.notice(report, "%s", NoOrderDateNotice)
		return
	}

	metric, ok := entity.ParseMetric(args.Metric)
	if !ok {
		uc.notice(report, "%q is not a valid metric for the time series", args.Metric)
		return
	}

	scope := ds
	region := args.Region
	if ds.Has(entity.ColumnRegion) {
		if region == "" {
			regions, _ := pipeline.DistinctValues(ds, entity.ColumnRegion)
			if len(regions) == 0 {
				uc.notice(report, "No regions available for the time series")
				return
			}
			region = regions[0]
			uc.console.LogDebug("No region selected, using %q", region)
		}

		filtered, err := pipeline.FilterByRegion(ds, region)
		if err != nil {
			uc.console.LogError("Error filtering region %s: %s", region, err)
			return
		}
		scope = filtered
	} else {
		uc.notice(report, "No 'Region' column found. Showing the time series for all records.")
		region = "All"
	}

	uc.console.Section(fmt.Sprintf("Monthly %s - %s", metric, region), "")

	if scope.Len() == 0 {
		uc.notice(report, "No data for region %q", region)
		return
	}

	series, err := pipeline.MonthlyTimeSeries(scope, metric)
	if err != nil {
		if errors.Is(err, entity.ErrMissingColumn) {
			uc.notice(report, "Time series skipped: %s", err)
			return
		}
		uc.console.LogError("Error building time series: %s", err)
		return
	}
	if len(series) == 0 {
		uc.notice(report, "No dated records for region %q", region)
		return
	}

	report.TimeSeriesMetric = metric
	report.Region = region
	report.TimeSeries = series

	points := make([]types.ChartPoint, len(series))
	for i, row := range series {
		points[i] = types.ChartPoint{Label: row.Label(), Value: row.Value.InexactFloat64()}
	}
	uc.console.DisplayTimeSeries(fmt.Sprintf("%s per month (%s)", metric, region), points)
}

// showLocations exibe o heatmap geográfico e as localizações de maior valor.
func (uc *DashboardUseCase) showLocations(ds entity.Dataset, args *types.CLIArgs, report *entity.DashboardReport) {
	metric, ok := entity.ParseMetric(args.MapMetric)
	if !ok {
		uc.notice(report, "%q is not a valid metric for the map", args.MapMetric)
		return
	}

	uc.console.Section(fmt.Sprintf("%s by Location", metric), "")

	locations, err := pipeline.AggregateByLocation(ds, metric)
	if err != nil {
		if errors.Is(err, entity.ErrMissingColumn) {
			uc.notice(report, "Map section skipped: %s", err)
			return
		}
		uc.console.LogError("Error aggregating locations: %s", err)
		return
	}
	if len(locations) == 0 {
		uc.notice(report, "No records with coordinates to plot")
		return
	}

	report.MapMetric = metric
	report.Locations = locations

	rows, cols := args.HeatmapRows, args.HeatmapCols
	if rows <= 0 {
		rows = pipeline.DefaultHeatmapRows
	}
	if cols <= 0 {
		cols = pipeline.DefaultHeatmapCols
	}
	grid := pipeline.BuildHeatmap(locations, rows, cols)
	uc.console.DisplayHeatmap(fmt.Sprintf("%s heatmap (%d locations, total %.2f)", metric, len(locations), grid.Total()), types.HeatmapData{
		RowLabels: grid.RowLabels,
		ColLabels: grid.ColLabels,
		Cells:     grid.Cells,
	})

	if args.TopLocations <= 0 {
		return
	}

	top := make([]entity.LocationAggregate, len(locations))
	copy(top, locations)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Value.GreaterThan(top[j].Value) })
	if len(top) > args.TopLocations {
		top = top[:args.TopLocations]
	}

	table := uc.console.CreateTable()
	for _, h := range []string{"City", "State", "Postal Code", "Region", "Latitude", "Longitude", string(metric), "Discount", "Quantity"} {
		table.AddColumn(h)
	}
	for _, loc := range top {
		value := formatMoney(loc.Value)
		if metric == entity.MetricProfit {
			value = colorProfit(loc.Value)
		}
		table.AddRow(loc.City, loc.State, loc.PostalCode, loc.Region,
			fmt.Sprintf("%.4f", loc.Latitude), fmt.Sprintf("%.4f", loc.Longitude),
			value, loc.Discount.StringFixed(2), loc.Quantity)
	}
	uc.console.Println(table.Render())
}

// Funções auxiliares para o DashboardUseCase

func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// colorProfit pinta o lucro: vermelho negativo, amarelo zero, verde positivo.
func colorProfit(d decimal.Decimal) string {
	text := formatMoney(d)
	switch d.Sign() {
	case -1:
		return pterm.FgRed.Sprint(text)
	case 0:
		return pterm.FgYellow.Sprint(text)
	}
	return pterm.FgGreen.Sprint(text)
}

func countOrNA(n *int) string {
	if n == nil {
		return "N/A"
	}
	return fmt.Sprint(*n)
}

func displayKey(key string) string {
	if key == "" {
		return "(blank)"
	}
	return key
}

func toSlices(shares []entity.ShareRow) []types.ChartSlice {
	slices := make([]types.ChartSlice, len(shares))
	for i, s := range shares {
		slices[i] = types.ChartSlice{
			Label:   displayKey(s.Key),
			Value:   s.Value.InexactFloat64(),
			Percent: s.Percent,
		}
	}
	return slices
}
