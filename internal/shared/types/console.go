package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})
	LogDebug(format string, a ...interface{})

	Status(message string) StatusHandle

	Section(title, description string)
	CreateTable() TableInterface

	DisplayBarChart(title string, bars []ChartPoint)
	DisplayDistribution(title string, slices []ChartSlice)
	DisplayTimeSeries(title string, points []ChartPoint)
	DisplayHeatmap(title string, heatmap HeatmapData)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// ChartPoint é um rótulo com valor, usado em barras e séries temporais.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	// Secondary colours the bar (profit for the sales bar chart).
	Secondary float64 `json:"secondary,omitempty"`
}

// ChartSlice is one segment of a distribution ("donut") chart.
type ChartSlice struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

// HeatmapData carries a grid already binned by the pipeline.
type HeatmapData struct {
	RowLabels []string
	ColLabels []string
	Cells     [][]float64
}
