package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"

	"github.com/diillson/sales-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// LogDebug só aparece com --debug (pterm.EnableDebugMessages).
func (c *Console) LogDebug(format string, a ...interface{}) {
	pterm.Debug.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BoldRed       = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow  = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightRed     = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Section imprime o cabeçalho de uma seção do dashboard.
func (c *Console) Section(title, description string) {
	pterm.DefaultSection.Println(title)
	if description != "" {
		pterm.FgGray.Println(description)
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayBarChart desenha um gráfico de barras horizontal; barras ficam vermelhas
// quando o valor ou Secondary é negativo.
func (c *Console) DisplayBarChart(title string, bars []types.ChartPoint) {
	if len(bars) == 0 {
		pterm.Warning.Printfln("%s: nothing to plot", title)
		return
	}

	chartBars := toBars(bars)

	chart, err := pterm.DefaultBarChart.
		WithBars(chartBars).
		WithHorizontal().
		WithShowValue().
		WithWidth(50).
		Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to render %s: %v", title, err)
		return
	}

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(chart)
	fmt.Println("\n" + panel)
}

// toBars converte os pontos em barras do pterm. Valores negativos viram
// barras vazias em vermelho com o valor real no rótulo.
func toBars(bars []types.ChartPoint) pterm.Bars {
	chartBars := make(pterm.Bars, 0, len(bars))
	for _, b := range bars {
		label := b.Label
		value := int(math.Round(b.Value))
		style := pterm.NewStyle(pterm.FgGreen)
		if b.Value < 0 {
			label = fmt.Sprintf("%s (%.2f)", b.Label, b.Value)
			value = 0
			style = pterm.NewStyle(pterm.FgRed)
		} else if b.Secondary < 0 {
			style = pterm.NewStyle(pterm.FgRed)
		}
		chartBars = append(chartBars, pterm.Bar{
			Label: label,
			Value: value,
			Style: style,
		})
	}
	return chartBars
}

// DisplayDistribution exibe a participação de cada fatia como barras de porcentagem.
func (c *Console) DisplayDistribution(title string, slices []types.ChartSlice) {
	if len(slices) == 0 {
		pterm.Warning.Printfln("%s: no positive values to distribute", title)
		return
	}

	palette := []pterm.Color{pterm.FgCyan, pterm.FgMagenta, pterm.FgYellow, pterm.FgGreen, pterm.FgBlue, pterm.FgLightRed}

	tableData := pterm.TableData{
		{"Slice", "Value", "", "Share"},
	}
	for i, s := range slices {
		barLength := int(math.Round(s.Percent / 100 * 40))
		bar := strings.Repeat("█", barLength)
		tableData = append(tableData, []string{
			s.Label,
			fmt.Sprintf("$%.2f", s.Value),
			palette[i%len(palette)].Sprint(bar),
			fmt.Sprintf("%.1f%%", s.Percent),
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
	fmt.Println("\n" + panel)
}

// DisplayTimeSeries exibe a série mensal em barras com a variação mês a mês.
func (c *Console) DisplayTimeSeries(title string, points []types.ChartPoint) {
	// Escala pelo maior valor absoluto, lucro pode ser negativo
	maxValue := 0.0
	for _, p := range points {
		if math.Abs(p.Value) > maxValue {
			maxValue = math.Abs(p.Value)
		}
	}

	if maxValue == 0 {
		pterm.Warning.Println("All values are $0.00 for this period")
		return
	}

	tableData := pterm.TableData{
		{"Month", "Value", "", "MoM Change"},
	}

	var prevValue *float64

	for _, p := range points {
		barLength := int((math.Abs(p.Value) / maxValue) * 40)
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		if p.Value < 0 {
			barColor = pterm.FgRed.Sprint(bar)
		}
		change := ""

		if prevValue != nil {
			if math.Abs(*prevValue) < 0.01 {
				if math.Abs(p.Value) < 0.01 {
					change = pterm.FgYellow.Sprint("0%")
				} else {
					change = pterm.FgYellow.Sprint("N/A")
				}
			} else {
				changePercent := ((p.Value - *prevValue) / math.Abs(*prevValue)) * 100.0

				switch {
				case math.Abs(changePercent) < 0.01:
					change = pterm.FgYellow.Sprint("0%")
				case math.Abs(changePercent) > 999:
					if changePercent > 0 {
						change = pterm.FgGreen.Sprint(">+999%")
					} else {
						change = pterm.FgRed.Sprint(">-999%")
					}
				case changePercent > 0:
					change = pterm.FgGreen.Sprintf("+%.2f%%", changePercent)
				default:
					change = pterm.FgRed.Sprintf("%.2f%%", changePercent)
				}
			}
		}

		tableData = append(tableData, []string{
			p.Label,
			fmt.Sprintf("$%.2f", p.Value),
			barColor,
			change,
		})

		current := p.Value
		prevValue = &current
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// DisplayHeatmap renderiza a grade lat/long já agregada.
func (c *Console) DisplayHeatmap(title string, heatmap types.HeatmapData) {
	if len(heatmap.Cells) == 0 || len(heatmap.ColLabels) == 0 {
		pterm.Warning.Printfln("%s: no located records to plot", title)
		return
	}

	data := make(pterm.HeatmapData, len(heatmap.Cells))
	for i, row := range heatmap.Cells {
		data[i] = make([]float32, len(row))
		for j, v := range row {
			data[i][j] = float32(v)
		}
	}

	rendered, err := pterm.DefaultHeatmap.
		WithAxisData(pterm.HeatmapAxis{
			XAxis: heatmap.ColLabels,
			YAxis: heatmap.RowLabels,
		}).
		WithData(data).
		Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to render %s: %v", title, err)
		return
	}

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(rendered)
	fmt.Println("\n" + panel)
}
