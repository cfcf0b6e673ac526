package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/sales-dashboard-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV writes every computed section of the report into a single CSV,
// one block per section separated by an empty line.
func (r *ExportRepositoryImpl) ExportToCSV(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	var records [][]string
	records = append(records,
		[]string{"Session", report.SessionID},
		[]string{"Source", report.Source},
		[]string{"Generated At", report.GeneratedAt.Format(time.RFC3339)},
		[]string{"Records", strconv.Itoa(report.Summary.Records)},
		[]string{"Total Sales", report.Summary.TotalSales.StringFixed(2)},
		[]string{"Total Profit", report.Summary.TotalProfit.StringFixed(2)},
	)

	if len(report.Aggregates) > 0 {
		records = append(records, nil, []string{string(report.GroupBy), "Sales", "Profit", "Records"})
		for _, row := range report.Aggregates {
			records = append(records, []string{
				row.Key,
				row.Sales.StringFixed(2),
				row.Profit.StringFixed(2),
				strconv.Itoa(row.Count),
			})
		}
	}

	if len(report.TimeSeries) > 0 {
		records = append(records, nil, []string{"Month", fmt.Sprintf("%s (%s)", report.TimeSeriesMetric, report.Region)})
		for _, row := range report.TimeSeries {
			records = append(records, []string{row.Label(), row.Value.StringFixed(2)})
		}
	}

	if len(report.Locations) > 0 {
		records = append(records, nil, []string{
			"Latitude", "Longitude", string(report.MapMetric), "Discount", "Quantity",
			"Region", "Postal Code", "State", "City", "Records",
		})
		for _, loc := range report.Locations {
			records = append(records, []string{
				strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
				strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
				loc.Value.StringFixed(2),
				loc.Discount.String(),
				strconv.Itoa(loc.Quantity),
				loc.Region,
				loc.PostalCode,
				loc.State,
				loc.City,
				strconv.Itoa(loc.Count),
			})
		}
	}

	if len(report.Notices) > 0 {
		records = append(records, nil, []string{"Notices"})
		for _, n := range report.Notices {
			records = append(records, []string{cleanRichTags(n)})
		}
	}

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	clean := report
	clean.Notices = make([]string, len(report.Notices))
	for i, n := range report.Notices {
		clean.Notices[i] = cleanRichTags(n)
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(clean); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{0, 102, 204}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Sales Dashboard | %s", report.GeneratedAt.Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	drawTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawSection := func(title string, content string) {
		content = cleanRichTags(content)
		if strings.TrimSpace(content) == "" {
			return
		}
		drawTitle(title)
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	// drawTable usa a primeira coluna alinhada à esquerda e as demais à direita.
	drawTable := func(title string, widths []float64, header []string, rows [][]string) {
		if len(rows) == 0 {
			return
		}
		drawTitle(title)
		pdf.SetFont("Arial", "B", 9)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for i, h := range header {
			pdf.CellFormat(widths[i], 7, tr(h), "B", 0, align(i), false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, row := range rows {
			for i, cell := range row {
				pdf.CellFormat(widths[i], 6, tr(cell), "", 0, align(i), false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(8)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Sales Dashboard"), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	source := report.Source
	if len(source) > 90 {
		source = "..." + source[len(source)-87:]
	}
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Source: %s", source)), "", 1, "L", true, 0, "")
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Session: %s", report.SessionID)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	drawSection("About the Data", summaryText(report.Summary))

	var aggRows [][]string
	for _, row := range report.Aggregates {
		aggRows = append(aggRows, []string{row.Key, "$" + row.Sales.StringFixed(2), "$" + row.Profit.StringFixed(2), strconv.Itoa(row.Count)})
	}
	drawTable(fmt.Sprintf("Sales and Profit by %s", report.GroupBy),
		[]float64{85, 40, 40, 25}, []string{string(report.GroupBy), "Sales", "Profit", "Records"}, aggRows)

	var tsRows [][]string
	for _, row := range report.TimeSeries {
		tsRows = append(tsRows, []string{row.Label(), "$" + row.Value.StringFixed(2)})
	}
	drawTable(fmt.Sprintf("Monthly %s - %s", report.TimeSeriesMetric, report.Region),
		[]float64{95, 95}, []string{"Month", string(report.TimeSeriesMetric)}, tsRows)

	var locRows [][]string
	for _, loc := range report.Locations {
		locRows = append(locRows, []string{
			fmt.Sprintf("%s, %s", loc.City, loc.State),
			fmt.Sprintf("%.4f, %.4f", loc.Latitude, loc.Longitude),
			"$" + loc.Value.StringFixed(2),
			strconv.Itoa(loc.Quantity),
		})
	}
	drawTable(fmt.Sprintf("%s by Location", report.MapMetric),
		[]float64{70, 55, 40, 25}, []string{"Location", "Coordinates", string(report.MapMetric), "Quantity"}, locRows)

	drawSection("Notices", strings.Join(report.Notices, "\n"))

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

func align(col int) string {
	if col == 0 {
		return "L"
	}
	return "R"
}

func summaryText(s entity.DatasetSummary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Records: %d\n", s.Records))
	if s.Categories != nil {
		b.WriteString(fmt.Sprintf("Categories: %d\n", *s.Categories))
	}
	if s.SubCategories != nil {
		b.WriteString(fmt.Sprintf("Sub-Categories: %d\n", *s.SubCategories))
	}
	if s.Regions != nil {
		b.WriteString(fmt.Sprintf("Regions: %d\n", *s.Regions))
	}
	b.WriteString(fmt.Sprintf("Total Sales: $%s\n", s.TotalSales.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Total Profit: $%s\n", s.TotalProfit.StringFixed(2)))
	if !s.FirstOrderDate.IsZero() {
		b.WriteString(fmt.Sprintf("Orders from %s to %s\n", s.FirstOrderDate.Format("2006-01-02"), s.LastOrderDate.Format("2006-01-02")))
	}
	if len(s.MissingColumns) > 0 {
		names := make([]string, len(s.MissingColumns))
		for i, c := range s.MissingColumns {
			names[i] = string(c)
		}
		b.WriteString(fmt.Sprintf("Missing columns: %s\n", strings.Join(names, ", ")))
	}
	return b.String()
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}
