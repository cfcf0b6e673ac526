package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/sales-dashboard-go/internal/domain/repository"
	"github.com/diillson/sales-dashboard-go/internal/shared/types"
	"github.com/diillson/sales-dashboard-go/internal/validation"
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	datasetRepo repository.DatasetRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
	validator   *validation.Validator
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	datasetRepo repository.DatasetRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		datasetRepo: datasetRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
		validator:   validation.NewValidator(),
	}
}

// RunDashboard carrega o dataset e renderiza todas as seções do dashboard.
// Só a falha de carga é fatal; colunas ausentes viram avisos e a seção
// correspondente é pulada.
func (uc *DashboardUseCase) RunDashboard(
	ctx context.Context,
	args *types.CLIArgs,
) error {
	sessionID := uuid.NewString()
	uc.console.LogDebug("Starting session %s", sessionID)

	status := uc.console.Status(fmt.Sprintf("Loading dataset from %s...", args.File))
	ds, err := uc.datasetRepo.LoadDataset(ctx, repository.DatasetSource{
		Location:   args.File,
		Sheet:      args.Sheet,
		AWSProfile: args.AWSProfile,
		AWSRegion:  args.AWSRegion,
	})
	status.Stop()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	uc.console.LogSuccess("Loaded %d records from %s", ds.Len(), ds.Source())

	report := &entity.DashboardReport{
		SessionID:   sessionID,
		Source:      ds.Source(),
		GeneratedAt: time.Now(),
	}

	if ds.Len() == 0 {
		uc.notice(report, "%s", types.ErrEmptyDataset)
	}

	uc.showAboutData(ds, report)
	uc.showPreview(ds, args.PreviewRows)
	uc.showGroupBy(ds, args, report)
	uc.showTimeSeries(ds, args, report)
	uc.showLocations(ds, args, report)

	uc.exportReport(*report, args)

	return nil
}

// notice registra um aviso no console e no relatório exportado.
func (uc *DashboardUseCase) notice(report *entity.DashboardReport, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	uc.console.LogWarning("%s", msg)
	report.Notices = append(report.Notices, msg)
}

// exportReport exporta o relatório em cada formato pedido. Falhas de
// exportação são registradas sem interromper os demais formatos.
func (uc *DashboardUseCase) exportReport(report entity.DashboardReport, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		case "sqlite":
			dbPath, err := uc.exportRepo.ExportToSQLite(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to SQLite: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to SQLite: %s", dbPath)
			}
		default:
			uc.console.LogWarning("Unknown report type %q skipped", reportType)
		}
	}
}
