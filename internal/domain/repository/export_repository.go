package repository

import (
	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
)

// ExportRepository writes a dashboard report to disk. Every method returns
// the absolute path of the file it created.
type ExportRepository interface {
	ExportToCSV(report entity.DashboardReport, filename string, outputDir string) (string, error)
	ExportToJSON(report entity.DashboardReport, filename string, outputDir string) (string, error)
	ExportToPDF(report entity.DashboardReport, filename string, outputDir string) (string, error)
	ExportToSQLite(report entity.DashboardReport, filename string, outputDir string) (string, error)
}
