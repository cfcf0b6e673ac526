package export

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
	_ "modernc.org/sqlite"
)

var sqliteSchema = []string{
	`CREATE TABLE "sessions" (
		"session_id" TEXT PRIMARY KEY,
		"source" TEXT NOT NULL,
		"generated_at" TEXT NOT NULL,
		"records" INTEGER NOT NULL,
		"total_sales" TEXT NOT NULL,
		"total_profit" TEXT NOT NULL
	)`,
	`CREATE TABLE "aggregates" (
		"session_id" TEXT NOT NULL,
		"group_by" TEXT NOT NULL,
		"key" TEXT NOT NULL,
		"sales" TEXT NOT NULL,
		"profit" TEXT NOT NULL,
		"records" INTEGER NOT NULL
	)`,
	`CREATE TABLE "time_series" (
		"session_id" TEXT NOT NULL,
		"metric" TEXT NOT NULL,
		"region" TEXT NOT NULL,
		"month" TEXT NOT NULL,
		"value" TEXT NOT NULL
	)`,
	`CREATE TABLE "locations" (
		"session_id" TEXT NOT NULL,
		"metric" TEXT NOT NULL,
		"latitude" REAL NOT NULL,
		"longitude" REAL NOT NULL,
		"value" TEXT NOT NULL,
		"discount" TEXT NOT NULL,
		"quantity" INTEGER NOT NULL,
		"region" TEXT,
		"postal_code" TEXT,
		"state" TEXT,
		"city" TEXT,
		"records" INTEGER NOT NULL
	)`,
	`CREATE TABLE "notices" (
		"session_id" TEXT NOT NULL,
		"message" TEXT NOT NULL
	)`,
}

// ExportToSQLite grava o relatório num banco SQLite novo. Valores monetários
// são armazenados como TEXT para preservar a precisão decimal.
func (r *ExportRepositoryImpl) ExportToSQLite(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "sqlite")
	if err != nil {
		return "", err
	}

	db, err := sql.Open("sqlite", outputFilename)
	if err != nil {
		return "", fmt.Errorf("error opening SQLite file: %w", err)
	}
	defer db.Close()

	for _, stmt := range sqliteSchema {
		if _, err := db.Exec(stmt); err != nil {
			return "", fmt.Errorf("error creating SQLite schema: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("error starting SQLite transaction: %w", err)
	}
	if err := writeReport(tx, report); err != nil {
		_ = tx.Rollback()
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("error committing SQLite transaction: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func writeReport(tx *sql.Tx, report entity.DashboardReport) error {
	id := report.SessionID

	if _, err := tx.Exec(`INSERT INTO "sessions" VALUES (?, ?, ?, ?, ?, ?)`,
		id, report.Source, report.GeneratedAt.Format(time.RFC3339), report.Summary.Records,
		report.Summary.TotalSales.String(), report.Summary.TotalProfit.String()); err != nil {
		return fmt.Errorf("error writing session row: %w", err)
	}

	aggStmt, err := tx.Prepare(`INSERT INTO "aggregates" VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("error preparing aggregates insert: %w", err)
	}
	defer aggStmt.Close()
	for _, row := range report.Aggregates {
		if _, err := aggStmt.Exec(id, string(report.GroupBy), row.Key, row.Sales.String(), row.Profit.String(), row.Count); err != nil {
			return fmt.Errorf("error writing aggregate %q: %w", row.Key, err)
		}
	}

	tsStmt, err := tx.Prepare(`INSERT INTO "time_series" VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("error preparing time series insert: %w", err)
	}
	defer tsStmt.Close()
	for _, row := range report.TimeSeries {
		if _, err := tsStmt.Exec(id, string(report.TimeSeriesMetric), report.Region, row.Label(), row.Value.String()); err != nil {
			return fmt.Errorf("error writing month %s: %w", row.Label(), err)
		}
	}

	locStmt, err := tx.Prepare(`INSERT INTO "locations" VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("error preparing locations insert: %w", err)
	}
	defer locStmt.Close()
	for _, loc := range report.Locations {
		if _, err := locStmt.Exec(id, string(loc.Metric), loc.Latitude, loc.Longitude,
			loc.Value.String(), loc.Discount.String(), loc.Quantity,
			loc.Region, loc.PostalCode, loc.State, loc.City, loc.Count); err != nil {
			return fmt.Errorf("error writing location (%v, %v): %w", loc.Latitude, loc.Longitude, err)
		}
	}

	for _, n := range report.Notices {
		if _, err := tx.Exec(`INSERT INTO "notices" VALUES (?, ?)`, id, cleanRichTags(n)); err != nil {
			return fmt.Errorf("error writing notice: %w", err)
		}
	}

	return nil
}
