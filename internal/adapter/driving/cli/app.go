package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/diillson/sales-dashboard-go/internal/application/usecase"
	"github.com/diillson/sales-dashboard-go/internal/shared/types"
	"github.com/diillson/sales-dashboard-go/pkg/version"
)

// Variáveis de ambiente (também lidas de um .env no diretório atual).
const (
	EnvFile       = "SALES_DASHBOARD_FILE"
	EnvConfigFile = "SALES_DASHBOARD_CONFIG"
)

// envFlags liga flags às variáveis de ambiente que as substituem.
var envFlags = map[string]string{
	"file":        EnvFile,
	"config-file": EnvConfigFile,
}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:   "sales-dashboard",
		Short: "Sales analytics dashboard for the terminal",
		Long: "Loads a sales spreadsheet (local file or s3://bucket/key) and renders aggregate tables,\n" +
			"bar and distribution charts, a monthly time series per region and a geographic heatmap.",
		Version:      formattedVersion,
		RunE:         app.runCommand,
		SilenceUsage: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "Sales Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file (env: "+EnvConfigFile+")")
	flags.StringP("file", "f", "", "Dataset to load: .xlsx, .xlsm or .csv path, or s3://bucket/key (env: "+EnvFile+")")
	flags.String("sheet", "", "Worksheet to read from a spreadsheet (default: first sheet)")
	flags.StringP("group-by", "g", "Category", "Column to group sales and profit by (Ship Mode, Segment, Category, Sub-Category, State, City, Region)")
	flags.StringP("metric", "m", "Sales", "Metric for the monthly time series: Sales or Profit")
	flags.StringP("region", "r", "", "Region for the monthly time series (default: first region in the data)")
	flags.String("map-metric", "Sales", "Metric for the geographic heatmap: Sales or Profit")
	flags.String("sort-by", "sales", "Order of the group-by table: key, sales or profit")
	flags.Int("preview-rows", 10, "Number of records shown in the data preview (0 disables it)")
	flags.Int("top-locations", 10, "Number of locations listed under the heatmap (0 disables the table)")
	flags.Int("heatmap-rows", 0, "Latitude bands of the heatmap (default 8)")
	flags.Int("heatmap-cols", 0, "Longitude bands of the heatmap (default 16)")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf, sqlite")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.String("aws-profile", "", "AWS profile used for s3:// datasets")
	flags.String("aws-region", "", "AWS region used for s3:// datasets")
	flags.Bool("debug", false, "Print debug messages")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// isExplicit reports whether the user set a flag on the command line or
// through its environment variable.
func (app *CLIApp) isExplicit(name string) bool {
	if app.rootCmd.Flags().Changed(name) {
		return true
	}
	if env, ok := envFlags[name]; ok {
		return os.Getenv(env) != ""
	}
	return false
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()
	configFile, _ := flags.GetString("config-file")
	file, _ := flags.GetString("file")
	sheet, _ := flags.GetString("sheet")
	groupBy, _ := flags.GetString("group-by")
	metric, _ := flags.GetString("metric")
	region, _ := flags.GetString("region")
	mapMetric, _ := flags.GetString("map-metric")
	sortBy, _ := flags.GetString("sort-by")
	previewRows, _ := flags.GetInt("preview-rows")
	topLocations, _ := flags.GetInt("top-locations")
	heatmapRows, _ := flags.GetInt("heatmap-rows")
	heatmapCols, _ := flags.GetInt("heatmap-cols")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	awsProfile, _ := flags.GetString("aws-profile")
	awsRegion, _ := flags.GetString("aws-region")
	debug, _ := flags.GetBool("debug")

	// Variáveis de ambiente valem quando a flag não foi passada
	if !flags.Changed("file") {
		if v := os.Getenv(EnvFile); v != "" {
			file = v
		}
	}
	if !flags.Changed("config-file") {
		if v := os.Getenv(EnvConfigFile); v != "" {
			configFile = v
		}
	}

	return &types.CLIArgs{
		ConfigFile:   configFile,
		File:         file,
		Sheet:        sheet,
		GroupBy:      groupBy,
		Metric:       metric,
		Region:       region,
		MapMetric:    mapMetric,
		SortBy:       sortBy,
		PreviewRows:  previewRows,
		TopLocations: topLocations,
		HeatmapRows:  heatmapRows,
		HeatmapCols:  heatmapCols,
		ReportName:   reportName,
		ReportType:   reportType,
		Dir:          dir,
		AWSProfile:   awsProfile,
		AWSRegion:    awsRegion,
		Debug:        debug,
	}, nil
}

// resolveDir converte o diretório de saída em caminho absoluto, usando o
// diretório atual quando vazio.
func resolveDir(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}
	return filepath.Abs(dir)
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	if err := app.dashboardUseCase.LoadEnvironment(".env"); err != nil {
		return err
	}

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	if err := app.dashboardUseCase.PrepareArgs(cliArgs, app.isExplicit); err != nil {
		return err
	}

	// debug também pode vir do arquivo de configuração
	if cliArgs.Debug {
		pterm.EnableDebugMessages()
	}

	// O diretório pode ter vindo do arquivo de configuração
	if cliArgs.Dir, err = resolveDir(cliArgs.Dir); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}
