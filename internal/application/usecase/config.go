package usecase

import (
	"github.com/diillson/sales-dashboard-go/internal/shared/types"
)

// LoadEnvironment lê um arquivo .env opcional para o ambiente do processo.
func (uc *DashboardUseCase) LoadEnvironment(path string) error {
	return uc.configRepo.LoadEnvFile(path)
}

// PrepareArgs mescla o arquivo de configuração (se houver) nos argumentos e
// valida o resultado. explicit informa se uma flag foi definida pelo usuário;
// valores explícitos nunca são sobrescritos pela configuração.
func (uc *DashboardUseCase) PrepareArgs(args *types.CLIArgs, explicit func(flag string) bool) error {
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		mergeConfig(args, cfg, explicit)
		uc.console.LogDebug("Loaded configuration from %s", args.ConfigFile)
	}

	if args.File == "" {
		return types.ErrNoDatasetSource
	}

	return uc.validator.Struct(args)
}

func mergeConfig(args *types.CLIArgs, cfg *types.Config, explicit func(flag string) bool) {
	setString := func(flag string, dst *string, value string) {
		if value != "" && !explicit(flag) {
			*dst = value
		}
	}
	setInt := func(flag string, dst *int, value *int) {
		if value != nil && !explicit(flag) {
			*dst = *value
		}
	}

	setString("file", &args.File, cfg.File)
	setString("sheet", &args.Sheet, cfg.Sheet)
	setString("group-by", &args.GroupBy, cfg.GroupBy)
	setString("metric", &args.Metric, cfg.Metric)
	setString("region", &args.Region, cfg.Region)
	setString("map-metric", &args.MapMetric, cfg.MapMetric)
	setString("sort-by", &args.SortBy, cfg.SortBy)
	setString("report-name", &args.ReportName, cfg.ReportName)
	setString("dir", &args.Dir, cfg.Dir)
	setString("aws-profile", &args.AWSProfile, cfg.AWSProfile)
	setString("aws-region", &args.AWSRegion, cfg.AWSRegion)
	setInt("preview-rows", &args.PreviewRows, cfg.PreviewRows)
	setInt("top-locations", &args.TopLocations, cfg.TopLocations)
	setInt("heatmap-rows", &args.HeatmapRows, cfg.HeatmapRows)
	setInt("heatmap-cols", &args.HeatmapCols, cfg.HeatmapCols)

	if cfg.Debug != nil && !explicit("debug") {
		args.Debug = *cfg.Debug
	}

	if len(cfg.ReportType) > 0 && !explicit("report-type") {
		args.ReportType = cfg.ReportType
	}
}
