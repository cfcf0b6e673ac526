package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile   string   `flag:"config-file"`
	File         string   `flag:"file" validate:"required"`
	Sheet        string   `flag:"sheet"`
	GroupBy      string   `flag:"group-by" validate:"required,group_key"`
	Metric       string   `flag:"metric" validate:"required,metric"`
	Region       string   `flag:"region"`
	MapMetric    string   `flag:"map-metric" validate:"required,metric"`
	SortBy       string   `flag:"sort-by" validate:"omitempty,oneof=key sales profit"`
	PreviewRows  int      `flag:"preview-rows" validate:"gte=0"`
	TopLocations int      `flag:"top-locations" validate:"gte=0"`
	HeatmapRows  int      `flag:"heatmap-rows" validate:"gte=0,lte=60"`
	HeatmapCols  int      `flag:"heatmap-cols" validate:"gte=0,lte=120"`
	ReportName   string   `flag:"report-name"`
	ReportType   []string `flag:"report-type" validate:"dive,oneof=csv json pdf sqlite"`
	Dir          string   `flag:"dir"`
	AWSProfile   string   `flag:"aws-profile"`
	AWSRegion    string   `flag:"aws-region"`
	Debug        bool     `flag:"debug"`
}
