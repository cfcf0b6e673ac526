package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	File         string   `json:"file" yaml:"file" toml:"file"`
	Sheet        string   `json:"sheet" yaml:"sheet" toml:"sheet"`
	GroupBy      string   `json:"group_by" yaml:"group_by" toml:"group_by" validate:"omitempty,group_key"`
	Metric       string   `json:"metric" yaml:"metric" toml:"metric" validate:"omitempty,metric"`
	Region       string   `json:"region" yaml:"region" toml:"region"`
	MapMetric    string   `json:"map_metric" yaml:"map_metric" toml:"map_metric" validate:"omitempty,metric"`
	SortBy       string   `json:"sort_by" yaml:"sort_by" toml:"sort_by" validate:"omitempty,oneof=key sales profit"`
	PreviewRows  *int     `json:"preview_rows" yaml:"preview_rows" toml:"preview_rows" validate:"omitempty,gte=0"`
	TopLocations *int     `json:"top_locations" yaml:"top_locations" toml:"top_locations" validate:"omitempty,gte=0"`
	HeatmapRows  *int     `json:"heatmap_rows" yaml:"heatmap_rows" toml:"heatmap_rows" validate:"omitempty,gte=0"`
	HeatmapCols  *int     `json:"heatmap_cols" yaml:"heatmap_cols" toml:"heatmap_cols" validate:"omitempty,gte=0"`
	ReportName   string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType   []string `json:"report_type" yaml:"report_type" toml:"report_type" validate:"dive,oneof=csv json pdf sqlite"`
	Dir          string   `json:"dir" yaml:"dir" toml:"dir"`
	AWSProfile   string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	AWSRegion    string   `json:"aws_region" yaml:"aws_region" toml:"aws_region"`
	Debug        *bool    `json:"debug" yaml:"debug" toml:"debug"`
}
