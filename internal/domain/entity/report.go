package entity

import "time"

// DashboardReport agrega tudo o que uma sessão do dashboard calculou, para
// exportação. Seções puladas ficam vazias e têm o motivo em Notices.
type DashboardReport struct {
	SessionID   string    `json:"session_id"`
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generated_at"`

	Summary DatasetSummary `json:"summary"`

	GroupBy    Column         `json:"group_by,omitempty"`
	Aggregates []AggregateRow `json:"aggregates,omitempty"`

	TimeSeriesMetric Metric          `json:"time_series_metric,omitempty"`
	Region           string          `json:"region,omitempty"`
	TimeSeries       []TimeSeriesRow `json:"time_series,omitempty"`

	MapMetric Metric              `json:"map_metric,omitempty"`
	Locations []LocationAggregate `json:"locations,omitempty"`

	Notices []string `json:"notices,omitempty"`
}
