package pipeline

import (
	"fmt"

	"github.com/diillson/sales-dashboard-go/internal/domain/entity"
)

const (
	DefaultHeatmapRows = 8
	DefaultHeatmapCols = 16
)

// BuildHeatmap bins location aggregates into a rows x cols grid spanning the
// bounding box of the points, summing each location's value into its cell.
// The grid total always equals the sum of the location values.
func BuildHeatmap(locations []entity.LocationAggregate, rows, cols int) entity.HeatmapGrid {
	if rows <= 0 {
		rows = DefaultHeatmapRows
	}
	if cols <= 0 {
		cols = DefaultHeatmapCols
	}
	if len(locations) == 0 {
		return entity.HeatmapGrid{}
	}

	grid := entity.HeatmapGrid{
		MinLatitude:  locations[0].Latitude,
		MaxLatitude:  locations[0].Latitude,
		MinLongitude: locations[0].Longitude,
		MaxLongitude: locations[0].Longitude,
	}
	for _, l := range locations[1:] {
		grid.MinLatitude = min(grid.MinLatitude, l.Latitude)
		grid.MaxLatitude = max(grid.MaxLatitude, l.Latitude)
		grid.MinLongitude = min(grid.MinLongitude, l.Longitude)
		grid.MaxLongitude = max(grid.MaxLongitude, l.Longitude)
	}

	latStep := (grid.MaxLatitude - grid.MinLatitude) / float64(rows)
	lonStep := (grid.MaxLongitude - grid.MinLongitude) / float64(cols)

	grid.Cells = make([][]float64, rows)
	for i := range grid.Cells {
		grid.Cells[i] = make([]float64, cols)
	}

	grid.RowLabels = make([]string, rows)
	for i := 0; i < rows; i++ {
		grid.RowLabels[i] = fmt.Sprintf("%.1f", grid.MaxLatitude-latStep*float64(i))
	}
	grid.ColLabels = make([]string, cols)
	for j := 0; j < cols; j++ {
		grid.ColLabels[j] = fmt.Sprintf("%.0f", grid.MinLongitude+lonStep*float64(j))
	}

	for _, l := range locations {
		row := cellIndex(grid.MaxLatitude-l.Latitude, latStep, rows)
		col := cellIndex(l.Longitude-grid.MinLongitude, lonStep, cols)
		grid.Cells[row][col] += l.Value.InexactFloat64()
	}
	return grid
}

func cellIndex(offset, step float64, n int) int {
	if step <= 0 {
		return 0
	}
	idx := int(offset / step)
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
