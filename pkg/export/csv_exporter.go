package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Grid is a week-by-slot table ready for rendering. Columns are weekdays,
// rows are numbered periods with their wall-clock window.
type Grid struct {
	Days     []string
	RowLabel []string
	Cells    [][]string
}

// CSVExporter renders a timetable grid into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the grid, one row per period.
func (e *CSVExporter) Render(grid Grid) ([]byte, error) {
	if len(grid.Days) == 0 {
		return nil, fmt.Errorf("csv requires at least one day column")
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	header := append([]string{"Period"}, grid.Days...)
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i, label := range grid.RowLabel {
		record := make([]string, 0, len(grid.Days)+1)
		record = append(record, label)
		for d := range grid.Days {
			cell := ""
			if i < len(grid.Cells) && d < len(grid.Cells[i]) {
				cell = grid.Cells[i][d]
			}
			record = append(record, cell)
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
