package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/deptsched/timetable-api/internal/dto"
	"github.com/deptsched/timetable-api/internal/engine"
	appErrors "github.com/deptsched/timetable-api/pkg/errors"
	"github.com/deptsched/timetable-api/pkg/export"
)

type timetableViewer interface {
	PublishedView(ctx context.Context, query dto.TimetableQuery) (*dto.TimetableResponse, error)
}

// ExportService renders a section's published timetable as CSV or PDF.
type ExportService struct {
	timetables timetableViewer
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	enabled    bool
	logger     *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(timetables timetableViewer, enabled bool, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		timetables: timetables,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		enabled:    enabled,
		logger:     logger,
	}
}

// CSV renders the published timetable grid as CSV bytes.
func (s *ExportService) CSV(ctx context.Context, query dto.TimetableQuery) ([]byte, string, error) {
	grid, name, err := s.grid(ctx, query)
	if err != nil {
		return nil, "", err
	}
	payload, err := s.csv.Render(*grid)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render CSV")
	}
	return payload, name + ".csv", nil
}

// PDF renders the published timetable grid as a PDF document.
func (s *ExportService) PDF(ctx context.Context, query dto.TimetableQuery) ([]byte, string, error) {
	grid, name, err := s.grid(ctx, query)
	if err != nil {
		return nil, "", err
	}
	title := fmt.Sprintf("%s Year %d Section %s", query.Program, query.Year, query.Section)
	payload, err := s.pdf.Render(*grid, title)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render PDF")
	}
	return payload, name + ".pdf", nil
}

func (s *ExportService) grid(ctx context.Context, query dto.TimetableQuery) (*export.Grid, string, error) {
	if !s.enabled {
		return nil, "", appErrors.Clone(appErrors.ErrForbidden, "exports are disabled")
	}
	view, err := s.timetables.PublishedView(ctx, query)
	if err != nil {
		return nil, "", err
	}
	if len(view.Entries) == 0 {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "no published timetable for this section")
	}

	grid := buildGrid(view.Entries)
	name := fmt.Sprintf("timetable-%s-%d-%s", query.Program, query.Year, query.Section)
	return grid, name, nil
}

// buildGrid lays entries onto the 5x9 week. Row labels carry the wall-clock
// window when the entries have one; the lunch row is marked.
func buildGrid(entries []dto.TimetableEntryResponse) *export.Grid {
	dayIndex := make(map[string]int, len(engine.Weekdays))
	for i, day := range engine.Weekdays {
		dayIndex[day] = i
	}

	windows := make(map[int][2]string, engine.SlotsPerDay)
	cells := make([][]string, engine.SlotsPerDay)
	for i := range cells {
		cells[i] = make([]string, len(engine.Weekdays))
	}
	for _, entry := range entries {
		d, ok := dayIndex[entry.Day]
		if !ok || entry.Slot < 1 || entry.Slot > engine.SlotsPerDay {
			continue
		}
		text := entry.CourseCode
		if entry.SlotType == string(engine.SlotTypeLab) {
			text += " (Lab)"
		}
		cells[entry.Slot-1][d] = text
		windows[entry.Slot] = [2]string{entry.TimeStart, entry.TimeEnd}
	}

	labels := make([]string, engine.SlotsPerDay)
	for slot := 1; slot <= engine.SlotsPerDay; slot++ {
		label := fmt.Sprintf("Period %d", slot)
		if window, ok := windows[slot]; ok {
			label = fmt.Sprintf("Period %d (%s-%s)", slot, window[0], window[1])
		}
		if slot == engine.LunchSlot {
			label = fmt.Sprintf("Period %d (Lunch)", slot)
			for d := range cells[slot-1] {
				cells[slot-1][d] = "LUNCH"
			}
		}
		labels[slot-1] = label
	}

	return &export.Grid{
		Days:     append([]string(nil), engine.Weekdays...),
		RowLabel: labels,
		Cells:    cells,
	}
}
