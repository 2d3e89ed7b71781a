package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders a timetable grid into a landscape PDF page.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a PDF document with a title row and the weekly grid.
func (e *PDFExporter) Render(grid Grid, title string) ([]byte, error) {
	if len(grid.Days) == 0 {
		return nil, fmt.Errorf("pdf requires at least one day column")
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(title), "", 1, "C", false, 0, "")
		pdf.Ln(4)
	}

	labelWidth := 42.0
	colWidth := (277.0 - labelWidth) / float64(len(grid.Days))

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(labelWidth, 8, "Period", "1", 0, "C", false, 0, "")
	for _, day := range grid.Days {
		pdf.CellFormat(colWidth, 8, day, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for i, label := range grid.RowLabel {
		pdf.CellFormat(labelWidth, 9, label, "1", 0, "", false, 0, "")
		for d := range grid.Days {
			cell := ""
			if i < len(grid.Cells) && d < len(grid.Cells[i]) {
				cell = grid.Cells[i][d]
			}
			pdf.CellFormat(colWidth, 9, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
