package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const excelSheet = "Timetable"

// ExcelExporter renders datasets into a single-sheet workbook.
type ExcelExporter struct{}

// NewExcelExporter constructs an Excel exporter.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// ContentType is the MIME type of the rendered output.
func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render writes title on the first row, headers on the second and one row per record after.
func (e *ExcelExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("xlsx requires at least one header")
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(excelSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9D9D9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	lastCol, _ := excelize.ColumnNumberToName(len(data.Headers))
	row := 1
	if title != "" {
		_ = f.SetCellValue(excelSheet, "A1", title)
		_ = f.MergeCell(excelSheet, "A1", fmt.Sprintf("%s1", lastCol))
		_ = f.SetCellStyle(excelSheet, "A1", "A1", headerStyle)
		row++
	}

	for i, header := range data.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(excelSheet, cell, header)
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(data.Headers), row)
	_ = f.SetCellStyle(excelSheet, first, last, headerStyle)
	_ = f.SetColWidth(excelSheet, "A", lastCol, 18)

	for _, record := range data.Rows {
		row++
		for i, value := range data.Record(record) {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(excelSheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
