package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Day", "Time", "Course"},
		Rows: []map[string]string{
			{"Day": "Monday", "Time": "09:00-10:00", "Course": "Python Programming"},
			{"Day": "Monday", "Time": "10:00-11:00", "Course": "Database, Systems"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.Equal(t, "Day,Time,Course\nMonday,09:00-10:00,Python Programming\nMonday,10:00-11:00,\"Database, Systems\"\n", string(out))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset(), "Timetable", "Information Technology")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "", "")
	assert.Error(t, err)
}

func TestExcelExporterRender(t *testing.T) {
	out, err := NewExcelExporter().Render(sampleDataset(), "Timetable IT")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Timetable"}, f.GetSheetList())
	title, err := f.GetCellValue("Timetable", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Timetable IT", title)
	header, err := f.GetCellValue("Timetable", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Course", header)
	value, err := f.GetCellValue("Timetable", "C4")
	require.NoError(t, err)
	assert.Equal(t, "Database, Systems", value)
}

func TestExcelExporterRequiresHeaders(t *testing.T) {
	_, err := NewExcelExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}
