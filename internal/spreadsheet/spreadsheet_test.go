package spreadsheet

import (
	"path/filepath"
	"testing"

	"github.com/stemsi/course-registration/internal/apperror"
	"github.com/stemsi/course-registration/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportThenImport(t *testing.T) {
	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	a, err := model.NewStudent("john", "DOE", "python")
	require.NoError(t, err)
	b, err := model.NewStudent("ann", "li", "math 101")
	require.NoError(t, err)

	// --- Act ---
	require.NoError(t, Export(path, []*model.Student{a, b}))
	got, err := Import(path)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "John, Doe, Python", got[0].String())
	assert.Equal(t, "Ann, Li, Math 101", got[1].String())
	assert.Equal(t, a.Record(), got[0].Record())
	assert.Equal(t, b.Record(), got[1].Record())
}

func TestExport_WritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, Export(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"FirstName", "LastName", "CourseName"}, rows[0])
}

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.xlsx")
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImport_SkipsBlankRowsAndPadsMissingCells(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"First", "Last", "Course"},
		{"ann", "li", "math"},
		{"", "", ""},
		{"bob", "smith"},
	})

	got, err := Import(path)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Math", got[0].CourseName())
	assert.Equal(t, "", got[1].CourseName())
}

func TestImport_InvalidRow(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"First", "Last", "Course"},
		{"ann", "li", "math"},
		{"John3", "Doe", "Python"},
	})

	got, err := Import(path)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, err.Error(), "row 3")
}

func TestImport_MissingFile(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "nope.xlsx"))

	assert.ErrorIs(t, err, apperror.ErrIO)
}
