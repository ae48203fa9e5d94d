// Package spreadsheet exchanges rosters with Excel workbooks.
package spreadsheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stemsi/course-registration/internal/apperror"
	"github.com/stemsi/course-registration/internal/model"
	"github.com/xuri/excelize/v2"
)

// SheetName is the sheet written by Export.
const SheetName = "Enrollments"

var header = []interface{}{"FirstName", "LastName", "CourseName"}

// Export writes roster to a new workbook at path: a header row followed by
// one row per student, values as stored in the roster file.
func Export(path string, roster []*model.Student) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return apperror.New(apperror.KindIO, "failed to prepare sheet", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return apperror.New(apperror.KindIO, "failed to write header", err)
	}

	for i, st := range roster {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return apperror.New(apperror.KindIO, "failed to address row", err)
		}
		rec := st.Record()
		row := []interface{}{rec.FirstName, rec.LastName, rec.CourseName}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return apperror.New(apperror.KindIO, fmt.Sprintf("failed to write row %d", i+2), err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return apperror.New(apperror.KindIO, "failed to save workbook", err)
	}
	return nil
}

// Import reads students from the first sheet of the workbook at path.
// Row 1 is a header; blank rows are skipped. Columns A, B and C hold the
// first name, last name and course name. Any invalid row fails the whole
// import.
func Import(path string) ([]*model.Student, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperror.New(apperror.KindIO, "failed to open workbook", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, apperror.New(apperror.KindParse, "workbook has no sheets", errors.New("empty workbook"))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperror.New(apperror.KindParse, fmt.Sprintf("failed to read sheet %s", sheet), err)
	}

	var students []*model.Student
	for i, row := range rows {
		if i == 0 || blank(row) {
			continue
		}
		st, err := model.NewStudent(cell(row, 0), cell(row, 1), cell(row, 2))
		if err != nil {
			return nil, apperror.New(apperror.KindValidation, fmt.Sprintf("invalid student on row %d", i+1), err)
		}
		students = append(students, st)
	}
	return students, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
