package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/nonsonwune/srms/models"
)

const studentsSheet = "Students"

// ExportStudents writes the roster as an xlsx workbook
func ExportStudents(w io.Writer, students []models.Student) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", studentsSheet); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}

	headers := []string{"Roll", "Name", "Department", "Semester", "CGPA", "Grade", "Status"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(studentsSheet, cell, header); err != nil {
			return err
		}
	}

	for i, s := range students {
		row := i + 2
		values := []interface{}{
			s.Roll,
			s.Name,
			s.Department,
			s.Semester,
			s.CGPA,
			string(s.Grade),
			models.Classify(s.CGPA),
		}
		if err := f.SetSheetRow(studentsSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("error writing row %d: %w", row, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}
