package report

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/nonsonwune/srms/models"
)

func TestExportStudents(t *testing.T) {
	var buf bytes.Buffer
	students := []models.Student{
		{Roll: 101, Name: "Asha", Department: "CSE", Semester: 3, CGPA: 8.5, Grade: 'A'},
		{Roll: 102, Name: "Ravi", Department: "ECE", Semester: 1, CGPA: 5.5, Grade: 'C'},
	}
	if err := ExportStudents(&buf, students); err != nil {
		t.Fatalf("ExportStudents() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(studentsSheet)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != "Roll" || rows[0][6] != "Status" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "Asha" || rows[1][5] != "A" || rows[1][6] != "Excellent" {
		t.Errorf("first row = %v", rows[1])
	}
	if rows[2][0] != "102" || rows[2][6] != "Average" {
		t.Errorf("second row = %v", rows[2])
	}
}
