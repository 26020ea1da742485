package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nonsonwune/srms/models"
)

const (
	separator       = "---------------------------------------------------------------------"
	noStudents      = "(No students added yet)"
	noQueries       = "(No queries submitted yet)"
	studentNotFound = "Student not found."
)

// StudentNotFound is the text shown when a roll lookup has no match
func StudentNotFound() string {
	return studentNotFound
}

// FormatCGPA prints a CGPA with up to six significant digits and without
// trailing zeros, e.g. 8.5, 0, 7.999.
func FormatCGPA(cgpa float64) string {
	return strconv.FormatFloat(cgpa, 'g', 6, 64)
}

// StudentText renders a single student as a label/value card
func StudentText(s models.Student) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Roll   : %d\n", s.Roll)
	fmt.Fprintf(&b, "Name   : %s\n", s.Name)
	fmt.Fprintf(&b, "Dept   : %s\n", s.Department)
	fmt.Fprintf(&b, "Sem    : %d\n", s.Semester)
	fmt.Fprintf(&b, "CGPA   : %s\n", FormatCGPA(s.CGPA))
	fmt.Fprintf(&b, "Grade  : %c", s.Grade)
	return b.String()
}

// StudentsText renders the roster as a fixed-width table with a status
// column. Long values are not truncated.
func StudentsText(students []models.Student) string {
	var b strings.Builder
	writeStudentRow(&b, "ROLL", "NAME", "DEPT", "SEM", "CGPA", "GRADE", "STATUS")
	b.WriteString(separator + "\n")

	if len(students) == 0 {
		b.WriteString(noStudents + "\n")
		return b.String()
	}
	for _, s := range students {
		writeStudentRow(&b,
			strconv.Itoa(s.Roll),
			s.Name,
			s.Department,
			strconv.Itoa(s.Semester),
			FormatCGPA(s.CGPA),
			string(s.Grade),
			models.Classify(s.CGPA),
		)
	}
	return b.String()
}

// QueriesText renders the query ledger as a fixed-width table
func QueriesText(queries []models.Query) string {
	var b strings.Builder
	writeQueryRow(&b, "ID", "ROLL", "NAME", "STATUS", "MESSAGE")
	b.WriteString(separator + "\n")

	if len(queries) == 0 {
		b.WriteString(noQueries + "\n")
		return b.String()
	}
	for _, q := range queries {
		writeQueryRow(&b,
			strconv.Itoa(q.ID),
			strconv.Itoa(q.Roll),
			q.Name,
			q.Status.String(),
			q.Message,
		)
	}
	return b.String()
}

func writeStudentRow(b *strings.Builder, roll, name, dept, sem, cgpa, grade, status string) {
	fmt.Fprintf(b, "%-5s %-18s%-10s%-6s%-7s%-7s%s\n", roll, name, dept, sem, cgpa, grade, status)
}

func writeQueryRow(b *strings.Builder, id, roll, name, status, message string) {
	fmt.Fprintf(b, "%-4s%-6s%-15s%-10s%s\n", id, roll, name, status, message)
}
