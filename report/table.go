package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/nonsonwune/srms/models"
)

// RenderStudents draws the roster as a bordered table
func RenderStudents(w io.Writer, students []models.Student) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Roll", "Name", "Department", "Semester", "CGPA", "Grade", "Status"})
	table.SetAutoFormatHeaders(false)

	for _, s := range students {
		table.Append([]string{
			fmt.Sprintf("%d", s.Roll),
			s.Name,
			s.Department,
			fmt.Sprintf("%d", s.Semester),
			FormatCGPA(s.CGPA),
			string(s.Grade),
			models.Classify(s.CGPA),
		})
	}

	if len(students) == 0 {
		table.SetFooter([]string{"", noStudents, "", "", "", "", ""})
	}
	table.Render()
}

// RenderQueries draws the query ledger as a bordered table
func RenderQueries(w io.Writer, queries []models.Query) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Roll", "Name", "Status", "Message"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(true)

	for _, q := range queries {
		table.Append([]string{
			fmt.Sprintf("%d", q.ID),
			fmt.Sprintf("%d", q.Roll),
			q.Name,
			q.Status.String(),
			q.Message,
		})
	}

	if len(queries) == 0 {
		table.SetFooter([]string{"", noQueries, "", "", ""})
	}
	table.Render()
}

// RenderStatusSummary draws how many students fall into each CGPA band
func RenderStatusSummary(w io.Writer, students []models.Student) {
	bands := []string{
		models.StatusExcellent,
		models.StatusVeryGood,
		models.StatusGood,
		models.StatusAverage,
		models.StatusNeedsHelp,
	}
	counts := make(map[string]int, len(bands))
	for _, s := range students {
		counts[models.Classify(s.CGPA)]++
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Status", "Students"})
	table.SetAutoFormatHeaders(false)
	for _, band := range bands {
		table.Append([]string{band, fmt.Sprintf("%d", counts[band])})
	}
	table.SetFooter([]string{"Total", fmt.Sprintf("%d", len(students))})
	table.Render()
}
