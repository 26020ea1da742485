package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nonsonwune/srms/models"
)

func TestRenderStudents(t *testing.T) {
	var buf bytes.Buffer
	RenderStudents(&buf, []models.Student{{Roll: 101, Name: "Asha", Department: "CSE", Semester: 3, CGPA: 8.5, Grade: 'A'}})

	out := buf.String()
	for _, want := range []string{"Roll", "Asha", "CSE", "8.5", "Excellent"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEmptyBoards(t *testing.T) {
	var buf bytes.Buffer
	RenderStudents(&buf, nil)
	RenderQueries(&buf, nil)

	out := buf.String()
	if !strings.Contains(out, "(No students added yet)") || !strings.Contains(out, "(No queries submitted yet)") {
		t.Errorf("empty placeholders missing:\n%s", out)
	}
}

func TestRenderStatusSummary(t *testing.T) {
	var buf bytes.Buffer
	RenderStatusSummary(&buf, []models.Student{
		{Roll: 1, CGPA: 9},
		{Roll: 2, CGPA: 8.1},
		{Roll: 3, CGPA: 4},
	})

	out := buf.String()
	for _, want := range []string{"Excellent", "Needs Help", "2", "3"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
