package backend

import (
	"errors"
	"testing"

	"github.com/nonsonwune/srms/models"
)

func asha() models.Student {
	return models.Student{Roll: 101, Name: "Asha", Department: "CSE", Semester: 3, CGPA: 8.5, Grade: 'A'}
}

func TestDirectoryInsertAndFind(t *testing.T) {
	d := NewDirectory(RollFromLast)
	if err := d.Insert(asha()); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := d.FindByRoll(101)
	if err != nil {
		t.Fatalf("FindByRoll() error = %v", err)
	}
	if got != asha() {
		t.Errorf("FindByRoll() = %+v, want %+v", got, asha())
	}
}

func TestDirectoryInsertRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		student models.Student
	}{
		{"zero roll", models.Student{Roll: 0, Name: "A", Department: "CSE"}},
		{"negative roll", models.Student{Roll: -4, Name: "A", Department: "CSE"}},
		{"empty name", models.Student{Roll: 1, Department: "CSE"}},
		{"empty department", models.Student{Roll: 1, Name: "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDirectory(RollFromLast)
			_ = d.Insert(asha())

			err := d.Insert(tt.student)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Insert() error = %v, want ErrValidation", err)
			}
			if d.Len() != 1 {
				t.Errorf("Len() = %d, want 1", d.Len())
			}
		})
	}
}

func TestDirectoryDuplicateRollsFirstMatchWins(t *testing.T) {
	d := NewDirectory(RollFromLast)
	_ = d.Insert(models.Student{Roll: 5, Name: "First", Department: "CSE"})
	_ = d.Insert(models.Student{Roll: 5, Name: "Second", Department: "ECE"})

	got, _ := d.FindByRoll(5)
	if got.Name != "First" {
		t.Errorf("FindByRoll() name = %q, want First", got.Name)
	}

	if err := d.Update(models.Student{Roll: 5, Name: "Updated", Department: "ME"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	all := d.All()
	if all[0].Name != "Updated" || all[1].Name != "Second" {
		t.Errorf("after Update() = %+v", all)
	}

	if err := d.Delete(5); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	all = d.All()
	if len(all) != 1 || all[0].Name != "Second" {
		t.Errorf("after Delete() = %+v", all)
	}
}

func TestDirectoryUpdate(t *testing.T) {
	d := NewDirectory(RollFromLast)
	_ = d.Insert(asha())

	changed := models.Student{Roll: 101, Name: "Asha K", Department: "IT", Semester: 4, CGPA: 6.1, Grade: 'B'}
	if err := d.Update(changed); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got, _ := d.FindByRoll(101)
	if got != changed {
		t.Errorf("FindByRoll() = %+v, want %+v", got, changed)
	}
}

func TestDirectoryUpdateMissingLeavesRecords(t *testing.T) {
	d := NewDirectory(RollFromLast)
	_ = d.Insert(asha())

	err := d.Update(models.Student{Roll: 999, Name: "Ghost", Department: "X"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
	if all := d.All(); len(all) != 1 || all[0] != asha() {
		t.Errorf("records changed: %+v", all)
	}
}

func TestDirectoryDelete(t *testing.T) {
	d := NewDirectory(RollFromLast)
	_ = d.Insert(asha())
	_ = d.Insert(models.Student{Roll: 102, Name: "Ravi", Department: "ECE"})

	if err := d.Delete(404); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(404) error = %v, want ErrNotFound", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}

	if err := d.Delete(101); err != nil {
		t.Fatalf("Delete(101) error = %v", err)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
	if _, err := d.FindByRoll(101); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByRoll(101) error = %v, want ErrNotFound", err)
	}
}

func TestFindOrCreateByName(t *testing.T) {
	d := NewDirectory(RollFromLast)

	roll, created := d.FindOrCreateByName("Ravi")
	if roll != 1 || !created {
		t.Fatalf("first call = (%d, %v), want (1, true)", roll, created)
	}
	got, _ := d.FindByRoll(1)
	if got != models.NewNamedStudent(1, "Ravi") {
		t.Errorf("created record = %+v", got)
	}

	roll, created = d.FindOrCreateByName("Ravi")
	if roll != 1 || created {
		t.Errorf("second call = (%d, %v), want (1, false)", roll, created)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}

	if _, created := d.FindOrCreateByName("ravi"); !created {
		t.Error("name match should be case-sensitive")
	}
}

func TestFindOrCreateByNameRollModes(t *testing.T) {
	seed := func(mode RollMode) *Directory {
		d := NewDirectory(mode)
		_ = d.Insert(models.Student{Roll: 10, Name: "A", Department: "CSE"})
		_ = d.Insert(models.Student{Roll: 3, Name: "B", Department: "CSE"})
		return d
	}

	tests := []struct {
		mode RollMode
		want int
	}{
		{RollFromLast, 4},
		{RollFromMax, 11},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			roll, created := seed(tt.mode).FindOrCreateByName("New")
			if roll != tt.want || !created {
				t.Errorf("FindOrCreateByName() = (%d, %v), want (%d, true)", roll, created, tt.want)
			}
		})
	}
}

func TestFindOrCreateByNameLastModeCanCollide(t *testing.T) {
	d := NewDirectory(RollFromLast)
	_ = d.Insert(models.Student{Roll: 2, Name: "A", Department: "CSE"})
	_ = d.Insert(models.Student{Roll: 1, Name: "B", Department: "CSE"})

	roll, _ := d.FindOrCreateByName("C")
	if roll != 2 {
		t.Fatalf("roll = %d, want 2", roll)
	}
	got, _ := d.FindByRoll(2)
	if got.Name != "A" {
		t.Errorf("FindByRoll(2) = %q, want the earlier record A", got.Name)
	}
}

func TestParseRollMode(t *testing.T) {
	for in, want := range map[string]RollMode{"": RollFromLast, "last": RollFromLast, "max": RollFromMax} {
		got, err := ParseRollMode(in)
		if err != nil || got != want {
			t.Errorf("ParseRollMode(%q) = (%v, %v), want %v", in, got, err, want)
		}
	}
	if _, err := ParseRollMode("random"); err == nil {
		t.Error("ParseRollMode(random) expected error")
	}
}

func TestDirectoryAllReturnsCopy(t *testing.T) {
	d := NewDirectory(RollFromLast)
	_ = d.Insert(asha())

	all := d.All()
	all[0].Name = "Changed"
	if got, _ := d.FindByRoll(101); got.Name != "Asha" {
		t.Errorf("All() exposed internal storage, name = %q", got.Name)
	}
}
