package backend

import (
	"fmt"

	"github.com/nonsonwune/srms/models"
)

// RollMode selects how a roll number is chosen for students created by a
// name search.
type RollMode int

const (
	// RollFromLast uses the roll of the most recently inserted record plus one.
	// This can hand out a roll that is already taken when records were
	// deleted or inserted out of numeric order.
	RollFromLast RollMode = iota
	// RollFromMax uses the highest roll present plus one.
	RollFromMax
)

// ParseRollMode maps the configuration value onto a RollMode
func ParseRollMode(s string) (RollMode, error) {
	switch s {
	case "", "last":
		return RollFromLast, nil
	case "max":
		return RollFromMax, nil
	default:
		return RollFromLast, fmt.Errorf("unknown roll mode %q (want \"last\" or \"max\")", s)
	}
}

func (m RollMode) String() string {
	if m == RollFromMax {
		return "max"
	}
	return "last"
}

// Directory is the ordered roster of students. Roll numbers are not forced
// to be unique; every keyed operation acts on the first match in insertion
// order.
type Directory struct {
	students []models.Student
	rollMode RollMode
}

func NewDirectory(mode RollMode) *Directory {
	return &Directory{rollMode: mode}
}

// Insert appends a student after checking the required fields
func (d *Directory) Insert(s models.Student) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	d.students = append(d.students, s)
	return nil
}

// Update overwrites every field except the roll of the first record with
// the given roll.
func (d *Directory) Update(s models.Student) error {
	i := d.indexOf(s.Roll)
	if i < 0 {
		return fmt.Errorf("student with roll %d: %w", s.Roll, ErrNotFound)
	}
	d.students[i].Name = s.Name
	d.students[i].Department = s.Department
	d.students[i].Semester = s.Semester
	d.students[i].CGPA = s.CGPA
	d.students[i].Grade = s.Grade
	return nil
}

func (d *Directory) Delete(roll int) error {
	i := d.indexOf(roll)
	if i < 0 {
		return fmt.Errorf("student with roll %d: %w", roll, ErrNotFound)
	}
	d.students = append(d.students[:i], d.students[i+1:]...)
	return nil
}

func (d *Directory) FindByRoll(roll int) (models.Student, error) {
	i := d.indexOf(roll)
	if i < 0 {
		return models.Student{}, fmt.Errorf("student with roll %d: %w", roll, ErrNotFound)
	}
	return d.students[i], nil
}

// FindOrCreateByName returns the roll of the first student whose name
// matches exactly. When nobody matches, a placeholder record is appended
// and created is true.
func (d *Directory) FindOrCreateByName(name string) (roll int, created bool) {
	for _, s := range d.students {
		if s.Name == name {
			return s.Roll, false
		}
	}
	roll = d.nextRoll()
	d.students = append(d.students, models.NewNamedStudent(roll, name))
	return roll, true
}

// All returns a copy of the roster in insertion order
func (d *Directory) All() []models.Student {
	out := make([]models.Student, len(d.students))
	copy(out, d.students)
	return out
}

func (d *Directory) Len() int {
	return len(d.students)
}

func (d *Directory) indexOf(roll int) int {
	for i := range d.students {
		if d.students[i].Roll == roll {
			return i
		}
	}
	return -1
}

func (d *Directory) nextRoll() int {
	if len(d.students) == 0 {
		return 1
	}
	if d.rollMode == RollFromMax {
		highest := d.students[0].Roll
		for _, s := range d.students[1:] {
			if s.Roll > highest {
				highest = s.Roll
			}
		}
		return highest + 1
	}
	return d.students[len(d.students)-1].Roll + 1
}
