package models

import (
	"errors"
	"fmt"
)

// Student represents a roster entry
type Student struct {
	Roll       int     `json:"roll"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Semester   int     `json:"semester"`
	CGPA       float64 `json:"cgpa"`
	Grade      rune    `json:"grade"`
}

// Defaults used when a student is created from a name search
const (
	UnknownDepartment = "N/A"
	UnknownGrade      = '-'
)

// Validate checks the fields a roster entry cannot be stored without
func (s Student) Validate() error {
	if s.Roll <= 0 {
		return fmt.Errorf("roll must be positive, got %d", s.Roll)
	}
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Department == "" {
		return errors.New("department is required")
	}
	return nil
}

// NarrowCGPA rounds a CGPA to single precision, which is how marks are
// held on the roster. 7.9999999 becomes 8.
func NarrowCGPA(cgpa float64) float64 {
	return float64(float32(cgpa))
}

// NewNamedStudent builds the placeholder record added by a name search
func NewNamedStudent(roll int, name string) Student {
	return Student{
		Roll:       roll,
		Name:       name,
		Department: UnknownDepartment,
		Semester:   0,
		CGPA:       0.0,
		Grade:      UnknownGrade,
	}
}
