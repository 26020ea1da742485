package models

// Performance bands derived from CGPA
const (
	StatusExcellent = "Excellent"
	StatusVeryGood  = "Very Good"
	StatusGood      = "Good"
	StatusAverage   = "Average"
	StatusNeedsHelp = "Needs Help"
)

// Classify maps a CGPA onto its performance band. Bands are checked from
// the highest threshold down and the first match wins.
func Classify(cgpa float64) string {
	switch {
	case cgpa >= 8.0:
		return StatusExcellent
	case cgpa >= 7.0:
		return StatusVeryGood
	case cgpa >= 6.0:
		return StatusGood
	case cgpa >= 5.0:
		return StatusAverage
	default:
		return StatusNeedsHelp
	}
}
