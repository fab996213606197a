// Package grades holds the institutional grading scale: the closed set of
// letter grades and their grade-point values.
package grades

// Valid lists every letter grade that can appear on a gradesheet, best first.
// Any string outside this list is not a grade.
var Valid = []string{
	"A+", "A", "A-",
	"B+", "B", "B-",
	"C+", "C", "C-",
	"D+", "D",
	"F", "W", "I",
}

// Points maps a letter grade to its grade-point value. F, W and I carry no
// quality points.
var Points = map[string]float64{
	"A+": 4.0, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0,
	"F": 0.0, "W": 0.0, "I": 0.0,
}

// IsValid reports whether g is a member of the grading scale.
func IsValid(g string) bool {
	_, ok := Points[g]
	return ok
}

// PointFor returns the grade-point value for a letter grade, 0.0 for
// anything outside the scale.
func PointFor(g string) float64 {
	return Points[g]
}

// LetterFor maps a grade-point value back to the letter a student would
// need to average for it. Used by the planner when presenting targets.
func LetterFor(gpa float64) string {
	switch {
	case gpa >= 4.0:
		return "A+"
	case gpa >= 3.7:
		return "A-"
	case gpa >= 3.3:
		return "B+"
	case gpa >= 3.0:
		return "B"
	case gpa >= 2.7:
		return "B-"
	case gpa >= 2.3:
		return "C+"
	case gpa >= 2.0:
		return "C"
	case gpa >= 1.7:
		return "C-"
	case gpa >= 1.3:
		return "D+"
	case gpa >= 1.0:
		return "D"
	default:
		return "F"
	}
}
