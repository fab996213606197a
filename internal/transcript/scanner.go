package transcript

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/bracu-tools/gradesheet-analyzer/internal/catalog"
	"github.com/bracu-tools/gradesheet-analyzer/internal/grades"
)

// The segmenter walks the cleaned line stream with a single forward cursor.
// Structural markers open student-info captures and semester blocks; inside
// a block, course-code candidates get a bounded lookahead to find their
// grade, credit and grade-point cells. Malformed lines are skipped, never
// fatal.

const (
	lookaheadWindow = 10

	semesterMarker = "SEMESTER:"
	cgpaSentinel   = "CGPA"

	noTransferMark = "(NT)"
	repeatMark     = "(RP)"
	retakeMark     = "(RT)"
)

var courseCodeRx = regexp.MustCompile(`^[A-Z]{3}[0-9]{3}$`)

type courseRow struct {
	code   string
	grade  string
	gpa    float64
	credit float64
}

type semesterBlock struct {
	name         string
	courses      []courseRow
	reportedGPA  float64
	reportedCGPA float64
}

type scanResult struct {
	name      string
	studentID string
	semesters []*semesterBlock
}

// scanLines runs the full cursor walk over the cleaned line stream. The
// slice is mutated in place where repeat annotations get stripped.
func scanLines(lines []string) scanResult {
	var res scanResult

	i := 0
	for i < len(lines) {
		switch {
		case lines[i] == "Name" && res.name == "":
			// The label is followed by a second header line, then the value.
			i++
			if i < len(lines) && lines[i] != "" {
				i++
				if i < len(lines) {
					res.name = lines[i]
				}
			}
		case lines[i] == "Student ID" && res.studentID == "":
			i++
			if i < len(lines) && lines[i] != "" {
				i++
				if i < len(lines) {
					res.studentID = lines[i]
				}
			}
		case lines[i] == semesterMarker:
			i++
			if i < len(lines) {
				blk := &semesterBlock{name: lines[i]}
				res.semesters = append(res.semesters, blk)
				i = scanSemester(lines, i, blk)
			}
		}
		i++
	}
	return res
}

// scanSemester consumes course rows until the CGPA sentinel or end of input
// and returns the cursor position of the sentinel.
func scanSemester(lines []string, start int, blk *semesterBlock) int {
	i := start + 1
	for i < len(lines) && lines[i] != cgpaSentinel {
		if !isCourseCandidate(lines[i]) {
			i++
			continue
		}
		code := lines[i]

		// Look ahead for the grade cell.
		j := i + 1
		noTransfer := false
		for j < len(lines) && !grades.IsValid(lines[j]) {
			l := lines[j]
			if strings.Contains(l, noTransferMark) {
				noTransfer = true
				break
			}
			if strings.Contains(l, repeatMark) || strings.Contains(l, retakeMark) {
				// Retakes print the grade with an annotation suffix; keep the
				// leading token and re-check it.
				if f := strings.Fields(l); len(f) > 0 {
					lines[j] = f[0]
					if grades.IsValid(lines[j]) {
						break
					}
				}
			}
			j++
			if j-i > lookaheadWindow {
				break
			}
		}

		if noTransfer {
			// Transferred-but-not-counted credit: drop the course entirely.
			i = j + 1
			continue
		}
		if j >= len(lines) || !grades.IsValid(lines[j]) {
			// Course-code-shaped noise with no grade behind it.
			i++
			continue
		}

		grade := lines[j]
		if grade == "F" || grade == "I" || grade == "W" {
			i = j + 1
			continue
		}

		credit := catalog.CreditFor(code)
		if j > 0 && isNumber(lines[j-1]) {
			credit, _ = strconv.ParseFloat(lines[j-1], 64)
		}

		gpa := grades.PointFor(grade)
		if j+1 < len(lines) && isGPAValue(lines[j+1]) {
			gpa, _ = strconv.ParseFloat(lines[j+1], 64)
		}

		blk.courses = append(blk.courses, courseRow{
			code:   code,
			grade:  grade,
			gpa:    gpa,
			credit: credit,
		})
		i = j + 2 // past the grade-point cell
	}

	if i < len(lines) && lines[i] == cgpaSentinel {
		// The template prints the semester GPA shortly before the sentinel
		// and the cumulative figure right after. Informational only; the
		// record recomputes both.
		for k := i - 1; k > start; k-- {
			if isGPAValue(lines[k]) {
				blk.reportedGPA, _ = strconv.ParseFloat(lines[k], 64)
				break
			}
		}
		if i+1 < len(lines) && isGPAValue(lines[i+1]) {
			blk.reportedCGPA, _ = strconv.ParseFloat(lines[i+1], 64)
		}
	}
	return i
}

func isCourseCandidate(line string) bool {
	return catalog.Known(line) || courseCodeRx.MatchString(line)
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// isGPAValue distinguishes grade-point cells like "3.50" from bare credit
// counts: in range and carrying a decimal point.
func isGPAValue(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v >= 0.0 && v <= 4.0 && strings.Contains(s, ".")
}
