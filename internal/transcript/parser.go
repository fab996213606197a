// Package transcript parses machine-printed BRACU gradesheet PDFs into an
// academic record: a line extractor over the PDF text layer, a cursor
// segmenter that recovers (course, grade, grade-point, credit, semester)
// rows, and an assembler that builds the record from them.
package transcript

import (
	"fmt"

	"github.com/bracu-tools/gradesheet-analyzer/internal/catalog"
	"github.com/bracu-tools/gradesheet-analyzer/internal/record"
)

// FailReason classifies semantic extraction failures: the document was
// readable but did not match the gradesheet template.
type FailReason string

const (
	ReasonMissingStudent FailReason = "missing_student_info"
	ReasonNoCourses      FailReason = "no_courses"
)

// ExtractError reports a semantic extraction failure. Document-level
// failures (unreadable file, not a PDF) are returned as plain wrapped errors
// instead.
type ExtractError struct {
	Reason FailReason
}

func (e *ExtractError) Error() string {
	switch e.Reason {
	case ReasonMissingStudent:
		return "gradesheet did not yield a student name and ID"
	case ReasonNoCourses:
		return "gradesheet did not yield any courses"
	default:
		return "gradesheet extraction failed: " + string(e.Reason)
	}
}

// SemesterFigures are the GPA/CGPA values printed on the sheet for one
// semester. Informational: the assembled record recomputes both and wins on
// disagreement.
type SemesterFigures struct {
	ReportedGPA  float64 `json:"reported_gpa"`
	ReportedCGPA float64 `json:"reported_cgpa"`
}

// Result is a successful parse: student info, the flat course index, the
// semester buckets, and the sheet's own printed figures.
type Result struct {
	StudentName string
	StudentID   string
	Courses     map[string]*record.Course
	Semesters   map[string]*record.Semester
	Reported    map[string]SemesterFigures

	rec *record.AcademicRecord
}

// Record returns the assembled academic record behind the result.
func (r *Result) Record() *record.AcademicRecord { return r.rec }

// Parse reads one gradesheet PDF end to end. It returns a wrapped error for
// unreadable documents and *ExtractError when a readable document does not
// match the template (no student info, or zero courses).
func Parse(data []byte) (*Result, error) {
	lines, err := extractLines(data)
	if err != nil {
		return nil, fmt.Errorf("read gradesheet: %w", err)
	}
	return assemble(scanLines(lines))
}

// assemble is the record-assembler stage: semesters are created lazily on
// first course reference, duplicate codes are last-write-wins, and the
// record recomputes its aggregates on every add.
func assemble(scan scanResult) (*Result, error) {
	rec := record.New(scan.name, scan.studentID)
	reported := make(map[string]SemesterFigures, len(scan.semesters))

	for _, blk := range scan.semesters {
		for _, row := range blk.courses {
			rec.AddCourse(blk.name, &record.Course{
				Code:   row.code,
				Name:   catalog.NameFor(row.code),
				Credit: row.credit,
				Grade:  row.grade,
				GPA:    row.gpa,
			})
		}
		if len(blk.courses) > 0 {
			reported[blk.name] = SemesterFigures{
				ReportedGPA:  blk.reportedGPA,
				ReportedCGPA: blk.reportedCGPA,
			}
		}
	}

	if scan.name == "" || scan.studentID == "" {
		return nil, &ExtractError{Reason: ReasonMissingStudent}
	}
	if len(rec.CoursesTaken) == 0 {
		return nil, &ExtractError{Reason: ReasonNoCourses}
	}

	return &Result{
		StudentName: scan.name,
		StudentID:   scan.studentID,
		Courses:     rec.CoursesTaken,
		Semesters:   rec.Semesters,
		Reported:    reported,
		rec:         rec,
	}, nil
}
