package transcript

import (
	"errors"
	"testing"
)

// A full cleaned line stream for a two-semester gradesheet, as the extractor
// would emit it.
func sampleLines() []string {
	return []string{
		"Name", "header", "Jane Student",
		"Student ID", "header", "20101234",
		"SEMESTER:", "SPRING 2023",
		"CSE110", "3", "A", "4.00",
		"MAT110", "3", "B+", "3.30",
		"CGPA", "3.65",
		"SEMESTER:", "FALL 2023",
		"CSE111", "3", "A-", "3.70",
		"CSE400", "B", "3.00",
		"CGPA", "3.55",
	}
}

func TestAssembleFullDocument(t *testing.T) {
	res, err := assemble(scanLines(sampleLines()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StudentName != "Jane Student" || res.StudentID != "20101234" {
		t.Fatalf("student info = %q / %q", res.StudentName, res.StudentID)
	}
	if len(res.Courses) != 4 {
		t.Fatalf("expected 4 courses, got %d", len(res.Courses))
	}
	if len(res.Semesters) != 2 {
		t.Fatalf("expected 2 semesters, got %d", len(res.Semesters))
	}
	// Names are filled from the catalog.
	if got := res.Courses["CSE110"].Name; got != "Programming Language I" {
		t.Fatalf("course name = %q", got)
	}
	// Capstone credit override carried through.
	if got := res.Courses["CSE400"].Credit; got != 4 {
		t.Fatalf("capstone credit = %v, want 4", got)
	}
	if fig, ok := res.Reported["SPRING 2023"]; !ok || fig.ReportedCGPA != 3.65 {
		t.Fatalf("reported figures = %+v", res.Reported)
	}
	// The record recomputes; reported figures are not authoritative.
	rec := res.Record()
	if rec == nil {
		t.Fatal("nil record")
	}
	want := (4.0*3 + 3.3*3 + 3.7*3 + 3.0*4) / 13.0
	if got := rec.CGPA(); got < want-0.005 || got > want+0.005 {
		t.Fatalf("cgpa = %v, want ~%v", got, want)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	a, err := assemble(scanLines(sampleLines()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := assemble(scanLines(sampleLines()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Record().CGPA() != b.Record().CGPA() {
		t.Fatalf("cgpa differs: %v vs %v", a.Record().CGPA(), b.Record().CGPA())
	}
	if len(a.Courses) != len(b.Courses) {
		t.Fatalf("course sets differ")
	}
	for code, ca := range a.Courses {
		cb, ok := b.Courses[code]
		if !ok || ca.Grade != cb.Grade || ca.GPA != cb.GPA || ca.Credit != cb.Credit {
			t.Fatalf("course %s differs: %+v vs %+v", code, ca, cb)
		}
	}
}

func TestAssembleMissingStudentInfo(t *testing.T) {
	lines := []string{
		"SEMESTER:", "SPRING 2024",
		"CSE220", "3", "B+", "3.30",
		"CGPA", "3.30",
	}
	_, err := assemble(scanLines(lines))
	var ee *ExtractError
	if !errors.As(err, &ee) {
		t.Fatalf("expected ExtractError, got %v", err)
	}
	if ee.Reason != ReasonMissingStudent {
		t.Fatalf("reason = %q, want %q", ee.Reason, ReasonMissingStudent)
	}
}

func TestAssembleNoCourses(t *testing.T) {
	lines := []string{
		"Name", "header", "Jane Student",
		"Student ID", "header", "20101234",
		"SEMESTER:", "SPRING 2024",
		"CSE111", "F",
		"CGPA",
	}
	_, err := assemble(scanLines(lines))
	var ee *ExtractError
	if !errors.As(err, &ee) {
		t.Fatalf("expected ExtractError, got %v", err)
	}
	if ee.Reason != ReasonNoCourses {
		t.Fatalf("reason = %q, want %q", ee.Reason, ReasonNoCourses)
	}
}

func TestAssembleDuplicateCodeLastWriteWins(t *testing.T) {
	lines := []string{
		"Name", "header", "Jane Student",
		"Student ID", "header", "20101234",
		"SEMESTER:", "SPRING 2023",
		"CSE110", "3", "C", "2.00",
		"CGPA", "2.00",
		"SEMESTER:", "FALL 2023",
		"CSE110", "3", "A", "4.00",
		"CGPA", "4.00",
	}
	res, err := assemble(scanLines(lines))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(res.Courses))
	}
	if got := res.Courses["CSE110"].GPA; got != 4.0 {
		t.Fatalf("gpa = %v, want the later write 4.0", got)
	}
	// Single-semester membership: the retake leaves SPRING 2023.
	if n := len(res.Semesters["SPRING 2023"].Courses); n != 0 {
		t.Fatalf("former semester still holds %d courses", n)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("not a pdf at all"))
	if err == nil {
		t.Fatal("expected a document-level error")
	}
	var ee *ExtractError
	if errors.As(err, &ee) {
		t.Fatal("garbage input must be a document failure, not an extraction failure")
	}
}
