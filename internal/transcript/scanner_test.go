package transcript

import "testing"

func scanOne(t *testing.T, lines []string) scanResult {
	t.Helper()
	return scanLines(lines)
}

func TestScanSingleCourseSemester(t *testing.T) {
	res := scanOne(t, []string{
		"SEMESTER:", "SPRING 2024",
		"CSE220", "3", "B+", "3.30",
		"CGPA", "3.30",
	})

	if len(res.semesters) != 1 {
		t.Fatalf("expected 1 semester, got %d", len(res.semesters))
	}
	blk := res.semesters[0]
	if blk.name != "SPRING 2024" {
		t.Fatalf("semester name = %q", blk.name)
	}
	if len(blk.courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(blk.courses))
	}
	c := blk.courses[0]
	if c.code != "CSE220" || c.grade != "B+" || c.gpa != 3.30 || c.credit != 3 {
		t.Fatalf("wrong course row: %+v", c)
	}
	if blk.reportedCGPA != 3.30 {
		t.Fatalf("reported cgpa = %v, want 3.30", blk.reportedCGPA)
	}
}

func TestScanDiscardsFailedCourse(t *testing.T) {
	res := scanOne(t, []string{
		"SEMESTER:", "FALL 2023",
		"CSE111", "F",
		"CGPA",
	})
	if len(res.semesters[0].courses) != 0 {
		t.Fatalf("failing course must be discarded, got %+v", res.semesters[0].courses)
	}
}

func TestScanDiscardsWithdrawnAndIncomplete(t *testing.T) {
	res := scanOne(t, []string{
		"SEMESTER:", "FALL 2023",
		"CSE111", "W",
		"CSE220", "I",
		"CSE221", "3", "A", "4.00",
		"CGPA",
	})
	blk := res.semesters[0]
	if len(blk.courses) != 1 || blk.courses[0].code != "CSE221" {
		t.Fatalf("only CSE221 should survive, got %+v", blk.courses)
	}
}

func TestScanNoTransferDiscard(t *testing.T) {
	// (NT) fires before the valid grade is ever reached.
	res := scanOne(t, []string{
		"SEMESTER:", "SUMMER 2022",
		"CSE320", "(NT)", "A", "4.00",
		"CGPA",
	})
	if len(res.semesters[0].courses) != 0 {
		t.Fatalf("no-transfer course must be discarded, got %+v", res.semesters[0].courses)
	}
}

func TestScanRepeatAnnotationStripped(t *testing.T) {
	res := scanOne(t, []string{
		"SEMESTER:", "SPRING 2023",
		"CSE110", "3", "B+ (RP)", "3.30",
		"CGPA",
	})
	blk := res.semesters[0]
	if len(blk.courses) != 1 {
		t.Fatalf("retake must still be recorded, got %+v", blk.courses)
	}
	if blk.courses[0].grade != "B+" {
		t.Fatalf("grade = %q, want B+ after annotation strip", blk.courses[0].grade)
	}
}

func TestScanRetakeMarkStripped(t *testing.T) {
	res := scanOne(t, []string{
		"SEMESTER:", "SPRING 2023",
		"MAT110", "3", "A- (RT)", "3.70",
		"CGPA",
	})
	if got := res.semesters[0].courses[0].grade; got != "A-" {
		t.Fatalf("grade = %q, want A-", got)
	}
}

func TestScanAbandonsCandidateWithoutGrade(t *testing.T) {
	lines := []string{"SEMESTER:", "SPRING 2024", "CSE999"}
	for i := 0; i < lookaheadWindow+2; i++ {
		lines = append(lines, "noise")
	}
	lines = append(lines, "CGPA")
	res := scanOne(t, lines)
	if len(res.semesters[0].courses) != 0 {
		t.Fatalf("candidate without grade must be abandoned, got %+v", res.semesters[0].courses)
	}
}

func TestScanCreditFallbacks(t *testing.T) {
	// No numeric cell before the grade: default credit, capstone override.
	res := scanOne(t, []string{
		"SEMESTER:", "FALL 2024",
		"CSE370", "B", "3.00",
		"CSE400", "A", "4.00",
		"CGPA",
	})
	blk := res.semesters[0]
	if len(blk.courses) != 2 {
		t.Fatalf("expected 2 courses, got %+v", blk.courses)
	}
	if blk.courses[0].credit != 3 {
		t.Fatalf("CSE370 credit = %v, want default 3", blk.courses[0].credit)
	}
	if blk.courses[1].credit != 4 {
		t.Fatalf("capstone credit = %v, want override 4", blk.courses[1].credit)
	}
}

func TestScanGradePointDerivedFromTable(t *testing.T) {
	// Nothing GPA-shaped after the grade cell.
	res := scanOne(t, []string{
		"SEMESTER:", "FALL 2024",
		"CSE230", "3", "B-",
		"CGPA",
	})
	if got := res.semesters[0].courses[0].gpa; got != 2.7 {
		t.Fatalf("gpa = %v, want 2.7 from the grade table", got)
	}
}

func TestScanStudentInfoFirstOccurrenceWins(t *testing.T) {
	res := scanOne(t, []string{
		"Name", "header", "Jane Student",
		"Student ID", "header", "20101234",
		"Name", "header", "Someone Else",
	})
	if res.name != "Jane Student" {
		t.Fatalf("name = %q", res.name)
	}
	if res.studentID != "20101234" {
		t.Fatalf("student id = %q", res.studentID)
	}
}

func TestScanMultipleSemesters(t *testing.T) {
	res := scanOne(t, []string{
		"SEMESTER:", "SPRING 2023",
		"CSE110", "3", "A", "4.00",
		"CGPA", "4.00",
		"SEMESTER:", "FALL 2023",
		"CSE111", "3", "B", "3.00",
		"3.00",
		"CGPA", "3.50",
	})
	if len(res.semesters) != 2 {
		t.Fatalf("expected 2 semesters, got %d", len(res.semesters))
	}
	if res.semesters[1].reportedGPA != 3.00 {
		t.Fatalf("reported semester gpa = %v, want 3.00", res.semesters[1].reportedGPA)
	}
	if res.semesters[1].reportedCGPA != 3.50 {
		t.Fatalf("reported cgpa = %v, want 3.50", res.semesters[1].reportedCGPA)
	}
}

func TestScanNeverPanicsOnNoise(t *testing.T) {
	res := scanOne(t, []string{
		"SEMESTER:",
	})
	if len(res.semesters) != 0 {
		t.Fatalf("truncated marker should open no block, got %d", len(res.semesters))
	}

	scanOne(t, []string{"Name"})
	scanOne(t, []string{"Student ID", "x"})
	scanOne(t, []string{"SEMESTER:", "SPRING 2024", "CSE220"})
}

func TestIsGPAValue(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"3.50", true},
		{"0.0", true},
		{"4.00", true},
		{"4.01", false},
		{"3", false}, // bare integer: credit, not a grade point
		{"-1.0", false},
		{"abc", false},
	}
	for _, c := range cases {
		if got := isGPAValue(c.in); got != c.want {
			t.Errorf("isGPAValue(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsCourseCandidate(t *testing.T) {
	for _, code := range []string{"CSE220", "XYZ123", "HUM103"} {
		if !isCourseCandidate(code) {
			t.Errorf("%q should be a candidate", code)
		}
	}
	for _, s := range []string{"CSE22", "cse220", "CSE2200", "Total", "3.50"} {
		if isCourseCandidate(s) {
			t.Errorf("%q should not be a candidate", s)
		}
	}
}
