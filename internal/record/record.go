// Package record holds the in-memory academic record: courses grouped into
// semesters plus a flat course index, with credit-weighted GPA/CGPA kept
// up to date on every mutation.
package record

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// VirtualSemester is the bucket for hypothetical planning courses. It sorts
// after every real semester.
const VirtualSemester = "VIRTUAL SEMESTER"

// Course is one completed or planned academic unit. Grade and GPA are stored
// independently; callers may record a GPA the grade table would not produce
// (e.g. an institution-reported figure) and the record does not reject it.
type Course struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Credit float64 `json:"credit"`
	Grade  string  `json:"grade,omitempty"`
	GPA    float64 `json:"gpa"`
}

// QualityPoints is the course's grade-point value weighted by credit.
func (c *Course) QualityPoints() float64 { return c.GPA * c.Credit }

// UpdateGrade overwrites the grade and GPA in place.
func (c *Course) UpdateGrade(grade string, gpa float64) {
	c.Grade = grade
	c.GPA = gpa
}

// Semester is an ordered bucket of courses sharing one semester label.
// Credits and GPA are derived from the members; CGPA is the running
// cumulative average set by the owning record.
type Semester struct {
	Name    string    `json:"name"`
	Courses []*Course `json:"courses"`
	Credits float64   `json:"credits"`
	GPA     float64   `json:"gpa"`
	CGPA    float64   `json:"cgpa"`
}

func (s *Semester) add(c *Course) {
	s.Courses = append(s.Courses, c)
	s.recalc()
}

func (s *Semester) remove(code string) {
	kept := s.Courses[:0]
	for _, c := range s.Courses {
		if c.Code != code {
			kept = append(kept, c)
		}
	}
	s.Courses = kept
	s.recalc()
}

func (s *Semester) recalc() {
	var qp, cr float64
	for _, c := range s.Courses {
		qp += c.QualityPoints()
		cr += c.Credit
	}
	s.Credits = cr
	if cr > 0 {
		s.GPA = round2(qp / cr)
	} else {
		s.GPA = 0
	}
}

// CourseCodes lists the member course codes in insertion order.
func (s *Semester) CourseCodes() []string {
	out := make([]string, 0, len(s.Courses))
	for _, c := range s.Courses {
		out = append(out, c.Code)
	}
	return out
}

// AcademicRecord is the aggregate root. The flat CoursesTaken index and the
// per-semester lists always agree: a course code lives in exactly one
// semester, and re-adding it under a new semester moves it there.
type AcademicRecord struct {
	mu sync.RWMutex

	StudentName  string
	StudentID    string
	Semesters    map[string]*Semester
	CoursesTaken map[string]*Course

	semesterOf map[string]string // course code -> owning semester name
}

// New returns an empty record.
func New(studentName, studentID string) *AcademicRecord {
	return &AcademicRecord{
		StudentName:  studentName,
		StudentID:    studentID,
		Semesters:    map[string]*Semester{},
		CoursesTaken: map[string]*Course{},
		semesterOf:   map[string]string{},
	}
}

// AddCourse puts a course into the named semester, creating the semester on
// first reference. A code already on the record is replaced (last write
// wins) and removed from its former semester.
func (r *AcademicRecord) AddCourse(semesterName string, c *Course) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.semesterOf[c.Code]; ok {
		if s := r.Semesters[prev]; s != nil {
			s.remove(c.Code)
		}
	}
	s, ok := r.Semesters[semesterName]
	if !ok {
		s = &Semester{Name: semesterName}
		r.Semesters[semesterName] = s
	}
	s.add(c)
	r.CoursesTaken[c.Code] = c
	r.semesterOf[c.Code] = semesterName
	r.recompute()
}

// RemoveCourse deletes a course from the flat index and from its semester.
// Unknown codes are a no-op.
func (r *AcademicRecord) RemoveCourse(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.CoursesTaken[code]; !ok {
		return
	}
	delete(r.CoursesTaken, code)
	if name, ok := r.semesterOf[code]; ok {
		if s := r.Semesters[name]; s != nil {
			s.remove(code)
		}
		delete(r.semesterOf, code)
	}
	r.recompute()
}

// UpdateGrade rewrites the grade and GPA of an existing course in place,
// preserving its identity in both indexes. Returns false for unknown codes.
func (r *AcademicRecord) UpdateGrade(code, grade string, gpa float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.CoursesTaken[code]
	if !ok {
		return false
	}
	c.UpdateGrade(grade, gpa)
	if name, ok := r.semesterOf[code]; ok {
		if s := r.Semesters[name]; s != nil {
			s.recalc()
		}
	}
	r.recompute()
	return true
}

// SetStudent overwrites the student name and ID.
func (r *AcademicRecord) SetStudent(name, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.StudentName = name
	r.StudentID = id
}

// Student returns the student name and ID.
func (r *AcademicRecord) Student() (name, id string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.StudentName, r.StudentID
}

// Course returns the indexed course for a code, or nil.
func (r *AcademicRecord) Course(code string) *Course {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.CoursesTaken[code]
}

// CGPA is the credit-weighted average over the whole flat index, rounded to
// two decimals, 0.0 for an empty record.
func (r *AcademicRecord) CGPA() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cgpaLocked()
}

func (r *AcademicRecord) cgpaLocked() float64 {
	var qp, cr float64
	for _, c := range r.CoursesTaken {
		qp += c.QualityPoints()
		cr += c.Credit
	}
	if cr == 0 {
		return 0
	}
	return round2(qp / cr)
}

// TotalCredits sums the credit weights over the flat index.
func (r *AcademicRecord) TotalCredits() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var cr float64
	for _, c := range r.CoursesTaken {
		cr += c.Credit
	}
	return cr
}

// TotalQualityPoints sums gpa*credit over the flat index.
func (r *AcademicRecord) TotalQualityPoints() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var qp float64
	for _, c := range r.CoursesTaken {
		qp += c.QualityPoints()
	}
	return qp
}

// CourseCodes lists every code on the record, sorted.
func (r *AcademicRecord) CourseCodes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.CoursesTaken))
	for code := range r.CoursesTaken {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// SortedSemesters returns the semesters in chronological order: year
// ascending, then season SPRING < SUMMER < FALL. Labels that do not parse as
// "<SEASON> <YEAR>" (the virtual bucket included) sort last.
func (r *AcademicRecord) SortedSemesters() []*Semester {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Semester, 0, len(r.Semesters))
	for _, s := range r.Semesters {
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		yi, si := semesterKey(out[i].Name)
		yj, sj := semesterKey(out[j].Name)
		if yi != yj {
			return yi < yj
		}
		if si != sj {
			return si < sj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// recompute refreshes each semester's running CGPA in chronological order.
// O(total courses); fine at transcript scale. Callers hold the lock.
func (r *AcademicRecord) recompute() {
	names := make([]string, 0, len(r.Semesters))
	for n := range r.Semesters {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		yi, si := semesterKey(names[i])
		yj, sj := semesterKey(names[j])
		if yi != yj {
			return yi < yj
		}
		if si != sj {
			return si < sj
		}
		return names[i] < names[j]
	})

	var qp, cr float64
	for _, n := range names {
		s := r.Semesters[n]
		for _, c := range s.Courses {
			qp += c.QualityPoints()
			cr += c.Credit
		}
		if cr > 0 {
			s.CGPA = round2(qp / cr)
		} else {
			s.CGPA = 0
		}
	}
}

var seasonRank = map[string]int{"SPRING": 1, "SUMMER": 2, "FALL": 3}

// semesterKey parses "<SEASON> <YEAR>"; anything else sorts last.
func semesterKey(name string) (year, season int) {
	parts := strings.Fields(name)
	if len(parts) != 2 {
		return math.MaxInt32, math.MaxInt32
	}
	rank, ok := seasonRank[strings.ToUpper(parts[0])]
	if !ok {
		return math.MaxInt32, math.MaxInt32
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return math.MaxInt32, math.MaxInt32
	}
	return y, rank
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
