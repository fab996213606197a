// Package planner computes CGPA projections, retake simulations and
// performance analytics over an academic record. Pure arithmetic, no state.
package planner

import (
	"fmt"
	"math"
	"sort"

	"github.com/bracu-tools/gradesheet-analyzer/internal/record"
)

const maxGradePoint = 4.0

// Projection describes how far the CGPA can still move given the remaining
// credits of the degree.
type Projection struct {
	CurrentCGPA      float64  `json:"current_cgpa"`
	CurrentCredits   float64  `json:"current_credits"`
	RemainingCredits float64  `json:"remaining_credits"`
	MaxPossibleCGPA  float64  `json:"max_possible_cgpa"`
	RequiredAvgGPA   *float64 `json:"required_avg_gpa,omitempty"`
	Message          string   `json:"message,omitempty"`
}

// Project computes the ceiling CGPA assuming perfect grades in all remaining
// credits and, when target is non-nil, the average GPA needed to hit it.
func Project(rec *record.AcademicRecord, target *float64, totalRequiredCredits float64) Projection {
	currentCredits := rec.TotalCredits()
	currentQP := rec.TotalQualityPoints()

	remaining := math.Max(totalRequiredCredits-currentCredits, 0)
	total := currentCredits + remaining

	maxCGPA := 0.0
	if total > 0 {
		maxCGPA = round2((currentQP + remaining*maxGradePoint) / total)
	}

	p := Projection{
		CurrentCGPA:      rec.CGPA(),
		CurrentCredits:   currentCredits,
		RemainingCredits: remaining,
		MaxPossibleCGPA:  maxCGPA,
	}
	if target == nil {
		return p
	}

	tgt := round2(*target)
	switch {
	case remaining <= 0:
		p.Message = "All credits completed. Cannot improve CGPA further."
	case maxCGPA < tgt:
		p.Message = fmt.Sprintf("Target CGPA of %.2f is not achievable. Max possible CGPA is %.2f.", tgt, maxCGPA)
	default:
		needed := tgt*total - currentQP
		req := round2(needed / remaining)
		p.RequiredAvgGPA = &req
		p.Message = fmt.Sprintf("To reach CGPA %.2f, you need to average %.2f GPA over the remaining %.0f credits.", tgt, req, remaining)
	}
	return p
}

// SemesterPlan sizes a multi-semester course plan against the degree's
// remaining credits.
type SemesterPlan struct {
	PlannedCourses int      `json:"planned_courses"`
	PlannedCredits float64  `json:"planned_credits"`
	MaxCGPA        float64  `json:"max_cgpa"`
	RequiredAvgGPA *float64 `json:"required_avg_gpa,omitempty"`
	Message        string   `json:"message,omitempty"`
}

// PlanSemesters projects over numSemesters of coursesPerSemester three-credit
// courses, capped by what the degree still allows.
func PlanSemesters(rec *record.AcademicRecord, target *float64, numSemesters, coursesPerSemester int, totalRequiredCredits float64) SemesterPlan {
	currentCredits := rec.TotalCredits()
	currentQP := rec.TotalQualityPoints()

	remaining := totalRequiredCredits - currentCredits
	planned := numSemesters * coursesPerSemester

	maxCourses := int(remaining+2) / 3
	if maxCourses < 0 {
		maxCourses = 0
	}
	if planned > maxCourses {
		planned = maxCourses
	}
	plannedCredits := math.Min(float64(planned)*3, math.Max(remaining, 0))

	total := currentCredits + plannedCredits
	maxCGPA := 0.0
	if total > 0 {
		maxCGPA = round2((currentQP + plannedCredits*maxGradePoint) / total)
	}

	sp := SemesterPlan{
		PlannedCourses: planned,
		PlannedCredits: plannedCredits,
		MaxCGPA:        maxCGPA,
	}

	if plannedCredits <= 0 {
		sp.Message = "No valid credits planned. Cannot calculate required GPA."
		return sp
	}
	if target == nil {
		return sp
	}

	tgt := round2(*target)
	needed := tgt*total - currentQP
	req := round2(needed / plannedCredits)
	sp.RequiredAvgGPA = &req
	switch {
	case maxCGPA < tgt:
		sp.Message = fmt.Sprintf("Target CGPA of %.2f is not achievable with current plan. Required GPA: %.2f.", tgt, req)
	default:
		sp.Message = fmt.Sprintf("To reach CGPA %.2f, you must average %.2f GPA in the next %d courses (%.0f credits).", tgt, req, planned, plannedCredits)
	}
	return sp
}

// RetakeSimulation is the projected effect of retaking courses with new
// grade points, without mutating the record.
type RetakeSimulation struct {
	SimulatedCGPA float64 `json:"simulated_cgpa"`
	Improvement   float64 `json:"improvement"`
	Message       string  `json:"message"`
}

// SimulateRetakes recomputes the CGPA as if the given courses carried the
// given grade points. Codes not on the record are ignored.
func SimulateRetakes(rec *record.AcademicRecord, retakes map[string]float64) RetakeSimulation {
	var qp, cr float64
	for _, code := range rec.CourseCodes() {
		c := rec.Course(code)
		if newGPA, ok := retakes[code]; ok {
			qp += newGPA * c.Credit
		} else {
			qp += c.QualityPoints()
		}
		cr += c.Credit
	}
	cgpa := 0.0
	if cr > 0 {
		cgpa = round2(qp / cr)
	}
	return RetakeSimulation{
		SimulatedCGPA: cgpa,
		Improvement:   round2(cgpa - rec.CGPA()),
		Message:       fmt.Sprintf("After retaking specified courses, your projected CGPA would be %.2f.", cgpa),
	}
}

// TrendPoint is one semester on the GPA/CGPA trend line.
type TrendPoint struct {
	Semester string  `json:"semester"`
	GPA      float64 `json:"gpa"`
	CGPA     float64 `json:"cgpa"`
	Credits  float64 `json:"credits"`
	Courses  int     `json:"courses"`
}

// Trends returns the per-semester series in chronological order, skipping
// semesters that hold no courses.
func Trends(rec *record.AcademicRecord) []TrendPoint {
	var out []TrendPoint
	for _, s := range rec.SortedSemesters() {
		if len(s.Courses) == 0 {
			continue
		}
		out = append(out, TrendPoint{
			Semester: s.Name,
			GPA:      s.GPA,
			CGPA:     s.CGPA,
			Credits:  s.Credits,
			Courses:  len(s.Courses),
		})
	}
	return out
}

// GradeDistribution counts recorded courses per letter grade.
func GradeDistribution(rec *record.AcademicRecord) map[string]int {
	out := map[string]int{}
	for _, code := range rec.CourseCodes() {
		if g := rec.Course(code).Grade; g != "" {
			out[g]++
		}
	}
	return out
}

// Stats summarizes the record for the dashboard.
type Stats struct {
	TotalCourses   int     `json:"total_courses"`
	TotalCredits   float64 `json:"total_credits"`
	CurrentCGPA    float64 `json:"current_cgpa"`
	HighestGPA     float64 `json:"highest_gpa"`
	LowestGPA      float64 `json:"lowest_gpa"`
	AverageGPA     float64 `json:"average_gpa"`
	CoursesAbove35 int     `json:"courses_above_3_5"`
	CoursesBelow20 int     `json:"courses_below_2_0"`
}

// Performance aggregates grade-point figures over the flat index. Courses
// with a zero GPA are left out of the high/low/average figures.
func Performance(rec *record.AcademicRecord) Stats {
	codes := rec.CourseCodes()
	st := Stats{
		TotalCourses: len(codes),
		TotalCredits: rec.TotalCredits(),
		CurrentCGPA:  rec.CGPA(),
	}
	var gpas []float64
	for _, code := range codes {
		if g := rec.Course(code).GPA; g > 0 {
			gpas = append(gpas, g)
		}
	}
	if len(gpas) == 0 {
		return st
	}
	sort.Float64s(gpas)
	st.LowestGPA = gpas[0]
	st.HighestGPA = gpas[len(gpas)-1]
	var sum float64
	for _, g := range gpas {
		sum += g
		if g >= 3.5 {
			st.CoursesAbove35++
		}
		if g < 2.0 {
			st.CoursesBelow20++
		}
	}
	st.AverageGPA = round2(sum / float64(len(gpas)))
	return st
}

// WhatIf is the projected CGPA delta from a hypothetical change.
type WhatIf struct {
	CourseCode    string  `json:"course_code,omitempty"`
	CurrentCGPA   float64 `json:"current_cgpa"`
	ProjectedCGPA float64 `json:"projected_cgpa"`
	Change        float64 `json:"cgpa_change"`
	Message       string  `json:"message"`
}

// WhatIfAddCourse projects the CGPA after adding one new course.
func WhatIfAddCourse(rec *record.AcademicRecord, code string, gpa, credit float64) WhatIf {
	current := rec.CGPA()
	qp := rec.TotalQualityPoints() + gpa*credit
	cr := rec.TotalCredits() + credit

	projected := 0.0
	if cr > 0 {
		projected = round2(qp / cr)
	}
	return WhatIf{
		CourseCode:    code,
		CurrentCGPA:   current,
		ProjectedCGPA: projected,
		Change:        round3(projected - current),
		Message:       fmt.Sprintf("Adding %s with GPA %.2f would change your CGPA from %.2f to %.2f", code, gpa, current, projected),
	}
}

// WhatIfImproveGrade projects the CGPA after replacing one course's grade
// point. Unknown codes are an error.
func WhatIfImproveGrade(rec *record.AcademicRecord, code string, newGPA float64) (WhatIf, error) {
	c := rec.Course(code)
	if c == nil {
		return WhatIf{}, fmt.Errorf("course %s not found in academic record", code)
	}
	current := rec.CGPA()
	credits := rec.TotalCredits()

	qp := rec.TotalQualityPoints() - c.GPA*c.Credit + newGPA*c.Credit
	projected := 0.0
	if credits > 0 {
		projected = round2(qp / credits)
	}
	return WhatIf{
		CourseCode:    code,
		CurrentCGPA:   current,
		ProjectedCGPA: projected,
		Change:        round3(projected - current),
		Message:       fmt.Sprintf("Improving %s from %.2f to %.2f would change your CGPA from %.2f to %.2f", code, c.GPA, newGPA, current, projected),
	}, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
