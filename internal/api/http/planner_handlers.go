package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bracu-tools/gradesheet-analyzer/internal/catalog"
	"github.com/bracu-tools/gradesheet-analyzer/internal/planner"
	"github.com/bracu-tools/gradesheet-analyzer/internal/session"
)

// totalCredits falls back to the program's degree requirement when the body
// does not pin its own figure.
func totalCredits(explicit float64, program string) float64 {
	if explicit > 0 {
		return explicit
	}
	return float64(catalog.RequirementsFor(program).TotalCredits)
}

// POST /planner/projection
func ProjectionHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := sessionRecord(store, r)
		if err != nil {
			respondError(w, 401, "session expired")
			return
		}
		var req struct {
			TargetCGPA   *float64 `json:"target_cgpa" validate:"omitempty,gte=0,lte=4"`
			TotalCredits float64  `json:"total_required_credits" validate:"omitempty,gt=0"`
			Program      string   `json:"program"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, 400, "bad json")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondError(w, 400, err.Error())
			return
		}
		out := planner.Project(rec, req.TargetCGPA, totalCredits(req.TotalCredits, req.Program))
		respondJSON(w, http.StatusOK, out)
	}
}

// POST /planner/semesters
func PlanSemestersHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := sessionRecord(store, r)
		if err != nil {
			respondError(w, 401, "session expired")
			return
		}
		var req struct {
			NumSemesters       int      `json:"num_semesters" validate:"required,gte=1,lte=20"`
			CoursesPerSemester int      `json:"courses_per_semester" validate:"required,gte=1,lte=8"`
			TargetCGPA         *float64 `json:"target_cgpa" validate:"omitempty,gte=0,lte=4"`
			TotalCredits       float64  `json:"total_required_credits" validate:"omitempty,gt=0"`
			Program            string   `json:"program"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, 400, "bad json")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondError(w, 400, err.Error())
			return
		}
		out := planner.PlanSemesters(rec, req.TargetCGPA, req.NumSemesters,
			req.CoursesPerSemester, totalCredits(req.TotalCredits, req.Program))
		respondJSON(w, http.StatusOK, out)
	}
}

// POST /planner/retakes
func RetakesHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := sessionRecord(store, r)
		if err != nil {
			respondError(w, 401, "session expired")
			return
		}
		var req struct {
			Retakes map[string]float64 `json:"retakes" validate:"required,min=1,dive,gte=0,lte=4"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, 400, "bad json")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondError(w, 400, err.Error())
			return
		}
		retakes := make(map[string]float64, len(req.Retakes))
		for code, gpa := range req.Retakes {
			retakes[strings.ToUpper(code)] = gpa
		}
		respondJSON(w, http.StatusOK, planner.SimulateRetakes(rec, retakes))
	}
}

// POST /planner/whatif. A code already on the record simulates a grade
// improvement, a new code simulates adding the course.
func WhatIfHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := sessionRecord(store, r)
		if err != nil {
			respondError(w, 401, "session expired")
			return
		}
		var req struct {
			Code   string  `json:"code" validate:"required,min=3"`
			GPA    float64 `json:"gpa" validate:"gte=0,lte=4"`
			Credit float64 `json:"credit" validate:"omitempty,gt=0,lte=6"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, 400, "bad json")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondError(w, 400, err.Error())
			return
		}
		code := strings.ToUpper(strings.TrimSpace(req.Code))
		if rec.Course(code) != nil {
			out, err := planner.WhatIfImproveGrade(rec, code, req.GPA)
			if err != nil {
				respondError(w, 404, err.Error())
				return
			}
			respondJSON(w, http.StatusOK, out)
			return
		}
		credit := req.Credit
		if credit == 0 {
			credit = catalog.CreditFor(code)
		}
		respondJSON(w, http.StatusOK, planner.WhatIfAddCourse(rec, code, req.GPA, credit))
	}
}
