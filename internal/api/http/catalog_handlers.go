package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bracu-tools/gradesheet-analyzer/internal/catalog"
	"github.com/bracu-tools/gradesheet-analyzer/internal/session"
)

func programParam(r *http.Request) string {
	p := strings.ToUpper(r.URL.Query().Get("program"))
	if p == "" {
		p = "CSE"
	}
	return p
}

// GET /catalog/courses?program=CSE
func CatalogCoursesHandler() http.HandlerFunc {
	type entry struct {
		Code     string  `json:"code"`
		Name     string  `json:"name"`
		Credit   float64 `json:"credit"`
		Category string  `json:"category"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		program := programParam(r)
		codes := catalog.AllCodes()
		out := make([]entry, 0, len(codes))
		for _, code := range codes {
			out = append(out, entry{
				Code:     code,
				Name:     catalog.NameFor(code),
				Credit:   catalog.CreditFor(code),
				Category: catalog.Categorize(code, program),
			})
		}
		respondJSON(w, http.StatusOK, map[string]any{"program": program, "courses": out})
	}
}

// GET /catalog/requirements?program=CS
func RequirementsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, catalog.RequirementsFor(programParam(r)))
	}
}

// GET /catalog/unlocked (prerequisite closure over the session's record)
func UnlockedHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := sessionRecord(store, r)
		if err != nil {
			respondError(w, 401, "session expired")
			return
		}
		unlocked := catalog.Unlocked(rec.CourseCodes())
		respondJSON(w, http.StatusOK, map[string]any{"unlocked": unlocked})
	}
}

// GET /catalog/gened-plan?slots=4
func GenEdPlanHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := sessionRecord(store, r)
		if err != nil {
			respondError(w, 401, "session expired")
			return
		}
		slots := 4
		if v := r.URL.Query().Get("slots"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > 12 {
				respondError(w, 400, "slots must be 1-12")
				return
			}
			slots = n
		}
		respondJSON(w, http.StatusOK, catalog.PlanGenEd(rec.CourseCodes(), slots))
	}
}
