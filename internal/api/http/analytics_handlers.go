package http

import (
	"net/http"

	"github.com/bracu-tools/gradesheet-analyzer/internal/planner"
	"github.com/bracu-tools/gradesheet-analyzer/internal/session"
)

// GET /analytics/trends
func TrendsHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := sessionRecord(store, r)
		if err != nil {
			respondError(w, 401, "session expired")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"trends": planner.Trends(rec)})
	}
}

// GET /analytics/distribution
func DistributionHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := sessionRecord(store, r)
		if err != nil {
			respondError(w, 401, "session expired")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"distribution": planner.GradeDistribution(rec)})
	}
}

// GET /analytics/stats
func StatsHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := sessionRecord(store, r)
		if err != nil {
			respondError(w, 401, "session expired")
			return
		}
		respondJSON(w, http.StatusOK, planner.Performance(rec))
	}
}
