package http

import (
	"net/http"

	"github.com/bracu-tools/gradesheet-analyzer/internal/record"
	"github.com/bracu-tools/gradesheet-analyzer/internal/session"
)

// POST /session
func CreateSessionHandler(store *session.Store, tokens *session.TokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := store.Create()
		tok, err := tokens.Issue(sess.ID)
		if err != nil {
			respondError(w, 500, "token issue failed")
			return
		}
		respondJSON(w, http.StatusCreated, map[string]string{
			"session_id": sess.ID,
			"token":      tok,
		})
	}
}

// sessionRecord resolves the request's session to its academic record.
// Middleware has already verified the token, so a miss here means the
// session was swept.
func sessionRecord(store *session.Store, r *http.Request) (*record.AcademicRecord, error) {
	sess, err := store.Get(session.FromContext(r.Context()))
	if err != nil {
		return nil, err
	}
	return sess.Record, nil
}
