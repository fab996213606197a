package http

import (
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/bracu-tools/gradesheet-analyzer/internal/session"
	"github.com/bracu-tools/gradesheet-analyzer/internal/transcript"
)

// parseFailure maps a transcript parse error to a response status and body.
// Semantic extraction failures carry their reason code; anything else is an
// unreadable document.
func parseFailure(err error) (int, map[string]string) {
	var ee *transcript.ExtractError
	if errors.As(err, &ee) {
		return http.StatusUnprocessableEntity, map[string]string{
			"error":  "extraction failed",
			"reason": string(ee.Reason),
		}
	}
	return http.StatusBadRequest, map[string]string{
		"error": "unreadable document: " + err.Error(),
	}
}

// POST /gradesheet (multipart: file=gradesheet.pdf)
func UploadGradesheetHandler(store *session.Store, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		f, hdr, err := r.FormFile("file")
		if err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				respondError(w, http.StatusRequestEntityTooLarge, "file too large")
				return
			}
			respondError(w, 400, "file required")
			return
		}
		defer f.Close()

		// spool to temp so oversized bodies never sit in memory
		tmp, err := os.CreateTemp("", "gradesheet-*.pdf")
		if err != nil {
			respondError(w, 500, err.Error())
			return
		}
		defer os.Remove(tmp.Name())
		defer tmp.Close()
		if _, err := io.Copy(tmp, f); err != nil {
			respondError(w, 500, err.Error())
			return
		}
		data, err := os.ReadFile(tmp.Name())
		if err != nil {
			respondError(w, 500, err.Error())
			return
		}

		res, err := transcript.Parse(data)
		if err != nil {
			status, body := parseFailure(err)
			respondJSON(w, status, body)
			return
		}

		rec := res.Record()
		if err := store.Replace(session.FromContext(r.Context()), rec); err != nil {
			respondError(w, 401, "session expired")
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"filename":     hdr.Filename,
			"student_name": res.StudentName,
			"student_id":   res.StudentID,
			"courses":      len(res.Courses),
			"semesters":    len(res.Semesters),
			"cgpa":         rec.CGPA(),
		})
	}
}
