package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bracu-tools/gradesheet-analyzer/internal/catalog"
	"github.com/bracu-tools/gradesheet-analyzer/internal/grades"
	"github.com/bracu-tools/gradesheet-analyzer/internal/record"
	"github.com/bracu-tools/gradesheet-analyzer/internal/session"
)

var validate = validator.New()

var (
	errGradeRequired = errors.New("grade or gpa required")
	errUnknownGrade  = errors.New("unknown grade")
)

// GET /record
func GetRecordHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := sessionRecord(store, r)
		if err != nil {
			respondError(w, 401, "session expired")
			return
		}
		name, id := rec.Student()
		respondJSON(w, http.StatusOK, map[string]any{
			"student_name":  name,
			"student_id":    id,
			"semesters":     rec.SortedSemesters(),
			"cgpa":          rec.CGPA(),
			"total_credits": rec.TotalCredits(),
		})
	}
}

// PUT /record/student
func UpdateStudentHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := sessionRecord(store, r)
		if err != nil {
			respondError(w, 401, "session expired")
			return
		}
		var req struct {
			Name string `json:"name" validate:"required"`
			ID   string `json:"id" validate:"required"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, 400, "bad json")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondError(w, 400, err.Error())
			return
		}
		rec.SetStudent(req.Name, req.ID)
		respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

// DELETE /record
func ResetRecordHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid := session.FromContext(r.Context())
		if err := store.Replace(sid, record.New("", "")); err != nil {
			respondError(w, 401, "session expired")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
	}
}

type addCourseRequest struct {
	Code     string   `json:"code" validate:"required,min=3"`
	Name     string   `json:"name"`
	Semester string   `json:"semester"`
	Grade    string   `json:"grade"`
	GPA      *float64 `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	Credit   float64  `json:"credit" validate:"omitempty,gt=0,lte=6"`
}

// POST /record/courses
func AddCourseHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := sessionRecord(store, r)
		if err != nil {
			respondError(w, 401, "session expired")
			return
		}
		var req addCourseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, 400, "bad json")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondError(w, 400, err.Error())
			return
		}
		code := strings.ToUpper(strings.TrimSpace(req.Code))
		grade, gpa, err := resolveGrade(req.Grade, req.GPA)
		if err != nil {
			respondError(w, 400, err.Error())
			return
		}
		credit := req.Credit
		if credit == 0 {
			credit = catalog.CreditFor(code)
		}
		name := req.Name
		if name == "" {
			name = catalog.NameFor(code)
		}
		semester := req.Semester
		if semester == "" {
			semester = record.VirtualSemester
		}
		c := &record.Course{Code: code, Name: name, Credit: credit, Grade: grade, GPA: gpa}
		rec.AddCourse(semester, c)
		respondJSON(w, http.StatusCreated, map[string]any{
			"course": c,
			"cgpa":   rec.CGPA(),
		})
	}
}

// PUT /record/courses/{code}
func UpdateCourseHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := sessionRecord(store, r)
		if err != nil {
			respondError(w, 401, "session expired")
			return
		}
		code := strings.ToUpper(chi.URLParam(r, "code"))
		var req struct {
			Grade string   `json:"grade"`
			GPA   *float64 `json:"gpa" validate:"omitempty,gte=0,lte=4"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, 400, "bad json")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondError(w, 400, err.Error())
			return
		}
		grade, gpa, err := resolveGrade(req.Grade, req.GPA)
		if err != nil {
			respondError(w, 400, err.Error())
			return
		}
		if !rec.UpdateGrade(code, grade, gpa) {
			respondError(w, 404, "course not on record")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"course": rec.Course(code),
			"cgpa":   rec.CGPA(),
		})
	}
}

// DELETE /record/courses/{code}
func DeleteCourseHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := sessionRecord(store, r)
		if err != nil {
			respondError(w, 401, "session expired")
			return
		}
		code := strings.ToUpper(chi.URLParam(r, "code"))
		if rec.Course(code) == nil {
			respondError(w, 404, "course not on record")
			return
		}
		rec.RemoveCourse(code)
		respondJSON(w, http.StatusOK, map[string]any{
			"status": "removed",
			"cgpa":   rec.CGPA(),
		})
	}
}

// resolveGrade reconciles an optional letter grade with an optional explicit
// grade point: either may stand alone, the missing one is derived.
func resolveGrade(grade string, gpa *float64) (string, float64, error) {
	grade = strings.ToUpper(strings.TrimSpace(grade))
	switch {
	case grade == "" && gpa == nil:
		return "", 0, errGradeRequired
	case grade == "":
		return grades.LetterFor(*gpa), *gpa, nil
	case !grades.IsValid(grade):
		return "", 0, errUnknownGrade
	case gpa == nil:
		return grade, grades.PointFor(grade), nil
	default:
		return grade, *gpa, nil
	}
}
