package services

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/margdarshak/career-advisor/models"
)

// Catalog is the read-only reference data surface. *repository.GORMRepository
// satisfies it.
type Catalog interface {
	ListColleges(ctx context.Context, location, collegeType string) ([]models.College, error)
	ListCourses(ctx context.Context, stream string) ([]models.Course, error)
}

type CatalogEndpoints struct {
	catalog Catalog
}

func NewCatalogEndpoints(catalog Catalog) *CatalogEndpoints {
	return &CatalogEndpoints{
		catalog: catalog,
	}
}

func (e *CatalogEndpoints) RegisterRoutes(r chi.Router) {
	r.Get("/colleges", e.GetCollegesHandler)
	r.Get("/courses", e.GetCoursesHandler)
}

// GetCollegesHandler filters colleges by optional location substring
// (case-insensitive) and exact type. No match yields an empty array.
func (e *CatalogEndpoints) GetCollegesHandler(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	collegeType := r.URL.Query().Get("type")

	colleges, err := e.catalog.ListColleges(r.Context(), location, collegeType)
	if err != nil {
		slog.Error("Failed to list colleges", "error", err, "location", location, "type", collegeType)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, colleges)

	slog.Info("Colleges listed", "count", len(colleges), "location", location, "type", collegeType)
}

// GetCoursesHandler filters courses by optional exact stream match.
func (e *CatalogEndpoints) GetCoursesHandler(w http.ResponseWriter, r *http.Request) {
	stream := r.URL.Query().Get("stream")

	courses, err := e.catalog.ListCourses(r.Context(), stream)
	if err != nil {
		slog.Error("Failed to list courses", "error", err, "stream", stream)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, courses)

	slog.Info("Courses listed", "count", len(courses), "stream", stream)
}
