package handler

import (
	"context"
	"errors"
	"net/http"

	"crime-dashboard/internal/loader"
	"crime-dashboard/internal/models"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the dashboard page and its JSON API.
type DashboardHandler struct {
	service DashboardService
	title   string
}

// Service interface for dependency injection
type DashboardService interface {
	Snapshot(ctx context.Context, params models.FilterParams) (*models.Snapshot, error)
	Options(ctx context.Context) (crimeTypes, cities []string, err error)
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(svc DashboardService, title string) *DashboardHandler {
	return &DashboardHandler{service: svc, title: title}
}

// Page handles GET / requests: the full dashboard rendered server-side.
// Changing any selector widget reloads the page with new query parameters,
// re-running the whole pipeline.
func (h *DashboardHandler) Page(c *gin.Context) {
	var params models.FilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.HTML(http.StatusBadRequest, "dashboard.tmpl", gin.H{
			"Title": h.title,
			"Error": "invalid filter parameters",
		})
		return
	}

	snapshot, err := h.service.Snapshot(c.Request.Context(), params)
	if err != nil {
		status, msg := statusFor(err)
		c.HTML(status, "dashboard.tmpl", gin.H{
			"Title": h.title,
			"Error": msg,
		})
		return
	}

	c.HTML(http.StatusOK, "dashboard.tmpl", gin.H{
		"Title":    h.title,
		"Snapshot": snapshot,
	})
}

// Incidents handles GET /api/incidents requests: the filtered snapshot as
// JSON, with coverage counters, map points, and table rows.
func (h *DashboardHandler) Incidents(c *gin.Context) {
	var params models.FilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters"})
		return
	}

	snapshot, err := h.service.Snapshot(c.Request.Context(), params)
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// Filters handles GET /api/filters requests: the distinct sorted selector
// values over the full dataset.
func (h *DashboardHandler) Filters(c *gin.Context) {
	crimeTypes, cities, err := h.service.Options(c.Request.Context())
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"crime_types": crimeTypes,
		"cities":      cities,
	})
}

// statusFor maps pipeline failures to HTTP responses. A missing geocode file
// and a bad geocode schema both surface their own message; anything else is
// hidden behind a generic error.
func statusFor(err error) (int, string) {
	var missingFile *loader.MissingFileError
	if errors.As(err, &missingFile) {
		return http.StatusServiceUnavailable, missingFile.Error()
	}

	var schema *loader.SchemaError
	if errors.As(err, &schema) {
		return http.StatusInternalServerError, schema.Error()
	}

	return http.StatusInternalServerError, "internal server error"
}
