package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobscout/jobscout-backend/internal/apperrors"
	"github.com/jobscout/jobscout-backend/internal/dtos"
	"github.com/jobscout/jobscout-backend/internal/services"
)

// JobHandler exposes the job endpoints.
type JobHandler struct {
	JobService *services.JobService
}

// NewJobHandler creates the handler with dependencies.
func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{JobService: jobService}
}

// HealthCheck is the GET /health endpoint.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SearchJobs is the GET /search endpoint: it triggers a fresh fetch and
// returns the fetched batch.
func (h *JobHandler) SearchJobs(c *gin.Context) {
	var filters dtos.SearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	jobs, err := h.JobService.Search(c.Request.Context(), filters)
	if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one search parameter is required"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// ListJobs is the GET /jobs endpoint: one page of the persisted collection.
// Malformed page or limit silently fall back to 1 and 10.
func (h *JobHandler) ListJobs(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 10
	}

	jobs, err := h.JobService.ListJobs(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// GetJob is the GET /jobs/:id endpoint.
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric id can never match a stored record.
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	job, err := h.JobService.GetJob(c.Request.Context(), uint(id))
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, job)
}
