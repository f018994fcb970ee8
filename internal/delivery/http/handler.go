package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/techadvisor/backend/internal/domain"
	"github.com/techadvisor/backend/internal/infrastructure/monitoring"
	"github.com/techadvisor/backend/internal/usecase"
)

// defaultSearchLimit caps how many candidates a search request returns
// when the caller does not ask for a specific count.
const defaultSearchLimit = 12

// Handler holds dependencies for HTTP handlers
type Handler struct {
	candidates *usecase.CandidateService
}

// NewHandler creates a new HTTP handler
func NewHandler(candidates *usecase.CandidateService) *Handler {
	return &Handler{candidates: candidates}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "techadvisor-backend",
		"version": "1.0.0",
	})
}

// searchRequest is the body of POST /api/v1/candidates/search.
type searchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

// SearchCandidates runs the full aggregation pipeline for a free-text
// product query and returns the ranked candidates.
func (h *Handler) SearchCandidates(c *gin.Context) {
	if h.candidates == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Candidate pipeline not configured",
		})
		return
	}

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "query is required",
		})
		return
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	start := time.Now()
	results, err := h.candidates.GatherCandidates(c.Request.Context(), req.Query, limit)
	monitoring.PipelineDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query is empty or invalid"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "candidate search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":      req.Query,
		"count":      len(results),
		"candidates": results,
	})
}

// RecommendProducts serves instant catalog-backed advice for a query,
// e.g. GET /api/v1/products/recommend?query=40.000+TL+hafif+laptop
func (h *Handler) RecommendProducts(c *gin.Context) {
	if h.candidates == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Recommendation engine not configured",
		})
		return
	}

	query := c.Query("query")
	results, err := h.candidates.Recommend(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recommendation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":           query,
		"count":           len(results),
		"recommendations": results,
	})
}
