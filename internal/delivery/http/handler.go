package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopsearch/backend/internal/domain"
)

// ProductSearchService is the search capability the HTTP layer exposes
type ProductSearchService interface {
	Search(ctx context.Context, input domain.SearchInput) domain.SearchOutput
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	searchService ProductSearchService
}

// NewHandler creates a new HTTP handler
func NewHandler(searchService ProductSearchService) *Handler {
	return &Handler{searchService: searchService}
}

// Ping returns the health status of the API
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// SearchProducts handles product search requests
func (h *Handler) SearchProducts(c *gin.Context) {
	var input domain.SearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": domain.StatusError,
			"error":  "request body must include a query string",
		})
		return
	}

	output := h.searchService.Search(c.Request.Context(), input)

	status := http.StatusOK
	if output.Status == domain.StatusError {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, output)
}
