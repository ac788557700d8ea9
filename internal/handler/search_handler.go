package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"readnest/internal/dto"
	"readnest/internal/openlibrary"
)

const searchTimeout = 10 * time.Second

// SearchHandler fronts the Open Library metadata collaborator. Lookup
// failures degrade to an empty result list; the client never sees a 5xx for
// a flaky catalog.
type SearchHandler struct {
	client *openlibrary.Client
	logger *slog.Logger
}

func NewSearchHandler(client *openlibrary.Client, logger *slog.Logger) *SearchHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchHandler{client: client, logger: logger}
}

func (h *SearchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search/books", h.SearchBooks)
	rg.GET("/search/isbn/:isbn", h.SearchByISBN)
	rg.GET("/search/works/:key/description", h.Description)
}

// SearchBooks looks up shelf candidates by free-text query
func (h *SearchHandler) SearchBooks(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), searchTimeout)
	defer cancel()

	docs, err := h.client.Search(ctx, query, limit)
	if err != nil {
		h.logger.Warn("book search failed", "query", query, "error", err)
		docs = nil // fall through to an empty result set
	}

	c.JSON(http.StatusOK, h.toResponse(query, docs))
}

// SearchByISBN looks up shelf candidates by ISBN
func (h *SearchHandler) SearchByISBN(c *gin.Context) {
	isbn := c.Param("isbn")

	ctx, cancel := context.WithTimeout(c.Request.Context(), searchTimeout)
	defer cancel()

	docs, err := h.client.SearchByISBN(ctx, isbn)
	if err != nil {
		h.logger.Warn("isbn search failed", "isbn", isbn, "error", err)
		docs = nil
	}

	c.JSON(http.StatusOK, h.toResponse(isbn, docs))
}

// Description fetches the long-form description of a work
func (h *SearchHandler) Description(c *gin.Context) {
	key := c.Param("key")

	ctx, cancel := context.WithTimeout(c.Request.Context(), searchTimeout)
	defer cancel()

	desc, err := h.client.Description(ctx, key)
	if err != nil {
		h.logger.Warn("description fetch failed", "key", key, "error", err)
		desc = ""
	}

	c.JSON(http.StatusOK, dto.DescriptionResponse{Key: key, Description: desc})
}

func (h *SearchHandler) toResponse(query string, docs []openlibrary.Doc) dto.SearchResponse {
	results := make([]dto.SearchResult, 0, len(docs))
	for _, doc := range docs {
		result := dto.SearchResult{
			Book:        h.client.ToBook(doc),
			PublishYear: doc.FirstPublishYear,
			Subjects:    openlibrary.Subjects(doc),
		}
		if len(doc.Publisher) > 0 {
			result.Publisher = doc.Publisher[0]
		}
		results = append(results, result)
	}
	return dto.SearchResponse{
		Query:   query,
		Results: results,
		Total:   len(results),
	}
}
