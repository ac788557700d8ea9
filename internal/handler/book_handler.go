package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"readnest/internal/dto"
	"readnest/internal/models"
	"readnest/internal/store"
)

type BookHandler struct {
	store *store.ReadingStore
}

func NewBookHandler(store *store.ReadingStore) *BookHandler {
	return &BookHandler{store: store}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/books", h.List)
	rg.POST("/books", h.Add)
	rg.PATCH("/books/:id", h.Update)
	rg.DELETE("/books/:id", h.Delete)
	rg.GET("/stats", h.Stats)
}

// List the bookshelf
func (h *BookHandler) List(c *gin.Context) {
	books := h.store.Books()
	c.JSON(http.StatusOK, dto.BookListResponse{
		Items: books,
		Total: len(books),
	})
}

// Add a book to the shelf
func (h *BookHandler) Add(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book := h.store.AddBook(req.ToModel())
	c.JSON(http.StatusCreated, book)
}

// Update merges a partial book update
func (h *BookHandler) Update(c *gin.Context) {
	var patch models.BookPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.store.UpdateBook(c.Param("id"), patch) {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete removes a book from the shelf
func (h *BookHandler) Delete(c *gin.Context) {
	if !h.store.DeleteBook(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats returns the derived reading statistics
func (h *BookHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats(time.Now()))
}
