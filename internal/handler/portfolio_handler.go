package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"readnest/internal/dto"
	"readnest/internal/models"
	"readnest/internal/store"
)

// PortfolioHandler serves the public, unauthenticated showcase page. It only
// ever exposes finished books and parent-approved, published writing.
type PortfolioHandler struct {
	reading *store.ReadingStore
	users   *store.UserStore
}

func NewPortfolioHandler(reading *store.ReadingStore, users *store.UserStore) *PortfolioHandler {
	return &PortfolioHandler{reading: reading, users: users}
}

func (h *PortfolioHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/portfolio", h.Portfolio)
}

func (h *PortfolioHandler) Portfolio(c *gin.Context) {
	readerName := "Young Reader"
	if user := h.users.User(); user != nil {
		readerName = user.Name
	}

	read := make([]models.Book, 0)
	for _, b := range h.reading.Books() {
		if b.IsRead {
			read = append(read, b)
		}
	}

	c.JSON(http.StatusOK, dto.PortfolioResponse{
		ReaderName: readerName,
		Stats:      h.reading.Stats(time.Now()),
		Books:      read,
		Posts:      h.reading.PublishedPosts(),
		Poems:      h.reading.Poems(),
	})
}
