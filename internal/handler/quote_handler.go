package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"readnest/internal/quotes"
)

// QuoteHandler serves the rotating weekly reading quote. All endpoints are
// public: the quote is part of the portfolio page too.
type QuoteHandler struct{}

func NewQuoteHandler() *QuoteHandler {
	return &QuoteHandler{}
}

func (h *QuoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/quote", h.Weekly)
	rg.GET("/quote/random", h.Random)
	rg.GET("/quotes", h.All)
}

// Weekly returns the quote for the current ISO week
func (h *QuoteHandler) Weekly(c *gin.Context) {
	c.JSON(http.StatusOK, quotes.Weekly())
}

// Random returns an arbitrary quote, for variety
func (h *QuoteHandler) Random(c *gin.Context) {
	c.JSON(http.StatusOK, quotes.Random())
}

// All returns the full table, for parents to review
func (h *QuoteHandler) All(c *gin.Context) {
	all := quotes.All()
	c.JSON(http.StatusOK, gin.H{
		"quotes": all,
		"total":  len(all),
	})
}
