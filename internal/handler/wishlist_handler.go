package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"readnest/internal/dto"
	"readnest/internal/store"
)

type WishlistHandler struct {
	store *store.ReadingStore
}

func NewWishlistHandler(store *store.ReadingStore) *WishlistHandler {
	return &WishlistHandler{store: store}
}

func (h *WishlistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/wishlist", h.List)
	rg.POST("/wishlist", h.Add)
	rg.DELETE("/wishlist/:id", h.Remove)
	rg.POST("/wishlist/:id/move", h.MoveToBookshelf)
}

func (h *WishlistHandler) List(c *gin.Context) {
	wishlist := h.store.Wishlist()
	c.JSON(http.StatusOK, dto.BookListResponse{
		Items: wishlist,
		Total: len(wishlist),
	})
}

func (h *WishlistHandler) Add(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book := h.store.AddToWishlist(req.ToModel())
	c.JSON(http.StatusCreated, book)
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	if !h.store.RemoveFromWishlist(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found in wishlist"})
		return
	}
	c.Status(http.StatusNoContent)
}

// MoveToBookshelf marks a wishlist entry as finished and moves it to the shelf
func (h *WishlistHandler) MoveToBookshelf(c *gin.Context) {
	if !h.store.MoveToBookshelf(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found in wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "book moved to bookshelf"})
}
