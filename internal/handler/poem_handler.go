package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"readnest/internal/dto"
	"readnest/internal/models"
	"readnest/internal/store"
)

type PoemHandler struct {
	store *store.ReadingStore
}

func NewPoemHandler(store *store.ReadingStore) *PoemHandler {
	return &PoemHandler{store: store}
}

func (h *PoemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/poems", h.List)
	rg.POST("/poems", h.Add)
	rg.PATCH("/poems/:id", h.Update)
	rg.DELETE("/poems/:id", h.Delete)
	rg.POST("/poems/:id/like", h.Like)
}

func (h *PoemHandler) List(c *gin.Context) {
	poems := h.store.Poems()
	c.JSON(http.StatusOK, dto.PoemListResponse{
		Items: poems,
		Total: len(poems),
	})
}

func (h *PoemHandler) Add(c *gin.Context) {
	var req dto.CreatePoemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	poem := h.store.AddPoem(req.ToModel())
	c.JSON(http.StatusCreated, poem)
}

func (h *PoemHandler) Update(c *gin.Context) {
	var patch models.PoemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.store.UpdatePoem(c.Param("id"), patch) {
		c.JSON(http.StatusNotFound, gin.H{"error": "poem not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PoemHandler) Delete(c *gin.Context) {
	if !h.store.DeletePoem(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "poem not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Like increments the poem's like counter atomically in the store
func (h *PoemHandler) Like(c *gin.Context) {
	id := c.Param("id")
	likes, ok := h.store.LikePoem(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "poem not found"})
		return
	}
	c.JSON(http.StatusOK, dto.LikeResponse{ID: id, Likes: likes})
}
