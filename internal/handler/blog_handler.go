package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"readnest/internal/dto"
	"readnest/internal/middleware"
	"readnest/internal/models"
	"readnest/internal/store"
)

type BlogHandler struct {
	store *store.ReadingStore
}

func NewBlogHandler(store *store.ReadingStore) *BlogHandler {
	return &BlogHandler{store: store}
}

func (h *BlogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/blog", h.List)
	rg.POST("/blog", h.Add)
	rg.PATCH("/blog/:id", h.Update)
	rg.DELETE("/blog/:id", h.Delete)
	rg.POST("/blog/:id/submit", h.Submit)
	// approval is parent mode only
	rg.POST("/blog/:id/approve", middleware.RequireParent(), h.Approve)
}

func (h *BlogHandler) List(c *gin.Context) {
	posts := h.store.BlogPosts()
	c.JSON(http.StatusOK, dto.BlogPostListResponse{
		Items: posts,
		Total: len(posts),
	})
}

func (h *BlogHandler) Add(c *gin.Context) {
	var req dto.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := h.store.AddBlogPost(req.ToModel())
	c.JSON(http.StatusCreated, post)
}

// Update edits a post. The store demotes an approved post back to pending
// whenever the title or content changes.
func (h *BlogHandler) Update(c *gin.Context) {
	var patch models.BlogPostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.store.UpdateBlogPost(c.Param("id"), patch) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	if !h.store.DeleteBlogPost(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Submit queues a draft for parent approval
func (h *BlogHandler) Submit(c *gin.Context) {
	if !h.store.SubmitBlogPost(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post submitted for approval"})
}

// Approve publishes a pending post
func (h *BlogHandler) Approve(c *gin.Context) {
	if !h.store.ApproveBlogPost(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post approved and published"})
}
