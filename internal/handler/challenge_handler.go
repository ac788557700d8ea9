package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"readnest/internal/dto"
	"readnest/internal/models"
	"readnest/internal/store"
)

type ChallengeHandler struct {
	store *store.ReadingStore
}

func NewChallengeHandler(store *store.ReadingStore) *ChallengeHandler {
	return &ChallengeHandler{store: store}
}

func (h *ChallengeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/challenges", h.List)
	rg.POST("/challenges", h.Add)
	rg.PATCH("/challenges/:id", h.Update)
	rg.DELETE("/challenges/:id", h.Delete)
}

// List returns challenges with progress derived from the shelf
func (h *ChallengeHandler) List(c *gin.Context) {
	challenges := h.store.Challenges(time.Now())
	c.JSON(http.StatusOK, dto.ChallengeListResponse{
		Items: challenges,
		Total: len(challenges),
	})
}

func (h *ChallengeHandler) Add(c *gin.Context) {
	var req dto.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.EndDate.After(req.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be after start_date"})
		return
	}

	challenge := h.store.AddChallenge(req.ToModel())
	c.JSON(http.StatusCreated, challenge)
}

func (h *ChallengeHandler) Update(c *gin.Context) {
	var patch models.ChallengePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.store.UpdateChallenge(c.Param("id"), patch) {
		c.JSON(http.StatusNotFound, gin.H{"error": "challenge not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ChallengeHandler) Delete(c *gin.Context) {
	if !h.store.DeleteChallenge(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "challenge not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
