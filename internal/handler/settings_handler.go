package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"readnest/internal/middleware"
	"readnest/internal/models"
	"readnest/internal/store"
)

type SettingsHandler struct {
	users *store.UserStore
}

func NewSettingsHandler(users *store.UserStore) *SettingsHandler {
	return &SettingsHandler{users: users}
}

func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/user", h.Profile)
	rg.GET("/user/settings", h.Settings)
	rg.PATCH("/user/settings", h.UpdateSettings)
	// parental controls only move in parent mode
	rg.PATCH("/user/settings/parental", middleware.RequireParent(), h.UpdateParentalControls)
}

func (h *SettingsHandler) Profile(c *gin.Context) {
	user := h.users.User()
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active profile"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *SettingsHandler) Settings(c *gin.Context) {
	user := h.users.User()
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active profile"})
		return
	}
	c.JSON(http.StatusOK, user.Settings)
}

// UpdateSettings shallow-merges a settings patch into the active profile
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var patch models.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.users.UpdateSettings(patch) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active profile"})
		return
	}
	c.JSON(http.StatusOK, h.users.User().Settings)
}

// UpdateParentalControls replaces the parental-control block wholesale
func (h *SettingsHandler) UpdateParentalControls(c *gin.Context) {
	var pc models.ParentalControls
	if err := c.ShouldBindJSON(&pc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.users.UpdateParentalControls(pc) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active profile"})
		return
	}
	c.JSON(http.StatusOK, h.users.User().Settings.ParentalControls)
}
