package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nyayaai/backend/internal/middleware"
	"github.com/nyayaai/backend/internal/repository"
	"github.com/nyayaai/backend/internal/service"
)

type StoryHandler struct {
	service *service.StoryService
}

func NewStoryHandler(service *service.StoryService) *StoryHandler {
	return &StoryHandler{service: service}
}

// Share submits a story for moderation; it will not appear in the public
// feed until approved.
func (h *StoryHandler) Share(c *gin.Context) {
	var req service.ShareStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	story, violations, err := h.service.Share(middleware.UserID(c), req)
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "violations": violations})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, story)
}

// List is the public feed of approved stories, optionally filtered by
// ?category=.
func (h *StoryHandler) List(c *gin.Context) {
	stories, err := h.service.ListApproved(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stories)
}

func (h *StoryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story id"})
		return
	}

	story, err := h.service.GetApproved(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, story)
}

// ListMine returns the caller's own stories, approved or not.
func (h *StoryHandler) ListMine(c *gin.Context) {
	stories, err := h.service.ListMine(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stories)
}
