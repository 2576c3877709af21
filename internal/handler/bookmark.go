package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nyayaai/backend/internal/middleware"
	"github.com/nyayaai/backend/internal/service"
)

type BookmarkHandler struct {
	service *service.BookmarkService
}

func NewBookmarkHandler(service *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

type bookmarkRequest struct {
	ArticleID string `json:"article_id"`
}

// Toggle flips the bookmark on one article and reports the direction, so the
// client does not need to track prior state.
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	var req bookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.ArticleID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "article_id is required"})
		return
	}

	action, err := h.service.Toggle(middleware.UserID(c), req.ArticleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"action": action})
}

func (h *BookmarkHandler) List(c *gin.Context) {
	bookmarks, err := h.service.List(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookmarks)
}
