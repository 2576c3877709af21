package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nyayaai/backend/internal/service/enhance"
)

type EnhanceHandler struct {
	service *enhance.Service
}

func NewEnhanceHandler(service *enhance.Service) *EnhanceHandler {
	return &EnhanceHandler{service: service}
}

type enhanceRequest struct {
	Content  string            `json:"content"`
	Template string            `json:"template"`
	FormData map[string]string `json:"formData"`
}

// Enhance rewrites a draft document. The body comes back as text/plain so the
// client can drop it straight into the editor; the caller's draft is untouched
// on any failure.
func (h *EnhanceHandler) Enhance(c *gin.Context) {
	var req enhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	enhanced, err := h.service.Enhance(c.Request.Context(), req.Content, req.Template, req.FormData)
	if err != nil {
		switch {
		case errors.Is(err, enhance.ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "enhancement is not configured"})
		case errors.Is(err, enhance.ErrEmptyResponse):
			c.JSON(http.StatusBadGateway, gin.H{"error": "enhancement produced no content"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(enhanced))
}
