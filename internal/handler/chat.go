package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nyayaai/backend/internal/middleware"
	"github.com/nyayaai/backend/internal/repository"
	"github.com/nyayaai/backend/internal/service"
	"github.com/nyayaai/backend/internal/service/enhance"
)

type ChatHandler struct {
	service *service.ChatService
}

func NewChatHandler(service *service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// Send posts one user message and returns the assistant reply. An empty
// session_id starts a fresh session for the caller.
func (h *ChatHandler) Send(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := h.service.Send(c.Request.Context(), middleware.UserID(c), req.SessionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		case errors.Is(err, enhance.ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assistant is not configured"})
		case errors.Is(err, enhance.ErrEmptyResponse):
			c.JSON(http.StatusBadGateway, gin.H{"error": "assistant produced no reply"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (h *ChatHandler) ListSessions(c *gin.Context) {
	sessions, err := h.service.ListSessions(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	msgs, err := h.service.GetMessages(c.Param("id"), middleware.UserID(c), limit)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msgs)
}
