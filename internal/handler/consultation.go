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

type ConsultationHandler struct {
	service *service.ConsultationService
}

func NewConsultationHandler(service *service.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{service: service}
}

func (h *ConsultationHandler) Book(c *gin.Context) {
	var req service.BookConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	consultation, violations, err := h.service.Book(middleware.UserID(c), req)
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "violations": violations})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, consultation)
}

func (h *ConsultationHandler) List(c *gin.Context) {
	consultations, err := h.service.List(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, consultations)
}

func (h *ConsultationHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid consultation id"})
		return
	}

	consultation, err := h.service.Get(uint(id), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "consultation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, consultation)
}

func (h *ConsultationHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid consultation id"})
		return
	}

	if err := h.service.Cancel(uint(id), middleware.UserID(c)); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "consultation not found"})
		case errors.Is(err, service.ErrNotCancellable):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "consultation cancelled"})
}
