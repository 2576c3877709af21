package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nyayaai/backend/internal/middleware"
	"github.com/nyayaai/backend/internal/model"
	"github.com/nyayaai/backend/internal/repository"
	"github.com/nyayaai/backend/internal/service"
)

type DocumentHandler struct {
	service *service.DocumentService
}

func NewDocumentHandler(service *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

type generateRequest struct {
	TemplateSlug string         `json:"template_slug"`
	FormData     model.FormData `json:"form_data"`
}

// Generate renders a draft without persisting it. Validation failures come
// back as 400 with the per-field violations so the client can surface them.
func (h *DocumentHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft, violations := h.service.Generate(req.TemplateSlug, req.FormData)
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "violations": violations})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Create persists a document for the authenticated owner.
func (h *DocumentHandler) Create(c *gin.Context) {
	var req service.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	doc, violations, err := h.service.Create(middleware.UserID(c), req)
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "violations": violations})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// List returns the caller's documents, optionally filtered by ?q=.
func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.service.List(middleware.UserID(c), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) Get(c *gin.Context) {
	doc, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Export streams the stored content verbatim as a plain-text attachment. The
// bytes on the wire are exactly the bytes in the store.
func (h *DocumentHandler) Export(c *gin.Context) {
	doc, ok := h.lookup(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.ExportFilename(doc)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(doc.Content))
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document id"})
		return
	}

	if err := h.service.Delete(uint(id), middleware.UserID(c)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "document deleted"})
}

func (h *DocumentHandler) lookup(c *gin.Context) (*model.Document, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document id"})
		return nil, false
	}

	doc, err := h.service.Get(uint(id), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return doc, true
}
