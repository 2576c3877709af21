package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nyayaai/backend/internal/service"
)

type TemplateHandler struct {
	service *service.TemplateService
}

func NewTemplateHandler(service *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// List returns templates, optionally filtered by ?category= and ?q=.
func (h *TemplateHandler) List(c *gin.Context) {
	tpls, err := h.service.List(c.Query("category"), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tpls)
}

// Get resolves one template by slug. Lookup failures degrade to the built-in
// default template, so this never 404s.
func (h *TemplateHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetBySlug(c.Param("slug")))
}
