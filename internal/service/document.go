package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/nyayaai/backend/internal/model"
	"github.com/nyayaai/backend/internal/repository"
)

type DocumentService struct {
	docRepo repository.DocumentRepository
	tpls    *TemplateService
}

func NewDocumentService(docRepo repository.DocumentRepository, tpls *TemplateService) *DocumentService {
	return &DocumentService{
		docRepo: docRepo,
		tpls:    tpls,
	}
}

// Draft is a rendered document that has not been persisted yet.
type Draft struct {
	TemplateID    uint           `json:"template_id"`
	TemplateTitle string         `json:"template_title"`
	Content       string         `json:"content"`
	FormData      model.FormData `json:"form_data"`
}

// Generate renders a draft from a template and form values without touching
// the document store. Validation failures are reported, not swallowed.
func (s *DocumentService) Generate(slug string, values model.FormData) (*Draft, []Violation) {
	tpl := s.tpls.GetBySlug(slug)

	if violations := Validate(tpl.Fields, values); len(violations) > 0 {
		return nil, violations
	}

	return &Draft{
		TemplateID:    tpl.ID,
		TemplateTitle: tpl.Title,
		Content:       Render(tpl.Body, tpl.Fields, values),
		FormData:      values,
	}, nil
}

type CreateDocumentRequest struct {
	TemplateSlug string         `json:"template_slug"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	FormData     model.FormData `json:"form_data"`
}

// Create persists a generated document. Content arrives from the caller
// because the draft may have been AI-enhanced between rendering and saving.
// Required fields are re-validated here: browser-side checks are not the
// authority.
func (s *DocumentService) Create(ownerID string, req CreateDocumentRequest) (*model.Document, []Violation, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, nil, fmt.Errorf("content must not be empty")
	}

	tpl := s.tpls.GetBySlug(req.TemplateSlug)
	if violations := Validate(tpl.Fields, req.FormData); len(violations) > 0 {
		return nil, violations, nil
	}

	title := req.Title
	if title == "" {
		title = fmt.Sprintf("%s - %s", tpl.Title, time.Now().Format("02/01/2006"))
	}

	doc := &model.Document{
		OwnerID:    ownerID,
		TemplateID: tpl.ID,
		Title:      title,
		Content:    req.Content,
		FormData:   req.FormData,
		CreatedAt:  time.Now(),
	}
	if err := s.docRepo.Create(doc); err != nil {
		return nil, nil, err
	}
	return doc, nil, nil
}

// List returns the owner's documents newest first, optionally filtered by a
// naive case-insensitive substring match over title, content and the source
// template title. The filter runs over the already-fetched list; document
// counts per user are small.
func (s *DocumentService) List(ownerID, query string) ([]model.Document, error) {
	docs, err := s.docRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return docs, nil
	}

	titles := s.templateTitles()
	needle := strings.ToLower(query)
	filtered := make([]model.Document, 0, len(docs))
	for _, doc := range docs {
		if strings.Contains(strings.ToLower(doc.Title), needle) ||
			strings.Contains(strings.ToLower(doc.Content), needle) ||
			strings.Contains(strings.ToLower(titles[doc.TemplateID]), needle) {
			filtered = append(filtered, doc)
		}
	}
	return filtered, nil
}

func (s *DocumentService) templateTitles() map[uint]string {
	titles := make(map[uint]string)
	tpls, err := s.tpls.List("", "")
	if err != nil {
		return titles
	}
	for _, tpl := range tpls {
		titles[tpl.ID] = tpl.Title
	}
	return titles
}

func (s *DocumentService) Get(id uint, ownerID string) (*model.Document, error) {
	return s.docRepo.GetByOwner(id, ownerID)
}

func (s *DocumentService) Delete(id uint, ownerID string) error {
	return s.docRepo.DeleteByOwner(id, ownerID)
}

// ExportFilename names the plain-text download. The file contains the exact
// content bytes, no envelope; the name is the only metadata.
func ExportFilename(doc *model.Document) string {
	name := doc.Title
	if name == "" {
		name = "document"
	}
	// Strip characters that break Content-Disposition filenames.
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"':
			return '-'
		default:
			return r
		}
	}, name)
	return name + ".txt"
}
