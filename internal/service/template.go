package service

import (
	"github.com/nyayaai/backend/internal/model"
	"github.com/nyayaai/backend/internal/repository"
	"k8s.io/klog/v2"
)

type TemplateService struct {
	tplRepo repository.TemplateRepository
}

func NewTemplateService(tplRepo repository.TemplateRepository) *TemplateService {
	return &TemplateService{tplRepo: tplRepo}
}

// GetBySlug resolves a template and never fails: on a missing row or a store
// error it degrades to the built-in default so the generation form stays
// renderable. Templates carry no owner-scoped data, which is why this read
// path may degrade where owner-scoped ones must not.
func (s *TemplateService) GetBySlug(slug string) *model.Template {
	tpl, err := s.tplRepo.GetBySlug(slug)
	if err != nil {
		klog.V(6).Infof("template lookup failed for slug=%s, using default: %v", slug, err)
		return DefaultTemplate()
	}

	if unmatched := UnmatchedTokens(tpl.Body, tpl.Fields); len(unmatched) > 0 {
		klog.V(6).Infof("template %s has tokens without field definitions: %v", slug, unmatched)
	}
	return tpl
}

// List returns templates filtered by category and/or a search query. Both
// filters are optional.
func (s *TemplateService) List(category, query string) ([]model.Template, error) {
	switch {
	case query != "":
		tpls, err := s.tplRepo.Search(query)
		if err != nil {
			return nil, err
		}
		if category == "" || category == "All" {
			return tpls, nil
		}
		filtered := make([]model.Template, 0, len(tpls))
		for _, tpl := range tpls {
			if tpl.Category == category {
				filtered = append(filtered, tpl)
			}
		}
		return filtered, nil
	case category != "" && category != "All":
		return s.tplRepo.ListByCategory(category)
	default:
		return s.tplRepo.List()
	}
}

// Seed inserts the system templates on first start. A non-empty store is left
// alone; template editing is administrative and out-of-band.
func (s *TemplateService) Seed() error {
	count, err := s.tplRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, tpl := range SystemTemplates() {
		if err := s.tplRepo.Create(tpl); err != nil {
			return err
		}
	}
	klog.V(6).Infof("seeded %d system templates", len(SystemTemplates()))
	return nil
}
