package repository

import (
	"errors"
	"strings"

	"github.com/nyayaai/backend/internal/model"
	"gorm.io/gorm"
)

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) GetBySlug(slug string) (*model.Template, error) {
	var tpl model.Template
	result := r.db.Where("slug = ?", slug).First(&tpl)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &tpl, nil
}

func (r *templateRepository) List() ([]model.Template, error) {
	var tpls []model.Template
	result := r.db.Order("sort_order ASC, id ASC").Find(&tpls)
	return tpls, result.Error
}

func (r *templateRepository) ListByCategory(category string) ([]model.Template, error) {
	var tpls []model.Template
	result := r.db.Where("category = ?", category).
		Order("sort_order ASC, id ASC").
		Find(&tpls)
	return tpls, result.Error
}

// Search matches title and description case-insensitively. LOWER() keeps the
// behavior identical across sqlite and mysql collations.
func (r *templateRepository) Search(query string) ([]model.Template, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var tpls []model.Template
	result := r.db.
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("sort_order ASC, id ASC").
		Find(&tpls)
	return tpls, result.Error
}

func (r *templateRepository) Create(tpl *model.Template) error {
	return r.db.Create(tpl).Error
}

func (r *templateRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&model.Template{}).Count(&count)
	return count, result.Error
}
