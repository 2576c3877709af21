package repository

import (
	"errors"

	"github.com/nyayaai/backend/internal/model"
	"gorm.io/gorm"
)

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(doc *model.Document) error {
	return r.db.Create(doc).Error
}

func (r *documentRepository) ListByOwner(ownerID string) ([]model.Document, error) {
	var docs []model.Document
	result := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&docs)
	return docs, result.Error
}

func (r *documentRepository) GetByOwner(id uint, ownerID string) (*model.Document, error) {
	var doc model.Document
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&doc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &doc, nil
}

// DeleteByOwner includes the owner in the filter, so deleting someone else's
// document reports ErrNotFound and leaves the row untouched.
func (r *documentRepository) DeleteByOwner(id uint, ownerID string) error {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.Document{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
