package repository

import (
	"errors"

	"github.com/nyayaai/backend/internal/model"
	"gorm.io/gorm"
)

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Create(bm *model.Bookmark) error {
	return r.db.Create(bm).Error
}

func (r *bookmarkRepository) GetByOwnerAndArticle(ownerID, articleID string) (*model.Bookmark, error) {
	var bm model.Bookmark
	result := r.db.Where("owner_id = ? AND article_id = ?", ownerID, articleID).First(&bm)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &bm, nil
}

func (r *bookmarkRepository) DeleteByOwnerAndArticle(ownerID, articleID string) error {
	result := r.db.Where("owner_id = ? AND article_id = ?", ownerID, articleID).
		Delete(&model.Bookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *bookmarkRepository) ListByOwner(ownerID string) ([]model.Bookmark, error) {
	var bms []model.Bookmark
	result := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&bms)
	return bms, result.Error
}
