package repository

import (
	"errors"

	"github.com/nyayaai/backend/internal/model"
	"gorm.io/gorm"
)

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(story *model.CaseStory) error {
	return r.db.Create(story).Error
}

// ListApproved is the public browse path: moderated stories only, newest
// first, optionally narrowed to one category.
func (r *storyRepository) ListApproved(category string) ([]model.CaseStory, error) {
	q := r.db.Where("is_approved = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var stories []model.CaseStory
	result := q.Order("created_at DESC, id DESC").Find(&stories)
	return stories, result.Error
}

func (r *storyRepository) GetApproved(id uint) (*model.CaseStory, error) {
	var story model.CaseStory
	result := r.db.Where("id = ? AND is_approved = ?", id, true).First(&story)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &story, nil
}

func (r *storyRepository) ListByOwner(ownerID string) ([]model.CaseStory, error) {
	var stories []model.CaseStory
	result := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&stories)
	return stories, result.Error
}
