package service

import (
	"errors"
	"time"

	"github.com/nyayaai/backend/internal/model"
	"github.com/nyayaai/backend/internal/repository"
)

// Bookmark toggle outcomes.
const (
	BookmarkAdded   = "added"
	BookmarkRemoved = "removed"
)

type BookmarkService struct {
	bmRepo repository.BookmarkRepository
}

func NewBookmarkService(bmRepo repository.BookmarkRepository) *BookmarkService {
	return &BookmarkService{bmRepo: bmRepo}
}

// Toggle flips the bookmark state for one article and reports which way it
// went. A second toggle on the same article undoes the first.
func (s *BookmarkService) Toggle(ownerID, articleID string) (string, error) {
	_, err := s.bmRepo.GetByOwnerAndArticle(ownerID, articleID)
	switch {
	case err == nil:
		if err := s.bmRepo.DeleteByOwnerAndArticle(ownerID, articleID); err != nil {
			return "", err
		}
		return BookmarkRemoved, nil
	case errors.Is(err, repository.ErrNotFound):
		bm := &model.Bookmark{
			OwnerID:   ownerID,
			ArticleID: articleID,
			CreatedAt: time.Now(),
		}
		if err := s.bmRepo.Create(bm); err != nil {
			return "", err
		}
		return BookmarkAdded, nil
	default:
		return "", err
	}
}

func (s *BookmarkService) List(ownerID string) ([]model.Bookmark, error) {
	return s.bmRepo.ListByOwner(ownerID)
}
