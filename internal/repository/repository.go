package repository

import (
	"errors"

	"github.com/nyayaai/backend/internal/model"
)

// ErrNotFound is returned when a row does not exist, or exists but is not
// visible to the requesting owner.
var ErrNotFound = errors.New("record not found")

type TemplateRepository interface {
	GetBySlug(slug string) (*model.Template, error)
	List() ([]model.Template, error)
	ListByCategory(category string) ([]model.Template, error)
	Search(query string) ([]model.Template, error)
	Create(tpl *model.Template) error
	Count() (int64, error)
}

// DocumentRepository scopes every read and write by owner id. Ownership is
// enforced by the equality filter in the query itself, not by a separate
// authorization check.
type DocumentRepository interface {
	Create(doc *model.Document) error
	ListByOwner(ownerID string) ([]model.Document, error)
	GetByOwner(id uint, ownerID string) (*model.Document, error)
	DeleteByOwner(id uint, ownerID string) error
}

// StoryRepository separates the public read path (approved stories only)
// from the owner's own view, which includes rows still awaiting approval.
type StoryRepository interface {
	Create(story *model.CaseStory) error
	ListApproved(category string) ([]model.CaseStory, error)
	GetApproved(id uint) (*model.CaseStory, error)
	ListByOwner(ownerID string) ([]model.CaseStory, error)
}

type ConsultationRepository interface {
	Create(req *model.ConsultationRequest) error
	ListByOwner(ownerID string) ([]model.ConsultationRequest, error)
	GetByOwner(id uint, ownerID string) (*model.ConsultationRequest, error)
	UpdateStatus(id uint, ownerID, status string) error
}

type BookmarkRepository interface {
	Create(bm *model.Bookmark) error
	GetByOwnerAndArticle(ownerID, articleID string) (*model.Bookmark, error)
	DeleteByOwnerAndArticle(ownerID, articleID string) error
	ListByOwner(ownerID string) ([]model.Bookmark, error)
}

type ChatRepository interface {
	CreateSession(session *model.ChatSession) error
	GetSessionByOwner(sessionID, ownerID string) (*model.ChatSession, error)
	ListSessionsByOwner(ownerID string) ([]model.ChatSession, error)
	TouchSession(sessionID string) error
	CreateMessage(msg *model.ChatMessage) error
	GetRecentMessages(sessionID string, limit int) ([]model.ChatMessage, error)
}
