package repository

import (
	"errors"
	"time"

	"github.com/nyayaai/backend/internal/model"
	"gorm.io/gorm"
)

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateSession(session *model.ChatSession) error {
	return r.db.Create(session).Error
}

func (r *chatRepository) GetSessionByOwner(sessionID, ownerID string) (*model.ChatSession, error) {
	var session model.ChatSession
	result := r.db.Where("session_id = ? AND owner_id = ?", sessionID, ownerID).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &session, nil
}

func (r *chatRepository) ListSessionsByOwner(ownerID string) ([]model.ChatSession, error) {
	var sessions []model.ChatSession
	result := r.db.Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&sessions)
	return sessions, result.Error
}

// TouchSession bumps updated_at so the session list stays ordered by recent
// activity.
func (r *chatRepository) TouchSession(sessionID string) error {
	return r.db.Model(&model.ChatSession{}).
		Where("session_id = ?", sessionID).
		Update("updated_at", time.Now()).Error
}

func (r *chatRepository) CreateMessage(msg *model.ChatMessage) error {
	return r.db.Create(msg).Error
}

// GetRecentMessages returns the newest messages in chronological order so
// they can be fed to the model as conversation context.
func (r *chatRepository) GetRecentMessages(sessionID string, limit int) ([]model.ChatMessage, error) {
	var msgs []model.ChatMessage
	result := r.db.Where("session_id = ?", sessionID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&msgs)
	if result.Error != nil {
		return nil, result.Error
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
