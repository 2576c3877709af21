package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyayaai/backend/internal/model"
	"github.com/nyayaai/backend/internal/repository"
	"github.com/nyayaai/backend/internal/service/enhance"
	"k8s.io/klog/v2"
)

const chatContextMessages = 10

const chatSystemPrompt = `You are Nyaya.ai, an expert AI legal assistant specializing in Indian law. Your role is to provide accurate, helpful legal information while being accessible to common people.

Key Guidelines:
- Focus on Indian legal system, constitution, and laws
- Provide practical, actionable advice
- Use simple language that non-lawyers can understand
- Always include relevant legal sections/acts when applicable
- Emphasize that this is general information, not personalized legal advice
- Suggest consulting a lawyer for complex matters
- Be empathetic and supportive, especially for vulnerable populations
- Cover areas like: consumer rights, labor law, family law, property law, criminal law, constitutional rights

Important Disclaimers:
- Always remind users this is general legal information
- Recommend consulting qualified lawyers for specific cases
- Don't provide advice on illegal activities
- Be culturally sensitive to Indian context`

// ChatService runs the polling-REST legal assistant chat. It shares the AI
// capability with the enhancement service; the deterministic rule engine does
// not serve chat, so a rules-only deployment reports the capability as absent.
type ChatService struct {
	chatRepo repository.ChatRepository
	gen      enhance.Generator
}

func NewChatService(chatRepo repository.ChatRepository, gen enhance.Generator) *ChatService {
	return &ChatService{chatRepo: chatRepo, gen: gen}
}

type ChatReply struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// Send records the user's message, asks the assistant with the last few turns
// as context, records the reply and returns it. A blank sessionID starts a
// new session owned by the caller.
func (s *ChatService) Send(ctx context.Context, ownerID, sessionID, message string) (*ChatReply, error) {
	if s.gen == nil {
		return nil, enhance.ErrUnavailable
	}

	if sessionID == "" {
		session := &model.ChatSession{
			SessionID: uuid.NewString(),
			OwnerID:   ownerID,
			Title:     sessionTitle(message),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.chatRepo.CreateSession(session); err != nil {
			return nil, err
		}
		sessionID = session.SessionID
	} else if _, err := s.chatRepo.GetSessionByOwner(sessionID, ownerID); err != nil {
		return nil, err
	}

	history, err := s.chatRepo.GetRecentMessages(sessionID, chatContextMessages)
	if err != nil {
		return nil, err
	}

	reply, err := s.gen.Generate(ctx, chatSystemPrompt, buildChatPrompt(history, message))
	if err != nil {
		klog.V(6).Infof("assistant reply failed for session=%s: %v", sessionID, err)
		return nil, err
	}
	if strings.TrimSpace(reply) == "" {
		return nil, enhance.ErrEmptyResponse
	}

	now := time.Now()
	userMsg := &model.ChatMessage{SessionID: sessionID, Role: model.ChatRoleUser, Content: message, CreatedAt: now}
	if err := s.chatRepo.CreateMessage(userMsg); err != nil {
		return nil, err
	}
	assistantMsg := &model.ChatMessage{SessionID: sessionID, Role: model.ChatRoleAssistant, Content: reply, CreatedAt: now.Add(time.Millisecond)}
	if err := s.chatRepo.CreateMessage(assistantMsg); err != nil {
		return nil, err
	}
	if err := s.chatRepo.TouchSession(sessionID); err != nil {
		klog.V(6).Infof("touch session failed: %v", err)
	}

	return &ChatReply{SessionID: sessionID, Reply: reply}, nil
}

func (s *ChatService) ListSessions(ownerID string) ([]model.ChatSession, error) {
	return s.chatRepo.ListSessionsByOwner(ownerID)
}

func (s *ChatService) GetMessages(sessionID, ownerID string, limit int) ([]model.ChatMessage, error) {
	if _, err := s.chatRepo.GetSessionByOwner(sessionID, ownerID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}
	return s.chatRepo.GetRecentMessages(sessionID, limit)
}

func buildChatPrompt(history []model.ChatMessage, message string) string {
	var b strings.Builder
	if len(history) > 0 {
		b.WriteString("Previous conversation context:\n")
		for _, msg := range history {
			fmt.Fprintf(&b, "%s: %s\n", msg.Role, msg.Content)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Current user question: %s", message)
	return b.String()
}

func sessionTitle(message string) string {
	title := strings.TrimSpace(message)
	if runes := []rune(title); len(runes) > 60 {
		title = string(runes[:60])
	}
	return title
}
