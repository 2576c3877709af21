package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/nyayaai/backend/internal/model"
	"github.com/nyayaai/backend/internal/repository"
	"github.com/nyayaai/backend/internal/service/enhance"
	"gorm.io/gorm"
)

type scriptedGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (g *scriptedGenerator) Name() string { return "scripted" }

func (g *scriptedGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func newChatService(t *testing.T, gen enhance.Generator) *ChatService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(&model.ChatSession{}, &model.ChatMessage{}); err != nil {
		t.Fatalf("migrate error: %v", err)
	}
	return NewChatService(repository.NewChatRepository(db), gen)
}

func TestChatSendCreatesSessionAndPersistsTurns(t *testing.T) {
	gen := &scriptedGenerator{reply: "You can file a complaint under the Consumer Protection Act, 2019."}
	svc := newChatService(t, gen)

	reply, err := svc.Send(context.Background(), "user-1", "", "My builder delayed possession by two years.")
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if reply.SessionID == "" {
		t.Fatalf("expected a new session id")
	}

	msgs, err := svc.GetMessages(reply.SessionID, "user-1", 0)
	if err != nil {
		t.Fatalf("GetMessages error: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected user and assistant turns, got %d", len(msgs))
	}
	if msgs[0].Role != model.ChatRoleUser || msgs[1].Role != model.ChatRoleAssistant {
		t.Fatalf("unexpected roles: %s, %s", msgs[0].Role, msgs[1].Role)
	}
}

func TestChatSendIncludesHistoryContext(t *testing.T) {
	gen := &scriptedGenerator{reply: "Here is more detail."}
	svc := newChatService(t, gen)

	reply, err := svc.Send(context.Background(), "user-1", "", "What is a legal notice?")
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if _, err := svc.Send(context.Background(), "user-1", reply.SessionID, "How do I send one?"); err != nil {
		t.Fatalf("Send error: %v", err)
	}

	last := gen.prompts[len(gen.prompts)-1]
	if !strings.Contains(last, "Previous conversation context:") ||
		!strings.Contains(last, "What is a legal notice?") {
		t.Fatalf("expected history in the prompt:\n%s", last)
	}
	if !strings.Contains(last, "Current user question: How do I send one?") {
		t.Fatalf("prompt missing current question:\n%s", last)
	}
}

func TestChatSessionsAreOwnerScoped(t *testing.T) {
	gen := &scriptedGenerator{reply: "reply"}
	svc := newChatService(t, gen)

	reply, err := svc.Send(context.Background(), "user-1", "", "hello")
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}

	if _, err := svc.Send(context.Background(), "user-2", reply.SessionID, "hijack"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign session, got %v", err)
	}
	if _, err := svc.GetMessages(reply.SessionID, "user-2", 0); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound reading a foreign session, got %v", err)
	}
}

func TestChatWithoutCapability(t *testing.T) {
	svc := newChatService(t, nil)

	if _, err := svc.Send(context.Background(), "user-1", "", "hello"); !errors.Is(err, enhance.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestChatEmptyReplyPersistsNothing(t *testing.T) {
	gen := &scriptedGenerator{reply: "   "}
	svc := newChatService(t, gen)

	_, err := svc.Send(context.Background(), "user-1", "", "hello")
	if !errors.Is(err, enhance.ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}
