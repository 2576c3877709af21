package service

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/nyayaai/backend/internal/model"
	"github.com/nyayaai/backend/internal/repository"
	"gorm.io/gorm"
)

func newConsultationService(t *testing.T) *ConsultationService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(&model.ConsultationRequest{}); err != nil {
		t.Fatalf("migrate error: %v", err)
	}
	return NewConsultationService(repository.NewConsultationRepository(db))
}

func bookRequest() BookConsultationRequest {
	return BookConsultationRequest{
		LawyerID:      "lawyer-7",
		Subject:       "Tenant eviction notice",
		Description:   "Received a 15-day eviction notice without cause.",
		PreferredDate: "2026-09-15",
		PreferredTime: "10:00",
	}
}

func TestConsultationBookDefaults(t *testing.T) {
	svc := newConsultationService(t)

	consultation, violations, err := svc.Book("user-1", bookRequest())
	if err != nil || len(violations) != 0 {
		t.Fatalf("Book error: %v violations: %v", err, violations)
	}
	if consultation.Status != model.ConsultationPending {
		t.Fatalf("new requests must be pending, got %s", consultation.Status)
	}
	if consultation.ConsultationType != model.ConsultationOnline {
		t.Fatalf("type must default to online, got %s", consultation.ConsultationType)
	}
	if consultation.PreferredDate == nil || consultation.PreferredDate.Day() != 15 {
		t.Fatalf("preferred date not parsed: %v", consultation.PreferredDate)
	}
}

func TestConsultationBookValidates(t *testing.T) {
	svc := newConsultationService(t)

	req := bookRequest()
	req.LawyerID = ""
	req.Subject = " "
	req.ConsultationType = "telepathy"
	req.PreferredDate = "not-a-date"

	consultation, violations, err := svc.Book("user-1", req)
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if consultation != nil || len(violations) != 4 {
		t.Fatalf("expected 4 violations, got %v", violations)
	}
}

func TestConsultationCancelLifecycle(t *testing.T) {
	svc := newConsultationService(t)

	consultation, _, err := svc.Book("user-1", bookRequest())
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}

	if err := svc.Cancel(consultation.ID, "user-1"); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	got, err := svc.Get(consultation.ID, "user-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Status != model.ConsultationCancelled {
		t.Fatalf("status = %s, want cancelled", got.Status)
	}

	// Cancelled is terminal.
	if err := svc.Cancel(consultation.ID, "user-1"); !errors.Is(err, ErrNotCancellable) {
		t.Fatalf("second cancel: err = %v, want ErrNotCancellable", err)
	}
}

func TestConsultationCancelIsOwnerScoped(t *testing.T) {
	svc := newConsultationService(t)

	consultation, _, err := svc.Book("user-1", bookRequest())
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}

	if err := svc.Cancel(consultation.ID, "user-2"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("foreign cancel: err = %v, want ErrNotFound", err)
	}
	got, err := svc.Get(consultation.ID, "user-1")
	if err != nil || got.Status != model.ConsultationPending {
		t.Fatalf("request must survive a foreign cancel: %v %+v", err, got)
	}

	if _, err := svc.Get(consultation.ID, "user-2"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("foreign get: err = %v, want ErrNotFound", err)
	}
}
