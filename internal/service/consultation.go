package service

import (
	"errors"
	"strings"
	"time"

	"github.com/nyayaai/backend/internal/model"
	"github.com/nyayaai/backend/internal/repository"
)

// ErrNotCancellable is returned when a consultation is already in a terminal
// state.
var ErrNotCancellable = errors.New("consultation is not cancellable in its current status")

type ConsultationService struct {
	consultRepo repository.ConsultationRepository
}

func NewConsultationService(consultRepo repository.ConsultationRepository) *ConsultationService {
	return &ConsultationService{consultRepo: consultRepo}
}

type BookConsultationRequest struct {
	LawyerID         string `json:"lawyer_id"`
	Subject          string `json:"subject"`
	Description      string `json:"description"`
	PreferredDate    string `json:"preferred_date"` // RFC 3339 or yyyy-mm-dd, optional
	PreferredTime    string `json:"preferred_time"`
	ConsultationType string `json:"consultation_type"`
}

// Book files a consultation request in the pending state. Payment settles
// out-of-band; booking never needs it.
func (s *ConsultationService) Book(ownerID string, req BookConsultationRequest) (*model.ConsultationRequest, []Violation, error) {
	var violations []Violation
	if strings.TrimSpace(req.LawyerID) == "" {
		violations = append(violations, Violation{FieldID: "lawyer_id", Label: "Lawyer", Reason: "required"})
	}
	if strings.TrimSpace(req.Subject) == "" {
		violations = append(violations, Violation{FieldID: "subject", Label: "Subject", Reason: "required"})
	}

	consultationType := req.ConsultationType
	if consultationType == "" {
		consultationType = model.ConsultationOnline
	}
	switch consultationType {
	case model.ConsultationOnline, model.ConsultationInPerson, model.ConsultationPhone:
	default:
		violations = append(violations, Violation{FieldID: "consultation_type", Label: "Consultation Type", Reason: "must be one of: online, in_person, phone"})
	}

	var preferredDate *time.Time
	if req.PreferredDate != "" {
		parsed, err := parseDate(req.PreferredDate)
		if err != nil {
			violations = append(violations, Violation{FieldID: "preferred_date", Label: "Preferred Date", Reason: "not a valid date"})
		} else {
			preferredDate = &parsed
		}
	}

	if len(violations) > 0 {
		return nil, violations, nil
	}

	now := time.Now()
	consultation := &model.ConsultationRequest{
		OwnerID:          ownerID,
		LawyerID:         req.LawyerID,
		Subject:          strings.TrimSpace(req.Subject),
		Description:      req.Description,
		PreferredDate:    preferredDate,
		PreferredTime:    req.PreferredTime,
		ConsultationType: consultationType,
		Status:           model.ConsultationPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.consultRepo.Create(consultation); err != nil {
		return nil, nil, err
	}
	return consultation, nil, nil
}

func (s *ConsultationService) List(ownerID string) ([]model.ConsultationRequest, error) {
	return s.consultRepo.ListByOwner(ownerID)
}

func (s *ConsultationService) Get(id uint, ownerID string) (*model.ConsultationRequest, error) {
	return s.consultRepo.GetByOwner(id, ownerID)
}

// Cancel moves a pending or paid request to cancelled. Any other state is a
// terminal one and cancellation is rejected.
func (s *ConsultationService) Cancel(id uint, ownerID string) error {
	consultation, err := s.consultRepo.GetByOwner(id, ownerID)
	if err != nil {
		return err
	}
	if consultation.Status != model.ConsultationPending && consultation.Status != model.ConsultationPaid {
		return ErrNotCancellable
	}
	return s.consultRepo.UpdateStatus(id, ownerID, model.ConsultationCancelled)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
