package model

import "time"

// Consultation request lifecycle. Payment processing is out of scope, so
// requests stay pending until cancelled; the paid state exists for rows
// settled out-of-band.
const (
	ConsultationPending   = "pending"
	ConsultationPaid      = "paid"
	ConsultationCancelled = "cancelled"
)

const (
	ConsultationOnline   = "online"
	ConsultationInPerson = "in_person"
	ConsultationPhone    = "phone"
)

// ConsultationRequest is an owner's booking request against a lawyer from the
// external directory. LawyerID is an opaque reference; the directory itself
// is not stored here.
type ConsultationRequest struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	OwnerID          string     `json:"owner_id" gorm:"size:64;index;not null"`
	LawyerID         string     `json:"lawyer_id" gorm:"size:64;not null"`
	Subject          string     `json:"subject" gorm:"size:255;not null"`
	Description      string     `json:"description" gorm:"type:text"`
	PreferredDate    *time.Time `json:"preferred_date"`
	PreferredTime    string     `json:"preferred_time" gorm:"size:50"`
	ConsultationType string     `json:"consultation_type" gorm:"size:20"`
	Status           string     `json:"status" gorm:"size:20;index;not null"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (ConsultationRequest) TableName() string {
	return "consultation_requests"
}
