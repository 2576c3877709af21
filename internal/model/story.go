package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is a JSON text column holding an ordered list of short strings.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// CaseStory is a user-shared legal experience. Stories are moderated: they
// enter the store unapproved and only approved ones appear in the public
// listing. Approval happens out-of-band.
type CaseStory struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	OwnerID        string     `json:"owner_id" gorm:"size:64;index;not null"`
	Title          string     `json:"title" gorm:"size:255;not null"`
	Category       string     `json:"category" gorm:"size:100;index"`
	StoryContent   string     `json:"story_content" gorm:"type:text"`
	LegalOutcome   string     `json:"legal_outcome" gorm:"type:text"`
	LessonsLearned string     `json:"lessons_learned" gorm:"type:text"`
	Tags           StringList `json:"tags" gorm:"type:text"`
	LocationState  string     `json:"location_state" gorm:"size:100"`
	CaseDuration   string     `json:"case_duration" gorm:"size:100"`
	IsApproved     bool       `json:"is_approved" gorm:"default:false;index"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (CaseStory) TableName() string {
	return "case_stories"
}
