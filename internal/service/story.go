package service

import (
	"strings"
	"time"

	"github.com/nyayaai/backend/internal/model"
	"github.com/nyayaai/backend/internal/repository"
)

const maxStoryTags = 10

type StoryService struct {
	storyRepo repository.StoryRepository
}

func NewStoryService(storyRepo repository.StoryRepository) *StoryService {
	return &StoryService{storyRepo: storyRepo}
}

type ShareStoryRequest struct {
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	StoryContent   string   `json:"story_content"`
	LegalOutcome   string   `json:"legal_outcome"`
	LessonsLearned string   `json:"lessons_learned"`
	Tags           []string `json:"tags"`
	LocationState  string   `json:"location_state"`
	CaseDuration   string   `json:"case_duration"`
}

// Share submits a story for moderation. Stories always enter unapproved; the
// caller cannot set the approval flag.
func (s *StoryService) Share(ownerID string, req ShareStoryRequest) (*model.CaseStory, []Violation, error) {
	var violations []Violation
	if strings.TrimSpace(req.Title) == "" {
		violations = append(violations, Violation{FieldID: "title", Label: "Title", Reason: "required"})
	}
	if strings.TrimSpace(req.StoryContent) == "" {
		violations = append(violations, Violation{FieldID: "story_content", Label: "Your Story", Reason: "required"})
	}
	if len(violations) > 0 {
		return nil, violations, nil
	}

	story := &model.CaseStory{
		OwnerID:        ownerID,
		Title:          strings.TrimSpace(req.Title),
		Category:       req.Category,
		StoryContent:   req.StoryContent,
		LegalOutcome:   req.LegalOutcome,
		LessonsLearned: req.LessonsLearned,
		Tags:           normalizeTags(req.Tags),
		LocationState:  req.LocationState,
		CaseDuration:   req.CaseDuration,
		IsApproved:     false,
		CreatedAt:      time.Now(),
	}
	if err := s.storyRepo.Create(story); err != nil {
		return nil, nil, err
	}
	return story, nil, nil
}

// ListApproved is the public browse feed. Unapproved stories are invisible
// here, even to their own author.
func (s *StoryService) ListApproved(category string) ([]model.CaseStory, error) {
	return s.storyRepo.ListApproved(category)
}

func (s *StoryService) GetApproved(id uint) (*model.CaseStory, error) {
	return s.storyRepo.GetApproved(id)
}

// ListMine returns the caller's own stories, including those still awaiting
// approval.
func (s *StoryService) ListMine(ownerID string) ([]model.CaseStory, error) {
	return s.storyRepo.ListByOwner(ownerID)
}

// normalizeTags lowercases, trims and de-duplicates, capped at maxStoryTags.
func normalizeTags(tags []string) model.StringList {
	seen := make(map[string]bool)
	var out model.StringList
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
		if len(out) == maxStoryTags {
			break
		}
	}
	return out
}
