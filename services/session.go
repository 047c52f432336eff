package services

import (
	"sync"

	"newsdesk-admin/models"
)

// EditSession owns the mutable draft of one news item. Field and section
// edits are synchronous in-memory updates; the submitting flag is the only
// submit-time lock and guards against a double submit, never against field
// edits.
type EditSession struct {
	mu         sync.Mutex
	draft      models.NewsItem
	submitting bool
}

// NewEditSession starts from a persisted item (edit flow) or, when seed is
// nil, from an empty draft (create flow).
func NewEditSession(seed *models.NewsItem) *EditSession {
	s := &EditSession{}
	if seed != nil {
		s.draft = seed.Clone()
	} else {
		s.draft = emptyDraft()
	}
	return s
}

func emptyDraft() models.NewsItem {
	return models.NewsItem{
		Category: models.DefaultCategory,
		Sections: []models.Section{},
	}
}

// Draft returns a copy of the current draft state.
func (s *EditSession) Draft() models.NewsItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

// Snapshot is the submission-ready copy handed to the coordinator.
func (s *EditSession) Snapshot() models.NewsItem {
	return s.Draft()
}

// ApplyUpdate patches basic fields; nil request fields stay unchanged.
func (s *EditSession) ApplyUpdate(req models.UpdateDraftRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req.Title != nil {
		s.draft.Title = *req.Title
	}
	if req.Description != nil {
		s.draft.Description = *req.Description
	}
	if req.Category != nil {
		s.draft.Category = *req.Category
	}
	if req.Image != nil {
		s.draft.Image = *req.Image
	}
}

// SetHeroImage replaces the hero image reference. A hero upload never blocks
// other field edits.
func (s *EditSession) SetHeroImage(ref string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Image = ref
}

// AddSection appends to the end of the section list.
func (s *EditSession) AddSection(section models.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Sections = append(s.draft.Sections, section.Clone())
}

// EditSection replaces the section at index in place, preserving position.
func (s *EditSession) EditSection(index int, section models.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.draft.Sections) {
		return &models.IndexError{Index: index, Len: len(s.draft.Sections)}
	}
	s.draft.Sections[index] = section.Clone()
	return nil
}

// DeleteSection removes the section at index; later sections shift down by
// one, so callers must not hold stale indices across this call.
func (s *EditSession) DeleteSection(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.draft.Sections) {
		return &models.IndexError{Index: index, Len: len(s.draft.Sections)}
	}
	s.draft.Sections = append(s.draft.Sections[:index], s.draft.Sections[index+1:]...)
	return nil
}

// Reset returns the session to an empty draft with the default category.
func (s *EditSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = emptyDraft()
}

func (s *EditSession) beginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return models.ErrSubmitInFlight
	}
	s.submitting = true
	return nil
}

func (s *EditSession) endSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

func (s *EditSession) replaceDraft(item models.NewsItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = item.Clone()
}
