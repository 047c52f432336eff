package services

import (
	"context"
	"errors"
	"strings"

	"newsdesk-admin/models"
	"newsdesk-admin/repositories"

	validator "gopkg.in/go-playground/validator.v9"
)

// Submitter sequences a whole-article save: validate, normalize the hero
// image, resolve section uploads, then call the remote mutation exactly
// once. Used for both create (empty draft ID) and update.
type Submitter struct {
	repo     repositories.NewsRepository
	resolver *SectionResolver
	validate *validator.Validate
}

func NewSubmitter(repo repositories.NewsRepository, resolver *SectionResolver) *Submitter {
	return &Submitter{
		repo:     repo,
		resolver: resolver,
		validate: validator.New(),
	}
}

// Submit persists the session's draft. A second call while one is in flight
// for the same session fails with ErrSubmitInFlight and has no side effects.
// Any failure leaves the draft untouched so the caller can retry; a create
// success resets the session to an empty draft.
func (s *Submitter) Submit(ctx context.Context, sess *EditSession) (*models.NewsItem, error) {
	if err := sess.beginSubmit(); err != nil {
		return nil, err
	}
	defer sess.endSubmit()

	draft := sess.Snapshot()

	fields := models.SubmitFields{
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Category:    strings.TrimSpace(string(draft.Category)),
	}
	if err := s.checkFields(fields); err != nil {
		return nil, err
	}

	hero := NormalizeHeroImage(draft.Image)

	// Normalize before resolving: blank refs left behind by the editor are
	// pruned here, not handed to the resolver as unresolvable.
	resolved, err := s.resolver.Resolve(ctx, normalizeSections(draft.Sections))
	if err != nil {
		return nil, err
	}

	payload := models.NewsItem{
		ID:          draft.ID,
		Title:       fields.Title,
		Description: fields.Description,
		Category:    models.Category(fields.Category),
		Image:       hero,
		Sections:    resolved,
	}

	var persisted *models.NewsItem
	if draft.ID == "" {
		persisted, err = s.repo.Create(ctx, payload)
	} else {
		persisted, err = s.repo.Update(ctx, draft.ID, payload)
	}
	if err != nil {
		return nil, err
	}

	if draft.ID == "" {
		sess.Reset()
	} else {
		sess.replaceDraft(*persisted)
	}
	return persisted, nil
}

func (s *Submitter) checkFields(fields models.SubmitFields) error {
	err := s.validate.Struct(fields)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		ve := &models.ValidationError{}
		for _, fe := range verrs {
			ve.Fields = append(ve.Fields, strings.ToLower(fe.Field()))
		}
		return ve
	}
	return err
}

// NormalizeHeroImage collapses every hero reference that is not a permanent
// http(s) URL (empty, still-pending local upload, malformed) to "no image".
// Hero upload is expected to have completed before submit; this is a
// normalization rule, not an upload step.
func NormalizeHeroImage(ref string) string {
	ref = strings.TrimSpace(ref)
	if !IsPermanentURL(ref) {
		return ""
	}
	return ref
}

func normalizeSections(sections []models.Section) []models.Section {
	out := make([]models.Section, len(sections))
	for i, s := range sections {
		out[i] = s.Normalized()
	}
	return out
}
