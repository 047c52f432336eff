package services

import (
	"context"
	"sync"

	"newsdesk-admin/models"
	"newsdesk-admin/repositories"

	"github.com/google/uuid"
)

// DraftService holds the open editing sessions, one per draft ID. Sessions
// live in memory only: discarding one simply drops it, without awaiting any
// in-flight uploads.
type DraftService struct {
	mu        sync.Mutex
	sessions  map[string]*EditSession
	repo      repositories.NewsRepository
	submitter *Submitter
}

func NewDraftService(repo repositories.NewsRepository, submitter *Submitter) *DraftService {
	return &DraftService{
		sessions:  make(map[string]*EditSession),
		repo:      repo,
		submitter: submitter,
	}
}

// Open starts a new session: empty when newsID is "", otherwise hydrated
// from the persisted item.
func (d *DraftService) Open(ctx context.Context, newsID string) (string, models.NewsItem, error) {
	var sess *EditSession
	if newsID == "" {
		sess = NewEditSession(nil)
	} else {
		item, err := d.repo.Get(ctx, newsID)
		if err != nil {
			return "", models.NewsItem{}, err
		}
		sess = NewEditSession(item)
	}

	id := uuid.NewString()
	d.mu.Lock()
	d.sessions[id] = sess
	d.mu.Unlock()

	return id, sess.Draft(), nil
}

func (d *DraftService) Get(id string) (models.NewsItem, error) {
	sess, err := d.session(id)
	if err != nil {
		return models.NewsItem{}, err
	}
	return sess.Draft(), nil
}

func (d *DraftService) Update(id string, req models.UpdateDraftRequest) (models.NewsItem, error) {
	sess, err := d.session(id)
	if err != nil {
		return models.NewsItem{}, err
	}
	sess.ApplyUpdate(req)
	return sess.Draft(), nil
}

func (d *DraftService) AddSection(id string, section models.Section) (models.NewsItem, error) {
	sess, err := d.session(id)
	if err != nil {
		return models.NewsItem{}, err
	}
	sess.AddSection(section)
	return sess.Draft(), nil
}

func (d *DraftService) EditSection(id string, index int, section models.Section) (models.NewsItem, error) {
	sess, err := d.session(id)
	if err != nil {
		return models.NewsItem{}, err
	}
	if err := sess.EditSection(index, section); err != nil {
		return models.NewsItem{}, err
	}
	return sess.Draft(), nil
}

func (d *DraftService) DeleteSection(id string, index int) (models.NewsItem, error) {
	sess, err := d.session(id)
	if err != nil {
		return models.NewsItem{}, err
	}
	if err := sess.DeleteSection(index); err != nil {
		return models.NewsItem{}, err
	}
	return sess.Draft(), nil
}

func (d *DraftService) Reset(id string) (models.NewsItem, error) {
	sess, err := d.session(id)
	if err != nil {
		return models.NewsItem{}, err
	}
	sess.Reset()
	return sess.Draft(), nil
}

func (d *DraftService) Submit(ctx context.Context, id string) (*models.NewsItem, error) {
	sess, err := d.session(id)
	if err != nil {
		return nil, err
	}
	return d.submitter.Submit(ctx, sess)
}

// Discard drops the session. In-flight uploads are not awaited.
func (d *DraftService) Discard(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.sessions[id]; !ok {
		return models.ErrDraftNotFound
	}
	delete(d.sessions, id)
	return nil
}

func (d *DraftService) session(id string) (*EditSession, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	sess, ok := d.sessions[id]
	if !ok {
		return nil, models.ErrDraftNotFound
	}
	return sess, nil
}
