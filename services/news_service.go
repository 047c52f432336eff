package services

import (
	"context"

	"newsdesk-admin/models"
	"newsdesk-admin/repositories"
)

type NewsService interface {
	List(ctx context.Context) ([]models.NewsItem, error)
	Get(ctx context.Context, id string) (*models.NewsItem, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
	Create(ctx context.Context, req models.SaveNewsRequest) (*models.NewsItem, error)
	Update(ctx context.Context, id string, req models.SaveNewsRequest) (*models.NewsItem, error)
}

type newsService struct {
	repo      repositories.NewsRepository
	submitter *Submitter
}

func NewNewsService(repo repositories.NewsRepository, submitter *Submitter) NewsService {
	return &newsService{repo: repo, submitter: submitter}
}

func (s *newsService) List(ctx context.Context) ([]models.NewsItem, error) {
	return s.repo.GetAll(ctx)
}

func (s *newsService) Get(ctx context.Context, id string) (*models.NewsItem, error) {
	return s.repo.Get(ctx, id)
}

func (s *newsService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}

// Create runs the full submission pipeline over a one-shot draft built from
// the request body.
func (s *newsService) Create(ctx context.Context, req models.SaveNewsRequest) (*models.NewsItem, error) {
	item := req.ToNewsItem()
	sess := NewEditSession(&item)
	return s.submitter.Submit(ctx, sess)
}

// Update is the same pipeline addressed at an existing article.
func (s *newsService) Update(ctx context.Context, id string, req models.SaveNewsRequest) (*models.NewsItem, error) {
	item := req.ToNewsItem()
	item.ID = id
	sess := NewEditSession(&item)
	return s.submitter.Submit(ctx, sess)
}
