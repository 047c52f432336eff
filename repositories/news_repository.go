package repositories

import (
	"context"
	"net/http"

	"newsdesk-admin/models"

	"github.com/machinebox/graphql"
)

// NewsRepository is the persistence boundary. The backing store is a remote
// GraphQL news API; this service never talks to a database of its own.
type NewsRepository interface {
	GetAll(ctx context.Context) ([]models.NewsItem, error)
	Get(ctx context.Context, id string) (*models.NewsItem, error)
	Create(ctx context.Context, input models.NewsItem) (*models.NewsItem, error)
	Update(ctx context.Context, id string, input models.NewsItem) (*models.NewsItem, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

const getAllNewsQuery = `
query {
	getAllNews {
		_id
		title
		description
		image
		type
		sections {
			title
			content
			images
			listItems
		}
	}
}`

const getNewsDetailQuery = `
query ($getNewsDetailId: String) {
	getNewsDetail(getNewsDetailId: $getNewsDetailId) {
		_id
		title
		description
		image
		type
		sections {
			title
			content
			images
			listItems
		}
	}
}`

const addNewsMutation = `
mutation AddNews($input: NewsInput) {
	addNews(input: $input) {
		_id
		title
		description
		image
		type
		sections {
			title
			content
			images
			listItems
		}
	}
}`

const editNewsMutation = `
mutation EditNews($newsId: String!, $input: NewsInput) {
	editNews(newsId: $newsId, input: $input) {
		_id
		title
		description
		image
		type
		sections {
			title
			content
			images
			listItems
		}
	}
}`

const deleteNewsMutation = `
mutation DeleteNews($newsId: String) {
	deleteNews(newsId: $newsId) {
		success
		message
	}
}`

// newsInput is the NewsInput wire shape. It deliberately has no _id: the
// target article is addressed by the newsId variable on edit.
type newsInput struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Type        models.Category  `json:"type"`
	Sections    []models.Section `json:"sections"`
}

func toNewsInput(item models.NewsItem) newsInput {
	sections := item.Sections
	if sections == nil {
		sections = []models.Section{}
	}
	return newsInput{
		Title:       item.Title,
		Description: item.Description,
		Image:       item.Image,
		Type:        item.Category,
		Sections:    sections,
	}
}

type graphQLNewsRepository struct {
	client *graphql.Client
}

func NewGraphQLNewsRepository(endpoint string, httpClient *http.Client) NewsRepository {
	opts := []graphql.ClientOption{}
	if httpClient != nil {
		opts = append(opts, graphql.WithHTTPClient(httpClient))
	}
	return &graphQLNewsRepository{
		client: graphql.NewClient(endpoint, opts...),
	}
}

func (r *graphQLNewsRepository) GetAll(ctx context.Context) ([]models.NewsItem, error) {
	req := graphql.NewRequest(getAllNewsQuery)

	var resp struct {
		GetAllNews []models.NewsItem `json:"getAllNews"`
	}
	if err := r.client.Run(ctx, req, &resp); err != nil {
		return nil, &models.PersistError{Op: "getAllNews", Err: err}
	}
	return resp.GetAllNews, nil
}

func (r *graphQLNewsRepository) Get(ctx context.Context, id string) (*models.NewsItem, error) {
	req := graphql.NewRequest(getNewsDetailQuery)
	req.Var("getNewsDetailId", id)

	var resp struct {
		GetNewsDetail *models.NewsItem `json:"getNewsDetail"`
	}
	if err := r.client.Run(ctx, req, &resp); err != nil {
		return nil, &models.PersistError{Op: "getNewsDetail", Err: err}
	}
	if resp.GetNewsDetail == nil {
		return nil, &models.PersistError{Op: "getNewsDetail"}
	}
	return resp.GetNewsDetail, nil
}

func (r *graphQLNewsRepository) Create(ctx context.Context, input models.NewsItem) (*models.NewsItem, error) {
	req := graphql.NewRequest(addNewsMutation)
	req.Var("input", toNewsInput(input))

	var resp struct {
		AddNews *models.NewsItem `json:"addNews"`
	}
	if err := r.client.Run(ctx, req, &resp); err != nil {
		return nil, &models.PersistError{Op: "addNews", Err: err}
	}
	if resp.AddNews == nil {
		return nil, &models.PersistError{Op: "addNews"}
	}
	return resp.AddNews, nil
}

func (r *graphQLNewsRepository) Update(ctx context.Context, id string, input models.NewsItem) (*models.NewsItem, error) {
	req := graphql.NewRequest(editNewsMutation)
	req.Var("newsId", id)
	req.Var("input", toNewsInput(input))

	var resp struct {
		EditNews *models.NewsItem `json:"editNews"`
	}
	if err := r.client.Run(ctx, req, &resp); err != nil {
		return nil, &models.PersistError{Op: "editNews", Err: err}
	}
	if resp.EditNews == nil {
		return nil, &models.PersistError{Op: "editNews"}
	}
	return resp.EditNews, nil
}

func (r *graphQLNewsRepository) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	req := graphql.NewRequest(deleteNewsMutation)
	req.Var("newsId", id)

	var resp struct {
		DeleteNews *models.DeleteResult `json:"deleteNews"`
	}
	if err := r.client.Run(ctx, req, &resp); err != nil {
		return nil, &models.PersistError{Op: "deleteNews", Err: err}
	}
	if resp.DeleteNews == nil {
		return nil, &models.PersistError{Op: "deleteNews"}
	}
	return resp.DeleteNews, nil
}
