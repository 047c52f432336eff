package repositories

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"newsdesk-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type graphQLCall struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// newGraphQLServer answers every request with the given body and records the
// last call for assertions.
func newGraphQLServer(t *testing.T, response string) (*httptest.Server, *graphQLCall) {
	t.Helper()
	last := &graphQLCall{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(last))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, last
}

func TestGetAllNews(t *testing.T) {
	srv, call := newGraphQLServer(t, `{
		"data": {
			"getAllNews": [
				{
					"_id": "n1",
					"title": "First",
					"description": "d1",
					"image": "https://cdn.test/hero.png",
					"type": "Event",
					"sections": [
						{"title": "s", "content": "c", "images": ["https://cdn.test/a.png"], "listItems": []}
					]
				}
			]
		}
	}`)

	repo := NewGraphQLNewsRepository(srv.URL, srv.Client())
	items, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "n1", items[0].ID)
	assert.Equal(t, models.CategoryEvent, items[0].Category)
	assert.Equal(t, "https://cdn.test/a.png", items[0].Sections[0].Images[0])
	assert.Contains(t, call.Query, "getAllNews")
}

func TestGetNewsDetail(t *testing.T) {
	srv, call := newGraphQLServer(t, `{
		"data": {
			"getNewsDetail": {"_id": "n2", "title": "One", "description": "d", "type": "News", "image": "", "sections": []}
		}
	}`)

	repo := NewGraphQLNewsRepository(srv.URL, srv.Client())
	item, err := repo.Get(context.Background(), "n2")

	require.NoError(t, err)
	assert.Equal(t, "n2", item.ID)
	assert.Equal(t, "n2", call.Variables["getNewsDetailId"])
}

func TestCreateNewsSendsInputWithoutID(t *testing.T) {
	srv, call := newGraphQLServer(t, `{
		"data": {
			"addNews": {"_id": "created", "title": "Launch", "description": "d", "type": "Event", "image": "", "sections": []}
		}
	}`)

	repo := NewGraphQLNewsRepository(srv.URL, srv.Client())
	item, err := repo.Create(context.Background(), models.NewsItem{
		ID:          "must-not-leak",
		Title:       "Launch",
		Description: "d",
		Category:    models.CategoryEvent,
		Sections:    []models.Section{{Content: "hi"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "created", item.ID)
	assert.Contains(t, call.Query, "addNews")

	input, ok := call.Variables["input"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Launch", input["title"])
	assert.Equal(t, "Event", input["type"])
	assert.NotContains(t, input, "_id")
}

func TestUpdateNewsAddressesByNewsID(t *testing.T) {
	srv, call := newGraphQLServer(t, `{
		"data": {
			"editNews": {"_id": "n3", "title": "Edited", "description": "d", "type": "News", "image": "", "sections": []}
		}
	}`)

	repo := NewGraphQLNewsRepository(srv.URL, srv.Client())
	item, err := repo.Update(context.Background(), "n3", models.NewsItem{
		Title:       "Edited",
		Description: "d",
		Category:    models.CategoryNews,
	})

	require.NoError(t, err)
	assert.Equal(t, "n3", item.ID)
	assert.Contains(t, call.Query, "editNews")
	assert.Equal(t, "n3", call.Variables["newsId"])
}

func TestDeleteNews(t *testing.T) {
	srv, call := newGraphQLServer(t, `{
		"data": {
			"deleteNews": {"success": true, "message": "deleted"}
		}
	}`)

	repo := NewGraphQLNewsRepository(srv.URL, srv.Client())
	result, err := repo.Delete(context.Background(), "n4")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "n4", call.Variables["newsId"])
}

func TestMutationErrorBecomesPersistError(t *testing.T) {
	srv, _ := newGraphQLServer(t, `{
		"errors": [{"message": "news not found"}]
	}`)

	repo := NewGraphQLNewsRepository(srv.URL, srv.Client())
	_, err := repo.Update(context.Background(), "missing", models.NewsItem{Title: "t"})

	var persistErr *models.PersistError
	require.ErrorAs(t, err, &persistErr)
	assert.Equal(t, "editNews", persistErr.Op)
	assert.True(t, strings.Contains(err.Error(), "news not found"))
}

func TestMutationWithNullDataIsPersistError(t *testing.T) {
	srv, _ := newGraphQLServer(t, `{"data": {"addNews": null}}`)

	repo := NewGraphQLNewsRepository(srv.URL, srv.Client())
	_, err := repo.Create(context.Background(), models.NewsItem{Title: "t"})

	var persistErr *models.PersistError
	require.ErrorAs(t, err, &persistErr)
	assert.Contains(t, err.Error(), "no data returned")
}
