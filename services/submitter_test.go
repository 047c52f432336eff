package services

import (
	"context"
	"testing"
	"time"

	"newsdesk-admin/models"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type mockNewsRepo struct {
	mock.Mock
}

func (m *mockNewsRepo) GetAll(ctx context.Context) ([]models.NewsItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]models.NewsItem)
	return items, args.Error(1)
}

func (m *mockNewsRepo) Get(ctx context.Context, id string) (*models.NewsItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*models.NewsItem)
	return item, args.Error(1)
}

func (m *mockNewsRepo) Create(ctx context.Context, input models.NewsItem) (*models.NewsItem, error) {
	args := m.Called(ctx, input)
	item, _ := args.Get(0).(*models.NewsItem)
	return item, args.Error(1)
}

func (m *mockNewsRepo) Update(ctx context.Context, id string, input models.NewsItem) (*models.NewsItem, error) {
	args := m.Called(ctx, id, input)
	item, _ := args.Get(0).(*models.NewsItem)
	return item, args.Error(1)
}

func (m *mockNewsRepo) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	args := m.Called(ctx, id)
	result, _ := args.Get(0).(*models.DeleteResult)
	return result, args.Error(1)
}

type SubmitterSuite struct {
	suite.Suite

	repo      *mockNewsRepo
	store     *fakeImageStore
	submitter *Submitter
}

func TestSubmitterSuite(t *testing.T) {
	suite.Run(t, new(SubmitterSuite))
}

func (s *SubmitterSuite) SetupTest() {
	s.repo = &mockNewsRepo{}
	s.store = &fakeImageStore{}
	s.submitter = NewSubmitter(s.repo, NewSectionResolver(s.store, nil))
}

func (s *SubmitterSuite) TestEmptyTitleFailsBeforePersist() {
	sess := NewEditSession(&models.NewsItem{
		Title:       "   ",
		Description: "desc",
		Category:    models.CategoryEvent,
	})

	_, err := s.submitter.Submit(context.Background(), sess)

	var validationErr *models.ValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Contains(validationErr.Fields, "title")
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)

	// draft retained for retry
	s.Equal("desc", sess.Draft().Description)
}

func (s *SubmitterSuite) TestUnknownCategoryFailsUniformly() {
	// the strict category rule applies to updates too, not only creates
	sess := NewEditSession(&models.NewsItem{
		ID:          "n1",
		Title:       "t",
		Description: "d",
		Category:    "Sports",
	})

	_, err := s.submitter.Submit(context.Background(), sess)

	var validationErr *models.ValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Contains(validationErr.Fields, "category")
	s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *SubmitterSuite) TestCreateWithResolvedSectionsSkipsUploads() {
	sess := NewEditSession(&models.NewsItem{
		Title:       "Launch",
		Description: "desc",
		Category:    models.CategoryEvent,
		Sections:    []models.Section{{Content: "hi"}},
	})

	persisted := &models.NewsItem{ID: "new-id", Title: "Launch"}

	var gotPayload models.NewsItem
	s.repo.
		On("Create", mock.Anything, mock.AnythingOfType("models.NewsItem")).
		Run(func(args mock.Arguments) {
			gotPayload = args.Get(1).(models.NewsItem)
		}).
		Return(persisted, nil).
		Once()

	got, err := s.submitter.Submit(context.Background(), sess)

	s.Require().NoError(err)
	s.Equal(persisted, got)
	s.repo.AssertExpectations(s.T())

	s.Equal(models.CategoryEvent, gotPayload.Category)
	s.Require().Len(gotPayload.Sections, 1)
	s.Equal("hi", gotPayload.Sections[0].Content)
	s.EqualValues(0, s.store.count(), "fully-resolved draft must trigger no uploads")

	// create success resets the session
	draft := sess.Draft()
	s.Empty(draft.Title)
	s.Equal(models.DefaultCategory, draft.Category)
}

func (s *SubmitterSuite) TestCreateUploadsLocalSectionImage() {
	sess := NewEditSession(&models.NewsItem{
		Title:       "t",
		Description: "d",
		Category:    models.CategoryNews,
		Sections:    []models.Section{{Images: []string{"data:,local"}}},
	})

	var gotPayload models.NewsItem
	s.repo.
		On("Create", mock.Anything, mock.AnythingOfType("models.NewsItem")).
		Run(func(args mock.Arguments) {
			gotPayload = args.Get(1).(models.NewsItem)
		}).
		Return(&models.NewsItem{ID: "x"}, nil).
		Once()

	_, err := s.submitter.Submit(context.Background(), sess)

	s.Require().NoError(err)
	s.EqualValues(1, s.store.count())
	s.Require().Len(gotPayload.Sections, 1)
	s.Equal("https://cdn.test/local", gotPayload.Sections[0].Images[0])
}

func (s *SubmitterSuite) TestBlankSectionRefsPrunedNotUploaded() {
	// the editor can leave empty slots behind; they are dropped, never
	// treated as references to resolve
	sess := NewEditSession(&models.NewsItem{
		Title:       "t",
		Description: "d",
		Category:    models.CategoryNews,
		Sections: []models.Section{
			{Images: []string{"", "https://cdn.test/keep.png", "  "}},
			{ListItems: []string{"", "data:,item"}},
		},
	})

	var gotPayload models.NewsItem
	s.repo.
		On("Create", mock.Anything, mock.AnythingOfType("models.NewsItem")).
		Run(func(args mock.Arguments) {
			gotPayload = args.Get(1).(models.NewsItem)
		}).
		Return(&models.NewsItem{ID: "x"}, nil).
		Once()

	_, err := s.submitter.Submit(context.Background(), sess)

	s.Require().NoError(err)
	s.Require().Len(gotPayload.Sections, 2)
	s.Equal([]string{"https://cdn.test/keep.png"}, gotPayload.Sections[0].Images)
	s.Equal([]string{"https://cdn.test/item"}, gotPayload.Sections[1].ListItems)
	s.EqualValues(1, s.store.count(), "only the real local ref uploads")
}

func (s *SubmitterSuite) TestPendingHeroImageCollapsesToEmpty() {
	sess := NewEditSession(&models.NewsItem{
		Title:       "t",
		Description: "d",
		Category:    models.CategoryNews,
		Image:       "data:,still-pending",
	})

	var gotPayload models.NewsItem
	s.repo.
		On("Create", mock.Anything, mock.AnythingOfType("models.NewsItem")).
		Run(func(args mock.Arguments) {
			gotPayload = args.Get(1).(models.NewsItem)
		}).
		Return(&models.NewsItem{ID: "x"}, nil).
		Once()

	_, err := s.submitter.Submit(context.Background(), sess)

	s.Require().NoError(err)
	s.Empty(gotPayload.Image)
}

func (s *SubmitterSuite) TestUploadFailureAbortsBeforePersist() {
	s.store.err = &models.UploadError{StatusText: "502 Bad Gateway"}

	sess := NewEditSession(&models.NewsItem{
		Title:       "t",
		Description: "d",
		Category:    models.CategoryNews,
		Sections:    []models.Section{{Images: []string{"data:,local"}}},
	})

	_, err := s.submitter.Submit(context.Background(), sess)

	var uploadErr *models.UploadError
	s.Require().ErrorAs(err, &uploadErr)
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)

	// draft untouched
	s.Equal("data:,local", sess.Draft().Sections[0].Images[0])
}

func (s *SubmitterSuite) TestUpdateAddressesExistingArticle() {
	sess := NewEditSession(&models.NewsItem{
		ID:          "n7",
		Title:       "t",
		Description: "d",
		Category:    models.CategoryAnnouncement,
	})

	persisted := &models.NewsItem{ID: "n7", Title: "t", Category: models.CategoryAnnouncement}
	s.repo.
		On("Update", mock.Anything, "n7", mock.AnythingOfType("models.NewsItem")).
		Return(persisted, nil).
		Once()

	got, err := s.submitter.Submit(context.Background(), sess)

	s.Require().NoError(err)
	s.Equal("n7", got.ID)
	s.repo.AssertExpectations(s.T())

	// update success does not reset; draft reflects the persisted item
	s.Equal("t", sess.Draft().Title)
}

func (s *SubmitterSuite) TestPersistFailureRetainsDraft() {
	sess := NewEditSession(&models.NewsItem{
		Title:       "keep",
		Description: "d",
		Category:    models.CategoryNews,
	})

	s.repo.
		On("Create", mock.Anything, mock.AnythingOfType("models.NewsItem")).
		Return(nil, &models.PersistError{Op: "addNews"}).
		Once()

	_, err := s.submitter.Submit(context.Background(), sess)

	var persistErr *models.PersistError
	s.Require().ErrorAs(err, &persistErr)
	s.Equal("keep", sess.Draft().Title)
}

func (s *SubmitterSuite) TestDoubleSubmitRejectedWithoutSecondMutation() {
	sess := NewEditSession(&models.NewsItem{
		Title:       "t",
		Description: "d",
		Category:    models.CategoryNews,
	})

	entered := make(chan struct{})
	release := make(chan struct{})

	s.repo.
		On("Create", mock.Anything, mock.AnythingOfType("models.NewsItem")).
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(&models.NewsItem{ID: "x"}, nil).
		Once()

	done := make(chan error, 1)
	go func() {
		_, err := s.submitter.Submit(context.Background(), sess)
		done <- err
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		s.FailNow("first submit never reached the mutation")
	}

	_, err := s.submitter.Submit(context.Background(), sess)
	s.ErrorIs(err, models.ErrSubmitInFlight)

	close(release)
	s.NoError(<-done)
	s.repo.AssertNumberOfCalls(s.T(), "Create", 1)
}
