package service_test

import (
	"context"
	"testing"

	"newshub/internal/httpapi/apperrors"
	"newshub/internal/httpapi/models"
	"newshub/internal/httpapi/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- MOCK REPOSITORIES ---

type MockArticleRepo struct {
	mock.Mock
}

func (m *MockArticleRepo) List(ctx context.Context, sortBy, order, topic string) ([]models.ArticleSummary, error) {
	args := m.Called(ctx, sortBy, order, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ArticleSummary), args.Error(1)
}

func (m *MockArticleRepo) GetByID(ctx context.Context, articleID int64) (*models.ArticleDetail, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ArticleDetail), args.Error(1)
}

func (m *MockArticleRepo) Exists(ctx context.Context, articleID int64) (bool, error) {
	args := m.Called(ctx, articleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleRepo) IncrementVotes(ctx context.Context, articleID int64, delta int) (*models.Article, error) {
	args := m.Called(ctx, articleID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

type MockTopicRepo struct {
	mock.Mock
}

func (m *MockTopicRepo) List(ctx context.Context) ([]models.Topic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Topic), args.Error(1)
}

func (m *MockTopicRepo) Exists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepo) Exists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepo) Delete(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockCommentRepo) Exists(ctx context.Context, commentID int64) (bool, error) {
	args := m.Called(ctx, commentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepo) GetByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

// --- HELPERS ---

func assertAppError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, msg, appErr.Msg)
}

// --- TESTS ---

func TestListArticles_AppliesDefaults(t *testing.T) {
	articleRepo := new(MockArticleRepo)
	topicRepo := new(MockTopicRepo)
	svc := service.NewArticleService(articleRepo, topicRepo)

	articleRepo.On("List", mock.Anything, "created_at", "desc", "").
		Return([]models.ArticleSummary{}, nil)

	_, err := svc.ListArticles(context.Background(), "", "", "")
	require.NoError(t, err)
	articleRepo.AssertExpectations(t)
}

func TestListArticles_InvalidSortColumnShortCircuits(t *testing.T) {
	for _, col := range []string{"body", "article_id; DROP TABLE articles;--", "CREATED_AT"} {
		articleRepo := new(MockArticleRepo)
		topicRepo := new(MockTopicRepo)
		svc := service.NewArticleService(articleRepo, topicRepo)

		_, err := svc.ListArticles(context.Background(), col, "desc", "")
		assertAppError(t, err, 400, "Invalid sort column")

		// validation failure must never reach the store
		articleRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		topicRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	}
}

func TestListArticles_InvalidOrderShortCircuits(t *testing.T) {
	articleRepo := new(MockArticleRepo)
	topicRepo := new(MockTopicRepo)
	svc := service.NewArticleService(articleRepo, topicRepo)

	_, err := svc.ListArticles(context.Background(), "votes", "sideways", "")
	assertAppError(t, err, 400, "Invalid order query")
	articleRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListArticles_OrderIsCaseInsensitive(t *testing.T) {
	articleRepo := new(MockArticleRepo)
	topicRepo := new(MockTopicRepo)
	svc := service.NewArticleService(articleRepo, topicRepo)

	articleRepo.On("List", mock.Anything, "votes", "asc", "").
		Return([]models.ArticleSummary{}, nil)

	_, err := svc.ListArticles(context.Background(), "votes", "ASC", "")
	require.NoError(t, err)
	articleRepo.AssertExpectations(t)
}

func TestListArticles_InvalidTopicToken(t *testing.T) {
	articleRepo := new(MockArticleRepo)
	topicRepo := new(MockTopicRepo)
	svc := service.NewArticleService(articleRepo, topicRepo)

	_, err := svc.ListArticles(context.Background(), "", "", "cats'; --")
	assertAppError(t, err, 400, "Invalid topic query")
	topicRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestListArticles_UnknownTopicIs404(t *testing.T) {
	articleRepo := new(MockArticleRepo)
	topicRepo := new(MockTopicRepo)
	svc := service.NewArticleService(articleRepo, topicRepo)

	topicRepo.On("Exists", mock.Anything, "dogs").Return(false, nil)

	_, err := svc.ListArticles(context.Background(), "", "", "dogs")
	assertAppError(t, err, 404, "Topic not found")

	// an unknown topic must never silently produce an empty list
	articleRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListArticles_KnownTopicWithNoArticlesIsEmptyList(t *testing.T) {
	articleRepo := new(MockArticleRepo)
	topicRepo := new(MockTopicRepo)
	svc := service.NewArticleService(articleRepo, topicRepo)

	topicRepo.On("Exists", mock.Anything, "paper").Return(true, nil)
	articleRepo.On("List", mock.Anything, "created_at", "desc", "paper").
		Return([]models.ArticleSummary{}, nil)

	articles, err := svc.ListArticles(context.Background(), "", "", "paper")
	require.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestGetArticleByID_NotFound(t *testing.T) {
	articleRepo := new(MockArticleRepo)
	topicRepo := new(MockTopicRepo)
	svc := service.NewArticleService(articleRepo, topicRepo)

	articleRepo.On("GetByID", mock.Anything, int64(9999)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetArticleByID(context.Background(), 9999)
	assertAppError(t, err, 404, "Article not found")
}

func TestGetArticleByID_Found(t *testing.T) {
	articleRepo := new(MockArticleRepo)
	topicRepo := new(MockTopicRepo)
	svc := service.NewArticleService(articleRepo, topicRepo)

	detail := &models.ArticleDetail{ArticleID: 1, Title: "A", Body: "text", CommentCount: 3}
	articleRepo.On("GetByID", mock.Anything, int64(1)).Return(detail, nil)

	got, err := svc.GetArticleByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, detail, got)
}

func TestIncrementVotes_MissingArticleIs404(t *testing.T) {
	articleRepo := new(MockArticleRepo)
	topicRepo := new(MockTopicRepo)
	svc := service.NewArticleService(articleRepo, topicRepo)

	articleRepo.On("Exists", mock.Anything, int64(42)).Return(false, nil)

	_, err := svc.IncrementVotes(context.Background(), 42, 1)
	assertAppError(t, err, 404, "Article not found")
	articleRepo.AssertNotCalled(t, "IncrementVotes", mock.Anything, mock.Anything, mock.Anything)
}

func TestIncrementVotes_RoundTrip(t *testing.T) {
	articleRepo := new(MockArticleRepo)
	topicRepo := new(MockTopicRepo)
	svc := service.NewArticleService(articleRepo, topicRepo)

	articleRepo.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	articleRepo.On("IncrementVotes", mock.Anything, int64(1), 5).
		Return(&models.Article{ArticleID: 1, Votes: 105}, nil).Once()
	articleRepo.On("IncrementVotes", mock.Anything, int64(1), -5).
		Return(&models.Article{ArticleID: 1, Votes: 100}, nil).Once()

	up, err := svc.IncrementVotes(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 105, up.Votes)

	down, err := svc.IncrementVotes(context.Background(), 1, -5)
	require.NoError(t, err)
	assert.Equal(t, 100, down.Votes)
}

func TestIncrementVotes_ArticleDeletedBetweenProbeAndUpdate(t *testing.T) {
	articleRepo := new(MockArticleRepo)
	topicRepo := new(MockTopicRepo)
	svc := service.NewArticleService(articleRepo, topicRepo)

	articleRepo.On("Exists", mock.Anything, int64(7)).Return(true, nil)
	articleRepo.On("IncrementVotes", mock.Anything, int64(7), 3).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.IncrementVotes(context.Background(), 7, 3)
	assertAppError(t, err, 404, "Article not found")
}
