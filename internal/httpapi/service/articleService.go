package service

import (
	"context"
	"errors"

	"newshub/internal/httpapi/apperrors"
	"newshub/internal/httpapi/models"
	"newshub/internal/httpapi/repository"

	"gorm.io/gorm"
)

type ArticleService interface {
	ListArticles(ctx context.Context, sortBy, order, topic string) ([]models.ArticleSummary, error)
	GetArticleByID(ctx context.Context, articleID int64) (*models.ArticleDetail, error)
	IncrementVotes(ctx context.Context, articleID int64, delta int) (*models.Article, error)
}

type articleService struct {
	articleRepo repository.ArticleRepository
	topicRepo   repository.TopicRepository
}

func NewArticleService(articleRepo repository.ArticleRepository, topicRepo repository.TopicRepository) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		topicRepo:   topicRepo,
	}
}

const (
	defaultSortColumn = "created_at"
	defaultOrder      = "desc"
)

// ListArticles validates the caller-supplied query parameters and runs
// the listing. Validation failures return before any database access.
// An unknown topic is a 404; a known topic with no articles is an empty
// list.
func (s *articleService) ListArticles(ctx context.Context, sortBy, order, topic string) ([]models.ArticleSummary, error) {
	if sortBy == "" {
		sortBy = defaultSortColumn
	}
	if order == "" {
		order = defaultOrder
	}

	sortBy, err := repository.ValidateSortColumn(sortBy)
	if err != nil {
		return nil, err
	}
	order, err = repository.ValidateOrder(order)
	if err != nil {
		return nil, err
	}

	if topic != "" {
		if _, err := repository.ValidateTopicSlug(topic); err != nil {
			return nil, err
		}
		found, err := s.topicRepo.Exists(ctx, topic)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, apperrors.NotFound("Topic not found")
		}
	}

	return s.articleRepo.List(ctx, sortBy, order, topic)
}

func (s *articleService) GetArticleByID(ctx context.Context, articleID int64) (*models.ArticleDetail, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Article not found")
		}
		return nil, err
	}
	return article, nil
}

// IncrementVotes probes for the article first so a missing id reports
// 404 before anything touches the row. The probe and the update run as
// two separate statements, not a transaction; the update itself checks
// its affected count, so a concurrent delete between the two surfaces
// as the same 404 rather than a phantom write.
func (s *articleService) IncrementVotes(ctx context.Context, articleID int64, delta int) (*models.Article, error) {
	found, err := s.articleRepo.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NotFound("Article not found")
	}

	article, err := s.articleRepo.IncrementVotes(ctx, articleID, delta)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Article not found")
		}
		return nil, err
	}
	return article, nil
}
