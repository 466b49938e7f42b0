package repository

import (
	"context"
	"fmt"
	"strings"

	"newshub/internal/httpapi/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	List(ctx context.Context, sortBy, order, topic string) ([]models.ArticleSummary, error)
	GetByID(ctx context.Context, articleID int64) (*models.ArticleDetail, error)
	Exists(ctx context.Context, articleID int64) (bool, error)
	IncrementVotes(ctx context.Context, articleID int64, delta int) (*models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

const articleSummaryColumns = `articles.article_id, articles.title, articles.topic, articles.author,
	articles.created_at, articles.votes, articles.article_img_url,
	COUNT(comments.comment_id)::INT AS comment_count`

// List runs the listing query. sortBy and order must already have
// passed the allow-list; they are spliced into the ORDER BY clause
// because identifiers cannot be bound as parameters. The topic filter
// is always a bound parameter.
func (r *articleRepository) List(ctx context.Context, sortBy, order, topic string) ([]models.ArticleSummary, error) {
	var (
		where string
		args  []interface{}
	)
	if topic != "" {
		where = "WHERE articles.topic = ?"
		args = append(args, topic)
	}

	query := fmt.Sprintf(`SELECT %s
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id
		%s
		GROUP BY articles.article_id
		ORDER BY %s %s`,
		articleSummaryColumns, where, sortBy, strings.ToUpper(order))

	list := []models.ArticleSummary{}
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return list, nil
}

func (r *articleRepository) GetByID(ctx context.Context, articleID int64) (*models.ArticleDetail, error) {
	var a models.ArticleDetail
	result := r.db.WithContext(ctx).Raw(`SELECT articles.*,
		COUNT(comments.comment_id)::INT AS comment_count
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id
		WHERE articles.article_id = ?
		GROUP BY articles.article_id`, articleID).Scan(&a)
	if result.Error != nil {
		return nil, fmt.Errorf("get article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (r *articleRepository) Exists(ctx context.Context, articleID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Article{}).
		Where("article_id = ?", articleID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check article: %w", err)
	}
	return count > 0, nil
}

// IncrementVotes applies the delta in a single conditional update and
// reports a missing row through the affected count, so a parent deleted
// after the caller's existence probe cannot produce a phantom update.
func (r *articleRepository) IncrementVotes(ctx context.Context, articleID int64, delta int) (*models.Article, error) {
	var a models.Article
	result := r.db.WithContext(ctx).Raw(`UPDATE articles
		SET votes = votes + ?
		WHERE article_id = ?
		RETURNING *`, delta, articleID).Scan(&a)
	if result.Error != nil {
		return nil, fmt.Errorf("increment votes: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}
