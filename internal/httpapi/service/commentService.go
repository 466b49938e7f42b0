package service

import (
	"context"

	"newshub/internal/httpapi/apperrors"
	"newshub/internal/httpapi/models"
	"newshub/internal/httpapi/repository"
)

type CommentService interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Create(ctx context.Context, articleID int64, username, body string) (*models.Comment, error)
	Delete(ctx context.Context, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
}

func NewCommentService(commentRepo repository.CommentRepository, articleRepo repository.ArticleRepository, userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

// ListByArticle returns the article's comments, newest first. The
// article is checked first so an unknown id is a 404 rather than an
// empty list.
func (s *commentService) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	found, err := s.articleRepo.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NotFound("Article not found")
	}
	return s.commentRepo.GetByArticle(ctx, articleID)
}

// Create inserts a comment after both referenced rows are confirmed to
// exist: the article gate runs before the author gate, and each absence
// has its own fixed message. Votes always start at zero and created_at
// is assigned by the store.
func (s *commentService) Create(ctx context.Context, articleID int64, username, body string) (*models.Comment, error) {
	found, err := s.articleRepo.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NotFound("Article not found")
	}

	found, err = s.userRepo.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NotFound("User not found")
	}

	comment := &models.Comment{
		ArticleID: &articleID,
		Author:    &username,
		Body:      body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes exactly one comment. Deleting an id that never existed
// or was already deleted fails with the same 404 each time.
func (s *commentService) Delete(ctx context.Context, commentID int64) error {
	found, err := s.commentRepo.Exists(ctx, commentID)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NotFound("Comment not found")
	}
	return s.commentRepo.Delete(ctx, commentID)
}
