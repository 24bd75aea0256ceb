package service

import (
	"context"

	"pinboard/internal/models"
	"pinboard/internal/repository"

	"gorm.io/gorm"
)

const maxCommentLen = 10000

// CommentService orchestrates comment CRUD scoped to a parent post.
type CommentService struct {
	db          *gorm.DB
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	PostID  uint
	Content string
	Author  string
}

type UpdateCommentInput struct {
	PostID    uint
	CommentID uint
	Content   string
}

func NewCommentService(
	db *gorm.DB,
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
) *CommentService {
	return &CommentService{
		db:          db,
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment inserts a comment after verifying the parent post exists.
// The existence check and the insert share one transaction so the parent
// cannot vanish between them.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}
	if in.Author == "" {
		return nil, models.NewValidationError("Author is required")
	}
	if len(in.Author) > maxAuthorLen {
		return nil, models.NewValidationError("Author too long (max 50 characters)")
	}

	comment := &models.Comment{
		Content: in.Content,
		Author:  in.Author,
		PostID:  in.PostID,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := repository.NewPostRepository(tx).ExistsByID(ctx, in.PostID)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewNotFoundError("Post", in.PostID)
		}
		return repository.NewCommentRepository(tx).Create(ctx, comment)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// GetComment fetches a comment and verifies it belongs to the given post;
// a comment reached through the wrong post path is reported as absent.
func (s *CommentService) GetComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, asNotFound(err, "Comment", commentID)
	}
	if comment.PostID != postID {
		return nil, models.NewNotFoundError("Comment", commentID)
	}
	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	exists, err := s.postRepo.ExistsByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

// UpdateComment mutates the comment content in place; the modification
// timestamp is refreshed by the store on save.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.GetComment(ctx, in.PostID, in.CommentID)
	if err != nil {
		return nil, err
	}

	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment.Content = in.Content
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.NewCommentRepository(tx).Update(ctx, comment)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, postID, commentID uint) error {
	if _, err := s.GetComment(ctx, postID, commentID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.NewCommentRepository(tx).Delete(ctx, commentID)
	})
}
