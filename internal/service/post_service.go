package service

import (
	"context"

	"pinboard/internal/models"
	"pinboard/internal/repository"

	"gorm.io/gorm"
)

const (
	maxTitleLen   = 200
	maxAuthorLen  = 50
	maxContentLen = 50000
)

// PostService orchestrates post CRUD and search. Every write runs inside a
// single transaction opened at the method boundary.
type PostService struct {
	db       *gorm.DB
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	Title   string
	Content string
	Author  string
}

type UpdatePostInput struct {
	PostID  uint
	Title   string
	Content string
}

func NewPostService(db *gorm.DB, postRepo repository.PostRepository) *PostService {
	return &PostService{
		db:       db,
		postRepo: postRepo,
	}
}

func validatePostFields(title, content, author string) error {
	if title == "" {
		return models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 200 characters)")
	}
	if content == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxContentLen {
		return models.NewValidationError("Content too long (max 50000 characters)")
	}
	if author == "" {
		return models.NewValidationError("Author is required")
	}
	if len(author) > maxAuthorLen {
		return models.NewValidationError("Author too long (max 50 characters)")
	}
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validatePostFields(in.Title, in.Content, in.Author); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		Author:  in.Author,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.NewPostRepository(tx).Create(ctx, post)
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "Post", id)
	}
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, page models.PageRequest) (*models.Page[models.Post], error) {
	return s.postRepo.List(ctx, page)
}

func (s *PostService) SearchPosts(ctx context.Context, criteria repository.PostSearchCriteria, page models.PageRequest) (*models.Page[models.Post], error) {
	return s.postRepo.Search(ctx, criteria, page)
}

func (s *PostService) CountByAuthor(ctx context.Context) (map[string]int64, error) {
	return s.postRepo.CountByAuthor(ctx)
}

// UpdatePost mutates the post in place; the modification timestamp is
// refreshed by the store on save.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, asNotFound(err, "Post", in.PostID)
	}

	if err := validatePostFields(in.Title, in.Content, post.Author); err != nil {
		return nil, err
	}
	post.Title = in.Title
	post.Content = in.Content

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.NewPostRepository(tx).Update(ctx, post)
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post, its comments, and its likes in one
// all-or-nothing transaction. Comments cascade at the schema level as well;
// likes have no storage-level cascade and are deleted here explicitly.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		return asNotFound(err, "Post", id)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.NewLikeRepository(tx).DeleteByPost(ctx, id); err != nil {
			return err
		}
		if err := repository.NewCommentRepository(tx).DeleteByPost(ctx, id); err != nil {
			return err
		}
		return repository.NewPostRepository(tx).Delete(ctx, id)
	})
}
