package service

import (
	"context"

	"pinboard/internal/models"
	"pinboard/internal/repository"

	"gorm.io/gorm"
)

// LikeService orchestrates like/unlike actions. Both preconditions of a
// like (the post exists, the user has not already liked it) are verified
// inside the same transaction as the insert.
type LikeService struct {
	db       *gorm.DB
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(
	db *gorm.DB,
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
) *LikeService {
	return &LikeService{
		db:       db,
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

func (s *LikeService) LikePost(ctx context.Context, postID, userID uint) (*models.Like, error) {
	like := &models.Like{PostID: postID, UserID: userID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := repository.NewPostRepository(tx).ExistsByID(ctx, postID)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewNotFoundError("Post", postID)
		}

		likeRepo := repository.NewLikeRepository(tx)
		liked, err := likeRepo.Exists(ctx, postID, userID)
		if err != nil {
			return err
		}
		if liked {
			return models.NewConflictError("User has already liked this post")
		}
		return likeRepo.Create(ctx, like)
	})
	if err != nil {
		return nil, err
	}
	return like, nil
}

// UnlikePost checks the like exists before deleting it: the repository
// delete does not itself report not-found, so removing a nonexistent like
// is surfaced here rather than passing silently.
func (s *LikeService) UnlikePost(ctx context.Context, postID, userID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		likeRepo := repository.NewLikeRepository(tx)
		liked, err := likeRepo.Exists(ctx, postID, userID)
		if err != nil {
			return err
		}
		if !liked {
			return models.NewNotFoundError("Like", postID)
		}
		return likeRepo.Delete(ctx, postID, userID)
	})
}

// CountLikes intentionally has no post-existence check: it reports zero for
// a nonexistent post, matching the detail aggregation's independent read.
func (s *LikeService) CountLikes(ctx context.Context, postID uint) (int64, error) {
	return s.likeRepo.CountByPost(ctx, postID)
}

func (s *LikeService) HasLiked(ctx context.Context, postID, userID uint) (bool, error) {
	return s.likeRepo.Exists(ctx, postID, userID)
}
