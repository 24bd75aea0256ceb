package service

import (
	"context"
	"sync"
	"time"

	"pinboard/internal/models"
	"pinboard/internal/observability"
	"pinboard/internal/repository"
)

// PostDetailService assembles the post-detail view from two independent
// reads: post+comments and the like count. It offers two interchangeable
// execution strategies that produce identical payloads; the pair exists so
// callers can compare sequential against concurrent fan-out latency.
type PostDetailService struct {
	postRepo repository.PostRepository
	likeRepo repository.LikeRepository
}

func NewPostDetailService(postRepo repository.PostRepository, likeRepo repository.LikeRepository) *PostDetailService {
	return &PostDetailService{
		postRepo: postRepo,
		likeRepo: likeRepo,
	}
}

// GetDetail is the sequential strategy and the default path for ordinary
// detail reads: fetch post+comments, fail fast on absence, then fetch the
// like count. Total latency is the sum of the two round trips.
func (s *PostDetailService) GetDetail(ctx context.Context, id uint) (*models.PostDetail, error) {
	start := time.Now()

	post, err := s.postRepo.GetByIDWithComments(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "Post", id)
	}

	likeCount, err := s.likeRepo.CountByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	observability.DetailFetchLatency.WithLabelValues("sequential").Observe(time.Since(start).Seconds())
	return &models.PostDetail{Post: post, LikeCount: likeCount}, nil
}

// GetDetailConcurrent is the concurrent strategy: both reads are dispatched
// as independently scheduled goroutines against separate pooled connections
// and the caller blocks until both settle. Total latency approaches the
// maximum of the two round trips instead of their sum.
//
// The two reads have no data dependency on each other and neither writes
// any state, so they need no synchronization beyond the join. Do not extend
// this pattern to operations where one read depends on the other's result.
func (s *PostDetailService) GetDetailConcurrent(ctx context.Context, id uint) (*models.PostDetail, error) {
	start := time.Now()

	var (
		wg        sync.WaitGroup
		post      *models.Post
		postErr   error
		likeCount int64
		likeErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		post, postErr = s.postRepo.GetByIDWithComments(ctx, id)
	}()
	go func() {
		defer wg.Done()
		likeCount, likeErr = s.likeRepo.CountByPost(ctx, id)
	}()
	wg.Wait()

	// Absence of the post always wins: the like-count read has no existence
	// check of its own and would happily report zero for a missing post, so
	// its result (error or value) is discarded whenever the post read fails.
	if postErr != nil {
		return nil, asNotFound(postErr, "Post", id)
	}
	if likeErr != nil {
		return nil, likeErr
	}

	observability.DetailFetchLatency.WithLabelValues("concurrent").Observe(time.Since(start).Seconds())
	return &models.PostDetail{Post: post, LikeCount: likeCount}, nil
}
