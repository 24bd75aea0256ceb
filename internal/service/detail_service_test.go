package service

import (
	"context"
	"testing"

	"pinboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostDetailService_BothStrategiesAgree(t *testing.T) {
	db := setupTestDB(t)
	svc := newDetailService(db)
	ctx := context.Background()

	post := &models.Post{Title: "T", Content: "C", Author: "A"}
	require.NoError(t, db.Create(post).Error)
	for _, content := range []string{"first", "second"} {
		require.NoError(t, db.Create(&models.Comment{Content: content, Author: "B", PostID: post.ID}).Error)
	}
	for userID := uint(1); userID <= 3; userID++ {
		require.NoError(t, db.Create(&models.Like{PostID: post.ID, UserID: userID}).Error)
	}

	seq, err := svc.GetDetail(ctx, post.ID)
	require.NoError(t, err)
	conc, err := svc.GetDetailConcurrent(ctx, post.ID)
	require.NoError(t, err)

	assert.Equal(t, seq.Post.ID, conc.Post.ID)
	assert.Equal(t, seq.Post.Title, conc.Post.Title)
	assert.Len(t, seq.Post.Comments, 2)
	assert.Len(t, conc.Post.Comments, 2)
	assert.Equal(t, int64(3), seq.LikeCount)
	assert.Equal(t, int64(3), conc.LikeCount)
}

func TestPostDetailService_NotFound_BothStrategies(t *testing.T) {
	db := setupTestDB(t)
	svc := newDetailService(db)
	ctx := context.Background()

	_, err := svc.GetDetail(ctx, 999)
	assertAppError(t, err, models.CodeNotFound)

	_, err = svc.GetDetailConcurrent(ctx, 999)
	assertAppError(t, err, models.CodeNotFound)
}

// A missing post wins over the like count even though the like read
// succeeds with zero for a nonexistent post.
func TestPostDetailService_Concurrent_PostAbsencePrecedence(t *testing.T) {
	db := setupTestDB(t)
	svc := newDetailService(db)

	// likes referencing a post id that has no post row
	require.NoError(t, db.Create(&models.Like{PostID: 555, UserID: 1}).Error)

	_, err := svc.GetDetailConcurrent(context.Background(), 555)
	assertAppError(t, err, models.CodeNotFound)
}

func TestPostDetailService_ZeroCommentsZeroLikes(t *testing.T) {
	db := setupTestDB(t)
	svc := newDetailService(db)
	ctx := context.Background()

	post := &models.Post{Title: "T", Content: "C", Author: "A"}
	require.NoError(t, db.Create(post).Error)

	for _, fetch := range []func(context.Context, uint) (*models.PostDetail, error){
		svc.GetDetail,
		svc.GetDetailConcurrent,
	} {
		detail, err := fetch(ctx, post.ID)
		require.NoError(t, err)
		assert.Empty(t, detail.Post.Comments)
		assert.Zero(t, detail.LikeCount)
	}
}

// Repeated reads must not mutate anything.
func TestPostDetailService_ReadsAreIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := newDetailService(db)
	ctx := context.Background()

	post := &models.Post{Title: "T", Content: "C", Author: "A"}
	require.NoError(t, db.Create(post).Error)
	require.NoError(t, db.Create(&models.Like{PostID: post.ID, UserID: 1}).Error)

	for i := 0; i < 5; i++ {
		detail, err := svc.GetDetailConcurrent(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), detail.LikeCount)
	}

	var likes int64
	require.NoError(t, db.Model(&models.Like{}).Count(&likes).Error)
	assert.Equal(t, int64(1), likes)
}
