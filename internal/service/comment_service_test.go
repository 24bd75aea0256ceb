package service

import (
	"context"
	"strings"
	"testing"

	"pinboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createPost(t *testing.T, db *gorm.DB) *models.Post {
	t.Helper()
	post := &models.Post{Title: "T", Content: "C", Author: "A"}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestCommentService_CreateComment(t *testing.T) {
	svc, db := newCommentService(t)
	ctx := context.Background()
	post := createPost(t, db)

	comment, err := svc.CreateComment(ctx, CreateCommentInput{PostID: post.ID, Content: "hi", Author: "B"})
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Equal(t, post.ID, comment.PostID)
}

func TestCommentService_CreateComment_PostMissing(t *testing.T) {
	svc, db := newCommentService(t)

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{PostID: 999, Content: "hi", Author: "B"})
	assertAppError(t, err, models.CodeNotFound)

	// nothing was inserted
	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCommentService_CreateComment_Validation(t *testing.T) {
	svc, db := newCommentService(t)
	ctx := context.Background()
	post := createPost(t, db)

	cases := []struct {
		name string
		in   CreateCommentInput
	}{
		{"missing content", CreateCommentInput{PostID: post.ID, Author: "B"}},
		{"content too long", CreateCommentInput{PostID: post.ID, Content: strings.Repeat("x", 10001), Author: "B"}},
		{"missing author", CreateCommentInput{PostID: post.ID, Content: "hi"}},
		{"author too long", CreateCommentInput{PostID: post.ID, Content: "hi", Author: strings.Repeat("x", 51)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateComment(ctx, tc.in)
			assertAppError(t, err, models.CodeValidation)
		})
	}
}

func TestCommentService_GetComment_WrongPostIsAbsent(t *testing.T) {
	svc, db := newCommentService(t)
	ctx := context.Background()
	post := createPost(t, db)
	other := createPost(t, db)

	comment, err := svc.CreateComment(ctx, CreateCommentInput{PostID: post.ID, Content: "hi", Author: "B"})
	require.NoError(t, err)

	got, err := svc.GetComment(ctx, post.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, comment.ID, got.ID)

	// the same comment reached through another post reads as missing
	_, err = svc.GetComment(ctx, other.ID, comment.ID)
	assertAppError(t, err, models.CodeNotFound)

	_, err = svc.GetComment(ctx, post.ID, 999)
	assertAppError(t, err, models.CodeNotFound)
}

func TestCommentService_ListComments(t *testing.T) {
	svc, db := newCommentService(t)
	ctx := context.Background()
	post := createPost(t, db)

	for i := 0; i < 2; i++ {
		_, err := svc.CreateComment(ctx, CreateCommentInput{PostID: post.ID, Content: "hi", Author: "B"})
		require.NoError(t, err)
	}

	comments, err := svc.ListComments(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 2)

	_, err = svc.ListComments(ctx, 999)
	assertAppError(t, err, models.CodeNotFound)
}

func TestCommentService_UpdateComment(t *testing.T) {
	svc, db := newCommentService(t)
	ctx := context.Background()
	post := createPost(t, db)

	comment, err := svc.CreateComment(ctx, CreateCommentInput{PostID: post.ID, Content: "hi", Author: "B"})
	require.NoError(t, err)

	updated, err := svc.UpdateComment(ctx, UpdateCommentInput{PostID: post.ID, CommentID: comment.ID, Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	_, err = svc.UpdateComment(ctx, UpdateCommentInput{PostID: post.ID, CommentID: comment.ID, Content: ""})
	assertAppError(t, err, models.CodeValidation)

	_, err = svc.UpdateComment(ctx, UpdateCommentInput{PostID: post.ID, CommentID: 999, Content: "x"})
	assertAppError(t, err, models.CodeNotFound)
}

func TestCommentService_DeleteComment(t *testing.T) {
	svc, db := newCommentService(t)
	ctx := context.Background()
	post := createPost(t, db)

	comment, err := svc.CreateComment(ctx, CreateCommentInput{PostID: post.ID, Content: "hi", Author: "B"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(ctx, post.ID, comment.ID))

	_, err = svc.GetComment(ctx, post.ID, comment.ID)
	assertAppError(t, err, models.CodeNotFound)

	err = svc.DeleteComment(ctx, post.ID, comment.ID)
	assertAppError(t, err, models.CodeNotFound)
}
