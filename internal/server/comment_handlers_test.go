package server

import (
	"fmt"
	"testing"

	"pinboard/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	_, app, db := newTestServer(t)
	post := seedPost(t, db)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/posts/%d/comments", post.ID), fiber.Map{
		"content": "hi", "author": "B",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var comment models.Comment
	decodeBody(t, resp, &comment)
	assert.NotZero(t, comment.ID)
	assert.Equal(t, post.ID, comment.PostID)
}

func TestCreateComment_PostMissing(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/posts/999/comments", fiber.Map{
		"content": "hi", "author": "B",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateComment_ValidationFieldMap(t *testing.T) {
	_, app, db := newTestServer(t)
	post := seedPost(t, db)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/posts/%d/comments", post.ID), fiber.Map{})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Fields, "content")
	assert.Contains(t, body.Fields, "author")
}

func TestGetComments(t *testing.T) {
	_, app, db := newTestServer(t)
	post := seedPost(t, db)
	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&models.Comment{Content: "c", Author: "B", PostID: post.ID}).Error)
	}

	resp := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/posts/%d/comments", post.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var comments []models.Comment
	decodeBody(t, resp, &comments)
	assert.Len(t, comments, 2)
}

func TestGetComments_PostMissing(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/posts/999/comments", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetComment_WrongPost(t *testing.T) {
	_, app, db := newTestServer(t)
	post := seedPost(t, db)
	other := seedPost(t, db)
	comment := &models.Comment{Content: "hi", Author: "B", PostID: post.ID}
	require.NoError(t, db.Create(comment).Error)

	resp := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, comment.ID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/posts/%d/comments/%d", other.ID, comment.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateComment(t *testing.T) {
	_, app, db := newTestServer(t)
	post := seedPost(t, db)
	comment := &models.Comment{Content: "hi", Author: "B", PostID: post.ID}
	require.NoError(t, db.Create(comment).Error)

	resp := doJSON(t, app, fiber.MethodPut,
		fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, comment.ID),
		fiber.Map{"content": "edited"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Comment
	decodeBody(t, resp, &updated)
	assert.Equal(t, "edited", updated.Content)
}

func TestDeleteComment(t *testing.T) {
	_, app, db := newTestServer(t)
	post := seedPost(t, db)
	comment := &models.Comment{Content: "hi", Author: "B", PostID: post.ID}
	require.NoError(t, db.Create(comment).Error)

	path := fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, comment.ID)

	resp := doJSON(t, app, fiber.MethodDelete, path, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, path, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
