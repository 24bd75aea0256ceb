package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pinboard/internal/config"
	"pinboard/internal/models"
	"pinboard/internal/repository"
	"pinboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires a Server over an in-memory SQLite database and
// returns it with a routed Fiber app. The Prometheus middleware is left
// nil: registering collectors once per test would collide in the default
// registry.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Post{}, &models.Comment{}, &models.Like{}); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	srv := &Server{
		config:         &config.Config{Port: "8080", Env: "test"},
		db:             db,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		likeRepo:       likeRepo,
		postService:    service.NewPostService(db, postRepo),
		commentService: service.NewCommentService(db, commentRepo, postRepo),
		likeService:    service.NewLikeService(db, likeRepo, postRepo),
		detailService:  service.NewPostDetailService(postRepo, likeRepo),
	}

	app := fiber.New()
	srv.SetupRoutes(app)
	return srv, app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func seedPost(t *testing.T, db *gorm.DB) *models.Post {
	t.Helper()
	post := &models.Post{Title: "T", Content: "C", Author: "A"}
	require.NoError(t, db.Create(post).Error)
	return post
}
