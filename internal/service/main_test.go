package service

import (
	"errors"
	"testing"

	"pinboard/internal/models"
	"pinboard/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// Write paths open real transactions, so services are tested against a
// live store rather than stubs.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func newPostService(t *testing.T) (*PostService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewPostService(db, repository.NewPostRepository(db)), db
}

func newCommentService(t *testing.T) (*CommentService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewCommentService(db, repository.NewCommentRepository(db), repository.NewPostRepository(db)), db
}

func newLikeService(t *testing.T) (*LikeService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewLikeService(db, repository.NewLikeRepository(db), repository.NewPostRepository(db)), db
}

func newDetailService(db *gorm.DB) *PostDetailService {
	return NewPostDetailService(repository.NewPostRepository(db), repository.NewLikeRepository(db))
}

// assertAppError checks that err is an AppError carrying the given code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, appErr.Code, appErr.Message)
	}
}
