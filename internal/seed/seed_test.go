package seed

import (
	"testing"

	"pinboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Post{}, &models.Comment{}, &models.Like{}); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

func TestFactory_BuildPost(t *testing.T) {
	f := NewFactory(setupTestDB(t), DefaultOptions())

	post := f.BuildPost()
	assert.NotEmpty(t, post.Title)
	assert.NotEmpty(t, post.Content)
	assert.NotEmpty(t, post.Author)
	assert.False(t, post.CreatedAt.IsZero())

	override := f.BuildPost(func(p *models.Post) { p.Author = "fixed" })
	assert.Equal(t, "fixed", override.Author)
}

func TestFactory_Run(t *testing.T) {
	db := setupTestDB(t)
	opts := Options{Posts: 5, MaxCommentsPerPost: 3, MaxLikesPerPost: 4, MaxDays: 30}

	require.NoError(t, NewFactory(db, opts).Run())

	var posts int64
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	assert.Equal(t, int64(5), posts)

	// every comment and like references an existing post
	var orphans int64
	require.NoError(t, db.Model(&models.Comment{}).
		Where("post_id NOT IN (SELECT id FROM posts)").
		Count(&orphans).Error)
	assert.Zero(t, orphans)

	require.NoError(t, db.Model(&models.Like{}).
		Where("post_id NOT IN (SELECT id FROM posts)").
		Count(&orphans).Error)
	assert.Zero(t, orphans)
}
