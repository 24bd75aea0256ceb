// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"pinboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls the volume and spread of generated data.
type Options struct {
	Posts              int
	MaxCommentsPerPost int
	MaxLikesPerPost    int
	MaxDays            int
}

// DefaultOptions is a modest data set for local development.
func DefaultOptions() Options {
	return Options{
		Posts:              25,
		MaxCommentsPerPost: 8,
		MaxLikesPerPost:    15,
		MaxDays:            90,
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// BuildPost constructs a post with a realistic created_at spread but does
// not persist it.
func (f *Factory) BuildPost(overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		Title:   gofakeit.Sentence(5),
		Content: gofakeit.Paragraph(1, 3, 5, "\n"),
		Author:  gofakeit.Username(),
	}

	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rand.Intn(maxDays)
	hoursBack := f.rand.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePost builds and persists a post.
func (f *Factory) CreatePost(overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(overrides...)
	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("seed post: %w", err)
	}
	return post, nil
}

// CreateComment persists a comment attached to the given post.
func (f *Factory) CreateComment(post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(12),
		Author:  gofakeit.Username(),
		PostID:  post.ID,
	}
	for _, override := range overrides {
		override(comment)
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("seed comment: %w", err)
	}
	return comment, nil
}

// CreateLike persists a like from the given user on the given post.
func (f *Factory) CreateLike(post *models.Post, userID uint) (*models.Like, error) {
	like := &models.Like{PostID: post.ID, UserID: userID}
	if err := f.db.Create(like).Error; err != nil {
		return nil, fmt.Errorf("seed like: %w", err)
	}
	return like, nil
}

// Run populates the database with posts, comments, and likes. Likes use
// distinct user IDs per post so the uniqueness constraint always holds.
func (f *Factory) Run() error {
	for i := 0; i < f.opts.Posts; i++ {
		post, err := f.CreatePost()
		if err != nil {
			return err
		}

		comments := f.rand.Intn(f.opts.MaxCommentsPerPost + 1)
		for j := 0; j < comments; j++ {
			if _, err := f.CreateComment(post); err != nil {
				return err
			}
		}

		likes := f.rand.Intn(f.opts.MaxLikesPerPost + 1)
		for userID := uint(1); userID <= uint(likes); userID++ {
			if _, err := f.CreateLike(post, userID); err != nil {
				return err
			}
		}
	}
	return nil
}
