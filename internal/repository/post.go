// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"time"

	"pinboard/internal/models"

	"gorm.io/gorm"
)

// PostSearchCriteria is a plain structure of optional predicates. All
// provided predicates are conjoined; nil fields impose no constraint.
type PostSearchCriteria struct {
	Title           *string
	Content         *string
	Author          *string
	Authors         []string
	CreatedFrom     *time.Time
	CreatedTo       *time.Time
	UpdatedFrom     *time.Time
	UpdatedTo       *time.Time
	MinCommentCount *int
	MaxCommentCount *int
	Keyword         *string
}

// AuthorCount is one row of the count-by-author aggregate.
type AuthorCount struct {
	Author string
	Count  int64
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetByIDWithComments(ctx context.Context, id uint) (*models.Post, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, page models.PageRequest) (*models.Page[models.Post], error)
	Search(ctx context.Context, criteria PostSearchCriteria, page models.PageRequest) (*models.Page[models.Post], error)
	CountByAuthor(ctx context.Context) (map[string]int64, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByIDWithComments fetches the post and its full comment collection in
// one repository round trip (Preload issues a single IN query for the
// comments rather than loading them row by row).
func (r *postRepository) GetByIDWithComments(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postRepository) List(ctx context.Context, page models.PageRequest) (*models.Page[models.Post], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []models.Post
	err := r.applySort(r.db.WithContext(ctx), page).
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return &models.Page[models.Post]{
		Items:      posts,
		Page:       page.Page,
		Size:       page.Size,
		TotalCount: total,
	}, nil
}

// applySort appends the ORDER BY clause for the requested sort column.
// The column is whitelisted so user input can never reach the SQL text.
func (r *postRepository) applySort(db *gorm.DB, page models.PageRequest) *gorm.DB {
	column := "created_at"
	switch page.SortBy {
	case "title", "author", "updated_at", "created_at":
		column = page.SortBy
	}
	direction := "DESC"
	if page.Direction == "asc" || page.Direction == "ASC" {
		direction = "ASC"
	}
	return db.Order(column + " " + direction)
}

func (r *postRepository) Search(ctx context.Context, criteria PostSearchCriteria, page models.PageRequest) (*models.Page[models.Post], error) {
	base := r.applyCriteria(r.db.WithContext(ctx).Model(&models.Post{}), criteria)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []models.Post
	err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return &models.Page[models.Post]{
		Items:      posts,
		Page:       page.Page,
		Size:       page.Size,
		TotalCount: total,
	}, nil
}

// applyCriteria is the single conjunction-building routine for post search.
// Comment-count bounds filter on an aggregate, so they use a correlated
// COUNT subquery (the column does not exist on the posts table).
func (r *postRepository) applyCriteria(db *gorm.DB, c PostSearchCriteria) *gorm.DB {
	if c.Title != nil {
		db = db.Where("LOWER(title) LIKE ?", "%"+lowered(*c.Title)+"%")
	}
	if c.Content != nil {
		db = db.Where("LOWER(content) LIKE ?", "%"+lowered(*c.Content)+"%")
	}
	if c.Author != nil {
		db = db.Where("author = ?", *c.Author)
	}
	if len(c.Authors) > 0 {
		db = db.Where("author IN ?", c.Authors)
	}
	if c.CreatedFrom != nil {
		db = db.Where("created_at >= ?", *c.CreatedFrom)
	}
	if c.CreatedTo != nil {
		db = db.Where("created_at <= ?", *c.CreatedTo)
	}
	if c.UpdatedFrom != nil {
		db = db.Where("updated_at >= ?", *c.UpdatedFrom)
	}
	if c.UpdatedTo != nil {
		db = db.Where("updated_at <= ?", *c.UpdatedTo)
	}
	if c.MinCommentCount != nil {
		db = db.Where("(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) >= ?", *c.MinCommentCount)
	}
	if c.MaxCommentCount != nil {
		db = db.Where("(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) <= ?", *c.MaxCommentCount)
	}
	if c.Keyword != nil {
		like := "%" + lowered(*c.Keyword) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", like, like)
	}
	return db
}

func (r *postRepository) CountByAuthor(ctx context.Context) (map[string]int64, error) {
	var rows []AuthorCount
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("author, COUNT(*) as count").
		Group("author").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Author] = row.Count
	}
	return counts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}
