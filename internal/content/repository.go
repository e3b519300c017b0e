package content

import (
	"context"
	"time"

	"gorm.io/gorm"

	"contentshop/internal/dbmysql"
)

// Filter narrows a content listing. Zero-value fields are ignored, so an
// empty filter returns the full visible listing.
type Filter struct {
	ViewerID uint64 // restricts drafts/archived to this owner; 0 means anonymous
	Category string
	Status   string
	Search   string // matched against title, body and tags
	Limit    int
	Offset   int
}

type ContentRepository interface {
	CreateContent(ctx context.Context, c *dbmysql.Content) error
	GetContentByID(ctx context.Context, contentID int64) (*dbmysql.Content, error)
	UpdateContent(ctx context.Context, c *dbmysql.Content) error
	DeleteContent(ctx context.Context, contentID int64) error
	ListContent(ctx context.Context, f Filter) ([]dbmysql.Content, error)
	ListPublished(ctx context.Context, limit int) ([]dbmysql.Content, error)
	CountContent(ctx context.Context) (int64, error)
}

type StoryRepository interface {
	CreateStory(ctx context.Context, s *dbmysql.Story) error
	ListActiveStories(ctx context.Context, now time.Time) ([]dbmysql.Story, error)
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepo(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) CreateContent(ctx context.Context, c *dbmysql.Content) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contentRepository) GetContentByID(ctx context.Context, contentID int64) (*dbmysql.Content, error) {
	var c dbmysql.Content
	err := r.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contentRepository) UpdateContent(ctx context.Context, c *dbmysql.Content) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *contentRepository) DeleteContent(ctx context.Context, contentID int64) error {
	return r.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		Delete(&dbmysql.Content{}).Error
}

func (r *contentRepository) ListContent(ctx context.Context, f Filter) ([]dbmysql.Content, error) {
	q := r.db.WithContext(ctx).Model(&dbmysql.Content{})

	// Drafts and archived items are only visible to their owner.
	if f.ViewerID != 0 {
		q = q.Where("user_id = ? OR status = ?", f.ViewerID, dbmysql.StatusPublished)
	} else {
		q = q.Where("status = ?", dbmysql.StatusPublished)
	}

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR body LIKE ? OR tags LIKE ?", like, like, like)
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var items []dbmysql.Content
	err := q.Order("updated_at DESC").Find(&items).Error
	return items, err
}

func (r *contentRepository) ListPublished(ctx context.Context, limit int) ([]dbmysql.Content, error) {
	var items []dbmysql.Content
	err := r.db.WithContext(ctx).
		Where("status = ?", dbmysql.StatusPublished).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *contentRepository) CountContent(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbmysql.Content{}).Count(&n).Error
	return n, err
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepo(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) CreateStory(ctx context.Context, s *dbmysql.Story) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *storyRepository) ListActiveStories(ctx context.Context, now time.Time) ([]dbmysql.Story, error) {
	var stories []dbmysql.Story
	err := r.db.WithContext(ctx).
		Where("active = ? AND expires_at > ?", true, now).
		Order("priority DESC, created_at DESC").
		Find(&stories).Error
	return stories, err
}

func (r *storyRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&dbmysql.Story{}).
		Where("active = ? AND expires_at <= ?", true, now).
		Update("active", false)
	return res.RowsAffected, res.Error
}
