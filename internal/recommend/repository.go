package recommend

import (
	"context"
	"time"

	"gorm.io/gorm"

	"contentshop/internal/dbmysql"
)

// ContentSource is the read-only view of the content table the scorers need.
type ContentSource interface {
	GetByID(ctx context.Context, contentID int64) (*dbmysql.Content, error)
	ListPublished(ctx context.Context) ([]dbmysql.Content, error)
	ListRecentPublished(ctx context.Context, limit int) ([]dbmysql.Content, error)
	ListPublishedByIDs(ctx context.Context, ids []int64) ([]dbmysql.Content, error)
	ListPublishedByCategory(ctx context.Context, category string, excludeID int64, limit int) ([]dbmysql.Content, error)
}

type InteractionRepository interface {
	Append(ctx context.Context, in *dbmysql.Interaction) error
	ListSince(ctx context.Context, since time.Time) ([]dbmysql.Interaction, error)
	ListByUserSince(ctx context.Context, userKey string, since time.Time) ([]dbmysql.Interaction, error)
}

type contentSource struct {
	db *gorm.DB
}

func NewContentSource(db *gorm.DB) ContentSource {
	return &contentSource{db: db}
}

func (r *contentSource) GetByID(ctx context.Context, contentID int64) (*dbmysql.Content, error) {
	var c dbmysql.Content
	err := r.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListPublished returns published content newest first so score-tied
// similarity results come back in recency order.
func (r *contentSource) ListPublished(ctx context.Context) ([]dbmysql.Content, error) {
	var items []dbmysql.Content
	err := r.db.WithContext(ctx).
		Where("status = ?", dbmysql.StatusPublished).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *contentSource) ListRecentPublished(ctx context.Context, limit int) ([]dbmysql.Content, error) {
	var items []dbmysql.Content
	err := r.db.WithContext(ctx).
		Where("status = ?", dbmysql.StatusPublished).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *contentSource) ListPublishedByIDs(ctx context.Context, ids []int64) ([]dbmysql.Content, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []dbmysql.Content
	err := r.db.WithContext(ctx).
		Where("content_id IN ? AND status = ?", ids, dbmysql.StatusPublished).
		Find(&items).Error
	return items, err
}

func (r *contentSource) ListPublishedByCategory(ctx context.Context, category string, excludeID int64, limit int) ([]dbmysql.Content, error) {
	q := r.db.WithContext(ctx).
		Where("category = ? AND status = ?", category, dbmysql.StatusPublished)
	if excludeID != 0 {
		q = q.Where("content_id <> ?", excludeID)
	}
	var items []dbmysql.Content
	err := q.Order("updated_at DESC").Limit(limit).Find(&items).Error
	return items, err
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepo(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Append(ctx context.Context, in *dbmysql.Interaction) error {
	return r.db.WithContext(ctx).Create(in).Error
}

func (r *interactionRepository) ListSince(ctx context.Context, since time.Time) ([]dbmysql.Interaction, error) {
	var rows []dbmysql.Interaction
	err := r.db.WithContext(ctx).
		Where("occurred_at >= ?", since).
		Find(&rows).Error
	return rows, err
}

func (r *interactionRepository) ListByUserSince(ctx context.Context, userKey string, since time.Time) ([]dbmysql.Interaction, error) {
	var rows []dbmysql.Interaction
	err := r.db.WithContext(ctx).
		Where("user_key = ? AND occurred_at >= ?", userKey, since).
		Order("occurred_at ASC").
		Find(&rows).Error
	return rows, err
}
