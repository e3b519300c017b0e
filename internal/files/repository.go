package files

import (
	"context"

	"gorm.io/gorm"

	"contentshop/internal/dbmysql"
)

type FileRepository interface {
	CreateFileRef(ctx context.Context, ref *dbmysql.FileRef) error
	GetFileRefByID(ctx context.Context, fileID int64) (*dbmysql.FileRef, error)
	GetFileRefByStoredName(ctx context.Context, storedName string) (*dbmysql.FileRef, error)
	ListByUser(ctx context.Context, userID uint64) ([]dbmysql.FileRef, error)
	ListByContent(ctx context.Context, contentID int64) ([]dbmysql.FileRef, error)
	DeleteFileRef(ctx context.Context, fileID int64) error
}

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepo(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) CreateFileRef(ctx context.Context, ref *dbmysql.FileRef) error {
	return r.db.WithContext(ctx).Create(ref).Error
}

func (r *fileRepository) GetFileRefByID(ctx context.Context, fileID int64) (*dbmysql.FileRef, error) {
	var ref dbmysql.FileRef
	err := r.db.WithContext(ctx).
		Where("file_id = ?", fileID).
		First(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *fileRepository) GetFileRefByStoredName(ctx context.Context, storedName string) (*dbmysql.FileRef, error) {
	var ref dbmysql.FileRef
	err := r.db.WithContext(ctx).
		Where("stored_name = ?", storedName).
		First(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *fileRepository) ListByUser(ctx context.Context, userID uint64) ([]dbmysql.FileRef, error) {
	var refs []dbmysql.FileRef
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&refs).Error
	return refs, err
}

func (r *fileRepository) ListByContent(ctx context.Context, contentID int64) ([]dbmysql.FileRef, error) {
	var refs []dbmysql.FileRef
	err := r.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		Order("created_at DESC").
		Find(&refs).Error
	return refs, err
}

func (r *fileRepository) DeleteFileRef(ctx context.Context, fileID int64) error {
	return r.db.WithContext(ctx).
		Where("file_id = ?", fileID).
		Delete(&dbmysql.FileRef{}).Error
}
