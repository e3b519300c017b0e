package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"contentshop/internal/dbmongo"
	"contentshop/internal/dbmysql"
)

var (
	ErrFileNotFound        = errors.New("file not found")
	ErrNotOwner            = errors.New("not the file owner")
	ErrExtensionNotAllowed = errors.New("file extension not allowed")
)

// Blobs is the payload store behind the file metadata. GridFS in production.
type Blobs interface {
	Put(ctx context.Context, storedName, mimeType string, uploaderID uint64, content io.Reader) (int64, error)
	Get(ctx context.Context, storedName string) (io.ReadCloser, *dbmongo.Blob, error)
	Delete(ctx context.Context, storedName string) error
}

// Tracker records interactions for content a file belongs to.
type Tracker interface {
	TrackInteraction(ctx context.Context, userKey string, contentID int64, action string, weight float64) error
}

// ManagerView groups a user's files by kind for the file manager.
type ManagerView struct {
	ByKind     map[string][]dbmysql.FileRef `json:"by_kind"`
	TotalFiles int                          `json:"total_files"`
	TotalSize  int64                        `json:"total_size"`
	SizeLabel  string                       `json:"size_label"`
}

type FileService interface {
	Upload(ctx context.Context, userID uint64, contentID *int64, originalName, mimeType string, content io.Reader) (*dbmysql.FileRef, error)
	Download(ctx context.Context, userKey string, fileID int64) (io.ReadCloser, *dbmysql.FileRef, string, error)
	UserFiles(ctx context.Context, userID uint64) (*ManagerView, error)
	ContentFiles(ctx context.Context, userKey string, contentID int64) ([]dbmysql.FileRef, error)
	DeleteFile(ctx context.Context, userID uint64, fileID int64) error

	RemoveForContent(ctx context.Context, contentID int64) error
	RemoveStored(ctx context.Context, storedName string) error
}

type fileService struct {
	fileRepo FileRepository
	blobs    Blobs
	tracker  Tracker
	logger   zerolog.Logger
}

func NewFileService(fileRepo FileRepository, blobs Blobs, tracker Tracker, logger zerolog.Logger) FileService {
	return &fileService{
		fileRepo: fileRepo,
		blobs:    blobs,
		tracker:  tracker,
		logger:   logger.With().Str("component", "files").Logger(),
	}
}

// storedNameFor builds a collision-free blob key that still hints at the
// original name, e.g. "report_3f2a9c1d.pdf".
func storedNameFor(originalName string) string {
	ext := path.Ext(originalName)
	base := strings.TrimSuffix(originalName, ext)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s%s", base, suffix, strings.ToLower(ext))
}

// sanitizeName strips any path components a client smuggled into the
// filename.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	return strings.TrimSpace(name)
}

func (s *fileService) Upload(ctx context.Context, userID uint64, contentID *int64, originalName, mimeType string, content io.Reader) (*dbmysql.FileRef, error) {
	originalName = sanitizeName(originalName)
	if originalName == "" || originalName == "." || originalName == "/" {
		return nil, ErrExtensionNotAllowed
	}
	ext := ExtensionOf(originalName)
	kind := KindFor(ext)
	if kind == "" {
		return nil, ErrExtensionNotAllowed
	}

	storedName := storedNameFor(originalName)
	size, err := s.blobs.Put(ctx, storedName, mimeType, userID, content)
	if err != nil {
		return nil, fmt.Errorf("storing blob: %w", err)
	}

	ref := &dbmysql.FileRef{
		StoredName:   storedName,
		OriginalName: originalName,
		Kind:         kind,
		Extension:    ext,
		Size:         size,
		ContentID:    contentID,
		UserID:       userID,
	}
	if err := s.fileRepo.CreateFileRef(ctx, ref); err != nil {
		// The blob is orphaned without its metadata row.
		if delErr := s.blobs.Delete(ctx, storedName); delErr != nil {
			s.logger.Warn().Err(delErr).Str("stored_name", storedName).Msg("failed to roll back blob")
		}
		return nil, err
	}
	return ref, nil
}

func (s *fileService) Download(ctx context.Context, userKey string, fileID int64) (io.ReadCloser, *dbmysql.FileRef, string, error) {
	ref, err := s.fileRepo.GetFileRefByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, "", ErrFileNotFound
		}
		return nil, nil, "", err
	}

	stream, blob, err := s.blobs.Get(ctx, ref.StoredName)
	if err != nil {
		return nil, nil, "", ErrFileNotFound
	}

	if ref.ContentID != nil {
		s.track(ctx, userKey, *ref.ContentID, dbmysql.ActionDownload, 0.5)
	}
	return stream, ref, blob.MimeType, nil
}

func (s *fileService) UserFiles(ctx context.Context, userID uint64) (*ManagerView, error) {
	refs, err := s.fileRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &ManagerView{
		ByKind: map[string][]dbmysql.FileRef{
			dbmysql.FileKindImage:    {},
			dbmysql.FileKindDocument: {},
			dbmysql.FileKindVideo:    {},
			dbmysql.FileKindAudio:    {},
			dbmysql.FileKindArchive:  {},
			dbmysql.FileKindOther:    {},
		},
		TotalFiles: len(refs),
	}
	for _, ref := range refs {
		view.ByKind[ref.Kind] = append(view.ByKind[ref.Kind], ref)
		view.TotalSize += ref.Size
	}
	view.SizeLabel = FormatSize(view.TotalSize)
	return view, nil
}

func (s *fileService) ContentFiles(ctx context.Context, userKey string, contentID int64) ([]dbmysql.FileRef, error) {
	refs, err := s.fileRepo.ListByContent(ctx, contentID)
	if err != nil {
		return nil, err
	}
	s.track(ctx, userKey, contentID, dbmysql.ActionViewFiles, 0.3)
	return refs, nil
}

func (s *fileService) DeleteFile(ctx context.Context, userID uint64, fileID int64) error {
	ref, err := s.fileRepo.GetFileRefByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFileNotFound
		}
		return err
	}
	if ref.UserID != userID {
		return ErrNotOwner
	}

	if err := s.blobs.Delete(ctx, ref.StoredName); err != nil {
		s.logger.Warn().Err(err).Str("stored_name", ref.StoredName).Msg("failed to delete blob")
	}
	return s.fileRepo.DeleteFileRef(ctx, ref.FileID)
}

// RemoveForContent deletes every attachment of a content item. Blob failures
// are logged but never block the metadata delete.
func (s *fileService) RemoveForContent(ctx context.Context, contentID int64) error {
	refs, err := s.fileRepo.ListByContent(ctx, contentID)
	if err != nil {
		return err
	}
	for _, ref := range refs {
		if err := s.blobs.Delete(ctx, ref.StoredName); err != nil {
			s.logger.Warn().Err(err).Str("stored_name", ref.StoredName).Msg("failed to delete blob")
		}
		if err := s.fileRepo.DeleteFileRef(ctx, ref.FileID); err != nil {
			return err
		}
	}
	return nil
}

// RemoveStored deletes a blob, plus its metadata row when one exists. Images
// attached directly to content carry no row of their own.
func (s *fileService) RemoveStored(ctx context.Context, storedName string) error {
	if ref, err := s.fileRepo.GetFileRefByStoredName(ctx, storedName); err == nil {
		if err := s.fileRepo.DeleteFileRef(ctx, ref.FileID); err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.blobs.Delete(ctx, storedName)
}

func (s *fileService) track(ctx context.Context, userKey string, contentID int64, action string, weight float64) {
	if s.tracker == nil || userKey == "" {
		return
	}
	if err := s.tracker.TrackInteraction(ctx, userKey, contentID, action, weight); err != nil {
		s.logger.Debug().Err(err).Int64("content_id", contentID).Str("action", action).Msg("interaction not recorded")
	}
}
