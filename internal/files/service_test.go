package files

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"contentshop/internal/dbmongo"
	"contentshop/internal/dbmysql"
)

// memBlobs is an in-memory stand-in for the GridFS blob store.
type memBlobs struct {
	data    map[string][]byte
	mime    map[string]string
	putErr  error
	delErr  error
	deleted []string
}

func newMemBlobs() *memBlobs {
	return &memBlobs{data: map[string][]byte{}, mime: map[string]string{}}
}

func (b *memBlobs) Put(_ context.Context, storedName, mimeType string, _ uint64, content io.Reader) (int64, error) {
	if b.putErr != nil {
		return 0, b.putErr
	}
	buf, err := io.ReadAll(content)
	if err != nil {
		return 0, err
	}
	b.data[storedName] = buf
	b.mime[storedName] = mimeType
	return int64(len(buf)), nil
}

func (b *memBlobs) Get(_ context.Context, storedName string) (io.ReadCloser, *dbmongo.Blob, error) {
	buf, ok := b.data[storedName]
	if !ok {
		return nil, nil, fmt.Errorf("blob %q not found", storedName)
	}
	blob := &dbmongo.Blob{StoredName: storedName, Size: int64(len(buf)), MimeType: b.mime[storedName]}
	return io.NopCloser(bytes.NewReader(buf)), blob, nil
}

func (b *memBlobs) Delete(_ context.Context, storedName string) error {
	b.deleted = append(b.deleted, storedName)
	if b.delErr != nil {
		return b.delErr
	}
	delete(b.data, storedName)
	return nil
}

func newTestFileService(t *testing.T) (FileService, *MockFileRepository, *memBlobs) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := NewMockFileRepository(ctrl)
	blobs := newMemBlobs()
	svc := NewFileService(repo, blobs, nil, zerolog.Nop())
	return svc, repo, blobs
}

func TestFileService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo, blobs := newTestFileService(t)
		repo.EXPECT().
			CreateFileRef(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ref *dbmysql.FileRef) error {
				ref.FileID = 1
				return nil
			})

		ref, err := svc.Upload(ctx, 7, nil, "report.pdf", "application/pdf", strings.NewReader("pdf bytes"))
		require.NoError(t, err)
		require.Equal(t, "report.pdf", ref.OriginalName)
		require.Equal(t, dbmysql.FileKindDocument, ref.Kind)
		require.Equal(t, "pdf", ref.Extension)
		require.Equal(t, int64(len("pdf bytes")), ref.Size)
		require.True(t, strings.HasPrefix(ref.StoredName, "report_"))
		require.True(t, strings.HasSuffix(ref.StoredName, ".pdf"))
		require.Contains(t, blobs.data, ref.StoredName)
	})

	t.Run("rejects unknown extension", func(t *testing.T) {
		svc, _, blobs := newTestFileService(t)
		_, err := svc.Upload(ctx, 7, nil, "malware.exe", "application/octet-stream", strings.NewReader("x"))
		require.ErrorIs(t, err, ErrExtensionNotAllowed)
		require.Empty(t, blobs.data)
	})

	t.Run("strips path components", func(t *testing.T) {
		svc, repo, _ := newTestFileService(t)
		repo.EXPECT().
			CreateFileRef(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ref *dbmysql.FileRef) error {
				require.Equal(t, "passwd.txt", ref.OriginalName)
				return nil
			})

		_, err := svc.Upload(ctx, 7, nil, "../../etc/passwd.txt", "text/plain", strings.NewReader("x"))
		require.NoError(t, err)
	})

	t.Run("rolls back blob when metadata insert fails", func(t *testing.T) {
		svc, repo, blobs := newTestFileService(t)
		repo.EXPECT().CreateFileRef(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := svc.Upload(ctx, 7, nil, "notes.txt", "text/plain", strings.NewReader("x"))
		require.Error(t, err)
		require.Len(t, blobs.deleted, 1)
		require.Empty(t, blobs.data)
	})
}

func TestFileService_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("streams stored blob", func(t *testing.T) {
		svc, repo, blobs := newTestFileService(t)
		blobs.data["song_abc123.mp3"] = []byte("audio")
		blobs.mime["song_abc123.mp3"] = "audio/mpeg"

		repo.EXPECT().
			GetFileRefByID(ctx, int64(3)).
			Return(&dbmysql.FileRef{FileID: 3, StoredName: "song_abc123.mp3", OriginalName: "song.mp3", Size: 5}, nil)

		stream, ref, mimeType, err := svc.Download(ctx, "", 3)
		require.NoError(t, err)
		defer stream.Close()

		require.Equal(t, "song.mp3", ref.OriginalName)
		require.Equal(t, "audio/mpeg", mimeType)
		body, err := io.ReadAll(stream)
		require.NoError(t, err)
		require.Equal(t, "audio", string(body))
	})

	t.Run("missing metadata", func(t *testing.T) {
		svc, repo, _ := newTestFileService(t)
		repo.EXPECT().GetFileRefByID(ctx, int64(9)).Return(nil, gorm.ErrRecordNotFound)

		_, _, _, err := svc.Download(ctx, "", 9)
		require.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("missing blob", func(t *testing.T) {
		svc, repo, _ := newTestFileService(t)
		repo.EXPECT().
			GetFileRefByID(ctx, int64(3)).
			Return(&dbmysql.FileRef{FileID: 3, StoredName: "gone.pdf"}, nil)

		_, _, _, err := svc.Download(ctx, "", 3)
		require.ErrorIs(t, err, ErrFileNotFound)
	})
}

func TestFileService_UserFiles(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestFileService(t)

	repo.EXPECT().ListByUser(ctx, uint64(7)).Return([]dbmysql.FileRef{
		{FileID: 1, Kind: dbmysql.FileKindImage, Size: 1024},
		{FileID: 2, Kind: dbmysql.FileKindImage, Size: 2048},
		{FileID: 3, Kind: dbmysql.FileKindDocument, Size: 512},
	}, nil)

	view, err := svc.UserFiles(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, 3, view.TotalFiles)
	require.Equal(t, int64(3584), view.TotalSize)
	require.Len(t, view.ByKind[dbmysql.FileKindImage], 2)
	require.Len(t, view.ByKind[dbmysql.FileKindDocument], 1)
	require.Empty(t, view.ByKind[dbmysql.FileKindVideo])
	require.Equal(t, "3.5 KB", view.SizeLabel)
}

func TestFileService_DeleteFile(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		svc, repo, blobs := newTestFileService(t)
		blobs.data["doc_ab.pdf"] = []byte("x")

		repo.EXPECT().
			GetFileRefByID(ctx, int64(4)).
			Return(&dbmysql.FileRef{FileID: 4, UserID: 7, StoredName: "doc_ab.pdf"}, nil)
		repo.EXPECT().DeleteFileRef(ctx, int64(4)).Return(nil)

		require.NoError(t, svc.DeleteFile(ctx, 7, 4))
		require.Empty(t, blobs.data)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		svc, repo, _ := newTestFileService(t)
		repo.EXPECT().
			GetFileRefByID(ctx, int64(4)).
			Return(&dbmysql.FileRef{FileID: 4, UserID: 7}, nil)

		require.ErrorIs(t, svc.DeleteFile(ctx, 8, 4), ErrNotOwner)
	})

	t.Run("blob failure does not block metadata delete", func(t *testing.T) {
		svc, repo, blobs := newTestFileService(t)
		blobs.delErr = errors.New("gridfs unavailable")

		repo.EXPECT().
			GetFileRefByID(ctx, int64(4)).
			Return(&dbmysql.FileRef{FileID: 4, UserID: 7, StoredName: "doc_ab.pdf"}, nil)
		repo.EXPECT().DeleteFileRef(ctx, int64(4)).Return(nil)

		require.NoError(t, svc.DeleteFile(ctx, 7, 4))
	})
}

func TestFileService_RemoveForContent(t *testing.T) {
	ctx := context.Background()
	svc, repo, blobs := newTestFileService(t)
	blobs.data["a_1.png"] = []byte("x")
	blobs.data["b_2.pdf"] = []byte("y")

	repo.EXPECT().ListByContent(ctx, int64(5)).Return([]dbmysql.FileRef{
		{FileID: 1, StoredName: "a_1.png"},
		{FileID: 2, StoredName: "b_2.pdf"},
	}, nil)
	repo.EXPECT().DeleteFileRef(ctx, int64(1)).Return(nil)
	repo.EXPECT().DeleteFileRef(ctx, int64(2)).Return(nil)

	require.NoError(t, svc.RemoveForContent(ctx, 5))
	require.Empty(t, blobs.data)
}

func TestFileService_RemoveStored(t *testing.T) {
	ctx := context.Background()

	t.Run("with metadata row", func(t *testing.T) {
		svc, repo, blobs := newTestFileService(t)
		blobs.data["cover_9f.png"] = []byte("x")

		repo.EXPECT().
			GetFileRefByStoredName(ctx, "cover_9f.png").
			Return(&dbmysql.FileRef{FileID: 6, StoredName: "cover_9f.png"}, nil)
		repo.EXPECT().DeleteFileRef(ctx, int64(6)).Return(nil)

		require.NoError(t, svc.RemoveStored(ctx, "cover_9f.png"))
		require.Empty(t, blobs.data)
	})

	t.Run("blob only", func(t *testing.T) {
		svc, repo, blobs := newTestFileService(t)
		blobs.data["loose_00.png"] = []byte("x")

		repo.EXPECT().
			GetFileRefByStoredName(ctx, "loose_00.png").
			Return(nil, gorm.ErrRecordNotFound)

		require.NoError(t, svc.RemoveStored(ctx, "loose_00.png"))
		require.Empty(t, blobs.data)
	})
}
