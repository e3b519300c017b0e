package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"contentshop/internal/dbmysql"
)

type trackedCall struct {
	userKey   string
	contentID int64
	action    string
	weight    float64
}

type stubTracker struct {
	calls []trackedCall
	err   error
}

func (t *stubTracker) TrackInteraction(_ context.Context, userKey string, contentID int64, action string, weight float64) error {
	t.calls = append(t.calls, trackedCall{userKey, contentID, action, weight})
	return t.err
}

type stubClassifier struct {
	label string
}

func (c stubClassifier) ClassifyAudience(_, _, _ string, _ []string) string {
	if c.label == "" {
		return dbmysql.AudienceMixed
	}
	return c.label
}

type stubFileStore struct {
	removedContent []int64
	removedStored  []string
	contentErr     error
	storedErr      error
}

func (f *stubFileStore) RemoveForContent(_ context.Context, contentID int64) error {
	f.removedContent = append(f.removedContent, contentID)
	return f.contentErr
}

func (f *stubFileStore) RemoveStored(_ context.Context, storedName string) error {
	f.removedStored = append(f.removedStored, storedName)
	return f.storedErr
}

func newTestService(t *testing.T) (ContentService, *MockContentRepository, *MockStoryRepository, *stubTracker, *stubFileStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	contentRepo := NewMockContentRepository(ctrl)
	storyRepo := NewMockStoryRepository(ctrl)
	tracker := &stubTracker{}
	files := &stubFileStore{}
	svc := NewContentService(contentRepo, storyRepo, tracker, stubClassifier{label: dbmysql.AudienceTech}, files, zerolog.Nop())
	return svc, contentRepo, storyRepo, tracker, files
}

func TestContentService_CreateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, contentRepo, _, tracker, _ := newTestService(t)

		contentRepo.EXPECT().
			CreateContent(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *dbmysql.Content) error {
				c.ContentID = 42
				return nil
			})

		c, err := svc.CreateContent(ctx, 7, "user:7", ContentInput{
			Title:    "  Go Generics in Practice ",
			Body:     "A long body",
			Category: "Blog Post",
			Status:   dbmysql.StatusPublished,
			Author:   "Priya",
			Tags:     []string{"go", "generics"},
		})
		require.NoError(t, err)
		require.Equal(t, int64(42), c.ContentID)
		require.Equal(t, "Go Generics in Practice", c.Title)
		require.Equal(t, dbmysql.AudienceTech, c.Audience)
		require.Equal(t, []string{"go", "generics"}, c.TagList())

		require.Len(t, tracker.calls, 1)
		require.Equal(t, trackedCall{"user:7", 42, dbmysql.ActionCreate, 2.0}, tracker.calls[0])
	})

	t.Run("defaults to draft", func(t *testing.T) {
		svc, contentRepo, _, _, _ := newTestService(t)

		contentRepo.EXPECT().
			CreateContent(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *dbmysql.Content) error {
				require.Equal(t, dbmysql.StatusDraft, c.Status)
				return nil
			})

		_, err := svc.CreateContent(ctx, 7, "user:7", ContentInput{
			Title: "Untitled", Body: "b", Category: "Other", Author: "a",
		})
		require.NoError(t, err)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		svc, _, _, _, _ := newTestService(t)
		_, err := svc.CreateContent(ctx, 7, "user:7", ContentInput{
			Title: "t", Body: "b", Category: "Poetry", Author: "a",
		})
		require.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		svc, _, _, _, _ := newTestService(t)
		_, err := svc.CreateContent(ctx, 7, "user:7", ContentInput{
			Title: "t", Body: "b", Category: "Other", Status: "Pending", Author: "a",
		})
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, contentRepo, _, tracker, _ := newTestService(t)
		contentRepo.EXPECT().CreateContent(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := svc.CreateContent(ctx, 7, "user:7", ContentInput{
			Title: "t", Body: "b", Category: "Other", Author: "a",
		})
		require.Error(t, err)
		require.Empty(t, tracker.calls)
	})
}

func TestContentService_GetContent(t *testing.T) {
	ctx := context.Background()

	t.Run("tracks view", func(t *testing.T) {
		svc, contentRepo, _, tracker, _ := newTestService(t)
		contentRepo.EXPECT().
			GetContentByID(ctx, int64(5)).
			Return(&dbmysql.Content{ContentID: 5, Title: "hello"}, nil)

		c, err := svc.GetContent(ctx, "visitor:abc", 5)
		require.NoError(t, err)
		require.Equal(t, "hello", c.Title)
		require.Equal(t, []trackedCall{{"visitor:abc", 5, dbmysql.ActionView, 1.0}}, tracker.calls)
	})

	t.Run("not found", func(t *testing.T) {
		svc, contentRepo, _, tracker, _ := newTestService(t)
		contentRepo.EXPECT().GetContentByID(ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetContent(ctx, "visitor:abc", 99)
		require.ErrorIs(t, err, ErrContentNotFound)
		require.Empty(t, tracker.calls)
	})
}

func TestContentService_UpdateContent(t *testing.T) {
	ctx := context.Background()
	existing := func() *dbmysql.Content {
		return &dbmysql.Content{
			ContentID: 5,
			Title:     "old",
			Body:      "old body",
			Category:  "Blog Post",
			Status:    dbmysql.StatusDraft,
			Author:    "Priya",
			UserID:    7,
			Image:     "old-image.png",
		}
	}

	t.Run("owner updates and swaps image", func(t *testing.T) {
		svc, contentRepo, _, tracker, files := newTestService(t)
		contentRepo.EXPECT().GetContentByID(ctx, int64(5)).Return(existing(), nil)
		contentRepo.EXPECT().
			UpdateContent(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *dbmysql.Content) error {
				require.Equal(t, "new title", c.Title)
				require.Equal(t, "new-image.png", c.Image)
				return nil
			})

		_, err := svc.UpdateContent(ctx, 7, "user:7", 5, ContentInput{
			Title: "new title", Body: "new body", Category: "Blog Post",
			Status: dbmysql.StatusPublished, Author: "Priya", Image: "new-image.png",
		})
		require.NoError(t, err)
		require.Equal(t, []string{"old-image.png"}, files.removedStored)
		require.Equal(t, []trackedCall{{"user:7", 5, dbmysql.ActionEdit, 1.5}}, tracker.calls)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		svc, contentRepo, _, _, _ := newTestService(t)
		contentRepo.EXPECT().GetContentByID(ctx, int64(5)).Return(existing(), nil)

		_, err := svc.UpdateContent(ctx, 8, "user:8", 5, ContentInput{
			Title: "x", Body: "y", Category: "Blog Post", Status: dbmysql.StatusDraft, Author: "a",
		})
		require.ErrorIs(t, err, ErrNotOwner)
	})
}

func TestContentService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, contentRepo, _, _, _ := newTestService(t)
		contentRepo.EXPECT().
			GetContentByID(ctx, int64(5)).
			Return(&dbmysql.Content{ContentID: 5, UserID: 7, Status: dbmysql.StatusDraft}, nil)
		contentRepo.EXPECT().
			UpdateContent(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *dbmysql.Content) error {
				require.Equal(t, dbmysql.StatusPublished, c.Status)
				return nil
			})

		require.NoError(t, svc.UpdateStatus(ctx, 7, 5, dbmysql.StatusPublished))
	})

	t.Run("invalid status short-circuits", func(t *testing.T) {
		svc, _, _, _, _ := newTestService(t)
		require.ErrorIs(t, svc.UpdateStatus(ctx, 7, 5, "Pending"), ErrInvalidStatus)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		svc, contentRepo, _, _, _ := newTestService(t)
		contentRepo.EXPECT().
			GetContentByID(ctx, int64(5)).
			Return(&dbmysql.Content{ContentID: 5, UserID: 7}, nil)

		require.ErrorIs(t, svc.UpdateStatus(ctx, 8, 5, dbmysql.StatusArchived), ErrNotOwner)
	})
}

func TestContentService_DeleteContent(t *testing.T) {
	ctx := context.Background()

	t.Run("removes attachments and image", func(t *testing.T) {
		svc, contentRepo, _, _, files := newTestService(t)
		contentRepo.EXPECT().
			GetContentByID(ctx, int64(5)).
			Return(&dbmysql.Content{ContentID: 5, UserID: 7, Image: "cover.png"}, nil)
		contentRepo.EXPECT().DeleteContent(ctx, int64(5)).Return(nil)

		require.NoError(t, svc.DeleteContent(ctx, 7, 5))
		require.Equal(t, []int64{5}, files.removedContent)
		require.Equal(t, []string{"cover.png"}, files.removedStored)
	})

	t.Run("blob cleanup failure does not block delete", func(t *testing.T) {
		svc, contentRepo, _, _, files := newTestService(t)
		files.contentErr = errors.New("gridfs unavailable")
		files.storedErr = errors.New("gridfs unavailable")

		contentRepo.EXPECT().
			GetContentByID(ctx, int64(5)).
			Return(&dbmysql.Content{ContentID: 5, UserID: 7, Image: "cover.png"}, nil)
		contentRepo.EXPECT().DeleteContent(ctx, int64(5)).Return(nil)

		require.NoError(t, svc.DeleteContent(ctx, 7, 5))
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		svc, contentRepo, _, _, files := newTestService(t)
		contentRepo.EXPECT().
			GetContentByID(ctx, int64(5)).
			Return(&dbmysql.Content{ContentID: 5, UserID: 7}, nil)

		require.ErrorIs(t, svc.DeleteContent(ctx, 8, 5), ErrNotOwner)
		require.Empty(t, files.removedContent)
	})
}

func TestContentService_Stories(t *testing.T) {
	ctx := context.Background()

	t.Run("create applies defaults", func(t *testing.T) {
		svc, _, storyRepo, _, _ := newTestService(t)
		storyRepo.EXPECT().
			CreateStory(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *dbmysql.Story) error {
				require.Equal(t, "general", s.StoryType)
				require.Equal(t, 1, s.Priority)
				require.True(t, s.Active)
				require.Equal(t, uint64(7), s.AuthorID)
				return nil
			})

		_, err := svc.CreateStory(ctx, 7, StoryInput{
			Title:     "Flash sale",
			ExpiresAt: time.Now().Add(24 * time.Hour),
		})
		require.NoError(t, err)
	})

	t.Run("rejects past expiry", func(t *testing.T) {
		svc, _, _, _, _ := newTestService(t)
		_, err := svc.CreateStory(ctx, 7, StoryInput{
			Title:     "stale",
			ExpiresAt: time.Now().Add(-time.Minute),
		})
		require.Error(t, err)
	})
}
