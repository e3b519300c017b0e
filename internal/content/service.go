package content

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"contentshop/internal/dbmysql"
)

var (
	ErrContentNotFound = errors.New("content not found")
	ErrNotOwner        = errors.New("not the content owner")
	ErrInvalidStatus   = errors.New("invalid content status")
	ErrInvalidCategory = errors.New("invalid content category")
)

// Categories a content item can be filed under.
var Categories = []string{
	"Blog Post",
	"News Article",
	"Product Description",
	"About Page",
	"Landing Page",
	"Documentation",
	"Other",
}

// Statuses in lifecycle order.
var Statuses = []string{
	dbmysql.StatusDraft,
	dbmysql.StatusPublished,
	dbmysql.StatusArchived,
}

// Tracker records interactions against content. Implementations must not
// block the request path on failure.
type Tracker interface {
	TrackInteraction(ctx context.Context, userKey string, contentID int64, action string, weight float64) error
}

// Classifier labels content for an audience segment.
type Classifier interface {
	ClassifyAudience(title, body, category string, tags []string) string
}

// FileStore is the slice of the files module the content service needs when
// content goes away or swaps its image.
type FileStore interface {
	RemoveForContent(ctx context.Context, contentID int64) error
	RemoveStored(ctx context.Context, storedName string) error
}

type ContentInput struct {
	Title    string
	Body     string
	Category string
	Status   string
	Author   string
	Tags     []string
	Image    string // stored name of a previously uploaded image, optional
}

type StoryInput struct {
	Title     string
	Body      string
	StoryType string
	Priority  int
	ImageURL  string
	ExpiresAt time.Time
	ProductID *int64
}

type ContentService interface {
	CreateContent(ctx context.Context, userID uint64, userKey string, in ContentInput) (*dbmysql.Content, error)
	GetContent(ctx context.Context, userKey string, contentID int64) (*dbmysql.Content, error)
	UpdateContent(ctx context.Context, userID uint64, userKey string, contentID int64, in ContentInput) (*dbmysql.Content, error)
	UpdateStatus(ctx context.Context, userID uint64, contentID int64, status string) error
	DeleteContent(ctx context.Context, userID uint64, contentID int64) error
	ListContent(ctx context.Context, f Filter) ([]dbmysql.Content, error)
	PublicPreview(ctx context.Context, limit int) ([]dbmysql.Content, error)

	CreateStory(ctx context.Context, authorID uint64, in StoryInput) (*dbmysql.Story, error)
	ActiveStories(ctx context.Context) ([]dbmysql.Story, error)
	StartStorySweeper(ctx context.Context, interval time.Duration)
}

type contentService struct {
	contentRepo ContentRepository
	storyRepo   StoryRepository
	tracker     Tracker
	classifier  Classifier
	files       FileStore
	logger      zerolog.Logger
}

func NewContentService(contentRepo ContentRepository, storyRepo StoryRepository, tracker Tracker, classifier Classifier, files FileStore, logger zerolog.Logger) ContentService {
	return &contentService{
		contentRepo: contentRepo,
		storyRepo:   storyRepo,
		tracker:     tracker,
		classifier:  classifier,
		files:       files,
		logger:      logger.With().Str("component", "content").Logger(),
	}
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func validStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s *contentService) CreateContent(ctx context.Context, userID uint64, userKey string, in ContentInput) (*dbmysql.Content, error) {
	if !validCategory(in.Category) {
		return nil, ErrInvalidCategory
	}
	if in.Status == "" {
		in.Status = dbmysql.StatusDraft
	}
	if !validStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	c := &dbmysql.Content{
		Title:    strings.TrimSpace(in.Title),
		Body:     in.Body,
		Category: in.Category,
		Status:   in.Status,
		Author:   strings.TrimSpace(in.Author),
		UserID:   userID,
		Image:    in.Image,
	}
	c.SetTagList(in.Tags)
	c.Audience = s.classifier.ClassifyAudience(c.Title, c.Body, c.Category, in.Tags)

	if err := s.contentRepo.CreateContent(ctx, c); err != nil {
		return nil, err
	}
	s.track(ctx, userKey, c.ContentID, dbmysql.ActionCreate, 2.0)
	return c, nil
}

func (s *contentService) GetContent(ctx context.Context, userKey string, contentID int64) (*dbmysql.Content, error) {
	c, err := s.contentRepo.GetContentByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	s.track(ctx, userKey, contentID, dbmysql.ActionView, 1.0)
	return c, nil
}

func (s *contentService) UpdateContent(ctx context.Context, userID uint64, userKey string, contentID int64, in ContentInput) (*dbmysql.Content, error) {
	c, err := s.contentRepo.GetContentByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	if c.UserID != userID {
		return nil, ErrNotOwner
	}
	if !validCategory(in.Category) {
		return nil, ErrInvalidCategory
	}
	if !validStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	if in.Image != "" && in.Image != c.Image {
		if c.Image != "" {
			if err := s.files.RemoveStored(ctx, c.Image); err != nil {
				s.logger.Warn().Err(err).Str("stored_name", c.Image).Msg("failed to remove replaced image")
			}
		}
		c.Image = in.Image
	}

	c.Title = strings.TrimSpace(in.Title)
	c.Body = in.Body
	c.Category = in.Category
	c.Status = in.Status
	c.Author = strings.TrimSpace(in.Author)
	c.SetTagList(in.Tags)
	c.Audience = s.classifier.ClassifyAudience(c.Title, c.Body, c.Category, in.Tags)

	if err := s.contentRepo.UpdateContent(ctx, c); err != nil {
		return nil, err
	}
	s.track(ctx, userKey, contentID, dbmysql.ActionEdit, 1.5)
	return c, nil
}

func (s *contentService) UpdateStatus(ctx context.Context, userID uint64, contentID int64, status string) error {
	if !validStatus(status) {
		return ErrInvalidStatus
	}
	c, err := s.contentRepo.GetContentByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return err
	}
	if c.UserID != userID {
		return ErrNotOwner
	}
	c.Status = status
	return s.contentRepo.UpdateContent(ctx, c)
}

func (s *contentService) DeleteContent(ctx context.Context, userID uint64, contentID int64) error {
	c, err := s.contentRepo.GetContentByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return err
	}
	if c.UserID != userID {
		return ErrNotOwner
	}

	// Attachment and image cleanup happens first but must not block the
	// metadata delete: a stranded blob is recoverable, a stranded row is not.
	if err := s.files.RemoveForContent(ctx, contentID); err != nil {
		s.logger.Warn().Err(err).Int64("content_id", contentID).Msg("failed to remove attachments")
	}
	if c.Image != "" {
		if err := s.files.RemoveStored(ctx, c.Image); err != nil {
			s.logger.Warn().Err(err).Str("stored_name", c.Image).Msg("failed to remove image")
		}
	}

	return s.contentRepo.DeleteContent(ctx, contentID)
}

func (s *contentService) ListContent(ctx context.Context, f Filter) ([]dbmysql.Content, error) {
	return s.contentRepo.ListContent(ctx, f)
}

func (s *contentService) PublicPreview(ctx context.Context, limit int) ([]dbmysql.Content, error) {
	if limit <= 0 {
		limit = 6
	}
	return s.contentRepo.ListPublished(ctx, limit)
}

func (s *contentService) CreateStory(ctx context.Context, authorID uint64, in StoryInput) (*dbmysql.Story, error) {
	if in.ExpiresAt.Before(time.Now()) {
		return nil, errors.New("story expiry must be in the future")
	}
	if in.StoryType == "" {
		in.StoryType = "general"
	}
	if in.Priority <= 0 {
		in.Priority = 1
	}
	story := &dbmysql.Story{
		Title:     strings.TrimSpace(in.Title),
		Body:      in.Body,
		StoryType: in.StoryType,
		Priority:  in.Priority,
		ImageURL:  in.ImageURL,
		Active:    true,
		ExpiresAt: in.ExpiresAt,
		AuthorID:  authorID,
		ProductID: in.ProductID,
	}
	if err := s.storyRepo.CreateStory(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *contentService) ActiveStories(ctx context.Context) ([]dbmysql.Story, error) {
	return s.storyRepo.ListActiveStories(ctx, time.Now().UTC())
}

// StartStorySweeper deactivates expired stories on a fixed interval until the
// context is cancelled.
func (s *contentService) StartStorySweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				n, err := s.storyRepo.DeactivateExpired(ctx, now.UTC())
				if err != nil {
					s.logger.Error().Err(err).Msg("story sweep failed")
					continue
				}
				if n > 0 {
					s.logger.Info().Int64("deactivated", n).Msg("expired stories swept")
				}
			}
		}
	}()
}

func (s *contentService) track(ctx context.Context, userKey string, contentID int64, action string, weight float64) {
	if s.tracker == nil || userKey == "" {
		return
	}
	if err := s.tracker.TrackInteraction(ctx, userKey, contentID, action, weight); err != nil {
		s.logger.Debug().Err(err).Int64("content_id", contentID).Str("action", action).Msg("interaction not recorded")
	}
}
