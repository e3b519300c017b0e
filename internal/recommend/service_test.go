package recommend

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"contentshop/internal/dbmysql"
)

// fakeContentSource serves canned content rows.
type fakeContentSource struct {
	items map[int64]dbmysql.Content
}

func (f *fakeContentSource) GetByID(_ context.Context, contentID int64) (*dbmysql.Content, error) {
	if c, ok := f.items[contentID]; ok {
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContentSource) ListPublished(_ context.Context) ([]dbmysql.Content, error) {
	var out []dbmysql.Content
	for _, c := range f.items {
		if c.Status == dbmysql.StatusPublished {
			out = append(out, c)
		}
	}
	// Newest first, matching the repository ordering.
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeContentSource) ListRecentPublished(ctx context.Context, limit int) ([]dbmysql.Content, error) {
	out, _ := f.ListPublished(ctx)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeContentSource) ListPublishedByIDs(_ context.Context, ids []int64) ([]dbmysql.Content, error) {
	var out []dbmysql.Content
	for _, id := range ids {
		if c, ok := f.items[id]; ok && c.Status == dbmysql.StatusPublished {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContentSource) ListPublishedByCategory(_ context.Context, category string, excludeID int64, limit int) ([]dbmysql.Content, error) {
	var out []dbmysql.Content
	for _, c := range f.items {
		if c.Status == dbmysql.StatusPublished && c.Category == category && c.ContentID != excludeID {
			out = append(out, c)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeInteractions is an append-only in-memory interaction log.
type fakeInteractions struct {
	rows []dbmysql.Interaction
}

func (f *fakeInteractions) Append(_ context.Context, in *dbmysql.Interaction) error {
	f.rows = append(f.rows, *in)
	return nil
}

func (f *fakeInteractions) ListSince(_ context.Context, since time.Time) ([]dbmysql.Interaction, error) {
	var out []dbmysql.Interaction
	for _, r := range f.rows {
		if !r.OccurredAt.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeInteractions) ListByUserSince(_ context.Context, userKey string, since time.Time) ([]dbmysql.Interaction, error) {
	var out []dbmysql.Interaction
	for _, r := range f.rows {
		if r.UserKey == userKey && !r.OccurredAt.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}

func newRecommendService(contents *fakeContentSource, interactions *fakeInteractions) RecommendService {
	return NewRecommendService(
		contents,
		interactions,
		NewAudienceClassifier(),
		NewRelevanceAnalyzer(nil, "gpt-4o", zerolog.Nop()),
		zerolog.Nop(),
	)
}

func TestRecommendService_SimilarContent(t *testing.T) {
	ctx := context.Background()
	contents := &fakeContentSource{items: map[int64]dbmysql.Content{
		1: makeContent(1, "Blog Post", "Priya", "golang, testing", "goroutines channels testing"),
		2: makeContent(2, "Blog Post", "Priya", "golang", "goroutines scheduling preemption"),
		3: makeContent(3, "News Article", "Wei", "economy", "markets inflation tariffs"),
	}}
	svc := newRecommendService(contents, &fakeInteractions{})

	t.Run("closest first, unrelated dropped", func(t *testing.T) {
		similar, err := svc.SimilarContent(ctx, 1, 5)
		require.NoError(t, err)
		require.Len(t, similar, 1)
		require.Equal(t, int64(2), similar[0].Content.ContentID)
	})

	t.Run("unknown content", func(t *testing.T) {
		_, err := svc.SimilarContent(ctx, 99, 5)
		require.ErrorIs(t, err, ErrContentNotFound)
	})

	t.Run("equal scores favour newer content", func(t *testing.T) {
		now := time.Now().UTC()
		older := makeContent(2, "Blog Post", "Wei", "", "")
		older.CreatedAt = now.Add(-48 * time.Hour)
		newer := makeContent(3, "Blog Post", "Ivan", "", "")
		newer.CreatedAt = now.Add(-time.Hour)

		// Both match on category alone, so they tie at 0.4.
		tied := &fakeContentSource{items: map[int64]dbmysql.Content{
			1: makeContent(1, "Blog Post", "Priya", "", ""),
			2: older,
			3: newer,
		}}
		svc := newRecommendService(tied, &fakeInteractions{})

		similar, err := svc.SimilarContent(ctx, 1, 5)
		require.NoError(t, err)
		require.Len(t, similar, 2)
		require.Equal(t, similar[0].Score, similar[1].Score)
		require.Equal(t, int64(3), similar[0].Content.ContentID)
		require.Equal(t, int64(2), similar[1].Content.ContentID)
	})
}

func TestRecommendService_CollaborativeContent(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	contents := &fakeContentSource{items: map[int64]dbmysql.Content{
		1: makeContent(1, "Blog Post", "a", "", ""),
		2: makeContent(2, "Blog Post", "b", "", ""),
		3: makeContent(3, "Blog Post", "c", "", ""),
	}}
	interactions := &fakeInteractions{rows: []dbmysql.Interaction{
		{UserKey: "user:1", ContentID: 1, Weight: 2, OccurredAt: now},
		{UserKey: "user:2", ContentID: 1, Weight: 2, OccurredAt: now},
		{UserKey: "user:2", ContentID: 3, Weight: 3, OccurredAt: now},
	}}
	svc := newRecommendService(contents, interactions)

	t.Run("suggests neighbours' items", func(t *testing.T) {
		recs, err := svc.CollaborativeContent(ctx, "user:1", 5)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		require.Equal(t, int64(3), recs[0].Content.ContentID)
		require.Equal(t, 3.0, recs[0].Score)
	})

	t.Run("stale interactions ignored", func(t *testing.T) {
		interactions.rows = append(interactions.rows, dbmysql.Interaction{
			UserKey: "user:1", ContentID: 2, Weight: 5, OccurredAt: now.Add(-40 * 24 * time.Hour),
		})
		recs, err := svc.CollaborativeContent(ctx, "user:1", 5)
		require.NoError(t, err)
		for _, rec := range recs {
			require.NotEqual(t, int64(2), rec.Content.ContentID)
		}
	})
}

func TestRecommendService_HybridContent(t *testing.T) {
	ctx := context.Background()
	contents := &fakeContentSource{items: map[int64]dbmysql.Content{
		1: makeContent(1, "Blog Post", "Priya", "golang", "goroutines channels select"),
		2: makeContent(2, "Blog Post", "Priya", "golang", "goroutines channels select"),
		3: makeContent(3, "News Article", "Wei", "", ""),
	}}
	interactions := &fakeInteractions{rows: []dbmysql.Interaction{
		{UserKey: "user:1", ContentID: 1, Weight: 2, OccurredAt: time.Now().UTC()},
		{UserKey: "user:2", ContentID: 1, Weight: 2, OccurredAt: time.Now().UTC()},
		{UserKey: "user:2", ContentID: 3, Weight: 3, OccurredAt: time.Now().UTC()},
	}}
	svc := newRecommendService(contents, interactions)

	hybrid, err := svc.HybridContent(ctx, "user:1", 1, 5)
	require.NoError(t, err)
	require.Len(t, hybrid, 2)

	byID := map[int64]HybridScore{}
	for _, h := range hybrid {
		byID[h.Content.ContentID] = h
	}

	// Item 2 arrives from similarity only, item 3 from filtering only.
	require.InDelta(t, byID[2].ContentScore*0.6, byID[2].Score, 1e-9)
	require.Zero(t, byID[2].CFScore)
	require.InDelta(t, byID[3].CFScore*0.4, byID[3].Score, 1e-9)
	require.Zero(t, byID[3].ContentScore)
}

func TestRecommendService_UserBehavior(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	contents := &fakeContentSource{items: map[int64]dbmysql.Content{
		1: makeContent(1, "Blog Post", "Priya", "golang", ""),
		2: makeContent(2, "Documentation", "Wei", "golang, docker", ""),
	}}
	interactions := &fakeInteractions{rows: []dbmysql.Interaction{
		{UserKey: "user:1", ContentID: 1, Action: dbmysql.ActionCreate, Weight: 2.0, OccurredAt: now.Add(-48 * time.Hour)},
		{UserKey: "user:1", ContentID: 2, Action: dbmysql.ActionView, Weight: 1.0, OccurredAt: now.Add(-time.Hour)},
	}}
	svc := newRecommendService(contents, interactions)

	profile, err := svc.UserBehavior(ctx, "user:1")
	require.NoError(t, err)
	require.Equal(t, 2, profile.TotalInteractions)
	require.Equal(t, 2, profile.RecentActivity)

	// Creating weighs far more than viewing, so Blog Post dominates.
	require.InDelta(t, 1.0, profile.Categories["Blog Post"], 1e-9)
	require.Greater(t, profile.Categories["Blog Post"], profile.Categories["Documentation"])
	require.InDelta(t, 1.0, profile.Authors["Priya"], 1e-9)
	require.Contains(t, profile.Tags, "golang")
	require.Contains(t, profile.Tags, "docker")
}

func TestRecommendService_TrackInteraction(t *testing.T) {
	interactions := &fakeInteractions{}
	svc := newRecommendService(&fakeContentSource{items: map[int64]dbmysql.Content{}}, interactions)

	require.NoError(t, svc.TrackInteraction(context.Background(), "visitor:abc", 9, dbmysql.ActionView, 0))
	require.Len(t, interactions.rows, 1)
	require.Equal(t, 1.0, interactions.rows[0].Weight)
	require.Equal(t, "visitor:abc", interactions.rows[0].UserKey)
}
