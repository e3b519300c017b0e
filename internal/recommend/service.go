package recommend

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"contentshop/internal/dbmysql"
)

var ErrContentNotFound = errors.New("content not found")

// Lookback windows for the two interaction-driven profiles.
const (
	matrixWindow   = 30 * 24 * time.Hour
	behaviorWindow = 90 * 24 * time.Hour
	recentWindow   = 7 * 24 * time.Hour
)

// behaviorActionWeights rate how strongly each action signals interest.
var behaviorActionWeights = map[string]float64{
	dbmysql.ActionView:   1.0,
	dbmysql.ActionEdit:   3.0,
	dbmysql.ActionLike:   2.0,
	dbmysql.ActionShare:  2.5,
	dbmysql.ActionCreate: 4.0,
}

// behaviorDecay discounts older interactions; the most recent one keeps full
// weight.
const behaviorDecay = 0.95

// HybridScore blends the similarity and collaborative signals for one item.
type HybridScore struct {
	Content      dbmysql.Content `json:"content"`
	ContentScore float64         `json:"content_score"`
	CFScore      float64         `json:"cf_score"`
	Score        float64         `json:"hybrid_score"`
}

// BehaviorProfile summarizes what a user has been engaging with. Scores are
// normalized so the strongest preference in each map is 1.
type BehaviorProfile struct {
	Categories        map[string]float64 `json:"categories"`
	Authors           map[string]float64 `json:"authors"`
	Tags              map[string]float64 `json:"tags"`
	TotalInteractions int                `json:"total_interactions"`
	RecentActivity    int                `json:"recent_activity"`
}

type RecommendService interface {
	TrackInteraction(ctx context.Context, userKey string, contentID int64, action string, weight float64) error
	SimilarContent(ctx context.Context, contentID int64, limit int) ([]ScoredContent, error)
	CategorySuggestions(ctx context.Context, category string, excludeID int64, limit int) ([]dbmysql.Content, error)
	TrendingContent(ctx context.Context, limit int) ([]ScoredContent, error)
	CollaborativeContent(ctx context.Context, userKey string, limit int) ([]ScoredContent, error)
	HybridContent(ctx context.Context, userKey string, contentID int64, limit int) ([]HybridScore, error)
	UserBehavior(ctx context.Context, userKey string) (*BehaviorProfile, error)
	ClassifyAudience(title, body, category string, tags []string) string
	Relevance(ctx context.Context, contentID int64) (*RelevanceReport, error)
}

type recommendService struct {
	contents     ContentSource
	interactions InteractionRepository
	classifier   *AudienceClassifier
	analyzer     *RelevanceAnalyzer
	logger       zerolog.Logger
}

func NewRecommendService(contents ContentSource, interactions InteractionRepository, classifier *AudienceClassifier, analyzer *RelevanceAnalyzer, logger zerolog.Logger) RecommendService {
	return &recommendService{
		contents:     contents,
		interactions: interactions,
		classifier:   classifier,
		analyzer:     analyzer,
		logger:       logger.With().Str("component", "recommend").Logger(),
	}
}

func (s *recommendService) TrackInteraction(ctx context.Context, userKey string, contentID int64, action string, weight float64) error {
	if weight <= 0 {
		weight = 1.0
	}
	return s.interactions.Append(ctx, &dbmysql.Interaction{
		UserKey:    userKey,
		ContentID:  contentID,
		Action:     action,
		Weight:     weight,
		OccurredAt: time.Now().UTC(),
	})
}

func (s *recommendService) SimilarContent(ctx context.Context, contentID int64, limit int) ([]ScoredContent, error) {
	current, err := s.contents.GetByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	published, err := s.contents.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	var scored []ScoredContent
	for _, other := range published {
		if other.ContentID == contentID {
			continue
		}
		if score := Similarity(current, &other); score > 0 {
			scored = append(scored, ScoredContent{Content: other, Score: score})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

func (s *recommendService) CategorySuggestions(ctx context.Context, category string, excludeID int64, limit int) ([]dbmysql.Content, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.contents.ListPublishedByCategory(ctx, category, excludeID, limit)
}

func (s *recommendService) TrendingContent(ctx context.Context, limit int) ([]ScoredContent, error) {
	recent, err := s.contents.ListRecentPublished(ctx, trendingWindow)
	if err != nil {
		return nil, err
	}
	return Trending(recent, limit), nil
}

func (s *recommendService) CollaborativeContent(ctx context.Context, userKey string, limit int) ([]ScoredContent, error) {
	rows, err := s.interactions.ListSince(ctx, time.Now().Add(-matrixWindow))
	if err != nil {
		return nil, err
	}

	matrix := BuildMatrix(rows)
	items := CollaborativeScores(matrix, userKey, limit)
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(items))
	scores := make(map[int64]float64, len(items))
	for i, item := range items {
		ids[i] = item.ContentID
		scores[item.ContentID] = math.Round(item.Score*1000) / 1000
	}

	contents, err := s.contents.ListPublishedByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]dbmysql.Content, len(contents))
	for _, c := range contents {
		byID[c.ContentID] = c
	}

	var out []ScoredContent
	for _, item := range items {
		if c, ok := byID[item.ContentID]; ok {
			out = append(out, ScoredContent{Content: c, Score: scores[item.ContentID]})
		}
	}
	return out, nil
}

// HybridContent blends similarity (60%) with collaborative filtering (40%).
func (s *recommendService) HybridContent(ctx context.Context, userKey string, contentID int64, limit int) ([]HybridScore, error) {
	if limit <= 0 {
		limit = 5
	}
	half := limit/2 + 1

	similar, err := s.SimilarContent(ctx, contentID, half)
	if err != nil {
		return nil, err
	}

	collaborative, err := s.CollaborativeContent(ctx, userKey, half)
	if err != nil {
		s.logger.Warn().Err(err).Msg("collaborative scoring unavailable")
		collaborative = nil
	}

	combined := map[int64]*HybridScore{}
	for _, rec := range similar {
		combined[rec.Content.ContentID] = &HybridScore{
			Content:      rec.Content,
			ContentScore: rec.Score,
			Score:        rec.Score * 0.6,
		}
	}
	for _, rec := range collaborative {
		if existing, ok := combined[rec.Content.ContentID]; ok {
			existing.CFScore = rec.Score
			existing.Score += rec.Score * 0.4
			continue
		}
		combined[rec.Content.ContentID] = &HybridScore{
			Content: rec.Content,
			CFScore: rec.Score,
			Score:   rec.Score * 0.4,
		}
	}

	out := make([]HybridScore, 0, len(combined))
	for _, h := range combined {
		out = append(out, *h)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Content.ContentID < out[j].Content.ContentID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *recommendService) UserBehavior(ctx context.Context, userKey string) (*BehaviorProfile, error) {
	now := time.Now()
	rows, err := s.interactions.ListByUserSince(ctx, userKey, now.Add(-behaviorWindow))
	if err != nil {
		return nil, err
	}

	profile := &BehaviorProfile{
		Categories: map[string]float64{},
		Authors:    map[string]float64{},
		Tags:       map[string]float64{},
	}
	if len(rows) == 0 {
		return profile, nil
	}
	profile.TotalInteractions = len(rows)

	ids := make([]int64, 0, len(rows))
	seen := map[int64]struct{}{}
	for _, in := range rows {
		if in.OccurredAt.After(now.Add(-recentWindow)) {
			profile.RecentActivity++
		}
		if _, ok := seen[in.ContentID]; !ok {
			seen[in.ContentID] = struct{}{}
			ids = append(ids, in.ContentID)
		}
	}

	contents, err := s.contents.ListPublishedByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]dbmysql.Content, len(contents))
	for _, c := range contents {
		byID[c.ContentID] = c
	}

	// Rows arrive oldest first; each step back in time discounts the weight.
	for i, in := range rows {
		c, ok := byID[in.ContentID]
		if !ok {
			continue
		}

		actionWeight, ok := behaviorActionWeights[in.Action]
		if !ok {
			actionWeight = 1.0
		}
		timeWeight := math.Pow(behaviorDecay, float64(len(rows)-i-1))
		total := actionWeight * timeWeight * in.Weight

		profile.Categories[c.Category] += total
		profile.Authors[c.Author] += total
		for _, tag := range c.TagList() {
			profile.Tags[strings.ToLower(tag)] += total * 0.5
		}
	}

	normalize(profile.Categories)
	normalize(profile.Authors)
	normalize(profile.Tags)
	return profile, nil
}

func normalize(scores map[string]float64) {
	var max float64
	for _, v := range scores {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return
	}
	for k, v := range scores {
		scores[k] = v / max
	}
}

func (s *recommendService) ClassifyAudience(title, body, category string, tags []string) string {
	return s.classifier.ClassifyAudience(title, body, category, tags)
}

func (s *recommendService) Relevance(ctx context.Context, contentID int64) (*RelevanceReport, error) {
	c, err := s.contents.GetByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return s.analyzer.Analyze(ctx, c), nil
}
