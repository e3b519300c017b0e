package recommend

import (
	"sort"

	"contentshop/internal/dbmysql"
)

// trendingWindow is how many recent published items feed the tag popularity
// count, and trendingTags how many top tags count as popular.
const (
	trendingWindow = 20
	trendingTags   = 5
)

// ScoredContent pairs a content item with a scorer-specific score.
type ScoredContent struct {
	Content dbmysql.Content `json:"content"`
	Score   float64         `json:"score"`
}

// Trending ranks recent content by how many of the currently popular tags it
// carries. Items with no popular tag are dropped entirely.
func Trending(recent []dbmysql.Content, limit int) []ScoredContent {
	popular := popularTags(recent, trendingTags)
	if len(popular) == 0 {
		return nil
	}

	var trending []ScoredContent
	for _, c := range recent {
		hits := 0
		for _, tag := range c.TagList() {
			if _, ok := popular[tag]; ok {
				hits++
			}
		}
		if hits > 0 {
			trending = append(trending, ScoredContent{Content: c, Score: float64(hits)})
		}
	}

	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Score > trending[j].Score
	})
	if limit > 0 && len(trending) > limit {
		trending = trending[:limit]
	}
	return trending
}

func popularTags(items []dbmysql.Content, n int) map[string]struct{} {
	freq := map[string]int{}
	order := map[string]int{}
	next := 0
	for _, c := range items {
		for _, tag := range c.TagList() {
			if _, ok := freq[tag]; !ok {
				order[tag] = next
				next++
			}
			freq[tag]++
		}
	}

	tags := make([]string, 0, len(freq))
	for tag := range freq {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if freq[tags[i]] != freq[tags[j]] {
			return freq[tags[i]] > freq[tags[j]]
		}
		return order[tags[i]] < order[tags[j]]
	})
	if len(tags) > n {
		tags = tags[:n]
	}

	popular := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		popular[tag] = struct{}{}
	}
	return popular
}
