package recommend

import "contentshop/internal/dbmysql"

// similarityKeywords is how many body keywords feed the keyword overlap term.
const similarityKeywords = 10

// Weights of the similarity components. Category dominates, author barely
// registers.
const (
	weightCategory = 0.4
	weightTags     = 0.3
	weightKeywords = 0.2
	weightAuthor   = 0.1
)

// Similarity scores how alike two content items are, in [0, 1]. An item
// compared with itself scores the full weight of every non-empty component.
func Similarity(a, b *dbmysql.Content) float64 {
	score := 0.0

	if a.Category == b.Category {
		score += weightCategory
	}

	if overlap, ok := jaccard(a.TagList(), b.TagList()); ok {
		score += weightTags * overlap
	}

	ka := ExtractKeywords(a.Body, similarityKeywords)
	kb := ExtractKeywords(b.Body, similarityKeywords)
	if overlap, ok := jaccard(ka, kb); ok {
		score += weightKeywords * overlap
	}

	if a.Author == b.Author {
		score += weightAuthor
	}

	return score
}

// jaccard is |a ∩ b| / |a ∪ b|. The second return is false when either set
// is empty, meaning the component contributes nothing.
func jaccard(a, b []string) (float64, bool) {
	if len(a) == 0 || len(b) == 0 {
		return 0, false
	}

	setA := make(map[string]struct{}, len(a))
	for _, s := range a {
		setA[s] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, s := range b {
		setB[s] = struct{}{}
	}

	intersection := 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0, false
	}
	return float64(intersection) / float64(union), true
}
