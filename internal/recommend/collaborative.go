package recommend

import (
	"math"
	"sort"

	"contentshop/internal/dbmysql"
)

// UserItemMatrix maps user key to content id to interaction score. A later
// interaction for the same pair overwrites the earlier one.
type UserItemMatrix map[string]map[int64]float64

// BuildMatrix folds an interaction log into a user-item matrix.
func BuildMatrix(interactions []dbmysql.Interaction) UserItemMatrix {
	matrix := UserItemMatrix{}
	for _, in := range interactions {
		row, ok := matrix[in.UserKey]
		if !ok {
			row = map[int64]float64{}
			matrix[in.UserKey] = row
		}
		row[in.ContentID] = in.Weight
	}
	return matrix
}

// CosineSimilarity compares two users' interaction vectors. Users with no
// common item score zero.
func CosineSimilarity(a, b map[int64]float64) float64 {
	var dot float64
	common := false
	for item, av := range a {
		if bv, ok := b[item]; ok {
			dot += av * bv
			common = true
		}
	}
	if !common {
		return 0
	}

	var normA, normB float64
	for _, v := range a {
		normA += v * v
	}
	for _, v := range b {
		normB += v * v
	}
	denom := math.Sqrt(normA * normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

// ScoredItem is a collaborative filtering suggestion before the content rows
// are fetched.
type ScoredItem struct {
	ContentID int64
	Score     float64
}

// CollaborativeScores recommends items the target user has not interacted
// with, weighting each neighbour's scores by its share of the total
// neighbour similarity.
func CollaborativeScores(matrix UserItemMatrix, targetKey string, limit int) []ScoredItem {
	targetItems, ok := matrix[targetKey]
	if !ok {
		return nil
	}

	similarities := map[string]float64{}
	var total float64
	for userKey, items := range matrix {
		if userKey == targetKey {
			continue
		}
		if sim := CosineSimilarity(targetItems, items); sim > 0 {
			similarities[userKey] = sim
			total += sim
		}
	}
	if total == 0 {
		return nil
	}

	scores := map[int64]float64{}
	for userKey, sim := range similarities {
		weight := sim / total
		for itemID, rating := range matrix[userKey] {
			if _, seen := targetItems[itemID]; seen {
				continue
			}
			scores[itemID] += weight * rating
		}
	}

	items := make([]ScoredItem, 0, len(scores))
	for id, score := range scores {
		items = append(items, ScoredItem{ContentID: id, Score: score})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].ContentID < items[j].ContentID
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
