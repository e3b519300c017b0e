package shop

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"contentshop/internal/dbmysql"
	"contentshop/internal/recommend"
)

// cartWeight discounts cart rows against paid purchases when building the
// interaction matrix.
const cartWeight = 0.3

const (
	similarityFloor = 0.1
	neighbourCount  = 10
)

const (
	reasonSimilarUsers = "Users with similar purchases also bought this"
	reasonAlsoBought   = "Customers who bought this item also bought"
	reasonCategory     = "Based on your purchase history"
	reasonPopular      = "Popular product"
)

// RecommendedProduct is one suggestion with its score and a display reason.
type RecommendedProduct struct {
	Product dbmysql.Product `json:"product"`
	Score   float64         `json:"score"`
	Reason  string          `json:"reason"`
}

// ProductRecommender suggests products from purchase and cart behavior.
type ProductRecommender interface {
	ForUser(ctx context.Context, userID uint64, limit int) ([]RecommendedProduct, error)
	SimilarProducts(ctx context.Context, productID int64, limit int) ([]RecommendedProduct, error)
	PopularProducts(ctx context.Context, limit int) ([]RecommendedProduct, error)
}

type productRecommender struct {
	products ProductRepository
	cart     CartRepository
	orders   OrderRepository
	logger   zerolog.Logger
}

func NewProductRecommender(products ProductRepository, cart CartRepository, orders OrderRepository, logger zerolog.Logger) ProductRecommender {
	return &productRecommender{
		products: products,
		cart:     cart,
		orders:   orders,
		logger:   logger.With().Str("component", "product_recommender").Logger(),
	}
}

// buildMatrix aggregates paid purchases at full weight and cart contents at
// a fraction of it.
func (r *productRecommender) buildMatrix(ctx context.Context) (map[uint64]map[int64]float64, error) {
	purchases, err := r.orders.ListPurchaseSignals(ctx)
	if err != nil {
		return nil, err
	}
	carts, err := r.cart.ListCartSignals(ctx)
	if err != nil {
		return nil, err
	}

	matrix := make(map[uint64]map[int64]float64)
	add := func(userID uint64, productID int64, score float64) {
		row, ok := matrix[userID]
		if !ok {
			row = make(map[int64]float64)
			matrix[userID] = row
		}
		row[productID] += score
	}
	for _, sig := range purchases {
		add(sig.UserID, sig.ProductID, sig.Score)
	}
	for _, sig := range carts {
		add(sig.UserID, sig.ProductID, sig.Score*cartWeight)
	}
	return matrix, nil
}

type scoredID struct {
	id    int64
	score float64
}

func sortScored(items []scoredID) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].score != items[j].score {
			return items[i].score > items[j].score
		}
		return items[i].id < items[j].id
	})
}

// ForUser blends neighbour-based and category-based suggestions, topping up
// with popular products when those run short.
func (r *productRecommender) ForUser(ctx context.Context, userID uint64, limit int) ([]RecommendedProduct, error) {
	if limit < 1 {
		limit = 5
	}
	half := limit/2 + 1

	userBased, err := r.userBased(ctx, userID, half)
	if err != nil {
		r.logger.Warn().Err(err).Uint64("user_id", userID).Msg("neighbour recommendations failed")
	}
	categoryBased, err := r.categoryBased(ctx, userID, half)
	if err != nil {
		r.logger.Warn().Err(err).Uint64("user_id", userID).Msg("category recommendations failed")
	}

	seen := make(map[int64]bool)
	var merged []RecommendedProduct
	for _, rec := range userBased {
		if !seen[rec.Product.ProductID] {
			rec.Score *= 1.2
			merged = append(merged, rec)
			seen[rec.Product.ProductID] = true
		}
	}
	for _, rec := range categoryBased {
		if len(merged) >= limit {
			break
		}
		if !seen[rec.Product.ProductID] {
			merged = append(merged, rec)
			seen[rec.Product.ProductID] = true
		}
	}
	if len(merged) < limit {
		popular, err := r.PopularProducts(ctx, limit-len(merged))
		if err != nil {
			return merged, nil
		}
		for _, rec := range popular {
			if len(merged) >= limit {
				break
			}
			if !seen[rec.Product.ProductID] {
				merged = append(merged, rec)
				seen[rec.Product.ProductID] = true
			}
		}
	}
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

func (r *productRecommender) userBased(ctx context.Context, userID uint64, limit int) ([]RecommendedProduct, error) {
	matrix, err := r.buildMatrix(ctx)
	if err != nil {
		return nil, err
	}
	own, ok := matrix[userID]
	if !ok {
		return nil, nil
	}

	type neighbour struct {
		id  uint64
		sim float64
	}
	var neighbours []neighbour
	for otherID, other := range matrix {
		if otherID == userID {
			continue
		}
		if sim := recommend.CosineSimilarity(own, other); sim > similarityFloor {
			neighbours = append(neighbours, neighbour{id: otherID, sim: sim})
		}
	}
	sort.SliceStable(neighbours, func(i, j int) bool {
		if neighbours[i].sim != neighbours[j].sim {
			return neighbours[i].sim > neighbours[j].sim
		}
		return neighbours[i].id < neighbours[j].id
	})
	if len(neighbours) > neighbourCount {
		neighbours = neighbours[:neighbourCount]
	}
	if len(neighbours) == 0 {
		return nil, nil
	}

	totalSim := 0.0
	for _, n := range neighbours {
		totalSim += n.sim
	}

	scores := make(map[int64]float64)
	for _, n := range neighbours {
		weight := n.sim / totalSim
		for productID, score := range matrix[n.id] {
			if _, owned := own[productID]; owned {
				continue
			}
			scores[productID] += score * weight
		}
	}

	ranked := make([]scoredID, 0, len(scores))
	for id, score := range scores {
		ranked = append(ranked, scoredID{id: id, score: score})
	}
	sortScored(ranked)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return r.resolve(ctx, ranked, reasonSimilarUsers)
}

func (r *productRecommender) categoryBased(ctx context.Context, userID uint64, limit int) ([]RecommendedProduct, error) {
	categories, err := r.orders.PurchasedCategories(ctx, userID, 3)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, nil
	}
	purchased, err := r.orders.PurchasedProductIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	var recs []RecommendedProduct
	for _, cat := range categories {
		if len(recs) >= limit {
			break
		}
		products, err := r.products.ListActiveByCategory(ctx, cat.Category, purchased, limit)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			if len(recs) >= limit {
				break
			}
			recs = append(recs, RecommendedProduct{Product: p, Score: 0.8, Reason: reasonCategory})
		}
	}
	return recs, nil
}

// SimilarProducts ranks items whose buyer sets overlap the given product's.
func (r *productRecommender) SimilarProducts(ctx context.Context, productID int64, limit int) ([]RecommendedProduct, error) {
	if limit < 1 {
		limit = 5
	}
	matrix, err := r.buildMatrix(ctx)
	if err != nil {
		return nil, err
	}

	// Invert the matrix: product -> buyer vector.
	byProduct := make(map[int64]map[int64]float64)
	for userID, row := range matrix {
		for pid, score := range row {
			vec, ok := byProduct[pid]
			if !ok {
				vec = make(map[int64]float64)
				byProduct[pid] = vec
			}
			vec[int64(userID)] = score
		}
	}
	target, ok := byProduct[productID]
	if !ok {
		return r.PopularProducts(ctx, limit)
	}

	var ranked []scoredID
	for pid, vec := range byProduct {
		if pid == productID {
			continue
		}
		if sim := recommend.CosineSimilarity(target, vec); sim > similarityFloor {
			ranked = append(ranked, scoredID{id: pid, score: sim})
		}
	}
	sortScored(ranked)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if len(ranked) == 0 {
		return r.PopularProducts(ctx, limit)
	}
	return r.resolve(ctx, ranked, reasonAlsoBought)
}

func (r *productRecommender) PopularProducts(ctx context.Context, limit int) ([]RecommendedProduct, error) {
	if limit < 1 {
		limit = 5
	}
	products, err := r.products.ListPopular(ctx, limit)
	if err != nil {
		return nil, err
	}
	recs := make([]RecommendedProduct, 0, len(products))
	for _, p := range products {
		recs = append(recs, RecommendedProduct{Product: p, Score: 0.5, Reason: reasonPopular})
	}
	return recs, nil
}

// resolve maps ranked IDs back to active products, preserving rank order and
// silently dropping anything inactive or deleted.
func (r *productRecommender) resolve(ctx context.Context, ranked []scoredID, reason string) ([]RecommendedProduct, error) {
	ids := make([]int64, 0, len(ranked))
	for _, sc := range ranked {
		ids = append(ids, sc.id)
	}
	products, err := r.products.ListActiveByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]dbmysql.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}
	recs := make([]RecommendedProduct, 0, len(ranked))
	for _, sc := range ranked {
		p, ok := byID[sc.id]
		if !ok {
			continue
		}
		recs = append(recs, RecommendedProduct{Product: p, Score: sc.score, Reason: reason})
	}
	return recs, nil
}
