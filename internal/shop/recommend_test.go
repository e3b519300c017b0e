package shop

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"contentshop/internal/dbmysql"
)

type recommenderFixture struct {
	rec      ProductRecommender
	products *MockProductRepository
	cart     *MockCartRepository
	orders   *MockOrderRepository
}

func newRecommenderFixture(t *testing.T) *recommenderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &recommenderFixture{
		products: NewMockProductRepository(ctrl),
		cart:     NewMockCartRepository(ctrl),
		orders:   NewMockOrderRepository(ctrl),
	}
	f.rec = NewProductRecommender(f.products, f.cart, f.orders, zerolog.Nop())
	return f
}

func namedProduct(id int64, name string) dbmysql.Product {
	return dbmysql.Product{ProductID: id, Name: name, Price: price("10.00"), Category: "Books", Active: true}
}

// Two users share purchases of products 1 and 2; the neighbour also bought
// product 3, which should surface for the target user.
func neighbourSignals() []PurchaseSignal {
	return []PurchaseSignal{
		{UserID: 1, ProductID: 1, Score: 2},
		{UserID: 1, ProductID: 2, Score: 1},
		{UserID: 2, ProductID: 1, Score: 2},
		{UserID: 2, ProductID: 2, Score: 1},
		{UserID: 2, ProductID: 3, Score: 3},
	}
}

func TestForUser_BlendsNeighbourAndCategorySuggestions(t *testing.T) {
	f := newRecommenderFixture(t)

	f.orders.EXPECT().ListPurchaseSignals(gomock.Any()).Return(neighbourSignals(), nil)
	f.cart.EXPECT().ListCartSignals(gomock.Any()).Return(nil, nil)
	f.products.EXPECT().ListActiveByIDs(gomock.Any(), []int64{3}).
		Return([]dbmysql.Product{namedProduct(3, "Atlas")}, nil)

	f.orders.EXPECT().PurchasedCategories(gomock.Any(), uint64(1), 3).
		Return([]CategoryCount{{Category: "Books", Quantity: 3}}, nil)
	f.orders.EXPECT().PurchasedProductIDs(gomock.Any(), uint64(1)).Return([]int64{1, 2}, nil)
	f.products.EXPECT().ListActiveByCategory(gomock.Any(), "Books", []int64{1, 2}, 3).
		Return([]dbmysql.Product{namedProduct(5, "Cookbook")}, nil)

	f.products.EXPECT().ListPopular(gomock.Any(), 2).
		Return([]dbmysql.Product{namedProduct(6, "Bestseller")}, nil)

	recs, err := f.rec.ForUser(context.Background(), 1, 4)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	require.Equal(t, int64(3), recs[0].Product.ProductID)
	require.InDelta(t, 3.6, recs[0].Score, 0.001)
	require.Equal(t, reasonSimilarUsers, recs[0].Reason)

	require.Equal(t, int64(5), recs[1].Product.ProductID)
	require.InDelta(t, 0.8, recs[1].Score, 0.001)

	require.Equal(t, int64(6), recs[2].Product.ProductID)
	require.Equal(t, reasonPopular, recs[2].Reason)
}

func TestForUser_UnknownUserFallsBackToPopular(t *testing.T) {
	f := newRecommenderFixture(t)

	f.orders.EXPECT().ListPurchaseSignals(gomock.Any()).Return(nil, nil)
	f.cart.EXPECT().ListCartSignals(gomock.Any()).Return(nil, nil)
	f.orders.EXPECT().PurchasedCategories(gomock.Any(), uint64(9), 3).Return(nil, nil)
	f.products.EXPECT().ListPopular(gomock.Any(), 4).
		Return([]dbmysql.Product{namedProduct(6, "Bestseller")}, nil)

	recs, err := f.rec.ForUser(context.Background(), 9, 4)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, reasonPopular, recs[0].Reason)
}

func TestSimilarProducts_RanksByBuyerOverlap(t *testing.T) {
	f := newRecommenderFixture(t)

	f.orders.EXPECT().ListPurchaseSignals(gomock.Any()).Return(neighbourSignals(), nil)
	f.cart.EXPECT().ListCartSignals(gomock.Any()).Return(nil, nil)
	f.products.EXPECT().ListActiveByIDs(gomock.Any(), []int64{2, 3}).Return([]dbmysql.Product{
		namedProduct(2, "Almanac"),
		namedProduct(3, "Atlas"),
	}, nil)

	recs, err := f.rec.SimilarProducts(context.Background(), 1, 5)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// Product 2 shares both buyers with product 1, product 3 only one.
	require.Equal(t, int64(2), recs[0].Product.ProductID)
	require.InDelta(t, 1.0, recs[0].Score, 0.001)
	require.Equal(t, int64(3), recs[1].Product.ProductID)
	require.InDelta(t, 0.707, recs[1].Score, 0.001)
	require.Equal(t, reasonAlsoBought, recs[0].Reason)
}

func TestSimilarProducts_UnknownProductFallsBackToPopular(t *testing.T) {
	f := newRecommenderFixture(t)

	f.orders.EXPECT().ListPurchaseSignals(gomock.Any()).Return(neighbourSignals(), nil)
	f.cart.EXPECT().ListCartSignals(gomock.Any()).Return(nil, nil)
	f.products.EXPECT().ListPopular(gomock.Any(), 5).
		Return([]dbmysql.Product{namedProduct(6, "Bestseller")}, nil)

	recs, err := f.rec.SimilarProducts(context.Background(), 999, 5)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, reasonPopular, recs[0].Reason)
}

func TestForUser_CartSignalsCountWeaker(t *testing.T) {
	f := newRecommenderFixture(t)

	// The neighbour's interest in product 3 comes only from their cart, so
	// its score carries the cart weight.
	f.orders.EXPECT().ListPurchaseSignals(gomock.Any()).Return([]PurchaseSignal{
		{UserID: 1, ProductID: 1, Score: 2},
		{UserID: 2, ProductID: 1, Score: 2},
	}, nil)
	f.cart.EXPECT().ListCartSignals(gomock.Any()).Return([]PurchaseSignal{
		{UserID: 2, ProductID: 3, Score: 10},
	}, nil)
	f.products.EXPECT().ListActiveByIDs(gomock.Any(), []int64{3}).
		Return([]dbmysql.Product{namedProduct(3, "Atlas")}, nil)

	f.orders.EXPECT().PurchasedCategories(gomock.Any(), uint64(1), 3).Return(nil, nil)
	f.products.EXPECT().ListPopular(gomock.Any(), 3).Return(nil, nil)

	recs, err := f.rec.ForUser(context.Background(), 1, 4)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	// 10 cart units at 0.3 weight, boosted 1.2 for the neighbour channel.
	require.InDelta(t, 3.6, recs[0].Score, 0.001)
}
