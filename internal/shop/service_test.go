package shop

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"contentshop/internal/dbmysql"
)

type shopFixture struct {
	svc      ShopService
	products *MockProductRepository
	cart     *MockCartRepository
	orders   *MockOrderRepository
	wishlist *MockWishlistRepository
	reviews  *MockReviewRepository
	coupons  *MockCouponRepository
}

func newShopFixture(t *testing.T) *shopFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &shopFixture{
		products: NewMockProductRepository(ctrl),
		cart:     NewMockCartRepository(ctrl),
		orders:   NewMockOrderRepository(ctrl),
		wishlist: NewMockWishlistRepository(ctrl),
		reviews:  NewMockReviewRepository(ctrl),
		coupons:  NewMockCouponRepository(ctrl),
	}
	f.svc = NewShopService(f.products, f.cart, f.orders, f.wishlist, f.reviews, f.coupons, zerolog.Nop())
	return f
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func physicalProduct(id int64, stock int) *dbmysql.Product {
	return &dbmysql.Product{
		ProductID:     id,
		Name:          "Desk Lamp",
		Price:         price("25.00"),
		Category:      "Home & Garden",
		StockQuantity: stock,
		Active:        true,
		SellerID:      7,
	}
}

func TestCreateProduct_RejectsUnknownCategory(t *testing.T) {
	f := newShopFixture(t)

	_, err := f.svc.CreateProduct(context.Background(), 7, ProductInput{
		Name:     "Mystery Box",
		Category: "Antiques",
		Price:    price("10.00"),
	})
	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestGetProduct_HidesInactiveFromOtherUsers(t *testing.T) {
	f := newShopFixture(t)
	p := physicalProduct(3, 5)
	p.Active = false

	f.products.EXPECT().GetProductByID(gomock.Any(), int64(3)).Return(p, nil).Times(2)

	_, err := f.svc.GetProduct(context.Background(), 99, 3)
	require.ErrorIs(t, err, ErrProductNotFound)

	got, err := f.svc.GetProduct(context.Background(), 7, 3)
	require.NoError(t, err)
	require.Equal(t, int64(3), got.ProductID)
}

func TestDeleteProduct_DeactivatesWhenOrdered(t *testing.T) {
	f := newShopFixture(t)
	p := physicalProduct(3, 5)

	f.products.EXPECT().GetProductByID(gomock.Any(), int64(3)).Return(p, nil)
	f.products.EXPECT().HasOrderHistory(gomock.Any(), int64(3)).Return(true, nil)
	f.products.EXPECT().DeactivateProduct(gomock.Any(), int64(3)).Return(nil)

	removed, err := f.svc.DeleteProduct(context.Background(), 7, 3)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestDeleteProduct_RemovesWithoutHistory(t *testing.T) {
	f := newShopFixture(t)
	p := physicalProduct(3, 5)

	f.products.EXPECT().GetProductByID(gomock.Any(), int64(3)).Return(p, nil)
	f.products.EXPECT().HasOrderHistory(gomock.Any(), int64(3)).Return(false, nil)
	f.products.EXPECT().DeleteProduct(gomock.Any(), int64(3)).Return(nil)

	removed, err := f.svc.DeleteProduct(context.Background(), 7, 3)
	require.NoError(t, err)
	require.True(t, removed)
}

func TestDeleteProduct_SellerOnly(t *testing.T) {
	f := newShopFixture(t)
	f.products.EXPECT().GetProductByID(gomock.Any(), int64(3)).Return(physicalProduct(3, 5), nil)

	_, err := f.svc.DeleteProduct(context.Background(), 42, 3)
	require.ErrorIs(t, err, ErrNotSeller)
}

func TestAddToCart_CreatesNewRow(t *testing.T) {
	f := newShopFixture(t)
	p := physicalProduct(3, 5)

	f.products.EXPECT().GetProductByID(gomock.Any(), int64(3)).Return(p, nil)
	f.cart.EXPECT().GetCartItem(gomock.Any(), uint64(1), int64(3)).Return(nil, gorm.ErrRecordNotFound)
	f.cart.EXPECT().CreateCartItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item *dbmysql.CartItem) error {
			item.CartItemID = 11
			return nil
		})

	item, err := f.svc.AddToCart(context.Background(), 1, 3, 2)
	require.NoError(t, err)
	require.Equal(t, 2, item.Quantity)
	require.Equal(t, int64(11), item.CartItemID)
}

func TestAddToCart_TopsUpExistingQuantity(t *testing.T) {
	f := newShopFixture(t)
	p := physicalProduct(3, 5)
	existing := &dbmysql.CartItem{CartItemID: 11, UserID: 1, ProductID: 3, Quantity: 2}

	f.products.EXPECT().GetProductByID(gomock.Any(), int64(3)).Return(p, nil)
	f.cart.EXPECT().GetCartItem(gomock.Any(), uint64(1), int64(3)).Return(existing, nil)
	f.cart.EXPECT().UpdateQuantity(gomock.Any(), int64(11), 4).Return(nil)

	item, err := f.svc.AddToCart(context.Background(), 1, 3, 2)
	require.NoError(t, err)
	require.Equal(t, 4, item.Quantity)
}

func TestAddToCart_RejectsOverStock(t *testing.T) {
	f := newShopFixture(t)
	p := physicalProduct(3, 3)
	existing := &dbmysql.CartItem{CartItemID: 11, UserID: 1, ProductID: 3, Quantity: 2}

	f.products.EXPECT().GetProductByID(gomock.Any(), int64(3)).Return(p, nil)
	f.cart.EXPECT().GetCartItem(gomock.Any(), uint64(1), int64(3)).Return(existing, nil)

	_, err := f.svc.AddToCart(context.Background(), 1, 3, 2)
	require.ErrorIs(t, err, ErrInsufficientStock)
}

func TestAddToCart_DigitalIgnoresStock(t *testing.T) {
	f := newShopFixture(t)
	p := physicalProduct(3, 0)
	p.Digital = true

	f.products.EXPECT().GetProductByID(gomock.Any(), int64(3)).Return(p, nil)
	f.cart.EXPECT().GetCartItem(gomock.Any(), uint64(1), int64(3)).Return(nil, gorm.ErrRecordNotFound)
	f.cart.EXPECT().CreateCartItem(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.AddToCart(context.Background(), 1, 3, 10)
	require.NoError(t, err)
}

func TestAddToCart_InactiveProduct(t *testing.T) {
	f := newShopFixture(t)
	p := physicalProduct(3, 5)
	p.Active = false

	f.products.EXPECT().GetProductByID(gomock.Any(), int64(3)).Return(p, nil)

	_, err := f.svc.AddToCart(context.Background(), 1, 3, 1)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateCartItem_ZeroQuantityRemoves(t *testing.T) {
	f := newShopFixture(t)
	item := &dbmysql.CartItem{CartItemID: 11, UserID: 1, ProductID: 3, Quantity: 2, Product: *physicalProduct(3, 5)}

	f.cart.EXPECT().GetCartItemByID(gomock.Any(), uint64(1), int64(11)).Return(item, nil)
	f.cart.EXPECT().DeleteCartItem(gomock.Any(), uint64(1), int64(11)).Return(nil)

	require.NoError(t, f.svc.UpdateCartItem(context.Background(), 1, 11, 0))
}

func TestUpdateCartItem_EnforcesStock(t *testing.T) {
	f := newShopFixture(t)
	item := &dbmysql.CartItem{CartItemID: 11, UserID: 1, ProductID: 3, Quantity: 2, Product: *physicalProduct(3, 3)}

	f.cart.EXPECT().GetCartItemByID(gomock.Any(), uint64(1), int64(11)).Return(item, nil)

	err := f.svc.UpdateCartItem(context.Background(), 1, 11, 5)
	require.ErrorIs(t, err, ErrInsufficientStock)
}

func TestCart_SumsLineTotals(t *testing.T) {
	f := newShopFixture(t)
	lamp := *physicalProduct(3, 5)
	book := dbmysql.Product{ProductID: 4, Name: "Novel", Price: price("9.50"), Category: "Books", Active: true}

	f.cart.EXPECT().ListCart(gomock.Any(), uint64(1)).Return([]dbmysql.CartItem{
		{CartItemID: 11, ProductID: 3, Quantity: 2, Product: lamp},
		{CartItemID: 12, ProductID: 4, Quantity: 1, Product: book},
	}, nil)

	view, err := f.svc.Cart(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 3, view.Count)
	require.True(t, view.Total.Equal(price("59.50")), "got %s", view.Total)
}

func TestComparePrice_Positioning(t *testing.T) {
	f := newShopFixture(t)
	p := physicalProduct(3, 5)
	p.Price = price("10.00")

	f.products.EXPECT().GetProductByID(gomock.Any(), int64(3)).Return(p, nil)
	f.products.EXPECT().ActivePrices(gomock.Any(), "home & garden").Return([]decimal.Decimal{
		price("10.00"), price("20.00"), price("30.00"), price("40.00"),
	}, nil)

	cmp, err := f.svc.ComparePrice(context.Background(), 3)
	require.NoError(t, err)
	require.InDelta(t, 25.0, cmp.Average, 0.001)
	require.InDelta(t, 0.0, cmp.Percentile, 0.001)
	require.Equal(t, "excellent", cmp.ValueRating)
	require.Equal(t, "below_market", cmp.Trend)
	require.Contains(t, cmp.Insights, "Lowest price in its category")
}

func TestComparePrice_PremiumPricing(t *testing.T) {
	f := newShopFixture(t)
	p := physicalProduct(3, 5)
	p.Price = price("36.00")

	f.products.EXPECT().GetProductByID(gomock.Any(), int64(3)).Return(p, nil)
	f.products.EXPECT().ActivePrices(gomock.Any(), "home & garden").Return([]decimal.Decimal{
		price("20.00"), price("30.00"), price("36.00"), price("34.00"),
	}, nil)

	cmp, err := f.svc.ComparePrice(context.Background(), 3)
	require.NoError(t, err)
	require.InDelta(t, 30.0, cmp.Average, 0.001)
	require.InDelta(t, 75.0, cmp.Percentile, 0.001)
	require.Equal(t, "premium", cmp.ValueRating)
	require.Equal(t, "above_market", cmp.Trend)
}

func TestSubmitReview_MarksVerifiedPurchase(t *testing.T) {
	f := newShopFixture(t)

	f.products.EXPECT().GetProductByID(gomock.Any(), int64(3)).Return(physicalProduct(3, 5), nil)
	f.orders.EXPECT().HasPaidPurchase(gomock.Any(), uint64(1), int64(3)).Return(true, nil)
	f.reviews.EXPECT().GetReview(gomock.Any(), int64(3), uint64(1)).Return(nil, gorm.ErrRecordNotFound)
	f.reviews.EXPECT().CreateReview(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, review *dbmysql.ProductReview) error {
			review.ReviewID = 5
			return nil
		})

	review, err := f.svc.SubmitReview(context.Background(), 1, 3, 4, "  Solid lamp ", "Does the job.")
	require.NoError(t, err)
	require.True(t, review.VerifiedPurchase)
	require.Equal(t, "Solid lamp", review.Title)
}

func TestSubmitReview_UpdatesExisting(t *testing.T) {
	f := newShopFixture(t)
	existing := &dbmysql.ProductReview{ReviewID: 5, ProductID: 3, UserID: 1, Rating: 2}

	f.products.EXPECT().GetProductByID(gomock.Any(), int64(3)).Return(physicalProduct(3, 5), nil)
	f.orders.EXPECT().HasPaidPurchase(gomock.Any(), uint64(1), int64(3)).Return(false, nil)
	f.reviews.EXPECT().GetReview(gomock.Any(), int64(3), uint64(1)).Return(existing, nil)
	f.reviews.EXPECT().UpdateReview(gomock.Any(), existing).Return(nil)

	review, err := f.svc.SubmitReview(context.Background(), 1, 3, 5, "Changed my mind", "")
	require.NoError(t, err)
	require.Equal(t, int64(5), review.ReviewID)
	require.Equal(t, 5, review.Rating)
}

func TestSubmitReview_RejectsBadRating(t *testing.T) {
	f := newShopFixture(t)

	_, err := f.svc.SubmitReview(context.Background(), 1, 3, 6, "", "")
	require.ErrorIs(t, err, ErrInvalidRating)
}

func TestProductReviews_AverageRounding(t *testing.T) {
	f := newShopFixture(t)
	f.reviews.EXPECT().ListReviews(gomock.Any(), int64(3)).Return([]dbmysql.ProductReview{
		{Rating: 5}, {Rating: 4}, {Rating: 4},
	}, nil)

	summary, err := f.svc.ProductReviews(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, 3, summary.TotalReviews)
	require.InDelta(t, 4.3, summary.AverageRating, 0.001)
}

func TestWishlist_RejectsDuplicate(t *testing.T) {
	f := newShopFixture(t)

	f.products.EXPECT().GetProductByID(gomock.Any(), int64(3)).Return(physicalProduct(3, 5), nil)
	f.wishlist.EXPECT().GetWishlistItem(gomock.Any(), uint64(1), int64(3)).
		Return(&dbmysql.WishlistItem{WishlistItemID: 2}, nil)

	err := f.svc.AddToWishlist(context.Background(), 1, 3)
	require.ErrorIs(t, err, ErrAlreadyInWishlist)
}

func TestWishlist_RemoveMissing(t *testing.T) {
	f := newShopFixture(t)
	f.wishlist.EXPECT().DeleteWishlistItem(gomock.Any(), uint64(1), int64(3)).Return(int64(0), nil)

	err := f.svc.RemoveFromWishlist(context.Background(), 1, 3)
	require.ErrorIs(t, err, ErrNotInWishlist)
}

func activeCoupon(code string) *dbmysql.Coupon {
	return &dbmysql.Coupon{
		CouponID:      9,
		Code:          code,
		DiscountType:  dbmysql.DiscountPercentage,
		DiscountValue: price("20"),
		MinimumAmount: price("50.00"),
		PerUserLimit:  1,
		Active:        true,
	}
}

func TestValidateCoupon_PercentageDiscount(t *testing.T) {
	f := newShopFixture(t)

	f.coupons.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").Return(activeCoupon("SAVE20"), nil)
	f.coupons.EXPECT().CountRedemptions(gomock.Any(), int64(9), uint64(1)).Return(int64(0), nil)

	quote, err := f.svc.ValidateCoupon(context.Background(), 1, " save20 ", price("100.00"))
	require.NoError(t, err)
	require.True(t, quote.Discount.Equal(price("20.00")), "got %s", quote.Discount)
}

func TestValidateCoupon_CapsPercentage(t *testing.T) {
	f := newShopFixture(t)
	coupon := activeCoupon("SAVE20")
	coupon.MaximumDiscount = price("15.00")

	f.coupons.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").Return(coupon, nil)
	f.coupons.EXPECT().CountRedemptions(gomock.Any(), int64(9), uint64(1)).Return(int64(0), nil)

	quote, err := f.svc.ValidateCoupon(context.Background(), 1, "SAVE20", price("100.00"))
	require.NoError(t, err)
	require.True(t, quote.Discount.Equal(price("15.00")), "got %s", quote.Discount)
}

func TestValidateCoupon_BelowMinimum(t *testing.T) {
	f := newShopFixture(t)
	f.coupons.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").Return(activeCoupon("SAVE20"), nil)

	_, err := f.svc.ValidateCoupon(context.Background(), 1, "SAVE20", price("30.00"))
	require.ErrorIs(t, err, ErrCouponMinimum)
}

func TestValidateCoupon_PerUserLimit(t *testing.T) {
	f := newShopFixture(t)
	f.coupons.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").Return(activeCoupon("SAVE20"), nil)
	f.coupons.EXPECT().CountRedemptions(gomock.Any(), int64(9), uint64(1)).Return(int64(1), nil)

	_, err := f.svc.ValidateCoupon(context.Background(), 1, "SAVE20", price("100.00"))
	require.ErrorIs(t, err, ErrCouponExhausted)
}

func TestValidateCoupon_Expired(t *testing.T) {
	f := newShopFixture(t)
	coupon := activeCoupon("SAVE20")
	past := time.Now().Add(-time.Hour)
	coupon.ExpiresAt = &past

	f.coupons.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").Return(coupon, nil)

	_, err := f.svc.ValidateCoupon(context.Background(), 1, "SAVE20", price("100.00"))
	require.ErrorIs(t, err, ErrCouponInvalid)
}

func TestValidateCoupon_UnknownCode(t *testing.T) {
	f := newShopFixture(t)
	f.coupons.EXPECT().GetCouponByCode(gomock.Any(), "NOPE").Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.ValidateCoupon(context.Background(), 1, "nope", price("100.00"))
	require.ErrorIs(t, err, ErrCouponNotFound)
}
