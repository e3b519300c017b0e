package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"contentshop/internal/dbmysql"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrNotSeller         = errors.New("user is not the product seller")
	ErrInvalidCategory   = errors.New("unknown product category")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrAlreadyInWishlist = errors.New("product already in wishlist")
	ErrNotInWishlist     = errors.New("product not in wishlist")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrCouponNotFound    = errors.New("coupon code not found")
	ErrCouponInvalid     = errors.New("coupon is expired or inactive")
	ErrCouponMinimum     = errors.New("cart total below coupon minimum")
	ErrCouponExhausted   = errors.New("coupon usage limit reached")
)

// ProductCategories is the fixed catalog taxonomy.
var ProductCategories = []string{
	"Electronics",
	"Clothing",
	"Books",
	"Home & Garden",
	"Sports",
	"Toys",
	"Food",
	"Other",
}

const defaultPageSize = 12

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	ImageURL      string
	Category      string
	StockQuantity int
	Digital       bool
	Seasonal      bool
	SeasonType    string
	SeasonalStart *time.Time
	SeasonalEnd   *time.Time
	FeaturedUntil *time.Time
}

// CatalogPage is one page of the public product listing.
type CatalogPage struct {
	Products   []dbmysql.Product `json:"products"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int               `json:"total_pages"`
}

// CartView is the cart with its running total.
type CartView struct {
	Items []dbmysql.CartItem `json:"items"`
	Total decimal.Decimal    `json:"total"`
	Count int                `json:"count"`
}

// PriceComparison positions one product against comparable active listings.
type PriceComparison struct {
	Price       float64  `json:"price"`
	Average     float64  `json:"average"`
	Lowest      float64  `json:"lowest"`
	Highest     float64  `json:"highest"`
	Percentile  float64  `json:"percentile"`
	ValueRating string   `json:"value_rating"`
	Trend       string   `json:"trend"`
	Insights    []string `json:"insights"`
}

// ReviewSummary is a product's reviews with aggregate rating.
type ReviewSummary struct {
	Reviews       []dbmysql.ProductReview `json:"reviews"`
	AverageRating float64                 `json:"average_rating"`
	TotalReviews  int                     `json:"total_reviews"`
}

// CouponQuote is a successfully validated coupon applied to a cart total.
type CouponQuote struct {
	Code          string          `json:"code"`
	Description   string          `json:"description,omitempty"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	Discount      decimal.Decimal `json:"discount"`
}

type ShopService interface {
	CreateProduct(ctx context.Context, sellerID uint64, in ProductInput) (*dbmysql.Product, error)
	GetProduct(ctx context.Context, viewerID uint64, productID int64) (*dbmysql.Product, error)
	UpdateProduct(ctx context.Context, sellerID uint64, productID int64, in ProductInput) (*dbmysql.Product, error)
	DeleteProduct(ctx context.Context, sellerID uint64, productID int64) (removed bool, err error)
	Catalog(ctx context.Context, f CatalogFilter) (*CatalogPage, error)
	NewArrivals(ctx context.Context, limit int) ([]dbmysql.Product, error)
	SeasonalPicks(ctx context.Context, limit int) ([]dbmysql.Product, error)
	ComparePrice(ctx context.Context, productID int64) (*PriceComparison, error)

	AddToCart(ctx context.Context, userID uint64, productID int64, qty int) (*dbmysql.CartItem, error)
	UpdateCartItem(ctx context.Context, userID uint64, cartItemID int64, qty int) error
	RemoveCartItem(ctx context.Context, userID uint64, cartItemID int64) error
	Cart(ctx context.Context, userID uint64) (*CartView, error)
	CartCount(ctx context.Context, userID uint64) (int, error)

	AddToWishlist(ctx context.Context, userID uint64, productID int64) error
	RemoveFromWishlist(ctx context.Context, userID uint64, productID int64) error
	ClearWishlist(ctx context.Context, userID uint64) error
	Wishlist(ctx context.Context, userID uint64) ([]dbmysql.WishlistItem, error)
	InWishlist(ctx context.Context, userID uint64, productID int64) (bool, error)

	SubmitReview(ctx context.Context, userID uint64, productID int64, rating int, title, body string) (*dbmysql.ProductReview, error)
	ProductReviews(ctx context.Context, productID int64) (*ReviewSummary, error)
	VoteHelpful(ctx context.Context, reviewID int64) error

	ValidateCoupon(ctx context.Context, userID uint64, code string, cartTotal decimal.Decimal) (*CouponQuote, error)
}

type shopService struct {
	products ProductRepository
	cart     CartRepository
	orders   OrderRepository
	wishlist WishlistRepository
	reviews  ReviewRepository
	coupons  CouponRepository
	logger   zerolog.Logger
	now      func() time.Time
}

func NewShopService(
	products ProductRepository,
	cart CartRepository,
	orders OrderRepository,
	wishlist WishlistRepository,
	reviews ReviewRepository,
	coupons CouponRepository,
	logger zerolog.Logger,
) ShopService {
	return &shopService{
		products: products,
		cart:     cart,
		orders:   orders,
		wishlist: wishlist,
		reviews:  reviews,
		coupons:  coupons,
		logger:   logger.With().Str("component", "shop").Logger(),
		now:      time.Now,
	}
}

func validCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}

func (s *shopService) CreateProduct(ctx context.Context, sellerID uint64, in ProductInput) (*dbmysql.Product, error) {
	if !validCategory(in.Category) {
		return nil, ErrInvalidCategory
	}
	p := &dbmysql.Product{
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Price:         in.Price,
		ImageURL:      in.ImageURL,
		Category:      in.Category,
		StockQuantity: in.StockQuantity,
		Active:        true,
		Digital:       in.Digital,
		NewArrival:    true,
		FeaturedUntil: in.FeaturedUntil,
		Seasonal:      in.Seasonal,
		SeasonType:    in.SeasonType,
		SeasonalStart: in.SeasonalStart,
		SeasonalEnd:   in.SeasonalEnd,
		SellerID:      sellerID,
	}
	if err := s.products.CreateProduct(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.logger.Info().Int64("product_id", p.ProductID).Str("category", p.Category).Msg("product created")
	return p, nil
}

// GetProduct hides inactive products from everyone except their seller.
func (s *shopService) GetProduct(ctx context.Context, viewerID uint64, productID int64) (*dbmysql.Product, error) {
	p, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if !p.Active && p.SellerID != viewerID {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *shopService) UpdateProduct(ctx context.Context, sellerID uint64, productID int64, in ProductInput) (*dbmysql.Product, error) {
	p, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if p.SellerID != sellerID {
		return nil, ErrNotSeller
	}
	if !validCategory(in.Category) {
		return nil, ErrInvalidCategory
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Price = in.Price
	p.ImageURL = in.ImageURL
	p.Category = in.Category
	p.StockQuantity = in.StockQuantity
	p.Digital = in.Digital
	p.Seasonal = in.Seasonal
	p.SeasonType = in.SeasonType
	p.SeasonalStart = in.SeasonalStart
	p.SeasonalEnd = in.SeasonalEnd
	p.FeaturedUntil = in.FeaturedUntil

	if err := s.products.UpdateProduct(ctx, p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

// DeleteProduct removes the product unless it appears in order history, in
// which case it is deactivated so past orders keep a valid reference. The
// returned flag reports whether the row was actually deleted.
func (s *shopService) DeleteProduct(ctx context.Context, sellerID uint64, productID int64) (bool, error) {
	p, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrProductNotFound
		}
		return false, err
	}
	if p.SellerID != sellerID {
		return false, ErrNotSeller
	}

	ordered, err := s.products.HasOrderHistory(ctx, productID)
	if err != nil {
		return false, err
	}
	if ordered {
		if err := s.products.DeactivateProduct(ctx, productID); err != nil {
			return false, err
		}
		s.logger.Info().Int64("product_id", productID).Msg("product deactivated, order history exists")
		return false, nil
	}
	if err := s.products.DeleteProduct(ctx, productID); err != nil {
		return false, err
	}
	s.logger.Info().Int64("product_id", productID).Msg("product deleted")
	return true, nil
}

func (s *shopService) Catalog(ctx context.Context, f CatalogFilter) (*CatalogPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = defaultPageSize
	}
	products, total, err := s.products.ListCatalog(ctx, f)
	if err != nil {
		return nil, err
	}
	pages := int((total + int64(f.PerPage) - 1) / int64(f.PerPage))
	return &CatalogPage{
		Products:   products,
		Total:      total,
		Page:       f.Page,
		PerPage:    f.PerPage,
		TotalPages: pages,
	}, nil
}

func (s *shopService) NewArrivals(ctx context.Context, limit int) ([]dbmysql.Product, error) {
	if limit < 1 {
		limit = defaultPageSize
	}
	// Over-fetch because the arrival window is evaluated per product.
	recent, err := s.products.ListRecentActive(ctx, limit*3)
	if err != nil {
		return nil, err
	}
	now := s.now()
	arrivals := make([]dbmysql.Product, 0, limit)
	for _, p := range recent {
		if p.IsNewArrival(now) {
			arrivals = append(arrivals, p)
			if len(arrivals) == limit {
				break
			}
		}
	}
	return arrivals, nil
}

func (s *shopService) SeasonalPicks(ctx context.Context, limit int) ([]dbmysql.Product, error) {
	if limit < 1 {
		limit = defaultPageSize
	}
	active, err := s.products.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	picks := make([]dbmysql.Product, 0, limit)
	for _, p := range active {
		if p.Seasonal && p.InSeason(now) {
			picks = append(picks, p)
			if len(picks) == limit {
				break
			}
		}
	}
	return picks, nil
}

// ComparePrice positions the product's price inside the distribution of
// comparable active listings. Comparables come from the same category; when
// that yields nothing the whole active catalog is used.
func (s *shopService) ComparePrice(ctx context.Context, productID int64) (*PriceComparison, error) {
	p, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	prices, err := s.products.ActivePrices(ctx, strings.ToLower(p.Category))
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		prices, err = s.products.ActivePrices(ctx, "")
		if err != nil {
			return nil, err
		}
	}
	if len(prices) == 0 {
		return nil, ErrProductNotFound
	}

	current := p.Price.InexactFloat64()
	lowest := prices[0].InexactFloat64()
	highest := lowest
	sum := 0.0
	below := 0
	for _, d := range prices {
		v := d.InexactFloat64()
		sum += v
		if v < lowest {
			lowest = v
		}
		if v > highest {
			highest = v
		}
		if v < current {
			below++
		}
	}
	avg := sum / float64(len(prices))
	percentile := float64(below) / float64(len(prices)) * 100

	cmp := &PriceComparison{
		Price:      current,
		Average:    avg,
		Lowest:     lowest,
		Highest:    highest,
		Percentile: percentile,
	}

	switch {
	case current <= 0.8*avg:
		cmp.ValueRating = "excellent"
	case current <= 0.9*avg:
		cmp.ValueRating = "good"
	case current <= 1.1*avg:
		cmp.ValueRating = "average"
	case current <= 1.3*avg:
		cmp.ValueRating = "premium"
	default:
		cmp.ValueRating = "high"
	}

	switch {
	case current < 0.9*avg:
		cmp.Trend = "below_market"
	case current > 1.1*avg:
		cmp.Trend = "above_market"
	default:
		cmp.Trend = "neutral"
	}

	switch cmp.ValueRating {
	case "excellent", "good":
		cmp.Insights = append(cmp.Insights,
			fmt.Sprintf("Priced below %d%% of comparable products", 100-int(percentile)))
	case "premium", "high":
		cmp.Insights = append(cmp.Insights,
			fmt.Sprintf("Priced above %d%% of comparable products", int(percentile)))
	}
	if current == lowest {
		cmp.Insights = append(cmp.Insights, "Lowest price in its category")
	}
	if cmp.Trend == "above_market" {
		cmp.Insights = append(cmp.Insights,
			fmt.Sprintf("%.0f%% above the category average", (current/avg-1)*100))
	}
	return cmp, nil
}

// AddToCart upserts the cart row, topping up quantity when the product is
// already present. Stock is only enforced for physical goods.
func (s *shopService) AddToCart(ctx context.Context, userID uint64, productID int64, qty int) (*dbmysql.CartItem, error) {
	if qty < 1 {
		qty = 1
	}
	p, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if !p.Active {
		return nil, ErrProductNotFound
	}

	existing, err := s.cart.GetCartItem(ctx, userID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	wanted := qty
	if existing != nil {
		wanted += existing.Quantity
	}
	if !p.Digital && wanted > p.StockQuantity {
		return nil, ErrInsufficientStock
	}

	if existing != nil {
		if err := s.cart.UpdateQuantity(ctx, existing.CartItemID, wanted); err != nil {
			return nil, err
		}
		existing.Quantity = wanted
		existing.Product = *p
		return existing, nil
	}

	item := &dbmysql.CartItem{UserID: userID, ProductID: productID, Quantity: qty}
	if err := s.cart.CreateCartItem(ctx, item); err != nil {
		return nil, err
	}
	item.Product = *p
	return item, nil
}

// UpdateCartItem sets an absolute quantity. Zero or less removes the row.
func (s *shopService) UpdateCartItem(ctx context.Context, userID uint64, cartItemID int64, qty int) error {
	item, err := s.cart.GetCartItemByID(ctx, userID, cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartItemNotFound
		}
		return err
	}
	if qty < 1 {
		return s.cart.DeleteCartItem(ctx, userID, cartItemID)
	}
	if !item.Product.Digital && qty > item.Product.StockQuantity {
		return ErrInsufficientStock
	}
	return s.cart.UpdateQuantity(ctx, cartItemID, qty)
}

func (s *shopService) RemoveCartItem(ctx context.Context, userID uint64, cartItemID int64) error {
	return s.cart.DeleteCartItem(ctx, userID, cartItemID)
}

func (s *shopService) Cart(ctx context.Context, userID uint64) (*CartView, error) {
	items, err := s.cart.ListCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := &CartView{Items: items, Total: decimal.Zero}
	for i := range items {
		view.Total = view.Total.Add(items[i].LineTotal())
		view.Count += items[i].Quantity
	}
	return view, nil
}

func (s *shopService) CartCount(ctx context.Context, userID uint64) (int, error) {
	return s.cart.CountItems(ctx, userID)
}

func (s *shopService) AddToWishlist(ctx context.Context, userID uint64, productID int64) error {
	p, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	if !p.Active {
		return ErrProductNotFound
	}
	if _, err := s.wishlist.GetWishlistItem(ctx, userID, productID); err == nil {
		return ErrAlreadyInWishlist
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.wishlist.AddWishlistItem(ctx, &dbmysql.WishlistItem{UserID: userID, ProductID: productID})
}

func (s *shopService) RemoveFromWishlist(ctx context.Context, userID uint64, productID int64) error {
	removed, err := s.wishlist.DeleteWishlistItem(ctx, userID, productID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNotInWishlist
	}
	return nil
}

func (s *shopService) ClearWishlist(ctx context.Context, userID uint64) error {
	return s.wishlist.ClearWishlist(ctx, userID)
}

func (s *shopService) Wishlist(ctx context.Context, userID uint64) ([]dbmysql.WishlistItem, error) {
	return s.wishlist.ListWishlist(ctx, userID)
}

func (s *shopService) InWishlist(ctx context.Context, userID uint64, productID int64) (bool, error) {
	_, err := s.wishlist.GetWishlistItem(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SubmitReview creates the user's review or overwrites their previous one.
// VerifiedPurchase is recomputed on every submission from paid orders.
func (s *shopService) SubmitReview(ctx context.Context, userID uint64, productID int64, rating int, title, body string) (*dbmysql.ProductReview, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.products.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	purchased, err := s.orders.HasPaidPurchase(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	existing, err := s.reviews.GetReview(ctx, productID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		existing.Rating = rating
		existing.Title = strings.TrimSpace(title)
		existing.Body = strings.TrimSpace(body)
		existing.VerifiedPurchase = purchased
		if err := s.reviews.UpdateReview(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	review := &dbmysql.ProductReview{
		ProductID:        productID,
		UserID:           userID,
		Rating:           rating,
		Title:            strings.TrimSpace(title),
		Body:             strings.TrimSpace(body),
		VerifiedPurchase: purchased,
	}
	if err := s.reviews.CreateReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *shopService) ProductReviews(ctx context.Context, productID int64) (*ReviewSummary, error) {
	reviews, err := s.reviews.ListReviews(ctx, productID)
	if err != nil {
		return nil, err
	}
	summary := &ReviewSummary{Reviews: reviews, TotalReviews: len(reviews)}
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		avg := float64(sum) / float64(len(reviews))
		summary.AverageRating = float64(int(avg*10+0.5)) / 10
	}
	return summary, nil
}

func (s *shopService) VoteHelpful(ctx context.Context, reviewID int64) error {
	return s.reviews.AddHelpfulVote(ctx, reviewID)
}

// ValidateCoupon checks a code against the cart total and the caller's usage
// history and quotes the discount. It never records a redemption; that
// happens at checkout.
func (s *shopService) ValidateCoupon(ctx context.Context, userID uint64, code string, cartTotal decimal.Decimal) (*CouponQuote, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrCouponNotFound
	}
	coupon, err := s.coupons.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	now := s.now()
	if !coupon.Valid(now) {
		return nil, ErrCouponInvalid
	}
	if cartTotal.LessThan(coupon.MinimumAmount) {
		return nil, ErrCouponMinimum
	}
	used, err := s.coupons.CountRedemptions(ctx, coupon.CouponID, userID)
	if err != nil {
		return nil, err
	}
	if used >= int64(coupon.PerUserLimit) {
		return nil, ErrCouponExhausted
	}
	return &CouponQuote{
		Code:          coupon.Code,
		Description:   coupon.Description,
		DiscountType:  coupon.DiscountType,
		DiscountValue: coupon.DiscountValue,
		Discount:      coupon.Discount(cartTotal, now),
	}, nil
}
