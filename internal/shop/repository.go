package shop

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"contentshop/internal/dbmysql"
)

// CatalogFilter narrows the public product listing. Zero values mean
// "no filter"; pagination starts at page 1.
type CatalogFilter struct {
	Category string
	Search   string
	Page     int
	PerPage  int
}

// PurchaseSignal is one aggregated user/product interaction used by the
// product recommender.
type PurchaseSignal struct {
	UserID    uint64
	ProductID int64
	Score     float64
}

// CategoryCount is a per-category purchase volume for one user.
type CategoryCount struct {
	Category string
	Quantity int
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, p *dbmysql.Product) error
	GetProductByID(ctx context.Context, productID int64) (*dbmysql.Product, error)
	UpdateProduct(ctx context.Context, p *dbmysql.Product) error
	DeleteProduct(ctx context.Context, productID int64) error
	DeactivateProduct(ctx context.Context, productID int64) error
	ListCatalog(ctx context.Context, f CatalogFilter) ([]dbmysql.Product, int64, error)
	ListActive(ctx context.Context) ([]dbmysql.Product, error)
	ListRecentActive(ctx context.Context, limit int) ([]dbmysql.Product, error)
	ListActiveByIDs(ctx context.Context, ids []int64) ([]dbmysql.Product, error)
	ListActiveByCategory(ctx context.Context, category string, excludeIDs []int64, limit int) ([]dbmysql.Product, error)
	ListPopular(ctx context.Context, limit int) ([]dbmysql.Product, error)
	ActivePrices(ctx context.Context, category string) ([]decimal.Decimal, error)
	HasOrderHistory(ctx context.Context, productID int64) (bool, error)
	DecrementStock(ctx context.Context, productID int64, qty int) error
}

type CartRepository interface {
	GetCartItem(ctx context.Context, userID uint64, productID int64) (*dbmysql.CartItem, error)
	GetCartItemByID(ctx context.Context, userID uint64, cartItemID int64) (*dbmysql.CartItem, error)
	CreateCartItem(ctx context.Context, item *dbmysql.CartItem) error
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int) error
	DeleteCartItem(ctx context.Context, userID uint64, cartItemID int64) error
	ClearCart(ctx context.Context, userID uint64) error
	ListCart(ctx context.Context, userID uint64) ([]dbmysql.CartItem, error)
	CountItems(ctx context.Context, userID uint64) (int, error)
	ListCartSignals(ctx context.Context) ([]PurchaseSignal, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *dbmysql.Order) error
	GetOrderByID(ctx context.Context, orderID int64) (*dbmysql.Order, error)
	OrderNumberExists(ctx context.Context, number string) (bool, error)
	SetPaymentSession(ctx context.Context, orderID int64, sessionID string) error
	SetPaymentOutcome(ctx context.Context, orderID int64, status, paymentStatus string) error
	ListOrdersByUser(ctx context.Context, userID uint64, limit, offset int) ([]dbmysql.Order, error)
	CountOrdersByUser(ctx context.Context, userID uint64) (int64, error)
	HasPaidPurchase(ctx context.Context, userID uint64, productID int64) (bool, error)
	ListPurchaseSignals(ctx context.Context) ([]PurchaseSignal, error)
	PurchasedCategories(ctx context.Context, userID uint64, limit int) ([]CategoryCount, error)
	PurchasedProductIDs(ctx context.Context, userID uint64) ([]int64, error)
}

type WishlistRepository interface {
	AddWishlistItem(ctx context.Context, item *dbmysql.WishlistItem) error
	GetWishlistItem(ctx context.Context, userID uint64, productID int64) (*dbmysql.WishlistItem, error)
	DeleteWishlistItem(ctx context.Context, userID uint64, productID int64) (int64, error)
	ClearWishlist(ctx context.Context, userID uint64) error
	ListWishlist(ctx context.Context, userID uint64) ([]dbmysql.WishlistItem, error)
}

type ReviewRepository interface {
	GetReview(ctx context.Context, productID int64, userID uint64) (*dbmysql.ProductReview, error)
	CreateReview(ctx context.Context, review *dbmysql.ProductReview) error
	UpdateReview(ctx context.Context, review *dbmysql.ProductReview) error
	ListReviews(ctx context.Context, productID int64) ([]dbmysql.ProductReview, error)
	AddHelpfulVote(ctx context.Context, reviewID int64) error
}

type CouponRepository interface {
	GetCouponByCode(ctx context.Context, code string) (*dbmysql.Coupon, error)
	CountRedemptions(ctx context.Context, couponID int64, userID uint64) (int64, error)
	RecordRedemption(ctx context.Context, redemption *dbmysql.CouponRedemption) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, p *dbmysql.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepository) GetProductByID(ctx context.Context, productID int64) (*dbmysql.Product, error) {
	var p dbmysql.Product
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, p *dbmysql.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// DeleteProduct removes the product together with its cart, wishlist and
// review rows. Order items keep their snapshot and are never touched here.
func (r *productRepository) DeleteProduct(ctx context.Context, productID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&dbmysql.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", productID).Delete(&dbmysql.WishlistItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", productID).Delete(&dbmysql.ProductReview{}).Error; err != nil {
			return err
		}
		return tx.Where("product_id = ?", productID).Delete(&dbmysql.Product{}).Error
	})
}

func (r *productRepository) DeactivateProduct(ctx context.Context, productID int64) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Product{}).
		Where("product_id = ?", productID).
		Update("active", false).Error
}

func (r *productRepository) ListCatalog(ctx context.Context, f CatalogFilter) ([]dbmysql.Product, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&dbmysql.Product{}).
		Where("active = ?", true)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		q = q.Where("name LIKE ?", "%"+f.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []dbmysql.Product
	err := q.Order("created_at DESC").
		Limit(f.PerPage).
		Offset((f.Page - 1) * f.PerPage).
		Find(&products).Error
	return products, total, err
}

func (r *productRepository) ListActive(ctx context.Context) ([]dbmysql.Product, error) {
	var products []dbmysql.Product
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) ListRecentActive(ctx context.Context, limit int) ([]dbmysql.Product, error) {
	var products []dbmysql.Product
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepository) ListActiveByIDs(ctx context.Context, ids []int64) ([]dbmysql.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []dbmysql.Product
	err := r.db.WithContext(ctx).
		Where("product_id IN ? AND active = ?", ids, true).
		Find(&products).Error
	return products, err
}

func (r *productRepository) ListActiveByCategory(ctx context.Context, category string, excludeIDs []int64, limit int) ([]dbmysql.Product, error) {
	q := r.db.WithContext(ctx).
		Where("category = ? AND active = ?", category, true)
	if len(excludeIDs) > 0 {
		q = q.Where("product_id NOT IN ?", excludeIDs)
	}
	var products []dbmysql.Product
	err := q.Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// ListPopular orders active products by units sold across paid orders,
// newest first among ties.
func (r *productRepository) ListPopular(ctx context.Context, limit int) ([]dbmysql.Product, error) {
	var products []dbmysql.Product
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Product{}).
		Select("products.*, COALESCE(SUM(order_items.quantity), 0) AS total_sold").
		Joins("LEFT JOIN order_items ON order_items.product_id = products.product_id").
		Joins("LEFT JOIN orders ON orders.order_id = order_items.order_id AND orders.payment_status = ?", dbmysql.PaymentPaid).
		Where("products.active = ?", true).
		Group("products.product_id").
		Order("total_sold DESC, products.created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepository) ActivePrices(ctx context.Context, category string) ([]decimal.Decimal, error) {
	q := r.db.WithContext(ctx).
		Model(&dbmysql.Product{}).
		Where("active = ?", true)
	if category != "" {
		q = q.Where("LOWER(category) LIKE ?", "%"+category+"%")
	}
	var prices []decimal.Decimal
	err := q.Pluck("price", &prices).Error
	return prices, err
}

func (r *productRepository) HasOrderHistory(ctx context.Context, productID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.OrderItem{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count > 0, err
}

func (r *productRepository) DecrementStock(ctx context.Context, productID int64, qty int) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Product{}).
		Where("product_id = ? AND stock_quantity >= ?", productID, qty).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", qty)).Error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetCartItem(ctx context.Context, userID uint64, productID int64) (*dbmysql.CartItem, error) {
	var item dbmysql.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) GetCartItemByID(ctx context.Context, userID uint64, cartItemID int64) (*dbmysql.CartItem, error) {
	var item dbmysql.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("cart_item_id = ? AND user_id = ?", cartItemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) CreateCartItem(ctx context.Context, item *dbmysql.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, cartItemID int64, qty int) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.CartItem{}).
		Where("cart_item_id = ?", cartItemID).
		Update("quantity", qty).Error
}

func (r *cartRepository) DeleteCartItem(ctx context.Context, userID uint64, cartItemID int64) error {
	return r.db.WithContext(ctx).
		Where("cart_item_id = ? AND user_id = ?", cartItemID, userID).
		Delete(&dbmysql.CartItem{}).Error
}

func (r *cartRepository) ClearCart(ctx context.Context, userID uint64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&dbmysql.CartItem{}).Error
}

// ListCart joins to products so rows whose product went inactive drop out of
// the cart view instead of surfacing unbuyable items.
func (r *cartRepository) ListCart(ctx context.Context, userID uint64) ([]dbmysql.CartItem, error) {
	var items []dbmysql.CartItem
	err := r.db.WithContext(ctx).
		Joins("JOIN products ON products.product_id = cart_items.product_id AND products.active = ?", true).
		Where("cart_items.user_id = ?", userID).
		Preload("Product").
		Order("cart_items.added_at DESC").
		Find(&items).Error
	return items, err
}

func (r *cartRepository) CountItems(ctx context.Context, userID uint64) (int, error) {
	var total *int
	err := r.db.WithContext(ctx).
		Model(&dbmysql.CartItem{}).
		Joins("JOIN products ON products.product_id = cart_items.product_id AND products.active = ?", true).
		Where("cart_items.user_id = ?", userID).
		Select("SUM(cart_items.quantity)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *cartRepository) ListCartSignals(ctx context.Context) ([]PurchaseSignal, error) {
	var signals []PurchaseSignal
	err := r.db.WithContext(ctx).
		Model(&dbmysql.CartItem{}).
		Select("user_id, product_id, SUM(quantity) AS score").
		Group("user_id, product_id").
		Scan(&signals).Error
	return signals, err
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder inserts the order and its snapshot items in one transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, order *dbmysql.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetOrderByID(ctx context.Context, orderID int64) (*dbmysql.Order, error) {
	var order dbmysql.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ?", orderID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) OrderNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Order{}).
		Where("order_number = ?", number).
		Count(&count).Error
	return count > 0, err
}

func (r *orderRepository) SetPaymentSession(ctx context.Context, orderID int64, sessionID string) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Order{}).
		Where("order_id = ?", orderID).
		Update("payment_session_id", sessionID).Error
}

func (r *orderRepository) SetPaymentOutcome(ctx context.Context, orderID int64, status, paymentStatus string) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Order{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"status":         status,
			"payment_status": paymentStatus,
		}).Error
}

func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID uint64, limit, offset int) ([]dbmysql.Order, error) {
	var orders []dbmysql.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) CountOrdersByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Order{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *orderRepository) HasPaidPurchase(ctx context.Context, userID uint64, productID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.OrderItem{}).
		Joins("JOIN orders ON orders.order_id = order_items.order_id").
		Where("orders.user_id = ? AND orders.payment_status = ? AND order_items.product_id = ?",
			userID, dbmysql.PaymentPaid, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *orderRepository) ListPurchaseSignals(ctx context.Context) ([]PurchaseSignal, error) {
	var signals []PurchaseSignal
	err := r.db.WithContext(ctx).
		Model(&dbmysql.OrderItem{}).
		Select("orders.user_id AS user_id, order_items.product_id AS product_id, SUM(order_items.quantity) AS score").
		Joins("JOIN orders ON orders.order_id = order_items.order_id").
		Where("orders.payment_status = ?", dbmysql.PaymentPaid).
		Group("orders.user_id, order_items.product_id").
		Scan(&signals).Error
	return signals, err
}

func (r *orderRepository) PurchasedCategories(ctx context.Context, userID uint64, limit int) ([]CategoryCount, error) {
	var counts []CategoryCount
	err := r.db.WithContext(ctx).
		Model(&dbmysql.OrderItem{}).
		Select("products.category AS category, SUM(order_items.quantity) AS quantity").
		Joins("JOIN orders ON orders.order_id = order_items.order_id").
		Joins("JOIN products ON products.product_id = order_items.product_id").
		Where("orders.user_id = ? AND orders.payment_status = ?", userID, dbmysql.PaymentPaid).
		Group("products.category").
		Order("quantity DESC").
		Limit(limit).
		Scan(&counts).Error
	return counts, err
}

func (r *orderRepository) PurchasedProductIDs(ctx context.Context, userID uint64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.OrderItem{}).
		Distinct("order_items.product_id").
		Joins("JOIN orders ON orders.order_id = order_items.order_id").
		Where("orders.user_id = ? AND orders.payment_status = ?", userID, dbmysql.PaymentPaid).
		Pluck("order_items.product_id", &ids).Error
	return ids, err
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepo(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) AddWishlistItem(ctx context.Context, item *dbmysql.WishlistItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *wishlistRepository) GetWishlistItem(ctx context.Context, userID uint64, productID int64) (*dbmysql.WishlistItem, error) {
	var item dbmysql.WishlistItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *wishlistRepository) DeleteWishlistItem(ctx context.Context, userID uint64, productID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&dbmysql.WishlistItem{})
	return res.RowsAffected, res.Error
}

func (r *wishlistRepository) ClearWishlist(ctx context.Context, userID uint64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&dbmysql.WishlistItem{}).Error
}

func (r *wishlistRepository) ListWishlist(ctx context.Context, userID uint64) ([]dbmysql.WishlistItem, error) {
	var items []dbmysql.WishlistItem
	err := r.db.WithContext(ctx).
		Joins("JOIN products ON products.product_id = wishlist_items.product_id AND products.active = ?", true).
		Where("wishlist_items.user_id = ?", userID).
		Preload("Product").
		Order("wishlist_items.created_at DESC").
		Find(&items).Error
	return items, err
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) GetReview(ctx context.Context, productID int64, userID uint64) (*dbmysql.ProductReview, error) {
	var review dbmysql.ProductReview
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *dbmysql.ProductReview) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) UpdateReview(ctx context.Context, review *dbmysql.ProductReview) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) ListReviews(ctx context.Context, productID int64) ([]dbmysql.ProductReview, error) {
	var reviews []dbmysql.ProductReview
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) AddHelpfulVote(ctx context.Context, reviewID int64) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.ProductReview{}).
		Where("review_id = ?", reviewID).
		Update("helpful_votes", gorm.Expr("helpful_votes + 1")).Error
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepo(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) GetCouponByCode(ctx context.Context, code string) (*dbmysql.Coupon, error) {
	var coupon dbmysql.Coupon
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&coupon).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) CountRedemptions(ctx context.Context, couponID int64, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.CouponRedemption{}).
		Where("coupon_id = ? AND user_id = ?", couponID, userID).
		Count(&count).Error
	return count, err
}

// RecordRedemption stores the usage row and bumps the coupon's running
// counter together.
func (r *couponRepository) RecordRedemption(ctx context.Context, redemption *dbmysql.CouponRedemption) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(redemption).Error; err != nil {
			return err
		}
		return tx.Model(&dbmysql.Coupon{}).
			Where("coupon_id = ?", redemption.CouponID).
			Update("usage_count", gorm.Expr("usage_count + 1")).Error
	})
}
