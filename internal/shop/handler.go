package shop

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"contentshop/internal/common"
)

// Handler wires the storefront, cart, checkout and review routes.
type Handler struct {
	shop        ShopService
	checkout    CheckoutService
	recommender ProductRecommender
}

func NewHandler(shop ShopService, checkout CheckoutService, recommender ProductRecommender) *Handler {
	return &Handler{shop: shop, checkout: checkout, recommender: recommender}
}

// RegisterPublic mounts the routes that work without a token.
func (h *Handler) RegisterPublic(r *mux.Router) {
	r.HandleFunc("/shop", h.catalog).Methods(http.MethodGet)
	r.HandleFunc("/shop/categories", h.categories).Methods(http.MethodGet)
	r.HandleFunc("/shop/new-arrivals", h.newArrivals).Methods(http.MethodGet)
	r.HandleFunc("/shop/seasonal", h.seasonal).Methods(http.MethodGet)
	r.HandleFunc("/shop/popular", h.popular).Methods(http.MethodGet)
	r.HandleFunc("/shop/products/{id:[0-9]+}", h.productDetail).Methods(http.MethodGet)
	r.HandleFunc("/shop/products/{id:[0-9]+}/reviews", h.listReviews).Methods(http.MethodGet)
	r.HandleFunc("/shop/products/{id:[0-9]+}/similar", h.similarProducts).Methods(http.MethodGet)
	r.HandleFunc("/shop/products/{id:[0-9]+}/price-comparison", h.priceComparison).Methods(http.MethodGet)
}

// RegisterProtected mounts the routes behind auth middleware.
func (h *Handler) RegisterProtected(r *mux.Router) {
	r.HandleFunc("/shop/products", h.createProduct).Methods(http.MethodPost)
	r.HandleFunc("/shop/products/{id:[0-9]+}", h.updateProduct).Methods(http.MethodPut)
	r.HandleFunc("/shop/products/{id:[0-9]+}", h.deleteProduct).Methods(http.MethodDelete)
	r.HandleFunc("/shop/products/{id:[0-9]+}/reviews", h.submitReview).Methods(http.MethodPost)
	r.HandleFunc("/reviews/{id:[0-9]+}/helpful", h.voteHelpful).Methods(http.MethodPost)

	r.HandleFunc("/cart", h.viewCart).Methods(http.MethodGet)
	r.HandleFunc("/cart", h.addToCart).Methods(http.MethodPost)
	r.HandleFunc("/cart/count", h.cartCount).Methods(http.MethodGet)
	r.HandleFunc("/cart/{id:[0-9]+}", h.updateCartItem).Methods(http.MethodPut)
	r.HandleFunc("/cart/{id:[0-9]+}", h.removeCartItem).Methods(http.MethodDelete)

	r.HandleFunc("/wishlist", h.viewWishlist).Methods(http.MethodGet)
	r.HandleFunc("/wishlist", h.addToWishlist).Methods(http.MethodPost)
	r.HandleFunc("/wishlist", h.clearWishlist).Methods(http.MethodDelete)
	r.HandleFunc("/wishlist/{id:[0-9]+}", h.removeFromWishlist).Methods(http.MethodDelete)
	r.HandleFunc("/wishlist/contains/{id:[0-9]+}", h.checkWishlist).Methods(http.MethodGet)

	r.HandleFunc("/coupons/validate", h.validateCoupon).Methods(http.MethodPost)

	r.HandleFunc("/checkout", h.startCheckout).Methods(http.MethodPost)
	r.HandleFunc("/payment-success/{id:[0-9]+}", h.paymentSuccess).Methods(http.MethodGet)
	r.HandleFunc("/payment-cancel/{id:[0-9]+}", h.paymentCancel).Methods(http.MethodGet)
	r.HandleFunc("/orders", h.myOrders).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id:[0-9]+}", h.orderDetail).Methods(http.MethodGet)

	r.HandleFunc("/recommendations/products", h.recommendedProducts).Methods(http.MethodGet)
}

// writeShopError maps service sentinels onto HTTP statuses.
func writeShopError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCartItemNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrCouponNotFound),
		errors.Is(err, ErrNotInWishlist):
		common.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotSeller), errors.Is(err, ErrNotOrderOwner):
		common.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrEmptyCart):
		common.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInsufficientStock),
		errors.Is(err, ErrOrderNotPending),
		errors.Is(err, ErrAlreadyInWishlist):
		common.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrCouponInvalid),
		errors.Is(err, ErrCouponMinimum),
		errors.Is(err, ErrCouponExhausted):
		common.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrPaymentDisabled):
		common.WriteError(w, http.StatusServiceUnavailable, err.Error())
	default:
		common.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func intQuery(r *http.Request, key, fallback string) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		raw = fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

type productRequest struct {
	Name          string          `json:"name" validate:"required,max=200"`
	Description   string          `json:"description" validate:"required"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	ImageURL      string          `json:"image_url" validate:"omitempty,max=500"`
	Category      string          `json:"category" validate:"required"`
	StockQuantity int             `json:"stock_quantity" validate:"gte=0"`
	Digital       bool            `json:"digital"`
	Seasonal      bool            `json:"seasonal"`
	SeasonType    string          `json:"season_type"`
	SeasonalStart *time.Time      `json:"seasonal_start"`
	SeasonalEnd   *time.Time      `json:"seasonal_end"`
	FeaturedUntil *time.Time      `json:"featured_until"`
}

func (pr *productRequest) input() ProductInput {
	return ProductInput{
		Name:          pr.Name,
		Description:   pr.Description,
		Price:         pr.Price,
		ImageURL:      pr.ImageURL,
		Category:      pr.Category,
		StockQuantity: pr.StockQuantity,
		Digital:       pr.Digital,
		Seasonal:      pr.Seasonal,
		SeasonType:    pr.SeasonType,
		SeasonalStart: pr.SeasonalStart,
		SeasonalEnd:   pr.SeasonalEnd,
		FeaturedUntil: pr.FeaturedUntil,
	}
}

func (h *Handler) catalog(w http.ResponseWriter, r *http.Request) {
	f := CatalogFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
		Page:     intQuery(r, "page", "1"),
	}
	page, err := h.shop.Catalog(r.Context(), f)
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"categories": ProductCategories})
}

func (h *Handler) newArrivals(w http.ResponseWriter, r *http.Request) {
	products, err := h.shop.NewArrivals(r.Context(), intQuery(r, "limit", "12"))
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *Handler) seasonal(w http.ResponseWriter, r *http.Request) {
	products, err := h.shop.SeasonalPicks(r.Context(), intQuery(r, "limit", "12"))
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *Handler) popular(w http.ResponseWriter, r *http.Request) {
	recs, err := h.recommender.PopularProducts(r.Context(), intQuery(r, "limit", "6"))
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"recommendations": recs})
}

func (h *Handler) productDetail(w http.ResponseWriter, r *http.Request) {
	p, err := h.shop.GetProduct(r.Context(), common.UserIDFrom(r.Context()), pathID(r))
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := common.Validate.Struct(req); err != nil {
		common.WriteFieldErrors(w, "validation failed", common.FieldErrors(err))
		return
	}
	p, err := h.shop.CreateProduct(r.Context(), common.UserIDFrom(r.Context()), req.input())
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := common.Validate.Struct(req); err != nil {
		common.WriteFieldErrors(w, "validation failed", common.FieldErrors(err))
		return
	}
	p, err := h.shop.UpdateProduct(r.Context(), common.UserIDFrom(r.Context()), pathID(r), req.input())
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	removed, err := h.shop.DeleteProduct(r.Context(), common.UserIDFrom(r.Context()), pathID(r))
	if err != nil {
		writeShopError(w, err)
		return
	}
	if removed {
		common.WriteJSON(w, http.StatusOK, map[string]interface{}{"deleted": true})
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"deleted": false,
		"message": "product has order history and was deactivated instead",
	})
}

func (h *Handler) priceComparison(w http.ResponseWriter, r *http.Request) {
	cmp, err := h.shop.ComparePrice(r.Context(), pathID(r))
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, cmp)
}

type addCartRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"gte=0"`
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addCartRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := common.Validate.Struct(req); err != nil {
		common.WriteFieldErrors(w, "validation failed", common.FieldErrors(err))
		return
	}
	item, err := h.shop.AddToCart(r.Context(), common.UserIDFrom(r.Context()), req.ProductID, req.Quantity)
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, item)
}

type updateCartRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := h.shop.UpdateCartItem(r.Context(), common.UserIDFrom(r.Context()), pathID(r), req.Quantity)
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"updated": true})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	if err := h.shop.RemoveCartItem(r.Context(), common.UserIDFrom(r.Context()), pathID(r)); err != nil {
		writeShopError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) viewCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.shop.Cart(r.Context(), common.UserIDFrom(r.Context()))
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) cartCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.shop.CartCount(r.Context(), common.UserIDFrom(r.Context()))
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"count": count})
}

type wishlistRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
}

func (h *Handler) addToWishlist(w http.ResponseWriter, r *http.Request) {
	var req wishlistRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.shop.AddToWishlist(r.Context(), common.UserIDFrom(r.Context()), req.ProductID); err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{"added": true})
}

func (h *Handler) removeFromWishlist(w http.ResponseWriter, r *http.Request) {
	if err := h.shop.RemoveFromWishlist(r.Context(), common.UserIDFrom(r.Context()), pathID(r)); err != nil {
		writeShopError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearWishlist(w http.ResponseWriter, r *http.Request) {
	if err := h.shop.ClearWishlist(r.Context(), common.UserIDFrom(r.Context())); err != nil {
		writeShopError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) viewWishlist(w http.ResponseWriter, r *http.Request) {
	items, err := h.shop.Wishlist(r.Context(), common.UserIDFrom(r.Context()))
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) checkWishlist(w http.ResponseWriter, r *http.Request) {
	in, err := h.shop.InWishlist(r.Context(), common.UserIDFrom(r.Context()), pathID(r))
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"in_wishlist": in})
}

type reviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Title  string `json:"title" validate:"omitempty,max=200"`
	Body   string `json:"body"`
}

func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := common.Validate.Struct(req); err != nil {
		common.WriteFieldErrors(w, "validation failed", common.FieldErrors(err))
		return
	}
	review, err := h.shop.SubmitReview(r.Context(), common.UserIDFrom(r.Context()), pathID(r), req.Rating, req.Title, req.Body)
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, review)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	summary, err := h.shop.ProductReviews(r.Context(), pathID(r))
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) voteHelpful(w http.ResponseWriter, r *http.Request) {
	if err := h.shop.VoteHelpful(r.Context(), pathID(r)); err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"voted": true})
}

type couponRequest struct {
	Code string `json:"code" validate:"required,max=50"`
}

// validateCoupon quotes a coupon against the caller's current cart total.
func (h *Handler) validateCoupon(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := common.Validate.Struct(req); err != nil {
		common.WriteFieldErrors(w, "validation failed", common.FieldErrors(err))
		return
	}
	userID := common.UserIDFrom(r.Context())
	view, err := h.shop.Cart(r.Context(), userID)
	if err != nil {
		writeShopError(w, err)
		return
	}
	quote, err := h.shop.ValidateCoupon(r.Context(), userID, req.Code, view.Total)
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, quote)
}

type checkoutRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"omitempty,max=100"`
	Zip        string `json:"zip" validate:"required,max=20"`
	Country    string `json:"country" validate:"required,max=100"`
	CouponCode string `json:"coupon_code" validate:"omitempty,max=50"`
}

func (h *Handler) startCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := common.Validate.Struct(req); err != nil {
		common.WriteFieldErrors(w, "validation failed", common.FieldErrors(err))
		return
	}
	result, err := h.checkout.Checkout(r.Context(), common.UserIDFrom(r.Context()), ShippingDetails{
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		Zip:        req.Zip,
		Country:    req.Country,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, result)
}

func (h *Handler) paymentSuccess(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkout.PaymentSuccess(r.Context(), common.UserIDFrom(r.Context()), pathID(r))
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) paymentCancel(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkout.PaymentCancel(r.Context(), common.UserIDFrom(r.Context()), pathID(r))
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, order)
}

// myOrders returns the order history page together with a strip of product
// suggestions for the buyer.
func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request) {
	userID := common.UserIDFrom(r.Context())
	page, err := h.checkout.MyOrders(r.Context(), userID, intQuery(r, "page", "1"))
	if err != nil {
		writeShopError(w, err)
		return
	}
	recs, err := h.recommender.ForUser(r.Context(), userID, 4)
	if err != nil {
		recs = nil
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"orders":          page,
		"recommendations": recs,
	})
}

func (h *Handler) orderDetail(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkout.GetOrder(r.Context(), common.UserIDFrom(r.Context()), pathID(r))
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) similarProducts(w http.ResponseWriter, r *http.Request) {
	recs, err := h.recommender.SimilarProducts(r.Context(), pathID(r), intQuery(r, "limit", "5"))
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"recommendations": recs})
}

func (h *Handler) recommendedProducts(w http.ResponseWriter, r *http.Request) {
	recs, err := h.recommender.ForUser(r.Context(), common.UserIDFrom(r.Context()), intQuery(r, "limit", "6"))
	if err != nil {
		writeShopError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"recommendations": recs})
}
