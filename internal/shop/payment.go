package shop

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"gorm.io/gorm"

	"contentshop/internal/common"
	"contentshop/internal/config"
	"contentshop/internal/dbmysql"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrOrderNotFound   = errors.New("order not found")
	ErrNotOrderOwner   = errors.New("order belongs to another user")
	ErrOrderNotPending = errors.New("order is not pending")
	ErrPaymentDisabled = errors.New("payment provider is not configured")
)

const ordersPageSize = 10

// SessionLine is one purchasable line sent to the payment provider. Amounts
// are in the currency's minor unit.
type SessionLine struct {
	Name            string
	UnitAmountCents int64
	Quantity        int64
}

// SessionRequest describes the hosted payment page to create.
type SessionRequest struct {
	OrderID     int64
	OrderNumber string
	Lines       []SessionLine
	SuccessURL  string
	CancelURL   string
}

// PaymentProvider creates hosted payment sessions.
type PaymentProvider interface {
	CreateSession(ctx context.Context, req SessionRequest) (sessionID, redirectURL string, err error)
}

type stripeProvider struct {
	api      *client.API
	currency string
}

// NewStripeProvider builds a provider over the Stripe checkout API. It
// returns nil when no secret key is configured so callers can treat payments
// as disabled.
func NewStripeProvider(cfg *config.Config) PaymentProvider {
	if !cfg.Payment.Enabled {
		return nil
	}
	api := &client.API{}
	api.Init(cfg.Payment.StripeSecretKey, nil)
	return &stripeProvider{api: api, currency: cfg.Payment.Currency}
}

func (p *stripeProvider) CreateSession(ctx context.Context, req SessionRequest) (string, string, error) {
	lines := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(p.currency),
				UnitAmount: stripe.Int64(l.UnitAmountCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(l.Name),
				},
			},
			Quantity: stripe.Int64(l.Quantity),
		})
	}
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lines,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("order_id", strconv.FormatInt(req.OrderID, 10))
	params.AddMetadata("order_number", req.OrderNumber)

	sess, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return "", "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.ID, sess.URL, nil
}

// ShippingDetails is the address block captured at checkout. An optional
// coupon code is applied to the order total.
type ShippingDetails struct {
	Name       string
	Address    string
	City       string
	State      string
	Zip        string
	Country    string
	CouponCode string
}

// CheckoutResult is a created order plus the hosted payment page to send the
// buyer to.
type CheckoutResult struct {
	Order      *dbmysql.Order  `json:"order"`
	Discount   decimal.Decimal `json:"discount"`
	PaymentURL string          `json:"payment_url"`
}

// OrderPage is one page of a user's order history.
type OrderPage struct {
	Orders     []dbmysql.Order `json:"orders"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

type CheckoutService interface {
	Checkout(ctx context.Context, userID uint64, details ShippingDetails) (*CheckoutResult, error)
	PaymentSuccess(ctx context.Context, userID uint64, orderID int64) (*dbmysql.Order, error)
	PaymentCancel(ctx context.Context, userID uint64, orderID int64) (*dbmysql.Order, error)
	GetOrder(ctx context.Context, userID uint64, orderID int64) (*dbmysql.Order, error)
	MyOrders(ctx context.Context, userID uint64, page int) (*OrderPage, error)
}

type checkoutService struct {
	cart      CartRepository
	orders    OrderRepository
	products  ProductRepository
	coupons   CouponRepository
	provider  PaymentProvider
	publicURL string
	logger    zerolog.Logger
	now       func() time.Time
}

func NewCheckoutService(
	cart CartRepository,
	orders OrderRepository,
	products ProductRepository,
	coupons CouponRepository,
	provider PaymentProvider,
	cfg *config.Config,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		cart:      cart,
		orders:    orders,
		products:  products,
		coupons:   coupons,
		provider:  provider,
		publicURL: cfg.Server.PublicURL,
		logger:    logger.With().Str("component", "checkout").Logger(),
		now:       time.Now,
	}
}

// orderNumber draws ORD-XXXXXXXX candidates until one is free.
func (s *checkoutService) orderNumber(ctx context.Context) (string, error) {
	for {
		candidate := fmt.Sprintf("ORD-%08d", rand.Intn(100000000))
		exists, err := s.orders.OrderNumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

// Checkout snapshots the cart into an order and opens a payment session for
// it. The cart itself is only cleared once payment succeeds, so an abandoned
// session leaves the cart intact.
func (s *checkoutService) Checkout(ctx context.Context, userID uint64, details ShippingDetails) (*CheckoutResult, error) {
	if s.provider == nil {
		return nil, ErrPaymentDisabled
	}

	items, err := s.cart.ListCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	total := decimal.Zero
	for i := range items {
		p := &items[i].Product
		if !p.Digital && items[i].Quantity > p.StockQuantity {
			return nil, ErrInsufficientStock
		}
		total = total.Add(items[i].LineTotal())
	}

	discount := decimal.Zero
	var coupon *dbmysql.Coupon
	if details.CouponCode != "" {
		coupon, discount, err = s.applyCoupon(ctx, userID, details.CouponCode, total)
		if err != nil {
			return nil, err
		}
		total = total.Sub(discount)
	}

	number, err := s.orderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order := &dbmysql.Order{
		OrderNumber:     number,
		UserID:          userID,
		TotalAmount:     total,
		Status:          dbmysql.OrderPending,
		PaymentStatus:   dbmysql.PaymentPending,
		ShippingName:    details.Name,
		ShippingAddress: details.Address,
		ShippingCity:    details.City,
		ShippingState:   details.State,
		ShippingZip:     details.Zip,
		ShippingCountry: details.Country,
	}
	for i := range items {
		order.Items = append(order.Items, dbmysql.OrderItem{
			ProductID:    items[i].ProductID,
			ProductName:  items[i].Product.Name,
			ProductPrice: items[i].Product.Price,
			Quantity:     items[i].Quantity,
		})
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if coupon != nil {
		redemption := &dbmysql.CouponRedemption{
			CouponID:       coupon.CouponID,
			UserID:         userID,
			OrderID:        order.OrderID,
			DiscountAmount: discount,
		}
		if err := s.coupons.RecordRedemption(ctx, redemption); err != nil {
			s.logger.Error().Err(err).
				Int64("order_id", order.OrderID).
				Str("coupon", coupon.Code).
				Msg("coupon redemption not recorded")
		}
	}

	req := SessionRequest{
		OrderID:     order.OrderID,
		OrderNumber: order.OrderNumber,
		SuccessURL:  fmt.Sprintf("%s/payment-success/%d", s.publicURL, order.OrderID),
		CancelURL:   fmt.Sprintf("%s/payment-cancel/%d", s.publicURL, order.OrderID),
	}
	for i := range order.Items {
		req.Lines = append(req.Lines, SessionLine{
			Name:            order.Items[i].ProductName,
			UnitAmountCents: order.Items[i].ProductPrice.Mul(decimal.NewFromInt(100)).IntPart(),
			Quantity:        int64(order.Items[i].Quantity),
		})
	}
	sessionID, redirectURL, err := s.provider.CreateSession(ctx, req)
	if err != nil {
		// The order survives as pending so the buyer can retry payment.
		s.logger.Error().Err(err).Int64("order_id", order.OrderID).Msg("payment session failed")
		return nil, err
	}
	if err := s.orders.SetPaymentSession(ctx, order.OrderID, sessionID); err != nil {
		return nil, err
	}
	order.PaymentSessionID = sessionID

	s.logger.Info().
		Int64("order_id", order.OrderID).
		Str("order_number", order.OrderNumber).
		Str("total", total.String()).
		Msg("checkout started")
	return &CheckoutResult{Order: order, Discount: discount, PaymentURL: redirectURL}, nil
}

func (s *checkoutService) applyCoupon(ctx context.Context, userID uint64, code string, total decimal.Decimal) (*dbmysql.Coupon, decimal.Decimal, error) {
	coupon, err := s.coupons.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, decimal.Zero, ErrCouponNotFound
		}
		return nil, decimal.Zero, err
	}
	now := s.now()
	if !coupon.Valid(now) {
		return nil, decimal.Zero, ErrCouponInvalid
	}
	if total.LessThan(coupon.MinimumAmount) {
		return nil, decimal.Zero, ErrCouponMinimum
	}
	used, err := s.coupons.CountRedemptions(ctx, coupon.CouponID, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if used >= int64(coupon.PerUserLimit) {
		return nil, decimal.Zero, ErrCouponExhausted
	}
	return coupon, coupon.Discount(total, now), nil
}

func (s *checkoutService) ownedOrder(ctx context.Context, userID uint64, orderID int64) (*dbmysql.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	return order, nil
}

// PaymentSuccess finalizes a pending order: mark it paid, draw down stock
// for physical items and clear the buyer's cart. Calling it again on an
// already paid order is a no-op.
func (s *checkoutService) PaymentSuccess(ctx context.Context, userID uint64, orderID int64) (*dbmysql.Order, error) {
	order, err := s.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == dbmysql.PaymentPaid {
		return order, nil
	}
	if order.Status != dbmysql.OrderPending {
		return nil, ErrOrderNotPending
	}

	if err := s.orders.SetPaymentOutcome(ctx, orderID, dbmysql.OrderPaid, dbmysql.PaymentPaid); err != nil {
		return nil, err
	}
	order.Status = dbmysql.OrderPaid
	order.PaymentStatus = dbmysql.PaymentPaid

	for i := range order.Items {
		item := &order.Items[i]
		p, err := s.products.GetProductByID(ctx, item.ProductID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("product_id", item.ProductID).Msg("stock not adjusted, product missing")
			continue
		}
		if p.Digital {
			continue
		}
		if err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			s.logger.Error().Err(err).Int64("product_id", item.ProductID).Msg("stock decrement failed")
		}
	}

	if err := s.cart.ClearCart(ctx, userID); err != nil {
		s.logger.Error().Err(err).Uint64("user_id", userID).Msg("cart not cleared after payment")
	}

	common.OrdersCompleted.WithLabelValues("paid").Inc()
	s.logger.Info().Int64("order_id", orderID).Str("order_number", order.OrderNumber).Msg("order paid")
	return order, nil
}

// PaymentCancel marks a pending order as failed and cancelled. The cart is
// left untouched so the buyer can try again.
func (s *checkoutService) PaymentCancel(ctx context.Context, userID uint64, orderID int64) (*dbmysql.Order, error) {
	order, err := s.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == dbmysql.OrderCancelled {
		return order, nil
	}
	if order.Status != dbmysql.OrderPending {
		return nil, ErrOrderNotPending
	}

	if err := s.orders.SetPaymentOutcome(ctx, orderID, dbmysql.OrderCancelled, dbmysql.PaymentFailed); err != nil {
		return nil, err
	}
	order.Status = dbmysql.OrderCancelled
	order.PaymentStatus = dbmysql.PaymentFailed

	common.OrdersCompleted.WithLabelValues("cancelled").Inc()
	s.logger.Info().Int64("order_id", orderID).Msg("order cancelled")
	return order, nil
}

func (s *checkoutService) GetOrder(ctx context.Context, userID uint64, orderID int64) (*dbmysql.Order, error) {
	return s.ownedOrder(ctx, userID, orderID)
}

func (s *checkoutService) MyOrders(ctx context.Context, userID uint64, page int) (*OrderPage, error) {
	if page < 1 {
		page = 1
	}
	total, err := s.orders.CountOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListOrdersByUser(ctx, userID, ordersPageSize, (page-1)*ordersPageSize)
	if err != nil {
		return nil, err
	}
	return &OrderPage{
		Orders:     orders,
		Total:      total,
		Page:       page,
		PerPage:    ordersPageSize,
		TotalPages: int((total + ordersPageSize - 1) / ordersPageSize),
	}, nil
}
