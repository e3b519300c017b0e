package shop

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"contentshop/internal/config"
	"contentshop/internal/dbmysql"
)

type stubProvider struct {
	requests []SessionRequest
	err      error
}

func (p *stubProvider) CreateSession(_ context.Context, req SessionRequest) (string, string, error) {
	p.requests = append(p.requests, req)
	if p.err != nil {
		return "", "", p.err
	}
	return "sess_test_1", "https://pay.example/sess_test_1", nil
}

type checkoutFixture struct {
	svc      CheckoutService
	cart     *MockCartRepository
	orders   *MockOrderRepository
	products *MockProductRepository
	coupons  *MockCouponRepository
	provider *stubProvider
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &checkoutFixture{
		cart:     NewMockCartRepository(ctrl),
		orders:   NewMockOrderRepository(ctrl),
		products: NewMockProductRepository(ctrl),
		coupons:  NewMockCouponRepository(ctrl),
		provider: &stubProvider{},
	}
	cfg := &config.Config{}
	cfg.Server.PublicURL = "https://shop.example"
	f.svc = NewCheckoutService(f.cart, f.orders, f.products, f.coupons, f.provider, cfg, zerolog.Nop())
	return f
}

func testCartItems() []dbmysql.CartItem {
	lamp := *physicalProduct(3, 5)
	ebook := dbmysql.Product{ProductID: 4, Name: "Field Guide", Price: price("12.50"), Category: "Books", Active: true, Digital: true}
	return []dbmysql.CartItem{
		{CartItemID: 11, UserID: 1, ProductID: 3, Quantity: 2, Product: lamp},
		{CartItemID: 12, UserID: 1, ProductID: 4, Quantity: 1, Product: ebook},
	}
}

func TestCheckout_CreatesOrderAndSession(t *testing.T) {
	f := newCheckoutFixture(t)

	f.cart.EXPECT().ListCart(gomock.Any(), uint64(1)).Return(testCartItems(), nil)
	f.orders.EXPECT().OrderNumberExists(gomock.Any(), gomock.Any()).Return(false, nil)
	f.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, order *dbmysql.Order) error {
			order.OrderID = 77
			return nil
		})
	f.orders.EXPECT().SetPaymentSession(gomock.Any(), int64(77), "sess_test_1").Return(nil)

	result, err := f.svc.Checkout(context.Background(), 1, ShippingDetails{
		Name: "Ada", Address: "1 Main St", City: "Zurich", Zip: "8001", Country: "CH",
	})
	require.NoError(t, err)
	require.Equal(t, "https://pay.example/sess_test_1", result.PaymentURL)
	require.True(t, result.Order.TotalAmount.Equal(price("62.50")), "got %s", result.Order.TotalAmount)
	require.Regexp(t, `^ORD-\d{8}$`, result.Order.OrderNumber)

	require.Len(t, result.Order.Items, 2)
	require.Equal(t, "Desk Lamp", result.Order.Items[0].ProductName)
	require.True(t, result.Order.Items[0].ProductPrice.Equal(price("25.00")))

	require.Len(t, f.provider.requests, 1)
	req := f.provider.requests[0]
	require.Equal(t, int64(77), req.OrderID)
	require.Equal(t, "https://shop.example/payment-success/77", req.SuccessURL)
	require.Equal(t, "https://shop.example/payment-cancel/77", req.CancelURL)
	require.Equal(t, int64(2500), req.Lines[0].UnitAmountCents)
	require.Equal(t, int64(2), req.Lines[0].Quantity)
	require.Equal(t, int64(1250), req.Lines[1].UnitAmountCents)
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)
	f.cart.EXPECT().ListCart(gomock.Any(), uint64(1)).Return(nil, nil)

	_, err := f.svc.Checkout(context.Background(), 1, ShippingDetails{})
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_InsufficientStock(t *testing.T) {
	f := newCheckoutFixture(t)
	items := testCartItems()
	items[0].Quantity = 9

	f.cart.EXPECT().ListCart(gomock.Any(), uint64(1)).Return(items, nil)

	_, err := f.svc.Checkout(context.Background(), 1, ShippingDetails{})
	require.ErrorIs(t, err, ErrInsufficientStock)
}

func TestCheckout_AppliesCoupon(t *testing.T) {
	f := newCheckoutFixture(t)
	coupon := activeCoupon("SAVE20")

	f.cart.EXPECT().ListCart(gomock.Any(), uint64(1)).Return(testCartItems(), nil)
	f.coupons.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").Return(coupon, nil)
	f.coupons.EXPECT().CountRedemptions(gomock.Any(), int64(9), uint64(1)).Return(int64(0), nil)
	f.orders.EXPECT().OrderNumberExists(gomock.Any(), gomock.Any()).Return(false, nil)
	f.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, order *dbmysql.Order) error {
			order.OrderID = 78
			return nil
		})
	f.coupons.EXPECT().RecordRedemption(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, redemption *dbmysql.CouponRedemption) error {
			require.Equal(t, int64(9), redemption.CouponID)
			require.Equal(t, int64(78), redemption.OrderID)
			require.True(t, redemption.DiscountAmount.Equal(price("12.50")), "got %s", redemption.DiscountAmount)
			return nil
		})
	f.orders.EXPECT().SetPaymentSession(gomock.Any(), int64(78), "sess_test_1").Return(nil)

	result, err := f.svc.Checkout(context.Background(), 1, ShippingDetails{CouponCode: "SAVE20"})
	require.NoError(t, err)
	require.True(t, result.Discount.Equal(price("12.50")), "got %s", result.Discount)
	require.True(t, result.Order.TotalAmount.Equal(price("50.00")), "got %s", result.Order.TotalAmount)
}

func TestCheckout_PaymentDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	cfg := &config.Config{}
	svc := NewCheckoutService(NewMockCartRepository(ctrl), NewMockOrderRepository(ctrl),
		NewMockProductRepository(ctrl), NewMockCouponRepository(ctrl), nil, cfg, zerolog.Nop())

	_, err := svc.Checkout(context.Background(), 1, ShippingDetails{})
	require.ErrorIs(t, err, ErrPaymentDisabled)
}

func TestCheckout_SessionFailureKeepsOrderPending(t *testing.T) {
	f := newCheckoutFixture(t)
	f.provider.err = errors.New("stripe unavailable")

	f.cart.EXPECT().ListCart(gomock.Any(), uint64(1)).Return(testCartItems(), nil)
	f.orders.EXPECT().OrderNumberExists(gomock.Any(), gomock.Any()).Return(false, nil)
	f.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Checkout(context.Background(), 1, ShippingDetails{})
	require.Error(t, err)
}

func pendingOrder() *dbmysql.Order {
	return &dbmysql.Order{
		OrderID:       77,
		OrderNumber:   "ORD-12345678",
		UserID:        1,
		TotalAmount:   price("62.50"),
		Status:        dbmysql.OrderPending,
		PaymentStatus: dbmysql.PaymentPending,
		Items: []dbmysql.OrderItem{
			{OrderItemID: 21, OrderID: 77, ProductID: 3, ProductName: "Desk Lamp", ProductPrice: price("25.00"), Quantity: 2},
			{OrderItemID: 22, OrderID: 77, ProductID: 4, ProductName: "Field Guide", ProductPrice: price("12.50"), Quantity: 1},
		},
	}
}

func TestPaymentSuccess_FinalizesOrder(t *testing.T) {
	f := newCheckoutFixture(t)
	ebook := &dbmysql.Product{ProductID: 4, Name: "Field Guide", Price: price("12.50"), Active: true, Digital: true}

	f.orders.EXPECT().GetOrderByID(gomock.Any(), int64(77)).Return(pendingOrder(), nil)
	f.orders.EXPECT().SetPaymentOutcome(gomock.Any(), int64(77), dbmysql.OrderPaid, dbmysql.PaymentPaid).Return(nil)
	f.products.EXPECT().GetProductByID(gomock.Any(), int64(3)).Return(physicalProduct(3, 5), nil)
	f.products.EXPECT().GetProductByID(gomock.Any(), int64(4)).Return(ebook, nil)
	f.products.EXPECT().DecrementStock(gomock.Any(), int64(3), 2).Return(nil)
	f.cart.EXPECT().ClearCart(gomock.Any(), uint64(1)).Return(nil)

	order, err := f.svc.PaymentSuccess(context.Background(), 1, 77)
	require.NoError(t, err)
	require.Equal(t, dbmysql.OrderPaid, order.Status)
	require.Equal(t, dbmysql.PaymentPaid, order.PaymentStatus)
}

func TestPaymentSuccess_IdempotentWhenPaid(t *testing.T) {
	f := newCheckoutFixture(t)
	paid := pendingOrder()
	paid.Status = dbmysql.OrderPaid
	paid.PaymentStatus = dbmysql.PaymentPaid

	f.orders.EXPECT().GetOrderByID(gomock.Any(), int64(77)).Return(paid, nil)

	order, err := f.svc.PaymentSuccess(context.Background(), 1, 77)
	require.NoError(t, err)
	require.Equal(t, dbmysql.PaymentPaid, order.PaymentStatus)
}

func TestPaymentSuccess_WrongUser(t *testing.T) {
	f := newCheckoutFixture(t)
	f.orders.EXPECT().GetOrderByID(gomock.Any(), int64(77)).Return(pendingOrder(), nil)

	_, err := f.svc.PaymentSuccess(context.Background(), 2, 77)
	require.ErrorIs(t, err, ErrNotOrderOwner)
}

func TestPaymentSuccess_OrderMissing(t *testing.T) {
	f := newCheckoutFixture(t)
	f.orders.EXPECT().GetOrderByID(gomock.Any(), int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.PaymentSuccess(context.Background(), 1, 404)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestPaymentCancel_MarksFailed(t *testing.T) {
	f := newCheckoutFixture(t)

	f.orders.EXPECT().GetOrderByID(gomock.Any(), int64(77)).Return(pendingOrder(), nil)
	f.orders.EXPECT().SetPaymentOutcome(gomock.Any(), int64(77), dbmysql.OrderCancelled, dbmysql.PaymentFailed).Return(nil)

	order, err := f.svc.PaymentCancel(context.Background(), 1, 77)
	require.NoError(t, err)
	require.Equal(t, dbmysql.OrderCancelled, order.Status)
	require.Equal(t, dbmysql.PaymentFailed, order.PaymentStatus)
}

func TestPaymentCancel_RejectsPaidOrder(t *testing.T) {
	f := newCheckoutFixture(t)
	paid := pendingOrder()
	paid.Status = dbmysql.OrderPaid
	paid.PaymentStatus = dbmysql.PaymentPaid

	f.orders.EXPECT().GetOrderByID(gomock.Any(), int64(77)).Return(paid, nil)

	_, err := f.svc.PaymentCancel(context.Background(), 1, 77)
	require.ErrorIs(t, err, ErrOrderNotPending)
}

func TestMyOrders_Pagination(t *testing.T) {
	f := newCheckoutFixture(t)

	f.orders.EXPECT().CountOrdersByUser(gomock.Any(), uint64(1)).Return(int64(23), nil)
	f.orders.EXPECT().ListOrdersByUser(gomock.Any(), uint64(1), ordersPageSize, ordersPageSize).
		Return([]dbmysql.Order{*pendingOrder()}, nil)

	page, err := f.svc.MyOrders(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(23), page.Total)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 3, page.TotalPages)
}
