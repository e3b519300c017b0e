package dbmysql

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderPending   = "pending"
	OrderPaid      = "paid"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

type Order struct {
	OrderID     int64           `gorm:"primaryKey;autoIncrement;column:order_id" json:"id"`
	OrderNumber string          `gorm:"column:order_number;size:20;uniqueIndex;not null" json:"order_number"`
	UserID      uint64          `gorm:"column:user_id;not null;index" json:"user_id"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2);not null" json:"total_amount"`
	Status      string          `gorm:"column:status;type:enum('pending','paid','shipped','delivered','cancelled');not null;default:'pending';index" json:"status"`

	PaymentSessionID string `gorm:"column:payment_session_id;size:200" json:"-"`
	PaymentStatus    string `gorm:"column:payment_status;type:enum('pending','paid','failed','refunded');not null;default:'pending';index" json:"payment_status"`

	ShippingName    string `gorm:"column:shipping_name;size:100" json:"shipping_name"`
	ShippingAddress string `gorm:"column:shipping_address;type:text" json:"shipping_address"`
	ShippingCity    string `gorm:"column:shipping_city;size:100" json:"shipping_city"`
	ShippingState   string `gorm:"column:shipping_state;size:100" json:"shipping_state"`
	ShippingZip     string `gorm:"column:shipping_zip;size:20" json:"shipping_zip"`
	ShippingCountry string `gorm:"column:shipping_country;size:100" json:"shipping_country"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots product name and price at purchase time so later
// catalog edits do not rewrite order history.
type OrderItem struct {
	OrderItemID  int64           `gorm:"primaryKey;autoIncrement;column:order_item_id" json:"id"`
	OrderID      int64           `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID    int64           `gorm:"column:product_id;not null;index" json:"product_id"`
	ProductName  string          `gorm:"column:product_name;size:200;not null" json:"product_name"`
	ProductPrice decimal.Decimal `gorm:"column:product_price;type:decimal(10,2);not null" json:"product_price"`
	Quantity     int             `gorm:"column:quantity;not null" json:"quantity"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal is the snapshot price times quantity.
func (oi *OrderItem) LineTotal() decimal.Decimal {
	return oi.ProductPrice.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
