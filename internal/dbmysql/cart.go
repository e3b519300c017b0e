package dbmysql

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of a user's cart. A user holds at most one row per
// product; adding the same product again increments Quantity.
type CartItem struct {
	CartItemID int64     `gorm:"primaryKey;autoIncrement;column:cart_item_id" json:"id"`
	UserID     uint64    `gorm:"column:user_id;not null;uniqueIndex:uq_cart_user_product" json:"user_id"`
	ProductID  int64     `gorm:"column:product_id;not null;uniqueIndex:uq_cart_user_product" json:"product_id"`
	Quantity   int       `gorm:"column:quantity;not null;default:1" json:"quantity"`
	AddedAt    time.Time `gorm:"column:added_at;autoCreateTime" json:"added_at"`

	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// LineTotal is the product price times quantity.
func (ci *CartItem) LineTotal() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
