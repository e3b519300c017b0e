package dbmysql

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coupon discount types.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

type Coupon struct {
	CouponID      int64           `gorm:"primaryKey;autoIncrement;column:coupon_id" json:"id"`
	Code          string          `gorm:"column:code;size:50;uniqueIndex;not null" json:"code"`
	Description   string          `gorm:"column:description;size:200" json:"description,omitempty"`
	DiscountType  string          `gorm:"column:discount_type;type:enum('percentage','fixed');not null" json:"discount_type"`
	DiscountValue decimal.Decimal `gorm:"column:discount_value;type:decimal(10,2);not null" json:"discount_value"`
	MinimumAmount decimal.Decimal `gorm:"column:minimum_amount;type:decimal(10,2);default:0" json:"minimum_amount"`
	// MaximumDiscount caps percentage discounts; zero means uncapped.
	MaximumDiscount decimal.Decimal `gorm:"column:maximum_discount;type:decimal(10,2);default:0" json:"maximum_discount"`
	UsageLimit      int             `gorm:"column:usage_limit;default:0" json:"usage_limit"` // 0 = unlimited
	UsageCount      int             `gorm:"column:usage_count;not null;default:0" json:"usage_count"`
	PerUserLimit    int             `gorm:"column:per_user_limit;not null;default:1" json:"per_user_limit"`
	StartsAt        *time.Time      `gorm:"column:starts_at" json:"starts_at,omitempty"`
	ExpiresAt       *time.Time      `gorm:"column:expires_at" json:"expires_at,omitempty"`
	Active          bool            `gorm:"column:active;not null;default:true" json:"active"`
	CreatedByID     uint64          `gorm:"column:created_by_id" json:"created_by_id"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Coupon) TableName() string {
	return "coupons"
}

// Valid reports whether the coupon can be redeemed at the given time.
func (c *Coupon) Valid(now time.Time) bool {
	if !c.Active {
		return false
	}
	if c.StartsAt != nil && now.Before(*c.StartsAt) {
		return false
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return false
	}
	if c.UsageLimit > 0 && c.UsageCount >= c.UsageLimit {
		return false
	}
	return true
}

// Discount computes the discount for an order amount. Invalid coupons and
// amounts below the minimum yield zero.
func (c *Coupon) Discount(amount decimal.Decimal, now time.Time) decimal.Decimal {
	if !c.Valid(now) || amount.LessThan(c.MinimumAmount) {
		return decimal.Zero
	}
	switch c.DiscountType {
	case DiscountPercentage:
		d := amount.Mul(c.DiscountValue).Div(decimal.NewFromInt(100))
		if c.MaximumDiscount.IsPositive() && d.GreaterThan(c.MaximumDiscount) {
			d = c.MaximumDiscount
		}
		return d
	case DiscountFixed:
		if c.DiscountValue.GreaterThan(amount) {
			return amount
		}
		return c.DiscountValue
	}
	return decimal.Zero
}

// CouponRedemption records one use of a coupon against an order.
type CouponRedemption struct {
	RedemptionID   int64           `gorm:"primaryKey;autoIncrement;column:redemption_id" json:"id"`
	CouponID       int64           `gorm:"column:coupon_id;not null;index" json:"coupon_id"`
	UserID         uint64          `gorm:"column:user_id;not null;index" json:"user_id"`
	OrderID        int64           `gorm:"column:order_id;not null" json:"order_id"`
	DiscountAmount decimal.Decimal `gorm:"column:discount_amount;type:decimal(10,2);not null" json:"discount_amount"`
	UsedAt         time.Time       `gorm:"column:used_at;autoCreateTime" json:"used_at"`
}

func (CouponRedemption) TableName() string {
	return "coupon_redemptions"
}
