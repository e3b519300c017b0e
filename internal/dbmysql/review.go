package dbmysql

import "time"

// ProductReview holds one review per user per product.
type ProductReview struct {
	ReviewID         int64     `gorm:"primaryKey;autoIncrement;column:review_id" json:"id"`
	ProductID        int64     `gorm:"column:product_id;not null;uniqueIndex:uq_review_product_user" json:"product_id"`
	UserID           uint64    `gorm:"column:user_id;not null;uniqueIndex:uq_review_product_user" json:"user_id"`
	Rating           int       `gorm:"column:rating;not null" json:"rating"` // 1..5
	Title            string    `gorm:"column:title;size:200" json:"title,omitempty"`
	Body             string    `gorm:"column:body;type:text" json:"body,omitempty"`
	VerifiedPurchase bool      `gorm:"column:verified_purchase;not null;default:false" json:"verified_purchase"`
	HelpfulVotes     int       `gorm:"column:helpful_votes;not null;default:0" json:"helpful_votes"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProductReview) TableName() string {
	return "product_reviews"
}
