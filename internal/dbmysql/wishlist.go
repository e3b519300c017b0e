package dbmysql

import "time"

type WishlistItem struct {
	WishlistItemID int64     `gorm:"primaryKey;autoIncrement;column:wishlist_item_id" json:"id"`
	UserID         uint64    `gorm:"column:user_id;not null;uniqueIndex:uq_wishlist_user_product" json:"user_id"`
	ProductID      int64     `gorm:"column:product_id;not null;uniqueIndex:uq_wishlist_user_product" json:"product_id"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
