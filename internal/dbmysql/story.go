package dbmysql

import "time"

// Story is limited-time homepage content. Expired stories are deactivated by
// the background sweeper.
type Story struct {
	StoryID   int64     `gorm:"primaryKey;autoIncrement;column:story_id" json:"id"`
	Title     string    `gorm:"column:title;size:200;not null" json:"title"`
	Body      string    `gorm:"column:body;type:text" json:"body,omitempty"`
	ImageURL  string    `gorm:"column:image_url;size:500" json:"image_url,omitempty"`
	StoryType string    `gorm:"column:story_type;size:50;not null;default:'general'" json:"story_type"` // general, product, event, news
	Priority  int       `gorm:"column:priority;not null;default:1" json:"priority"`
	Active    bool      `gorm:"column:active;not null;default:true;index" json:"active"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index" json:"expires_at"`
	AuthorID  uint64    `gorm:"column:author_id;not null" json:"author_id"`
	ProductID *int64    `gorm:"column:product_id" json:"product_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Story) TableName() string {
	return "stories"
}

// Expired reports whether the story has passed its expiry at the given time.
func (s *Story) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
