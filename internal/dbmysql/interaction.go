package dbmysql

import "time"

// Interaction actions recorded against content.
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionEdit   = "edit"
	ActionLike   = "like"
	ActionShare  = "share"
	ActionDelete = "delete"

	ActionDownload  = "download"
	ActionViewFiles = "view_files"
)

// Interaction is an append-only log row feeding the trending and
// collaborative filtering scorers. Rows are never updated or deleted.
type Interaction struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id"`
	UserKey    string    `gorm:"column:user_key;size:100;not null;index:idx_interaction_user_content;index:idx_interaction_user_time"`
	ContentID  int64     `gorm:"column:content_id;not null;index:idx_interaction_user_content"`
	Action     string    `gorm:"column:action;size:50;not null;index"`
	Weight     float64   `gorm:"column:weight;default:1"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null;index:idx_interaction_user_time"`
}

func (Interaction) TableName() string {
	return "interactions"
}
