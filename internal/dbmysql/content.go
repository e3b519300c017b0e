package dbmysql

import (
	"strings"
	"time"
)

// Content statuses.
const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"
	StatusArchived  = "Archived"
)

// Audience labels assigned by the classifier.
const (
	AudienceTech     = "tech"
	AudienceBusiness = "business"
	AudienceMixed    = "mixed"
)

type Content struct {
	ContentID int64     `gorm:"primaryKey;autoIncrement;column:content_id" json:"id"`
	Title     string    `gorm:"column:title;size:200;not null;index" json:"title"`
	Body      string    `gorm:"column:body;type:text;not null" json:"body"`
	Category  string    `gorm:"column:category;size:100;not null;index:idx_content_category_status" json:"category"`
	Status    string    `gorm:"column:status;type:enum('Draft','Published','Archived');not null;index:idx_content_category_status" json:"status"`
	Author    string    `gorm:"column:author;size:100;not null;index" json:"author"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Tags      string    `gorm:"column:tags;type:text" json:"-"` // comma-joined, see TagList
	Image     string    `gorm:"column:image;size:255" json:"image,omitempty"`
	Audience  string    `gorm:"column:audience;type:enum('tech','business','mixed');default:'mixed';index" json:"audience"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Content) TableName() string {
	return "content"
}

// TagList splits the stored comma-joined tags, trimming blanks.
func (c *Content) TagList() []string {
	if c.Tags == "" {
		return nil
	}
	parts := strings.Split(c.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// SetTagList stores tags back as a comma-joined string.
func (c *Content) SetTagList(tags []string) {
	c.Tags = strings.Join(tags, ", ")
}
