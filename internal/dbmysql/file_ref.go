package dbmysql

import "time"

// File kinds inferred from the upload extension.
const (
	FileKindImage    = "image"
	FileKindDocument = "document"
	FileKindVideo    = "video"
	FileKindAudio    = "audio"
	FileKindArchive  = "archive"
	FileKindOther    = "other"
)

// FileRef is attachment metadata; the blob itself lives in GridFS under
// StoredName.
type FileRef struct {
	FileID       int64     `gorm:"primaryKey;autoIncrement;column:file_id" json:"id"`
	StoredName   string    `gorm:"column:stored_name;size:255;uniqueIndex;not null" json:"stored_name"`
	OriginalName string    `gorm:"column:original_name;size:255;not null" json:"original_name"`
	Kind         string    `gorm:"column:kind;type:enum('image','document','video','audio','archive','other');not null;index" json:"kind"`
	Extension    string    `gorm:"column:extension;size:10;not null" json:"extension"`
	Size         int64     `gorm:"column:size;not null" json:"size"`
	ContentID    *int64    `gorm:"column:content_id;index" json:"content_id,omitempty"`
	UserID       uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FileRef) TableName() string {
	return "file_refs"
}
