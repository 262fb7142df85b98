package models

import "time"

// Post 作品主表
// like_count 为冗余计数，只允许在点赞事务里修改
type Post struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"` // 雪花算法ID
	UserID       int64     `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	Title        string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description  string    `gorm:"column:description;type:varchar(1000);not null;default:''" json:"description"`
	Image        []byte    `gorm:"column:image;type:mediumblob" json:"-"`
	ContentType  string    `gorm:"column:content_type;type:varchar(64);not null;default:''" json:"content_type"`
	Filename     string    `gorm:"column:filename;type:varchar(255);not null;default:''" json:"filename"`
	FileSize     int64     `gorm:"column:file_size;not null;default:0" json:"file_size"`
	ImageWidth   int       `gorm:"column:image_width;not null;default:0" json:"image_width"`
	ImageHeight  int       `gorm:"column:image_height;not null;default:0" json:"image_height"`
	CanvasWidth  int       `gorm:"column:canvas_width;not null" json:"canvas_width"`
	CanvasHeight int       `gorm:"column:canvas_height;not null" json:"canvas_height"`
	StrokeCount  int       `gorm:"column:stroke_count;not null;default:0" json:"stroke_count"`
	LikeCount    int64     `gorm:"column:like_count;not null;default:0;index:idx_like_count" json:"like_count"`
	ViewCount    int64     `gorm:"column:view_count;not null;default:0" json:"view_count"`
	IsDeleted    bool      `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	DeleteReason string    `gorm:"column:delete_reason;type:varchar(255);not null;default:''" json:"delete_reason,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
