package models

import "time"

// 举报处理状态
const (
	ReportStatusPending  = "Pending"
	ReportStatusReviewed = "Reviewed"
	ReportStatusResolved = "Resolved"
)

type Report struct {
	ID         int64      `gorm:"column:id;primaryKey" json:"id"` // 雪花算法ID
	PostID     int64      `gorm:"column:post_id;not null;index:idx_post_id" json:"post_id"`
	ReporterID int64      `gorm:"column:reporter_id;not null;index:idx_reporter_id" json:"reporter_id"`
	Reason     string     `gorm:"column:reason;type:varchar(500);not null" json:"reason"`
	Status     string     `gorm:"column:status;type:varchar(20);not null;default:'Pending'" json:"status"`
	AdminNotes string     `gorm:"column:admin_notes;type:varchar(1000);not null;default:''" json:"admin_notes,omitempty"`
	ResolvedAt *time.Time `gorm:"column:resolved_at" json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Report) TableName() string { return "reports" }
