package types

import "time"

// CreateReportRequest 创建举报参数
type CreateReportRequest struct {
	PostID int64  `json:"post_id" binding:"required"`
	Reason string `json:"reason" binding:"required,max=500"`
}

// ListReportsRequest 举报列表查询参数（管理员）
type ListReportsRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=Pending Reviewed Resolved"`
}

// ReviewReportRequest 举报处理参数（管理员）
type ReviewReportRequest struct {
	Status     string `json:"status" binding:"required,oneof=Reviewed Resolved"`
	AdminNotes string `json:"admin_notes" binding:"max=1000"`
}

// ReportItem 举报条目
type ReportItem struct {
	ID         int64      `json:"id"`
	PostID     int64      `json:"post_id"`
	ReporterID int64      `json:"reporter_id"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	AdminNotes string     `json:"admin_notes,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CreateReportResponse 创建举报响应
type CreateReportResponse struct {
	ReportID int64 `json:"report_id"`
}
