package service

import (
	"context"
	"errors"
	"time"

	"SketchShare/models"
	"SketchShare/pkg/response"
	"SketchShare/pkg/snowflake"
	"SketchShare/types"

	"gorm.io/gorm"
)

var _ IReportService = (*ReportService)(nil)

type IReportService interface {
	CreateReport(ctx context.Context, ident types.Identity, req *types.CreateReportRequest) (*types.CreateReportResponse, error)
	ListReports(ctx context.Context, ident types.Identity, status string) ([]*types.ReportItem, error)
	ReviewReport(ctx context.Context, ident types.Identity, reportID int64, req *types.ReviewReportRequest) error
}

type ReportService struct {
	Reports ReportStore
	Posts   PostStore
}

// CreateReport 登录用户举报作品，初始状态 Pending
func (s *ReportService) CreateReport(ctx context.Context, ident types.Identity, req *types.CreateReportRequest) (*types.CreateReportResponse, error) {
	if _, err := s.Posts.FindActive(ctx, req.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("作品不存在")
		}
		return nil, storeErr("report.create", req.PostID, err)
	}

	now := time.Now()
	report := &models.Report{
		ID:         snowflake.GenID(),
		PostID:     req.PostID,
		ReporterID: ident.UserID,
		Reason:     req.Reason,
		Status:     models.ReportStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Reports.Create(ctx, report); err != nil {
		return nil, storeErr("report.create", report.ID, err)
	}
	return &types.CreateReportResponse{ReportID: report.ID}, nil
}

// ListReports 管理员查看举报，可按状态过滤
func (s *ReportService) ListReports(ctx context.Context, ident types.Identity, status string) ([]*types.ReportItem, error) {
	if !ident.IsAdmin() {
		return nil, response.NewForbidden("仅管理员可查看举报")
	}

	reports, err := s.Reports.ListByStatus(ctx, status)
	if err != nil {
		return nil, storeErr("report.list", 0, err)
	}

	items := make([]*types.ReportItem, 0, len(reports))
	for _, r := range reports {
		items = append(items, &types.ReportItem{
			ID:         r.ID,
			PostID:     r.PostID,
			ReporterID: r.ReporterID,
			Reason:     r.Reason,
			Status:     r.Status,
			AdminNotes: r.AdminNotes,
			ResolvedAt: r.ResolvedAt,
			CreatedAt:  r.CreatedAt,
		})
	}
	return items, nil
}

// ReviewReport 管理员处理举报
func (s *ReportService) ReviewReport(ctx context.Context, ident types.Identity, reportID int64, req *types.ReviewReportRequest) error {
	if !ident.IsAdmin() {
		return response.NewForbidden("仅管理员可处理举报")
	}

	if _, err := s.Reports.FindById(ctx, reportID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("举报不存在")
		}
		return storeErr("report.review", reportID, err)
	}

	if err := s.Reports.Review(ctx, reportID, req.Status, req.AdminNotes); err != nil {
		return storeErr("report.review", reportID, err)
	}
	return nil
}
