package dao

import (
	"context"
	"time"

	"SketchShare/models"

	"gorm.io/gorm"
)

type ReportDAO struct {
	Repo[models.Report]
}

func NewReportDAO(db *gorm.DB) *ReportDAO {
	return &ReportDAO{Repo: NewRepo[models.Report](db)}
}

// ListByStatus 按状态筛选举报，status 为空返回全部
func (d *ReportDAO) ListByStatus(ctx context.Context, status string) ([]*models.Report, error) {
	ctx, cancel := d.opCtx(ctx)
	defer cancel()
	query := d.Db.WithContext(ctx).Model(&models.Report{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var reports []*models.Report
	err := query.Order("created_at DESC").Find(&reports).Error
	return reports, err
}

// Review 管理员处理举报：状态流转 + 备注，Resolved 时落 resolved_at
func (d *ReportDAO) Review(ctx context.Context, id int64, status, notes string) error {
	ctx, cancel := d.opCtx(ctx)
	defer cancel()
	updates := map[string]any{
		"status":      status,
		"admin_notes": notes,
		"updated_at":  time.Now(),
	}
	if status == models.ReportStatusResolved {
		updates["resolved_at"] = time.Now()
	}
	return d.Db.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ?", id).
		Updates(updates).Error
}
