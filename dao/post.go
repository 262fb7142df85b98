package dao

import (
	"context"
	"time"

	"SketchShare/models"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// 列表查询不取 image 大字段
const postListColumns = "id, user_id, title, description, content_type, filename, file_size, " +
	"image_width, image_height, canvas_width, canvas_height, stroke_count, " +
	"like_count, view_count, is_deleted, delete_reason, created_at, updated_at"

// FindActive 查询未被下架的作品
func (d *PostDAO) FindActive(ctx context.Context, id int64) (*models.Post, error) {
	return d.Repo.FindByWhere(ctx, "id = ? AND is_deleted = ?", id, false)
}

// List 按给定排序分页查询未下架作品
func (d *PostDAO) List(ctx context.Context, order string, limit, offset int) ([]*models.Post, error) {
	ctx, cancel := d.opCtx(ctx)
	defer cancel()
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Select(postListColumns).
		Where("is_deleted = ?", false).
		Order(order).
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// CountActive 未下架作品总数
func (d *PostDAO) CountActive(ctx context.Context) (int64, error) {
	ctx, cancel := d.opCtx(ctx)
	defer cancel()
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("is_deleted = ?", false).
		Count(&count).Error
	return count, err
}

// IncrViewCount 浏览计数 +1，不走事务，丢失更新可以容忍
func (d *PostDAO) IncrViewCount(ctx context.Context, id int64) error {
	ctx, cancel := d.opCtx(ctx)
	defer cancel()
	return d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// SoftDelete 管理员下架：保留行，仅打标记并记录原因
func (d *PostDAO) SoftDelete(ctx context.Context, id int64, reason string) error {
	ctx, cancel := d.opCtx(ctx)
	defer cancel()
	return d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_deleted":    true,
			"delete_reason": reason,
			"updated_at":    time.Now(),
		}).Error
}

// HardDelete 作者删除：同一事务里先删点赞再删作品行
func (d *PostDAO) HardDelete(ctx context.Context, id int64) error {
	return d.Txx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
