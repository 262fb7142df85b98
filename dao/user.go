package dao

import (
	"context"

	"SketchShare/models"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

// FindByEmail 邮箱查询
func (d *UserDAO) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return d.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsEmailExist 判断邮箱是否已注册
func (d *UserDAO) IsEmailExist(ctx context.Context, email string) (bool, error) {
	return d.Repo.IsExist(ctx, "email = ?", email)
}

// FindByIDs 根据 ID 列表批量查询
func (d *UserDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}
	ctx, cancel := d.opCtx(ctx)
	defer cancel()
	var users []*models.User
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error
	return users, err
}

// UpdateAvatar 更新头像
func (d *UserDAO) UpdateAvatar(ctx context.Context, userID int64, data []byte, contentType string) error {
	ctx, cancel := d.opCtx(ctx)
	defer cancel()
	return d.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"avatar":      data,
			"avatar_type": contentType,
		}).Error
}
