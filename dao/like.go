package dao

import (
	"context"

	"SketchShare/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// Toggle 点赞切换，点赞行与冗余计数在同一事务内变更。
// 先对作品行加锁，同一作品上的并发切换串行化；作品不存在或已下架
// 返回 gorm.ErrRecordNotFound，插入撞唯一键返回 gorm.ErrDuplicatedKey。
func (d *LikeDAO) Toggle(ctx context.Context, postID, userID int64) (liked bool, likeCount int64, err error) {
	err = d.Txx(ctx, func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id, like_count").
			Where("id = ? AND is_deleted = ?", postID, false).
			First(&post).Error; err != nil {
			return err
		}

		var item models.Like
		if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Limit(1).
			Find(&item).Error; err != nil {
			return err
		}

		if item.ID != 0 {
			// 已点赞 -> 取消，计数下限 0
			if err := tx.Delete(&models.Like{}, item.ID).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Post{}).
				Where("id = ?", postID).
				UpdateColumn("like_count", gorm.Expr("GREATEST(like_count - 1, 0)")).Error; err != nil {
				return err
			}
			liked = false
		} else {
			if err := tx.Create(&models.Like{PostID: postID, UserID: userID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Post{}).
				Where("id = ?", postID).
				UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
				return err
			}
			liked = true
		}

		var after models.Post
		if err := tx.Select("like_count").
			Where("id = ?", postID).
			First(&after).Error; err != nil {
			return err
		}
		likeCount = after.LikeCount
		return nil
	})
	return liked, likeCount, err
}
