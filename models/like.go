package models

import "time"

// Like 点赞记录
// 唯一键: post_id + user_id，一个用户对一个作品至多一条
type Like struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:uk_post_user,priority:1" json:"post_id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_post_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Like) TableName() string { return "likes" }
