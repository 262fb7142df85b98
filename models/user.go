package models

import "time"

// 角色ID
const (
	RoleAdmin = 1
	RoleUser  = 2
)

type User struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"` // 雪花算法ID
	Name         string    `gorm:"column:name;type:varchar(50);not null;default:''" json:"name"`
	Nickname     string    `gorm:"column:nickname;type:varchar(50);not null;default:''" json:"nickname"`
	Email        string    `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Avatar       []byte    `gorm:"column:avatar;type:mediumblob" json:"-"`
	AvatarType   string    `gorm:"column:avatar_type;type:varchar(64);not null;default:''" json:"-"`
	RoleID       int       `gorm:"column:role_id;not null;default:2" json:"role_id"` // 1=管理员, 2=普通用户
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
