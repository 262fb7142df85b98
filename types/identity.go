package types

import "SketchShare/models"

// Identity 一次请求内解析好的登录身份，含用户ID与角色
type Identity struct {
	UserID int64
	RoleID int
}

func (i Identity) IsAdmin() bool {
	return i.RoleID == models.RoleAdmin
}
