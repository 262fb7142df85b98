package types

// RegisterRequest 注册参数
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=64"`
	Name     string `json:"name" binding:"required,max=50"`
	Nickname string `json:"nickname" binding:"required,max=50"`
}

// LoginRequest 登录参数
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserProfile 用户资料
type UserProfile struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// AuthResponse 登录响应
type AuthResponse struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	UserID int64 `json:"user_id"`
}

// Avatar 头像二进制
type Avatar struct {
	ContentType string
	Data        []byte
}
