package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"SketchShare/config"
	"SketchShare/models"
	"SketchShare/pkg/encrypt"
	"SketchShare/pkg/jwt"
	"SketchShare/pkg/response"
	"SketchShare/pkg/snowflake"
	"SketchShare/types"

	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.RegisterResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error)
	GetProfile(ctx context.Context, userID int64) (*types.UserProfile, error)
	UploadAvatar(ctx context.Context, userID int64, data []byte, contentType string) error
	GetAvatar(ctx context.Context, userID int64) (*types.Avatar, error)
}

type AuthService struct {
	Users  UserStore
	Config *config.Config
}

const defaultTokenExpire = 2 * time.Hour

// Register 注册用户，邮箱唯一，密码只存哈希
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.RegisterResponse, error) {
	exist, err := s.Users.IsEmailExist(ctx, req.Email)
	if err != nil {
		return nil, storeErr("auth.register", 0, err)
	}
	if exist {
		return nil, response.NewValidationError("邮箱已被注册")
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:           snowflake.GenID(),
		Name:         req.Name,
		Nickname:     req.Nickname,
		Email:        req.Email,
		PasswordHash: hash,
		RoleID:       models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		// 并发注册同一邮箱，唯一键兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewValidationError("邮箱已被注册")
		}
		return nil, storeErr("auth.register", user.ID, err)
	}

	return &types.RegisterResponse{UserID: user.ID}, nil
}

// Login 登录，签发访问令牌
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	user, err := s.Users.FindByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewUnauthorized("账号或密码错误")
	}
	if err != nil {
		return nil, storeErr("auth.login", 0, err)
	}

	if !encrypt.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, response.NewUnauthorized("账号或密码错误")
	}

	expire := defaultTokenExpire
	if s.Config.Jwt.ExpiresTime > 0 {
		expire = time.Duration(s.Config.Jwt.ExpiresTime) * time.Second
	}
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.RoleID, "access", expire)
	if err != nil {
		return nil, err
	}

	return &types.AuthResponse{
		Token: token,
		User:  buildProfile(user),
	}, nil
}

// GetProfile 用户资料
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*types.UserProfile, error) {
	user, err := s.Users.FindById(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewNotFound("用户不存在")
	}
	if err != nil {
		return nil, storeErr("auth.profile", userID, err)
	}
	return buildProfile(user), nil
}

// UploadAvatar 上传头像，二进制直接入库
func (s *AuthService) UploadAvatar(ctx context.Context, userID int64, data []byte, contentType string) error {
	if len(data) == 0 {
		return response.NewValidationError("文件不能为空")
	}
	if len(data) > types.MaxImageSize {
		return response.NewValidationError("头像不能超过 10MB")
	}
	allowed := false
	for _, ct := range types.ContentTypeByExt {
		if ct == contentType {
			allowed = true
			break
		}
	}
	if !allowed {
		return response.NewValidationError("不支持的图片格式")
	}
	if err := s.Users.UpdateAvatar(ctx, userID, data, contentType); err != nil {
		return storeErr("auth.avatar", userID, err)
	}
	return nil
}

// GetAvatar 头像二进制
func (s *AuthService) GetAvatar(ctx context.Context, userID int64) (*types.Avatar, error) {
	user, err := s.Users.FindById(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewNotFound("用户不存在")
	}
	if err != nil {
		return nil, storeErr("auth.avatar", userID, err)
	}
	if len(user.Avatar) == 0 {
		return nil, response.NewNotFound("头像不存在")
	}
	return &types.Avatar{ContentType: user.AvatarType, Data: user.Avatar}, nil
}

func buildProfile(user *models.User) *types.UserProfile {
	profile := &types.UserProfile{
		ID:       user.ID,
		Name:     user.Name,
		Nickname: user.Nickname,
		Email:    user.Email,
	}
	if len(user.Avatar) > 0 {
		profile.AvatarURL = fmt.Sprintf("/api/v1/users/%d/avatar", user.ID)
	}
	return profile
}
