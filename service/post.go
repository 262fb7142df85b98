package service

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"SketchShare/models"
	"SketchShare/pkg/log"
	"SketchShare/pkg/response"
	"SketchShare/pkg/snowflake"
	"SketchShare/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	CreatePost(ctx context.Context, userID int64, req *types.CreatePostRequest) (*types.PostDetail, error)
	DeletePost(ctx context.Context, postID int64, ident types.Identity, reason string) error
}

type PostService struct {
	Posts  PostStore
	Users  UserStore
	Images ImageCache
}

// 画布与笔画数限制
const (
	minCanvasSize  = 100
	maxCanvasSize  = 5000
	maxStrokeCount = 10000
)

// deletionMode 删除策略，进入 DeletePost 时一次性判定
type deletionMode int

const (
	deletionModeSoftByAdmin deletionMode = iota + 1 // 管理员下架，保留行
	deletionModeHardByOwner                         // 作者删除，连点赞一起物理删除
)

// CreatePost 创建作品
func (s *PostService) CreatePost(ctx context.Context, userID int64, req *types.CreatePostRequest) (*types.PostDetail, error) {
	contentType, err := validateCreatePost(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post := &models.Post{
		ID:           snowflake.GenID(),
		UserID:       userID,
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Image:        req.Image,
		ContentType:  contentType,
		Filename:     req.Filename,
		FileSize:     int64(len(req.Image)),
		ImageWidth:   req.ImageWidth,
		ImageHeight:  req.ImageHeight,
		CanvasWidth:  req.CanvasWidth,
		CanvasHeight: req.CanvasHeight,
		StrokeCount:  req.StrokeCount,
		LikeCount:    0,
		ViewCount:    0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Posts.Create(ctx, post); err != nil {
		return nil, storeErr("post.create", post.ID, err)
	}

	author, err := s.Users.FindById(ctx, userID)
	if err != nil {
		// 作品已入库，作者信息查不到只影响回显
		log.L.Warn("load post author failed", zap.Int64("user_id", userID), zap.Error(err))
	}
	return buildDetail(post, author), nil
}

// DeletePost 删除作品。作者走物理删除，管理员走下架，其他人一律拒绝。
// 存在性检查先于权限检查。
func (s *PostService) DeletePost(ctx context.Context, postID int64, ident types.Identity, reason string) error {
	post, err := s.Posts.FindById(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewNotFound("作品不存在")
	}
	if err != nil {
		return storeErr("post.delete", postID, err)
	}

	mode, err := resolveDeletionMode(post, ident)
	if err != nil {
		return err
	}

	switch mode {
	case deletionModeHardByOwner:
		if err := s.Posts.HardDelete(ctx, postID); err != nil {
			return storeErr("post.hard_delete", postID, err)
		}
	case deletionModeSoftByAdmin:
		if err := s.Posts.SoftDelete(ctx, postID, reason); err != nil {
			return storeErr("post.soft_delete", postID, err)
		}
	}

	// 缓存清理尽力而为
	if err := s.Images.Del(ctx, postID); err != nil {
		log.L.Warn("image cache del failed", zap.Int64("post_id", postID), zap.Error(err))
	}
	return nil
}

func resolveDeletionMode(post *models.Post, ident types.Identity) (deletionMode, error) {
	switch {
	case ident.IsAdmin():
		return deletionModeSoftByAdmin, nil
	case post.UserID == ident.UserID:
		return deletionModeHardByOwner, nil
	default:
		return 0, response.NewForbidden("无权删除该作品")
	}
}

func validateCreatePost(req *types.CreatePostRequest) (string, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return "", response.NewValidationError("标题不能为空")
	}
	if utf8.RuneCountInString(title) > types.MaxTitleLen {
		return "", response.NewValidationError("标题不能超过 200 字")
	}
	if utf8.RuneCountInString(req.Description) > types.MaxDescriptionLen {
		return "", response.NewValidationError("描述不能超过 1000 字")
	}
	if len(req.Image) == 0 {
		return "", response.NewValidationError("图片不能为空")
	}
	if len(req.Image) > types.MaxImageSize {
		return "", response.NewValidationError("图片不能超过 10MB")
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(req.Filename), "."))
	contentType, ok := types.ContentTypeByExt[ext]
	if !ok {
		return "", response.NewValidationError("不支持的图片格式: " + ext)
	}
	if req.CanvasWidth < minCanvasSize || req.CanvasWidth > maxCanvasSize ||
		req.CanvasHeight < minCanvasSize || req.CanvasHeight > maxCanvasSize {
		return "", response.NewValidationError("画布尺寸需在 100~5000 之间")
	}
	if req.StrokeCount < 0 || req.StrokeCount > maxStrokeCount {
		return "", response.NewValidationError("笔画数需在 0~10000 之间")
	}
	return contentType, nil
}
