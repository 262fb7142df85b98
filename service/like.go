package service

import (
	"context"
	"errors"

	"SketchShare/pkg/response"
	"SketchShare/types"

	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	ToggleLike(ctx context.Context, postID, userID int64) (*types.ToggleLikeResponse, error)
}

type LikeService struct {
	Likes LikeStore
}

// ToggleLike 点赞切换：有则取消，无则点上，返回最新计数。
// 并发下插入撞唯一键说明已经点过，按"取消"重试一次，不对外暴露冲突。
func (s *LikeService) ToggleLike(ctx context.Context, postID, userID int64) (*types.ToggleLikeResponse, error) {
	liked, count, err := s.Likes.Toggle(ctx, postID, userID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		liked, count, err = s.Likes.Toggle(ctx, postID, userID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewNotFound("作品不存在")
	}
	if err != nil {
		return nil, storeErr("like.toggle", postID, err)
	}

	return &types.ToggleLikeResponse{
		Liked:     liked,
		LikeCount: count,
	}, nil
}
