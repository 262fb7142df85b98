package service

import (
	"context"
	"errors"
	"fmt"

	"SketchShare/models"
	"SketchShare/pkg/log"
	"SketchShare/pkg/response"
	"SketchShare/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	ListPosts(ctx context.Context, req *types.ListPostsRequest) (*types.ListPostsResponse, error)
	GetPost(ctx context.Context, id int64) (*types.PostDetail, error)
	GetPostImage(ctx context.Context, id int64) (*types.PostImage, error)
}

type FeedService struct {
	Posts  PostStore
	Users  UserStore
	Images ImageCache
}

// 排序键 -> ORDER BY，默认排序之外都带 created_at DESC 次序，保证分页稳定
var orderBySort = map[string]string{
	types.SortNewest:  "created_at DESC",
	types.SortOldest:  "created_at ASC",
	types.SortPopular: "like_count DESC, created_at DESC",
	types.SortViews:   "view_count DESC, created_at DESC",
}

// ListPosts 分页查询未下架作品列表
func (s *FeedService) ListPosts(ctx context.Context, req *types.ListPostsRequest) (*types.ListPostsResponse, error) {
	page := req.Page
	if page < 1 {
		page = types.DefaultPage
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = types.DefaultPageSize
	}
	if pageSize > types.MaxPageSize {
		pageSize = types.MaxPageSize
	}
	// 未知排序键回退到 newest，不报错
	order, ok := orderBySort[req.SortBy]
	if !ok {
		order = orderBySort[types.SortNewest]
	}

	total, err := s.Posts.CountActive(ctx)
	if err != nil {
		return nil, storeErr("feed.count", 0, err)
	}

	rep := &types.ListPostsResponse{
		Posts:      make([]*types.PostSummary, 0),
		TotalCount: total,
		TotalPages: (total + int64(pageSize) - 1) / int64(pageSize),
		Page:       page,
		PageSize:   pageSize,
	}

	// 翻过末页返回空页，不算错误
	offset := (page - 1) * pageSize
	if int64(offset) >= total {
		return rep, nil
	}

	posts, err := s.Posts.List(ctx, order, pageSize, offset)
	if err != nil {
		return nil, storeErr("feed.list", 0, err)
	}

	authors, err := s.loadAuthors(ctx, posts)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		rep.Posts = append(rep.Posts, buildSummary(post, authors[post.UserID]))
	}
	return rep, nil
}

// GetPost 作品详情，每次成功读取都把浏览数 +1
func (s *FeedService) GetPost(ctx context.Context, id int64) (*types.PostDetail, error) {
	post, err := s.Posts.FindActive(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewNotFound("作品不存在")
	}
	if err != nil {
		return nil, storeErr("feed.get", id, err)
	}

	// 浏览计数尽力而为，失败只记日志
	if err := s.Posts.IncrViewCount(ctx, id); err != nil {
		log.L.Warn("incr view count failed", zap.Int64("post_id", id), zap.Error(err))
	} else {
		post.ViewCount++
	}

	authors, err := s.loadAuthors(ctx, []*models.Post{post})
	if err != nil {
		return nil, err
	}
	return buildDetail(post, authors[post.UserID]), nil
}

// GetPostImage 作品原图，redis 读穿缓存
func (s *FeedService) GetPostImage(ctx context.Context, id int64) (*types.PostImage, error) {
	if data, ctype, err := s.Images.Get(ctx, id); err != nil {
		log.L.Warn("image cache get failed", zap.Int64("post_id", id), zap.Error(err))
	} else if len(data) > 0 {
		return &types.PostImage{ContentType: ctype, Data: data}, nil
	}

	post, err := s.Posts.FindActive(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewNotFound("作品不存在")
	}
	if err != nil {
		return nil, storeErr("feed.image", id, err)
	}
	if len(post.Image) == 0 {
		return nil, response.NewNotFound("图片不存在")
	}

	if err := s.Images.Set(ctx, id, post.Image, post.ContentType); err != nil {
		log.L.Warn("image cache set failed", zap.Int64("post_id", id), zap.Error(err))
	}
	return &types.PostImage{ContentType: post.ContentType, Data: post.Image}, nil
}

func (s *FeedService) loadAuthors(ctx context.Context, posts []*models.Post) (map[int64]*models.User, error) {
	seen := make(map[int64]struct{}, len(posts))
	ids := make([]int64, 0, len(posts))
	for _, post := range posts {
		if _, ok := seen[post.UserID]; ok {
			continue
		}
		seen[post.UserID] = struct{}{}
		ids = append(ids, post.UserID)
	}
	users, err := s.Users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, storeErr("feed.authors", 0, err)
	}
	byID := make(map[int64]*models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

func buildSummary(post *models.Post, author *models.User) *types.PostSummary {
	summary := &types.PostSummary{
		ID:           post.ID,
		Title:        post.Title,
		Description:  post.Description,
		ImageURL:     fmt.Sprintf("/api/v1/posts/%d/image", post.ID),
		ContentType:  post.ContentType,
		CanvasWidth:  post.CanvasWidth,
		CanvasHeight: post.CanvasHeight,
		StrokeCount:  post.StrokeCount,
		LikeCount:    post.LikeCount,
		ViewCount:    post.ViewCount,
		CreatedAt:    post.CreatedAt,
		Author:       types.PostAuthor{ID: post.UserID},
	}
	if author != nil {
		summary.Author.Name = author.Name
		summary.Author.Nickname = author.Nickname
	}
	return summary
}

func buildDetail(post *models.Post, author *models.User) *types.PostDetail {
	return &types.PostDetail{
		PostSummary: *buildSummary(post, author),
		FileSize:    post.FileSize,
		ImageWidth:  post.ImageWidth,
		ImageHeight: post.ImageHeight,
	}
}
