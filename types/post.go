package types

import "time"

// 排序方式
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortPopular = "popular"
	SortViews   = "views"
)

// Pagination 分页常量
const (
	DefaultPage     int = 1
	DefaultPageSize int = 20
	MaxPageSize     int = 100
)

// 作品上传限制
const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 1000
	MaxImageSize      = 10 << 20 // 10MB
)

// ContentTypeByExt 允许的图片扩展名与 Content-Type 对照表
var ContentTypeByExt = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"bmp":  "image/bmp",
}

// ListPostsRequest 作品列表查询参数
type ListPostsRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
	SortBy   string `form:"sortBy"`
}

// CreatePostRequest 创建作品参数，由 multipart 表单解析而来
type CreatePostRequest struct {
	Title        string
	Description  string
	Image        []byte
	Filename     string
	ImageWidth   int
	ImageHeight  int
	CanvasWidth  int
	CanvasHeight int
	StrokeCount  int
}

// DeletePostRequest 删除作品请求体
type DeletePostRequest struct {
	Reason string `json:"reason"`
}

// PostAuthor 作品作者摘要
type PostAuthor struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
}

// PostSummary 列表项
type PostSummary struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"image_url"`
	ContentType  string     `json:"content_type"`
	CanvasWidth  int        `json:"canvas_width"`
	CanvasHeight int        `json:"canvas_height"`
	StrokeCount  int        `json:"stroke_count"`
	LikeCount    int64      `json:"like_count"`
	ViewCount    int64      `json:"view_count"`
	CreatedAt    time.Time  `json:"created_at"`
	Author       PostAuthor `json:"author"`
}

// PostDetail 作品详情
type PostDetail struct {
	PostSummary
	FileSize    int64 `json:"file_size"`
	ImageWidth  int   `json:"image_width"`
	ImageHeight int   `json:"image_height"`
}

// ListPostsResponse 作品列表响应
type ListPostsResponse struct {
	Posts      []*PostSummary `json:"posts"`
	TotalCount int64          `json:"total_count"`
	TotalPages int64          `json:"total_pages"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
}

// ToggleLikeResponse 点赞切换响应
type ToggleLikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// PostImage 作品原图二进制
type PostImage struct {
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}
