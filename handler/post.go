package handler

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strconv"

	"SketchShare/config"
	"SketchShare/middleware"
	"SketchShare/pkg/context"
	"SketchShare/pkg/response"
	"SketchShare/service"
	"SketchShare/types"

	"github.com/gin-gonic/gin"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

type Post struct {
	FeedService service.IFeedService
	PostService service.IPostService
	LikeService service.ILikeService
	Config      *config.Config
}

func (h *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/posts")
	g.GET("", context.Wrap(h.ListPosts))
	g.GET("/:id", context.Wrap(h.GetPost))
	g.GET("/:id/image", context.Wrap(h.GetPostImage))
	g.POST("", authorize, context.Wrap(h.CreatePost))
	g.PUT("/:id/like", authorize, context.Wrap(h.ToggleLike))
	g.DELETE("/:id", authorize, context.Wrap(h.DeletePost))
}

// ListPosts 作品列表，总数通过响应头回传
func (h *Post) ListPosts(c *gin.Context) error {
	var req types.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewValidationError("参数格式错误: " + err.Error())
	}

	rep, err := h.FeedService.ListPosts(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	c.Header("X-Total-Count", strconv.FormatInt(rep.TotalCount, 10))
	c.Header("X-Total-Pages", strconv.FormatInt(rep.TotalPages, 10))
	response.Success(c, rep)
	return nil
}

func (h *Post) GetPost(c *gin.Context) error {
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	rep, err := h.FeedService.GetPost(c.Request.Context(), postID)
	if err != nil {
		return err
	}
	response.Success(c, rep)
	return nil
}

func (h *Post) GetPostImage(c *gin.Context) error {
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	img, err := h.FeedService.GetPostImage(c.Request.Context(), postID)
	if err != nil {
		return err
	}
	c.Data(http.StatusOK, img.ContentType, img.Data)
	return nil
}

// CreatePost 上传作品，multipart 表单
func (h *Post) CreatePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized(err.Error())
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.NewValidationError("图片不能为空")
	}
	if header.Size > int64(types.MaxImageSize) {
		return response.NewValidationError("图片不能超过 10MB")
	}

	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	req := &types.CreatePostRequest{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Image:        data,
		Filename:     header.Filename,
		CanvasWidth:  atoiForm(c, "canvas_width"),
		CanvasHeight: atoiForm(c, "canvas_height"),
		StrokeCount:  atoiForm(c, "stroke_count"),
	}

	// 能解出来就顺带记录原图尺寸，解不出来不拦
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		req.ImageWidth = cfg.Width
		req.ImageHeight = cfg.Height
	}

	rep, err := h.PostService.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		return err
	}
	response.Created(c, rep)
	return nil
}

// ToggleLike 点赞切换
func (h *Post) ToggleLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized(err.Error())
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	rep, err := h.LikeService.ToggleLike(c.Request.Context(), postID, userID)
	if err != nil {
		return err
	}
	response.Success(c, rep)
	return nil
}

// DeletePost 删除作品，请求体里带原因
func (h *Post) DeletePost(c *gin.Context) error {
	ident, err := identityFrom(c)
	if err != nil {
		return response.NewUnauthorized(err.Error())
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	var req types.DeletePostRequest
	// 请求体可以为空
	_ = c.ShouldBindJSON(&req)

	if err := h.PostService.DeletePost(c.Request.Context(), postID, ident, req.Reason); err != nil {
		return err
	}
	c.Status(http.StatusNoContent)
	return nil
}

func parsePostID(c *gin.Context) (int64, error) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, response.NewValidationError("作品ID格式错误")
	}
	return postID, nil
}

func atoiForm(c *gin.Context, key string) int {
	v, _ := strconv.Atoi(c.PostForm(key))
	return v
}

func identityFrom(c *gin.Context) (types.Identity, error) {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.Identity{}, err
	}
	roleID, err := context.GetRoleID(c)
	if err != nil {
		return types.Identity{}, err
	}
	return types.Identity{UserID: userID, RoleID: roleID}, nil
}
