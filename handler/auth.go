package handler

import (
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
)

type Auth struct {
	AuthService service.IAuthService
	Config      *config.Config
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1")
	g.POST("/auth/register", context.Wrap(h.Register))
	g.POST("/auth/login", context.Wrap(h.Login))
	g.GET("/users/:id", context.Wrap(h.GetProfile))
	g.GET("/users/:id/avatar", context.Wrap(h.GetAvatar))
	g.POST("/users/avatar", authorize, context.Wrap(h.UploadAvatar))
}

func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError("参数格式错误: " + err.Error())
	}

	rep, err := h.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, rep)
	return nil
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError("参数格式错误: " + err.Error())
	}

	rep, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, rep)
	return nil
}

func (h *Auth) GetProfile(c *gin.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewValidationError("用户ID格式错误")
	}

	profile, err := h.AuthService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (h *Auth) GetAvatar(c *gin.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewValidationError("用户ID格式错误")
	}

	avatar, err := h.AuthService.GetAvatar(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	c.Data(http.StatusOK, avatar.ContentType, avatar.Data)
	return nil
}

func (h *Auth) UploadAvatar(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized(err.Error())
	}

	header, err := c.FormFile("file")
	if err != nil {
		return response.NewValidationError("文件不能为空")
	}
	if header.Size > int64(types.MaxImageSize) {
		return response.NewValidationError("头像不能超过 10MB")
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

	contentType := header.Header.Get("Content-Type")
	if err := h.AuthService.UploadAvatar(c.Request.Context(), userID, data, contentType); err != nil {
		return err
	}
	response.Success(c, gin.H{"avatar_url": "/api/v1/users/" + strconv.FormatInt(userID, 10) + "/avatar"})
	return nil
}
