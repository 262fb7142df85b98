package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// NewValidationError 入参错误，400
func NewValidationError(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}

// NewUnauthorized 未登录或凭证无效，401
func NewUnauthorized(msg string) *BizError {
	return NewError(http.StatusUnauthorized, msg)
}

// NewForbidden 已登录但无权限，403
func NewForbidden(msg string) *BizError {
	return NewError(http.StatusForbidden, msg)
}

// NewNotFound 资源不存在，404
func NewNotFound(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

// NewConflict 唯一约束冲突，409
func NewConflict(msg string) *BizError {
	return NewError(http.StatusConflict, msg)
}

// NewStoreUnavailable 存储超时或不可用，503
func NewStoreUnavailable() *BizError {
	return NewError(http.StatusServiceUnavailable, "服务暂不可用，请稍后重试")
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(http.StatusInternalServerError, Response{
					Code: 500,
					Msg:  "系统异常",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if be, ok := err.(*BizError); ok {
				Fail(c, be.Code, be.Msg)
			} else {
				Fail(c, 500, err.Error())
			}
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
