package handler

import (
	"strconv"

	"SketchShare/config"
	"SketchShare/middleware"
	"SketchShare/pkg/context"
	"SketchShare/pkg/response"
	"SketchShare/service"
	"SketchShare/types"

	"github.com/gin-gonic/gin"
)

type Report struct {
	ReportService service.IReportService
	Config        *config.Config
}

func (h *Report) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/reports", authorize)
	g.POST("", context.Wrap(h.CreateReport))
	g.GET("", context.Wrap(h.ListReports))
	g.PUT("/:id", context.Wrap(h.ReviewReport))
}

func (h *Report) CreateReport(c *gin.Context) error {
	ident, err := identityFrom(c)
	if err != nil {
		return response.NewUnauthorized(err.Error())
	}

	var req types.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError("参数格式错误: " + err.Error())
	}

	rep, err := h.ReportService.CreateReport(c.Request.Context(), ident, &req)
	if err != nil {
		return err
	}
	response.Created(c, rep)
	return nil
}

func (h *Report) ListReports(c *gin.Context) error {
	ident, err := identityFrom(c)
	if err != nil {
		return response.NewUnauthorized(err.Error())
	}

	var req types.ListReportsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewValidationError("参数格式错误: " + err.Error())
	}

	items, err := h.ReportService.ListReports(c.Request.Context(), ident, req.Status)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Report) ReviewReport(c *gin.Context) error {
	ident, err := identityFrom(c)
	if err != nil {
		return response.NewUnauthorized(err.Error())
	}

	reportID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewValidationError("举报ID格式错误")
	}

	var req types.ReviewReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError("参数格式错误: " + err.Error())
	}

	if err := h.ReportService.ReviewReport(c.Request.Context(), ident, reportID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
