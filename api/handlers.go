package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"protection"
	"protection/report"
	"protection/types"
)

// CalculateRequest 计算请求
type CalculateRequest struct {
	types.Input
	ProjectID string                        `json:"project_id"`
	Overrides map[types.SettingName]float64 `json:"overrides"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error  string             `json:"error"`
	Fields []types.FieldError `json:"fields,omitempty"`
}

// Health 健康检查
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Calculate 计算整定值，返回持久化文档
func (s *Server) Calculate(c *gin.Context) {
	doc, ok := s.document(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ReportHTML 输出 HTML 曲线页面
func (s *Server) ReportHTML(c *gin.Context) {
	doc, ok := s.document(c)
	if !ok {
		return
	}
	s.render(c, "text/html; charset=utf-8", report.NewCharts(doc.Result, s.points).Render)
}

// ReportPlot 输出时间-电流配合图，format 参数可选 png(默认)、svg
func (s *Server) ReportPlot(c *gin.Context) {
	format := c.DefaultQuery("format", "png")
	contentType, ok := plotContentTypes[format]
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "不支持的格式: " + format})
		return
	}
	doc, ok := s.document(c)
	if !ok {
		return
	}
	rec := report.NewRecord(doc.Result.Overcurrent, s.points)
	s.render(c, contentType, func(w io.Writer) error { return report.WritePlot(w, rec, format) })
}

// render 先写入缓冲区，成功后才输出 200
func (s *Server) render(c *gin.Context, contentType string, write func(io.Writer) error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		s.log.Error().Err(err).Msg("报告渲染失败")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "内部错误"})
		return
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

var plotContentTypes = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
}

// document 解析请求、计算并填写人工值
// 失败时已写入错误响应。
func (s *Server) document(c *gin.Context) (report.Document, bool) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.ObserveCalculation("invalid")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return report.Document{}, false
	}
	projectID := uuid.Nil
	if req.ProjectID != "" {
		id, err := uuid.Parse(req.ProjectID)
		if err != nil {
			s.metrics.ObserveCalculation("invalid")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "项目编号无效"})
			return report.Document{}, false
		}
		projectID = id
	}
	res, err := protection.Calculate(req.Input)
	if err != nil {
		s.fail(c, err)
		return report.Document{}, false
	}
	doc, err := report.NewDocument(projectID, req.Input, res).ApplyOverrides(req.Overrides)
	if err != nil {
		s.metrics.ObserveCalculation("invalid")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return report.Document{}, false
	}
	s.metrics.ObserveCalculation("ok")
	s.metrics.ObserveCoordination(res.Overcurrent.CoordinationStatus.String())
	return doc, true
}

// fail 按错误类型写入响应
func (s *Server) fail(c *gin.Context, err error) {
	var invalid *types.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		s.metrics.ObserveCalculation("invalid")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Fields: invalid.Fields})
	case errors.Is(err, types.ErrInvalidInput):
		s.metrics.ObserveCalculation("invalid")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		s.metrics.ObserveCalculation("error")
		s.log.Error().Err(err).Msg("计算失败")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "内部错误"})
	}
}
