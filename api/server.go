// Package api 为表单层提供整定计算的 HTTP 接口。
package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server HTTP 接口
type Server struct {
	points  int // 曲线采样点数
	metrics *Metrics
	log     zerolog.Logger
}

// NewServer 初始化
func NewServer(points int, logger zerolog.Logger) *Server {
	return &Server{
		points:  points,
		metrics: NewMetrics(),
		log:     logger,
	}
}

// Router 注册路由
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.observe())

	r.GET("/healthz", s.Health)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/calculate", s.Calculate)
		v1.POST("/report/html", s.ReportHTML)
		v1.POST("/report/plot", s.ReportPlot)
	}
	return r
}

// observe 请求日志与指标
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		d := time.Since(start)
		s.metrics.ObserveRequest(route, status, d)
		event := s.log.Info()
		if status >= 500 {
			event = s.log.Error()
		}
		event.Str("method", c.Request.Method).
			Str("route", route).
			Int("status", status).
			Dur("latency", d).
			Msg("请求")
	}
}
