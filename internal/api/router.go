package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/huha-yy/ai-news-bot/internal/digest"
)

const reportCacheTTL = 10 * time.Minute

// Renderer 渲染当前时刻的报告；由 digest.Runner 实现
type Renderer interface {
	Render(ctx context.Context) digest.Result
}

type Server struct {
	renderer Renderer
	redis    *redis.Client
}

// NewServer rdb 允许为 nil，此时不做缓存，每次请求都现场渲染
func NewServer(renderer Renderer, rdb *redis.Client) *Server {
	return &Server{renderer: renderer, redis: rdb}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/report", s.report)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// report 按需渲染报告。配置了 Redis 时做短 TTL 缓存，
// 避免每次预览请求都打一遍上游接口（渲染可能触发翻译调用）。
func (s *Server) report(c *gin.Context) {
	format := c.DefaultQuery("format", "markdown")
	if format != "markdown" && format != "plain" {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "bad_request",
			"message": "format must be markdown or plain",
		})
		return
	}

	ctx := c.Request.Context()
	cacheKey := "report:" + format

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			c.String(http.StatusOK, cached)
			return
		}
	}

	res := s.renderer.Render(ctx)
	body := res.Markdown
	if format == "plain" {
		body = res.Plain
	}

	if s.redis != nil {
		// 一次渲染同时回填两种格式，另一种格式的后续请求直接命中
		_ = s.redis.Set(ctx, "report:markdown", res.Markdown, reportCacheTTL).Err()
		_ = s.redis.Set(ctx, "report:plain", res.Plain, reportCacheTTL).Err()
	}

	c.String(http.StatusOK, body)
}
