package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/huha-yy/ai-news-bot/internal/api"
	"github.com/huha-yy/ai-news-bot/internal/config"
	"github.com/huha-yy/ai-news-bot/internal/digest"
	"github.com/huha-yy/ai-news-bot/internal/scheduler"
)

// 常驻模式：按 CRON_SPEC 定时推送日报，同时提供报告预览 API
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	runner := digest.NewRunner(cfg)

	s, err := scheduler.New(cfg.CronSpec, func() {
		runner.Run(context.Background())
	})
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}
	s.Start()
	log.Printf("digest scheduled: %s", cfg.CronSpec)

	// 配置了 Redis 时为预览接口开启报告缓存；连不上只告警，不阻塞启动
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("warn: redis ping failed: %v", err)
		}
		cancel()
	}

	r := gin.Default()
	apiServer := api.NewServer(runner, rdb)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
