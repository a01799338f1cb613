package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/huha-yy/ai-news-bot/internal/config"
	"github.com/huha-yy/ai-news-bot/internal/digest"
)

// 执行一次日报流程后退出：适合 crontab / GitHub Actions 等外部调度。
// 流程内任何数据源或推送渠道失败都只降级，进程始终正常退出。
func main() {
	// 本地开发从 .env 读取凭证；文件不存在时静默跳过
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	runner := digest.NewRunner(cfg)
	runner.Run(context.Background())

	log.Println("digest done")
}
