package config

import (
	"fmt"
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config 进程启动时从环境变量读取一次，之后按引用传给各组件；不保留任何全局可变状态。
// 凭证类字段为空即表示对应能力未启用（翻译 / 推送），不视为错误。
type Config struct {
	// 推送渠道
	PushPlusToken    string `env:"PUSHPLUS_TOKEN"`
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `env:"TELEGRAM_CHAT_ID"`

	// 翻译服务，主备两路
	NvidiaAPIKey string `env:"NVIDIA_API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// 抓取数量
	HNTopN    int `env:"HN_TOP_N" env-default:"10"`
	ArxivTopN int `env:"ARXIV_TOP_N" env-default:"5"`

	// 以下仅 cmd/server 使用
	AppPort   string `env:"APP_PORT" env-default:"9000"`
	CronSpec  string `env:"CRON_SPEC" env-default:"0 8 * * *"`
	RedisAddr string `env:"REDIS_ADDR"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if cfg.HNTopN <= 0 || cfg.ArxivTopN <= 0 {
		return nil, fmt.Errorf("config: item counts must be positive (hn=%d, arxiv=%d)", cfg.HNTopN, cfg.ArxivTopN)
	}

	log.Printf("config loaded: hn_top_n=%d arxiv_top_n=%d translate=%v pushplus=%v telegram=%v",
		cfg.HNTopN, cfg.ArxivTopN,
		cfg.NvidiaAPIKey != "" || cfg.GeminiAPIKey != "",
		cfg.PushPlusToken != "",
		cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0)
	return cfg, nil
}
