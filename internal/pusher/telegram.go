package pusher

import (
	"context"
	"log"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const telegramTimeout = 10 * time.Second

// Telegram 通过 Bot API 推送纯文本报告
type Telegram struct {
	token      string
	chatID     int64
	endpoint   string
	httpClient *http.Client

	// 首次推送时初始化，之后复用；初始化会触发一次 getMe
	api *tgbotapi.BotAPI
}

type TelegramOption func(*Telegram)

// WithTelegramEndpoint 覆盖 Bot API 地址（格式同 tgbotapi.APIEndpoint），测试用
func WithTelegramEndpoint(endpoint string) TelegramOption {
	return func(t *Telegram) { t.endpoint = endpoint }
}

func NewTelegram(token string, chatID int64, opts ...TelegramOption) *Telegram {
	t := &Telegram{
		token:    token,
		chatID:   chatID,
		endpoint: tgbotapi.APIEndpoint,
		// 所有 Bot API 请求都带超时，慢响应不会无限期卡住单线程流程
		httpClient: &http.Client{Timeout: telegramTimeout},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Push 未配置 bot token 或 chat id 时直接跳过（不发请求）；
// 任何失败只记日志并返回 false。关闭链接预览，正文里的裸链接不展开卡片。
func (t *Telegram) Push(ctx context.Context, text string) bool {
	if t.token == "" || t.chatID == 0 {
		log.Println("telegram: bot token or chat id not configured, skip")
		return false
	}

	api, err := t.bot()
	if err != nil {
		log.Printf("telegram: init bot: %v", err)
		return false
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.DisableWebPagePreview = true

	if _, err := api.Send(msg); err != nil {
		log.Printf("telegram: push failed: %v", err)
		return false
	}

	log.Println("telegram: push ok")
	return true
}

func (t *Telegram) bot() (*tgbotapi.BotAPI, error) {
	if t.api != nil {
		return t.api, nil
	}

	api, err := tgbotapi.NewBotAPIWithClient(t.token, t.endpoint, t.httpClient)
	if err != nil {
		return nil, err
	}
	t.api = api
	return api, nil
}
