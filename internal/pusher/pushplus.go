package pusher

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	pushPlusDefaultEndpoint = "http://www.pushplus.plus/send"
	pushPlusTimeout         = 10 * time.Second
	pushMaxResponseBytes    = 256 * 1024
)

// PushPlus 把 Markdown 报告经 PushPlus 渠道推送到微信
type PushPlus struct {
	token      string
	endpoint   string
	httpClient *http.Client
}

type PushPlusOption func(*PushPlus)

// WithPushPlusEndpoint 覆盖推送地址，测试用
func WithPushPlusEndpoint(u string) PushPlusOption {
	return func(p *PushPlus) { p.endpoint = u }
}

func NewPushPlus(token string, opts ...PushPlusOption) *PushPlus {
	p := &PushPlus{
		token:      token,
		endpoint:   pushPlusDefaultEndpoint,
		httpClient: &http.Client{Timeout: pushPlusTimeout},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Push 未配置 token 时直接跳过（不发请求）；
// 网络错误或响应码非 200 只记日志并返回 false，不向上抛错。
func (p *PushPlus) Push(ctx context.Context, title, content string) bool {
	if p.token == "" {
		log.Println("pushplus: token not configured, skip")
		return false
	}

	body, err := json.Marshal(map[string]string{
		"token":    p.token,
		"title":    title,
		"content":  content,
		"template": "markdown",
	})
	if err != nil {
		log.Printf("pushplus: marshal payload: %v", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("pushplus: create request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("pushplus: push error: %v", err)
		return false
	}
	defer resp.Body.Close()

	var out struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, pushMaxResponseBytes)).Decode(&out); err != nil {
		log.Printf("pushplus: decode response: %v", err)
		return false
	}

	// PushPlus 业务层约定 code==200 为成功
	if out.Code != 200 {
		log.Printf("pushplus: push failed: code=%d msg=%q", out.Code, out.Msg)
		return false
	}

	log.Println("pushplus: push ok")
	return true
}
