package translator

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	nvidiaDefaultBaseURL = "https://integrate.api.nvidia.com/v1"
	nvidiaModel          = "moonshotai/kimi-k2.5"
	nvidiaTimeout        = 90 * time.Second
	nvidiaMaxTokens      = 8192
	nvidiaTemperature    = 0.3
)

// nvidiaProvider 通过 NVIDIA 的 OpenAI 兼容接口调用 Kimi K2.5
type nvidiaProvider struct {
	client openai.Client
}

func newNvidiaProvider(apiKey, baseURL string) *nvidiaProvider {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(&http.Client{Timeout: nvidiaTimeout}),
	)
	return &nvidiaProvider{client: client}
}

func (p *nvidiaProvider) name() string { return "nvidia-kimi" }

func (p *nvidiaProvider) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: nvidiaModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(nvidiaMaxTokens),
		Temperature: openai.Float(nvidiaTemperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completions: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
