package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	geminiDefaultBaseURL   = "https://generativelanguage.googleapis.com"
	geminiModel            = "gemini-2.0-flash"
	geminiTimeout          = 60 * time.Second
	geminiMaxResponseBytes = 1 << 20
)

// geminiProvider 直接调用 generateContent 接口，作为 NVIDIA 不可用时的备路
type geminiProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func newGeminiProvider(apiKey, baseURL string) *geminiProvider {
	return &geminiProvider{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: geminiTimeout},
	}
}

func (p *geminiProvider) name() string { return "gemini" }

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (p *geminiProvider) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(map[string]any{
		"contents": []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", p.baseURL, geminiModel, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out geminiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, geminiMaxResponseBytes)).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
