package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	hnDefaultBaseURL   = "https://hacker-news.firebaseio.com/v0"
	hnMaxResponseBytes = 1 << 20 // 1MB
	hnListTimeout      = 10 * time.Second
	hnItemTimeout      = 5 * time.Second
)

// HackerNewsFetcher 通过官方 Firebase API 抓取 Hacker News 热门故事
type HackerNewsFetcher struct {
	baseURL    string
	listClient *http.Client
	itemClient *http.Client
}

type HackerNewsOption func(*HackerNewsFetcher)

// WithHackerNewsBaseURL 覆盖接口地址，测试用
func WithHackerNewsBaseURL(u string) HackerNewsOption {
	return func(f *HackerNewsFetcher) { f.baseURL = u }
}

func NewHackerNewsFetcher(opts ...HackerNewsOption) *HackerNewsFetcher {
	f := &HackerNewsFetcher{
		baseURL:    hnDefaultBaseURL,
		listClient: &http.Client{Timeout: hnListTimeout},
		itemClient: &http.Client{Timeout: hnItemTimeout},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type hnItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
}

// Fetch 返回最多 limit 条热门故事。单条详情失败只跳过该条；
// 列表请求失败整体退化为空列表并记日志，不向调用方返回错误。
func (f *HackerNewsFetcher) Fetch(ctx context.Context, limit int) []NewsItem {
	ids, err := f.fetchTopIDs(ctx)
	if err != nil {
		log.Printf("hackernews: fetch top stories: %v", err)
		return nil
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}

	items := make([]NewsItem, 0, len(ids))
	for _, id := range ids {
		it, err := f.fetchItem(ctx, id)
		if err != nil {
			log.Printf("hackernews: fetch item %d: %v", id, err)
			continue
		}
		if it.Title == "" {
			continue
		}

		itemURL := it.URL
		if itemURL == "" {
			// 纯讨论帖没有外链，退回评论页
			itemURL = fmt.Sprintf("https://news.ycombinator.com/item?id=%d", id)
		}

		items = append(items, NewsItem{
			Title:    it.Title,
			URL:      itemURL,
			Score:    it.Score,
			Comments: it.Descendants,
		})
	}

	if len(items) == 0 {
		log.Println("hackernews: no items fetched")
	}
	return items
}

func (f *HackerNewsFetcher) fetchTopIDs(ctx context.Context) ([]int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/topstories.json", nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.listClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, hnMaxResponseBytes))
	if err != nil {
		return nil, err
	}

	var ids []int
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("unmarshal top stories: %w", err)
	}
	return ids, nil
}

func (f *HackerNewsFetcher) fetchItem(ctx context.Context, id int) (hnItem, error) {
	url := fmt.Sprintf("%s/item/%d.json", f.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return hnItem{}, err
	}

	resp, err := f.itemClient.Do(req)
	if err != nil {
		return hnItem{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return hnItem{}, fmt.Errorf("status %d", resp.StatusCode)
	}

	var it hnItem
	if err := json.NewDecoder(io.LimitReader(resp.Body, hnMaxResponseBytes)).Decode(&it); err != nil {
		return hnItem{}, err
	}
	return it, nil
}
