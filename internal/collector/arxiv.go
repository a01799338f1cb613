package collector

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	arxivDefaultBaseURL  = "http://export.arxiv.org/api/query"
	arxivTimeout         = 15 * time.Second
	arxivDefaultCategory = "cs.AI"
)

// DefaultArxivCategories 默认关注的分类：人工智能、机器学习、计算语言学
var DefaultArxivCategories = []string{"cs.AI", "cs.LG", "cs.CL"}

// ArxivFetcher 通过 ArXiv 查询接口抓取最新提交的论文（Atom 格式响应）
type ArxivFetcher struct {
	baseURL string
	parser  *gofeed.Parser
}

type ArxivOption func(*ArxivFetcher)

// WithArxivBaseURL 覆盖接口地址，测试用
func WithArxivBaseURL(u string) ArxivOption {
	return func(f *ArxivFetcher) { f.baseURL = u }
}

func NewArxivFetcher(opts ...ArxivOption) *ArxivFetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: arxivTimeout}

	f := &ArxivFetcher{
		baseURL: arxivDefaultBaseURL,
		parser:  parser,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch 用单次查询取回各分类（OR 组合）按提交时间倒序的前 limit 篇论文。
// 任何失败都退化为空列表并记日志。
func (f *ArxivFetcher) Fetch(ctx context.Context, categories []string, limit int) []PaperItem {
	if len(categories) == 0 {
		categories = DefaultArxivCategories
	}

	terms := make([]string, 0, len(categories))
	for _, cat := range categories {
		terms = append(terms, "cat:"+cat)
	}

	q := url.Values{}
	q.Set("search_query", strings.Join(terms, " OR "))
	q.Set("start", "0")
	q.Set("max_results", strconv.Itoa(limit))
	q.Set("sortBy", "submittedDate")
	q.Set("sortOrder", "descending")

	feed, err := f.parser.ParseURLWithContext(f.baseURL+"?"+q.Encode(), ctx)
	if err != nil {
		log.Printf("arxiv: fetch papers: %v", err)
		return nil
	}

	papers := make([]PaperItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if entry.Title == "" {
			continue
		}

		category := arxivDefaultCategory
		if len(entry.Categories) > 0 && entry.Categories[0] != "" {
			category = entry.Categories[0]
		}

		link := entry.Link
		if link == "" {
			// ArXiv 的 <id> 就是论文摘要页地址
			link = entry.GUID
		}

		papers = append(papers, PaperItem{
			Title:    collapseWhitespace(entry.Title),
			Summary:  collapseWhitespace(entry.Description),
			URL:      link,
			Category: category,
		})
	}
	return papers
}

// collapseWhitespace 把连续空白折叠为单个空格；Atom 响应的标题和摘要常带换行缩进
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
