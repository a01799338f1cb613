package translator

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/huha-yy/ai-news-bot/internal/collector"
	"github.com/huha-yy/ai-news-bot/internal/config"
)

const translatePrompt = "请将以下英文文本逐条翻译为简洁的中文，保持编号格式。" +
	"只输出翻译结果，不要加任何解释。" +
	"专有名词（如公司名、产品名、人名）保留英文原文。\n\n"

const summaryPrompt = "以下是技术社区的热门文章标题。请根据每个标题，用中文写一句话简介（30-60字），" +
	"帮助读者快速了解文章可能讨论的核心内容或背景。保持编号格式，每行一条。" +
	"只输出简介，不要重复标题。\n\n"

// provider 一次 LLM 生成调用。出错或返回空文本视为本路不可用，继续尝试下一路。
type provider interface {
	name() string
	generate(ctx context.Context, prompt string) (string, error)
}

// Translator 按配置的主备顺序调用 LLM 做批量翻译与摘要。
// 所有方法都是尽力而为：任何失败只记日志并回退原文，不向调用方返回错误。
type Translator struct {
	providers []provider

	nvidiaBaseURL string
	geminiBaseURL string
}

type Option func(*Translator)

// WithNvidiaBaseURL 覆盖 NVIDIA 接口地址，测试用
func WithNvidiaBaseURL(u string) Option {
	return func(t *Translator) { t.nvidiaBaseURL = u }
}

// WithGeminiBaseURL 覆盖 Gemini 接口地址，测试用
func WithGeminiBaseURL(u string) Option {
	return func(t *Translator) { t.geminiBaseURL = u }
}

func New(cfg *config.Config, opts ...Option) *Translator {
	t := &Translator{
		nvidiaBaseURL: nvidiaDefaultBaseURL,
		geminiBaseURL: geminiDefaultBaseURL,
	}
	for _, opt := range opts {
		opt(t)
	}

	// 主：NVIDIA Kimi；备：Gemini
	if cfg.NvidiaAPIKey != "" {
		t.providers = append(t.providers, newNvidiaProvider(cfg.NvidiaAPIKey, t.nvidiaBaseURL))
	}
	if cfg.GeminiAPIKey != "" {
		t.providers = append(t.providers, newGeminiProvider(cfg.GeminiAPIKey, t.geminiBaseURL))
	}
	return t
}

// Enabled 是否配置了任一翻译服务；未配置时整个翻译阶段直接跳过，不构造任何请求
func (t *Translator) Enabled() bool {
	return len(t.providers) > 0
}

// TranslateTexts 把 texts 编号成一批提交翻译，按位置对应取回译文。
// 任一环节失败（所有服务不可用、行数不匹配）都原样返回输入。
func (t *Translator) TranslateTexts(ctx context.Context, texts []string) []string {
	if len(texts) == 0 || !t.Enabled() {
		return texts
	}

	result := t.generate(ctx, translatePrompt+numberLines(texts))
	if result == "" {
		log.Println("translator: all providers failed, keep original texts")
		return texts
	}

	parsed, ok := parseNumbered(result, len(texts))
	if !ok {
		return texts
	}
	return parsed
}

// SummarizeStories 为 HN 文章生成中文标题与一句话简介。
// 标题翻译与简介生成是两个独立批次，互不阻塞。
func (t *Translator) SummarizeStories(ctx context.Context, items []collector.NewsItem) []collector.NewsItem {
	if len(items) == 0 || !t.Enabled() {
		return items
	}

	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = it.Title
	}

	log.Println("translator: translate story titles...")
	translated := t.TranslateTexts(ctx, titles)
	for i := range items {
		items[i].TitleCN = translated[i]
	}

	log.Println("translator: summarize stories...")
	if result := t.generate(ctx, summaryPrompt+numberLines(titles)); result != "" {
		if summaries, ok := parseNumbered(result, len(items)); ok {
			for i := range items {
				items[i].SummaryCN = summaries[i]
			}
		}
	}
	return items
}

// TranslatePapers 把每篇论文的标题和摘要成对交错进同一批（2×N），
// 靠位置对应同时取回两个字段；解析失败时整批回退原文。
func (t *Translator) TranslatePapers(ctx context.Context, papers []collector.PaperItem) []collector.PaperItem {
	if len(papers) == 0 || !t.Enabled() {
		return papers
	}

	texts := make([]string, 0, len(papers)*2)
	for _, p := range papers {
		texts = append(texts, p.Title, p.Summary)
	}

	translated := t.TranslateTexts(ctx, texts)
	for i := range papers {
		papers[i].TitleCN = translated[i*2]
		papers[i].SummaryCN = translated[i*2+1]
	}
	return papers
}

// generate 按主备顺序尝试各服务，返回第一路可用的文本；全部失败返回空串
func (t *Translator) generate(ctx context.Context, prompt string) string {
	for _, p := range t.providers {
		out, err := p.generate(ctx, prompt)
		if err != nil {
			log.Printf("translator: %s: %v", p.name(), err)
			continue
		}
		if out = strings.TrimSpace(out); out != "" {
			return out
		}
	}
	return ""
}

func numberLines(texts []string) string {
	var b strings.Builder
	for i, s := range texts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return b.String()
}

// thinkRe 匹配思考类模型输出的 <think>...</think> 段
var thinkRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

func stripThinking(s string) string {
	return strings.TrimSpace(thinkRe.ReplaceAllString(s, ""))
}

// parseNumbered 解析 "1. xxx" / "1、xxx" 形式的编号列表。
// 行数与期望不一致时整批拒绝，避免译文错位到别的条目上。
func parseNumbered(s string, want int) ([]string, bool) {
	s = stripThinking(s)

	out := make([]string, 0, want)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, stripNumberPrefix(line))
	}

	if len(out) != want {
		log.Printf("translator: result count mismatch (want %d, got %d)", want, len(out))
		return nil, false
	}
	return out, true
}

// stripNumberPrefix 去掉 1-4 位数字加 "." 或 "、" 的编号前缀；不匹配时原样返回
func stripNumberPrefix(line string) string {
	rs := []rune(line)
	for n := 1; n <= 4 && n < len(rs); n++ {
		if rs[n] != '.' && rs[n] != '、' {
			continue
		}
		if isDigits(rs[:n]) {
			return strings.TrimSpace(string(rs[n+1:]))
		}
	}
	return line
}

func isDigits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(rs) > 0
}
