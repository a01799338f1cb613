package report

import (
	"strings"
	"testing"
	"time"

	"github.com/huha-yy/ai-news-bot/internal/collector"
)

func frozenFormatter() *Formatter {
	return &Formatter{Now: func() time.Time {
		return time.Date(2025, 6, 1, 8, 30, 0, 0, time.Local)
	}}
}

func sampleNews() []collector.NewsItem {
	return []collector.NewsItem{
		{Title: "First story", URL: "https://example.com/1", Score: 100, Comments: 42},
		{Title: "Second story", URL: "https://example.com/2", Score: 50, Comments: 7},
	}
}

func samplePapers() []collector.PaperItem {
	return []collector.PaperItem{
		{Title: "A Paper", Summary: "An abstract.", URL: "https://arxiv.org/abs/1", Category: "cs.LG"},
	}
}

func TestMarkdownBasicLayout(t *testing.T) {
	out := frozenFormatter().Markdown(sampleNews(), samplePapers())

	if !strings.Contains(out, "# 📰 AI 热点日报 (2025-06-01)") {
		t.Fatalf("missing heading:\n%s", out)
	}
	if !strings.Contains(out, "**1. [First story](https://example.com/1)**") {
		t.Fatalf("missing first entry:\n%s", out)
	}
	if !strings.Contains(out, "**2. [Second story](https://example.com/2)**") {
		t.Fatalf("missing second entry:\n%s", out)
	}
	if !strings.Contains(out, "👍 100人点赞 | 💬 42条评论") {
		t.Fatalf("missing score line:\n%s", out)
	}
	// 分类映射为中文标签
	if !strings.Contains(out, "**1. 【机器学习】A Paper**") {
		t.Fatalf("missing paper entry with mapped category:\n%s", out)
	}
	if !strings.Contains(out, "⏰ *生成时间: 08:30*") {
		t.Fatalf("missing timestamp:\n%s", out)
	}
	// 未翻译时不应出现简介行
	if strings.Contains(out, "📝") {
		t.Fatalf("unexpected summary line without translation:\n%s", out)
	}
}

func TestMarkdownPrefersTranslatedFields(t *testing.T) {
	news := sampleNews()
	news[0].TitleCN = "第一篇"
	news[0].SummaryCN = "一句话简介"
	papers := samplePapers()
	papers[0].TitleCN = "一篇论文"
	papers[0].SummaryCN = "中文摘要"

	out := frozenFormatter().Markdown(news, papers)

	if !strings.Contains(out, "[第一篇](https://example.com/1)") {
		t.Fatalf("translated title not preferred:\n%s", out)
	}
	if !strings.Contains(out, "📝 一句话简介") {
		t.Fatalf("missing translated summary line:\n%s", out)
	}
	if !strings.Contains(out, "【机器学习】一篇论文") {
		t.Fatalf("translated paper title not preferred:\n%s", out)
	}
	if !strings.Contains(out, "   中文摘要") {
		t.Fatalf("translated paper summary not preferred:\n%s", out)
	}
}

// 空板块的不对称行为：Markdown 渲染占位行，纯文本整体省略
func TestEmptySectionAsymmetry(t *testing.T) {
	f := frozenFormatter()

	md := f.Markdown(sampleNews(), nil)
	if !strings.Contains(md, "## 📚 AI 前沿论文（ArXiv）\n暂无数据") {
		t.Fatalf("markdown should render papers placeholder:\n%s", md)
	}

	plain := f.Plain(sampleNews(), nil)
	if strings.Contains(plain, "📚 AI 前沿论文（ArXiv）") {
		t.Fatalf("plain should omit empty papers section:\n%s", plain)
	}

	mdEmpty := f.Markdown(nil, nil)
	if strings.Count(mdEmpty, "暂无数据") != 2 {
		t.Fatalf("markdown should render both placeholders:\n%s", mdEmpty)
	}

	plainEmpty := f.Plain(nil, nil)
	if strings.Contains(plainEmpty, "🔥") || strings.Contains(plainEmpty, "📚") {
		t.Fatalf("plain should omit both empty sections:\n%s", plainEmpty)
	}
	// 页眉页脚仍然保留
	if !strings.Contains(plainEmpty, "📰 AI 热点日报 (2025-06-01)") ||
		!strings.Contains(plainEmpty, "⏰ 生成时间: 08:30") {
		t.Fatalf("plain header/footer missing:\n%s", plainEmpty)
	}
}

func TestPlainRendersRawURLs(t *testing.T) {
	out := frozenFormatter().Plain(sampleNews(), samplePapers())

	if !strings.Contains(out, "\n   https://example.com/1\n") {
		t.Fatalf("missing raw news URL:\n%s", out)
	}
	if !strings.Contains(out, "\n   https://arxiv.org/abs/1\n") {
		t.Fatalf("missing raw paper URL:\n%s", out)
	}
	if strings.Contains(out, "](") {
		t.Fatalf("plain report should not contain markdown links:\n%s", out)
	}
	if !strings.Contains(out, "👍100人点赞 💬42条评论") {
		t.Fatalf("missing plain score line:\n%s", out)
	}
}

func TestCategoryLabelFallsBackToRawCode(t *testing.T) {
	papers := []collector.PaperItem{
		{Title: "Odd Paper", Summary: "s", URL: "https://arxiv.org/abs/2", Category: "q-bio.NC"},
	}
	out := frozenFormatter().Markdown(nil, papers)
	if !strings.Contains(out, "【q-bio.NC】Odd Paper") {
		t.Fatalf("unmapped category should show raw code:\n%s", out)
	}
}

func TestDeterministicWithFrozenClock(t *testing.T) {
	f := frozenFormatter()
	a := f.Markdown(sampleNews(), samplePapers())
	b := f.Markdown(sampleNews(), samplePapers())
	if a != b {
		t.Fatalf("markdown output not deterministic")
	}
}

func TestTitle(t *testing.T) {
	if got := frozenFormatter().Title(); got != "AI 热点日报 (2025-06-01)" {
		t.Fatalf("Title = %q", got)
	}
}
