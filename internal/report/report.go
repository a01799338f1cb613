package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/huha-yy/ai-news-bot/internal/collector"
)

// CategoryCN ArXiv 分类中文映射；未收录的分类直接展示原始代码
var CategoryCN = map[string]string{
	"cs.AI":   "人工智能",
	"cs.LG":   "机器学习",
	"cs.CL":   "自然语言处理",
	"cs.CV":   "计算机视觉",
	"cs.RO":   "机器人",
	"cs.NE":   "神经网络",
	"cs.IR":   "信息检索",
	"stat.ML": "统计机器学习",
}

// Formatter 把采集结果渲染成两种报告文本。
// 除两处时间戳外输出完全由输入决定；Now 可注入，测试时冻结时钟。
type Formatter struct {
	Now func() time.Time
}

func NewFormatter() *Formatter {
	return &Formatter{Now: time.Now}
}

// Title 推送用的报告标题
func (f *Formatter) Title() string {
	return fmt.Sprintf("AI 热点日报 (%s)", f.Now().Format("2006-01-02"))
}

// Markdown 渲染带超链接和标题标记的报告（微信推送用）。
// 两个板块无数据时都渲染「暂无数据」占位行。
func (f *Formatter) Markdown(news []collector.NewsItem, papers []collector.PaperItem) string {
	now := f.Now()

	lines := []string{
		fmt.Sprintf("# 📰 AI 热点日报 (%s)", now.Format("2006-01-02")),
		"",
	}

	lines = append(lines, "## 🔥 技术社区热门（Hacker News）")
	if len(news) > 0 {
		lines = append(lines, "")
		for i, story := range news {
			lines = append(lines, fmt.Sprintf("**%d. [%s](%s)**", i+1, displayTitle(story.TitleCN, story.Title), story.URL))
			if story.SummaryCN != "" {
				lines = append(lines, fmt.Sprintf("   📝 %s", story.SummaryCN))
			}
			lines = append(lines, fmt.Sprintf("   👍 %d人点赞 | 💬 %d条评论", story.Score, story.Comments))
			lines = append(lines, "")
		}
	} else {
		lines = append(lines, "暂无数据", "")
	}

	lines = append(lines, "## 📚 AI 前沿论文（ArXiv）")
	if len(papers) > 0 {
		lines = append(lines, "")
		for i, paper := range papers {
			lines = append(lines, fmt.Sprintf("**%d. 【%s】%s**", i+1, categoryLabel(paper.Category), displayTitle(paper.TitleCN, paper.Title)))
			lines = append(lines, fmt.Sprintf("   %s", displayTitle(paper.SummaryCN, paper.Summary)))
			lines = append(lines, fmt.Sprintf("   🔗 [查看论文](%s)", paper.URL))
			lines = append(lines, "")
		}
	} else {
		lines = append(lines, "暂无数据", "")
	}

	lines = append(lines,
		"---",
		"📌 **数据来源：** 技术热点来自 Hacker News 社区，论文来自 ArXiv 学术平台",
		"",
		fmt.Sprintf("⏰ *生成时间: %s*", now.Format("15:04")),
	)

	return strings.Join(lines, "\n")
}

// Plain 渲染纯文本报告（Telegram 推送用），条目原始链接单独成行。
// 与 Markdown 版不同，空板块整体省略，不渲染占位行。
func (f *Formatter) Plain(news []collector.NewsItem, papers []collector.PaperItem) string {
	now := f.Now()

	lines := []string{
		fmt.Sprintf("📰 AI 热点日报 (%s)", now.Format("2006-01-02")),
		"",
	}

	if len(news) > 0 {
		lines = append(lines, "🔥 技术社区热门（Hacker News）", "")
		for i, story := range news {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, displayTitle(story.TitleCN, story.Title)))
			if story.SummaryCN != "" {
				lines = append(lines, fmt.Sprintf("   📝 %s", story.SummaryCN))
			}
			lines = append(lines, fmt.Sprintf("   👍%d人点赞 💬%d条评论", story.Score, story.Comments))
			lines = append(lines, fmt.Sprintf("   %s", story.URL))
			lines = append(lines, "")
		}
	}

	if len(papers) > 0 {
		lines = append(lines, "📚 AI 前沿论文（ArXiv）", "")
		for i, paper := range papers {
			lines = append(lines, fmt.Sprintf("%d. 【%s】%s", i+1, categoryLabel(paper.Category), displayTitle(paper.TitleCN, paper.Title)))
			lines = append(lines, fmt.Sprintf("   %s", paper.URL))
			lines = append(lines, "")
		}
	}

	lines = append(lines,
		"📌 数据来源：Hacker News 社区 + ArXiv 学术平台",
		fmt.Sprintf("⏰ 生成时间: %s", now.Format("15:04")),
	)

	return strings.Join(lines, "\n")
}

func displayTitle(translated, original string) string {
	if translated != "" {
		return translated
	}
	return original
}

func categoryLabel(code string) string {
	if label, ok := CategoryCN[code]; ok {
		return label
	}
	return code
}
