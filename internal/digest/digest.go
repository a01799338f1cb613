package digest

import (
	"context"
	"log"

	"github.com/huha-yy/ai-news-bot/internal/collector"
	"github.com/huha-yy/ai-news-bot/internal/config"
	"github.com/huha-yy/ai-news-bot/internal/pusher"
	"github.com/huha-yy/ai-news-bot/internal/report"
	"github.com/huha-yy/ai-news-bot/internal/translator"
)

// Runner 串起一次完整的日报流程：抓取 → 翻译 → 排版 → 推送。
// 每一步都尽力而为，流程本身从不失败。
type Runner struct {
	cfg        *config.Config
	news       *collector.HackerNewsFetcher
	papers     *collector.ArxivFetcher
	translator *translator.Translator
	formatter  *report.Formatter
	wechat     *pusher.PushPlus
	telegram   *pusher.Telegram
}

func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		cfg:        cfg,
		news:       collector.NewHackerNewsFetcher(),
		papers:     collector.NewArxivFetcher(),
		translator: translator.New(cfg),
		formatter:  report.NewFormatter(),
		wechat:     pusher.NewPushPlus(cfg.PushPlusToken),
		telegram:   pusher.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID),
	}
}

// Result 一次运行渲染出的两份报告；预览接口复用
type Result struct {
	Title    string
	Markdown string
	Plain    string
}

// Render 抓取、翻译并渲染报告，不推送
func (r *Runner) Render(ctx context.Context) Result {
	log.Printf("fetch Hacker News top %d...", r.cfg.HNTopN)
	news := r.news.Fetch(ctx, r.cfg.HNTopN)
	log.Printf("got %d stories", len(news))

	log.Printf("fetch ArXiv papers top %d...", r.cfg.ArxivTopN)
	papers := r.papers.Fetch(ctx, nil, r.cfg.ArxivTopN)
	log.Printf("got %d papers", len(papers))

	if r.translator.Enabled() {
		news = r.translator.SummarizeStories(ctx, news)
		papers = r.translator.TranslatePapers(ctx, papers)
	} else {
		log.Println("translate api key not configured, skip translation")
	}

	return Result{
		Title:    r.formatter.Title(),
		Markdown: r.formatter.Markdown(news, papers),
		Plain:    r.formatter.Plain(news, papers),
	}
}

// Run 渲染并推送两份报告；两个推送渠道互不影响，失败只记日志
func (r *Runner) Run(ctx context.Context) Result {
	res := r.Render(ctx)

	log.Println("push reports...")
	r.wechat.Push(ctx, res.Title, res.Markdown)
	r.telegram.Push(ctx, res.Plain)
	return res
}
