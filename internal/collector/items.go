package collector

// NewsItem Hacker News 热门文章。TitleCN / SummaryCN 由翻译阶段填充，
// 为空表示未翻译，展示时回退英文原文。
type NewsItem struct {
	Title    string
	URL      string
	Score    int
	Comments int

	TitleCN   string
	SummaryCN string
}

// PaperItem ArXiv 论文，Category 取条目的首个分类代码
type PaperItem struct {
	Title    string
	Summary  string
	URL      string
	Category string

	TitleCN   string
	SummaryCN string
}
