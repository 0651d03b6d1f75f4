package generator

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Alexsey111/bloggpt/pkg/news"
)

const (
	NoRecentNews    = "No recent news found."
	NewsUnavailable = "Recent news is currently unavailable."

	DefaultNewsLimit   = 5
	DefaultNewsTimeout = 10 * time.Second
)

// NewsFetcher turns a news search into prompt context. It never fails: any
// provider error degrades to NewsUnavailable.
type NewsFetcher struct {
	client  news.NewsClient
	limit   int
	timeout time.Duration
}

func NewNewsFetcher(client news.NewsClient, limit int, timeout time.Duration) *NewsFetcher {
	if limit <= 0 {
		limit = DefaultNewsLimit
	}
	if timeout <= 0 {
		timeout = DefaultNewsTimeout
	}
	return &NewsFetcher{client: client, limit: limit, timeout: timeout}
}

func (f *NewsFetcher) FetchNews(ctx context.Context, topic string) string {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	articles, err := f.client.Search(ctx, topic)
	if err != nil {
		slog.Error("error fetching news", "source", f.client.Name(), "topic", topic, "error", err)
		return NewsUnavailable
	}

	if len(articles) == 0 {
		slog.Info("no recent news for topic", "source", f.client.Name(), "topic", topic)
		return NoRecentNews
	}

	if len(articles) > f.limit {
		articles = articles[:f.limit]
	}

	titles := make([]string, len(articles))
	for i, a := range articles {
		titles[i] = a.Title
	}

	summary := strings.Join(titles, "\n")
	if strings.TrimSpace(summary) == "" {
		return NoRecentNews
	}
	return summary
}
