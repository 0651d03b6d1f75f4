package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Alexsey111/bloggpt/pkg/news"
	"github.com/go-playground/assert/v2"
)

type fakeNewsClient struct {
	articles []news.Article
	err      error
	block    bool
	keyword  string
}

func (f *fakeNewsClient) Search(ctx context.Context, keyword string) ([]news.Article, error) {
	f.keyword = keyword
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.articles, f.err
}

func (f *fakeNewsClient) Name() string {
	return "fake"
}

func titled(titles ...string) []news.Article {
	articles := make([]news.Article, len(titles))
	for i, t := range titles {
		articles[i] = news.Article{Title: t, URL: fmt.Sprintf("https://example.com/%d", i)}
	}
	return articles
}

func TestFetchNews_JoinsTitles(t *testing.T) {
	client := &fakeNewsClient{articles: titled("A", "B")}
	f := NewNewsFetcher(client, 0, 0)

	got := f.FetchNews(context.Background(), "electric cars")

	assert.Equal(t, "A\nB", got)
	assert.Equal(t, "electric cars", client.keyword)
}

func TestFetchNews_KeepsFirstFive(t *testing.T) {
	client := &fakeNewsClient{articles: titled("1", "2", "3", "4", "5", "6", "7")}
	f := NewNewsFetcher(client, 0, 0)

	got := f.FetchNews(context.Background(), "golang")

	lines := strings.Split(got, "\n")
	assert.Equal(t, 5, len(lines))
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, lines)
}

func TestFetchNews_NoArticles(t *testing.T) {
	f := NewNewsFetcher(&fakeNewsClient{articles: []news.Article{}}, 0, 0)

	assert.Equal(t, NoRecentNews, f.FetchNews(context.Background(), "golang"))
}

func TestFetchNews_BlankTitles(t *testing.T) {
	f := NewNewsFetcher(&fakeNewsClient{articles: titled("")}, 0, 0)

	assert.Equal(t, NoRecentNews, f.FetchNews(context.Background(), "golang"))
}

func TestFetchNews_ProviderError(t *testing.T) {
	f := NewNewsFetcher(&fakeNewsClient{err: errors.New("currents fetch: status 500")}, 0, 0)

	got := f.FetchNews(context.Background(), "golang")

	assert.Equal(t, NewsUnavailable, got)
	assert.NotEqual(t, NoRecentNews, got)
}

func TestFetchNews_Timeout(t *testing.T) {
	f := NewNewsFetcher(&fakeNewsClient{block: true}, 0, 20*time.Millisecond)

	start := time.Now()
	got := f.FetchNews(context.Background(), "golang")

	assert.Equal(t, NewsUnavailable, got)
	assert.Equal(t, true, time.Since(start) < time.Second)
}
