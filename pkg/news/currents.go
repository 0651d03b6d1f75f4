package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultCurrentsURL = "https://api.currentsapi.services/v1/latest-news"
	currentsTimeLayout = "2006-01-02 15:04:05 -0700"
)

type CurrentsClient struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

func NewCurrentsClient(apiKey, baseURL, language string, timeout time.Duration) *CurrentsClient {
	if baseURL == "" {
		baseURL = DefaultCurrentsURL
	}
	if language == "" {
		language = "en"
	}
	return &CurrentsClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		language:   language,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *CurrentsClient) Name() string {
	return "Currents"
}

func (c *CurrentsClient) Search(ctx context.Context, keyword string) ([]Article, error) {
	params := url.Values{}
	params.Set("language", c.language)
	params.Set("keywords", keyword)
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("currents request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("currents fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("currents fetch: status %d: %s", resp.StatusCode, body)
	}

	var raw currentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("currents decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.News))
	for _, item := range raw.News {
		published, err := time.Parse(currentsTimeLayout, item.Published)
		if err != nil {
			published = time.Time{}
		}

		articles = append(articles, Article{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			Author:      item.Author,
			Published:   published,
		})
	}

	return articles, nil
}

type currentsResponse struct {
	Status string         `json:"status"`
	News   []currentsItem `json:"news"`
}

type currentsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	Published   string `json:"published"`
}
