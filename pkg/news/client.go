package news

import (
	"context"
	"time"
)

type Article struct {
	ID          string
	Title       string
	Description string
	URL         string
	Author      string
	Published   time.Time
}

type NewsClient interface {
	Search(ctx context.Context, keyword string) ([]Article, error)
	Name() string
}
