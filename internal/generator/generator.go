package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Alexsey111/bloggpt/internal/model"
	"github.com/Alexsey111/bloggpt/pkg/llm"
)

type Settings struct {
	Title llm.StepConfig `yaml:"title"`
	Meta  llm.StepConfig `yaml:"meta_description"`
	Body  llm.StepConfig `yaml:"post_content"`
}

func DefaultSettings() Settings {
	return Settings{
		Title: llm.StepConfig{MaxTokens: 60, Temperature: 0.5},
		Meta:  llm.StepConfig{MaxTokens: 150, Temperature: 0.5},
		Body:  llm.StepConfig{MaxTokens: 1500, Temperature: 0.7},
	}
}

type NewsSource interface {
	FetchNews(ctx context.Context, topic string) string
}

// Generator runs the post pipeline: news, title, meta description, body.
// Each step needs the output of an earlier one, so they run strictly in order
// and the first failure ends the run with no partial result.
type Generator struct {
	news     NewsSource
	llm      llm.TextGenerator
	settings Settings
}

func New(news NewsSource, gen llm.TextGenerator, settings Settings) *Generator {
	return &Generator{news: news, llm: gen, settings: settings}
}

func (g *Generator) Generate(ctx context.Context, topic string) (*model.GeneratedContent, error) {
	start := time.Now()

	recentNews := g.news.FetchNews(ctx, topic)

	title, err := g.titleStep(ctx, topic, recentNews)
	if err != nil {
		return nil, err
	}

	meta, err := g.metaStep(ctx, title)
	if err != nil {
		return nil, err
	}

	body, err := g.bodyStep(ctx, topic, recentNews)
	if err != nil {
		return nil, err
	}

	slog.Info("post generated", "topic", topic, "title", title, "duration", time.Since(start).String())

	return &model.GeneratedContent{
		Title:           title,
		MetaDescription: meta,
		PostContent:     body,
	}, nil
}

func (g *Generator) titleStep(ctx context.Context, topic, recentNews string) (string, error) {
	return g.complete(ctx, StepTitle, TitlePrompt(topic, recentNews), g.settings.Title)
}

func (g *Generator) metaStep(ctx context.Context, title string) (string, error) {
	return g.complete(ctx, StepMeta, MetaPrompt(title), g.settings.Meta)
}

func (g *Generator) bodyStep(ctx context.Context, topic, recentNews string) (string, error) {
	return g.complete(ctx, StepBody, BodyPrompt(topic, recentNews), g.settings.Body)
}

func (g *Generator) complete(ctx context.Context, step, prompt string, cfg llm.StepConfig) (string, error) {
	out, err := g.llm.Complete(ctx, llm.CompletionRequest{
		Prompt:      prompt,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		slog.Error("error generating content", "step", step, "error", err)
		return "", &GenerationError{Step: step, Err: err}
	}
	return out, nil
}

func TitlePrompt(topic, recentNews string) string {
	return fmt.Sprintf("Come up with a title for an article about '%s', taking into account the following news:\n%s", topic, recentNews)
}

func MetaPrompt(title string) string {
	return fmt.Sprintf("Write an SEO meta description for the article: '%s'", title)
}

func BodyPrompt(topic, recentNews string) string {
	return fmt.Sprintf("Write a detailed article about '%s' based on the following news:\n%s. Use subheadings.", topic, recentNews)
}
