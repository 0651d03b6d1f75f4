package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/Alexsey111/bloggpt/internal/config"
	"github.com/Alexsey111/bloggpt/internal/generator"
	"github.com/Alexsey111/bloggpt/internal/handler"
	"github.com/Alexsey111/bloggpt/pkg/llm"
	"github.com/Alexsey111/bloggpt/pkg/news"

	"github.com/joho/godotenv"
)

func main() {
	topic := flag.String("topic", "", "Topic to generate a post about")
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	godotenv.Load()

	if *topic == "" {
		log.Fatalf("-topic is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	newsClient := news.NewCurrentsClient(cfg.CurrentsAPIKey, cfg.News.BaseURL, cfg.News.Language, cfg.NewsTimeout())
	fetcher := generator.NewNewsFetcher(newsClient, cfg.News.Limit, cfg.NewsTimeout())
	openAIClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.Generation.Model)

	slog.Info("generating post", "topic", *topic, "model", openAIClient.Model())

	content, err := generator.New(fetcher, openAIClient, cfg.Generation.Settings).Generate(context.Background(), *topic)
	if err != nil {
		log.Fatalf("error generating post: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	err = enc.Encode(handler.PostResponse{
		Title:           content.Title,
		MetaDescription: content.MetaDescription,
		PostContent:     content.PostContent,
	})
	if err != nil {
		log.Fatalf("error writing post: %v", err)
	}
}
