package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alexsey111/bloggpt/internal/config"
	"github.com/Alexsey111/bloggpt/internal/generator"
	"github.com/Alexsey111/bloggpt/internal/handler"
	"github.com/Alexsey111/bloggpt/pkg/llm"
	"github.com/Alexsey111/bloggpt/pkg/news"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("error loading config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()})))
	gin.SetMode(gin.ReleaseMode)

	newsClient := news.NewCurrentsClient(cfg.CurrentsAPIKey, cfg.News.BaseURL, cfg.News.Language, cfg.NewsTimeout())
	fetcher := generator.NewNewsFetcher(newsClient, cfg.News.Limit, cfg.NewsTimeout())
	openAIClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.Generation.Model)

	postGenerator := generator.New(fetcher, openAIClient, cfg.Generation.Settings)

	slog.Info("AllowOrigins URL:", "urls", cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handler.NewRouter(postGenerator, cfg.Server.AllowedOrigins),
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		slog.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("error shutting down server", "error", err)
		}
	}()

	slog.Info("server listening", "addr", srv.Addr, "model", openAIClient.Model())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("error starting server", "error", err)
		os.Exit(1)
	}
}
