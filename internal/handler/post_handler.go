package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Alexsey111/bloggpt/internal/generator"
	"github.com/Alexsey111/bloggpt/internal/model"

	"github.com/gin-gonic/gin"
)

type ContentGenerator interface {
	Generate(ctx context.Context, topic string) (*model.GeneratedContent, error)
}

type PostHandler struct {
	generator ContentGenerator
}

func NewPostHandler(gen ContentGenerator) *PostHandler {
	return &PostHandler{generator: gen}
}

func (h *PostHandler) GeneratePost(c *gin.Context) {
	var req TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid generate request", "error", err, "request_id", requestID(c))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "topic is required and must be a non-empty string"})
		return
	}

	content, err := h.generator.Generate(c.Request.Context(), req.Topic)
	if err != nil {
		var genErr *generator.GenerationError
		if errors.As(err, &genErr) {
			slog.Error("error generating post", "topic", req.Topic, "step", genErr.Step, "error", err, "request_id", requestID(c))
		} else {
			slog.Error("error generating post", "topic", req.Topic, "error", err, "request_id", requestID(c))
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, PostResponse{
		Title:           content.Title,
		MetaDescription: content.MetaDescription,
		PostContent:     content.PostContent,
	})
}

func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "OK", Mode: "asynchronous"})
}
