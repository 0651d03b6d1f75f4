package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Alexsey111/bloggpt/internal/model"
	"github.com/Alexsey111/bloggpt/pkg/llm"
	"github.com/go-playground/assert/v2"
)

type staticNews string

func (s staticNews) FetchNews(ctx context.Context, topic string) string {
	return string(s)
}

type scriptedLLM struct {
	outputs  []string
	failAt   int
	calls    []llm.CompletionRequest
	failWith error
}

func (s *scriptedLLM) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	s.calls = append(s.calls, req)
	n := len(s.calls)
	if n == s.failAt {
		return "", s.failWith
	}
	return s.outputs[n-1], nil
}

func newScriptedLLM(failAt int) *scriptedLLM {
	return &scriptedLLM{
		outputs:  []string{"Electric Cars Surge", "Why EV sales are booming.", "## Intro\nBody text"},
		failAt:   failAt,
		failWith: errors.New("openai API error: insufficient_quota"),
	}
}

func TestGenerate_Success(t *testing.T) {
	gen := newScriptedLLM(0)
	g := New(staticNews("A\nB"), gen, DefaultSettings())

	got, err := g.Generate(context.Background(), "electric cars")

	assert.Equal(t, nil, err)
	assert.Equal(t, &model.GeneratedContent{
		Title:           "Electric Cars Surge",
		MetaDescription: "Why EV sales are booming.",
		PostContent:     "## Intro\nBody text",
	}, got)

	assert.Equal(t, 3, len(gen.calls))

	title := gen.calls[0]
	assert.Equal(t, TitlePrompt("electric cars", "A\nB"), title.Prompt)
	assert.Equal(t, 60, title.MaxTokens)
	assert.Equal(t, 0.5, title.Temperature)

	meta := gen.calls[1]
	assert.Equal(t, MetaPrompt("Electric Cars Surge"), meta.Prompt)
	assert.Equal(t, 150, meta.MaxTokens)
	assert.Equal(t, 0.5, meta.Temperature)

	body := gen.calls[2]
	assert.Equal(t, BodyPrompt("electric cars", "A\nB"), body.Prompt)
	assert.Equal(t, 1500, body.MaxTokens)
	assert.Equal(t, 0.7, body.Temperature)
}

func TestGenerate_UsesDegradedNews(t *testing.T) {
	gen := newScriptedLLM(0)
	g := New(staticNews(NewsUnavailable), gen, DefaultSettings())

	_, err := g.Generate(context.Background(), "golang")

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(gen.calls[0].Prompt, NewsUnavailable))
	assert.Equal(t, true, strings.Contains(gen.calls[2].Prompt, NewsUnavailable))
}

func TestGenerate_StepFailures(t *testing.T) {
	tests := []struct {
		name      string
		failAt    int
		wantStep  string
		wantCalls int
	}{
		{name: "title fails", failAt: 1, wantStep: StepTitle, wantCalls: 1},
		{name: "meta fails", failAt: 2, wantStep: StepMeta, wantCalls: 2},
		{name: "body fails", failAt: 3, wantStep: StepBody, wantCalls: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newScriptedLLM(tt.failAt)
			g := New(staticNews("A"), gen, DefaultSettings())

			got, err := g.Generate(context.Background(), "electric cars")

			assert.Equal(t, true, got == nil)
			assert.Equal(t, tt.wantCalls, len(gen.calls))

			var genErr *GenerationError
			assert.Equal(t, true, errors.As(err, &genErr))
			assert.Equal(t, tt.wantStep, genErr.Step)
			assert.Equal(t, true, errors.Is(err, gen.failWith))
			assert.Equal(t, "generation error: openai API error: insufficient_quota", err.Error())
		})
	}
}
