package llm

import "context"

type StepConfig struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

type CompletionRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

type TextGenerator interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
