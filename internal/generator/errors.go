package generator

import "fmt"

const (
	StepTitle = "title"
	StepMeta  = "meta_description"
	StepBody  = "post_content"
)

// GenerationError reports the first failed step of a generation run.
type GenerationError struct {
	Step string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation error: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
