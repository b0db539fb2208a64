package generation

import (
	"context"

	"roadmap_backend/platform/logger"
)

// TextGenerator produces text for a prompt with a specific model.
// Implemented by Client; tests substitute a stub.
type TextGenerator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Invoker applies the two-attempt generation policy: one call with the
// requested model, then at most one more with the fixed fallback model.
// This is not a retry loop; a failed fallback is terminal.
type Invoker struct {
	gen           TextGenerator
	fallbackModel string
	log           *logger.Logger
}

// NewInvoker creates an invoker. The fallback model is the entry-tier model.
func NewInvoker(gen TextGenerator, fallbackModel string, log *logger.Logger) *Invoker {
	return &Invoker{
		gen:           gen,
		fallbackModel: fallbackModel,
		log:           log,
	}
}

// Generate runs the two-attempt policy and always returns a Result.
// Failures are logged here and never surface as errors to the caller.
func (i *Invoker) Generate(ctx context.Context, processingID, model, prompt string) Result {
	text, err := i.gen.Generate(ctx, model, prompt)
	if err == nil && text != "" {
		return Result{Text: text, ModelUsed: model, Source: SourcePrimary}
	}

	i.log.GenerationFallback(processingID, model, i.fallbackModel, err)

	text, err = i.gen.Generate(ctx, i.fallbackModel, prompt)
	if err == nil && text != "" {
		return Result{Text: text, ModelUsed: i.fallbackModel, Source: SourceFallback}
	}

	i.log.GenerationFailed(processingID, i.fallbackModel, err)
	return Result{Source: SourceFailed}
}
