package roadmap

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"roadmap_backend/internal/events"
	"roadmap_backend/internal/generation"
	"roadmap_backend/platform/logger"
)

// PipelineInput is the synchronous output of Prepare: everything the
// detached generation task needs, computed before the HTTP acknowledgment.
type PipelineInput struct {
	ProcessingID string
	Lead         LeadRecord
	Model        string
	Prompt       string
}

// Service runs the request-to-delivery pipeline. The synchronous half
// (normalize, classify, build prompt) happens in Prepare; the asynchronous
// half (generate, publish for delivery) happens in a detached task with its
// own error boundary.
type Service struct {
	selector *ModelSelector
	invoker  *generation.Invoker
	bus      events.Bus
	log      *logger.Logger
}

// NewService creates the pipeline service.
func NewService(selector *ModelSelector, invoker *generation.Invoker, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		selector: selector,
		invoker:  invoker,
		bus:      bus,
		log:      log,
	}
}

// Prepare normalizes the raw body and computes model and prompt. It cannot
// fail: normalization is total and classification covers every input.
func (s *Service) Prepare(body map[string]any) PipelineInput {
	lead := Normalize(body)
	return PipelineInput{
		ProcessingID: uuid.New().String(),
		Lead:         lead,
		Model:        s.selector.ChooseModel(lead.Level),
		Prompt:       BuildPrompt(lead),
	}
}

// RunDetached executes the background half of the pipeline in its own
// goroutine. The HTTP response has already been sent by the time this runs,
// so nothing here may surface to the caller; panics are caught and logged.
func (s *Service) RunDetached(in PipelineInput) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("pipeline panicked", "processing_id", in.ProcessingID, "panic", fmt.Sprintf("%v", r))
			}
		}()
		s.Run(context.Background(), in)
	}()
}

// Run generates the roadmap and publishes the result for delivery. It is
// exported separately from RunDetached so tests can drive it synchronously.
func (s *Service) Run(ctx context.Context, in PipelineInput) {
	result := s.invoker.Generate(ctx, in.ProcessingID, in.Model, in.Prompt)

	s.bus.Publish(ctx, events.RoadmapGenerated{
		BaseEvent:    events.NewBaseEvent(),
		ProcessingID: in.ProcessingID,
		Lead:         in.Lead.Snapshot(),
		Text:         result.Text,
		ModelUsed:    result.ModelUsed,
		Source:       string(result.Source),
	})
}
