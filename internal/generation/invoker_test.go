package generation

import (
	"context"
	"errors"
	"testing"

	"roadmap_backend/platform/logger"
)

type stubGenerator struct {
	responses map[string]string
	errs      map[string]error
	calls     []string
}

func (s *stubGenerator) Generate(_ context.Context, model, _ string) (string, error) {
	s.calls = append(s.calls, model)
	if err, ok := s.errs[model]; ok {
		return "", err
	}
	return s.responses[model], nil
}

func newTestInvoker(gen TextGenerator) *Invoker {
	return NewInvoker(gen, "entry-model", logger.New("test"))
}

func TestGeneratePrimarySuccess(t *testing.T) {
	gen := &stubGenerator{responses: map[string]string{"premium-model": "the roadmap"}}
	inv := newTestInvoker(gen)

	result := inv.Generate(context.Background(), "proc-1", "premium-model", "prompt")

	if result.Source != SourcePrimary {
		t.Fatalf("expected primary source, got %q", result.Source)
	}
	if result.Text != "the roadmap" {
		t.Errorf("expected generated text, got %q", result.Text)
	}
	if result.ModelUsed != "premium-model" {
		t.Errorf("expected primary model recorded, got %q", result.ModelUsed)
	}
	if len(gen.calls) != 1 {
		t.Errorf("expected a single attempt, got %d", len(gen.calls))
	}
}

func TestGenerateFallsBackOnError(t *testing.T) {
	gen := &stubGenerator{
		errs:      map[string]error{"premium-model": errors.New("upstream 500")},
		responses: map[string]string{"entry-model": "fallback roadmap"},
	}
	inv := newTestInvoker(gen)

	result := inv.Generate(context.Background(), "proc-2", "premium-model", "prompt")

	if result.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %q", result.Source)
	}
	if result.ModelUsed != "entry-model" {
		t.Errorf("expected fallback model recorded, got %q", result.ModelUsed)
	}
	if len(gen.calls) != 2 || gen.calls[1] != "entry-model" {
		t.Errorf("expected second attempt with fallback model, calls: %v", gen.calls)
	}
}

func TestGenerateFallsBackOnEmptyText(t *testing.T) {
	gen := &stubGenerator{
		responses: map[string]string{
			"premium-model": "",
			"entry-model":   "fallback roadmap",
		},
	}
	inv := newTestInvoker(gen)

	result := inv.Generate(context.Background(), "proc-3", "premium-model", "prompt")

	if result.Source != SourceFallback {
		t.Fatalf("empty primary text must trigger the fallback, got %q", result.Source)
	}
}

func TestGenerateBothAttemptsFail(t *testing.T) {
	gen := &stubGenerator{errs: map[string]error{
		"premium-model": errors.New("upstream 500"),
		"entry-model":   errors.New("upstream 503"),
	}}
	inv := newTestInvoker(gen)

	result := inv.Generate(context.Background(), "proc-4", "premium-model", "prompt")

	if result.Source != SourceFailed {
		t.Fatalf("expected failed source, got %q", result.Source)
	}
	if result.Text != "" || result.ModelUsed != "" {
		t.Errorf("failed result must be empty, got %+v", result)
	}
	if !result.Failed() {
		t.Error("Failed() must report true for a failed result")
	}
	if len(gen.calls) != 2 {
		t.Errorf("expected exactly two attempts, got %d", len(gen.calls))
	}
}

func TestGeneratePrimaryIsFallbackModel(t *testing.T) {
	gen := &stubGenerator{errs: map[string]error{"entry-model": errors.New("down")}}
	inv := newTestInvoker(gen)

	result := inv.Generate(context.Background(), "proc-5", "entry-model", "prompt")

	if result.Source != SourceFailed {
		t.Fatalf("expected failed source, got %q", result.Source)
	}
	// Both attempts use the same model when the primary already is the fallback.
	if len(gen.calls) != 2 {
		t.Errorf("expected two attempts, got %d", len(gen.calls))
	}
}
