package generation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"roadmap_backend/platform/ai/openaichat"
)

// Writer is a single-shot roadmap-writing agent bound to one model. It has
// no tools; every call is an independent session that is deleted afterwards.
type Writer struct {
	agent          agent.Agent
	runner         *runner.Runner
	sessionService session.Service
	appName        string
	model          string
	runMu          sync.Mutex
}

// NewWriter creates a writer agent for the given chat model configuration.
func NewWriter(cfg openaichat.Config, systemPrompt string) (*Writer, error) {
	chatModel := openaichat.NewModel(cfg)

	adkAgent, err := llmagent.New(llmagent.Config{
		Name:        "RoadmapWriter",
		Model:       chatModel,
		Description: "Writes short, personalized roadmap emails for new leads.",
		Instruction: systemPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create roadmap writer agent: %w", err)
	}

	sessionService := session.InMemoryService()
	appName := "roadmap-writer-" + cfg.Model
	r, err := runner.New(runner.Config{
		AppName:        appName,
		Agent:          adkAgent,
		SessionService: sessionService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create roadmap writer runner: %w", err)
	}

	return &Writer{
		agent:          adkAgent,
		runner:         r,
		sessionService: sessionService,
		appName:        appName,
		model:          cfg.Model,
	}, nil
}

// Write runs one generation for the given user prompt and returns the text.
func (w *Writer) Write(ctx context.Context, prompt string) (string, error) {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	sessionID := uuid.New().String()
	userID := "roadmap-" + sessionID

	_, err := w.sessionService.Create(ctx, &session.CreateRequest{
		AppName:   w.appName,
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		return "", fmt.Errorf("roadmap writer: create session: %w", err)
	}
	defer func() {
		_ = w.sessionService.Delete(ctx, &session.DeleteRequest{
			AppName:   w.appName,
			UserID:    userID,
			SessionID: sessionID,
		})
	}()

	userMessage := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{{
			Text: prompt,
		}},
	}

	runConfig := agent.RunConfig{StreamingMode: agent.StreamingModeNone}

	var outputText strings.Builder
	for event, err := range w.runner.Run(ctx, userID, sessionID, userMessage, runConfig) {
		if err != nil {
			return "", fmt.Errorf("roadmap writer: run failed: %w", err)
		}
		if event.Content == nil {
			continue
		}
		for _, part := range event.Content.Parts {
			outputText.WriteString(part.Text)
		}
	}

	return strings.TrimSpace(outputText.String()), nil
}

// Client routes generation requests to the writer built for each configured
// model. It implements TextGenerator.
type Client struct {
	writers map[string]*Writer
}

// NewClient builds one writer per model identifier. Duplicate identifiers
// share a single writer.
func NewClient(apiKey, baseURL, systemPrompt string, models ...string) (*Client, error) {
	writers := make(map[string]*Writer, len(models))
	for _, model := range models {
		if _, ok := writers[model]; ok {
			continue
		}
		w, err := NewWriter(openaichat.Config{
			APIKey:  apiKey,
			BaseURL: baseURL,
			Model:   model,
		}, systemPrompt)
		if err != nil {
			return nil, err
		}
		writers[model] = w
	}
	return &Client{writers: writers}, nil
}

// Generate produces text with the given model.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	w, ok := c.writers[model]
	if !ok {
		return "", fmt.Errorf("no writer configured for model %q", model)
	}
	return w.Write(ctx, prompt)
}
