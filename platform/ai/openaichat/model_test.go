package openaichat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

func chatServer(t *testing.T, status int, response string, captured *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if captured != nil {
			if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
}

func newRequest(system, user string) *model.LLMRequest {
	return &model.LLMRequest{
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		},
		Contents: []*genai.Content{
			{Role: "user", Parts: []*genai.Part{{Text: user}}},
		},
	}
}

func collect(t *testing.T, m *ChatModel, req *model.LLMRequest) (*model.LLMResponse, error) {
	t.Helper()
	var lastResp *model.LLMResponse
	var lastErr error
	for resp, err := range m.GenerateContent(context.Background(), req, false) {
		lastResp, lastErr = resp, err
	}
	return lastResp, lastErr
}

func TestGenerateContent(t *testing.T) {
	var captured chatRequest
	srv := chatServer(t, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"  the roadmap  "}}]}`, &captured)
	defer srv.Close()

	m := NewModel(Config{APIKey: "key", BaseURL: srv.URL, Model: "test-model"})
	resp, err := collect(t, m, newRequest("be helpful", "write a roadmap"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if captured.Model != "test-model" {
		t.Errorf("unexpected model %q", captured.Model)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("expected system and user messages, got %v", captured.Messages)
	}
	if captured.Messages[0].Role != "system" || captured.Messages[0].Content != "be helpful" {
		t.Errorf("unexpected system message %+v", captured.Messages[0])
	}
	if captured.Messages[1].Role != "user" || captured.Messages[1].Content != "write a roadmap" {
		t.Errorf("unexpected user message %+v", captured.Messages[1])
	}
	if captured.Temperature != defaultTemperature || captured.MaxTokens != defaultMaxTokens {
		t.Errorf("defaults not applied: temp=%v max=%d", captured.Temperature, captured.MaxTokens)
	}

	if resp == nil || resp.Content == nil || len(resp.Content.Parts) != 1 {
		t.Fatalf("unexpected response shape: %+v", resp)
	}
	if got := resp.Content.Parts[0].Text; got != "the roadmap" {
		t.Errorf("expected trimmed text, got %q", got)
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	srv := chatServer(t, http.StatusUnauthorized, `{"error":{"message":"bad key"}}`, nil)
	defer srv.Close()

	m := NewModel(Config{APIKey: "bad", BaseURL: srv.URL, Model: "test-model"})
	if _, err := collect(t, m, newRequest("sys", "user")); err == nil {
		t.Fatal("expected an error from the api error payload")
	}
}

func TestGenerateContentEmptyChoices(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{"choices":[]}`, nil)
	defer srv.Close()

	m := NewModel(Config{APIKey: "key", BaseURL: srv.URL, Model: "test-model"})
	if _, err := collect(t, m, newRequest("sys", "user")); err == nil {
		t.Fatal("expected an error for empty choices")
	}
}
