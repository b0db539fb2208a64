package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const crmHTTPTimeout = 10 * time.Second

// CRMClient updates a contact's custom roadmap field over the CRM's REST
// API, bearer-token authenticated.
type CRMClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	fieldKey   string
}

// NewCRMClient creates a CRM client.
func NewCRMClient(baseURL, apiKey, fieldKey string) *CRMClient {
	return &CRMClient{
		httpClient: &http.Client{Timeout: crmHTTPTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		fieldKey:   fieldKey,
	}
}

// UpdateContactRoadmap issues a PUT to the per-contact resource with the
// roadmap text in the custom-field map. Any non-2xx response is an error.
func (c *CRMClient) UpdateContactRoadmap(ctx context.Context, contactID, text string) error {
	payload := map[string]any{
		"customField": map[string]string{
			c.fieldKey: text,
		},
	}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("crm update: marshal payload: %w", err)
	}

	reqURL := fmt.Sprintf("%s/contacts/%s", c.baseURL, contactID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("crm update: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("crm update: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("crm update: status %d: %s", resp.StatusCode, string(snippet))
	}

	return nil
}
