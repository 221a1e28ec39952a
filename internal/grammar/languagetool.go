package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single grammar check so a hung backend cannot
// stall the rest of an analysis.
const DefaultTimeout = 10 * time.Second

// defaultLanguage is the language code sent to the server.
const defaultLanguage = "en-US"

// Error represents a failure talking to the grammar backend.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("grammar check failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("grammar check failed: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// LanguageTool checks text against a LanguageTool-compatible HTTP server
// (the /v2/check endpoint).
type LanguageTool struct {
	baseURL string
	client  *http.Client
}

// NewLanguageTool returns a checker for the server at baseURL, e.g.
// "http://localhost:8010". A zero timeout uses DefaultTimeout.
func NewLanguageTool(baseURL string, timeout time.Duration) *LanguageTool {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &LanguageTool{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// checkResponse mirrors the subset of the LanguageTool response we consume.
type checkResponse struct {
	Matches []struct {
		Message string `json:"message"`
	} `json:"matches"`
}

// Check submits text and returns the reported issue messages in order.
func (lt *LanguageTool) Check(ctx context.Context, text string) ([]string, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", defaultLanguage)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		lt.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &Error{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := lt.client.Do(req)
	if err != nil {
		return nil, &Error{Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: "failed to read response body", Cause: err}
	}

	var parsed checkResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &Error{Message: "failed to decode response", Cause: err}
	}

	issues := make([]string, 0, len(parsed.Matches))
	for _, m := range parsed.Matches {
		msg := strings.TrimSpace(m.Message)
		if msg != "" {
			issues = append(issues, msg)
		}
	}
	return issues, nil
}
