package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"readyou/internal/errors"
)

// DefaultBaseURL is the OpenAI API root used when the config names none.
const DefaultBaseURL = "https://api.openai.com/v1"

// Client is the interface the generator depends on, satisfied by
// OpenAIClient and by test doubles.
type Client interface {
	CreateChatCompletion(ctx context.Context, req *Request) (*Response, error)
}

// OpenAIClient implements Client against the OpenAI HTTP API.
type OpenAIClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewOpenAIClient creates a client. baseURL may be empty; timeout covers the
// whole request including reading the body.
func NewOpenAIClient(apiKey, baseURL string, timeout time.Duration) *OpenAIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreateChatCompletion sends one completion request. There are no retries: a
// transport error or non-200 status fails the whole run.
func (c *OpenAIClient) CreateChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(errors.InternalError, "marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(errors.InternalError, "create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(errors.GenerationFailed, "request to generation backend failed", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.GenerationFailed, "read backend response", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.GenerationFailed, backendErrorMessage(httpResp.StatusCode, respBody))
	}

	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, errors.Wrap(errors.GenerationFailed, "unmarshal backend response", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New(errors.GenerationFailed, "no choices in backend response")
	}

	return &resp, nil
}

func backendErrorMessage(status int, body []byte) string {
	var envelope apiError
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return fmt.Sprintf("backend returned status %d: %s", status, envelope.Error.Message)
	}
	return fmt.Sprintf("backend returned status %d", status)
}
