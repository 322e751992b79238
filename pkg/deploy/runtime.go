package deploy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// DeployRequest is the registration payload submitted to the runtime.
type DeployRequest struct {
	AgentName    string   `json:"agent_name"`
	ProjectID    string   `json:"project_id"`
	Description  string   `json:"description,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	// Recipe is the build recipe YAML describing the artifact.
	Recipe string `json:"recipe"`
}

// DeployResult carries the handles the runtime assigned.
type DeployResult struct {
	RuntimeID string `json:"runtime_id"`
	Endpoint  string `json:"endpoint"`
}

// Runtime is the managed agent runtime the service submits builds to.
type Runtime interface {
	Deploy(ctx context.Context, req *DeployRequest) (*DeployResult, error)
}

// HTTPRuntime registers agents against the runtime's HTTP API.
// Transient failures (connection errors, 5xx, throttling) are retried
// with exponential backoff; a rejection is returned as-is.
type HTTPRuntime struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRuntime creates a runtime client for the given base URL.
func NewHTTPRuntime(baseURL string) *HTTPRuntime {
	return &HTTPRuntime{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Deploy submits the registration request and returns the assigned
// runtime handles.
func (r *HTTPRuntime) Deploy(ctx context.Context, req *DeployRequest) (*DeployResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode deploy request: %w", err)
	}

	var result DeployResult
	operation := func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/agents", bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := r.client.Do(httpReq)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return err
		}
		switch {
		case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
			if err := json.Unmarshal(data, &result); err != nil {
				return backoff.Permanent(fmt.Errorf("invalid runtime response: %w", err))
			}
			return nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("runtime returned %s", resp.Status)
		default:
			return backoff.Permanent(fmt.Errorf("runtime rejected deployment: %s: %s", resp.Status, bytes.TrimSpace(data)))
		}
	}

	policy := backoff.WithContext(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(1*time.Second),
		backoff.WithMaxInterval(15*time.Second),
		backoff.WithMaxElapsedTime(2*time.Minute),
	), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return &result, nil
}
