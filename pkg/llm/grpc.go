package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	llmv1 "github.com/nexus-ai/nexus/proto"
)

// GRPCInvoker implements Invoker by calling the Python agent execution
// service via gRPC.
type GRPCInvoker struct {
	conn    *grpc.ClientConn
	client  llmv1.AgentInvokerClient
	timeout time.Duration
}

// NewGRPCInvoker creates a new gRPC invoker. The connection is lazy;
// dial errors surface on the first Invoke.
func NewGRPCInvoker(addr string, timeout time.Duration) (*GRPCInvoker, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to agent service at %s: %w", addr, err)
	}
	return &GRPCInvoker{
		conn:    conn,
		client:  llmv1.NewAgentInvokerClient(conn),
		timeout: timeout,
	}, nil
}

// Invoke runs one agent turn. Transient transport failures are retried
// with exponential backoff; an invocation that reached the service is
// never retried here, the queue's redelivery handles those.
func (c *GRPCInvoker) Invoke(ctx context.Context, input *InvokeInput) (*InvokeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := toProtoRequest(input)

	var resp *llmv1.InvokeResponse
	operation := func() error {
		var err error
		resp, err = c.client.Invoke(ctx, req)
		if err != nil {
			if isTransient(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.WithContext(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(1*time.Second),
		backoff.WithMaxInterval(30*time.Second),
		backoff.WithMaxElapsedTime(2*time.Minute),
	), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("agent invocation failed for stage %s: %w", input.StageName, err)
	}

	return fromProtoResponse(resp), nil
}

// Close releases the gRPC connection.
func (c *GRPCInvoker) Close() error {
	return c.conn.Close()
}

// isTransient reports whether the call never reached the service and is
// safe to retry.
func isTransient(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.ResourceExhausted:
		return true
	}
	return false
}

// ────────────────────────────────────────────────────────────
// Proto conversion helpers
// ────────────────────────────────────────────────────────────

func toProtoRequest(input *InvokeInput) *llmv1.InvokeRequest {
	return &llmv1.InvokeRequest{
		ProjectId:      input.ProjectID,
		StageName:      input.StageName,
		AgentName:      input.AgentName,
		PromptTemplate: input.PromptTemplate,
		Context:        input.Context,
		WorkingDir:     input.WorkingDir,
		State:          input.State,
	}
}

func fromProtoResponse(resp *llmv1.InvokeResponse) *InvokeResult {
	result := &InvokeResult{
		Text:         resp.Text,
		InputTokens:  int(resp.InputTokens),
		OutputTokens: int(resp.OutputTokens),
		ModelID:      resp.ModelId,
		State:        resp.State,
	}
	for _, tc := range resp.ToolCalls {
		result.ToolCalls = append(result.ToolCalls, ToolCall{
			ID:        tc.Id,
			Name:      tc.Name,
			Arguments: tc.Arguments,
		})
	}
	return result
}
