package llm

import "context"

// Invoker runs one agent turn against the LLM execution service.
// Implementations must be safe for concurrent use by multiple workers.
type Invoker interface {
	Invoke(ctx context.Context, input *InvokeInput) (*InvokeResult, error)
}

// InvokeInput describes a single agent invocation.
type InvokeInput struct {
	ProjectID      string
	StageName      string
	AgentName      string
	PromptTemplate string

	// Context is the assembled stage context: rules, the user
	// requirement, and prior stage outputs.
	Context string

	// WorkingDir is the local project directory the agent's tools
	// read and write. File side effects land here; the caller scans
	// it after the invocation returns.
	WorkingDir string

	// State is opaque per-stage state carried across iterative
	// invocations of the same stage.
	State map[string]string
}

// InvokeResult is the outcome of one agent invocation.
type InvokeResult struct {
	Text         string
	InputTokens  int
	OutputTokens int
	ModelID      string
	ToolCalls    []ToolCall
	State        map[string]string
}

// ToolCall records one tool invocation the agent made.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON-encoded
}
