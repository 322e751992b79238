package models

// StageMetrics captures the cost of a single stage execution. For
// iterative stages the fields are summed across sub-agent invocations.
type StageMetrics struct {
	InputTokens    int    `json:"input_tokens"`
	OutputTokens   int    `json:"output_tokens"`
	ToolCallsCount int    `json:"tool_calls_count"`
	ModelID        string `json:"model_id"`
}

// TotalTokens returns input + output tokens.
func (m StageMetrics) TotalTokens() int {
	return m.InputTokens + m.OutputTokens
}

// AggregatedMetrics is the per-project running total over completed
// stages. It is monotonically non-decreasing: each completed stage is
// folded in exactly once.
type AggregatedMetrics struct {
	InputTokens     int     `json:"input_tokens"`
	OutputTokens    int     `json:"output_tokens"`
	ToolCalls       int     `json:"tool_calls"`
	WallTimeSeconds float64 `json:"wall_time_seconds"`
	EstimatedCost   float64 `json:"estimated_cost"`
}

// Fold adds one completed stage's metrics to the running totals.
// costPerMTokens is the blended price per million tokens used for the
// advisory cost estimate.
func (a *AggregatedMetrics) Fold(m StageMetrics, wallSeconds, costPerMTokens float64) {
	a.InputTokens += m.InputTokens
	a.OutputTokens += m.OutputTokens
	a.ToolCalls += m.ToolCallsCount
	a.WallTimeSeconds += wallSeconds
	a.EstimatedCost += float64(m.TotalTokens()) / 1_000_000 * costPerMTokens
}

// TotalTokens returns the aggregated input + output tokens.
func (a AggregatedMetrics) TotalTokens() int {
	return a.InputTokens + a.OutputTokens
}
