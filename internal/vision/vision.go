package vision

import "context"

// Image is a single photo of the item being listed.
type Image struct {
	Data     []byte
	MimeType string
}

// Usage contains token usage and cost information for provider calls.
type Usage struct {
	InputTokens  int64   `json:"inputTokens"`
	OutputTokens int64   `json:"outputTokens"`
	TotalTokens  int64   `json:"totalTokens"`
	CostUSD      float64 `json:"costUSD"`
}

// Add accumulates usage from another provider call.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
	u.CostUSD += other.CostUSD
}

// Response is the raw provider output before normalization.
type Response struct {
	Text  string
	Usage Usage
}

// Provider can describe a set of garment photos as freeform text that is
// expected to embed a single JSON object.
type Provider interface {
	// Name identifies the provider in logs and errors.
	Name() string
	// Describe sends the prompt and images to the provider and returns its
	// raw text response.
	Describe(ctx context.Context, prompt string, images []Image) (*Response, error)
}

// Analyzer produces a normalized analysis record from garment photos.
type Analyzer interface {
	Analyze(ctx context.Context, images []Image) (*AnalysisRecord, Usage, error)
}
