package llm

import "context"

// Provider is a chat-completion backend used for failure log analysis.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req *Request) (*Response, error)
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Request struct {
	Messages    []Message
	System      string
	MaxTokens   int
	Temperature float64
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type Response struct {
	Text       string
	Usage      Usage
	StopReason string
}
