package openai

import "context"

// IOpenAI defines the interface for an OpenAI-compatible chat completion client.
type IOpenAI interface {
	// Complete sends a system + user prompt and returns the first choice
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new OpenAI-compatible client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
