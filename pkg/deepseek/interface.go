package deepseek

import "context"

// IDeepSeek is the chat completion surface llmprovider adapts. Any
// OpenAI-compatible backend fits behind it.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
