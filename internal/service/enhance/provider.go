package enhance

import "context"

// Generator is the minimal chat-completion capability the AI providers
// expose. Implementations must return the assistant text verbatim; callers
// decide what an empty result means.
type Generator interface {
	Name() string
	Generate(ctx context.Context, system, prompt string) (string, error)
}
