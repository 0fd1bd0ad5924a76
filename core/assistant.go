package core

import "context"

// AssistantService is any service that can turn a study prompt into
// generated text. Implementations are stateless; each call is independent.
type AssistantService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
