package dummysvc

import (
	"context"

	"github.com/ethiopulse/backend/core"
)

// Service is a canned AssistantService for DEV (no API key) and tests.
type Service struct {
	Text string
	Err  error
}

var _ core.AssistantService = (*Service)(nil)

func NewService(text string) *Service {
	if text == "" {
		text = "This is a placeholder answer; configure a Gemini API key to enable the assistant."
	}
	return &Service{Text: text}
}

func (svc *Service) Complete(context.Context, string) (string, error) {
	if svc.Err != nil {
		return "", svc.Err
	}
	return svc.Text, nil
}
