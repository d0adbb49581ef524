package simplify

import (
	"context"
	"fmt"
	"strings"

	"github.com/speakeasy-app/speakeasy/internal/providers"
)

// Service exposes the simplify/translate operations over an LLM client.
type Service struct {
	llm   providers.LLMClient
	coord *Coordinator
}

// NewService creates a Service using llm for rewrites and chunkBudget for
// splitting oversized input.
func NewService(llm providers.LLMClient, chunkBudget int) *Service {
	return &Service{
		llm:   llm,
		coord: NewCoordinator(chunkBudget),
	}
}

// Simplify rewrites text into plain language. Input larger than the chunk
// budget is split, rewritten chunk by chunk, and reconciled with a final
// consolidation pass.
func (s *Service) Simplify(ctx context.Context, text string) (string, error) {
	return s.coord.Rewrite(ctx, text, func(ctx context.Context, piece string) (string, error) {
		return s.chat(ctx, simplifyPrompt(piece))
	})
}

// Translate renders text in the target language. Translation operates on
// already-simplified text, which fits one call, so no chunking is applied.
func (s *Service) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}
	if strings.TrimSpace(targetLanguage) == "" {
		return text, nil
	}
	return s.chat(ctx, translatePrompt(text, targetLanguage))
}

func (s *Service) chat(ctx context.Context, prompt string) (string, error) {
	result, err := s.llm.Chat(ctx, &providers.ChatRequest{
		Messages: []providers.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("rewrite provider call failed: %w", err)
	}
	return strings.TrimSpace(result.Content), nil
}
