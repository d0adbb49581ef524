// Package simplify drives LLM rewrites over documents larger than a
// single provider call can accept.
package simplify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/speakeasy-app/speakeasy/internal/chunk"
)

// ErrEmptyInput is returned when there is no text to rewrite.
var ErrEmptyInput = errors.New("input text is empty")

// RewriteFunc transforms a piece of text. Implementations are external
// collaborators (an LLM call, usually); the coordinator never retries them.
type RewriteFunc func(ctx context.Context, text string) (string, error)

// Coordinator splits oversized input, rewrites each chunk independently,
// and reconciles the merged result with one final rewrite pass.
type Coordinator struct {
	budget int
}

// NewCoordinator creates a coordinator with the given chunk budget.
// A non-positive budget falls back to chunk.DefaultBudget.
func NewCoordinator(budget int) *Coordinator {
	if budget <= 0 {
		budget = chunk.DefaultBudget
	}
	return &Coordinator{budget: budget}
}

// Budget returns the configured chunk budget.
func (c *Coordinator) Budget() int {
	return c.budget
}

// Rewrite runs rewrite over text in two passes. First each chunk is
// rewritten on its own, with no cross-chunk context. The rewritten chunks
// are then joined with a blank line and rewritten once more, smoothing
// whatever seams the independent calls left behind. For N chunks the
// rewrite function runs exactly N+1 times.
//
// Any rewrite failure aborts immediately with no partial output; a
// half-rewritten document would misrepresent the source.
func (c *Coordinator) Rewrite(ctx context.Context, text string, rewrite RewriteFunc) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}

	chunks := chunk.Split(text, c.budget)

	parts := make([]string, 0, len(chunks))
	for i, piece := range chunks {
		out, err := rewrite(ctx, piece)
		if err != nil {
			return "", fmt.Errorf("rewrite of chunk %d/%d failed: %w", i+1, len(chunks), err)
		}
		parts = append(parts, out)
	}

	merged := strings.Join(parts, "\n\n")

	// Consolidation pass. Chunk boundaries fall on word edges, not
	// sentence edges, so this is the only place boundary artifacts get
	// repaired.
	final, err := rewrite(ctx, merged)
	if err != nil {
		return "", fmt.Errorf("consolidation rewrite failed: %w", err)
	}

	return final, nil
}
