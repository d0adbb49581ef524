// Package chunk splits long text into word-aligned pieces that fit an
// external service's per-call input budget.
package chunk

import "strings"

// DefaultBudget is the default soft character ceiling per chunk.
const DefaultBudget = 5000

// Split breaks text into word-aligned chunks. Words are never split; the
// running length counts each word plus one separator character. The budget
// is a soft ceiling: the close check runs after a word is added, so a chunk
// may overshoot by up to one word, and a single oversized word never
// produces an empty chunk. The trailing partial chunk is always emitted.
// Empty or whitespace-only input yields no chunks.
//
// Joining the chunks back together (separated by whitespace) reproduces the
// input's word sequence exactly; only whitespace is normalized.
func Split(text string, budget int) []string {
	if budget <= 0 {
		budget = DefaultBudget
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	var current []string
	currentLen := 0

	for _, w := range words {
		current = append(current, w)
		currentLen += len(w) + 1

		if currentLen > budget {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
			currentLen = 0
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}

// Count returns the number of chunks Split would produce without building
// them. Callers use it to estimate rewrite-call cost up front.
func Count(text string, budget int) int {
	return len(Split(text, budget))
}
