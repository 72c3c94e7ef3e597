package text

import (
	"context"
)

// ReplacementRule replaces the body of one record
type ReplacementRule struct {
	// ID and Title locate the record structurally (used by KeyedReplacer)
	ID    string
	Title string

	// Occurrence picks among records sharing ID and Title, 0 being the first
	Occurrence int

	// FromText is the exact original body (used by BodyReplacer)
	FromText string

	// ToText is the new, unescaped body
	ToText string
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if the content changed
	WasModified bool

	// ReplacementCount is the number of rules that found their record
	ReplacementCount int

	// Unmatched holds the rules that found nothing; the content is untouched for them
	Unmatched []ReplacementRule

	// OriginalContent is the content before replacements
	OriginalContent string

	// ModifiedContent is the content after replacements
	ModifiedContent string
}

// TextReplacer defines the interface for body replacement operations
type TextReplacer interface {
	// ReplaceText applies the rules one after another, each to the output of the
	// previous one. A rule that matches nothing is a no-op, not an error.
	ReplaceText(ctx context.Context, content string, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules carry what this replacer keys on
	ValidateRules(rules []ReplacementRule) error
}

// BodyLocator reports the offsets where fenced bodies start in a document
type BodyLocator interface {
	BodyStarts(source string) []int
}

// Escaper makes a body safe to place back inside its fence
type Escaper interface {
	Escape(body string) string
}

// newResult starts a result for content
func newResult(content string) *ReplacementResult {
	return &ReplacementResult{
		OriginalContent: content,
		ModifiedContent: content,
	}
}

// splice replaces content[start:end] with replacement
func splice(content string, start, end int, replacement string) string {
	return content[:start] + replacement + content[end:]
}
