package text

import (
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// BodyReplacer locates a record by the exact text of its original body.
//
// Only the first occurrence of the fenced body is replaced. Two records with
// byte-identical bodies cannot be told apart: the second one keeps its old body.
type BodyReplacer struct {
	locator BodyLocator
	escaper Escaper
}

// NewBodyReplacer creates a BodyReplacer for bodies whose fences are found by
// locator and that end with a backtick
func NewBodyReplacer(locator BodyLocator, escaper Escaper) *BodyReplacer {
	return &BodyReplacer{
		locator: locator,
		escaper: escaper,
	}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *BodyReplacer) ReplaceText(ctx context.Context, content string, rules []ReplacementRule) (*ReplacementResult, error) {
	if err := r.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	result := newResult(content)

	current := content
	for _, rule := range rules {
		next, ok := r.Reinject(current, rule.FromText, rule.ToText)
		if !ok {
			result.Unmatched = append(result.Unmatched, rule)
			continue
		}
		result.ReplacementCount++
		current = next
	}

	result.ModifiedContent = current
	result.WasModified = current != content
	return result, nil
}

// Reinject replaces the first fenced occurrence of originalBody with the escaped
// replacementBody. When nothing matches, source is returned unchanged and ok is false.
func (r *BodyReplacer) Reinject(source, originalBody, replacementBody string) (string, bool) {
	fenced := originalBody + "`"

	for _, start := range r.locator.BodyStarts(source) {
		if !strings.HasPrefix(source[start:], fenced) {
			continue
		}
		end := start + len(originalBody)
		return splice(source, start, end, r.escaper.Escape(replacementBody)), true
	}
	return source, false
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *BodyReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
	}
	return nil
}
