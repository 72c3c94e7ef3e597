package text

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/retone/pkg/record"
	"gitlab.com/tozd/go/errors"
)

// KeyedReplacer locates a record by its id (and title, when the rule has one)
// and replaces the body at that record's position. When several records share
// the key, the rule's Occurrence selects which one.
//
// Body text is never used to find the record, so bodies that repeat or that
// contain fence characters are handled like any other.
type KeyedReplacer struct {
	extractor *record.Extractor
	escaper   Escaper
}

// NewKeyedReplacer creates a KeyedReplacer
func NewKeyedReplacer(extractor *record.Extractor, escaper Escaper) *KeyedReplacer {
	return &KeyedReplacer{
		extractor: extractor,
		escaper:   escaper,
	}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *KeyedReplacer) ReplaceText(ctx context.Context, content string, rules []ReplacementRule) (*ReplacementResult, error) {
	logger := zerolog.Ctx(ctx)

	if err := r.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	result := newResult(content)

	current := content
	for _, rule := range rules {
		// positions move after every splice, so each rule scans the current text
		matches := r.find(current, rule)
		if rule.Occurrence >= len(matches) {
			result.Unmatched = append(result.Unmatched, rule)
			continue
		}
		if len(matches) > 1 {
			logger.Debug().
				Str("id", rule.ID).
				Int("matches", len(matches)).
				Int("occurrence", rule.Occurrence).
				Msg("id appears more than once")
		}
		rec := matches[rule.Occurrence]

		current = splice(current, rec.Span.Start, rec.Span.End, r.escaper.Escape(rule.ToText))
		result.ReplacementCount++
	}

	result.ModifiedContent = current
	result.WasModified = current != content
	return result, nil
}

// find returns every record matching rule's id and title, in document order
func (r *KeyedReplacer) find(content string, rule ReplacementRule) []record.Record {
	var matches []record.Record
	for _, rec := range r.extractor.Extract(content) {
		if rec.ID != rule.ID {
			continue
		}
		if rule.Title != "" && rec.Title != rule.Title {
			continue
		}
		matches = append(matches, rec)
	}
	return matches
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *KeyedReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.ID == "" {
			return errors.Errorf("rule %d: id is required", i)
		}
		if rule.Occurrence < 0 {
			return errors.Errorf("rule %d: occurrence must not be negative", i)
		}
	}
	return nil
}
