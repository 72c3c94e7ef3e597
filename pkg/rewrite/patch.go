package rewrite

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/retone/pkg/config"
	"github.com/walteh/retone/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ✍️ Patch writes hand-authored bodies into document without calling a Transformer.
//
// It is the follow-up for records whose transform failed: each override is
// located by id and title, never by body text.
func Patch(ctx context.Context, replacer text.TextReplacer, document string, overrides []config.Override) (*text.ReplacementResult, error) {
	logger := zerolog.Ctx(ctx)

	rules := make([]text.ReplacementRule, 0, len(overrides))
	for _, o := range overrides {
		body, err := o.LoadBody()
		if err != nil {
			return nil, errors.Errorf("loading override: %w", err)
		}
		rules = append(rules, text.ReplacementRule{
			ID:     o.ID,
			Title:  o.Title,
			ToText: body,
		})
	}

	result, err := replacer.ReplaceText(ctx, document, rules)
	if err != nil {
		return nil, errors.Errorf("applying overrides: %w", err)
	}

	for _, r := range result.Unmatched {
		logger.Warn().Str("id", r.ID).Str("title", r.Title).Msg("override did not match any record")
	}
	logger.Info().
		Int("applied", result.ReplacementCount).
		Int("unmatched", len(result.Unmatched)).
		Msg("overrides applied")

	return result, nil
}
