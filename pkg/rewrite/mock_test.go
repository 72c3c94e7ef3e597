package rewrite

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/walteh/retone/pkg/record"
	"github.com/walteh/retone/pkg/text"
)

// mockTransformer is a testify mock of Transformer
type mockTransformer struct {
	mock.Mock
}

func (m *mockTransformer) Transform(ctx context.Context, title, body string) (string, error) {
	args := m.Called(ctx, title, body)
	return args.String(0), args.Error(1)
}

// recordingProgress keeps every progress callback
type recordingProgress struct {
	started  []string
	finished []Outcome
}

func (r *recordingProgress) StartRecord(ctx context.Context, index, total int, rec record.Record) {
	r.started = append(r.started, rec.ID)
}

func (r *recordingProgress) FinishRecord(ctx context.Context, index, total int, outcome Outcome) {
	r.finished = append(r.finished, outcome)
}

// unmatchingReplacer never finds the record it is asked to replace
type unmatchingReplacer struct{}

func (unmatchingReplacer) ReplaceText(ctx context.Context, content string, rules []text.ReplacementRule) (*text.ReplacementResult, error) {
	return &text.ReplacementResult{
		OriginalContent: content,
		ModifiedContent: content,
		Unmatched:       rules,
	}, nil
}

func (unmatchingReplacer) ValidateRules(rules []text.ReplacementRule) error {
	return nil
}
