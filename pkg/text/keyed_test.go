package text

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/retone/pkg/record"
)

func newKeyedReplacer(t *testing.T) *KeyedReplacer {
	t.Helper()
	extractor, err := record.NewExtractor(record.DefaultSyntax())
	require.NoError(t, err, "creating extractor")
	return NewKeyedReplacer(extractor, NewTemplateLiteralEscaper())
}

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.TestWriter{T: t}).With().Timestamp().Logger()
	return logger.WithContext(context.Background())
}

func TestKeyedReplacer_ReplaceText(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		rules         []ReplacementRule
		want          string
		wantCount     int
		wantUnmatched int
		wantError     string
	}{
		{
			name:    "replace_by_id",
			content: twoRecordDoc,
			rules: []ReplacementRule{
				{ID: "b", ToText: "Earth"},
			},
			want: "[\n" +
				"  { id: 'a', title: 'A', content: `Hello`, readTime: 1 },\n" +
				"  { id: 'b', title: 'B', content: `Earth`, readTime: 2 },\n" +
				"]\n",
			wantCount: 1,
		},
		{
			name:    "replace_by_id_and_title",
			content: twoRecordDoc,
			rules: []ReplacementRule{
				{ID: "a", Title: "A", ToText: "Hi"},
			},
			want: "[\n" +
				"  { id: 'a', title: 'A', content: `Hi`, readTime: 1 },\n" +
				"  { id: 'b', title: 'B', content: `World`, readTime: 2 },\n" +
				"]\n",
			wantCount: 1,
		},
		{
			name:    "title_mismatch_is_unmatched",
			content: twoRecordDoc,
			rules: []ReplacementRule{
				{ID: "a", Title: "Other", ToText: "Hi"},
			},
			want:          twoRecordDoc,
			wantUnmatched: 1,
		},
		{
			name:    "unknown_id_is_unmatched",
			content: twoRecordDoc,
			rules: []ReplacementRule{
				{ID: "zzz", ToText: "Hi"},
			},
			want:          twoRecordDoc,
			wantUnmatched: 1,
		},
		{
			name:    "identical_bodies_are_independent",
			content: "{ id: 'a', title: 'A', content: `Same` }, { id: 'b', title: 'B', content: `Same` }",
			rules: []ReplacementRule{
				{ID: "b", ToText: "Second"},
				{ID: "a", ToText: "First"},
			},
			want:      "{ id: 'a', title: 'A', content: `First` }, { id: 'b', title: 'B', content: `Second` }",
			wantCount: 2,
		},
		{
			name:    "later_rules_see_earlier_splices",
			content: twoRecordDoc,
			rules: []ReplacementRule{
				{ID: "a", ToText: "A body that is a lot longer than before"},
				{ID: "b", ToText: "B"},
			},
			want: "[\n" +
				"  { id: 'a', title: 'A', content: `A body that is a lot longer than before`, readTime: 1 },\n" +
				"  { id: 'b', title: 'B', content: `B`, readTime: 2 },\n" +
				"]\n",
			wantCount: 2,
		},
		{
			name:    "body_with_fence_characters",
			content: twoRecordDoc,
			rules: []ReplacementRule{
				{ID: "a", ToText: "```sh\necho ${HOME}\n```"},
			},
			want: "[\n" +
				"  { id: 'a', title: 'A', content: `\\`\\`\\`sh\necho \\${HOME}\n\\`\\`\\``, readTime: 1 },\n" +
				"  { id: 'b', title: 'B', content: `World`, readTime: 2 },\n" +
				"]\n",
			wantCount: 1,
		},
		{
			name:    "duplicate_ids_replace_first",
			content: "{ id: 'a', title: 'A', content: `one` }, { id: 'a', title: 'A', content: `two` }",
			rules: []ReplacementRule{
				{ID: "a", ToText: "new"},
			},
			want:      "{ id: 'a', title: 'A', content: `new` }, { id: 'a', title: 'A', content: `two` }",
			wantCount: 1,
		},
		{
			name:    "duplicate_ids_by_occurrence",
			content: "{ id: 'a', title: 'A', content: `one` }, { id: 'a', title: 'A', content: `two` }",
			rules: []ReplacementRule{
				{ID: "a", ToText: "NEW-one"},
				{ID: "a", Occurrence: 1, ToText: "NEW-two"},
			},
			want:      "{ id: 'a', title: 'A', content: `NEW-one` }, { id: 'a', title: 'A', content: `NEW-two` }",
			wantCount: 2,
		},
		{
			name:    "occurrence_out_of_range_is_unmatched",
			content: twoRecordDoc,
			rules: []ReplacementRule{
				{ID: "a", Occurrence: 1, ToText: "Hi"},
			},
			want:          twoRecordDoc,
			wantUnmatched: 1,
		},
		{
			name:    "negative_occurrence",
			content: twoRecordDoc,
			rules: []ReplacementRule{
				{ID: "a", Occurrence: -1, ToText: "Hi"},
			},
			wantError: "occurrence must not be negative",
		},
		{
			name:    "missing_id",
			content: twoRecordDoc,
			rules: []ReplacementRule{
				{Title: "A", ToText: "Hi"},
			},
			wantError: "id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacer := newKeyedReplacer(t)
			result, err := replacer.ReplaceText(testContext(t), tt.content, tt.rules)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.ModifiedContent)
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Len(t, result.Unmatched, tt.wantUnmatched)
			assert.Equal(t, tt.want != tt.content, result.WasModified)
		})
	}
}

func TestKeyedReplacer_ResultStillExtracts(t *testing.T) {
	replacer := newKeyedReplacer(t)

	result, err := replacer.ReplaceText(testContext(t), twoRecordDoc, []ReplacementRule{
		{ID: "a", ToText: "Use `go test` and ${vars}"},
	})
	require.NoError(t, err)

	extractor, err := record.NewExtractor(record.DefaultSyntax())
	require.NoError(t, err)

	records := extractor.Extract(result.ModifiedContent)
	require.Len(t, records, 2)
	assert.Equal(t, "Use \\`go test\\` and \\${vars}", records[0].Body)
	assert.Equal(t, "World", records[1].Body)
}
