package text

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/retone/pkg/record"
)

const twoRecordDoc = "[\n" +
	"  { id: 'a', title: 'A', content: `Hello`, readTime: 1 },\n" +
	"  { id: 'b', title: 'B', content: `World`, readTime: 2 },\n" +
	"]\n"

func newBodyReplacer(t *testing.T) *BodyReplacer {
	t.Helper()
	extractor, err := record.NewExtractor(record.DefaultSyntax())
	require.NoError(t, err, "creating extractor")
	return NewBodyReplacer(extractor, NewTemplateLiteralEscaper())
}

func TestBodyReplacer_ReplaceText(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		rules         []ReplacementRule
		want          string
		wantCount     int
		wantUnmatched int
		wantModified  bool
		wantError     string
	}{
		{
			name:    "simple_replacement",
			content: twoRecordDoc,
			rules: []ReplacementRule{
				{FromText: "Hello", ToText: "Hi there"},
			},
			want: "[\n" +
				"  { id: 'a', title: 'A', content: `Hi there`, readTime: 1 },\n" +
				"  { id: 'b', title: 'B', content: `World`, readTime: 2 },\n" +
				"]\n",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "same_body_round_trip",
			content: twoRecordDoc,
			rules: []ReplacementRule{
				{FromText: "Hello", ToText: "Hello"},
				{FromText: "World", ToText: "World"},
			},
			want:         twoRecordDoc,
			wantCount:    2,
			wantModified: false,
		},
		{
			name:    "no_match",
			content: twoRecordDoc,
			rules: []ReplacementRule{
				{FromText: "Goodbye", ToText: "Hi"},
			},
			want:          twoRecordDoc,
			wantUnmatched: 1,
			wantModified:  false,
		},
		{
			name:    "body_outside_fence_is_ignored",
			content: "Hello { id: 'a', title: 'A', content: `Hello` }",
			rules: []ReplacementRule{
				{FromText: "Hello", ToText: "Hi"},
			},
			want:         "Hello { id: 'a', title: 'A', content: `Hi` }",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "duplicate_bodies_replace_first_only",
			content: "{ id: 'a', title: 'A', content: `Same` }, { id: 'b', title: 'B', content: `Same` }",
			rules: []ReplacementRule{
				{FromText: "Same", ToText: "New"},
			},
			want:         "{ id: 'a', title: 'A', content: `New` }, { id: 'b', title: 'B', content: `Same` }",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "replacement_is_escaped",
			content: twoRecordDoc,
			rules: []ReplacementRule{
				{FromText: "World", ToText: "Use `tabs`"},
			},
			want: "[\n" +
				"  { id: 'a', title: 'A', content: `Hello`, readTime: 1 },\n" +
				"  { id: 'b', title: 'B', content: `Use \\`tabs\\``, readTime: 2 },\n" +
				"]\n",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "rules_fold_in_order",
			content: twoRecordDoc,
			rules: []ReplacementRule{
				{FromText: "Hello", ToText: "World"},
				{FromText: "World", ToText: "Earth"},
			},
			want: "[\n" +
				"  { id: 'a', title: 'A', content: `Earth`, readTime: 1 },\n" +
				"  { id: 'b', title: 'B', content: `World`, readTime: 2 },\n" +
				"]\n",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "missing_from_text",
			content: twoRecordDoc,
			rules: []ReplacementRule{
				{ToText: "x"},
			},
			wantError: "from_text is required",
		},
		{
			name:    "no_space_after_colon",
			content: "{ id: 'a', title: 'A', content:`Hello` }",
			rules: []ReplacementRule{
				{FromText: "Hello", ToText: "Hi"},
			},
			want:         "{ id: 'a', title: 'A', content:`Hi` }",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "spaces_around_colon",
			content: "{ id: 'a', title: 'A', content  :  `Hello` }",
			rules: []ReplacementRule{
				{FromText: "Hello", ToText: "Hi"},
			},
			want:         "{ id: 'a', title: 'A', content  :  `Hi` }",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "empty_rules",
			content:      twoRecordDoc,
			rules:        []ReplacementRule{},
			want:         twoRecordDoc,
			wantModified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacer := newBodyReplacer(t)
			result, err := replacer.ReplaceText(context.Background(), tt.content, tt.rules)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.content, result.OriginalContent)
			assert.Equal(t, tt.want, result.ModifiedContent)
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Len(t, result.Unmatched, tt.wantUnmatched)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestBodyReplacer_Reinject(t *testing.T) {
	replacer := newBodyReplacer(t)

	t.Run("round_trip", func(t *testing.T) {
		out, ok := replacer.Reinject(twoRecordDoc, "World", "World")
		assert.True(t, ok)
		assert.Equal(t, twoRecordDoc, out)
	})

	t.Run("missing_body_is_noop", func(t *testing.T) {
		out, ok := replacer.Reinject(twoRecordDoc, "Nope", "X")
		assert.False(t, ok)
		assert.Equal(t, twoRecordDoc, out)
	})

	t.Run("outside_span_untouched", func(t *testing.T) {
		out, ok := replacer.Reinject(twoRecordDoc, "Hello", "A much longer greeting")
		require.True(t, ok)

		prefix := "[\n  { id: 'a', title: 'A', content: `"
		suffix := "`, readTime: 1 },\n  { id: 'b', title: 'B', content: `World`, readTime: 2 },\n]\n"
		assert.Equal(t, prefix+"A much longer greeting"+suffix, out)
		assert.Equal(t, len(twoRecordDoc)-len("Hello")+len("A much longer greeting"), len(out))
	})
}
