package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Match(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		exclude []string
		id      string
		want    bool
	}{
		{name: "no_patterns", id: "anything", want: true},
		{name: "include_hit", include: []string{"brewing-*"}, id: "brewing-basics", want: true},
		{name: "include_miss", include: []string{"brewing-*"}, id: "water-quality", want: false},
		{name: "exclude_hit", exclude: []string{"water-*"}, id: "water-quality", want: false},
		{name: "exclude_wins", include: []string{"*"}, exclude: []string{"water-quality"}, id: "water-quality", want: false},
		{name: "alternation", include: []string{"{a,b}"}, id: "b", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.include, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Match(tt.id))
		})
	}
}

func TestFilter_NilMatchesEverything(t *testing.T) {
	var f *Filter
	assert.True(t, f.Match("x"))
}

func TestNewFilter_InvalidPattern(t *testing.T) {
	_, err := NewFilter([]string{"[a-"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id pattern")
}
