package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 🧪 TestDefaultFileFormatter tests the default file formatter implementation
func TestDefaultFileFormatter(t *testing.T) {
	tests := []struct {
		name string
		info FileInfo
		want string
	}{
		{
			name: "new_file",
			info: FileInfo{Path: "out.ts", Status: StatusNew},
			want: "✨ Created out.ts",
		},
		{
			name: "modified_file",
			info: FileInfo{Path: "out.ts", Status: StatusModified},
			want: "📝 Modified out.ts",
		},
		{
			name: "unchanged_file",
			info: FileInfo{Path: "out.ts", Status: StatusUnchanged},
			want: "👍 Unchanged out.ts",
		},
		{
			name: "unknown_status",
			info: FileInfo{Path: "out.ts"},
			want: "❓ Wrote out.ts",
		},
	}

	f := NewDefaultFileFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatFileInfo(tt.info))
		})
	}
}

func TestDefaultFileFormatter_FormatProgress(t *testing.T) {
	f := NewDefaultFileFormatter()

	assert.Equal(t, "⏳ Progress: 1/4 (25%)", f.FormatProgress(1, 4))
	assert.Equal(t, "✅ Progress: 4/4 (100%)", f.FormatProgress(4, 4))
	assert.Equal(t, "✅ Progress: 0/0 (0%)", f.FormatProgress(0, 0))
}
