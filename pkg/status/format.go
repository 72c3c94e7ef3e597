package status

import (
	"fmt"
)

// FileFormatter defines how file results and progress should be formatted
type FileFormatter interface {
	// FormatFileInfo formats the result of a write
	FormatFileInfo(info FileInfo) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileInfo formats the result of a write with emojis
func (f *DefaultFileFormatter) FormatFileInfo(info FileInfo) string {
	switch info.Status {
	case StatusNew:
		return fmt.Sprintf("✨ Created %s", info.Path)
	case StatusModified:
		return fmt.Sprintf("📝 Modified %s", info.Path)
	case StatusUnchanged:
		return fmt.Sprintf("👍 Unchanged %s", info.Path)
	default:
		return fmt.Sprintf("❓ Wrote %s", info.Path)
	}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}
