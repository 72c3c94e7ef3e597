package log

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/retone/pkg/record"
	"github.com/walteh/retone/pkg/rewrite"
	"github.com/walteh/retone/pkg/status"
)

// 📢 UserLogger provides user-friendly feedback while a document is processed
type UserLogger struct {
	log       zerolog.Logger // for debug/error logging
	formatter status.FileFormatter
}

var _ rewrite.ProgressReporter = (*UserLogger)(nil)

// 🎨 FileChangeType represents the type of change made to a file
type FileChangeType int

const (
	FileAdded FileChangeType = iota
	FileUpdated
	FileUnchanged
	FileSkipped
	FileError
)

// 🖼️ FileChange represents a change to an output file
type FileChange struct {
	Type        FileChangeType
	Path        string
	Description string
	Error       error
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log:       *zerolog.Ctx(ctx),
		formatter: status.NewDefaultFileFormatter(),
	}
}

// FileChangeOf maps a write result to a FileChange
func FileChangeOf(info status.FileInfo) FileChange {
	change := FileChange{Path: info.Path}
	switch info.Status {
	case status.StatusNew:
		change.Type = FileAdded
	case status.StatusModified:
		change.Type = FileUpdated
	default:
		change.Type = FileUnchanged
	}
	return change
}

// 📝 StartRecord prints the progress line for a record about to be rewritten
func (u *UserLogger) StartRecord(ctx context.Context, index, total int, rec record.Record) {
	msg := fmt.Sprintf("[%d/%d] Rewriting: %s", index, total, rec.Title)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "✍️"}).Println(msg)
	u.log.Debug().Str("id", rec.ID).Int("index", index).Int("total", total).Msg(msg)
}

// 📝 FinishRecord reports records that did not get a new body
func (u *UserLogger) FinishRecord(ctx context.Context, index, total int, outcome rewrite.Outcome) {
	switch outcome.Status {
	case rewrite.StatusFallback:
		msg := fmt.Sprintf("Kept original body of %q", outcome.Record.Title)
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⟲"}).Println(msg)
		u.log.Warn().Err(outcome.Err).Str("id", outcome.Record.ID).Msg(msg)
	case rewrite.StatusUnmatched:
		msg := fmt.Sprintf("Could not locate %q in the document", outcome.Record.Title)
		pterm.Error.WithPrefix(pterm.Prefix{Text: "✗"}).Println(msg)
		u.log.Warn().Str("id", outcome.Record.ID).Msg(msg)
	}

	if index == total {
		u.log.Debug().Msg(u.formatter.FormatProgress(index, total))
	}
}

// 📝 LogFileChange logs a file change with appropriate emoji and formatting
func (u *UserLogger) LogFileChange(change FileChange) {
	relPath := filepath.Base(change.Path)

	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case FileAdded:
		prefix = "✨"
		action = "Created"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case FileUpdated:
		prefix = "🔄"
		action = "Updated"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case FileUnchanged:
		prefix = "👍"
		action = "Unchanged"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case FileSkipped:
		prefix = "⏭️"
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	default:
		prefix = "❌"
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s", action, relPath)
	if change.Description != "" {
		msg += fmt.Sprintf(" (%s)", change.Description)
	}

	printer.Println(msg)
	if change.Error != nil {
		pterm.Error.Println(change.Error)
		u.log.Error().Err(change.Error).Str("path", change.Path).Msg(msg)
	} else {
		u.log.Info().Str("path", change.Path).Msg(msg)
	}
}

// 📊 LogStateChange logs a change to the overall run
func (u *UserLogger) LogStateChange(description string) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
		return
	}
	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
	u.log.Warn().Msg(description)
}
