// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/retone/pkg/rewrite"
)

// 🎨 Display configuration
const (
	recordIndent = 4  // spaces to indent record entries
	idWidth      = 24 // Width for record id
	titleWidth   = 40 // Width for record title
	statusWidth  = 12 // Width for status text
)

// 🎯 RecordOperation represents what happened to one record, for logging
type RecordOperation struct {
	ID     string         // Record id
	Title  string         // Record title
	Status rewrite.Status // Outcome of the record
	Err    error          // Transform error, if any
}

// 📦 DocumentOperation represents one pass over a document
type DocumentOperation struct {
	Input  string // Source document
	Output string // Destination document
	Mode   string // rewrite or patch
}

// 📊 Summary holds the per-status counts of a pass
type Summary struct {
	Rewritten int
	FellBack  int
	Filtered  int
	Empty     int
	Unmatched int
	Skipped   int
}

// 🏭 SummaryOf builds a Summary from a pipeline result
func SummaryOf(r *rewrite.Result) Summary {
	return Summary{
		Rewritten: r.Rewritten(),
		FellBack:  r.FellBack(),
		Filtered:  r.Filtered(),
		Empty:     r.Count(rewrite.StatusEmpty),
		Unmatched: r.Unmatched(),
		Skipped:   r.Skipped,
	}
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	current *DocumentOperation
	records []RecordOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// 📝 formatRecordOperation formats a record operation for display
func (l *Logger) formatRecordOperation(op RecordOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch op.Status {
	case rewrite.StatusRewritten:
		symbol = '✓'
		symbolColor = color.FgGreen
	case rewrite.StatusFallback:
		symbol = '⟲'
		symbolColor = color.FgYellow
	case rewrite.StatusUnmatched:
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '-'
		symbolColor = color.FgCyan
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", recordIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		color.New(color.Bold).Sprint(fmt.Sprintf("%-*s", idWidth, truncate(op.ID, idWidth))),
		fmt.Sprintf("%-*s", titleWidth, truncate(op.Title, titleWidth)),
		color.New(symbolColor).Sprint(fmt.Sprintf("%-*s", statusWidth, op.Status.String())))
}

// 📝 LogRecord logs the outcome of one record
func (l *Logger) LogRecord(ctx context.Context, op RecordOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, op)

	fmt.Fprintln(l.console, l.formatRecordOperation(op))

	var ev *zerolog.Event
	if op.Err != nil {
		ev = l.zlog.Warn().Err(op.Err)
	} else {
		ev = l.zlog.Info()
	}
	ev.Str("id", op.ID).
		Str("title", op.Title).
		Str("status", op.Status.String()).
		Msg("record")
}

// 📝 LogOutcomes logs every outcome of a pipeline result in document order
func (l *Logger) LogOutcomes(ctx context.Context, outcomes []rewrite.Outcome) {
	for _, o := range outcomes {
		l.LogRecord(ctx, RecordOperation{
			ID:     o.Record.ID,
			Title:  o.Record.Title,
			Status: o.Status,
			Err:    o.Err,
		})
	}
}

// 📝 StartDocument starts a new document pass
func (l *Logger) StartDocument(ctx context.Context, op DocumentOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.current = &op
	l.records = nil

	fmt.Fprintf(l.console, "[%s %s]\n",
		op.Mode,
		color.New(color.FgCyan).Sprint(op.Input))

	fmt.Fprintf(l.console, "%s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Faint).Sprint("→"),
		color.New(color.FgYellow).Sprint(op.Output))

	l.zlog.Info().
		Str("mode", op.Mode).
		Str("input", op.Input).
		Str("output", op.Output).
		Msg("starting document pass")
}

// 📝 EndDocument ends the current document pass
func (l *Logger) EndDocument(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return
	}

	l.zlog.Info().
		Str("input", l.current.Input).
		Int("records", len(l.records)).
		Msg("document pass complete")

	l.current = nil
	l.records = nil
}

// 📊 Summary prints the per-status counts of a pass
func (l *Logger) Summary(ctx context.Context, s Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "\n%s %s  %s %s  %s %s  %s %s  %s %s\n",
		color.New(color.FgGreen).Sprint(s.Rewritten), "rewritten",
		color.New(color.FgYellow).Sprint(s.FellBack), "fallback",
		color.New(color.FgCyan).Sprint(s.Filtered+s.Empty), "untouched",
		color.New(color.FgRed).Sprint(s.Unmatched), "unmatched",
		color.New(color.FgRed).Sprint(s.Skipped), "skipped")

	l.zlog.Info().
		Int("rewritten", s.Rewritten).
		Int("fallback", s.FellBack).
		Int("filtered", s.Filtered).
		Int("empty", s.Empty).
		Int("unmatched", s.Unmatched).
		Int("skipped", s.Skipped).
		Msg("summary")
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("retone")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
