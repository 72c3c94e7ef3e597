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

package rewrite

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/retone/pkg/record"
	"github.com/walteh/retone/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🤖 Transformer produces a new body for an article
type Transformer interface {
	Transform(ctx context.Context, title, body string) (string, error)
}

// 📈 ProgressReporter is told about each record as the pipeline works through them
type ProgressReporter interface {
	StartRecord(ctx context.Context, index, total int, rec record.Record)
	FinishRecord(ctx context.Context, index, total int, outcome Outcome)
}

// 🔧 Options contains the collaborators of a Pipeline
type Options struct {
	Extractor   *record.Extractor
	Replacer    text.TextReplacer
	Transformer Transformer
	Filter      *Filter          // optional, nil selects every record
	Progress    ProgressReporter // optional
}

// 🏭 New creates a new pipeline with the given options
func New(opts Options) (*Pipeline, error) {
	if opts.Extractor == nil {
		return nil, errors.Errorf("extractor is required")
	}
	if opts.Replacer == nil {
		return nil, errors.Errorf("replacer is required")
	}
	if opts.Transformer == nil {
		return nil, errors.Errorf("transformer is required")
	}
	return &Pipeline{
		extractor:   opts.Extractor,
		replacer:    opts.Replacer,
		transformer: opts.Transformer,
		filter:      opts.Filter,
		progress:    opts.Progress,
	}, nil
}

// 🎮 Pipeline rewrites every record of a document
type Pipeline struct {
	extractor   *record.Extractor
	replacer    text.TextReplacer
	transformer Transformer
	filter      *Filter
	progress    ProgressReporter
}

// 🏃 Run rewrites the records of source and returns the new document.
// Per-record failures never stop the run; only a cancelled context or a
// replacer error does, and then no document is returned.
func (p *Pipeline) Run(ctx context.Context, source string) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	scan := p.extractor.Scan(source)
	total := len(scan.Records)

	logger.Info().Int("records", total).Int("skipped", scan.Skipped).Msg("found records")
	if scan.Skipped > 0 {
		logger.Warn().Int("skipped", scan.Skipped).Msg("some record bodies did not match the record syntax and will be left as is")
	}

	result := &Result{
		Source:   source,
		Output:   source,
		Outcomes: make([]Outcome, 0, total),
		Skipped:  scan.Skipped,
	}

	// records sharing an id and title are told apart by their order
	seen := make(map[recordKey]int, total)

	for i, rec := range scan.Records {
		key := recordKey{id: rec.ID, title: rec.Title}
		occurrence := seen[key]
		seen[key]++

		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("rewrite cancelled after %d of %d records: %w", i, total, err)
		}

		if p.progress != nil {
			p.progress.StartRecord(ctx, i+1, total, rec)
		}

		outcome, err := p.process(ctx, result, rec, occurrence)
		if err != nil {
			return nil, errors.Errorf("processing record %s: %w", rec.ID, err)
		}
		result.Outcomes = append(result.Outcomes, outcome)

		if p.progress != nil {
			p.progress.FinishRecord(ctx, i+1, total, outcome)
		}
	}

	logger.Info().
		Int("rewritten", result.Rewritten()).
		Int("fallback", result.FellBack()).
		Int("filtered", result.Filtered()).
		Int("unmatched", result.Unmatched()).
		Int("skipped", result.Skipped).
		Msg("rewrite complete")

	return result, nil
}

type recordKey struct {
	id    string
	title string
}

// process handles one record, updating result.Output in place
func (p *Pipeline) process(ctx context.Context, result *Result, rec record.Record, occurrence int) (Outcome, error) {
	logger := zerolog.Ctx(ctx).With().Str("id", rec.ID).Logger()

	if !p.filter.Match(rec.ID) {
		logger.Debug().Msg("record filtered out")
		return Outcome{Record: rec, Status: StatusFiltered}, nil
	}

	if strings.TrimSpace(rec.Body) == "" {
		logger.Debug().Msg("record has an empty body")
		return Outcome{Record: rec, Status: StatusEmpty}, nil
	}

	rewritten, err := p.transformer.Transform(ctx, rec.Title, strings.TrimSpace(rec.Body))
	if err != nil {
		// the original body is already in place
		logger.Error().Err(err).Str("title", rec.Title).Msg("transform failed, keeping original body")
		return Outcome{Record: rec, Status: StatusFallback, Err: err}, nil
	}

	rule := text.ReplacementRule{
		ID:         rec.ID,
		Title:      rec.Title,
		Occurrence: occurrence,
		FromText:   rec.Body,
		ToText:     rewritten,
	}

	replaced, err := p.replacer.ReplaceText(ctx, result.Output, []text.ReplacementRule{rule})
	if err != nil {
		return Outcome{}, errors.Errorf("replacing body: %w", err)
	}

	if len(replaced.Unmatched) > 0 {
		logger.Warn().Str("title", rec.Title).Msg("record not found in the document, body left unchanged")
		return Outcome{Record: rec, Status: StatusUnmatched}, nil
	}

	result.Output = replaced.ModifiedContent
	logger.Debug().Int("old_bytes", len(rec.Body)).Int("new_bytes", len(rewritten)).Msg("record rewritten")
	return Outcome{Record: rec, Status: StatusRewritten}, nil
}
