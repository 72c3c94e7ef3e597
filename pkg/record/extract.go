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

package record

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

const (
	// a // comment running to the end of its line, plus the whitespace after it
	commentPattern = `(?://[^\n]*\n\s*)*`

	// template literal body: no bare backtick, no ${ interpolation, escapes kept as pairs
	bodyPattern = "((?:[^`\\\\$]|\\\\.|\\$+(?:[^{`\\\\$]|\\\\.))*\\$*)"
)

// quotedPattern captures a single or double quoted string into two named groups
func quotedPattern(name string) string {
	return `(?:'(?P<` + name + `_sq>(?:[^'\\\n]|\\.)*)'|"(?P<` + name + `_dq>(?:[^"\\\n]|\\.)*)")`
}

// 📦 ScanResult holds the records found in a document
type ScanResult struct {
	Records []Record
	Skipped int // body openers that were not part of a complete record
}

// 🔍 Extractor finds records written in a given Syntax
type Extractor struct {
	syntax  Syntax
	record  *regexp.Regexp
	opener  *regexp.Regexp
	idSQ    int
	idDQ    int
	titleSQ int
	titleDQ int
	bodyIdx int
}

// 🏭 NewExtractor compiles the record pattern for syntax
func NewExtractor(syntax Syntax) (*Extractor, error) {
	if err := syntax.Validate(); err != nil {
		return nil, errors.Errorf("invalid syntax: %w", err)
	}

	id := regexp.QuoteMeta(syntax.IDField)
	title := regexp.QuoteMeta(syntax.TitleField)
	body := regexp.QuoteMeta(syntax.BodyField)

	pattern := `(?s)\{\s*` + commentPattern +
		`\b` + id + `\s*:\s*` + quotedPattern("id") + `\s*,\s*` + commentPattern +
		`\b` + title + `\s*:\s*` + quotedPattern("title") + `\s*,\s*` + commentPattern +
		`\b` + body + "\\s*:\\s*`" + `(?P<body>` + bodyPattern + ")`"

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Errorf("compiling record pattern: %w", err)
	}

	opener, err := regexp.Compile(`\b` + body + "\\s*:\\s*`")
	if err != nil {
		return nil, errors.Errorf("compiling body opener pattern: %w", err)
	}

	return &Extractor{
		syntax:  syntax,
		record:  re,
		opener:  opener,
		idSQ:    re.SubexpIndex("id_sq"),
		idDQ:    re.SubexpIndex("id_dq"),
		titleSQ: re.SubexpIndex("title_sq"),
		titleDQ: re.SubexpIndex("title_dq"),
		bodyIdx: re.SubexpIndex("body"),
	}, nil
}

// Syntax returns the syntax the extractor was built for
func (e *Extractor) Syntax() Syntax {
	return e.syntax
}

// Extract returns every complete record in document order
func (e *Extractor) Extract(source string) []Record {
	return e.Scan(source).Records
}

// Scan returns every complete record in document order, plus the number of
// body openers that did not belong to a complete record
func (e *Extractor) Scan(source string) *ScanResult {
	matches := e.record.FindAllStringSubmatchIndex(source, -1)

	result := &ScanResult{
		Records: make([]Record, 0, len(matches)),
	}

	covered := make([]Span, 0, len(matches))
	for _, m := range matches {
		bodySpan := Span{Start: m[2*e.bodyIdx], End: m[2*e.bodyIdx+1]}
		result.Records = append(result.Records, Record{
			ID:    pick(source, m, e.idSQ, e.idDQ),
			Title: pick(source, m, e.titleSQ, e.titleDQ),
			Body:  source[bodySpan.Start:bodySpan.End],
			Span:  bodySpan,
			Start: m[0],
		})
		covered = append(covered, Span{Start: m[0], End: m[1]})
	}

	// any opener outside a full match was skipped
	j := 0
	for _, o := range e.opener.FindAllStringIndex(source, -1) {
		for j < len(covered) && covered[j].End <= o[0] {
			j++
		}
		if j < len(covered) && covered[j].Contains(o[0]) {
			continue
		}
		result.Skipped++
	}

	return result
}

// BodyStarts returns the offset just past every body opener in source, in
// document order, whatever whitespace surrounds the colon
func (e *Extractor) BodyStarts(source string) []int {
	openers := e.opener.FindAllStringIndex(source, -1)
	starts := make([]int, 0, len(openers))
	for _, o := range openers {
		starts = append(starts, o[1])
	}
	return starts
}

// pick returns whichever of the two alternative groups participated in the match
func pick(source string, m []int, a, b int) string {
	if m[2*a] >= 0 {
		return source[m[2*a]:m[2*a+1]]
	}
	if m[2*b] >= 0 {
		return source[m[2*b]:m[2*b+1]]
	}
	return ""
}
