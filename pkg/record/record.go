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
	"fmt"
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// 📄 Record is one article found in a document
type Record struct {
	ID    string // raw id text between the quotes
	Title string // raw title text between the quotes
	Body  string // raw body text between the backticks
	Span  Span   // location of Body in the scanned source
	Start int    // offset of the opening brace
}

// 📏 Span is a half-open byte range [Start, End)
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether offset lies inside the span
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// String returns a short description of the record
func (r Record) String() string {
	return fmt.Sprintf("%s (%q, %d bytes)", r.ID, r.Title, len(r.Body))
}

// 🔧 Syntax names the fields that make up a record
type Syntax struct {
	IDField    string `json:"id_field" yaml:"id_field" hcl:"id_field,optional"`
	TitleField string `json:"title_field" yaml:"title_field" hcl:"title_field,optional"`
	BodyField  string `json:"body_field" yaml:"body_field" hcl:"body_field,optional"`
}

// DefaultSyntax matches the learning-article data modules
func DefaultSyntax() Syntax {
	return Syntax{
		IDField:    "id",
		TitleField: "title",
		BodyField:  "content",
	}
}

var fieldNameRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// WithDefaults fills empty field names from DefaultSyntax
func (s Syntax) WithDefaults() Syntax {
	def := DefaultSyntax()
	if s.IDField == "" {
		s.IDField = def.IDField
	}
	if s.TitleField == "" {
		s.TitleField = def.TitleField
	}
	if s.BodyField == "" {
		s.BodyField = def.BodyField
	}
	return s
}

// 🔍 Validate checks that every field name is a plain identifier
func (s Syntax) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"id_field", s.IDField},
		{"title_field", s.TitleField},
		{"body_field", s.BodyField},
	}
	for _, f := range fields {
		if f.value == "" {
			return errors.Errorf("%s is required", f.name)
		}
		if !fieldNameRegex.MatchString(f.value) {
			return errors.Errorf("%s %q is not an identifier", f.name, f.value)
		}
	}
	if s.IDField == s.TitleField || s.IDField == s.BodyField || s.TitleField == s.BodyField {
		return errors.Errorf("field names must be distinct: %s, %s, %s", s.IDField, s.TitleField, s.BodyField)
	}
	return nil
}
