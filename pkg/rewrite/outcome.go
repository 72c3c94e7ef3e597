package rewrite

import (
	"github.com/walteh/retone/pkg/record"
)

// 📊 Status is what happened to one record
type Status int

const (
	StatusRewritten Status = iota // body replaced with the transformed text
	StatusFallback                // transform failed, original body kept
	StatusFiltered                // excluded by the id filter
	StatusEmpty                   // empty body, nothing to rewrite
	StatusUnmatched               // replacer could not locate the record
)

// String returns a string representation of Status
func (s Status) String() string {
	switch s {
	case StatusRewritten:
		return "rewritten"
	case StatusFallback:
		return "fallback"
	case StatusFiltered:
		return "filtered"
	case StatusEmpty:
		return "empty"
	case StatusUnmatched:
		return "unmatched"
	default:
		return "unknown"
	}
}

// Outcome records what happened to one record
type Outcome struct {
	Record record.Record
	Status Status
	Err    error // transform error for StatusFallback
}

// 📦 Result is the output of one pipeline run
type Result struct {
	Source   string
	Output   string
	Outcomes []Outcome
	Skipped  int // malformed spans the extractor passed over
}

// Count returns how many outcomes have status s
func (r *Result) Count(s Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

func (r *Result) Rewritten() int { return r.Count(StatusRewritten) }
func (r *Result) FellBack() int  { return r.Count(StatusFallback) }
func (r *Result) Filtered() int  { return r.Count(StatusFiltered) }
func (r *Result) Unmatched() int { return r.Count(StatusUnmatched) }

// Changed reports whether the output differs from the source
func (r *Result) Changed() bool {
	return r.Output != r.Source
}

// Failed returns the records whose transform failed, for a later patch pass
func (r *Result) Failed() []record.Record {
	var out []record.Record
	for _, o := range r.Outcomes {
		if o.Status == StatusFallback {
			out = append(out, o.Record)
		}
	}
	return out
}
