package rewrite

import (
	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Filter selects records by id using doublestar patterns
type Filter struct {
	include []string
	exclude []string
}

// NewFilter creates a Filter. An empty include list selects every id.
func NewFilter(include, exclude []string) (*Filter, error) {
	for _, p := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Errorf("invalid id pattern %q", p)
		}
	}
	return &Filter{
		include: include,
		exclude: exclude,
	}, nil
}

// Match reports whether the record with id should be rewritten
func (f *Filter) Match(id string) bool {
	if f == nil {
		return true
	}

	for _, p := range f.exclude {
		if ok, _ := doublestar.Match(p, id); ok {
			return false
		}
	}

	if len(f.include) == 0 {
		return true
	}
	for _, p := range f.include {
		if ok, _ := doublestar.Match(p, id); ok {
			return true
		}
	}
	return false
}
