package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ✍️ Override is a hand-written body for one record
type Override struct {
	ID       string `json:"id" yaml:"id" hcl:"id,label"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty" hcl:"title,optional"`
	Body     string `json:"body,omitempty" yaml:"body,omitempty" hcl:"body,optional"`
	BodyFile string `json:"body_file,omitempty" yaml:"body_file,omitempty" hcl:"body_file,optional"`
}

// overrideFile is the shape of a standalone overrides file
type overrideFile struct {
	Overrides []Override `json:"overrides" yaml:"overrides" hcl:"override,block"`
}

// 📖 LoadBody returns the override body, reading BodyFile when set
func (o Override) LoadBody() (string, error) {
	if o.BodyFile == "" {
		return o.Body, nil
	}
	data, err := os.ReadFile(o.BodyFile)
	if err != nil {
		return "", errors.Errorf("reading body file for %s: %w", o.ID, err)
	}
	return string(data), nil
}

// 🎯 LoadOverrides loads a file holding only override entries
func LoadOverrides(ctx context.Context, path string) ([]Override, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading overrides")

	var file overrideFile
	if err := decodeFile(ctx, path, &file); err != nil {
		return nil, err
	}

	if err := validateOverrides(file.Overrides); err != nil {
		return nil, errors.Errorf("validating overrides: %w", err)
	}

	dir := filepath.Dir(path)
	for i := range file.Overrides {
		if f := file.Overrides[i].BodyFile; f != "" && !filepath.IsAbs(f) {
			file.Overrides[i].BodyFile = filepath.Join(dir, f)
		}
	}

	return file.Overrides, nil
}

func validateOverrides(overrides []Override) error {
	seen := make(map[string]bool, len(overrides))
	for i, o := range overrides {
		if o.ID == "" {
			return errors.Errorf("override %d: id is required", i)
		}
		if (o.Body == "") == (o.BodyFile == "") {
			return errors.Errorf("override %s: exactly one of body and body_file is required", o.ID)
		}
		if seen[o.ID] {
			return errors.Errorf("override %s: duplicate id", o.ID)
		}
		seen[o.ID] = true
	}
	return nil
}
