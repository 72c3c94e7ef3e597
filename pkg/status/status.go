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

package status

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/zeebo/blake3"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the current state of a file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusNew                  // File didn't exist before the write
	StatusModified             // File existed and content differs
	StatusUnchanged            // File existed and content matches
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains metadata about a written file
type FileInfo struct {
	Path     string     // Path to the file
	Status   FileStatus // Status relative to what was on disk before
	Size     int64      // File size in bytes
	Checksum string     // blake3 of the content
	Previous string     // blake3 of the content that was replaced, if any
}

// 🔧 Manager reads and writes documents
type Manager struct {
	formatter FileFormatter
}

// 🏭 NewManager creates a new status manager
func NewManager(formatter FileFormatter) *Manager {
	if formatter == nil {
		formatter = NewDefaultFileFormatter()
	}
	return &Manager{
		formatter: formatter,
	}
}

// 🔍 Checksum returns the blake3 hex digest of content
func Checksum(content []byte) string {
	sum := blake3.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// ReadFile reads a whole document
func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(content)).Str("blake3", Checksum(content)).Msg("read file")
	return content, nil
}

// WriteFileAtomic writes content next to path and renames it into place
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	tempPath := path + ".tmp"

	// Write to temp file
	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// 💾 WriteOutput writes an output document and reports how it compares to
// what was there before. Unchanged content is not rewritten.
func (m *Manager) WriteOutput(ctx context.Context, path string, content []byte) (FileInfo, error) {
	logger := zerolog.Ctx(ctx)

	info := FileInfo{
		Path:     path,
		Size:     int64(len(content)),
		Checksum: Checksum(content),
	}

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		info.Previous = Checksum(existing)
		if info.Previous == info.Checksum {
			info.Status = StatusUnchanged
		} else {
			info.Status = StatusModified
		}
	case os.IsNotExist(err):
		info.Status = StatusNew
	default:
		return FileInfo{}, errors.Errorf("reading existing output: %w", err)
	}

	if info.Status != StatusUnchanged {
		if err := m.WriteFileAtomic(ctx, path, content); err != nil {
			return FileInfo{}, err
		}
	}

	logger.Info().
		Str("path", path).
		Str("status", info.Status.String()).
		Int64("bytes", info.Size).
		Str("blake3", info.Checksum).
		Msg(m.formatter.FormatFileInfo(info))

	return info, nil
}
