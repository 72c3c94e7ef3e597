package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverrides(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		content     string
		errContains string
		wantIDs     []string
	}{
		{
			name:     "yaml",
			filename: "overrides.yaml",
			content: `
overrides:
  - id: setting-up-station
    title: Setting Up Your Station
    body_file: station.md
  - id: buying-beans
    title: Buying & Storing Beans
    body: "# Buying"
`,
			wantIDs: []string{"setting-up-station", "buying-beans"},
		},
		{
			name:     "hcl",
			filename: "overrides.hcl",
			content: `
override "setting-up-station" {
  title     = "Setting Up Your Station"
  body_file = "station.md"
}
`,
			wantIDs: []string{"setting-up-station"},
		},
		{
			name:        "missing_id",
			filename:    "overrides.yaml",
			content:     "overrides:\n  - body: x\n",
			errContains: "id is required",
		},
		{
			name:        "both_bodies",
			filename:    "overrides.json",
			content:     `{"overrides": [{"id": "a", "body": "x", "body_file": "y.md"}]}`,
			errContains: "exactly one of body and body_file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeFile(t, dir, tt.filename, tt.content)

			overrides, err := LoadOverrides(setupTestContext(t), path)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)

			ids := []string{}
			for _, o := range overrides {
				ids = append(ids, o.ID)
				if o.BodyFile != "" {
					assert.Equal(t, filepath.Join(dir, "station.md"), o.BodyFile, "body_file should resolve against the overrides file")
				}
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestOverride_LoadBody(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "station.md", "# Station\n")

	body, err := Override{ID: "a", BodyFile: path}.LoadBody()
	require.NoError(t, err)
	assert.Equal(t, "# Station\n", body)

	body, err = Override{ID: "b", Body: "inline"}.LoadBody()
	require.NoError(t, err)
	assert.Equal(t, "inline", body)

	_, err = Override{ID: "c", BodyFile: filepath.Join(dir, "missing.md")}.LoadBody()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading body file for c")
}
