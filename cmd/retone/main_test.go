package main

import (
	"bytes"
	"context"
	"encoding/json"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/retone/cmd/retone/opts"
)

func TestRootCmd_Wiring(t *testing.T) {
	o := &opts.RootOpts{}
	cmd := newRootCmd(o)

	names := []string{}
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"rewrite", "patch", "extract", "version"}, names)

	require.NoError(t, cmd.ParseFlags([]string{"-c", "custom.yaml", "--debug"}))
	assert.Equal(t, "custom.yaml", o.ConfigFile)
	assert.True(t, o.Debug)
}

func TestRootCmd_DefaultConfig(t *testing.T) {
	o := &opts.RootOpts{}
	newRootCmd(o)
	assert.Equal(t, ".retone.hcl", o.ConfigFile)
}

func TestVersionCmd(t *testing.T) {
	o := &opts.RootOpts{}
	cmd := newRootCmd(o)

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version", "--json"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	var info VersionInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.NotEmpty(t, info.Version)

	assert.Contains(t, info.String(), "🚀 retone version info:")
}

func TestSetupLogging(t *testing.T) {
	ctx := setupLogging(context.Background(), true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.Ctx(ctx).GetLevel())

	ctx = setupLogging(context.Background(), false)
	assert.Equal(t, zerolog.WarnLevel, zerolog.Ctx(ctx).GetLevel())
}
