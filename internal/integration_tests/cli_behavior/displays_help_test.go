package cli_behavior

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/crossdexgo/internal/cli"
)

func TestNoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := cli.Parse([]string{}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "MANIFEST_PATH")
}

func TestManifestFlagShorthand(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := cli.Parse([]string{"-m", "docs/manifest.hcl"}, out)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	require.NotNil(t, cfg)
	assert.Equal(t, "docs/manifest.hcl", cfg.ManifestPath)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestPositionalManifestPath(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := cli.Parse([]string{"docs"}, out)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	require.NotNil(t, cfg)
	assert.Equal(t, "docs", cfg.ManifestPath)
}

func TestInvalidLogLevelIsRejected(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, _, err := cli.Parse([]string{"-log-level", "loud", "docs"}, out)

	require.Error(t, err)
	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "invalid log-level")
}

func TestInvalidLogFormatIsRejected(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, _, err := cli.Parse([]string{"-log-format", "xml", "docs"}, out)

	require.Error(t, err)
	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "invalid log-format")
}
