package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/crossdexgo/internal/config"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "main.hcl", `
viewer {
  attach = "deferred"
}

page "space" {}

page "policy" {
  enabled = false
}
`)

	cfgModel, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, config.AttachDeferred, cfgModel.Viewer.Attach)
	require.Len(t, cfgModel.Pages, 2)
	assert.Equal(t, "space", cfgModel.Pages[0].Name)
	assert.True(t, cfgModel.Pages[0].Enabled, "enabled should default to true")
	assert.Equal(t, "policy", cfgModel.Pages[1].Name)
	assert.False(t, cfgModel.Pages[1].Enabled)
}

func TestLoadManifestViewerDefaults(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "main.hcl", `
page "space" {}
`)

	cfgModel, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, config.AttachImmediate, cfgModel.Viewer.Attach, "attach should default to immediate when the viewer block is omitted")
}

func TestLoadManifestFromDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "viewer.hcl"), []byte(`
viewer {
  attach = "immediate"
}
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pages.hcl"), []byte(`
page "space" {}
page "qfunction" {}
`), 0o644))

	cfgModel, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, config.AttachImmediate, cfgModel.Viewer.Attach)
	assert.Len(t, cfgModel.Pages, 2)
}

func TestLoadRejectsInvalidSyntax(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "main.hcl", `
page "space" {
  enabled =
`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadRejectsWrongEnabledType(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "main.hcl", `
page "space" {
  enabled = "nope"
}
`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 'space'")
}

func TestLoadRejectsMissingPath(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
}
