package handoff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/crossdexgo/internal/testutil"
)

func TestImmediateAttachDeliversSynchronously(t *testing.T) {
	t.Parallel()

	manifest := `
viewer {
  attach = "immediate"
}

page "space" {}
page "policy" {}
`

	res := testutil.RunHandoffTest(t, map[string]string{"main.hcl": manifest})
	require.NoError(t, res.Err)

	assert.Contains(t, res.Output, "trait Space")
	assert.Contains(t, res.Output, "struct.NullSpace.html")
	assert.Contains(t, res.Output, "trait Policy")
	assert.Contains(t, res.Output, "struct.EpsilonGreedy.html")

	// With the capability attached up front, nothing touches the pending slot.
	assert.NotContains(t, res.Output, "pending slot")

	// Manifest order is render order.
	assert.Less(t,
		strings.Index(res.Output, "trait Space"),
		strings.Index(res.Output, "trait Policy"))
}

func TestDisabledPageIsSkipped(t *testing.T) {
	t.Parallel()

	manifest := `
page "space" {}

page "policy" {
  enabled = false
}
`

	res := testutil.RunHandoffTest(t, map[string]string{"main.hcl": manifest})
	require.NoError(t, res.Err)

	assert.Contains(t, res.Output, "trait Space")
	assert.NotContains(t, res.Output, "trait Policy")
	assert.Contains(t, res.Output, "Page disabled in manifest")
}

func TestNoEnabledPagesWarns(t *testing.T) {
	t.Parallel()

	manifest := `
page "serialize" {
  enabled = false
}
`

	res := testutil.RunHandoffTest(t, map[string]string{"main.hcl": manifest})
	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "No pages enabled in manifest")
}
