package error_handling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/crossdexgo/internal/testutil"
)

func TestInvalidHCLIsRejected(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
page "space" {
  enabled =
`,
	}

	res := testutil.RunHandoffTest(t, files)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "application startup panicked")
	assert.Contains(t, res.Err.Error(), "failed to parse")
}

func TestWrongAttributeTypeIsRejected(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
page "space" {
  enabled = "definitely"
}
`,
	}

	res := testutil.RunHandoffTest(t, files)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "page 'space'")
}
