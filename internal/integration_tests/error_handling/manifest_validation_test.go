package error_handling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/crossdexgo/internal/testutil"
)

func TestUnknownPageFailsValidation(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
page "space" {}
page "lattice" {}
`,
	}

	res := testutil.RunHandoffTest(t, files)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "registry validation failed")
	assert.Contains(t, res.Err.Error(), "page 'lattice'")
}

func TestInvalidAttachModeFailsValidation(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
viewer {
  attach = "eventually"
}

page "space" {}
`,
	}

	res := testutil.RunHandoffTest(t, files)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "attach mode 'eventually'")
}

func TestDuplicatePageFailsValidation(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
page "space" {}
page "space" {}
`,
	}

	res := testutil.RunHandoffTest(t, files)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "declared more than once")
}
