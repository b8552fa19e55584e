package handoff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// indexOf returns the index of substr in s, failing the test when absent.
func indexOf(t *testing.T, s, substr string) int {
	t.Helper()
	i := strings.Index(s, substr)
	require.NotEqual(t, -1, i, "expected output to contain %q", substr)
	return i
}
