package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/crossdexgo/internal/app"
	"github.com/vk/crossdexgo/internal/hcl"
	"github.com/vk/crossdexgo/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing combined log and render
// output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
}

// RunHandoffTest provides a standardized harness for running hand-off
// integration tests using a default background context.
func RunHandoffTest(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunHandoffTestWithContext(context.Background(), t, files, modules...)
}

// RunHandoffTestWithContext writes the given HCL manifest files into a
// temporary directory, builds an App over them, and runs it to completion
// with the provided context.
func RunHandoffTestWithContext(ctx context.Context, t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	appConfig := &app.Config{
		ManifestPath: tmpDir,
		LogLevel:     "debug",
		LogFormat:    "text",
	}

	outBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(outBuffer, appConfig, hcl.NewLoader(), modules...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			Output: outBuffer.String(),
			Err:    fmt.Errorf("application startup panicked | %v", panicErr),
			App:    nil,
		}
	}

	runErr := testApp.Run(ctx)

	return &HarnessResult{
		Output: outBuffer.String(),
		Err:    runErr,
		App:    testApp,
	}
}
