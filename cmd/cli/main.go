package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vk/crossdexgo/internal/app"
	"github.com/vk/crossdexgo/internal/cli"
	"github.com/vk/crossdexgo/internal/config"
	"github.com/vk/crossdexgo/internal/hcl"
	"github.com/vk/crossdexgo/internal/yaml"
)

// main is the entrypoint for the crossdexgo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors, so we recover here to
	// provide a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked | %v", r)
		}
	}()

	cdxApp := app.NewApp(outW, appConfig, newLoader(appConfig.ManifestPath))

	return cdxApp.Run(context.Background())
}

// newLoader instantiates the concrete manifest loader for the path's format.
// Directories and .hcl files use the HCL loader.
func newLoader(path string) config.Loader {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.NewLoader()
	default:
		return hcl.NewLoader()
	}
}
