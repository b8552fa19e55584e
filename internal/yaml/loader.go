package yaml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/vk/crossdexgo/internal/config"
	"github.com/vk/crossdexgo/internal/ctxlog"
	"github.com/vk/crossdexgo/internal/fsutil"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot mirrors the YAML manifest document layout.
type fileRoot struct {
	Viewer *viewerDoc `yaml:"viewer"`
	Pages  []*pageDoc `yaml:"pages"`
}

// viewerDoc is the YAML-specific schema for the viewer section.
type viewerDoc struct {
	Attach string `yaml:"attach"`
}

// pageDoc is the YAML-specific schema for a single page entry.
type pageDoc struct {
	Name    string `yaml:"name"`
	Enabled *bool  `yaml:"enabled"`
}

// Load reads YAML manifests from the given paths and translates them into
// the format-agnostic model. Unknown document fields are rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	cfgModel := config.NewModel()

	files, err := l.findManifestFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .yaml manifest files found in %v", paths)
	}
	logger.Debug("Discovered YAML manifest files.", "count", len(files))

	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}

		dec := yamlv3.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)

		var root fileRoot
		if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}

		if root.Viewer != nil {
			attach := root.Viewer.Attach
			if attach == "" {
				attach = string(config.AttachImmediate)
			}
			cfgModel.Viewer = &config.Viewer{Attach: config.AttachMode(attach)}
		}

		for _, page := range root.Pages {
			enabled := true
			if page.Enabled != nil {
				enabled = *page.Enabled
			}
			cfgModel.Pages = append(cfgModel.Pages, &config.Page{
				Name:    page.Name,
				Enabled: enabled,
			})
		}
	}

	logger.Debug("YAML loading complete.", "pages", len(cfgModel.Pages), "attach", string(cfgModel.Viewer.Attach))
	return cfgModel, nil
}

// findManifestFiles resolves each path to a flat list of .yaml/.yml files,
// walking directories recursively.
func (l *Loader) findManifestFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		var found []string
		if info.IsDir() {
			found, err = fsutil.FindFilesByExtension(path, ".yaml", ".yml")
			if err != nil {
				return nil, err
			}
		} else if ext := filepath.Ext(path); ext == ".yaml" || ext == ".yml" {
			found = []string{path}
		}

		for _, f := range found {
			if _, wasSeen := seen[f]; !wasSeen {
				allFiles = append(allFiles, f)
				seen[f] = struct{}{}
			}
		}
	}

	return allFiles, nil
}
