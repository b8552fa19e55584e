package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/crossdexgo/internal/config"
	"github.com/vk/crossdexgo/internal/ctxlog"
	"github.com/vk/crossdexgo/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Viewer *viewerBlock `hcl:"viewer,block"`
	Pages  []*pageBlock `hcl:"page,block"`
}

// viewerBlock is the HCL-specific schema for a `viewer` block.
type viewerBlock struct {
	Attach hcl.Expression `hcl:"attach,optional"`
}

// pageBlock is the HCL-specific schema for a `page` block.
type pageBlock struct {
	Name    string         `hcl:"name,label"`
	Enabled hcl.Expression `hcl:"enabled,optional"`
}

// Load orchestrates the entire HCL manifest loading process. It is agnostic
// to the origin of the paths and merges valid blocks from every file found.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	cfgModel := config.NewModel()

	files, err := l.findManifestFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl manifest files found in %v", paths)
	}
	logger.Debug("Discovered HCL manifest files.", "count", len(files))

	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if root.Viewer != nil {
			attach, err := evalString(root.Viewer.Attach, string(config.AttachImmediate))
			if err != nil {
				return nil, fmt.Errorf("viewer block in %s: %w", file, err)
			}
			cfgModel.Viewer = &config.Viewer{Attach: config.AttachMode(attach)}
		}

		for _, page := range root.Pages {
			enabled, err := evalBool(page.Enabled, true)
			if err != nil {
				return nil, fmt.Errorf("page '%s' in %s: %w", page.Name, file, err)
			}
			cfgModel.Pages = append(cfgModel.Pages, &config.Page{
				Name:    page.Name,
				Enabled: enabled,
			})
		}
	}

	logger.Debug("HCL loading complete.", "pages", len(cfgModel.Pages), "attach", string(cfgModel.Viewer.Attach))
	return cfgModel, nil
}

// findManifestFiles resolves each path to a flat list of .hcl files,
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
			found, err = fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
		} else if filepath.Ext(path) == ".hcl" {
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

// evalString evaluates an optional attribute expression to a string, falling
// back to def when the attribute is absent or null.
func evalString(expr hcl.Expression, def string) (string, error) {
	val, err := evalValue(expr, cty.String)
	if err != nil {
		return "", err
	}
	if val == cty.NilVal {
		return def, nil
	}
	return val.AsString(), nil
}

// evalBool evaluates an optional attribute expression to a bool, falling
// back to def when the attribute is absent or null.
func evalBool(expr hcl.Expression, def bool) (bool, error) {
	val, err := evalValue(expr, cty.Bool)
	if err != nil {
		return false, err
	}
	if val == cty.NilVal {
		return def, nil
	}
	return val.True(), nil
}

// evalValue evaluates an expression and converts the result to the wanted
// cty type. It returns cty.NilVal when the attribute was absent or null.
func evalValue(expr hcl.Expression, want cty.Type) (cty.Value, error) {
	if expr == nil {
		return cty.NilVal, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to evaluate attribute: %w", diags)
	}
	if val.IsNull() {
		return cty.NilVal, nil
	}
	converted, err := convert.Convert(val, want)
	if err != nil {
		return cty.NilVal, fmt.Errorf("attribute has wrong type: %w", err)
	}
	return converted, nil
}
