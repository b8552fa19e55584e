// Package yaml provides the concrete YAML implementation of the manifest
// loading interface defined in the `config` package, for environments where
// manifests are maintained as YAML documents instead of HCL.
package yaml
