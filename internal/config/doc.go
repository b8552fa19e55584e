// Package config defines the format-agnostic manifest model for the
// application, along with the Loader interface for reading manifests from
// various sources.
//
// The `config.Model` is the single source of truth for the hand-off loop in
// the `app` package. Concrete Loader implementations, such as for HCL and
// YAML, are provided in separate packages.
package config
