// Package model defines the format-agnostic data types for implementor
// tables: the per-page mapping from crate name to the pre-rendered
// implementor snippets emitted by the documentation generator.
//
// The `model.Table` is the single unit of exchange between the generated
// page packages, the registry hand-off, and the viewer consumer.
package model
