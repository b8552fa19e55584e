package config

import (
	"fmt"
	"strings"
)

// AttachMode selects when the viewer runtime attaches its registration
// capability relative to a page's hand-off.
type AttachMode string

const (
	// AttachImmediate attaches the capability before each hand-off, so
	// tables are delivered synchronously and the pending slot stays empty.
	AttachImmediate AttachMode = "immediate"

	// AttachDeferred attaches the capability after each hand-off, so tables
	// pass through the pending slot and are drained on attach.
	AttachDeferred AttachMode = "deferred"
)

// Model is the unified, format-agnostic representation of the entire viewer
// manifest.
type Model struct {
	Viewer *Viewer
	Pages  []*Page
}

// Viewer is the format-agnostic representation of a `viewer` block.
type Viewer struct {
	Attach AttachMode
}

// Page is the format-agnostic representation of a `page` block: one trait
// documentation page whose implementor table should be handed off.
type Page struct {
	Name    string
	Enabled bool
}

// NewModel returns an empty Model with viewer defaults applied.
func NewModel() *Model {
	return &Model{
		Viewer: &Viewer{Attach: AttachImmediate},
	}
}

// Validate checks the model for values no loader should have produced.
func (m *Model) Validate() error {
	var errs []string

	if m.Viewer == nil {
		errs = append(errs, "viewer configuration is missing")
	} else {
		switch m.Viewer.Attach {
		case AttachImmediate, AttachDeferred:
			// valid
		default:
			errs = append(errs, fmt.Sprintf("viewer attach mode '%s' is not one of 'immediate' or 'deferred'", m.Viewer.Attach))
		}
	}

	seen := make(map[string]struct{})
	for _, page := range m.Pages {
		if page.Name == "" {
			errs = append(errs, "a page block has an empty name")
			continue
		}
		if _, dup := seen[page.Name]; dup {
			errs = append(errs, fmt.Sprintf("page '%s' is declared more than once", page.Name))
		}
		seen[page.Name] = struct{}{}
	}

	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
