package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/crossdexgo/internal/model"
)

// Module is the interface that all generated page packages implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Provider supplies the implementor table for a single trait page.
type Provider struct {
	// Trait is the display name of the trait the page documents.
	Trait string
	// NewTable builds the page's static table. A fresh table is constructed
	// for every hand-off, matching the per-page-load lifecycle of the data.
	NewTable func() *model.Table
}

// Registry maps manifest page names to the providers compiled into a single
// application instance.
type Registry struct {
	ProviderRegistry map[string]*Provider
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		ProviderRegistry: make(map[string]*Provider),
	}
}

// RegisterProvider registers the table provider for a page name.
func (r *Registry) RegisterProvider(page string, provider *Provider) {
	if _, exists := r.ProviderRegistry[page]; exists {
		panic(fmt.Sprintf("table provider for page '%s' already registered", page))
	}
	if provider == nil || provider.NewTable == nil {
		panic(fmt.Sprintf("table provider for page '%s' has no NewTable function", page))
	}
	slog.Debug("Registering page provider.", "page", page, "trait", provider.Trait)
	r.ProviderRegistry[page] = provider
}

// Provider returns the registered provider for a page name.
func (r *Registry) Provider(page string) (*Provider, bool) {
	provider, ok := r.ProviderRegistry[page]
	return provider, ok
}
