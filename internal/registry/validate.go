package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/crossdexgo/internal/config"
	"github.com/vk/crossdexgo/internal/ctxlog"
)

// ValidateRegistry performs a strict parity check between the manifest's
// page selection and the providers compiled into the binary. Every page the
// manifest names must have a provider, whether or not it is enabled.
func (r *Registry) ValidateRegistry(ctx context.Context, cfgModel *config.Model) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, page := range cfgModel.Pages {
		provider, ok := r.ProviderRegistry[page.Name]
		if !ok {
			errs = append(errs, fmt.Sprintf("page '%s': no implementor table provider is compiled into this binary", page.Name))
			continue
		}
		if provider.Trait == "" {
			errs = append(errs, fmt.Sprintf("page '%s': provider declares no trait name", page.Name))
		}
		if !page.Enabled {
			logger.Debug("Manifest disables page; provider present but will not be handed off.", "page", page.Name)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
