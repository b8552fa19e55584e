package app

import (
	"context"
	"fmt"

	"github.com/vk/crossdexgo/internal/config"
	"github.com/vk/crossdexgo/internal/ctxlog"
	"github.com/vk/crossdexgo/internal/registry"
	"github.com/vk/crossdexgo/internal/sink"
)

// Run performs one hand-off per enabled page, in manifest order. Each page
// gets a fresh hub, matching the one-table-per-page-load lifecycle of the
// generated data files this tool consumes.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	writer := sink.NewWriter(a.outW)
	attach := a.config.Viewer.Attach

	delivered := 0
	for _, page := range a.config.Pages {
		if !page.Enabled {
			a.logger.Debug("Page disabled in manifest, skipping.", "page", page.Name)
			continue
		}

		provider, ok := a.registry.Provider(page.Name)
		if !ok {
			return fmt.Errorf("no implementor table provider for page '%s'", page.Name)
		}

		hub := registry.NewHub()
		if attach == config.AttachImmediate {
			hub.Attach(ctx, writer.Deliver)
		}
		hub.Handoff(ctx, provider.NewTable())
		if attach == config.AttachDeferred {
			hub.Attach(ctx, writer.Deliver)
		}
		delivered++
	}

	if delivered == 0 {
		a.logger.Warn("No pages enabled in manifest, nothing to deliver.")
	} else {
		a.logger.Info("Implementor tables delivered.", "count", delivered, "attach", string(attach))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
