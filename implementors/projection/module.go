// Package projection carries the generated implementor table for the
// Projection trait page of the rsrl documentation set.
package projection

import (
	"github.com/vk/crossdexgo/internal/model"
	"github.com/vk/crossdexgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register installs this page's table provider.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterProvider("projection", &registry.Provider{
		Trait:    "Projection",
		NewTable: NewTable,
	})
}

// NewTable builds the static implementor table for the Projection trait page.
func NewTable() *model.Table {
	t := model.NewTable("Projection")
	t.Add("rsrl",
		`impl <a class="trait" href="../rsrl/fa/trait.Projection.html" title="trait rsrl::fa::Projection">Projection</a> for <a class="struct" href="../rsrl/fa/projection/struct.UniformGrid.html" title="struct rsrl::fa::projection::UniformGrid">UniformGrid</a>`,
		`impl <a class="trait" href="../rsrl/fa/trait.Projection.html" title="trait rsrl::fa::Projection">Projection</a> for <a class="struct" href="../rsrl/fa/struct.RBFNetwork.html" title="struct rsrl::fa::RBFNetwork">RBFNetwork</a>`,
		`impl <a class="trait" href="../rsrl/fa/trait.Projection.html" title="trait rsrl::fa::Projection">Projection</a> for <a class="struct" href="../rsrl/fa/struct.SuttonTiles.html" title="struct rsrl::fa::SuttonTiles">SuttonTiles</a>`,
		`impl <a class="trait" href="../rsrl/fa/trait.Projection.html" title="trait rsrl::fa::Projection">Projection</a> for <a class="struct" href="../rsrl/fa/projection/struct.BasisNetwork.html" title="struct rsrl::fa::projection::BasisNetwork">BasisNetwork</a>`,
	)
	return t
}
