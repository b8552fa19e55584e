// Package qfunction carries the generated implementor table for the
// QFunction trait page of the rsrl documentation set.
package qfunction

import (
	"github.com/vk/crossdexgo/internal/model"
	"github.com/vk/crossdexgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register installs this page's table provider.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterProvider("qfunction", &registry.Provider{
		Trait:    "QFunction",
		NewTable: NewTable,
	})
}

// NewTable builds the static implementor table for the QFunction trait page.
func NewTable() *model.Table {
	t := model.NewTable("QFunction")
	t.Add("rsrl",
		`impl&lt;S: <a class="trait" href="../rsrl/geometry/trait.Space.html" title="trait rsrl::geometry::Space">Space</a>, P: <a class="trait" href="../rsrl/fa/trait.Projection.html" title="trait rsrl::fa::Projection">Projection</a>&lt;S&gt;&gt; <a class="trait" href="../rsrl/fa/trait.QFunction.html" title="trait rsrl::fa::QFunction">QFunction</a>&lt;S&gt; for <a class="struct" href="../rsrl/fa/struct.DenseLinear.html" title="struct rsrl::fa::DenseLinear">DenseLinear</a>&lt;S, P&gt;`,
		`impl&lt;S: <a class="trait" href="../rsrl/geometry/trait.Space.html" title="trait rsrl::geometry::Space">Space</a>, P: <a class="trait" href="../rsrl/fa/trait.SparseProjection.html" title="trait rsrl::fa::SparseProjection">SparseProjection</a>&lt;S&gt;&gt; <a class="trait" href="../rsrl/fa/trait.QFunction.html" title="trait rsrl::fa::QFunction">QFunction</a>&lt;S&gt; for <a class="struct" href="../rsrl/fa/struct.SparseLinear.html" title="struct rsrl::fa::SparseLinear">SparseLinear</a>&lt;S, P&gt;`,
	)
	return t
}
