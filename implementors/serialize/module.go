// Package serialize carries the generated implementor table for the
// serde Serialize trait page of the rsrl documentation set. This page spans
// more than one crate, so it also exercises the multi-key table layout.
package serialize

import (
	"github.com/vk/crossdexgo/internal/model"
	"github.com/vk/crossdexgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register installs this page's table provider.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterProvider("serialize", &registry.Provider{
		Trait:    "Serialize",
		NewTable: NewTable,
	})
}

// NewTable builds the static implementor table for the Serialize trait page.
func NewTable() *model.Table {
	t := model.NewTable("Serialize")
	t.Add("rsrl",
		`impl <a class="trait" href="../serde/ser/trait.Serialize.html" title="trait serde::ser::Serialize">Serialize</a> for <a class="struct" href="../rsrl/geometry/struct.NullSpace.html" title="struct rsrl::geometry::NullSpace">NullSpace</a>`,
		`impl&lt;D: <a class="trait" href="../rsrl/geometry/dimensions/trait.Dimension.html" title="trait rsrl::geometry::dimensions::Dimension">Dimension</a>&gt; <a class="trait" href="../serde/ser/trait.Serialize.html" title="trait serde::ser::Serialize">Serialize</a> for <a class="struct" href="../rsrl/geometry/struct.UnitarySpace.html" title="struct rsrl::geometry::UnitarySpace">UnitarySpace</a>&lt;D&gt;`,
		`impl&lt;S: <a class="trait" href="../rsrl/geometry/trait.Space.html" title="trait rsrl::geometry::Space">Space</a>, P: <a class="trait" href="../rsrl/fa/trait.Projection.html" title="trait rsrl::fa::Projection">Projection</a>&lt;S&gt;&gt; <a class="trait" href="../serde/ser/trait.Serialize.html" title="trait serde::ser::Serialize">Serialize</a> for <a class="struct" href="../rsrl/fa/struct.DenseLinear.html" title="struct rsrl::fa::DenseLinear">DenseLinear</a>&lt;S, P&gt;`,
	)
	t.Add("ndarray",
		`impl&lt;A, D&gt; <a class="trait" href="../serde/ser/trait.Serialize.html" title="trait serde::ser::Serialize">Serialize</a> for <a class="struct" href="../ndarray/struct.ArrayBase.html" title="struct ndarray::ArrayBase">ArrayBase</a>&lt;A, D&gt;`,
	)
	return t
}
