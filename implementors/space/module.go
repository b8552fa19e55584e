// Package space carries the generated implementor table for the Space trait
// page of the rsrl documentation set.
package space

import (
	"github.com/vk/crossdexgo/internal/model"
	"github.com/vk/crossdexgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register installs this page's table provider.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterProvider("space", &registry.Provider{
		Trait:    "Space",
		NewTable: NewTable,
	})
}

// NewTable builds the static implementor table for the Space trait page.
// The snippet strings are documentation-generator output, carried verbatim.
func NewTable() *model.Table {
	t := model.NewTable("Space")
	t.Add("rsrl",
		`impl <a class="trait" href="../rsrl/geometry/trait.Space.html" title="trait rsrl::geometry::Space">Space</a> for <a class="struct" href="../rsrl/geometry/struct.NullSpace.html" title="struct rsrl::geometry::NullSpace">NullSpace</a>`,
		`impl&lt;D: <a class="trait" href="../rsrl/geometry/dimensions/trait.Dimension.html" title="trait rsrl::geometry::dimensions::Dimension">Dimension</a>&gt; <a class="trait" href="../rsrl/geometry/trait.Space.html" title="trait rsrl::geometry::Space">Space</a> for <a class="struct" href="../rsrl/geometry/struct.UnitarySpace.html" title="struct rsrl::geometry::UnitarySpace">UnitarySpace</a>&lt;D&gt;`,
		`impl&lt;D1: <a class="trait" href="../rsrl/geometry/dimensions/trait.Dimension.html" title="trait rsrl::geometry::dimensions::Dimension">Dimension</a>, D2: <a class="trait" href="../rsrl/geometry/dimensions/trait.Dimension.html" title="trait rsrl::geometry::dimensions::Dimension">Dimension</a>&gt; <a class="trait" href="../rsrl/geometry/trait.Space.html" title="trait rsrl::geometry::Space">Space</a> for <a class="struct" href="../rsrl/geometry/struct.PairSpace.html" title="struct rsrl::geometry::PairSpace">PairSpace</a>&lt;D1, D2&gt;`,
		`impl&lt;D: <a class="trait" href="../rsrl/geometry/dimensions/trait.Dimension.html" title="trait rsrl::geometry::dimensions::Dimension">Dimension</a>&gt; <a class="trait" href="../rsrl/geometry/trait.Space.html" title="trait rsrl::geometry::Space">Space</a> for <a class="struct" href="../rsrl/geometry/struct.RegularSpace.html" title="struct rsrl::geometry::RegularSpace">RegularSpace</a>&lt;D&gt;`,
	)
	return t
}
