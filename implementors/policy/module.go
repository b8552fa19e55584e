// Package policy carries the generated implementor table for the Policy
// trait page of the rsrl documentation set.
package policy

import (
	"github.com/vk/crossdexgo/internal/model"
	"github.com/vk/crossdexgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register installs this page's table provider.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterProvider("policy", &registry.Provider{
		Trait:    "Policy",
		NewTable: NewTable,
	})
}

// NewTable builds the static implementor table for the Policy trait page.
func NewTable() *model.Table {
	t := model.NewTable("Policy")
	t.Add("rsrl",
		`impl <a class="trait" href="../rsrl/policies/trait.Policy.html" title="trait rsrl::policies::Policy">Policy</a> for <a class="struct" href="../rsrl/policies/struct.Random.html" title="struct rsrl::policies::Random">Random</a>`,
		`impl <a class="trait" href="../rsrl/policies/trait.Policy.html" title="trait rsrl::policies::Policy">Policy</a> for <a class="struct" href="../rsrl/policies/struct.Greedy.html" title="struct rsrl::policies::Greedy">Greedy</a>`,
		`impl <a class="trait" href="../rsrl/policies/trait.Policy.html" title="trait rsrl::policies::Policy">Policy</a> for <a class="struct" href="../rsrl/policies/struct.EpsilonGreedy.html" title="struct rsrl::policies::EpsilonGreedy">EpsilonGreedy</a>`,
		`impl <a class="trait" href="../rsrl/policies/trait.Policy.html" title="trait rsrl::policies::Policy">Policy</a> for <a class="struct" href="../rsrl/policies/struct.Boltzmann.html" title="struct rsrl::policies::Boltzmann">Boltzmann</a>`,
	)
	return t
}
