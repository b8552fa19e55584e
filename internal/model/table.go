package model

import "fmt"

// Entry pairs a crate name with the rendered implementor snippets recorded
// for it.
type Entry struct {
	Crate string
	Impls []string
}

// Table is the implementor table for a single trait documentation page: an
// ordered mapping from crate name to the pre-rendered HTML snippets the
// documentation generator emitted for that crate's implementors.
//
// Crate insertion order and per-crate snippet order are preserved exactly
// between construction and delivery. The table performs no deduplication,
// reordering, or filtering, and is treated as immutable once handed off.
type Table struct {
	trait   string
	entries []Entry
	index   map[string]int
}

// NewTable creates an empty implementor table for the named trait page.
func NewTable(trait string) *Table {
	return &Table{
		trait: trait,
		index: make(map[string]int),
	}
}

// Trait returns the name of the trait page this table belongs to.
func (t *Table) Trait() string {
	return t.trait
}

// Add records the implementor snippets for a crate. Crate names are unique
// per table; adding the same crate twice is a defect in the generated data.
func (t *Table) Add(crate string, impls ...string) {
	if crate == "" {
		panic("model: crate name must not be empty")
	}
	if _, exists := t.index[crate]; exists {
		panic(fmt.Sprintf("model: crate '%s' already present in table for trait '%s'", crate, t.trait))
	}
	t.index[crate] = len(t.entries)
	t.entries = append(t.entries, Entry{
		Crate: crate,
		Impls: append([]string(nil), impls...),
	})
}

// Crates returns the crate names in insertion order.
func (t *Table) Crates() []string {
	crates := make([]string, len(t.entries))
	for i, e := range t.entries {
		crates[i] = e.Crate
	}
	return crates
}

// Impls returns the implementor snippets recorded for a crate, in declaration
// order. The boolean reports whether the crate is present in the table.
func (t *Table) Impls(crate string) ([]string, bool) {
	i, ok := t.index[crate]
	if !ok {
		return nil, false
	}
	return append([]string(nil), t.entries[i].Impls...), true
}

// Entries returns a copy of the table's entries in insertion order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		entries[i] = Entry{
			Crate: e.Crate,
			Impls: append([]string(nil), e.Impls...),
		}
	}
	return entries
}

// Len returns the number of crates in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Clone returns an independent deep copy of the table.
func (t *Table) Clone() *Table {
	clone := NewTable(t.trait)
	for _, e := range t.entries {
		clone.Add(e.Crate, e.Impls...)
	}
	return clone
}
