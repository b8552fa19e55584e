// Package sink provides the in-process viewer consumer used by the CLI. It
// renders delivered implementor tables as indented plain text, one block
// per crate, without altering the snippet strings.
package sink

import (
	"fmt"
	"io"
	"sync"

	"github.com/vk/crossdexgo/internal/model"
)

// Writer renders implementor tables to a single io.Writer. It is safe to
// share between hubs.
type Writer struct {
	mu   sync.Mutex
	outW io.Writer
}

// NewWriter creates a Writer rendering to outW.
func NewWriter(outW io.Writer) *Writer {
	return &Writer{outW: outW}
}

// Deliver implements the registry.DeliverFunc capability. Crates and
// snippets are rendered in the exact order the table carries them.
func (w *Writer) Deliver(t *model.Table) {
	w.mu.Lock()
	defer w.mu.Unlock()

	fmt.Fprintf(w.outW, "trait %s (%d crates)\n", t.Trait(), t.Len())
	for _, entry := range t.Entries() {
		fmt.Fprintf(w.outW, "  %s\n", entry.Crate)
		for _, impl := range entry.Impls {
			fmt.Fprintf(w.outW, "      %s\n", impl)
		}
	}
}
