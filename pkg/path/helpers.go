package path

import (
	"github.com/arya-analytics/saki/pkg/naming"
	"github.com/arya-analytics/saki/pkg/resource"
	"github.com/cockroachdb/errors"
	"sort"
	"strings"
)

// HelperSuffix is the suffix every conventional index helper name carries.
const HelperSuffix = "_path"

// Helpers is a table of named path helpers. It is built once for a suite and
// resolves names such as "widgets_path" to descriptors. Names are never guessed:
// looking up a name that was not registered fails with ErrNoSuchOperation.
type Helpers struct {
	table map[string]Descriptor
}

// NewHelpers registers an index helper for each of the given resource types under
// its own, its singular and its segment form, e.g. "widget" and "widgets" both
// register "widget_path" and "widgets_path", describing /widgets.
func NewHelpers(types ...resource.Type) *Helpers {
	h := &Helpers{table: make(map[string]Descriptor)}
	for _, t := range types {
		h.DefineIndex(t)
	}
	return h
}

// DefineIndex registers the index helpers for t. Registering a type twice is a
// no-op.
func (h *Helpers) DefineIndex(t resource.Type) {
	desc := IndexFor(string(t), Options{})
	names := []string{
		string(t) + HelperSuffix,
		naming.Singular(string(t)) + HelperSuffix,
		t.Segment() + HelperSuffix,
	}
	for _, name := range names {
		if _, ok := h.table[name]; !ok {
			h.table[name] = desc
		}
	}
}

// Define registers a custom helper. Define panics if name is already registered.
func (h *Helpers) Define(name string, d Descriptor) {
	if _, ok := h.table[name]; ok {
		panic("[path] - helper already registered: " + name)
	}
	h.table[name] = d
}

// Lookup returns the descriptor registered under name.
func (h *Helpers) Lookup(name string) (Descriptor, error) {
	if h != nil {
		if d, ok := h.table[name]; ok {
			return d, nil
		}
	}
	if strings.HasSuffix(name, HelperSuffix) {
		return Descriptor{}, errors.Wrapf(
			ErrNoSuchOperation,
			"%s: resource %q has no registered index helper",
			name,
			strings.TrimSuffix(name, HelperSuffix),
		)
	}
	return Descriptor{}, errors.Wrap(ErrNoSuchOperation, name)
}

// Names returns the registered helper names in sorted order.
func (h *Helpers) Names() []string {
	names := make([]string, 0, len(h.table))
	for name := range h.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
