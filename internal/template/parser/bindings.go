package parser

import (
	"sort"

	"github.com/aymerick/raymond"
)

// Bindings is the read-only set of resolved variable values used for both
// path and content rendering.
type Bindings struct {
	values map[string]string
}

// NewBindings copies values into a new Bindings.
func NewBindings(values map[string]string) Bindings {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Bindings{values: copied}
}

// Get retrieves a binding by name.
func (b Bindings) Get(name string) (string, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Len returns the number of bindings.
func (b Bindings) Len() int {
	return len(b.values)
}

// Names returns the binding names, sorted.
func (b Bindings) Names() []string {
	names := make([]string, 0, len(b.values))
	for k := range b.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// All returns a copy of the bindings as a map.
func (b Bindings) All() map[string]string {
	out := make(map[string]string, len(b.values))
	for k, v := range b.values {
		out[k] = v
	}
	return out
}

// renderContext builds the evaluation context. Values are SafeString so
// {{name}} substitutes them verbatim, without HTML escaping.
func (b Bindings) renderContext() map[string]interface{} {
	ctx := make(map[string]interface{}, len(b.values))
	for k, v := range b.values {
		ctx[k] = raymond.SafeString(v)
	}
	return ctx
}
