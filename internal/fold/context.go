package fold

import (
	"github.com/umlfold/umlfold/internal/rawdoc"
	"github.com/umlfold/umlfold/internal/xmi"
)

// Context carries the state of one fold: both read-only input trees and
// the per-parse name cache. A Context is created fresh for every parse and
// never shared, so concurrent parses of different documents cannot
// interact.
type Context struct {
	model *xmi.Model
	raw   *rawdoc.Tree
	names map[string]cachedName
}

type cachedName struct {
	name string
	ok   bool
}

func newContext(m *xmi.Model, raw *rawdoc.Tree) *Context {
	return &Context{
		model: m,
		raw:   raw,
		names: make(map[string]cachedName),
	}
}

// lookupName resolves an element identifier to its display name: first the
// broad any-element-by-id search, then the connector source/target
// fallback. Results are memoized for the lifetime of the Context; entries
// are stable because the underlying trees never change during a parse.
func (c *Context) lookupName(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	if hit, ok := c.names[id]; ok {
		return hit.name, hit.ok
	}
	name, ok := c.raw.NameByID(id)
	if !ok {
		name, ok = c.raw.ConnectorName(id)
	}
	c.names[id] = cachedName{name: name, ok: ok}
	return name, ok
}

// displayName resolves an identifier to a name, retaining the raw
// identifier as the display value when nothing in the document names it.
func (c *Context) displayName(id string) string {
	if name, ok := c.lookupName(id); ok {
		return name
	}
	return id
}
