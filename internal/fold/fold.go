package fold

import (
	"errors"

	"github.com/umlfold/umlfold/internal/rawdoc"
	"github.com/umlfold/umlfold/internal/xmi"
	"github.com/umlfold/umlfold/uml"
)

// ErrNoInput reports that one of the two input trees is missing.
var ErrNoInput = errors.New("fold: both input trees are required")

// Parse folds the typed model and the raw document tree into one
// normalized document. It is pure composition: a fresh Context per call,
// a single top-to-bottom traversal, and no state that outlives the return.
// Per-field lookup failures never fail the parse; they surface as absent
// fields on the output records.
func Parse(m *xmi.Model, raw *rawdoc.Tree) (*uml.Document, error) {
	if m == nil || raw == nil {
		return nil, ErrNoInput
	}
	return newContext(m, raw).serializeDocument(), nil
}
