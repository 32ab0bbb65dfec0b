// Package umlfold reads a single XMI interchange document and produces a
// normalized, tool-agnostic UML model: packages, classes, data types,
// enumerations, attributes, operations, constraints, associations, and
// diagrams.
//
// The same bytes are parsed twice on purpose: once into a typed model over
// the uml:Model subtree and once into a generic queryable tree over the
// whole file. The fold correlates the two views; see the uml package for
// the output shape.
package umlfold

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/umlfold/umlfold/internal/fold"
	"github.com/umlfold/umlfold/internal/rawdoc"
	"github.com/umlfold/umlfold/internal/xmi"
	"github.com/umlfold/umlfold/uml"
)

// ErrUnreadable reports that the source document could not be turned into
// the input trees at all: malformed XML or a schema mismatch. This is the
// only non-recoverable failure class; everything past construction degrades
// to absent fields instead of erroring.
var ErrUnreadable = errors.New("source document unreadable")

// ParseBytes folds one XMI document held in memory.
func ParseBytes(data []byte) (*uml.Document, error) {
	m, err := xmi.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	raw, err := rawdoc.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return fold.Parse(m, raw)
}

// Parse folds one XMI document read from r.
func Parse(r io.Reader) (*uml.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading source document: %w", err)
	}
	return ParseBytes(data)
}

// ParseFile folds the XMI document at path.
func ParseFile(path string) (*uml.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseBytes(data)
}
