// Package xmi provides the typed, read-only view over the uml:Model subtree
// of an XMI interchange file. It is a plain encoding/xml mapping: the
// decoder is the schema-bound parser, and this package only names the parts
// of the tree the fold needs. Facts the typed view does not carry
// (documentation, stereotypes, connectors, diagrams) live in the raw
// document tree instead.
package xmi

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// file is the top-level xmi:XMI wrapper. Only the model subtree is mapped;
// the extension subtree is reached through the raw document tree.
type file struct {
	XMLName xml.Name `xml:"XMI"`
	Model   Model    `xml:"Model"`
}

// Model is the uml:Model root: a name and its packaged elements in
// document order.
type Model struct {
	Name     string             `xml:"name,attr"`
	Elements []*PackagedElement `xml:"packagedElement"`
}

// PackagedElement is one node of the typed tree. Packages, classes, data
// types, and enumerations all share this shape; Kind tells them apart.
type PackagedElement struct {
	Type       string `xml:"type,attr"`
	ID         string `xml:"id,attr"`
	Name       string `xml:"name,attr"`
	IsAbstract string `xml:"isAbstract,attr"`

	Elements   []*PackagedElement `xml:"packagedElement"`
	Attributes []*OwnedAttribute  `xml:"ownedAttribute"`
	Operations []*OwnedOperation  `xml:"ownedOperation"`
	Literals   []*OwnedLiteral    `xml:"ownedLiteral"`
	Rules      []*OwnedRule       `xml:"ownedRule"`
}

// Kind returns the element's xmi:type with the namespace prefix stripped,
// e.g. "Class" for "uml:Class".
func (e *PackagedElement) Kind() string {
	if i := strings.IndexByte(e.Type, ':'); i >= 0 {
		return e.Type[i+1:]
	}
	return e.Type
}

// IsKind reports whether the element's kind equals any of the given names.
func (e *PackagedElement) IsKind(kinds ...string) bool {
	k := e.Kind()
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// Abstract reports whether the element declares itself abstract.
func (e *PackagedElement) Abstract() bool {
	return e.IsAbstract == "true"
}

// OwnedAttribute is one property of a class or data type. Association is
// non-empty when the property is really an association end rather than a
// plain attribute.
type OwnedAttribute struct {
	ID          string     `xml:"id,attr"`
	Name        string     `xml:"name,attr"`
	IsDerived   string     `xml:"isDerived,attr"`
	Association string     `xml:"association,attr"`
	TypeRef     *Ref       `xml:"type"`
	LowerValue  *ValueSpec `xml:"lowerValue"`
	UpperValue  *ValueSpec `xml:"upperValue"`
}

// Derived reports whether the attribute is marked as derived.
func (a *OwnedAttribute) Derived() bool {
	return a.IsDerived == "true"
}

// TypeID returns the referenced type identifier, or "" when untyped.
func (a *OwnedAttribute) TypeID() string {
	if a.TypeRef == nil {
		return ""
	}
	return a.TypeRef.IDRef
}

// Bounds returns the raw lower and upper multiplicity values. Either may
// be empty when the corresponding node is missing.
func (a *OwnedAttribute) Bounds() (lower, upper string) {
	if a.LowerValue != nil {
		lower = a.LowerValue.Value
	}
	if a.UpperValue != nil {
		upper = a.UpperValue.Value
	}
	return lower, upper
}

// OwnedOperation is one operation of a class. Association is non-empty
// when the source encodes an association role as an operation; such
// operations are not part of the behavioral model.
type OwnedOperation struct {
	ID          string            `xml:"id,attr"`
	Name        string            `xml:"name,attr"`
	Association string            `xml:"association,attr"`
	Parameters  []*OwnedParameter `xml:"ownedParameter"`
}

// ReturnTypeID returns the type identifier of the return parameter, or ""
// when the operation has no declared return.
func (o *OwnedOperation) ReturnTypeID() string {
	for _, p := range o.Parameters {
		if p.Direction == "return" {
			if p.Type != "" {
				return p.Type
			}
			if p.TypeRef != nil {
				return p.TypeRef.IDRef
			}
		}
	}
	return ""
}

// OwnedParameter is one operation parameter. The type reference appears
// either as a type attribute or as a nested type element depending on the
// exporting tool.
type OwnedParameter struct {
	ID        string `xml:"id,attr"`
	Name      string `xml:"name,attr"`
	Direction string `xml:"direction,attr"`
	Type      string `xml:"type,attr"`
	TypeRef   *Ref   `xml:"type"`
}

// OwnedLiteral is one enumeration literal, carried verbatim.
type OwnedLiteral struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// OwnedRule is one constraint attached to a class. The expression lives
// either in the rule name or in the nested specification body.
type OwnedRule struct {
	ID            string         `xml:"id,attr"`
	Name          string         `xml:"name,attr"`
	Specification *Specification `xml:"specification"`
}

// Body returns the constraint expression: the rule name when present,
// otherwise the specification body.
func (r *OwnedRule) Body() string {
	if r.Name != "" {
		return r.Name
	}
	if r.Specification != nil {
		return r.Specification.Body
	}
	return ""
}

// Specification is an opaque constraint expression.
type Specification struct {
	Body string `xml:"body"`
}

// Ref is a reference to another element by identifier.
type Ref struct {
	IDRef string `xml:"idref,attr"`
}

// ValueSpec is a literal bound value.
type ValueSpec struct {
	Value string `xml:"value,attr"`
}

// Decode builds the typed model from raw XMI bytes. The usual layout is a
// uml:Model subtree under an xmi:XMI root; a bare uml:Model root is also
// accepted. A decode failure means the source document is unreadable at the
// schema level; the fold performs no recovery from it.
func Decode(data []byte) (*Model, error) {
	var f file
	if err := xml.Unmarshal(data, &f); err == nil {
		return &f.Model, nil
	}
	var bare struct {
		XMLName xml.Name `xml:"Model"`
		Model
	}
	if err := xml.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("decoding uml:Model subtree: %w", err)
	}
	return &bare.Model, nil
}
