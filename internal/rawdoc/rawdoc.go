// Package rawdoc provides the generic, queryable view over a whole XMI
// file. Where the typed model exposes only the uml:Model subtree, this
// package reaches the extension machinery: per-element documentation and
// stereotypes, link lists, connectors, and diagrams, all keyed on raw
// identifier strings.
package rawdoc

import (
	"fmt"

	"github.com/beevik/etree"
)

// Attribute keys the exporting tools use for identifiers.
const (
	attrID    = "xmi:id"
	attrIDRef = "xmi:idref"
)

// Tree wraps one parsed document. It is read-only after construction and
// safe to query from multiple goroutines.
type Tree struct {
	doc *etree.Document
}

// Parse builds a Tree from raw bytes. A parse failure means the source
// document is unreadable below the schema level.
func Parse(data []byte) (*Tree, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("reading document tree: %w", err)
	}
	return &Tree{doc: doc}, nil
}

// forEach visits every element of the document with an explicit worklist,
// so pathological nesting depth cannot overflow the stack. Visiting stops
// when fn returns false.
func (t *Tree) forEach(fn func(el *etree.Element) bool) {
	stack := []*etree.Element{t.doc.Root()}
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if el == nil {
			continue
		}
		if !fn(el) {
			return
		}
		children := el.ChildElements()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// elementByRef finds the extension <element> entry whose xmi:idref equals
// id, or nil.
func (t *Tree) elementByRef(id string) *etree.Element {
	for _, el := range t.doc.FindElements("//elements/element") {
		if el.SelectAttrValue(attrIDRef, "") == id {
			return el
		}
	}
	return nil
}

// Documentation returns the free-text documentation recorded for the
// element with the given id, or "" when none exists.
func (t *Tree) Documentation(id string) string {
	el := t.elementByRef(id)
	if el == nil {
		return ""
	}
	if props := el.SelectElement("properties"); props != nil {
		return props.SelectAttrValue("documentation", "")
	}
	return ""
}

// Stereotype returns the stereotype recorded for the element with the
// given id. Exporters write it either as a properties attribute or as a
// dedicated stereotype child; both spellings are honored.
func (t *Tree) Stereotype(id string) string {
	el := t.elementByRef(id)
	if el == nil {
		return ""
	}
	if props := el.SelectElement("properties"); props != nil {
		if s := props.SelectAttrValue("stereotype", ""); s != "" {
			return s
		}
	}
	if st := el.SelectElement("stereotype"); st != nil {
		return st.SelectAttrValue("stereotype", "")
	}
	return ""
}

// RefDocumentation returns the documentation value attached to a nested
// extension record (attribute, operation) referenced by id.
func (t *Tree) RefDocumentation(tag, id string) string {
	var out string
	t.forEach(func(el *etree.Element) bool {
		if el.Tag != tag || el.SelectAttrValue(attrIDRef, "") != id {
			return true
		}
		if doc := el.SelectElement("documentation"); doc != nil {
			out = doc.SelectAttrValue("value", "")
		}
		return false
	})
	return out
}

// ConstraintDescription returns the raw description text of the extension
// constraint with the given name attached to the element with ownerID, or
// "" when absent. The text may contain HTML entities; decoding is the
// caller's concern.
func (t *Tree) ConstraintDescription(ownerID, name string) string {
	el := t.elementByRef(ownerID)
	if el == nil {
		return ""
	}
	for _, c := range el.FindElements("constraints/constraint") {
		if c.SelectAttrValue("name", "") == name {
			return c.SelectAttrValue("description", "")
		}
	}
	return ""
}

// Link is one pre-extracted cross-reference between two element
// identifiers, tagged with its kind (Association, Aggregation,
// Generalization, NoteLink, ...).
type Link struct {
	ID    string
	Kind  string
	Start string
	End   string
}

// Links returns the link list recorded for the element with the given id,
// in document order.
func (t *Tree) Links(id string) []Link {
	el := t.elementByRef(id)
	if el == nil {
		return nil
	}
	links := el.SelectElement("links")
	if links == nil {
		return nil
	}
	var out []Link
	for _, ln := range links.ChildElements() {
		out = append(out, Link{
			ID:    ln.SelectAttrValue(attrID, ""),
			Kind:  ln.Tag,
			Start: ln.SelectAttrValue("start", ""),
			End:   ln.SelectAttrValue("end", ""),
		})
	}
	return out
}

// ConnectorEnd is one side of a connector: the role, multiplicity, and
// documentation detail the typed model does not carry.
type ConnectorEnd struct {
	Ref           string
	RoleName      string
	Multiplicity  string
	Aggregation   string
	ModelName     string
	Documentation string
}

// Connector is the raw relationship record matching one link id.
type Connector struct {
	Source ConnectorEnd
	Target ConnectorEnd
}

// Connector returns the connector whose xmi:idref equals the link id, or
// nil when the extension carries none.
func (t *Tree) Connector(linkID string) *Connector {
	for _, el := range t.doc.FindElements("//connectors/connector") {
		if el.SelectAttrValue(attrIDRef, "") != linkID {
			continue
		}
		return &Connector{
			Source: connectorEnd(el.SelectElement("source")),
			Target: connectorEnd(el.SelectElement("target")),
		}
	}
	return nil
}

func connectorEnd(el *etree.Element) ConnectorEnd {
	if el == nil {
		return ConnectorEnd{}
	}
	end := ConnectorEnd{Ref: el.SelectAttrValue(attrIDRef, "")}
	if role := el.SelectElement("role"); role != nil {
		end.RoleName = role.SelectAttrValue("name", "")
	}
	if typ := el.SelectElement("type"); typ != nil {
		end.Multiplicity = typ.SelectAttrValue("multiplicity", "")
		end.Aggregation = typ.SelectAttrValue("aggregation", "")
	}
	if mod := el.SelectElement("model"); mod != nil {
		end.ModelName = mod.SelectAttrValue("name", "")
	}
	if doc := el.SelectElement("documentation"); doc != nil {
		end.Documentation = doc.SelectAttrValue("value", "")
	}
	return end
}

// Diagram is one visual grouping record.
type Diagram struct {
	ID            string
	Name          string
	Documentation string
}

// DiagramsForPackage returns the diagrams whose declared owning package
// equals pkgID, in document order.
func (t *Tree) DiagramsForPackage(pkgID string) []Diagram {
	var out []Diagram
	for _, el := range t.doc.FindElements("//diagrams/diagram") {
		mod := el.SelectElement("model")
		if mod == nil || mod.SelectAttrValue("package", "") != pkgID {
			continue
		}
		d := Diagram{ID: el.SelectAttrValue(attrID, "")}
		if props := el.SelectElement("properties"); props != nil {
			d.Name = props.SelectAttrValue("name", "")
			d.Documentation = props.SelectAttrValue("documentation", "")
		}
		out = append(out, d)
	}
	return out
}

// NameByID performs the broad name lookup: any element anywhere whose
// xmi:id equals id contributes its name attribute.
func (t *Tree) NameByID(id string) (string, bool) {
	var name string
	var found bool
	t.forEach(func(el *etree.Element) bool {
		if el.SelectAttrValue(attrID, "") != id {
			return true
		}
		if n := el.SelectAttr("name"); n != nil {
			name, found = n.Value, true
		}
		return false
	})
	return name, found
}

// ConnectorName is the fallback name lookup: a connector source or target
// wrapper whose xmi:idref equals id names the element through its nested
// model child.
func (t *Tree) ConnectorName(id string) (string, bool) {
	var name string
	var found bool
	t.forEach(func(el *etree.Element) bool {
		if el.Tag != "source" && el.Tag != "target" {
			return true
		}
		if el.SelectAttrValue(attrIDRef, "") != id {
			return true
		}
		mod := el.SelectElement("model")
		if mod == nil {
			return true
		}
		if n := mod.SelectAttr("name"); n != nil {
			name, found = n.Value, true
			return false
		}
		return true
	})
	return name, found
}

// OwnedRole is the owned-attribute record backing an association role.
type OwnedRole struct {
	Name  string
	Lower string
	Upper string
}

// RoleForType finds an ownedAttribute anywhere in the document whose
// nested type reference points at typeID. It backs aggregation roles and
// generalization cardinalities.
func (t *Tree) RoleForType(typeID string) (OwnedRole, bool) {
	var role OwnedRole
	var found bool
	t.forEach(func(el *etree.Element) bool {
		if el.Tag != "ownedAttribute" {
			return true
		}
		typ := el.SelectElement("type")
		if typ == nil || typ.SelectAttrValue(attrIDRef, "") != typeID {
			return true
		}
		role.Name = el.SelectAttrValue("name", "")
		if lv := el.SelectElement("lowerValue"); lv != nil {
			role.Lower = lv.SelectAttrValue("value", "")
		}
		if uv := el.SelectElement("upperValue"); uv != nil {
			role.Upper = uv.SelectAttrValue("value", "")
		}
		found = true
		return false
	})
	return role, found
}
