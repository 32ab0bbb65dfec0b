package fold

import (
	"html"

	"github.com/umlfold/umlfold/internal/xmi"
	"github.com/umlfold/umlfold/uml"
)

// serializeDocument walks the model root and emits the normalized document.
// Packages, classes, and enums keep source document order throughout so
// repeated folds of the same input encode identically.
func (c *Context) serializeDocument() *uml.Document {
	doc := &uml.Document{Name: c.model.Name}
	for _, el := range c.model.Elements {
		if el.IsKind("Package") {
			doc.Packages = append(doc.Packages, c.serializePackage(el, doc))
		}
	}
	return doc
}

func (c *Context) serializePackage(pe *xmi.PackagedElement, doc *uml.Document) *uml.Package {
	pkg := &uml.Package{
		ID:         pe.ID,
		Name:       pe.Name,
		Definition: c.raw.Documentation(pe.ID),
		Stereotype: c.raw.Stereotype(pe.ID),
	}
	for _, child := range pe.Elements {
		switch {
		case child.IsKind("Class", "AssociationClass"):
			pkg.Classes = append(pkg.Classes, c.serializeClass(child, doc))
		case child.IsKind("Enumeration"):
			pkg.Enums = append(pkg.Enums, c.serializeEnum(child))
		case child.IsKind("Package"):
			pkg.Packages = append(pkg.Packages, c.serializePackage(child, doc))
		}
	}
	// Data types nest arbitrarily deep, so the whole subtree is flattened
	// rather than only the direct children.
	for _, dt := range descendantsOfKind(pe, "DataType") {
		pkg.DataTypes = append(pkg.DataTypes, c.serializeClass(dt, doc))
	}
	for _, d := range c.raw.DiagramsForPackage(pe.ID) {
		pkg.Diagrams = append(pkg.Diagrams, &uml.Diagram{
			ID:         d.ID,
			Name:       d.Name,
			Definition: d.Documentation,
		})
	}
	return pkg
}

// descendantsOfKind collects every descendant of root with the given kind,
// in document order, using an explicit worklist instead of recursion.
func descendantsOfKind(root *xmi.PackagedElement, kind string) []*xmi.PackagedElement {
	var out []*xmi.PackagedElement
	stack := make([]*xmi.PackagedElement, len(root.Elements))
	for i := range root.Elements {
		stack[len(root.Elements)-1-i] = root.Elements[i]
	}
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if el.IsKind(kind) {
			out = append(out, el)
		}
		for i := len(el.Elements) - 1; i >= 0; i-- {
			stack = append(stack, el.Elements[i])
		}
	}
	return out
}

func (c *Context) serializeClass(pe *xmi.PackagedElement, doc *uml.Document) *uml.Class {
	cls := &uml.Class{
		ID:         pe.ID,
		Name:       pe.Name,
		IsAbstract: pe.Abstract(),
		Definition: c.raw.Documentation(pe.ID),
		Stereotype: c.raw.Stereotype(pe.ID),
		Model:      doc,
	}
	for _, attr := range pe.Attributes {
		// Attributes with an association reference are association ends,
		// surfaced through the resolver instead.
		if attr.Association != "" {
			continue
		}
		cls.Attributes = append(cls.Attributes, c.serializeAttribute(attr))
	}
	for _, op := range pe.Operations {
		if op.Association != "" {
			continue
		}
		cls.Operations = append(cls.Operations, c.serializeOperation(op))
	}
	for _, rule := range pe.Rules {
		cls.Constraints = append(cls.Constraints, &uml.Constraint{
			ID:         rule.ID,
			Body:       rule.Body(),
			Definition: html.UnescapeString(c.raw.ConstraintDescription(pe.ID, rule.Name)),
		})
	}
	cls.Associations = c.resolveAssociations(pe.ID)
	return cls
}

func (c *Context) serializeAttribute(attr *xmi.OwnedAttribute) *uml.Attribute {
	lower, upper := attr.Bounds()
	out := &uml.Attribute{
		ID:          attr.ID,
		Name:        attr.Name,
		TypeID:      attr.TypeID(),
		IsDerived:   attr.Derived(),
		Cardinality: cardinality(lower, upper),
		Definition:  c.raw.RefDocumentation("attribute", attr.ID),
	}
	if out.TypeID != "" {
		out.Type = c.displayName(out.TypeID)
	}
	return out
}

func (c *Context) serializeOperation(op *xmi.OwnedOperation) *uml.Operation {
	out := &uml.Operation{
		ID:         op.ID,
		Name:       op.Name,
		Definition: c.raw.RefDocumentation("operation", op.ID),
	}
	if ret := op.ReturnTypeID(); ret != "" {
		out.ReturnType = c.displayName(ret)
	}
	return out
}

func (c *Context) serializeEnum(pe *xmi.PackagedElement) *uml.Enum {
	e := &uml.Enum{
		ID:         pe.ID,
		Name:       pe.Name,
		Definition: c.raw.Documentation(pe.ID),
		Stereotype: c.raw.Stereotype(pe.ID),
	}
	for _, lit := range pe.Literals {
		e.Literals = append(e.Literals, &uml.EnumLiteral{ID: lit.ID, Name: lit.Name})
	}
	return e
}
