package fold

import (
	"github.com/umlfold/umlfold/internal/rawdoc"
	"github.com/umlfold/umlfold/uml"
)

// endSide identifies which declared side of a link a class occupies.
// Using an explicit enumeration keeps the side dispatch out of string
// comparisons on field names.
type endSide int

const (
	sideStart endSide = iota
	sideEnd
)

// side returns the class's side of the link, or false when the class is on
// neither side (a dangling link entry).
func side(classID string, ln rawdoc.Link) (endSide, bool) {
	switch classID {
	case ln.Start:
		return sideStart, true
	case ln.End:
		return sideEnd, true
	default:
		return 0, false
	}
}

// opposite returns the identifier on the far side of the link.
func opposite(s endSide, ln rawdoc.Link) string {
	if s == sideStart {
		return ln.End
	}
	return ln.Start
}

// memberEnd picks the connector detail for the far side: the class's side
// maps start to source and end to target, so the member detail is the
// other child.
func memberEnd(s endSide, conn *rawdoc.Connector) rawdoc.ConnectorEnd {
	if conn == nil {
		return rawdoc.ConnectorEnd{}
	}
	if s == sideStart {
		return conn.Target
	}
	return conn.Source
}

// resolveAssociations computes the association list for one class. Every
// call is a pure function of the class id, the link list, and the two
// read-only trees; no state persists between calls beyond the name cache.
func (c *Context) resolveAssociations(classID string) []*uml.Association {
	var out []*uml.Association
	for _, ln := range c.raw.Links(classID) {
		if ln.Kind == "NoteLink" {
			// Annotation arrows, not structural.
			continue
		}
		s, ok := side(classID, ln)
		if !ok {
			continue
		}
		var assoc *uml.Association
		if ln.Kind == "Generalization" {
			assoc = c.resolveGeneralization(classID, s, ln)
		} else {
			assoc = c.resolveAssociation(classID, s, ln)
		}
		if assoc == nil {
			continue
		}
		if !containsAssociation(out, assoc) {
			out = append(out, assoc)
		}
	}
	return out
}

// resolveGeneralization handles subtype/supertype links. The start side is
// the subtype: when the class sits there the far side is its parent and
// the relationship reads as inheritance; from the parent's side the same
// link reads as a generalization.
func (c *Context) resolveGeneralization(classID string, s endSide, ln rawdoc.Link) *uml.Association {
	kind := uml.KindInheritance
	if s == sideEnd {
		kind = uml.KindGeneralization
	}
	otherID := opposite(s, ln)
	assoc := &uml.Association{
		MemberEnd:     c.displayName(otherID),
		MemberEndType: kind,
		MemberEndID:   otherID,
		OwnerEnd:      c.displayName(classID),
		OwnerEndID:    classID,
		Definition:    memberEnd(s, c.raw.Connector(ln.ID)).Documentation,
	}
	if role, ok := c.raw.RoleForType(otherID); ok {
		assoc.MemberEndAttributeName = role.Name
		assoc.MemberEndCardinality = cardinality(role.Lower, role.Upper)
	}
	return assoc
}

// resolveAssociation handles plain and aggregation links. Role and
// multiplicity detail live only on the raw connector node matching the
// link id; aggregation arrows whose owned-attribute role cannot be
// identified are dropped.
func (c *Context) resolveAssociation(classID string, s endSide, ln rawdoc.Link) *uml.Association {
	otherID := opposite(s, ln)
	member := memberEnd(s, c.raw.Connector(ln.ID))

	kind := uml.KindPlain
	if ln.Kind == "Aggregation" || (member.Aggregation != "" && member.Aggregation != "none") {
		kind = uml.KindAggregation
	}

	// The attribute name travels only on aggregation roles; plain
	// associations never carry one.
	var attrName string
	if kind == uml.KindAggregation {
		attrName = member.RoleName
		if attrName == "" {
			if role, ok := c.raw.RoleForType(otherID); ok {
				attrName = role.Name
			}
		}
		if attrName == "" {
			return nil
		}
	}

	return &uml.Association{
		MemberEnd:              c.displayName(otherID),
		MemberEndType:          kind,
		MemberEndCardinality:   multiplicity(member.Multiplicity),
		MemberEndAttributeName: attrName,
		MemberEndID:            otherID,
		OwnerEnd:               c.displayName(classID),
		OwnerEndID:             classID,
		Definition:             member.Documentation,
	}
}

func containsAssociation(list []*uml.Association, a *uml.Association) bool {
	for _, b := range list {
		if b.Equal(a) {
			return true
		}
	}
	return false
}
