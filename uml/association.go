package uml

// AssociationKind classifies the member end of a resolved association.
type AssociationKind string

const (
	// KindPlain is an ordinary association between two elements.
	KindPlain AssociationKind = "plain"
	// KindAggregation is a whole-part association; the attribute name on
	// the member end names the containing side's field.
	KindAggregation AssociationKind = "aggregation"
	// KindInheritance marks the owner as the subtype of the member end.
	KindInheritance AssociationKind = "inheritance"
	// KindGeneralization marks the owner as the supertype of the member end.
	KindGeneralization AssociationKind = "generalization"
)

// Cardinality is a lower/upper bound pair. Min uses a closed vocabulary
// derived from the raw lower bound ("C" for conditional, "M" for
// mandatory); Max is the raw upper bound, often "*". The two are always
// set together: a bound that cannot be paired is dropped entirely.
type Cardinality struct {
	Min string `json:"min" yaml:"min"`
	Max string `json:"max" yaml:"max"`
}

// Association is one resolved cross-reference between two elements,
// expressed relative to the class it is attached to: the owner end is the
// current class, the member end is the far side.
type Association struct {
	MemberEnd              string          `json:"member_end" yaml:"member_end"`
	MemberEndType          AssociationKind `json:"member_end_type" yaml:"member_end_type"`
	MemberEndCardinality   *Cardinality    `json:"member_end_cardinality,omitempty" yaml:"member_end_cardinality,omitempty"`
	MemberEndAttributeName string          `json:"member_end_attribute_name,omitempty" yaml:"member_end_attribute_name,omitempty"`
	MemberEndID            string          `json:"member_end_id" yaml:"member_end_id"`
	OwnerEnd               string          `json:"owner_end" yaml:"owner_end"`
	OwnerEndID             string          `json:"owner_end_id" yaml:"owner_end_id"`
	Definition             string          `json:"definition,omitempty" yaml:"definition,omitempty"`
}

// Equal reports structural equality of two associations. It is the basis
// for deduplication: the same link can surface twice when both directions
// are walked across sibling classes.
func (a *Association) Equal(b *Association) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.MemberEnd != b.MemberEnd ||
		a.MemberEndType != b.MemberEndType ||
		a.MemberEndAttributeName != b.MemberEndAttributeName ||
		a.MemberEndID != b.MemberEndID ||
		a.OwnerEnd != b.OwnerEnd ||
		a.OwnerEndID != b.OwnerEndID ||
		a.Definition != b.Definition {
		return false
	}
	switch {
	case a.MemberEndCardinality == nil && b.MemberEndCardinality == nil:
		return true
	case a.MemberEndCardinality == nil || b.MemberEndCardinality == nil:
		return false
	default:
		return *a.MemberEndCardinality == *b.MemberEndCardinality
	}
}
