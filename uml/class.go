package uml

// Class is a class or data type with its resolved relationships.
// The same shape serves both kinds because the source format gives them
// identical structure; Package keeps them in separate lists.
type Class struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	IsAbstract bool   `json:"is_abstract,omitempty" yaml:"is_abstract,omitempty"`
	Definition string `json:"definition,omitempty" yaml:"definition,omitempty"`
	Stereotype string `json:"stereotype,omitempty" yaml:"stereotype,omitempty"`

	Attributes   []*Attribute   `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Operations   []*Operation   `json:"operations,omitempty" yaml:"operations,omitempty"`
	Constraints  []*Constraint  `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Associations []*Association `json:"associations,omitempty" yaml:"associations,omitempty"`

	// Model points back at the enclosing document. It is informational
	// only; the document owns the class, never the other way around.
	Model *Document `json:"-" yaml:"-"`
}

// Attribute is one owned attribute of a class or data type. Type holds the
// resolved type name, falling back to the raw identifier when the reference
// cannot be resolved anywhere in the source document.
type Attribute struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Type        string       `json:"type,omitempty" yaml:"type,omitempty"`
	TypeID      string       `json:"type_id,omitempty" yaml:"type_id,omitempty"`
	IsDerived   bool         `json:"is_derived,omitempty" yaml:"is_derived,omitempty"`
	Cardinality *Cardinality `json:"cardinality,omitempty" yaml:"cardinality,omitempty"`
	Definition  string       `json:"definition,omitempty" yaml:"definition,omitempty"`
}

// Operation is one owned operation. Operations that are really association
// ends in disguise are filtered out before this record is built.
type Operation struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	ReturnType string `json:"return_type,omitempty" yaml:"return_type,omitempty"`
	Definition string `json:"definition,omitempty" yaml:"definition,omitempty"`
}

// Constraint is one named constraint attached to a class. Body carries the
// constraint name or expression; Definition carries the entity-decoded
// description text.
type Constraint struct {
	ID         string `json:"id" yaml:"id"`
	Body       string `json:"body" yaml:"body"`
	Definition string `json:"definition,omitempty" yaml:"definition,omitempty"`
}
