package uml

// Document is the root of one normalized model. Packages appear in source
// document order.
type Document struct {
	Name     string     `json:"name" yaml:"name"`
	Packages []*Package `json:"packages,omitempty" yaml:"packages,omitempty"`
}

// Package is a recursive grouping of model elements. Nested packages mirror
// XML containment, so the package graph is always a tree.
type Package struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Definition string     `json:"definition,omitempty" yaml:"definition,omitempty"`
	Stereotype string     `json:"stereotype,omitempty" yaml:"stereotype,omitempty"`
	Classes    []*Class   `json:"classes,omitempty" yaml:"classes,omitempty"`
	Enums      []*Enum    `json:"enums,omitempty" yaml:"enums,omitempty"`
	DataTypes  []*Class   `json:"data_types,omitempty" yaml:"data_types,omitempty"`
	Diagrams   []*Diagram `json:"diagrams,omitempty" yaml:"diagrams,omitempty"`
	Packages   []*Package `json:"packages,omitempty" yaml:"packages,omitempty"`
}

// Diagram is a visual grouping owned by a package. It is not part of the
// structural model but is carried through for downstream consumers.
type Diagram struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Definition string `json:"definition,omitempty" yaml:"definition,omitempty"`
}
