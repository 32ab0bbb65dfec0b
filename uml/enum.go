package uml

// Enum is an enumeration together with its literals in source order.
type Enum struct {
	ID         string         `json:"id" yaml:"id"`
	Name       string         `json:"name" yaml:"name"`
	Definition string         `json:"definition,omitempty" yaml:"definition,omitempty"`
	Stereotype string         `json:"stereotype,omitempty" yaml:"stereotype,omitempty"`
	Literals   []*EnumLiteral `json:"literals,omitempty" yaml:"literals,omitempty"`
}

// EnumLiteral is one raw literal entry, carried through verbatim.
type EnumLiteral struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
