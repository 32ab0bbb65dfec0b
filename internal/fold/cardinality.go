package fold

import (
	"strings"

	"github.com/umlfold/umlfold/uml"
)

// mapLower maps a raw lower bound onto the closed output vocabulary:
// "0" is conditional, "1" is mandatory, anything else has no mapping.
func mapLower(raw string) (string, bool) {
	switch raw {
	case "0":
		return "C", true
	case "1":
		return "M", true
	default:
		return "", false
	}
}

// cardinality pairs a raw lower and upper bound. Partial input or an
// unmappable lower bound yields nil: bounds are always carried together or
// not at all.
func cardinality(lower, upper string) *uml.Cardinality {
	if lower == "" || upper == "" {
		return nil
	}
	min, ok := mapLower(lower)
	if !ok {
		return nil
	}
	return &uml.Cardinality{Min: min, Max: upper}
}

// multiplicity parses a connector multiplicity string. The full form is
// "min..max"; a bare value is an upper bound with an implicit lower bound
// of "1".
func multiplicity(raw string) *uml.Cardinality {
	if raw == "" {
		return nil
	}
	if lower, upper, ok := strings.Cut(raw, ".."); ok {
		return cardinality(lower, upper)
	}
	return cardinality("1", raw)
}
