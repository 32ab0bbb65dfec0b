package uml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssociationEqual(t *testing.T) {
	base := func() *Association {
		return &Association{
			MemberEnd:            "Book",
			MemberEndType:        KindPlain,
			MemberEndCardinality: &Cardinality{Min: "C", Max: "*"},
			MemberEndID:          "CLS_BOOK",
			OwnerEnd:             "Library",
			OwnerEndID:           "CLS_LIB",
		}
	}

	t.Run("equal values", func(t *testing.T) {
		assert.True(t, base().Equal(base()))
	})

	t.Run("different cardinality", func(t *testing.T) {
		other := base()
		other.MemberEndCardinality = &Cardinality{Min: "M", Max: "1"}
		assert.False(t, base().Equal(other))
	})

	t.Run("one absent cardinality", func(t *testing.T) {
		other := base()
		other.MemberEndCardinality = nil
		assert.False(t, base().Equal(other))

		both := base()
		both.MemberEndCardinality = nil
		assert.True(t, both.Equal(other))
	})

	t.Run("different kind", func(t *testing.T) {
		other := base()
		other.MemberEndType = KindAggregation
		assert.False(t, base().Equal(other))
	})

	t.Run("nil receivers", func(t *testing.T) {
		var a *Association
		assert.True(t, a.Equal(nil))
		assert.False(t, a.Equal(base()))
	})
}
