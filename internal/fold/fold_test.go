package fold

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umlfold/umlfold/internal/rawdoc"
	"github.com/umlfold/umlfold/internal/xmi"
	"github.com/umlfold/umlfold/uml"
)

func parseSource(t *testing.T, src string) *uml.Document {
	t.Helper()
	m, err := xmi.Decode([]byte(src))
	require.NoError(t, err)
	raw, err := rawdoc.Parse([]byte(src))
	require.NoError(t, err)
	doc, err := Parse(m, raw)
	require.NoError(t, err)
	return doc
}

const headerXMI = `<?xml version="1.0" encoding="UTF-8"?>
<xmi:XMI xmi:version="2.1" xmlns:uml="http://schema.omg.org/spec/UML/2.1" xmlns:xmi="http://schema.omg.org/spec/XMI/2.1">`

const plainAssociationXMI = headerXMI + `
  <uml:Model xmi:type="uml:Model" name="M">
    <packagedElement xmi:type="uml:Package" xmi:id="P" name="P">
      <packagedElement xmi:type="uml:Class" xmi:id="A" name="A">
        <ownedAttribute xmi:id="A1" name="name">
          <type xmi:idref="STR"/>
          <lowerValue value="1"/>
          <upperValue value="1"/>
        </ownedAttribute>
      </packagedElement>
      <packagedElement xmi:type="uml:Class" xmi:id="B" name="B"/>
      <packagedElement xmi:type="uml:DataType" xmi:id="STR" name="String"/>
    </packagedElement>
  </uml:Model>
  <xmi:Extension>
    <elements>
      <element xmi:idref="A">
        <links><Association xmi:id="L1" start="A" end="B"/></links>
      </element>
      <element xmi:idref="B">
        <links><Association xmi:id="L1" start="A" end="B"/></links>
      </element>
    </elements>
    <connectors>
      <connector xmi:idref="L1">
        <source xmi:idref="A">
          <model name="A"/>
          <type multiplicity="1" aggregation="none"/>
          <documentation value="the owning side"/>
        </source>
        <target xmi:idref="B">
          <model name="B"/>
          <type multiplicity="0..*" aggregation="none"/>
          <documentation value="the many side"/>
        </target>
      </connector>
    </connectors>
  </xmi:Extension>
</xmi:XMI>`

func TestParsePlainAssociation(t *testing.T) {
	doc := parseSource(t, plainAssociationXMI)

	require.Len(t, doc.Packages, 1)
	pkg := doc.Packages[0]
	require.Len(t, pkg.Classes, 2)
	assert.Equal(t, "A", pkg.Classes[0].Name)
	assert.Equal(t, "B", pkg.Classes[1].Name)

	t.Run("attribute with resolved type and cardinality", func(t *testing.T) {
		a := pkg.Classes[0]
		require.Len(t, a.Attributes, 1)
		attr := a.Attributes[0]
		assert.Equal(t, "name", attr.Name)
		assert.Equal(t, "String", attr.Type)
		assert.Equal(t, "STR", attr.TypeID)
		require.NotNil(t, attr.Cardinality)
		assert.Equal(t, uml.Cardinality{Min: "M", Max: "1"}, *attr.Cardinality)
	})

	t.Run("association from the start side", func(t *testing.T) {
		a := pkg.Classes[0]
		require.Len(t, a.Associations, 1)
		got := a.Associations[0]
		assert.Equal(t, "B", got.MemberEnd)
		assert.Equal(t, uml.KindPlain, got.MemberEndType)
		require.NotNil(t, got.MemberEndCardinality)
		assert.Equal(t, uml.Cardinality{Min: "C", Max: "*"}, *got.MemberEndCardinality)
		assert.Empty(t, got.MemberEndAttributeName)
		assert.Equal(t, "B", got.MemberEndID)
		assert.Equal(t, "A", got.OwnerEnd)
		assert.Equal(t, "A", got.OwnerEndID)
		assert.Equal(t, "the many side", got.Definition)
	})

	t.Run("association from the end side", func(t *testing.T) {
		b := pkg.Classes[1]
		require.Len(t, b.Associations, 1)
		got := b.Associations[0]
		assert.Equal(t, "A", got.MemberEnd)
		assert.Equal(t, uml.KindPlain, got.MemberEndType)
		require.NotNil(t, got.MemberEndCardinality)
		assert.Equal(t, uml.Cardinality{Min: "M", Max: "1"}, *got.MemberEndCardinality)
		assert.Equal(t, "B", got.OwnerEndID)
		assert.Equal(t, "the owning side", got.Definition)
	})
}

func TestParseIdempotence(t *testing.T) {
	first := parseSource(t, plainAssociationXMI)
	second := parseSource(t, plainAssociationXMI)
	diff := cmp.Diff(first, second, cmpopts.IgnoreFields(uml.Class{}, "Model"))
	assert.Empty(t, diff)
}

const generalizationXMI = headerXMI + `
  <uml:Model xmi:type="uml:Model" name="M">
    <packagedElement xmi:type="uml:Package" xmi:id="P" name="P">
      <packagedElement xmi:type="uml:Class" xmi:id="SUB" name="Car"/>
      <packagedElement xmi:type="uml:Class" xmi:id="SUPER" name="Vehicle"/>
    </packagedElement>
  </uml:Model>
  <xmi:Extension>
    <elements>
      <element xmi:idref="SUB">
        <links><Generalization xmi:id="G1" start="SUB" end="SUPER"/></links>
      </element>
      <element xmi:idref="SUPER">
        <links><Generalization xmi:id="G1" start="SUB" end="SUPER"/></links>
      </element>
    </elements>
  </xmi:Extension>
</xmi:XMI>`

func TestParseGeneralization(t *testing.T) {
	doc := parseSource(t, generalizationXMI)
	pkg := doc.Packages[0]
	require.Len(t, pkg.Classes, 2)
	sub, super := pkg.Classes[0], pkg.Classes[1]

	t.Run("start side is the subtype", func(t *testing.T) {
		require.Len(t, sub.Associations, 1)
		got := sub.Associations[0]
		assert.Equal(t, uml.KindInheritance, got.MemberEndType)
		assert.Equal(t, "Vehicle", got.MemberEnd)
		assert.Equal(t, "SUPER", got.MemberEndID)
		assert.Equal(t, "SUB", got.OwnerEndID)
	})

	t.Run("end side is the supertype", func(t *testing.T) {
		require.Len(t, super.Associations, 1)
		got := super.Associations[0]
		assert.Equal(t, uml.KindGeneralization, got.MemberEndType)
		assert.Equal(t, "Car", got.MemberEnd)
		assert.Equal(t, "SUB", got.MemberEndID)
		assert.Equal(t, "SUPER", got.OwnerEndID)
	})
}

const aggregationXMI = headerXMI + `
  <uml:Model xmi:type="uml:Model" name="M">
    <packagedElement xmi:type="uml:Package" xmi:id="P" name="P">
      <packagedElement xmi:type="uml:Class" xmi:id="WHOLE" name="Engine">
        <ownedAttribute xmi:id="OA1" name="cylinders" association="AGG2">
          <type xmi:idref="PART2"/>
        </ownedAttribute>
      </packagedElement>
      <packagedElement xmi:type="uml:Class" xmi:id="PART" name="Piston"/>
      <packagedElement xmi:type="uml:Class" xmi:id="PART2" name="Cylinder"/>
      <packagedElement xmi:type="uml:Class" xmi:id="PART3" name="Gasket"/>
    </packagedElement>
  </uml:Model>
  <xmi:Extension>
    <elements>
      <element xmi:idref="WHOLE">
        <links>
          <Association xmi:id="AGG1" start="WHOLE" end="PART"/>
          <Association xmi:id="AGG2" start="WHOLE" end="PART2"/>
          <Association xmi:id="AGG3" start="WHOLE" end="PART3"/>
        </links>
      </element>
    </elements>
    <connectors>
      <connector xmi:idref="AGG1">
        <source xmi:idref="WHOLE"><model name="Engine"/></source>
        <target xmi:idref="PART">
          <model name="Piston"/>
          <role name="pistons"/>
          <type multiplicity="1..*" aggregation="shared"/>
        </target>
      </connector>
      <connector xmi:idref="AGG2">
        <source xmi:idref="WHOLE"><model name="Engine"/></source>
        <target xmi:idref="PART2">
          <model name="Cylinder"/>
          <type multiplicity="1..*" aggregation="shared"/>
        </target>
      </connector>
      <connector xmi:idref="AGG3">
        <source xmi:idref="WHOLE"><model name="Engine"/></source>
        <target xmi:idref="PART3">
          <model name="Gasket"/>
          <type aggregation="composite"/>
        </target>
      </connector>
    </connectors>
  </xmi:Extension>
</xmi:XMI>`

func TestAggregationFiltering(t *testing.T) {
	doc := parseSource(t, aggregationXMI)
	whole := doc.Packages[0].Classes[0]

	// AGG3 has no role name anywhere, so only two aggregations survive.
	require.Len(t, whole.Associations, 2)

	t.Run("role name from the connector", func(t *testing.T) {
		got := whole.Associations[0]
		assert.Equal(t, uml.KindAggregation, got.MemberEndType)
		assert.Equal(t, "pistons", got.MemberEndAttributeName)
		require.NotNil(t, got.MemberEndCardinality)
		assert.Equal(t, uml.Cardinality{Min: "M", Max: "*"}, *got.MemberEndCardinality)
	})

	t.Run("role name from the owned attribute fallback", func(t *testing.T) {
		got := whole.Associations[1]
		assert.Equal(t, uml.KindAggregation, got.MemberEndType)
		assert.Equal(t, "cylinders", got.MemberEndAttributeName)
	})

	t.Run("association-end attributes are not plain attributes", func(t *testing.T) {
		assert.Empty(t, whole.Attributes)
	})
}

const noteAndDuplicateXMI = headerXMI + `
  <uml:Model xmi:type="uml:Model" name="M">
    <packagedElement xmi:type="uml:Package" xmi:id="P" name="P">
      <packagedElement xmi:type="uml:Class" xmi:id="A" name="A"/>
      <packagedElement xmi:type="uml:Class" xmi:id="B" name="B"/>
    </packagedElement>
  </uml:Model>
  <xmi:Extension>
    <elements>
      <element xmi:idref="A">
        <links>
          <NoteLink xmi:id="N1" start="A" end="NOTE"/>
          <Association xmi:id="L1" start="A" end="B"/>
          <Association xmi:id="L1" start="A" end="B"/>
        </links>
      </element>
    </elements>
    <connectors>
      <connector xmi:idref="L1">
        <source xmi:idref="A"><model name="A"/></source>
        <target xmi:idref="B"><model name="B"/></target>
      </connector>
    </connectors>
  </xmi:Extension>
</xmi:XMI>`

func TestNoteLinksAndDeduplication(t *testing.T) {
	doc := parseSource(t, noteAndDuplicateXMI)
	a := doc.Packages[0].Classes[0]
	require.Len(t, a.Associations, 1)
	assert.Equal(t, uml.KindPlain, a.Associations[0].MemberEndType)
	assert.Equal(t, "B", a.Associations[0].MemberEnd)
}

const nameFallbackXMI = headerXMI + `
  <uml:Model xmi:type="uml:Model" name="M">
    <packagedElement xmi:type="uml:Package" xmi:id="P" name="P">
      <packagedElement xmi:type="uml:Class" xmi:id="A" name="A"/>
    </packagedElement>
  </uml:Model>
  <xmi:Extension>
    <elements>
      <element xmi:idref="A">
        <links>
          <Association xmi:id="L1" start="A" end="EXT"/>
          <Association xmi:id="L2" start="A" end="GHOST"/>
        </links>
      </element>
    </elements>
    <connectors>
      <connector xmi:idref="L1">
        <source xmi:idref="A"><model name="A"/></source>
        <target xmi:idref="EXT"><model name="External"/></target>
      </connector>
    </connectors>
  </xmi:Extension>
</xmi:XMI>`

func TestNameResolutionFallbacks(t *testing.T) {
	doc := parseSource(t, nameFallbackXMI)
	a := doc.Packages[0].Classes[0]
	require.Len(t, a.Associations, 2)

	t.Run("connector model name when no element carries the id", func(t *testing.T) {
		assert.Equal(t, "External", a.Associations[0].MemberEnd)
	})

	t.Run("raw identifier when nothing names it", func(t *testing.T) {
		assert.Equal(t, "GHOST", a.Associations[1].MemberEnd)
	})
}

const nestedDataTypeXMI = headerXMI + `
  <uml:Model xmi:type="uml:Model" name="M">
    <packagedElement xmi:type="uml:Package" xmi:id="P" name="P">
      <packagedElement xmi:type="uml:DataType" xmi:id="DT1" name="Amount">
        <packagedElement xmi:type="uml:DataType" xmi:id="DT2" name="Currency"/>
      </packagedElement>
      <packagedElement xmi:type="uml:Class" xmi:id="C1" name="Order">
        <packagedElement xmi:type="uml:DataType" xmi:id="DT3" name="OrderID"/>
      </packagedElement>
    </packagedElement>
  </uml:Model>
  <xmi:Extension><elements/></xmi:Extension>
</xmi:XMI>`

func TestDataTypeFlattening(t *testing.T) {
	doc := parseSource(t, nestedDataTypeXMI)
	pkg := doc.Packages[0]

	var names []string
	for _, dt := range pkg.DataTypes {
		names = append(names, dt.Name)
	}
	// All descendants of kind DataType, not just direct children.
	assert.Equal(t, []string{"Amount", "Currency", "OrderID"}, names)
}

const associationClassXMI = headerXMI + `
  <uml:Model xmi:type="uml:Model" name="M">
    <packagedElement xmi:type="uml:Package" xmi:id="P" name="P">
      <packagedElement xmi:type="uml:Class" xmi:id="EMP" name="Employee"/>
      <packagedElement xmi:type="uml:Class" xmi:id="CMP" name="Company"/>
      <packagedElement xmi:type="uml:AssociationClass" xmi:id="JOB" name="Job">
        <ownedAttribute xmi:id="JA1" name="salary"/>
        <ownedOperation xmi:id="JO1" name="raise"/>
        <ownedOperation xmi:id="JO2" name="employer" association="LNK_JOB"/>
      </packagedElement>
    </packagedElement>
  </uml:Model>
  <xmi:Extension><elements/></xmi:Extension>
</xmi:XMI>`

func TestAssociationClass(t *testing.T) {
	doc := parseSource(t, associationClassXMI)
	pkg := doc.Packages[0]

	t.Run("serialized alongside plain classes", func(t *testing.T) {
		require.Len(t, pkg.Classes, 3)
		job := pkg.Classes[2]
		assert.Equal(t, "Job", job.Name)
		assert.Equal(t, "JOB", job.ID)
		require.Len(t, job.Attributes, 1)
		assert.Equal(t, "salary", job.Attributes[0].Name)
	})

	t.Run("operations referencing an association are dropped", func(t *testing.T) {
		job := pkg.Classes[2]
		require.Len(t, job.Operations, 1)
		assert.Equal(t, "raise", job.Operations[0].Name)
	})
}

func TestParseRejectsMissingInputs(t *testing.T) {
	_, err := Parse(nil, nil)
	require.ErrorIs(t, err, ErrNoInput)
}
