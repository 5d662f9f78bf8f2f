package types_test

import (
	"math"
	"testing"

	"github.com/cottand/fxtype/types"
	"github.com/stretchr/testify/assert"
)

func TestFieldMap(t *testing.T) {
	fields := types.NewFieldMap(
		types.Field{Name: "B", Type: types.Number},
		types.Field{Name: "A", Type: types.String},
		types.Field{Name: "B", Type: types.Boolean},
	)

	assert.Equal(t, 2, fields.Len())
	b, _ := fields.Get("B")
	assert.Equal(t, types.Boolean, b, "the last write wins")
	assert.Equal(t, []types.Name{"A", "B"}, fields.Names())

	reordered := types.NewFieldMap(
		types.Field{Name: "A", Type: types.String},
		types.Field{Name: "B", Type: types.Boolean},
	)
	assert.True(t, fields.Equal(reordered))

	without := fields.Without("A")
	assert.False(t, without.Has("A"))
	assert.True(t, fields.Has("A"), "FieldMap is persistent")

	var zero types.FieldMap
	assert.Equal(t, 0, zero.Len())
	assert.True(t, zero.With("A", types.Number).Has("A"))

	assert.Panics(t, func() { types.NewFieldMap(types.Field{Name: "  ", Type: types.Number}) })
	assert.Panics(t, func() { types.NewFieldMap(types.Field{Name: "A"}) })
}

func TestPath(t *testing.T) {
	path := types.NewPath("A", "b c")

	assert.Equal(t, "A.'b c'", path.String())
	assert.True(t, types.Root.IsRoot())
	assert.True(t, path.Concat(types.Root).Equal(path))
	assert.True(t, types.Root.Concat(path).Equal(path))
	assert.True(t, types.Root.Append("A").Append("b c").Equal(path))
	assert.True(t, path.Parent().Equal(types.NewPath("A")))
	assert.Equal(t, types.Name("b c"), path.Last())
	assert.True(t, types.Root.Parent().IsRoot())
	assert.False(t, path.Equal(types.NewPath("b c", "A")))

	parent := path.Parent()
	_ = parent.Append("X")
	assert.True(t, path.Equal(types.NewPath("A", "b c")), "Append never writes into a shared backing array")

	assert.Panics(t, func() { types.NewPath("") })
}

func TestKindSigils(t *testing.T) {
	for k := types.KindInvalid; k <= types.KindAttachment; k++ {
		parsed, ok := types.KindFromString(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, parsed)

		sigil, ok := k.Sigil()
		if _, primitive := types.Primitive(k); !primitive {
			assert.False(t, ok, "%s has a payload", k)
			continue
		}
		assert.True(t, ok, "%s is payload-free", k)
		back, _ := types.KindFromSigil(sigil)
		assert.Equal(t, k, back)
	}
}

func TestNameQuoting(t *testing.T) {
	testCases := []struct {
		name     types.Name
		expected string
	}{
		{"Abc_1", "Abc_1"},
		{"_x", "_x"},
		{"1st", "'1st'"},
		{"with space", "'with space'"},
		{"it's", "'it''s'"},
		{"ü", "'ü'"},
	}
	for _, testCase := range testCases {
		t.Run(string(testCase.name), func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.name.Quoted())
		})
	}
}

func TestPrinting(t *testing.T) {
	colors := types.NewOptionSetInfo("Color", "Red", "Blue")
	testCases := []struct {
		t        types.Type
		expected string
	}{
		{types.Number, "n"},
		{types.EmptyRecord, "![]"},
		{types.TableOf(types.Field{Name: "B", Type: types.Date}, types.Field{Name: "A", Type: types.Time}), "*[A:T, B:D]"},
		{types.RecordOf(types.Field{Name: "a b", Type: types.EmptyTable}), "!['a b':*[]]"},
		{types.NewEnum(types.KindNumber, types.EnumValue{Name: "B", Value: 2.5}, types.EnumValue{Name: "A", Value: -1.0}), "%n[A:-1, B:2.5]"},
		{types.NewEnum(types.KindString, types.EnumValue{Name: "Q", Value: `say "hi"`}), `%s[Q:"say \"hi\""]`},
		{types.NewEnum(types.KindBoolean, types.EnumValue{Name: "Yes", Value: true}), "%b[Yes:true]"},
		{types.NewOptionSet(colors), "L{Color}[Blue, Red]"},
		{types.NewOptionSetValue(colors), "l{Color}[Blue, Red]"},
		{types.NewAttachment(types.TableOf(types.Field{Name: "A", Type: types.Number})), "A*[A:n]"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.expected, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.t.String())
		})
	}
}

func TestEqualAndHash(t *testing.T) {
	a := types.RecordOf(types.Field{Name: "A", Type: types.Number}, types.Field{Name: "B", Type: types.String})
	b := types.RecordOf(types.Field{Name: "B", Type: types.String}, types.Field{Name: "A", Type: types.Number})
	named := types.WithDisplayNames(b, types.NewDisplayNames(map[types.Name]types.Name{"A": "Alpha"}))

	assert.True(t, types.Equal(a, b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.True(t, types.Equal(a, named), "display names do not take part in equality")
	assert.False(t, types.Equal(a, types.ToTable(a)))
	assert.False(t, types.Equal(parse("%n[A:1]"), parse("%n[A:2]")))
	assert.True(t, types.Equal(parse("L{Color}[Red]"), parse("L{Color}[Blue]")), "option sets compare by name")
	assert.True(t, types.Equal(parse("A![A:n]"), parse("A![A:n]")))
}

func TestEnumNumberConstants(t *testing.T) {
	zero, negativeZero := parse("%n[A:0]"), parse("%n[A:-0]")
	assert.True(t, types.Equal(zero, negativeZero))
	assert.Equal(t, zero.Hash(), negativeZero.Hash())

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.False(t, types.ValidEnumConstant(types.KindNumber, v))
		assert.Panics(t, func() {
			types.NewEnum(types.KindNumber, types.EnumValue{Name: "A", Value: v})
		})
	}

	e := types.NewEnum(types.KindNumber, types.EnumValue{Name: "A", Value: 1.5})
	assert.True(t, types.Equal(e, e))
	assert.True(t, types.Accepts(e, e))
}

func TestDepthAndChildren(t *testing.T) {
	testCases := []struct {
		t        string
		depth    int
		children int
	}{
		{"n", 0, 0},
		{"![]", 1, 0},
		{"![A:n, B:*[C:![D:s]]]", 3, 2},
		{"%n[A:1, B:2]", 1, 2},
		{"L{Color}[Blue, Red]", 1, 2},
		{"l{Color}[Blue, Red]", 0, 0},
		{"A![A:![B:n]]", 2, 0},
	}
	for _, testCase := range testCases {
		t.Run(testCase.t, func(t *testing.T) {
			x := parse(testCase.t)
			assert.Equal(t, testCase.depth, types.MaxDepth(x))
			assert.Equal(t, testCase.children, types.ChildCount(x))
		})
	}
}

func TestConstructorContracts(t *testing.T) {
	assert.Panics(t, func() { types.NewEnum(types.KindRecord) })
	assert.Panics(t, func() { types.NewEnum(types.KindNumber, types.EnumValue{Name: "A", Value: "one"}) })
	assert.Panics(t, func() { types.NewLazyRecord(nil) })
	assert.Panics(t, func() { types.NewName(" ") })
	assert.Panics(t, func() {
		types.NewDisplayNames(map[types.Name]types.Name{"a": "Same", "b": "Same"})
	})
	assert.NotPanics(t, func() { types.NewEnum(types.KindGuid, types.EnumValue{Name: "Id", Value: "00000000"}) })
}

func TestQueries(t *testing.T) {
	record := parse("![A:n, B:%s[X:\"x\"]]")

	assert.True(t, types.IsAggregate(record))
	assert.False(t, types.IsPrimitive(record))
	assert.True(t, types.IsPrimitive(types.Currency))
	assert.False(t, types.IsLazy(record))

	enum, ok := types.FieldType(record, "B")
	assert.True(t, ok)
	superkind, ok := types.EnumSuperkind(enum)
	assert.True(t, ok)
	assert.Equal(t, types.KindString, superkind)
	assert.Equal(t, []types.EnumValue{{Name: "X", Value: "x"}}, types.EnumValues(enum))

	colors := parse("L{Color}[Blue, Red]")
	red, ok := types.FieldType(colors, "Red")
	assert.True(t, ok)
	assert.Equal(t, types.KindOptionSetValue, red.Kind())
	_, ok = types.FieldType(colors, "Green")
	assert.False(t, ok)
}
