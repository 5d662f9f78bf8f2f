package types_test

import (
	"testing"

	"github.com/cottand/fxtype/types"
	"github.com/stretchr/testify/assert"
)

var samples = []string{
	"x", "?", "e", "N", "b", "n", "s", "h", "i", "p", "m", "o", "g", "c", "$", "D", "T", "d", "P", "O",
	"![]", "*[]", "![A:n]", "*[A:n, B:![C:s]]", "%n[A:1, B:2]", "%s[X:\"x\"]", "L{Color}[Blue, Red]",
	"l{Color}[Blue, Red]", "A*[A:n]",
}

func TestAcceptsSentinelLaws(t *testing.T) {
	for _, text := range samples {
		x := parse(text)
		t.Run(text, func(t *testing.T) {
			assert.True(t, types.Accepts(types.Error, x), "Error accepts %s", x)
			assert.True(t, types.Accepts(x, types.Unknown), "%s accepts Unknown", x)
			assert.Equal(t, x.Kind() == types.KindUnknown, types.Accepts(types.Unknown, x), "Unknown accepts %s", x)
		})
	}
}

func TestAcceptsReflexive(t *testing.T) {
	for _, text := range samples {
		x := parse(text)
		t.Run(text, func(t *testing.T) {
			assert.True(t, types.Accepts(x, x))
		})
	}
}

func TestAccepts(t *testing.T) {
	testCases := []struct {
		self, other string
		expected    bool
	}{
		{"n", "$", true},
		{"$", "n", false},
		{"s", "h", true},
		{"s", "g", true},
		{"s", "o", true},
		{"h", "i", true},
		{"h", "p", true},
		{"h", "s", false},
		{"i", "p", true},
		{"p", "i", false},
		{"d", "D", true},
		{"d", "T", true},
		{"D", "d", false},
		{"n", "s", false},
		{"c", "c", true},
		{"n", "N", true},
		{"![A:n]", "N", true},

		{"*[A:n, B:b, D:d]", "*[A:n, B:b, C:n, D:d]", true},
		{"*[A:n, B:b, C:n, D:d]", "*[A:n, B:b, D:d]", false},
		{"![A:n]", "*[A:n]", false},
		{"*[A:n]", "![A:n]", false},
		{"![A:n]", "![A:$]", true},
		{"![A:$]", "![A:n]", false},
		{"![A:![B:n]]", "![A:![B:$, C:s]]", true},
		{"![A:![B:n, C:s]]", "![A:![B:n]]", false},
		{"![A:n, B:N]", "![A:n]", true},
		{"![]", "![A:n]", true},
		{"![A:n]", "n", false},

		{"n", "%n[A:1, B:2]", true},
		{"%n[A:1, B:2]", "n", false},
		{"%n[A:1, B:2]", "%n[A:1]", true},
		{"%n[A:1]", "%n[A:1, B:2]", false},
		{"%n[A:1]", "%n[A:2]", false},
		{"%n[A:1]", "%$[A:1]", false},
		{"s", "%s[X:\"x\"]", true},
		{"h", "%s[X:\"x\"]", false},
		{"n", "%$[A:1]", true},

		{"P", "![A:n]", true},
		{"P", "*[A:n]", false},
		{"P", "n", false},
		{"P", "P", true},
		{"![A:n]", "P", false},

		{"L{Color}[Blue, Red]", "L{Color}[Red]", true},
		{"L{Color}[Blue, Red]", "L{Shade}[Blue, Red]", false},
		{"l{Color}[Blue, Red]", "L{Color}[Blue, Red]", false},

		{"A*[A:n]", "A*[A:$, B:s]", true},
		{"A*[A:$]", "A*[A:n]", false},
		{"A*[A:n]", "*[A:n]", false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.self+" accepts "+testCase.other, func(t *testing.T) {
			assert.Equal(t, testCase.expected, types.Accepts(parse(testCase.self), parse(testCase.other)))
		})
	}
}

func TestAcceptsLazyStopsAtMissingFirstField(t *testing.T) {
	self, r := lazyRecord("Wide", map[types.Name]types.Type{
		"A": types.Number,
		"B": types.Number,
		"C": types.Number,
	})

	assert.False(t, types.Accepts(self, parse("![B:n, C:n]")))
	assert.Equal(t, 0, r.totalCalls())
}

func TestAcceptsLazyStopsAtFirstMismatch(t *testing.T) {
	self, r := lazyRecord("Rows", map[types.Name]types.Type{
		"A": types.Number,
		"B": types.Number,
		"C": types.String,
		"D": types.Number,
	})
	other := parse("![A:n, B:n, C:n, D:n]")

	assert.False(t, types.Accepts(self, other))
	// C is the third name in order, so at most three resolutions happen
	assert.LessOrEqual(t, r.totalCalls(), 3)
	assert.Equal(t, 0, r.callsFor("D"))

	t.Run("repeating the check resolves nothing new", func(t *testing.T) {
		before := r.totalCalls()
		for range 3 {
			assert.False(t, types.Accepts(self, other))
		}
		assert.Equal(t, before, r.totalCalls())
	})
}

func TestAcceptsLazyOther(t *testing.T) {
	other, r := lazyRecord("Source", map[types.Name]types.Type{
		"A": types.Currency,
		"B": types.String,
		"C": types.Boolean,
	})

	assert.True(t, types.Accepts(parse("![A:n]"), other))
	assert.Equal(t, 1, r.totalCalls(), "only the field self asks for is resolved")
	assert.False(t, types.Accepts(parse("![Z:n]"), other))
	assert.Equal(t, 1, r.totalCalls())
}

func TestAcceptsRecursiveSchemas(t *testing.T) {
	personA, _ := recursivePerson("PersonA", types.String)
	personB, _ := recursivePerson("PersonB", types.String)
	numbered, _ := recursivePerson("Numbered", types.Number)

	assert.True(t, types.Accepts(personA, personA))
	assert.True(t, types.Accepts(personA, personB))
	assert.True(t, types.Accepts(types.ToTable(personA), types.ToTable(personB)))
	assert.False(t, types.Accepts(personA, numbered))
	assert.False(t, types.Accepts(personA, types.ToTable(personB)))
}
