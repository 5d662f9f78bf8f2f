package types_test

import (
	"testing"

	"github.com/cottand/fxtype/types"
	"github.com/stretchr/testify/assert"
)

func TestSupertype(t *testing.T) {
	testCases := []struct {
		a, b     string
		expected string
	}{
		{"D", "T", "d"},
		{"D", "d", "d"},
		{"i", "p", "i"},
		{"i", "m", "h"},
		{"p", "m", "h"},
		{"o", "i", "i"},
		{"o", "p", "i"},
		{"o", "m", "m"},
		{"o", "h", "h"},
		{"$", "D", "e"},
		{"$", "T", "e"},
		{"$", "d", "e"},
		{"$", "n", "n"},
		{"n", "s", "e"},
		{"N", "n", "n"},
		{"N", "e", "e"},
		{"N", "N", "N"},
		{"?", "s", "s"},
		{"?", "N", "?"},
		{"e", "n", "e"},
		{"![A:n]", "*[A:n]", "e"},
		{"![A:n]", "N", "![A:n]"},
		{"![A:n, B:s]", "![A:$, B:n, C:b]", "![A:n]"},
		{"*[A:![B:D, C:s]]", "*[A:![B:T]]", "*[A:![B:d]]"},
		{"![A:n]", "![B:n]", "![]"},
		{"%n[A:1]", "%n[B:2]", "n"},
		{"%n[A:1]", "%n[A:1, B:2]", "%n[A:1, B:2]"},
		{"%n[A:1]", "$", "n"},
		{"%D[A:1]", "%T[B:2]", "d"},
		{"%s[A:\"a\"]", "n", "e"},
		{"A![A:n]", "A![A:$, B:s]", "A![A:n]"},
		{"P", "![A:n]", "P"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.a+" v "+testCase.b, func(t *testing.T) {
			a, b := parse(testCase.a), parse(testCase.b)
			assert.Equal(t, testCase.expected, types.Supertype(a, b).String())
			assert.Equal(t, testCase.expected, types.Supertype(b, a).String(), "supertype is commutative")
		})
	}
}

func TestSupertypeCommutesOverSamples(t *testing.T) {
	for _, textA := range samples {
		for _, textB := range samples {
			a, b := parse(textA), parse(textB)
			assert.True(t, types.Equal(types.Supertype(a, b), types.Supertype(b, a)), "%s v %s", a, b)
		}
	}
}

func TestSupertypeRecursiveSchemas(t *testing.T) {
	personA, _ := recursivePerson("PersonA", types.String)
	personB, _ := recursivePerson("PersonB", types.String)

	assert.Equal(t, "![Age:n, Name:s]", types.Supertype(personA, personB).String())
	assert.Equal(t, "*{PersonA}", types.Supertype(types.ToTable(personA), types.ToTable(personA)).String())
}
