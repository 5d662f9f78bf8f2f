package types_test

import (
	"fmt"
	"testing"

	"github.com/cottand/fxtype/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLazyProviderMemoizes(t *testing.T) {
	r := newCountingResolver("Memo", map[types.Name]types.Type{"A": types.Number})
	provider := types.NewLazyTypeProvider(r)

	for range 5 {
		found, ok := provider.TryGetFieldType("A")
		require.True(t, ok)
		assert.Equal(t, types.Number, found)
	}
	assert.Equal(t, 1, r.callsFor("A"))

	t.Run("misses are cached too", func(t *testing.T) {
		for range 5 {
			_, ok := provider.TryGetFieldType("Missing")
			assert.False(t, ok)
		}
		assert.Equal(t, 1, r.callsFor("Missing"))
		assert.Equal(t, 2, provider.ResolvedCount())
	})
}

func TestLazyProviderEnumeratesWithoutResolving(t *testing.T) {
	r := newCountingResolver("Names", map[types.Name]types.Type{"B": types.Number, "A": types.String})
	provider := types.NewLazyTypeProvider(r)
	lazy := types.NewLazyTable(provider)

	assert.Equal(t, []types.Name{"A", "B"}, provider.FieldNames())
	assert.Equal(t, []types.Name{"A", "B"}, types.FieldNames(lazy))
	assert.True(t, provider.HasField("A"))
	assert.Equal(t, 2, types.ChildCount(lazy))
	assert.Equal(t, 1, types.MaxDepth(lazy))
	assert.Equal(t, "*{Names}", lazy.String())
	assert.Equal(t, 0, r.totalCalls())
}

func TestLazyProviderConcurrentFirstAccess(t *testing.T) {
	fields := map[types.Name]types.Type{}
	for i := range 20 {
		fields[types.Name(fmt.Sprintf("F%d", i))] = types.Number
	}
	r := newCountingResolver("Shared", fields)
	lazy := types.NewLazyRecord(types.NewLazyTypeProvider(r))
	shape := types.RecordOf(types.Field{Name: "F0", Type: types.Number}, types.Field{Name: "F7", Type: types.Number})

	var g errgroup.Group
	for range 32 {
		g.Go(func() error {
			all, ok := types.Fields(lazy)
			if !ok || all.Len() != 20 {
				return fmt.Errorf("expected 20 fields, got %d", all.Len())
			}
			if !types.Accepts(shape, lazy) {
				return fmt.Errorf("%s should accept %s", shape, lazy)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for name := range fields {
		assert.Equal(t, 1, r.callsFor(name), name)
	}
}

func TestLazyEqualityIsByIdentity(t *testing.T) {
	first, r1 := lazyRecord("Same", map[types.Name]types.Type{"A": types.Number})
	second, r2 := lazyRecord("Same", map[types.Name]types.Type{"A": types.String})
	other, _ := lazyRecord("Other", map[types.Name]types.Type{"A": types.Number})

	assert.True(t, types.Equal(first, second))
	assert.Equal(t, first.Hash(), second.Hash())
	assert.False(t, types.Equal(first, other))
	assert.False(t, types.Equal(first, types.ToTable(first)))
	assert.False(t, types.Equal(first, parse("![A:n]")))
	assert.Equal(t, 0, r1.totalCalls()+r2.totalCalls())
}

func TestToRecordAndToTable(t *testing.T) {
	lazy, r := lazyRecord("Conv", map[types.Name]types.Type{"A": types.Number})

	table := types.ToTable(lazy)
	assert.Equal(t, types.KindLazyTable, table.Kind())
	assert.True(t, types.Equal(lazy, types.ToRecord(table)))
	assert.Equal(t, 0, r.totalCalls())

	assert.Equal(t, types.EmptyTable, types.ToTable(types.EmptyRecord))
	assert.Equal(t, types.EmptyRecord, types.ToRecord(types.ToTable(types.EmptyRecord)))
	assert.Equal(t, "*[A:n]", types.ToTable(parse("![A:n]")).String())
	assert.Panics(t, func() { types.ToRecord(types.Number) })
}

func TestRecursiveSchemaLookup(t *testing.T) {
	person, r := recursivePerson("Person", types.String)

	friendName, ok := types.TypeAtPath(person, types.NewPath("Friends", "Friends", "Name"))
	require.True(t, ok)
	assert.Equal(t, types.String, friendName)
	assert.Equal(t, 1, r.callsFor("Friends"))
	assert.Equal(t, 1, r.callsFor("Name"))
	assert.Equal(t, 0, r.callsFor("Age"))
}
