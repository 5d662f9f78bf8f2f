package types_test

import (
	"maps"
	"slices"
	"sync"

	"github.com/cottand/fxtype/parser"
	"github.com/cottand/fxtype/types"
)

// countingResolver serves fields from a map and records how often each one was resolved.
// Fields may be added after the provider is built, as long as nothing enumerated it yet,
// which is how recursive schemas are set up.
type countingResolver struct {
	identity string
	fields   map[types.Name]types.Type

	mu    sync.Mutex
	calls map[types.Name]int
}

func newCountingResolver(identity string, fields map[types.Name]types.Type) *countingResolver {
	if fields == nil {
		fields = map[types.Name]types.Type{}
	}
	return &countingResolver{identity: identity, fields: fields, calls: map[types.Name]int{}}
}

func (r *countingResolver) Identity() string { return r.identity }

func (r *countingResolver) FieldNames() []types.Name {
	return slices.Collect(maps.Keys(r.fields))
}

func (r *countingResolver) ResolveField(name types.Name) (types.Type, bool) {
	r.mu.Lock()
	r.calls[name]++
	r.mu.Unlock()
	t, ok := r.fields[name]
	return t, ok
}

func (r *countingResolver) callsFor(name types.Name) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[name]
}

func (r *countingResolver) totalCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, n := range r.calls {
		total += n
	}
	return total
}

func lazyRecord(identity string, fields map[types.Name]types.Type) (types.Type, *countingResolver) {
	r := newCountingResolver(identity, fields)
	return types.NewLazyRecord(types.NewLazyTypeProvider(r)), r
}

// recursivePerson builds a lazy record whose Friends field is a table of itself
func recursivePerson(identity string, name types.Type) (types.Type, *countingResolver) {
	person, r := lazyRecord(identity, nil)
	r.fields["Name"] = name
	r.fields["Age"] = types.Number
	r.fields["Friends"] = types.ToTable(person)
	return person, r
}

func parse(text string) types.Type {
	return parser.MustParseType(text)
}
