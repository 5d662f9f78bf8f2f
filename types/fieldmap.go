package types

import (
	"iter"

	"github.com/benbjohnson/immutable"
)

// Field is a single named entry of a FieldMap
type Field struct {
	Name Name
	Type Type
}

// FieldMap is a persistent name -> Type map for one level of an aggregate.
// Iteration is in name order; equality ignores the order fields were added in.
// The zero value is an empty map.
type FieldMap struct {
	m *immutable.SortedMap[Name, Type]
}

// NewFieldMap builds a map from fields. When a name repeats, the last field wins.
func NewFieldMap(fields ...Field) FieldMap {
	m := immutable.NewSortedMap[Name, Type](nameComparer{})
	for _, field := range fields {
		mustBeField(field.Name, field.Type)
		m = m.Set(field.Name, field.Type)
	}
	return FieldMap{m: m}
}

func mustBeField(name Name, t Type) {
	if !IsValidName(string(name)) {
		panic("types: invalid field name " + string(name))
	}
	if t == nil {
		panic("types: nil type for field " + string(name))
	}
}

func (f FieldMap) Len() int {
	if f.m == nil {
		return 0
	}
	return f.m.Len()
}

func (f FieldMap) Get(name Name) (Type, bool) {
	if f.m == nil {
		return nil, false
	}
	return f.m.Get(name)
}

func (f FieldMap) Has(name Name) bool {
	_, ok := f.Get(name)
	return ok
}

// With returns a map where name is bound to t, overwriting any previous binding
func (f FieldMap) With(name Name, t Type) FieldMap {
	mustBeField(name, t)
	m := f.m
	if m == nil {
		m = immutable.NewSortedMap[Name, Type](nameComparer{})
	}
	return FieldMap{m: m.Set(name, t)}
}

// Without returns a map without name. It returns f itself when name is absent.
func (f FieldMap) Without(name Name) FieldMap {
	if !f.Has(name) {
		return f
	}
	return FieldMap{m: f.m.Delete(name)}
}

// All iterates fields in name order
func (f FieldMap) All() iter.Seq2[Name, Type] {
	return func(yield func(Name, Type) bool) {
		if f.m == nil {
			return
		}
		itr := f.m.Iterator()
		for !itr.Done() {
			name, t, _ := itr.Next()
			if !yield(name, t) {
				return
			}
		}
	}
}

// Names returns the field names in order
func (f FieldMap) Names() []Name {
	names := make([]Name, 0, f.Len())
	for name := range f.All() {
		names = append(names, name)
	}
	return names
}

func (f FieldMap) Equal(other FieldMap) bool {
	if f.Len() != other.Len() {
		return false
	}
	for name, t := range f.All() {
		otherT, ok := other.Get(name)
		if !ok || !Equal(t, otherT) {
			return false
		}
	}
	return true
}
