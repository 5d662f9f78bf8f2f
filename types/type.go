package types

import (
	"fmt"
	"iter"

	"github.com/benbjohnson/immutable"
)

// Type is an immutable structural type descriptor.
// It is a closed sum type: every implementation lives in this package, one per payload shape,
// and algebra functions switch exhaustively over Kind.
type Type interface {
	fmt.Stringer
	Kind() Kind
	// Hash is consistent with Equal
	Hash() uint64

	isType()
}

var (
	_ Type = primitiveType{}
	_ Type = aggregateType{}
	_ Type = lazyType{}
	_ Type = enumType{}
	_ Type = optionSetType{}
	_ Type = attachmentType{}

	_ aggregate = aggregateType{}
	_ aggregate = lazyType{}
)

// primitiveType covers every kind without a payload, including the Error/Unknown/Invalid/ObjNull sentinels
type primitiveType struct {
	kind Kind
}

func (t primitiveType) Kind() Kind { return t.kind }
func (primitiveType) isType()      {}

// aggregate is implemented by records and tables, eager or lazy
type aggregate interface {
	Type
	isTable() bool
	// fieldNames lists this level's names without resolving any of them
	fieldNames() []Name
	hasField(name Name) bool
	// field may trigger lazy resolution
	field(name Name) (Type, bool)
	// resolveAll forces every enumerated field
	resolveAll() FieldMap
	displayNames() DisplayNameProvider
}

// aggregateType is an eager record or table
type aggregateType struct {
	table  bool
	fields FieldMap
	names  DisplayNameProvider
}

func (t aggregateType) Kind() Kind {
	if t.table {
		return KindTable
	}
	return KindRecord
}
func (aggregateType) isType()                             {}
func (t aggregateType) isTable() bool                     { return t.table }
func (t aggregateType) fieldNames() []Name                { return t.fields.Names() }
func (t aggregateType) hasField(name Name) bool           { return t.fields.Has(name) }
func (t aggregateType) field(name Name) (Type, bool)      { return t.fields.Get(name) }
func (t aggregateType) resolveAll() FieldMap              { return t.fields }
func (t aggregateType) displayNames() DisplayNameProvider { return t.names }

// lazyType is a record or table whose fields come from a LazyTypeProvider on demand
type lazyType struct {
	table    bool
	provider *LazyTypeProvider
	names    DisplayNameProvider
}

func (t lazyType) Kind() Kind {
	if t.table {
		return KindLazyTable
	}
	return KindLazyRecord
}
func (lazyType) isType()                                {}
func (t lazyType) isTable() bool                        { return t.table }
func (t lazyType) fieldNames() []Name                   { return t.provider.FieldNames() }
func (t lazyType) hasField(name Name) bool              { return t.provider.HasField(name) }
func (t lazyType) field(name Name) (Type, bool)         { return t.provider.TryGetFieldType(name) }
func (t lazyType) resolveAll() FieldMap                 { return t.provider.ResolveAll() }
func (t lazyType) displayNames() DisplayNameProvider    { return t.names }

// EnumValue is one named constant of an enum.
// Value is a float64 for numeric and temporal superkinds, a bool for Boolean and a string for textual ones.
type EnumValue struct {
	Name  Name
	Value any
}

type enumType struct {
	superkind Kind
	values    *immutable.SortedMap[Name, any]
}

func (enumType) Kind() Kind { return KindEnum }
func (enumType) isType()    {}

func (t enumType) len() int {
	if t.values == nil {
		return 0
	}
	return t.values.Len()
}

func (t enumType) get(name Name) (any, bool) {
	if t.values == nil {
		return nil, false
	}
	return t.values.Get(name)
}

func (t enumType) all() iter.Seq2[Name, any] {
	return func(yield func(Name, any) bool) {
		if t.values == nil {
			return
		}
		itr := t.values.Iterator()
		for !itr.Done() {
			name, value, _ := itr.Next()
			if !yield(name, value) {
				return
			}
		}
	}
}

// optionSetType is both OptionSet (the set itself) and OptionSetValue (one of its options)
type optionSetType struct {
	value bool
	info  *OptionSetInfo
}

func (t optionSetType) Kind() Kind {
	if t.value {
		return KindOptionSetValue
	}
	return KindOptionSet
}
func (optionSetType) isType() {}

type attachmentType struct {
	of Type
}

func (attachmentType) Kind() Kind { return KindAttachment }
func (attachmentType) isType()    {}
