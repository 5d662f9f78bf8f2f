package types

import (
	"fmt"
	"math"

	"github.com/benbjohnson/immutable"
)

var (
	Invalid       Type = primitiveType{kind: KindInvalid}
	Unknown       Type = primitiveType{kind: KindUnknown}
	Error         Type = primitiveType{kind: KindError}
	ObjNull       Type = primitiveType{kind: KindObjNull}
	Boolean       Type = primitiveType{kind: KindBoolean}
	Number        Type = primitiveType{kind: KindNumber}
	String        Type = primitiveType{kind: KindString}
	Hyperlink     Type = primitiveType{kind: KindHyperlink}
	Image         Type = primitiveType{kind: KindImage}
	PenImage      Type = primitiveType{kind: KindPenImage}
	Media         Type = primitiveType{kind: KindMedia}
	Blob          Type = primitiveType{kind: KindBlob}
	Guid          Type = primitiveType{kind: KindGuid}
	Color         Type = primitiveType{kind: KindColor}
	Currency      Type = primitiveType{kind: KindCurrency}
	Date          Type = primitiveType{kind: KindDate}
	Time          Type = primitiveType{kind: KindTime}
	DateTime      Type = primitiveType{kind: KindDateTime}
	Polymorphic   Type = primitiveType{kind: KindPolymorphic}
	UntypedObject Type = primitiveType{kind: KindUntypedObject}

	EmptyRecord Type = aggregateType{table: false}
	EmptyTable  Type = aggregateType{table: true}
)

var primitives = map[Kind]Type{}

func init() {
	for _, t := range []Type{
		Invalid, Unknown, Error, ObjNull, Boolean, Number, String, Hyperlink, Image, PenImage,
		Media, Blob, Guid, Color, Currency, Date, Time, DateTime, Polymorphic, UntypedObject,
	} {
		primitives[t.Kind()] = t
	}
}

// Primitive returns the singleton of a payload-free kind, and false for kinds that need a payload
func Primitive(k Kind) (Type, bool) {
	t, ok := primitives[k]
	return t, ok
}

func mustPrimitive(k Kind) Type {
	t, ok := Primitive(k)
	if !ok {
		panic(fmt.Sprintf("types: %s is not a payload-free kind", k))
	}
	return t
}

func newAggregate(table bool, fields FieldMap, names DisplayNameProvider) Type {
	if fields.Len() == 0 && names == nil {
		if table {
			return EmptyTable
		}
		return EmptyRecord
	}
	return aggregateType{table: table, fields: fields, names: names}
}

func NewRecord(fields FieldMap) Type {
	return newAggregate(false, fields, nil)
}

func NewTable(fields FieldMap) Type {
	return newAggregate(true, fields, nil)
}

// RecordOf is shorthand for NewRecord(NewFieldMap(fields...))
func RecordOf(fields ...Field) Type {
	return NewRecord(NewFieldMap(fields...))
}

// TableOf is shorthand for NewTable(NewFieldMap(fields...))
func TableOf(fields ...Field) Type {
	return NewTable(NewFieldMap(fields...))
}

func NewLazyRecord(provider *LazyTypeProvider) Type {
	if provider == nil {
		panic("types: nil lazy type provider")
	}
	return lazyType{table: false, provider: provider}
}

func NewLazyTable(provider *LazyTypeProvider) Type {
	if provider == nil {
		panic("types: nil lazy type provider")
	}
	return lazyType{table: true, provider: provider}
}

// NewEnum builds an enum over a primitive superkind. Later values replace earlier ones with the same name.
// It panics when superkind is not primitive or a value does not fit it.
func NewEnum(superkind Kind, values ...EnumValue) Type {
	if !superkind.IsPrimitive() {
		panic(fmt.Sprintf("types: enum superkind %s is not primitive", superkind))
	}
	m := immutable.NewSortedMap[Name, any](nameComparer{})
	for _, v := range values {
		if !IsValidName(string(v.Name)) {
			panic("types: invalid enum value name " + string(v.Name))
		}
		if !ValidEnumConstant(superkind, v.Value) {
			panic(fmt.Sprintf("types: %v (%T) is not a valid %s enum constant", v.Value, v.Value, superkind))
		}
		m = m.Set(v.Name, v.Value)
	}
	return enumType{superkind: superkind, values: m}
}

// ValidEnumConstant reports whether value can stand for a member of an enum over superkind.
// Numbers must be finite.
func ValidEnumConstant(superkind Kind, value any) bool {
	switch value := value.(type) {
	case bool:
		return superkind == KindBoolean
	case string:
		return superkind.isTextual()
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return false
		}
		return superkind.IsPrimitive() && superkind != KindBoolean && !superkind.isTextual()
	}
	return false
}

// NewAttachment wraps the shape of an attached record or table
func NewAttachment(of Type) Type {
	if of == nil {
		panic("types: nil attachment payload")
	}
	return attachmentType{of: of}
}

func NewOptionSet(info *OptionSetInfo) Type {
	if info == nil {
		panic("types: nil option set info")
	}
	return optionSetType{value: false, info: info}
}

func NewOptionSetValue(info *OptionSetInfo) Type {
	if info == nil {
		panic("types: nil option set info")
	}
	return optionSetType{value: true, info: info}
}

// ToRecord converts a table (eager or lazy) to the record of its rows.
// Lazy tables keep their provider so no field is resolved. Records are returned as they are.
// It panics when t is not an aggregate.
func ToRecord(t Type) Type {
	switch t := t.(type) {
	case aggregateType:
		return newAggregate(false, t.fields, t.names)
	case lazyType:
		return lazyType{table: false, provider: t.provider, names: t.names}
	}
	panic(fmt.Sprintf("types: ToRecord on non-aggregate %s", t))
}

// ToTable is the inverse of ToRecord
func ToTable(t Type) Type {
	switch t := t.(type) {
	case aggregateType:
		return newAggregate(true, t.fields, t.names)
	case lazyType:
		return lazyType{table: true, provider: t.provider, names: t.names}
	}
	panic(fmt.Sprintf("types: ToTable on non-aggregate %s", t))
}

func IsAggregate(t Type) bool { return t.Kind().IsAggregate() }
func IsPrimitive(t Type) bool { return t.Kind().IsPrimitive() }
func IsLazy(t Type) bool      { return t.Kind().IsLazy() }

// ChildCount is the number of entries at t's own level: fields, enum members or options.
// Lazy aggregates count enumerated names without resolving them.
func ChildCount(t Type) int {
	switch t := t.(type) {
	case aggregate:
		return len(t.fieldNames())
	case enumType:
		return t.len()
	case optionSetType:
		if t.value {
			return 0
		}
		return len(t.info.Options())
	}
	return 0
}

// MaxDepth is the nesting depth of t: 0 for leaves, 1 + the deepest child for eager aggregates.
// A lazy aggregate counts as 1 since measuring it would require resolving every field.
func MaxDepth(t Type) int {
	switch t := t.(type) {
	case aggregateType:
		deepest := 0
		for _, child := range t.fields.All() {
			deepest = max(deepest, MaxDepth(child))
		}
		return 1 + deepest
	case lazyType:
		return 1
	case attachmentType:
		return MaxDepth(t.of)
	case enumType:
		return 1
	case optionSetType:
		if t.value {
			return 0
		}
		return 1
	}
	return 0
}

// FieldType looks up a field of an aggregate (resolving it if lazy) or the option type of an option set
func FieldType(t Type, name Name) (Type, bool) {
	switch t := t.(type) {
	case aggregate:
		return t.field(name)
	case optionSetType:
		if !t.value && t.info.HasOption(name) {
			return NewOptionSetValue(t.info), true
		}
	}
	return nil, false
}

// TypeAtPath walks path from t. The root path yields t itself.
func TypeAtPath(t Type, path Path) (Type, bool) {
	for name := range path.Names() {
		child, ok := FieldType(t, name)
		if !ok {
			return nil, false
		}
		t = child
	}
	return t, true
}

// FieldNames lists the names at t's own level without resolving lazy fields
func FieldNames(t Type) []Name {
	switch t := t.(type) {
	case aggregate:
		return t.fieldNames()
	case enumType:
		names := make([]Name, 0, t.len())
		for name := range t.all() {
			names = append(names, name)
		}
		return names
	case optionSetType:
		if !t.value {
			return t.info.Options()
		}
	}
	return nil
}

// Fields forces and returns every field of an aggregate; false for anything else
func Fields(t Type) (FieldMap, bool) {
	agg, ok := t.(aggregate)
	if !ok {
		return FieldMap{}, false
	}
	return agg.resolveAll(), true
}

// EnumSuperkind returns the primitive kind an enum widens to
func EnumSuperkind(t Type) (Kind, bool) {
	e, ok := t.(enumType)
	if !ok {
		return KindInvalid, false
	}
	return e.superkind, true
}

// EnumValues lists an enum's members in name order
func EnumValues(t Type) []EnumValue {
	e, ok := t.(enumType)
	if !ok {
		return nil
	}
	values := make([]EnumValue, 0, e.len())
	for name, v := range e.all() {
		values = append(values, EnumValue{Name: name, Value: v})
	}
	return values
}

// AttachmentOf returns the payload shape of an attachment
func AttachmentOf(t Type) (Type, bool) {
	a, ok := t.(attachmentType)
	if !ok {
		return nil, false
	}
	return a.of, true
}

// OptionSetOf returns the option set behind an OptionSet or OptionSetValue type
func OptionSetOf(t Type) (*OptionSetInfo, bool) {
	o, ok := t.(optionSetType)
	if !ok {
		return nil, false
	}
	return o.info, true
}

// LazyProviderOf returns the provider backing a lazy aggregate
func LazyProviderOf(t Type) (*LazyTypeProvider, bool) {
	l, ok := t.(lazyType)
	if !ok {
		return nil, false
	}
	return l.provider, true
}
