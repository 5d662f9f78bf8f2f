package types

import (
	"github.com/benbjohnson/immutable"
)

// Union merges two types, e.g. the branches of a conditional. It is symmetric.
//
// Aggregates of the same family keep every field of both sides, merging fields present in both;
// a record and a table give Error. ObjNull yields the other operand unless that is Error.
// Primitives merge to whichever side accepts the other, and to Error when neither does.
// Error is returned rather than raised, and inside an aggregate it only poisons the field it replaces.
func Union(a, b Type) Type {
	return newRelation().union(a, b)
}

func (r *relation) union(a, b Type) Type {
	ak, bk := a.Kind(), b.Kind()
	switch {
	case ak == KindObjNull && bk != KindError:
		return b
	case bk == KindObjNull && ak != KindError:
		return a
	case ak == KindError || bk == KindError:
		return Error
	case ak == KindUnknown:
		return b
	case bk == KindUnknown:
		return a
	}
	if Equal(a, b) {
		return a
	}

	aAgg, aIsAgg := a.(aggregate)
	bAgg, bIsAgg := b.(aggregate)
	if aIsAgg && bIsAgg {
		if !sameFamily(aAgg, bAgg) {
			return Error
		}
		return r.unionFields(aAgg, bAgg)
	}

	if aEnum, ok := a.(enumType); ok {
		if bEnum, ok := b.(enumType); ok {
			return unionEnums(aEnum, bEnum)
		}
	}
	if aAttachment, ok := a.(attachmentType); ok {
		if bAttachment, ok := b.(attachmentType); ok {
			of := r.union(aAttachment.of, bAttachment.of)
			if of.Kind() == KindError {
				return Error
			}
			return NewAttachment(of)
		}
	}

	if r.accepts(a, b) {
		return a
	}
	if r.accepts(b, a) {
		return b
	}
	return Error
}

func (r *relation) unionFields(a, b aggregate) Type {
	leave, cycle := r.enter(opUnion, a, b, false)
	if cycle {
		return Error
	}
	defer leave()

	fields := NewFieldMap()
	for _, name := range unionNames(a, b) {
		aField, inA := a.field(name)
		bField, inB := b.field(name)
		switch {
		case inA && inB:
			fields = fields.With(name, r.union(aField, bField))
		case inA:
			fields = fields.With(name, aField)
		case inB:
			fields = fields.With(name, bField)
		}
	}
	return newAggregate(a.isTable(), fields, nil)
}

// unionEnums merges the members of two enums over the same superkind.
// A name bound to different constants on each side cannot be represented and gives Error.
func unionEnums(a, b enumType) Type {
	if a.superkind != b.superkind {
		return Error
	}
	values := a.values
	for name, v := range b.all() {
		if existing, ok := a.get(name); ok {
			if existing != v {
				return Error
			}
			continue
		}
		values = values.Set(name, v)
	}
	return enumType{superkind: a.superkind, values: values}
}

// Intersection keeps what two types have in common.
//
// Aggregates of the same family keep the fields present in both whose own intersection is not
// Error; an empty result is a valid empty aggregate. A record and a table give Error.
// Primitives intersect to the narrower side, and to Error when neither accepts the other.
// Error poisons the result, so a field that is Error on only one side is dropped like any other
// incompatible field. Unknown yields the other operand and ObjNull intersects to ObjNull.
func Intersection(a, b Type) Type {
	return newRelation().intersection(a, b)
}

func (r *relation) intersection(a, b Type) Type {
	ak, bk := a.Kind(), b.Kind()
	switch {
	case ak == KindError || bk == KindError:
		return Error
	case ak == KindUnknown:
		return b
	case bk == KindUnknown:
		return a
	case ak == KindObjNull || bk == KindObjNull:
		return ObjNull
	}
	if Equal(a, b) {
		return a
	}
	aAgg, aIsAgg := a.(aggregate)
	bAgg, bIsAgg := b.(aggregate)
	if aIsAgg && bIsAgg {
		if !sameFamily(aAgg, bAgg) {
			return Error
		}
		return r.intersectFields(aAgg, bAgg)
	}

	if aEnum, ok := a.(enumType); ok {
		if bEnum, ok := b.(enumType); ok {
			return intersectEnums(aEnum, bEnum)
		}
	}
	if aAttachment, ok := a.(attachmentType); ok {
		if bAttachment, ok := b.(attachmentType); ok {
			of := r.intersection(aAttachment.of, bAttachment.of)
			if of.Kind() == KindError {
				return Error
			}
			return NewAttachment(of)
		}
	}

	if r.accepts(a, b) {
		return b
	}
	if r.accepts(b, a) {
		return a
	}
	return Error
}

func (r *relation) intersectFields(a, b aggregate) Type {
	leave, cycle := r.enter(opIntersection, a, b, false)
	if cycle {
		return Error
	}
	defer leave()

	fields := NewFieldMap()
	for _, name := range commonNames(a, b) {
		aField, inA := a.field(name)
		bField, inB := b.field(name)
		if !inA || !inB {
			continue
		}
		merged := r.intersection(aField, bField)
		if merged.Kind() == KindError && (aField.Kind() != KindError || bField.Kind() != KindError) {
			continue
		}
		fields = fields.With(name, merged)
	}
	return newAggregate(a.isTable(), fields, nil)
}

func intersectEnums(a, b enumType) Type {
	if a.superkind != b.superkind {
		return Error
	}
	values := immutable.NewSortedMap[Name, any](nameComparer{})
	for name, v := range a.all() {
		if other, ok := b.get(name); ok && other == v {
			values = values.Set(name, v)
		}
	}
	return enumType{superkind: a.superkind, values: values}
}
