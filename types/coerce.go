package types

import (
	set "github.com/hashicorp/go-set/v3"
)

var (
	numericTemporal = []Kind{KindBoolean, KindNumber, KindDate, KindTime, KindDateTime}
	binaryKinds     = []Kind{KindHyperlink, KindImage, KindPenImage, KindMedia, KindBlob}
)

func kinds(groups ...[]Kind) *set.Set[Kind] {
	s := set.New[Kind](8)
	for _, group := range groups {
		s.InsertSlice(group)
	}
	return s
}

// coercions is the implicit conversion table between payload-free kinds, source -> targets.
// It is deliberately not symmetric: Currency never converts to a date or time and nothing
// converts to UntypedObject, while the reverse directions are allowed.
var coercions = map[Kind]*set.Set[Kind]{
	KindInvalid:       kinds([]Kind{KindInvalid}),
	KindBoolean:       kinds(numericTemporal, []Kind{KindCurrency, KindString}),
	KindNumber:        kinds(numericTemporal, []Kind{KindCurrency, KindString}),
	KindCurrency:      kinds([]Kind{KindCurrency, KindNumber, KindBoolean, KindString}),
	KindDate:          kinds(numericTemporal, []Kind{KindString}),
	KindTime:          kinds(numericTemporal, []Kind{KindString}),
	KindDateTime:      kinds(numericTemporal, []Kind{KindString}),
	KindString:        kinds(numericTemporal, binaryKinds, []Kind{KindString, KindCurrency}),
	KindHyperlink:     kinds(binaryKinds, []Kind{KindString}),
	KindImage:         kinds([]Kind{KindImage, KindHyperlink, KindString}),
	KindPenImage:      kinds([]Kind{KindPenImage, KindImage, KindHyperlink, KindString}),
	KindMedia:         kinds([]Kind{KindMedia, KindHyperlink, KindString}),
	KindBlob:          kinds([]Kind{KindBlob, KindImage, KindMedia, KindHyperlink, KindString}),
	KindGuid:          kinds([]Kind{KindGuid, KindString}),
	KindColor:         kinds([]Kind{KindColor}),
	KindUntypedObject: kinds(numericTemporal, []Kind{KindUntypedObject, KindString, KindGuid}),
	KindPolymorphic:   kinds([]Kind{KindPolymorphic, KindRecord, KindLazyRecord}),
}

// CoercesTo reports whether a value of type self can be implicitly converted to target.
// This is a separate table from Accepts: Error only coerces to Error, ObjNull coerces to
// everything but Error and Unknown coerces to everything. Aggregates coerce to aggregates of either
// family when every field of target is present in self and coerces to it.
func CoercesTo(self, target Type) bool {
	return newRelation().coercesTo(self, target)
}

func (r *relation) coercesTo(self, target Type) bool {
	sk, tk := self.Kind(), target.Kind()
	switch sk {
	case KindError:
		return tk == KindError
	case KindObjNull:
		return tk != KindError
	case KindUnknown:
		return true
	}
	if tk == KindUnknown || tk == KindError {
		return false
	}

	switch self := self.(type) {
	case aggregate:
		if targetAgg, ok := target.(aggregate); ok {
			return r.coercesFields(self, targetAgg)
		}
		return tk == KindPolymorphic && !self.isTable()
	case enumType:
		if tk == KindEnum {
			return r.accepts(target, self)
		}
		return r.coercesTo(mustPrimitive(self.superkind), target)
	case optionSetType:
		if self.value {
			return (tk == KindOptionSetValue && Equal(self, target)) ||
				tk == KindString ||
				(tk == KindBoolean && self.info.IsBoolean())
		}
		return tk == KindOptionSet && Equal(self, target)
	case attachmentType:
		targetAttachment, ok := target.(attachmentType)
		return ok && r.coercesTo(self.of, targetAttachment.of)
	case primitiveType:
		targets, ok := coercions[sk]
		return ok && targets.Contains(tk)
	}
	panic("impossible, type switch bug")
}

func (r *relation) coercesFields(self, target aggregate) bool {
	if Equal(self, target) {
		return true
	}
	leave, cycle := r.enter(opCoerces, self, target, true)
	if cycle {
		return true
	}
	defer leave()

	for _, name := range target.fieldNames() {
		if !self.hasField(name) {
			return false
		}
		targetField, found := target.field(name)
		if !found {
			continue
		}
		selfField, found := self.field(name)
		if !found || !r.coercesTo(selfField, targetField) {
			return false
		}
	}
	return true
}
