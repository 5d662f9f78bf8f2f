package types

type kindPair struct {
	lo, hi Kind
}

func pairOf(a, b Kind) kindPair {
	if b < a {
		a, b = b, a
	}
	return kindPair{lo: a, hi: b}
}

// widenings are the least upper bounds of kinds that do not accept one another,
// or that resolve differently from what Accepts alone would give.
var widenings = map[kindPair]Kind{
	pairOf(KindDate, KindTime):      KindDateTime,
	pairOf(KindImage, KindMedia):    KindHyperlink,
	pairOf(KindPenImage, KindMedia): KindHyperlink,
	pairOf(KindBlob, KindImage):     KindImage,
	pairOf(KindBlob, KindPenImage):  KindImage,
	pairOf(KindBlob, KindMedia):     KindMedia,
}

// Supertype is the least upper bound of a and b, and does not depend on argument order.
//
// ObjNull and Unknown contribute no constraint. Date and Time widen to DateTime, Image and
// PenImage widen to Hyperlink with Media, Blob narrows towards Image or Media. Currency and any
// date or time kind give Error, as does any other pair where neither side accepts the other.
// For aggregates of the same family only the fields present on both sides whose own supertype
// is not Error are kept; failing fields are dropped silently. A record and a table give Error.
func Supertype(a, b Type) Type {
	return newRelation().supertype(a, b)
}

func (r *relation) supertype(a, b Type) Type {
	if b.Kind() < a.Kind() {
		a, b = b, a
	}
	ak, bk := a.Kind(), b.Kind()
	switch {
	case ak == KindObjNull:
		return b
	case bk == KindObjNull:
		return a
	case ak == KindUnknown:
		return b
	case bk == KindUnknown:
		return a
	}
	if Equal(a, b) {
		return a
	}
	if ak == KindError || bk == KindError {
		return Error
	}

	aAgg, aIsAgg := a.(aggregate)
	bAgg, bIsAgg := b.(aggregate)
	if aIsAgg && bIsAgg {
		if !sameFamily(aAgg, bAgg) {
			return Error
		}
		return r.commonSupertype(aAgg, bAgg)
	}

	if k, ok := widenings[pairOf(ak, bk)]; ok {
		return mustPrimitive(k)
	}
	if ak == KindCurrency && bk.isTemporal() || bk == KindCurrency && ak.isTemporal() {
		return Error
	}

	aEnum, aIsEnum := a.(enumType)
	bEnum, bIsEnum := b.(enumType)
	switch {
	case aIsEnum && bIsEnum && aEnum.superkind == bEnum.superkind:
		if r.accepts(a, b) {
			return a
		}
		if r.accepts(b, a) {
			return b
		}
		return mustPrimitive(aEnum.superkind)
	case aIsEnum && bIsEnum:
		return r.supertype(mustPrimitive(aEnum.superkind), mustPrimitive(bEnum.superkind))
	case aIsEnum:
		return r.supertype(mustPrimitive(aEnum.superkind), b)
	case bIsEnum:
		return r.supertype(a, mustPrimitive(bEnum.superkind))
	}

	if aAttachment, ok := a.(attachmentType); ok {
		if bAttachment, ok := b.(attachmentType); ok {
			of := r.supertype(aAttachment.of, bAttachment.of)
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

func (r *relation) commonSupertype(a, b aggregate) Type {
	leave, cycle := r.enter(opSupertype, a, b, false)
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
		merged := r.supertype(aField, bField)
		if merged.Kind() == KindError {
			continue
		}
		fields = fields.With(name, merged)
	}
	return newAggregate(a.isTable(), fields, nil)
}
