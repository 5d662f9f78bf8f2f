package types

// primitiveWidenings lists, per kind, the other kinds whose values it accepts.
// The table is closed under transitivity.
var primitiveWidenings = map[Kind][]Kind{
	KindNumber:    {KindCurrency},
	KindString:    {KindHyperlink, KindGuid, KindImage, KindPenImage, KindMedia, KindBlob},
	KindHyperlink: {KindImage, KindPenImage, KindMedia, KindBlob},
	KindImage:     {KindPenImage},
	KindDateTime:  {KindDate, KindTime},
}

func acceptsKind(self, other Kind) bool {
	if self == other {
		return true
	}
	for _, k := range primitiveWidenings[self] {
		if k == other {
			return true
		}
	}
	return false
}

// Accepts reports whether a value of type other can be used where self is expected.
//
// Error accepts everything and everything accepts Unknown and ObjNull; Unknown only accepts itself.
// Aggregates use width subtyping: every field of self must be present in other and accept the
// corresponding field, while fields only in other are ignored. Records never accept tables or
// the other way around.
//
// With lazy aggregates, only the names enumerated by self drive resolution, presence in other is
// checked before anything is resolved, and the comparison stops at the first mismatching field.
// A field of a lazy self that is missing from other is therefore a mismatch without resolving it.
func Accepts(self, other Type) bool {
	return newRelation().accepts(self, other)
}

func (r *relation) accepts(self, other Type) bool {
	sk, otherKind := self.Kind(), other.Kind()
	switch {
	case sk == KindError:
		return true
	case otherKind == KindUnknown:
		return true
	case sk == KindUnknown:
		return false
	case otherKind == KindObjNull:
		return true
	}

	switch self := self.(type) {
	case aggregate:
		otherAgg, isAgg := other.(aggregate)
		if !isAgg || !sameFamily(self, otherAgg) {
			return false
		}
		return r.acceptsFields(self, otherAgg)
	case enumType:
		otherEnum, isEnum := other.(enumType)
		if !isEnum || otherEnum.superkind != self.superkind {
			return false
		}
		for name, v := range otherEnum.all() {
			selfV, found := self.get(name)
			if !found || selfV != v {
				return false
			}
		}
		return true
	case optionSetType:
		return Equal(self, other)
	case attachmentType:
		otherAttachment, isAttachment := other.(attachmentType)
		return isAttachment && r.accepts(self.of, otherAttachment.of)
	case primitiveType:
		switch other := other.(type) {
		case primitiveType:
			if sk == KindPolymorphic {
				return otherKind == KindPolymorphic
			}
			return acceptsKind(sk, otherKind)
		case enumType:
			return sk.IsPrimitive() && acceptsKind(sk, other.superkind)
		case aggregate:
			return sk == KindPolymorphic && !other.isTable()
		}
		return false
	}
	panic("impossible, type switch bug")
}

func (r *relation) acceptsFields(self, other aggregate) bool {
	if Equal(self, other) {
		return true
	}
	leave, cycle := r.enter(opAccepts, self, other, true)
	if cycle {
		// assume the pair holds: any real mismatch shows up on a finite path
		return true
	}
	defer leave()

	_, selfLazy := self.(lazyType)
	for _, name := range self.fieldNames() {
		if !other.hasField(name) {
			if selfLazy {
				return false
			}
			selfField, _ := self.field(name)
			if selfField.Kind() != KindObjNull {
				return false
			}
			continue
		}
		selfField, found := self.field(name)
		if !found {
			// enumerated but unresolvable: the schema owner does not constrain it
			continue
		}
		otherField, found := other.field(name)
		if !found {
			if selfField.Kind() != KindObjNull {
				return false
			}
			continue
		}
		if !r.accepts(selfField, otherField) {
			return false
		}
	}
	return true
}
