package types

import (
	"math"

	"github.com/segmentio/fasthash/fnv1a"
)

// Equal is structural equality. Eager aggregates compare their fields regardless of order;
// lazy aggregates compare provider identities and are never resolved; option sets compare by name.
// Display names are ignored.
func Equal(a, b Type) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a := a.(type) {
	case primitiveType:
		return true
	case aggregateType:
		return a.fields.Equal(b.(aggregateType).fields)
	case lazyType:
		return a.provider.Identity() == b.(lazyType).provider.Identity()
	case enumType:
		other := b.(enumType)
		if a.superkind != other.superkind || a.len() != other.len() {
			return false
		}
		for name, v := range a.all() {
			otherV, ok := other.get(name)
			if !ok || otherV != v {
				return false
			}
		}
		return true
	case optionSetType:
		return a.info.Name() == b.(optionSetType).info.Name()
	case attachmentType:
		return Equal(a.of, b.(attachmentType).of)
	}
	panic("impossible, type switch bug")
}

func (t primitiveType) Hash() uint64 {
	return fnv1a.AddUint64(fnv1a.Init64, uint64(t.kind))
}

func (t aggregateType) Hash() uint64 {
	hash := fnv1a.AddUint64(fnv1a.Init64, uint64(t.Kind()))
	for name, field := range t.fields.All() {
		hash = fnv1a.AddString64(hash, string(name))
		hash = fnv1a.AddUint64(hash, field.Hash())
	}
	return hash
}

func (t lazyType) Hash() uint64 {
	hash := fnv1a.AddUint64(fnv1a.Init64, uint64(t.Kind()))
	return fnv1a.AddString64(hash, t.provider.Identity())
}

func (t enumType) Hash() uint64 {
	hash := fnv1a.AddUint64(fnv1a.Init64, uint64(KindEnum))
	hash = fnv1a.AddUint64(hash, uint64(t.superkind))
	for name, v := range t.all() {
		hash = fnv1a.AddString64(hash, string(name))
		switch v := v.(type) {
		case float64:
			if v == 0 {
				// -0 equals 0
				v = 0
			}
			hash = fnv1a.AddUint64(hash, math.Float64bits(v))
		case string:
			hash = fnv1a.AddString64(hash, v)
		case bool:
			if v {
				hash = fnv1a.AddUint64(hash, 1)
			} else {
				hash = fnv1a.AddUint64(hash, 0)
			}
		}
	}
	return hash
}

func (t optionSetType) Hash() uint64 {
	hash := fnv1a.AddUint64(fnv1a.Init64, uint64(t.Kind()))
	return fnv1a.AddString64(hash, string(t.info.Name()))
}

func (t attachmentType) Hash() uint64 {
	return fnv1a.AddUint64(fnv1a.AddUint64(fnv1a.Init64, uint64(KindAttachment)), t.of.Hash())
}
