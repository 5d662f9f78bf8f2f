package types

import "strconv"

// Kind is the closed set of type classifications
type Kind int

const (
	KindInvalid Kind = iota
	KindUnknown
	KindError
	KindObjNull
	KindBoolean
	KindNumber
	KindString
	KindHyperlink
	KindImage
	KindPenImage
	KindMedia
	KindBlob
	KindGuid
	KindColor
	KindCurrency
	KindDate
	KindTime
	KindDateTime
	KindPolymorphic
	KindUntypedObject
	KindRecord
	KindTable
	KindLazyRecord
	KindLazyTable
	KindEnum
	KindOptionSet
	KindOptionSetValue
	KindAttachment

	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid:        "Invalid",
	KindUnknown:        "Unknown",
	KindError:          "Error",
	KindObjNull:        "ObjNull",
	KindBoolean:        "Boolean",
	KindNumber:         "Number",
	KindString:         "String",
	KindHyperlink:      "Hyperlink",
	KindImage:          "Image",
	KindPenImage:       "PenImage",
	KindMedia:          "Media",
	KindBlob:           "Blob",
	KindGuid:           "Guid",
	KindColor:          "Color",
	KindCurrency:       "Currency",
	KindDate:           "Date",
	KindTime:           "Time",
	KindDateTime:       "DateTime",
	KindPolymorphic:    "Polymorphic",
	KindUntypedObject:  "UntypedObject",
	KindRecord:         "Record",
	KindTable:          "Table",
	KindLazyRecord:     "LazyRecord",
	KindLazyTable:      "LazyTable",
	KindEnum:           "Enum",
	KindOptionSet:      "OptionSet",
	KindOptionSetValue: "OptionSetValue",
	KindAttachment:     "Attachment",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// KindFromString is the inverse of Kind.String
func KindFromString(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return KindInvalid, false
}

// sigils of every kind that has no payload, used by the textual grammar
var kindSigils = map[Kind]byte{
	KindUnknown:       '?',
	KindError:         'e',
	KindInvalid:       'x',
	KindObjNull:       'N',
	KindBoolean:       'b',
	KindNumber:        'n',
	KindString:        's',
	KindHyperlink:     'h',
	KindImage:         'i',
	KindPenImage:      'p',
	KindMedia:         'm',
	KindBlob:          'o',
	KindGuid:          'g',
	KindColor:         'c',
	KindCurrency:      '$',
	KindDate:          'D',
	KindTime:          'T',
	KindDateTime:      'd',
	KindPolymorphic:   'P',
	KindUntypedObject: 'O',
}

var sigilKinds = func() map[byte]Kind {
	m := make(map[byte]Kind, len(kindSigils))
	for k, sigil := range kindSigils {
		m[sigil] = k
	}
	return m
}()

// Sigil returns the single character the textual grammar uses for k.
// ok is false for kinds that carry a payload (aggregates, enums, option sets, attachments).
func (k Kind) Sigil() (sigil byte, ok bool) {
	sigil, ok = kindSigils[k]
	return sigil, ok
}

// KindFromSigil is the inverse of Kind.Sigil
func KindFromSigil(sigil byte) (Kind, bool) {
	k, ok := sigilKinds[sigil]
	return k, ok
}

// IsPrimitive reports whether k is a scalar value kind. Only primitive kinds can back an enum.
func (k Kind) IsPrimitive() bool {
	return k >= KindBoolean && k <= KindDateTime
}

// IsAggregate reports whether k has named fields: records and tables, eager or lazy
func (k Kind) IsAggregate() bool {
	return k >= KindRecord && k <= KindLazyTable
}

func (k Kind) IsLazy() bool {
	return k == KindLazyRecord || k == KindLazyTable
}

func (k Kind) isRecordFamily() bool {
	return k == KindRecord || k == KindLazyRecord
}

func (k Kind) isTableFamily() bool {
	return k == KindTable || k == KindLazyTable
}

func (k Kind) isTemporal() bool {
	return k == KindDate || k == KindTime || k == KindDateTime
}

// isTextual kinds carry their enum constants as strings
func (k Kind) isTextual() bool {
	switch k {
	case KindString, KindHyperlink, KindImage, KindPenImage, KindMedia, KindBlob, KindGuid:
		return true
	}
	return false
}
