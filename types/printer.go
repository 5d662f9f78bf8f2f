package types

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/cottand/fxtype/util"
)

func (t primitiveType) String() string {
	sigil, ok := t.kind.Sigil()
	if !ok {
		panic(fmt.Sprintf("types: no sigil for primitive kind %s", t.kind))
	}
	return string(sigil)
}

func aggregateOpener(table bool) string {
	if table {
		return "*"
	}
	return "!"
}

func writeFields(sb *strings.Builder, fields iter.Seq2[Name, Type]) {
	sb.WriteByte('[')
	first := true
	for name, t := range fields {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(name.Quoted())
		sb.WriteByte(':')
		sb.WriteString(t.String())
	}
	sb.WriteByte(']')
}

// String prints fields in logical name order, e.g. ![A:n, B:*[C:s]]
func (t aggregateType) String() string {
	sb := &strings.Builder{}
	sb.WriteString(aggregateOpener(t.table))
	writeFields(sb, t.fields.All())
	return sb.String()
}

// String prints the provider identity rather than the fields, so printing never resolves anything
func (t lazyType) String() string {
	return aggregateOpener(t.table) + "{" + Name(t.provider.Identity()).Quoted() + "}"
}

func (t enumType) String() string {
	sigil, _ := t.superkind.Sigil()
	sb := &strings.Builder{}
	sb.WriteByte('%')
	sb.WriteByte(sigil)
	sb.WriteByte('[')
	first := true
	for name, v := range t.all() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(name.Quoted())
		sb.WriteByte(':')
		sb.WriteString(FormatEnumConstant(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

// FormatEnumConstant writes an enum member's value as an enum literal
func FormatEnumConstant(v any) string {
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	}
	panic(fmt.Sprintf("types: %T is not an enum constant", v))
}

func (t optionSetType) String() string {
	opener := "L"
	if t.value {
		opener = "l"
	}
	return opener + "{" + t.info.name.Quoted() + "}[" + util.JoinSeq(t.info.options.Items(), ", ", Name.Quoted) + "]"
}

func (t attachmentType) String() string {
	return "A" + t.of.String()
}
