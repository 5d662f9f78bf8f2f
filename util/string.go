package util

import (
	"iter"
	"strings"
)

// JoinSeq formats each element of elems and joins the results with sep
func JoinSeq[A any](elems iter.Seq[A], sep string, format func(A) string) string {
	sb := &strings.Builder{}
	first := true
	for elem := range elems {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		sb.WriteString(format(elem))
	}
	return sb.String()
}
