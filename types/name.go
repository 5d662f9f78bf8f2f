package types

import (
	"fmt"
	"strings"
)

// Name is a case-sensitive identifier for a field, enum member or option.
type Name string

// NewName panics when s is not a valid Name
func NewName(s string) Name {
	if !IsValidName(s) {
		panic(fmt.Sprintf("types: invalid name %q", s))
	}
	return Name(s)
}

// IsValidName reports whether s can be used as a Name: it must contain something other than whitespace.
func IsValidName(s string) bool {
	return strings.TrimSpace(s) != ""
}

func (n Name) String() string { return string(n) }

func compareNames(a, b Name) int {
	return strings.Compare(string(a), string(b))
}

// nameComparer orders names for immutable.SortedMap
type nameComparer struct{}

func (nameComparer) Compare(a, b Name) int { return compareNames(a, b) }

// IsIdentifier reports whether n can be printed without quotes
func (n Name) IsIdentifier() bool {
	if n == "" {
		return false
	}
	for i, r := range n {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// Quoted returns n as written in the textual grammar: bare when it is an identifier,
// otherwise single-quoted with embedded quotes doubled.
func (n Name) Quoted() string {
	if n.IsIdentifier() {
		return string(n)
	}
	return "'" + strings.ReplaceAll(string(n), "'", "''") + "'"
}
