package types

import (
	"iter"
	"slices"

	"github.com/cottand/fxtype/util"
)

// Path addresses a possibly nested field inside an aggregate.
// The zero value is the root path.
type Path struct {
	names []Name
}

// Root is the empty path
var Root = Path{}

func NewPath(names ...Name) Path {
	for _, name := range names {
		if !IsValidName(string(name)) {
			panic("types: invalid name in path: " + string(name))
		}
	}
	return Path{names: slices.Clone(names)}
}

func (p Path) IsRoot() bool { return len(p.names) == 0 }
func (p Path) Len() int     { return len(p.names) }
func (p Path) At(i int) Name {
	return p.names[i]
}

// Append returns a new path with name as its last element. p is left untouched.
func (p Path) Append(name Name) Path {
	names := make([]Name, len(p.names), len(p.names)+1)
	copy(names, p.names)
	return Path{names: append(names, name)}
}

func (p Path) Concat(other Path) Path {
	if p.IsRoot() {
		return other
	}
	if other.IsRoot() {
		return p
	}
	return Path{names: slices.Concat(p.names, other.names)}
}

// Parent returns the path without its last element. The parent of the root is the root.
func (p Path) Parent() Path {
	if p.IsRoot() {
		return p
	}
	return Path{names: slices.Clip(p.names[:len(p.names)-1])}
}

// Last panics on the root path
func (p Path) Last() Name {
	return p.names[len(p.names)-1]
}

func (p Path) head() (Name, Path) {
	return p.names[0], Path{names: p.names[1:]}
}

func (p Path) Names() iter.Seq[Name] {
	return slices.Values(p.names)
}

func (p Path) Equal(other Path) bool {
	return slices.Equal(p.names, other.names)
}

// String joins the quoted names with dots; the root prints as the empty string.
func (p Path) String() string {
	return util.JoinSeq(p.Names(), ".", Name.Quoted)
}
