package types

import (
	set "github.com/hashicorp/go-set/v3"
)

type relationOp string

const (
	opAccepts      relationOp = "accepts"
	opCoerces      relationOp = "coerces"
	opUnion        relationOp = "union"
	opIntersection relationOp = "intersection"
	opSupertype    relationOp = "supertype"
)

// lazyPair identifies a comparison between two lazy aggregates that is in progress
type lazyPair struct {
	op       relationOp
	lhs, rhs string
}

func (p lazyPair) Hash() string {
	return string(p.op) + "\x00" + p.lhs + "\x00" + p.rhs
}

// relation carries the state of one top-level algebra call.
// Two different lazy schemas can refer to each other (or themselves) forever, so every pair of
// lazy aggregates being compared is recorded; meeting the same pair again is a cycle.
type relation struct {
	inProgress *set.HashSet[lazyPair, string]
}

func newRelation() *relation {
	return &relation{inProgress: set.NewHashSet[lazyPair, string](4)}
}

// enter records that op is comparing a and b. It returns cycle = true when the same pair is
// already being compared further up; otherwise leave must be called once the comparison is done.
// Pairs are only tracked when both sides are lazy, since an eager side always bottoms out.
// Symmetric operations pass ordered = false so that (a, b) and (b, a) are the same pair.
func (r *relation) enter(op relationOp, a, b Type, ordered bool) (leave func(), cycle bool) {
	la, aLazy := a.(lazyType)
	lb, bLazy := b.(lazyType)
	if !aLazy || !bLazy {
		return func() {}, false
	}
	pair := lazyPair{op: op, lhs: la.provider.Identity(), rhs: lb.provider.Identity()}
	if !ordered && pair.rhs < pair.lhs {
		pair.lhs, pair.rhs = pair.rhs, pair.lhs
	}
	if !r.inProgress.Insert(pair) {
		return nil, true
	}
	return func() { r.inProgress.Remove(pair) }, false
}

// sameFamily reports whether two aggregates are both records or both tables
func sameFamily(a, b aggregate) bool {
	return a.isTable() == b.isTable()
}

// unionNames returns the names of a and b in order, without resolving anything
func unionNames(a, b aggregate) []Name {
	names := set.NewTreeSet[Name](compareNames)
	names.InsertSlice(a.fieldNames())
	names.InsertSlice(b.fieldNames())
	return names.Slice()
}

// commonNames returns the names present in both a and b, in order
func commonNames(a, b aggregate) []Name {
	var names []Name
	for _, name := range a.fieldNames() {
		if b.hasField(name) {
			names = append(names, name)
		}
	}
	return names
}
