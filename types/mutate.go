package types

import (
	"fmt"

	"github.com/cottand/fxtype/internal/log"
	set "github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
)

var mutateLogger = log.DefaultLogger.With("section", "types.mutate")

var (
	// ErrPathNotFound means a name along the path does not exist
	ErrPathNotFound = errors.New("path not found")
	// ErrNotAggregate means the path leads to a type without fields
	ErrNotAggregate = errors.New("not an aggregate")
	// ErrFieldNotFound means the field to drop or replace does not exist
	ErrFieldNotFound = errors.New("field not found")
)

// MutationError explains why a structural mutation failed.
// Use errors.Is with ErrPathNotFound, ErrNotAggregate or ErrFieldNotFound to classify it.
type MutationError struct {
	Op   string
	Path Path
	Name Name
	Err  error
}

func (e *MutationError) Error() string {
	at := e.Path.String()
	if at == "" {
		at = "<root>"
	}
	if e.Name == "" {
		return fmt.Sprintf("%s at %s: %v", e.Op, at, e.Err)
	}
	return fmt.Sprintf("%s %s at %s: %v", e.Op, e.Name.Quoted(), at, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }

// rewrite applies edit to the aggregate found at path and rebuilds every aggregate above it.
// Each aggregate on the way is materialized, so lazy ones have all their fields resolved.
func rewrite(t Type, path Path, edit func(fields FieldMap) (FieldMap, error)) (Type, error) {
	agg, ok := t.(aggregate)
	if !ok {
		return nil, ErrNotAggregate
	}
	fields := agg.resolveAll()
	if path.IsRoot() {
		edited, err := edit(fields)
		if err != nil {
			return nil, err
		}
		return newAggregate(agg.isTable(), edited, agg.displayNames()), nil
	}
	name, rest := path.head()
	child, ok := fields.Get(name)
	if !ok {
		return nil, ErrPathNotFound
	}
	newChild, err := rewrite(child, rest, edit)
	if err != nil {
		return nil, err
	}
	return newAggregate(agg.isTable(), fields.With(name, newChild), agg.displayNames()), nil
}

func mutation(op string, t Type, path Path, name Name, edit func(fields FieldMap) (FieldMap, error)) (Type, error) {
	result, err := rewrite(t, path, edit)
	if err != nil {
		mutateLogger.Debug("mutation failed", "op", op, "path", path, "name", name, "type", t, "err", err)
		return t, &MutationError{Op: op, Path: path, Name: name, Err: err}
	}
	return result, nil
}

// Add binds name to field inside the aggregate at path, overwriting an existing field of that name.
// On failure the original type is returned together with a *MutationError.
func Add(t Type, path Path, name Name, field Type) (Type, error) {
	mustBeField(name, field)
	return mutation("add", t, path, name, func(fields FieldMap) (FieldMap, error) {
		return fields.With(name, field), nil
	})
}

// Drop removes name from the aggregate at path, failing with ErrFieldNotFound when it is absent
func Drop(t Type, path Path, name Name) (Type, error) {
	return DropMulti(t, path, name)
}

// DropMulti removes every one of names from the aggregate at path. Repeated names are dropped once.
// It fails without dropping anything when one of them is absent.
func DropMulti(t Type, path Path, names ...Name) (Type, error) {
	var missing Name
	result, err := mutation("drop", t, path, "", func(fields FieldMap) (FieldMap, error) {
		seen := set.New[Name](len(names))
		for _, name := range names {
			if !seen.Insert(name) {
				continue
			}
			if !fields.Has(name) {
				missing = name
				return fields, ErrFieldNotFound
			}
			fields = fields.Without(name)
		}
		return fields, nil
	})
	var mutErr *MutationError
	if errors.As(err, &mutErr) && missing != "" {
		mutErr.Name = missing
	}
	return result, err
}

// SetType replaces the type found at path. The root path replaces t as a whole.
func SetType(t Type, path Path, field Type) (Type, error) {
	if field == nil {
		panic("types: nil type for SetType")
	}
	if path.IsRoot() {
		return field, nil
	}
	name := path.Last()
	return mutation("set", t, path.Parent(), name, func(fields FieldMap) (FieldMap, error) {
		if !fields.Has(name) {
			return fields, ErrFieldNotFound
		}
		return fields.With(name, field), nil
	})
}

// DropAllOfKind removes, at every depth below path, each field whose type is of kind k
func DropAllOfKind(t Type, path Path, k Kind) (Type, error) {
	return DropAllMatching(t, path, func(field Type) bool {
		return field.Kind() == k
	})
}

// DropAllMatching removes, at every depth below path, each field whose type satisfies match.
// It walks into lazy aggregates too, so every field they enumerate gets resolved.
// A lazy aggregate met again inside itself is left lazy, since rewriting it would never end.
func DropAllMatching(t Type, path Path, match func(Type) bool) (Type, error) {
	return mutation("drop-matching", t, path, "", func(fields FieldMap) (FieldMap, error) {
		visiting := set.New[string](0)
		if lazy, ok := TypeAtPath(t, path); ok {
			if l, ok := lazy.(lazyType); ok {
				visiting.Insert(l.provider.Identity())
			}
		}
		return dropMatching(fields, match, visiting), nil
	})
}

func dropMatching(fields FieldMap, match func(Type) bool, visiting *set.Set[string]) FieldMap {
	result := fields
	for name, field := range fields.All() {
		if match(field) {
			result = result.Without(name)
			continue
		}
		agg, ok := field.(aggregate)
		if !ok {
			continue
		}
		var identity string
		if lazy, isLazy := agg.(lazyType); isLazy {
			identity = lazy.provider.Identity()
			if visiting.Contains(identity) {
				continue
			}
			visiting.Insert(identity)
		}
		nested := dropMatching(agg.resolveAll(), match, visiting)
		if identity != "" {
			visiting.Remove(identity)
		}
		result = result.With(name, newAggregate(agg.isTable(), nested, agg.displayNames()))
	}
	return result
}
