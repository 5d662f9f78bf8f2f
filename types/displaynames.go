package types

import "fmt"

// DisplayNameProvider maps the logical field names used for typing to the names shown to users.
// It never takes part in equality or any algebra operation.
type DisplayNameProvider interface {
	DisplayName(logical Name) (Name, bool)
	LogicalName(display Name) (Name, bool)
}

// DisplayNames is a map-backed DisplayNameProvider
type DisplayNames struct {
	toDisplay map[Name]Name
	toLogical map[Name]Name
}

var _ DisplayNameProvider = (*DisplayNames)(nil)

// NewDisplayNames takes logical -> display pairs. It panics when two logical names share a display name.
func NewDisplayNames(logicalToDisplay map[Name]Name) *DisplayNames {
	d := &DisplayNames{
		toDisplay: make(map[Name]Name, len(logicalToDisplay)),
		toLogical: make(map[Name]Name, len(logicalToDisplay)),
	}
	for logical, display := range logicalToDisplay {
		if other, ok := d.toLogical[display]; ok {
			panic(fmt.Sprintf("types: display name %q used by both %q and %q", display, other, logical))
		}
		d.toDisplay[logical] = display
		d.toLogical[display] = logical
	}
	return d
}

func (d *DisplayNames) DisplayName(logical Name) (Name, bool) {
	n, ok := d.toDisplay[logical]
	return n, ok
}

func (d *DisplayNames) LogicalName(display Name) (Name, bool) {
	n, ok := d.toLogical[display]
	return n, ok
}

// WithDisplayNames attaches names to an aggregate. Other types are returned unchanged.
func WithDisplayNames(t Type, names DisplayNameProvider) Type {
	switch t := t.(type) {
	case aggregateType:
		return aggregateType{table: t.table, fields: t.fields, names: names}
	case lazyType:
		return lazyType{table: t.table, provider: t.provider, names: names}
	}
	return t
}

// DisplayNamesOf returns the provider attached to an aggregate, if any
func DisplayNamesOf(t Type) (DisplayNameProvider, bool) {
	agg, ok := t.(aggregate)
	if !ok || agg.displayNames() == nil {
		return nil, false
	}
	return agg.displayNames(), true
}

// FieldByDisplayName resolves a user-facing name to the logical field and its type.
// Logical names are accepted too, so callers need not know whether a provider is attached.
func FieldByDisplayName(t Type, display Name) (Name, Type, bool) {
	agg, ok := t.(aggregate)
	if !ok {
		return "", nil, false
	}
	if names := agg.displayNames(); names != nil {
		if logical, ok := names.LogicalName(display); ok {
			if ft, ok := agg.field(logical); ok {
				return logical, ft, true
			}
		}
	}
	if ft, ok := agg.field(display); ok {
		return display, ft, true
	}
	return "", nil, false
}
