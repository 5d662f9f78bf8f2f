package types

import (
	set "github.com/hashicorp/go-set/v3"
)

// OptionSetInfo describes a host-defined option set. Option set types compare by Name only,
// the same way lazy aggregates compare by provider identity.
type OptionSetInfo struct {
	name    Name
	options *set.TreeSet[Name]
	boolean bool
}

func NewOptionSetInfo(name Name, options ...Name) *OptionSetInfo {
	if !IsValidName(string(name)) {
		panic("types: invalid option set name " + string(name))
	}
	opts := set.NewTreeSet[Name](compareNames)
	for _, option := range options {
		if !IsValidName(string(option)) {
			panic("types: invalid option name " + string(option))
		}
		opts.Insert(option)
	}
	return &OptionSetInfo{name: name, options: opts}
}

// NewBooleanOptionSetInfo builds a two-valued option set backed by a boolean, which also coerces to Boolean
func NewBooleanOptionSetInfo(name Name, trueOption, falseOption Name) *OptionSetInfo {
	info := NewOptionSetInfo(name, trueOption, falseOption)
	info.boolean = true
	return info
}

func (o *OptionSetInfo) Name() Name { return o.name }

func (o *OptionSetInfo) IsBoolean() bool { return o.boolean }

// Options returns the option names in order
func (o *OptionSetInfo) Options() []Name {
	return o.options.Slice()
}

func (o *OptionSetInfo) HasOption(name Name) bool {
	return o.options.Contains(name)
}
