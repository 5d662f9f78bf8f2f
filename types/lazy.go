package types

import (
	"slices"
	"sync"

	"github.com/cottand/fxtype/internal/log"
	set "github.com/hashicorp/go-set/v3"
	"golang.org/x/sync/singleflight"
)

var lazyLogger = log.DefaultLogger.With("section", "types.lazy")

// Resolver is implemented by schema owners to expose fields that are expensive to enumerate,
// hosted elsewhere, or refer back to their own schema.
type Resolver interface {
	// Identity distinguishes schemas. Two lazy types are equal exactly when their identities are,
	// so it must be defined by the owner and never derived from field contents.
	Identity() string
	// FieldNames lists every field the schema can resolve
	FieldNames() []Name
	// ResolveField returns the type of a field. It must not query its own provider for the same name.
	ResolveField(name Name) (Type, bool)
}

type resolution struct {
	t     Type
	found bool
}

// LazyTypeProvider memoizes a Resolver. The first resolution of each name, found or not,
// is cached for the lifetime of the provider and later lookups never call the resolver again.
// It is safe for concurrent use: concurrent first lookups of the same name share one resolver call.
type LazyTypeProvider struct {
	resolver Resolver
	identity string

	namesOnce sync.Once
	names     []Name
	nameSet   *set.Set[Name]

	mu       sync.RWMutex
	cache    map[Name]resolution
	inflight singleflight.Group
}

func NewLazyTypeProvider(resolver Resolver) *LazyTypeProvider {
	if resolver == nil {
		panic("types: nil resolver")
	}
	return &LazyTypeProvider{
		resolver: resolver,
		identity: resolver.Identity(),
		cache:    make(map[Name]resolution),
	}
}

func (p *LazyTypeProvider) Identity() string { return p.identity }

func (p *LazyTypeProvider) enumerate() {
	p.namesOnce.Do(func() {
		p.nameSet = set.From(p.resolver.FieldNames())
		p.names = p.nameSet.Slice()
		slices.SortFunc(p.names, compareNames)
	})
}

// FieldNames lists the names the resolver can provide, in order, without resolving any of them
func (p *LazyTypeProvider) FieldNames() []Name {
	p.enumerate()
	return slices.Clone(p.names)
}

// HasField reports whether name is enumerated, without resolving it
func (p *LazyTypeProvider) HasField(name Name) bool {
	p.enumerate()
	return p.nameSet.Contains(name)
}

func (p *LazyTypeProvider) cached(name Name) (resolution, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	r, ok := p.cache[name]
	return r, ok
}

// TryGetFieldType resolves name, calling the resolver at most once per name for the life of p
func (p *LazyTypeProvider) TryGetFieldType(name Name) (Type, bool) {
	if r, ok := p.cached(name); ok {
		return r.t, r.found
	}
	v, _, _ := p.inflight.Do(string(name), func() (any, error) {
		// a call that finished between our miss and Do already stored the answer
		if r, ok := p.cached(name); ok {
			return r, nil
		}
		t, found := p.resolver.ResolveField(name)
		r := resolution{t: t, found: found && t != nil}
		if !r.found {
			r.t = nil
		}

		p.mu.Lock()
		if existing, ok := p.cache[name]; ok {
			r = existing
		} else {
			p.cache[name] = r
		}
		p.mu.Unlock()

		lazyLogger.Debug("resolved lazy field", "provider", p.identity, "field", name, "found", r.found)
		return r, nil
	})
	r := v.(resolution)
	return r.t, r.found
}

// ResolveAll resolves every enumerated name and returns the fields that were found
func (p *LazyTypeProvider) ResolveAll() FieldMap {
	fields := NewFieldMap()
	for _, name := range p.FieldNames() {
		if t, ok := p.TryGetFieldType(name); ok {
			fields = fields.With(name, t)
		}
	}
	return fields
}

// ResolvedCount is the number of names whose resolution is cached
func (p *LazyTypeProvider) ResolvedCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.cache)
}
