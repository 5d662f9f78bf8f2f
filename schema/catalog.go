package schema

import (
	"io"
	"os"
	"strings"

	"github.com/cottand/fxtype/fxerr"
	"github.com/cottand/fxtype/internal/log"
	"github.com/cottand/fxtype/parser"
	"github.com/cottand/fxtype/types"
	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var logger = log.DefaultLogger.With("section", "schema")

const (
	KindRecord = "record"
	KindTable  = "table"
)

// Definition is one named schema as written in a catalog file.
// Fields map each logical field name to its type in the textual grammar.
type Definition struct {
	Kind         string            `yaml:"kind"`
	Fields       map[string]string `yaml:"fields"`
	DisplayNames map[string]string `yaml:"displayNames"`
}

type document struct {
	Schemas map[string]Definition `yaml:"schemas"`
}

// Catalog is a set of named schemas whose fields are parsed only when first looked up.
// Schemas may refer to each other, or to themselves, with !{Name} and *{Name}.
type Catalog struct {
	definitions map[types.Name]Definition
	schemas     map[types.Name]types.Type
}

var _ parser.SchemaResolver = (*Catalog)(nil)

// Load reads a single catalog document
func Load(r io.Reader) (*Catalog, error) {
	doc, err := decode(r)
	if err != nil {
		return nil, err
	}
	return build(doc.Schemas)
}

// LoadFile reads the catalogs at paths as one. A schema name may only be defined once across all of them.
func LoadFile(paths ...string) (*Catalog, error) {
	definitions := map[string]Definition{}
	for _, path := range paths {
		doc, err := decodeFile(path)
		if err != nil {
			return nil, err
		}
		for name, definition := range doc.Schemas {
			if _, ok := definitions[name]; ok {
				return nil, errors.Errorf("schema '%s' in %s is already defined", name, path)
			}
			definitions[name] = definition
		}
	}
	return build(definitions)
}

func decodeFile(path string) (document, error) {
	f, err := os.Open(path)
	if err != nil {
		return document{}, errors.Wrap(err, "couldn't open schema catalog")
	}
	defer f.Close()

	doc, err := decode(f)
	if err != nil {
		return document{}, errors.Wrapf(err, "in %s", path)
	}
	return doc, nil
}

func decode(r io.Reader) (document, error) {
	var doc document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return document{}, errors.Wrap(err, "couldn't decode yaml schema catalog")
	}
	return doc, nil
}

func build(definitions map[string]Definition) (*Catalog, error) {
	c := &Catalog{
		definitions: make(map[types.Name]Definition, len(definitions)),
		schemas:     make(map[types.Name]types.Type, len(definitions)),
	}
	for rawName, definition := range definitions {
		if !types.IsValidName(rawName) {
			return nil, errors.Errorf("invalid schema name '%s'", rawName)
		}
		name := types.Name(rawName)
		if definition.Kind == "" {
			definition.Kind = KindRecord
		}
		if definition.Kind != KindRecord && definition.Kind != KindTable {
			return nil, errors.Errorf("schema '%s' has kind '%s', expected '%s' or '%s'", name, definition.Kind, KindRecord, KindTable)
		}
		names, err := displayNames(definition)
		if err != nil {
			return nil, errors.Wrapf(err, "schema '%s'", name)
		}
		c.definitions[name] = definition
		c.schemas[name] = types.WithDisplayNames(
			types.NewLazyRecord(types.NewLazyTypeProvider(&resolver{catalog: c, name: name})),
			names,
		)
	}
	if errs := c.Validate(); errs.HasError() {
		logger.Warn("schema catalog has invalid fields", "errors", errs)
		return nil, errors.Wrap(errs, "invalid schema catalog")
	}
	logger.Debug("loaded schema catalog", "schemas", len(c.schemas))
	return c, nil
}

func displayNames(definition Definition) (types.DisplayNameProvider, error) {
	if len(definition.DisplayNames) == 0 {
		return nil, nil
	}
	mapping := make(map[types.Name]types.Name, len(definition.DisplayNames))
	seen := set.New[string](len(definition.DisplayNames))
	for logical, display := range definition.DisplayNames {
		if _, ok := definition.Fields[logical]; !ok {
			return nil, errors.Errorf("display name for unknown field '%s'", logical)
		}
		if !types.IsValidName(display) || !seen.Insert(display) {
			return nil, errors.Errorf("display name '%s' is invalid or used twice", display)
		}
		mapping[types.Name(logical)] = types.Name(display)
	}
	return types.NewDisplayNames(mapping), nil
}

// Validate parses every field of every schema without resolving any lazy type, and
// reports all the errors it finds
func (c *Catalog) Validate() *fxerr.Errors {
	var errs *fxerr.Errors
	for _, name := range c.Names() {
		for field, text := range c.definitions[name].Fields {
			if !types.IsValidName(field) {
				errs = errs.With(fxerr.New(fxerr.Unclassified{
					From: errors.Errorf("schema '%s' has an invalid field name '%s'", name, field),
				}))
				continue
			}
			if _, err := parser.ParseType(text, parser.WithSchemas(c)); err != nil {
				errs = errs.With(asFxError(err))
			}
		}
	}
	return errs
}

func asFxError(err error) fxerr.FxError {
	if fxErr, ok := err.(fxerr.FxError); ok {
		return fxErr
	}
	return fxerr.New(fxerr.Unclassified{From: err})
}

// Names lists every schema in the catalog, in order
func (c *Catalog) Names() []types.Name {
	names := set.NewTreeSet[types.Name](func(a, b types.Name) int {
		return strings.Compare(string(a), string(b))
	})
	for name := range c.schemas {
		names.Insert(name)
	}
	return names.Slice()
}

// Type returns the named schema as a lazy record or table, per its kind
func (c *Catalog) Type(name types.Name) (types.Type, bool) {
	t, ok := c.schemas[name]
	if !ok {
		return nil, false
	}
	if c.definitions[name].Kind == KindTable {
		return types.ToTable(t), true
	}
	return t, true
}

// Schema returns the named schema as a lazy record, as parser.SchemaResolver requires
func (c *Catalog) Schema(name types.Name) (types.Type, bool) {
	t, ok := c.schemas[name]
	return t, ok
}

// Definition returns the schema as it was written in the catalog
func (c *Catalog) Definition(name types.Name) (Definition, bool) {
	d, ok := c.definitions[name]
	return d, ok
}

// resolver parses the field texts of one schema on demand
type resolver struct {
	catalog *Catalog
	name    types.Name
}

func (r *resolver) Identity() string {
	return string(r.name)
}

func (r *resolver) FieldNames() []types.Name {
	fields := r.catalog.definitions[r.name].Fields
	names := make([]types.Name, 0, len(fields))
	for field := range fields {
		if types.IsValidName(field) {
			names = append(names, types.Name(field))
		}
	}
	return names
}

func (r *resolver) ResolveField(name types.Name) (types.Type, bool) {
	text, ok := r.catalog.definitions[r.name].Fields[string(name)]
	if !ok {
		return nil, false
	}
	t, err := parser.ParseType(text, parser.WithSchemas(r.catalog))
	if err != nil {
		// Validate already rejected catalogs like this one
		logger.Error("failed to parse schema field", "schema", r.name, "field", name, "err", err)
		return nil, false
	}
	logger.Debug("resolved schema field", "schema", r.name, "field", name, "type", t)
	return t, true
}
