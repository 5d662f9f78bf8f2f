package parser

import (
	"github.com/cottand/fxtype/fxerr"
	"github.com/cottand/fxtype/internal/log"
	"github.com/cottand/fxtype/types"
	"github.com/cottand/fxtype/util"
	"github.com/hashicorp/go-set/v3"
)

var logger = log.DefaultLogger.With("section", "parser")

// SchemaResolver turns the name in a lazy reference like !{Name} into a lazy record.
// The parser converts it to a table itself for *{Name}.
type SchemaResolver interface {
	Schema(name types.Name) (types.Type, bool)
}

type options struct {
	schemas SchemaResolver
}

type Option func(*options)

// WithSchemas lets the parser resolve !{Name} and *{Name}. Without it, lazy references fail with fxerr.UnknownSchema.
func WithSchemas(schemas SchemaResolver) Option {
	return func(o *options) {
		o.schemas = schemas
	}
}

// ParseType reads one type written in the textual grammar, e.g. ![A:n, B:*[C:s]].
// The whole input must be consumed; surrounding whitespace is ignored.
func ParseType(text string, opts ...Option) (types.Type, error) {
	p := newParser(text, opts)
	t, err := p.parseType()
	if err == nil {
		p.skipSpace()
		if !p.atEOF() {
			err = fxerr.New(fxerr.NewTrailingInput{
				Span: fxerr.Span{Start: p.pos, Stop: len(p.text)},
				Rest: p.text[p.pos:],
			})
		}
	}
	if err != nil {
		logger.Debug("failed to parse type", "text", text, "err", err)
		return nil, err
	}
	return t, nil
}

// MustParseType is ParseType for fixtures: it panics on malformed input
func MustParseType(text string, opts ...Option) types.Type {
	t, err := ParseType(text, opts...)
	if err != nil {
		panic(fxerr.FormatInSource(err.(fxerr.FxError), text))
	}
	return t
}

// ParsePath reads dot-separated names such as A.'B c'.D. The empty string is the root path.
func ParsePath(text string) (types.Path, error) {
	p := newParser(text, nil)
	p.skipSpace()
	if p.atEOF() {
		return types.Root, nil
	}
	var names []types.Name
	for {
		name, err := p.parseName()
		if err != nil {
			logger.Debug("failed to parse path", "text", text, "err", err)
			return types.Root, err
		}
		names = append(names, name)
		p.skipSpace()
		if p.atEOF() {
			return types.NewPath(names...), nil
		}
		if !p.consume('.') {
			return types.Root, p.unexpected("'.'")
		}
		p.skipSpace()
	}
}

type parser struct {
	scanner
	opts options
	// offsets of the brackets currently open, innermost last
	open util.Stack[int]
}

func newParser(text string, opts []Option) *parser {
	p := &parser{scanner: scanner{text: text}}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// unexpected reports input that does not match expected. Running out of input inside
// a bracket is reported against the innermost bracket that was left open.
func (p *parser) unexpected(expected string) fxerr.FxError {
	if p.atEOF() {
		if start, ok := p.open.Peek(); ok {
			return fxerr.New(fxerr.NewUnterminatedList{
				Span: fxerr.Span{Start: start, Stop: len(p.text)},
				Open: p.text[start : start+1],
			})
		}
		return fxerr.New(fxerr.NewSyntax{Span: fxerr.At(p.pos), Expected: expected})
	}
	return fxerr.New(fxerr.NewSyntax{
		Span:     fxerr.At(p.pos),
		Expected: expected,
		Found:    string(p.text[p.pos]),
	})
}

func (p *parser) expect(c byte) fxerr.FxError {
	p.skipSpace()
	if !p.consume(c) {
		return p.unexpected("'" + string(c) + "'")
	}
	return nil
}

func (p *parser) parseType() (types.Type, fxerr.FxError) {
	p.skipSpace()
	if p.atEOF() {
		return nil, p.unexpected("a type")
	}
	start := p.pos
	c := p.next()
	switch c {
	case '!', '*':
		table := c == '*'
		p.skipSpace()
		if p.peekIs('{') {
			return p.parseLazy(start, table)
		}
		fields, err := p.parseFields()
		if err != nil {
			return nil, err
		}
		if table {
			return types.NewTable(fields), nil
		}
		return types.NewRecord(fields), nil
	case '%':
		return p.parseEnum()
	case 'L', 'l':
		return p.parseOptionSet(c == 'l')
	case 'A':
		of, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return types.NewAttachment(of), nil
	}
	if k, ok := types.KindFromSigil(c); ok {
		t, _ := types.Primitive(k)
		return t, nil
	}
	return nil, fxerr.New(fxerr.NewUnknownSigil{Span: fxerr.At(start), Sigil: string(c)})
}

// parseList reads '[' entry (',' entry)* ']' or '[' ']', calling entry once per element
func (p *parser) parseList(entry func() fxerr.FxError) fxerr.FxError {
	if err := p.expect('['); err != nil {
		return err
	}
	p.open.Push(p.pos - 1)
	defer p.open.Pop()

	p.skipSpace()
	if p.consume(']') {
		return nil
	}
	for {
		if err := entry(); err != nil {
			return err
		}
		p.skipSpace()
		switch {
		case p.consume(','):
			p.skipSpace()
		case p.consume(']'):
			return nil
		default:
			return p.unexpected("',' or ']'")
		}
	}
}

// parseListName reads a name that must not repeat within the same list
func (p *parser) parseListName(seen *set.Set[types.Name]) (types.Name, fxerr.FxError) {
	start := p.pos
	name, err := p.parseName()
	if err != nil {
		return "", err
	}
	if !seen.Insert(name) {
		return "", fxerr.New(fxerr.NewDuplicateField{
			Span: fxerr.Span{Start: start, Stop: p.pos},
			Name: string(name),
		})
	}
	return name, nil
}

func (p *parser) parseFields() (types.FieldMap, fxerr.FxError) {
	fields := types.NewFieldMap()
	seen := set.New[types.Name](4)
	err := p.parseList(func() fxerr.FxError {
		name, err := p.parseListName(seen)
		if err != nil {
			return err
		}
		if err := p.expect(':'); err != nil {
			return err
		}
		t, err := p.parseType()
		if err != nil {
			return err
		}
		fields = fields.With(name, t)
		return nil
	})
	return fields, err
}

func (p *parser) parseBraced() (types.Name, fxerr.FxError) {
	if err := p.expect('{'); err != nil {
		return "", err
	}
	p.open.Push(p.pos - 1)
	defer p.open.Pop()
	p.skipSpace()
	name, err := p.parseName()
	if err != nil {
		return "", err
	}
	return name, p.expect('}')
}

func (p *parser) parseLazy(start int, table bool) (types.Type, fxerr.FxError) {
	name, err := p.parseBraced()
	if err != nil {
		return nil, err
	}
	var schema types.Type
	found := false
	if p.opts.schemas != nil {
		schema, found = p.opts.schemas.Schema(name)
	}
	if !found || !types.IsAggregate(schema) {
		return nil, fxerr.New(fxerr.NewUnknownSchema{
			Span: fxerr.Span{Start: start, Stop: p.pos},
			Name: string(name),
		})
	}
	if table {
		return types.ToTable(schema), nil
	}
	return types.ToRecord(schema), nil
}

func (p *parser) parseEnum() (types.Type, fxerr.FxError) {
	p.skipSpace()
	if p.atEOF() {
		return nil, p.unexpected("an enum superkind")
	}
	sigilAt := p.pos
	sigil := p.next()
	superkind, ok := types.KindFromSigil(sigil)
	if !ok {
		return nil, fxerr.New(fxerr.NewUnknownSigil{Span: fxerr.At(sigilAt), Sigil: string(sigil)})
	}
	if !superkind.IsPrimitive() {
		return nil, fxerr.New(fxerr.NewSyntax{
			Span:     fxerr.At(sigilAt),
			Expected: "a primitive enum superkind",
			Found:    string(sigil),
		})
	}

	var values []types.EnumValue
	seen := set.New[types.Name](4)
	err := p.parseList(func() fxerr.FxError {
		name, err := p.parseListName(seen)
		if err != nil {
			return err
		}
		if err := p.expect(':'); err != nil {
			return err
		}
		p.skipSpace()
		value, err := p.parseLiteral(superkind)
		if err != nil {
			return err
		}
		values = append(values, types.EnumValue{Name: name, Value: value})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return types.NewEnum(superkind, values...), nil
}

func (p *parser) parseLiteral(superkind types.Kind) (any, fxerr.FxError) {
	start := p.pos
	var value any
	switch {
	case p.peekIs('"'):
		s, err := p.scanString()
		if err != nil {
			return nil, err
		}
		value = s
	case p.peekNumber():
		f, err := p.scanNumber()
		if err != nil {
			return nil, err
		}
		value = f
	case p.peekIdentStart():
		switch word := p.scanIdent(); word {
		case "true":
			value = true
		case "false":
			value = false
		default:
			return nil, fxerr.New(fxerr.NewSyntax{
				Span:     fxerr.Span{Start: start, Stop: p.pos},
				Expected: "an enum literal",
				Found:    word,
			})
		}
	default:
		return nil, p.unexpected("an enum literal")
	}
	if !types.ValidEnumConstant(superkind, value) {
		return nil, fxerr.New(fxerr.NewInvalidEnumValue{
			Span:      fxerr.Span{Start: start, Stop: p.pos},
			Superkind: superkind.String(),
			Literal:   p.text[start:p.pos],
			Reason:    "literal does not match the superkind",
		})
	}
	return value, nil
}

func (p *parser) parseOptionSet(value bool) (types.Type, fxerr.FxError) {
	name, err := p.parseBraced()
	if err != nil {
		return nil, err
	}
	var options []types.Name
	seen := set.New[types.Name](4)
	err = p.parseList(func() fxerr.FxError {
		option, err := p.parseListName(seen)
		if err != nil {
			return err
		}
		options = append(options, option)
		return nil
	})
	if err != nil {
		return nil, err
	}
	info := types.NewOptionSetInfo(name, options...)
	if value {
		return types.NewOptionSetValue(info), nil
	}
	return types.NewOptionSet(info), nil
}
