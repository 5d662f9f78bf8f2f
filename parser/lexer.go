package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/cottand/fxtype/fxerr"
	"github.com/cottand/fxtype/types"
)

// scanner reads the grammar's tokens straight off the input. Which token is expected depends on
// where the parser is (a 'b' is a sigil in type position and an identifier in name position),
// so there is no separate tokenizing pass.
type scanner struct {
	text string
	pos  int
}

func (s *scanner) atEOF() bool { return s.pos >= len(s.text) }

func (s *scanner) next() byte {
	c := s.text[s.pos]
	s.pos++
	return c
}

func (s *scanner) peekIs(c byte) bool {
	return !s.atEOF() && s.text[s.pos] == c
}

func (s *scanner) consume(c byte) bool {
	if s.peekIs(c) {
		s.pos++
		return true
	}
	return false
}

func (s *scanner) skipSpace() {
	for !s.atEOF() {
		switch s.text[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) peekIdentStart() bool {
	return !s.atEOF() && isIdentStart(s.text[s.pos])
}

func (s *scanner) peekNumber() bool {
	if s.atEOF() {
		return false
	}
	c := s.text[s.pos]
	return isDigit(c) || c == '-' || c == '.'
}

func (s *scanner) scanIdent() string {
	start := s.pos
	for !s.atEOF() && (isIdentStart(s.text[s.pos]) || isDigit(s.text[s.pos])) {
		s.pos++
	}
	return s.text[start:s.pos]
}

// parseName reads an identifier or a single-quoted name, in which a doubled quote stands for one quote
func (p *parser) parseName() (types.Name, fxerr.FxError) {
	start := p.pos
	switch {
	case p.peekIdentStart():
		return types.Name(p.scanIdent()), nil
	case p.peekIs('\''):
		p.pos++
		sb := &strings.Builder{}
		for {
			if p.atEOF() {
				return "", fxerr.New(fxerr.NewSyntax{Span: fxerr.Span{Start: start, Stop: p.pos}, Expected: "closing '"})
			}
			c := p.next()
			if c == '\'' {
				if !p.consume('\'') {
					break
				}
			}
			sb.WriteByte(c)
		}
		if !types.IsValidName(sb.String()) {
			return "", fxerr.New(fxerr.NewEmptyName{Span: fxerr.Span{Start: start, Stop: p.pos}})
		}
		return types.Name(sb.String()), nil
	}
	return "", p.unexpected("a name")
}

// scanString reads a double-quoted literal with Go escapes
func (s *scanner) scanString() (string, fxerr.FxError) {
	start := s.pos
	s.pos++
	for !s.atEOF() {
		switch s.next() {
		case '\\':
			if !s.atEOF() {
				s.pos++
			}
		case '"':
			unquoted, err := strconv.Unquote(s.text[start:s.pos])
			if err != nil {
				return "", fxerr.New(fxerr.NewSyntax{
					Span:     fxerr.Span{Start: start, Stop: s.pos},
					Expected: "a valid string literal",
					Found:    s.text[start:s.pos],
				})
			}
			return unquoted, nil
		}
	}
	return "", fxerr.New(fxerr.NewSyntax{Span: fxerr.Span{Start: start, Stop: s.pos}, Expected: "closing \""})
}

// scanNumber reads -?digits(.digits)?([eE][+-]?digits)? as a finite float64
func (s *scanner) scanNumber() (float64, fxerr.FxError) {
	start := s.pos
	s.consume('-')
	digits := s.scanDigits()
	if s.consume('.') {
		digits += s.scanDigits()
	}
	if digits > 0 && (s.peekIs('e') || s.peekIs('E')) {
		s.pos++
		if !s.consume('+') {
			s.consume('-')
		}
		if s.scanDigits() == 0 {
			digits = 0
		}
	}
	literal := s.text[start:s.pos]
	if digits == 0 {
		return 0, fxerr.New(fxerr.NewSyntax{
			Span:     fxerr.Span{Start: start, Stop: s.pos},
			Expected: "a number",
			Found:    literal,
		})
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, fxerr.New(fxerr.NewInvalidEnumValue{
			Span:      fxerr.Span{Start: start, Stop: s.pos},
			Superkind: types.KindNumber.String(),
			Literal:   literal,
			Reason:    "out of range",
		})
	}
	return f, nil
}

func (s *scanner) scanDigits() int {
	start := s.pos
	for !s.atEOF() && isDigit(s.text[s.pos]) {
		s.pos++
	}
	return s.pos - start
}
