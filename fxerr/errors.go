package fxerr

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include the frame that created them when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Syntax
	UnterminatedList
	DuplicateField
	EmptyName
	UnknownSigil
	TrailingInput
	UnknownSchema
	InvalidEnumValue
)

// Positioner locates an error in the text being parsed, as byte offsets
type Positioner interface {
	Pos() int // offset of the first offending byte
	End() int // offset right after the offending input
}

// Span is the Positioner of a byte range
type Span struct {
	Start, Stop int
}

func (s Span) Pos() int { return s.Start }
func (s Span) End() int { return s.Stop }

// At is the Span of the single byte at offset
func At(offset int) Span {
	return Span{Start: offset, Stop: offset + 1}
}

type FxError interface {
	Error() string
	Code() ErrCode
	Positioner

	withStack([]byte) FxError
	getStack() []byte
}

func FormatWithCode(e FxError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// FormatInSource is FormatWithCode followed by the source text with a caret under the error position
func FormatInSource(e FxError, source string) string {
	pos := min(max(e.Pos(), 0), len(source))
	return FormatWithCode(e) + "\n  " + source + "\n  " + strings.Repeat(" ", pos) + "^"
}

func New[E FxError](err E) FxError {
	return err.withStack(debug.Stack())
}

type Unclassified struct {
	From error
	Span
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Unwrap() error    { return e.From }
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) FxError {
	e.stack = stack
	return e
}

type NewSyntax struct {
	Span
	Expected string
	Found    string
	stack    []byte
}

func (e NewSyntax) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("syntax error at %d: expected %s but input ended", e.Start, e.Expected)
	}
	return fmt.Sprintf("syntax error at %d: expected %s, found '%s'", e.Start, e.Expected, e.Found)
}
func (e NewSyntax) Code() ErrCode    { return Syntax }
func (e NewSyntax) getStack() []byte { return e.stack }
func (e NewSyntax) withStack(stack []byte) FxError {
	e.stack = stack
	return e
}

type NewUnterminatedList struct {
	Span
	Open  string
	stack []byte
}

func (e NewUnterminatedList) Error() string {
	return fmt.Sprintf("list opened with '%s' at %d is never closed", e.Open, e.Start)
}
func (e NewUnterminatedList) Code() ErrCode    { return UnterminatedList }
func (e NewUnterminatedList) getStack() []byte { return e.stack }
func (e NewUnterminatedList) withStack(stack []byte) FxError {
	e.stack = stack
	return e
}

type NewDuplicateField struct {
	Span
	Name  string
	stack []byte
}

func (e NewDuplicateField) Error() string {
	return fmt.Sprintf("name '%s' appears more than once in the same list", e.Name)
}
func (e NewDuplicateField) Code() ErrCode    { return DuplicateField }
func (e NewDuplicateField) getStack() []byte { return e.stack }
func (e NewDuplicateField) withStack(stack []byte) FxError {
	e.stack = stack
	return e
}

type NewEmptyName struct {
	Span
	stack []byte
}

func (e NewEmptyName) Error() string {
	return fmt.Sprintf("empty name at %d", e.Start)
}
func (e NewEmptyName) Code() ErrCode    { return EmptyName }
func (e NewEmptyName) getStack() []byte { return e.stack }
func (e NewEmptyName) withStack(stack []byte) FxError {
	e.stack = stack
	return e
}

type NewUnknownSigil struct {
	Span
	Sigil string
	stack []byte
}

func (e NewUnknownSigil) Error() string {
	return fmt.Sprintf("'%s' at %d is not a type", e.Sigil, e.Start)
}
func (e NewUnknownSigil) Code() ErrCode    { return UnknownSigil }
func (e NewUnknownSigil) getStack() []byte { return e.stack }
func (e NewUnknownSigil) withStack(stack []byte) FxError {
	e.stack = stack
	return e
}

type NewTrailingInput struct {
	Span
	Rest  string
	stack []byte
}

func (e NewTrailingInput) Error() string {
	return fmt.Sprintf("unexpected input after type at %d: '%s'", e.Start, e.Rest)
}
func (e NewTrailingInput) Code() ErrCode    { return TrailingInput }
func (e NewTrailingInput) getStack() []byte { return e.stack }
func (e NewTrailingInput) withStack(stack []byte) FxError {
	e.stack = stack
	return e
}

type NewUnknownSchema struct {
	Span
	Name  string
	stack []byte
}

func (e NewUnknownSchema) Error() string {
	return fmt.Sprintf("schema '%s' is not defined", e.Name)
}
func (e NewUnknownSchema) Code() ErrCode    { return UnknownSchema }
func (e NewUnknownSchema) getStack() []byte { return e.stack }
func (e NewUnknownSchema) withStack(stack []byte) FxError {
	e.stack = stack
	return e
}

type NewInvalidEnumValue struct {
	Span
	Superkind string
	Literal   string
	Reason    string
	stack     []byte
}

func (e NewInvalidEnumValue) Error() string {
	return fmt.Sprintf("'%s' is not a valid %s enum value: %s", e.Literal, e.Superkind, e.Reason)
}
func (e NewInvalidEnumValue) Code() ErrCode    { return InvalidEnumValue }
func (e NewInvalidEnumValue) getStack() []byte { return e.stack }
func (e NewInvalidEnumValue) withStack(stack []byte) FxError {
	e.stack = stack
	return e
}
