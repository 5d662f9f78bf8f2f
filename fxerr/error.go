package fxerr

import (
	"fmt"
	"log/slog"
	"strings"
)

// Errors accumulates FxErrors, e.g. while checking every field of a schema catalog.
// A nil *Errors is empty.
type Errors struct {
	errs []FxError
}

func (r *Errors) With(err ...FxError) *Errors {
	if r == nil {
		return &Errors{errs: err}
	}
	r.errs = append(r.errs, err...)
	return r
}

func (r *Errors) Errors() []FxError {
	if r == nil {
		return nil
	}
	return r.errs
}

func (r *Errors) HasError() bool {
	if r == nil {
		return false
	}
	return len(r.errs) > 0
}

// Error makes *Errors usable as an error; each entry is printed on its own line with its code
func (r *Errors) Error() string {
	lines := make([]string, 0, len(r.Errors()))
	for _, e := range r.Errors() {
		lines = append(lines, FormatWithCode(e))
	}
	return strings.Join(lines, "\n")
}

func (r *Errors) LogValue() slog.Value {
	var vals []slog.Attr
	for i, v := range r.Errors() {
		vals = append(vals, slog.Attr{
			Key: fmt.Sprint("e", i),
			Value: slog.GroupValue(
				slog.Attr{
					Key:   "msg",
					Value: slog.StringValue(FormatWithCode(v)),
				},
			),
		})
	}
	return slog.GroupValue(vals...)
}
