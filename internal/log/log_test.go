package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withSettings(t *testing.T, l slog.Level, sections ...string) {
	t.Cleanup(func() {
		SetLevel(slog.LevelWarn)
		EnableSections("types", "parser")
	})
	SetLevel(l)
	EnableSections(sections...)
}

func TestSectionFiltering(t *testing.T) {
	withSettings(t, slog.LevelDebug, "types")

	testCases := []struct {
		name    string
		log     func(l *slog.Logger)
		emitted bool
	}{
		{"section through With", func(l *slog.Logger) { l.With("section", "types").Debug("hello") }, true},
		{"subsection", func(l *slog.Logger) { l.With("section", "types.mutate").Debug("hello") }, true},
		{"section on the record", func(l *slog.Logger) { l.Debug("hello", "section", "types") }, true},
		{"disabled section", func(l *slog.Logger) { l.With("section", "schema").Debug("hello") }, false},
		{"no section", func(l *slog.Logger) { l.Info("hello") }, false},
		{"warnings always pass", func(l *slog.Logger) { l.With("section", "schema").Warn("hello") }, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tc.log(NewLogger(buf))
			if tc.emitted {
				assert.Contains(t, buf.String(), "msg=hello")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	withSettings(t, slog.LevelError, "types")
	buf := &bytes.Buffer{}
	logger := NewLogger(buf).With("section", "types")

	logger.Warn("dropped")
	assert.Empty(t, buf.String())

	SetLevel(slog.LevelDebug)
	logger.Debug("kept")
	assert.Contains(t, buf.String(), "msg=kept")
}
