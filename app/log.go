package app

import (
	"bytes"
	"log/slog"

	"prism/hal"
)

// lineWriter feeds slog's text output to a HAL logger one line at a time.
type lineWriter struct {
	l hal.Logger
}

func (w lineWriter) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		line, rest, _ := bytes.Cut(p, []byte{'\n'})
		if len(line) > 0 {
			w.l.WriteLineBytes(line)
		}
		p = rest
	}
	return n, nil
}

func newLogger(l hal.Logger, level slog.Level) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(lineWriter{l: l}, &slog.HandlerOptions{Level: level}))
}
