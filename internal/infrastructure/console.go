package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// ConsoleHandler renders log records as single "[LEVEL] message key=value"
// lines. This keeps the pipeline's console output human-readable; the JSON
// handler remains available for machine consumption via LoggingConfig.
type ConsoleHandler struct {
	mu     *sync.Mutex
	out    io.Writer
	level  slog.Leveler
	attrs  []qualifiedAttr
	groups []string
}

// qualifiedAttr is an attribute captured via WithAttrs together with the
// group path that was open when it was added
type qualifiedAttr struct {
	groups []string
	attr   slog.Attr
}

// NewConsoleHandler creates a console handler writing to out at the given level
func NewConsoleHandler(out io.Writer, level slog.Leveler) *ConsoleHandler {
	return &ConsoleHandler{
		mu:    &sync.Mutex{},
		out:   out,
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as a single prefixed line
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(levelPrefix(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, qa := range h.attrs {
		writeAttr(&b, qa.groups, qa.attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, h.groups, attr)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// WithAttrs returns a new handler whose records carry the given attributes
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append([]qualifiedAttr{}, h.attrs...)
	for _, attr := range attrs {
		h2.attrs = append(h2.attrs, qualifiedAttr{groups: h.groups, attr: attr})
	}
	return &h2
}

// WithGroup returns a new handler that nests attribute keys under name
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(append([]string{}, h.groups...), name)
	return &h2
}

func levelPrefix(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "[ERROR]"
	case level >= slog.LevelWarn:
		return "[WARN]"
	case level >= slog.LevelInfo:
		return "[INFO]"
	default:
		return "[DEBUG]"
	}
}

func writeAttr(b *strings.Builder, groups []string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		nested := append(append([]string{}, groups...), attr.Key)
		for _, sub := range attr.Value.Group() {
			writeAttr(b, nested, sub)
		}
		return
	}

	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}

	val := attr.Value.String()
	if strings.ContainsAny(val, " \t") {
		val = fmt.Sprintf("%q", val)
	}

	fmt.Fprintf(b, " %s=%s", key, val)
}
