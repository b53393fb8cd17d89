package transcript

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"
)

// Pretty-prints log records to the console and mirrors them in plain form
// to the transcript file.
//
// The handler starts with the console only; the transcript file is attached
// once a run opens one via SetFile. Level, color, and streams can be
// reconfigured after flag parsing.
type Handler struct {
	state *handlerState
	attrs []slog.Attr
}

// Shared between the handler and its WithAttrs clones.
type handlerState struct {
	mu      sync.Mutex
	console io.Writer
	file    io.Writer // Nil until a transcript is attached.
	level   slog.Level
	color   bool
}

// Creates a new handler writing to the given console stream at info level,
// without color.
func NewHandler(console io.Writer) *Handler {
	return &Handler{
		state: &handlerState{
			console: console,
			level:   slog.LevelInfo,
		},
	}
}

// Sets the minimum record level.
func (h *Handler) SetLevel(level slog.Level) {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	h.state.level = level
}

// Enables or disables colored console output.
func (h *Handler) SetColor(enabled bool) {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	h.state.color = enabled
}

// Attaches the transcript file. Subsequent records are mirrored to it.
func (h *Handler) SetFile(file io.Writer) {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	h.state.file = file
}

// Reports whether records at the given level are emitted.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	return level >= h.state.level
}

// Formats the record for the console and the transcript file.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	attrs := h.formatAttrs(r)

	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	line := consoleLine(r.Level, r.Message, attrs, h.state.color)
	if _, err := io.WriteString(h.state.console, line); err != nil {
		return err
	}

	if h.state.file != nil {
		plain := fileLine(r.Time, r.Level, r.Message, attrs)
		if _, err := io.WriteString(h.state.file, plain); err != nil {
			return err
		}
	}

	return nil
}

// Returns a handler that includes the given attributes in every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// Returns the handler unchanged. Groups are not used in this codebase.
func (h *Handler) WithGroup(string) slog.Handler {
	return h
}

// Renders handler-level and record attributes as "key=value" pairs.
func (h *Handler) formatAttrs(r slog.Record) string {
	var sb strings.Builder
	for _, a := range h.attrs {
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value)
		return true
	})
	return sb.String()
}

// Formats one console line, coloring the level tag when enabled.
func consoleLine(level slog.Level, msg, attrs string, colored bool) string {
	tag := levelTag(level)
	if colored {
		switch {
		case level >= slog.LevelError:
			tag = color.Red.Sprint(tag)
		case level >= slog.LevelWarn:
			tag = color.Yellow.Sprint(tag)
		case level >= slog.LevelInfo:
			tag = color.Green.Sprint(tag)
		default:
			tag = color.Cyan.Sprint(tag)
		}
		attrs = color.Gray.Sprint(attrs)
	}
	return fmt.Sprintf("%s %s%s\n", tag, msg, attrs)
}

// Formats one plain transcript line with a wall-clock timestamp.
func fileLine(ts time.Time, level slog.Level, msg, attrs string) string {
	return fmt.Sprintf("%s %s %s%s\n", ts.Format(time.DateTime), levelTag(level), msg, attrs)
}

// Returns a fixed-width tag for a level.
func levelTag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return " WARN"
	case level >= slog.LevelInfo:
		return " INFO"
	default:
		return "DEBUG"
	}
}
