/*
Copyright © 2026 SONiC Project
SPDX-License-Identifier: Apache-2.0
*/
package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// journalHandler is a slog.Handler that sends records to the systemd
// journal. Attribute keys are normalized to journal field syntax
// (uppercase, [A-Z0-9_], leading letter) and record levels are mapped to
// syslog priorities.
type journalHandler struct {
	level  slog.Leveler
	attrs  map[string]string
	groups []string

	// send is journal.Send in production; injectable for tests.
	send func(message string, priority journal.Priority, vars map[string]string) error
}

func newJournalHandler(level slog.Leveler) *journalHandler {
	return &journalHandler{
		level: level,
		attrs: map[string]string{},
		send:  journal.Send,
	}
}

// Enabled implements slog.Handler.
func (h *journalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *journalHandler) Handle(_ context.Context, rec slog.Record) error {
	vars := make(map[string]string, len(h.attrs)+rec.NumAttrs())
	for k, v := range h.attrs {
		vars[k] = v
	}
	rec.Attrs(func(a slog.Attr) bool {
		h.appendAttr(vars, h.groups, a)
		return true
	})
	return h.send(rec.Message, priority(rec.Level), vars)
}

// WithAttrs implements slog.Handler.
func (h *journalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	for _, a := range attrs {
		clone.appendAttr(clone.attrs, clone.groups, a)
	}
	return clone
}

// WithGroup implements slog.Handler.
func (h *journalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *journalHandler) clone() *journalHandler {
	attrs := make(map[string]string, len(h.attrs))
	for k, v := range h.attrs {
		attrs[k] = v
	}
	return &journalHandler{
		level:  h.level,
		attrs:  attrs,
		groups: append([]string(nil), h.groups...),
		send:   h.send,
	}
}

func (h *journalHandler) appendAttr(vars map[string]string, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		sub := groups
		if a.Key != "" {
			sub = append(sub, a.Key)
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(vars, sub, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	key := fieldName(append(groups, a.Key))
	vars[key] = a.Value.String()
}

// fieldName converts a group path into a journal field name. Journal fields
// must be uppercase, limited to [A-Z0-9_], and must not start with a digit
// or underscore (the underscore prefix is reserved for trusted fields).
func fieldName(parts []string) string {
	var b strings.Builder
	for i, part := range parts {
		if i > 0 {
			b.WriteByte('_')
		}
		for _, r := range strings.ToUpper(part) {
			switch {
			case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
				b.WriteRune(r)
			default:
				b.WriteByte('_')
			}
		}
	}
	name := strings.TrimLeft(b.String(), "_0123456789")
	if name == "" {
		return "FIELD"
	}
	return name
}

func priority(level slog.Level) journal.Priority {
	switch {
	case level >= slog.LevelError:
		return journal.PriErr
	case level >= slog.LevelWarn:
		return journal.PriWarning
	case level >= slog.LevelInfo:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}
