// Package testutil provides shared test doubles for use across package tests.
package testutil

import (
	"sync"

	"github.com/raysh454/scrapedemo/internal/logging"
)

// ─── Logger ────────────────────────────────────────────────────────────

// Entry is one recorded log call.
type Entry struct {
	Level  string
	Msg    string
	Fields map[string]any
}

// DummyLogger implements logging.Logger with in-memory recording.
type DummyLogger struct {
	mu      sync.Mutex
	Entries []Entry
}

func (l *DummyLogger) record(level, msg string, fields []logging.Field) {
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, Entry{Level: level, Msg: msg, Fields: m})
}

func (l *DummyLogger) Debug(msg string, fields ...logging.Field) { l.record("debug", msg, fields) }
func (l *DummyLogger) Info(msg string, fields ...logging.Field)  { l.record("info", msg, fields) }
func (l *DummyLogger) Warn(msg string, fields ...logging.Field)  { l.record("warn", msg, fields) }
func (l *DummyLogger) Error(msg string, fields ...logging.Field) { l.record("error", msg, fields) }

func (l *DummyLogger) With(_ ...logging.Field) logging.Logger { return l }

// Messages returns the recorded messages at level, in order.
func (l *DummyLogger) Messages(level string) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Entry
	for _, e := range l.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}
