// Package journal records the narrative log of a game: one entry per
// player-visible event, in the order it happened.
package journal

import (
	"fmt"
	"time"
)

// Entry is a single timestamped log line.
type Entry struct {
	At   time.Time
	Text string
}

// Log is an append-only sequence of entries. An optional observer is
// notified of each entry as it is appended.
type Log struct {
	now      func() time.Time
	entries  []Entry
	observer func(Entry)
}

// New creates an empty log.
func New() *Log {
	return &Log{now: time.Now}
}

// NewWithClock creates an empty log with an injected clock, for tests.
func NewWithClock(now func() time.Time) *Log {
	if now == nil {
		now = time.Now
	}
	return &Log{now: now}
}

// Observe registers an observer called for every appended entry.
func (l *Log) Observe(fn func(Entry)) {
	l.observer = fn
}

// Add appends a log line.
func (l *Log) Add(text string) {
	entry := Entry{At: l.now().UTC(), Text: text}
	l.entries = append(l.entries, entry)
	if l.observer != nil {
		l.observer(entry)
	}
}

// Addf appends a formatted log line.
func (l *Log) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Entries returns the recorded entries in order.
func (l *Log) Entries() []Entry {
	return l.entries
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.entries)
}
