package debug

import (
	"fmt"
	"time"
)

// EntryKind distinguishes a keyed data point from a free-text line.
type EntryKind int

const (
	EntryData EntryKind = iota
	EntryLine
)

// Entry is one recorded telemetry point.
type Entry struct {
	Timestamp time.Time
	Component Component
	Kind      EntryKind
	Key       string
	Value     any
	Text      string
}

// Format renders the entry the way the reference dashboard lists it.
func (e Entry) Format() string {
	ts := e.Timestamp.Format("15:04:05.000")
	if e.Kind == EntryLine {
		return fmt.Sprintf("[%s] [%s] %s", ts, e.Component, e.Text)
	}
	return fmt.Sprintf("[%s] [%s] %s = %v", ts, e.Component, e.Key, e.Value)
}
