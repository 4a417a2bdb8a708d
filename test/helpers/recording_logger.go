package helpers

import (
	"sync"

	"github.com/andrescamacho/prun-cogm/internal/application/logging"
)

// LogEntry is one captured log call
type LogEntry struct {
	Level    string
	Message  string
	Metadata map[string]interface{}
}

// RecordingLogger captures log calls for assertions
type RecordingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

var _ logging.Logger = (*RecordingLogger)(nil)

// NewRecordingLogger creates an empty recording logger
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) Log(level, message string, metadata map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: message, Metadata: metadata})
}

// Entries returns every captured entry
func (l *RecordingLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Find returns the entries with the given message
func (l *RecordingLogger) Find(message string) []LogEntry {
	var found []LogEntry
	for _, entry := range l.Entries() {
		if entry.Message == message {
			found = append(found, entry)
		}
	}
	return found
}
