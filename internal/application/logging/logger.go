package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"time"
)

// Log levels
const (
	LevelDebug   = "DEBUG"
	LevelInfo    = "INFO"
	LevelWarning = "WARNING"
	LevelError   = "ERROR"
)

var levelRank = map[string]int{
	LevelDebug:   0,
	LevelInfo:    1,
	LevelWarning: 2,
	LevelError:   3,
}

// Logger is the structured logger carried through request contexts
type Logger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	return &noOpLogger{}
}

// noOpLogger is a logger that does nothing (fallback when no logger in context)
type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {}

// StdLogger writes log lines through the standard library logger
type StdLogger struct {
	logger   *log.Logger
	minLevel int
	json     bool
}

// NewStdLogger creates a logger writing to w. level is one of debug, info,
// warn or error; format is text or json.
func NewStdLogger(w io.Writer, level, format string) *StdLogger {
	return &StdLogger{
		logger:   log.New(w, "", 0),
		minLevel: levelRank[normalizeLevel(level)],
		json:     strings.EqualFold(format, "json"),
	}
}

// Log implements Logger
func (l *StdLogger) Log(level, message string, metadata map[string]interface{}) {
	level = normalizeLevel(level)
	if levelRank[level] < l.minLevel {
		return
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)

	if l.json {
		entry := make(map[string]interface{}, len(metadata)+3)
		for k, v := range metadata {
			entry[k] = v
		}
		entry["time"] = timestamp
		entry["level"] = level
		entry["message"] = message
		line, err := json.Marshal(entry)
		if err != nil {
			l.logger.Printf("%s [%s] %s (unencodable metadata: %v)", timestamp, level, message, err)
			return
		}
		l.logger.Println(string(line))
		return
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", timestamp, level, message)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, metadata[k])
	}
	l.logger.Println(b.String())
}

func normalizeLevel(level string) string {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarning
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}
