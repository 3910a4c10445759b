// Package logging provides structured application logging for the firesale
// CLI. Log entries carry a level, component tag, correlation id, and optional
// metadata, and are rendered as JSON (default) or plain text.
package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Fields represents structured logging fields attached to a single entry.
type Fields map[string]interface{}

// Logger is the structured logging interface used throughout the CLI.
type Logger interface {
	Debug(ctx context.Context, message string, fields Fields)
	Info(ctx context.Context, message string, fields Fields)
	Warn(ctx context.Context, message string, fields Fields)
	Error(ctx context.Context, message string, fields Fields)
	ErrorWithError(ctx context.Context, err error, message string, fields Fields)
	LogDuration(ctx context.Context, operation string, duration time.Duration, fields Fields)
	WithComponent(component string) Logger
}

// Config controls logger construction.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, text
	Output io.Writer
}

// Log levels in increasing order of severity.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// Entry is the serialized shape of a single log record.
type Entry struct {
	Timestamp     string                 `json:"timestamp"`
	Level         string                 `json:"level"`
	Message       string                 `json:"message"`
	CorrelationID string                 `json:"correlation_id,omitempty"`
	Component     string                 `json:"component,omitempty"`
	Operation     string                 `json:"operation,omitempty"`
	Duration      string                 `json:"duration,omitempty"`
	Error         string                 `json:"error,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

type logger struct {
	minLevel  int
	format    string
	out       io.Writer
	component string
}

// NewLogger builds a Logger from the given configuration. Unknown levels
// default to info and unknown formats to JSON; a nil output defaults to
// stderr so command output on stdout stays machine-parseable.
func NewLogger(cfg Config) (Logger, error) {
	level := strings.ToLower(cfg.Level)
	if level == "" {
		level = LevelInfo
	}
	rank, ok := levelRank[level]
	if !ok {
		return nil, fmt.Errorf("invalid log level %q", cfg.Level)
	}

	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatText {
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	return &logger{minLevel: rank, format: format, out: out}, nil
}

func (l *logger) Debug(ctx context.Context, message string, fields Fields) {
	l.log(ctx, LevelDebug, message, "", fields)
}

func (l *logger) Info(ctx context.Context, message string, fields Fields) {
	l.log(ctx, LevelInfo, message, "", fields)
}

func (l *logger) Warn(ctx context.Context, message string, fields Fields) {
	l.log(ctx, LevelWarn, message, "", fields)
}

func (l *logger) Error(ctx context.Context, message string, fields Fields) {
	l.log(ctx, LevelError, message, "", fields)
}

func (l *logger) ErrorWithError(ctx context.Context, err error, message string, fields Fields) {
	errText := ""
	if err != nil {
		errText = err.Error()
	}
	l.log(ctx, LevelError, message, errText, fields)
}

// LogDuration records the completion of an operation with its elapsed time.
func (l *logger) LogDuration(ctx context.Context, operation string, duration time.Duration, fields Fields) {
	entry := l.newEntry(ctx, LevelInfo, fmt.Sprintf("operation %s completed", operation), "", fields)
	entry.Operation = operation
	entry.Duration = duration.String()
	l.write(entry)
}

// WithComponent returns a logger that tags every entry with the component.
func (l *logger) WithComponent(component string) Logger {
	clone := *l
	clone.component = component
	return &clone
}

func (l *logger) log(ctx context.Context, level, message, errText string, fields Fields) {
	if levelRank[level] < l.minLevel {
		return
	}
	entry := l.newEntry(ctx, level, message, errText, fields)
	l.write(entry)
}

func (l *logger) newEntry(ctx context.Context, level, message, errText string, fields Fields) Entry {
	entry := Entry{
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		Level:         strings.ToUpper(level),
		Message:       message,
		CorrelationID: CorrelationIDFrom(ctx),
		Component:     l.component,
		Error:         errText,
	}
	if len(fields) > 0 {
		entry.Metadata = map[string]interface{}(fields)
	}
	return entry
}

func (l *logger) write(entry Entry) {
	if l.format == FormatText {
		var b strings.Builder
		b.WriteString(entry.Timestamp)
		b.WriteString(" [")
		b.WriteString(entry.Level)
		b.WriteString("] ")
		if entry.Component != "" {
			b.WriteString(entry.Component)
			b.WriteString(": ")
		}
		b.WriteString(entry.Message)
		if entry.Error != "" {
			b.WriteString(" error=")
			b.WriteString(entry.Error)
		}
		if entry.Duration != "" {
			b.WriteString(" duration=")
			b.WriteString(entry.Duration)
		}
		for k, v := range entry.Metadata {
			fmt.Fprintf(&b, " %s=%v", k, v)
		}
		fmt.Fprintln(l.out, b.String())
		return
	}

	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(l.out, `{"level":"ERROR","message":"failed to encode log entry: %v"}`+"\n", err)
		return
	}
	l.out.Write(append(data, '\n'))
}
