// ABOUTME: Structured logger implementation backed by sirupsen/logrus
// ABOUTME: Supports JSON or text output, level filtering and rotated log files via lumberjack

package logrus

import (
	"fmt"
	"io"
	"os"
	"strings"

	lr "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"weekcal-api/core/interfaces"
)

// Options configures a Logger
type Options struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is json or text
	Format string

	// File, when set, receives output through a rotating writer
	File string

	// Output overrides the destination (tests); ignored when File is set
	Output io.Writer
}

// Logger implements interfaces.Logger using logrus
type Logger struct {
	entry  *lr.Entry
	closer io.Closer
}

var _ interfaces.Logger = (*Logger)(nil)

// New creates a logger from options
func New(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	base := lr.New()
	base.SetLevel(level)

	switch strings.ToLower(opts.Format) {
	case "", "json":
		base.SetFormatter(&lr.JSONFormatter{})
	case "text":
		base.SetFormatter(&lr.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	l := &Logger{}
	switch {
	case opts.File != "":
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		base.SetOutput(rotating)
		l.closer = rotating
	case opts.Output != nil:
		base.SetOutput(opts.Output)
	default:
		base.SetOutput(os.Stdout)
	}

	l.entry = lr.NewEntry(base)
	return l, nil
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	base := lr.New()
	base.SetOutput(io.Discard)
	base.SetLevel(lr.PanicLevel)
	return &Logger{entry: lr.NewEntry(base)}
}

// ParseLevel maps a configured level name to a logrus level
func ParseLevel(level string) (lr.Level, error) {
	if level == "" {
		return lr.InfoLevel, nil
	}
	parsed, err := lr.ParseLevel(level)
	if err != nil {
		return lr.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
	return parsed, nil
}

// With returns a child logger that adds fields to every entry
func (l *Logger) With(fields map[string]interface{}) *Logger {
	return &Logger{entry: l.entry.WithFields(lr.Fields(fields)), closer: l.closer}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(lr.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(lr.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(lr.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(lr.Fields(fields)).Error(msg)
}

// Close flushes and closes the rotating file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
