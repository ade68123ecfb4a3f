package logging

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jmsadair/numeric/internal/errors"
)

// Level defines the log severity levels.
type Level int32

// Enumeration of log levels from least to most severe.
const (
	Debug Level = iota
	Info
	Warn
	Error
	Fatal
)

var levelNames = map[Level]string{
	Debug: "DEBUG",
	Info:  "INFO",
	Warn:  "WARN",
	Error: "ERROR",
	Fatal: "FATAL",
}

// String provides a string representation of the logging level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int32(l))
}

// ParseLevel converts a case-insensitive level name such as "debug" into a Level.
func ParseLevel(name string) (Level, error) {
	for level, levelName := range levelNames {
		if strings.EqualFold(name, levelName) {
			return level, nil
		}
	}
	return 0, errors.Errorf("unknown log level %q", name)
}

// Logger writes leveled messages to an underlying standard logger.
type Logger struct {
	// Logging options that determine behavior such as output destination and log level.
	options options

	// The underlying standard logger.
	base *log.Logger
}

// NewLogger creates a new logger instance with the provided options.
// If no options are provided, messages at Info and above go to stderr.
func NewLogger(opts ...Option) (*Logger, error) {
	var options options
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return nil, err
		}
	}

	if options.writer == nil {
		options.writer = defaultWriter
	}
	if options.flag == 0 {
		options.flag = defaultFlag
	}
	if options.prefix == "" {
		options.prefix = defaultPrefix
	}
	if !options.levelSet {
		options.level = Info
	}

	return &Logger{
		options: options,
		base:    log.New(options.writer, options.prefix, options.flag),
	}, nil
}

// Level returns the minimum level of messages that are written.
func (l *Logger) Level() Level {
	return l.options.level
}

// Enabled reports whether messages at the given level are written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.options.level
}

func (l *Logger) Debug(args ...any) {
	l.print(Debug, fmt.Sprint(args...))
}

func (l *Logger) Debugf(format string, args ...any) {
	l.printf(Debug, format, args...)
}

func (l *Logger) Info(args ...any) {
	l.print(Info, fmt.Sprint(args...))
}

func (l *Logger) Infof(format string, args ...any) {
	l.printf(Info, format, args...)
}

func (l *Logger) Warn(args ...any) {
	l.print(Warn, fmt.Sprint(args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.printf(Warn, format, args...)
}

func (l *Logger) Error(args ...any) {
	l.print(Error, fmt.Sprint(args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.printf(Error, format, args...)
}

// Fatal logs a message and then terminates the program.
func (l *Logger) Fatal(args ...any) {
	l.print(Fatal, fmt.Sprint(args...))
	os.Exit(1)
}

// Fatalf logs a formatted message and then terminates the program.
func (l *Logger) Fatalf(format string, args ...any) {
	l.printf(Fatal, format, args...)
	os.Exit(1)
}

func (l *Logger) printf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	l.print(level, fmt.Sprintf(format, args...))
}

// print writes msg tagged with the level name if the level is enabled.
func (l *Logger) print(level Level, msg string) {
	if !l.Enabled(level) {
		return
	}
	l.base.Print(level.String() + ": " + msg)
}
