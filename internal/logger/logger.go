package logger

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the different logging levels
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a string log level, defaulting to INFO
func ParseLogLevel(level string) LogLevel {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARNING", "WARN":
		return WARNING
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Logger is a leveled logger writing to a single destination
type Logger struct {
	mu    sync.Mutex
	level LogLevel
	out   *log.Logger
}

var globalLogger = &Logger{
	level: INFO,
	out:   log.New(os.Stdout, "", log.LstdFlags),
}

// Init configures the global logger level and output
func Init(level LogLevel, output io.Writer) {
	if output == nil {
		output = os.Stdout
	}
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.level = level
	globalLogger.out = log.New(output, "", log.LstdFlags)
}

// SetLevel changes the global log level
func SetLevel(level LogLevel) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.level = level
}

func (l *Logger) logf(level LogLevel, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level > level {
		return
	}
	l.out.Printf("["+level.String()+"] "+format, v...)
}

// Debug logs a debug message
func Debug(format string, v ...interface{}) {
	globalLogger.logf(DEBUG, format, v...)
}

// Info logs an info message
func Info(format string, v ...interface{}) {
	globalLogger.logf(INFO, format, v...)
}

// Warning logs a warning message
func Warning(format string, v ...interface{}) {
	globalLogger.logf(WARNING, format, v...)
}

// Error logs an error message
func Error(format string, v ...interface{}) {
	globalLogger.logf(ERROR, format, v...)
}

// Fatal logs an error message and exits the program
func Fatal(format string, v ...interface{}) {
	globalLogger.logf(ERROR, format, v...)
	os.Exit(1)
}
