package restify

import "fmt"

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

var LoggerEnabled = false

type defaultLogger struct{}

func (defaultLogger) Debug(format string, args ...any) {
	logLine("DEBUG", format, args...)
}

func (defaultLogger) Info(format string, args ...any) {
	logLine("INFO", format, args...)
}

func (defaultLogger) Error(format string, args ...any) {
	logLine("ERROR", format, args...)
}

func logLine(level string, format string, args ...any) {
	if !LoggerEnabled {
		return
	}
	fmt.Printf("[%s] %s\n", level, fmt.Sprintf(format, args...))
}
