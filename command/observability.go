package command

// Logger interface for command execution logging, warnings, and error reporting.
// This interface is dependency-free so callers can plug in any logging backend
// (slog, structured loggers, test loggers) by implementing it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
