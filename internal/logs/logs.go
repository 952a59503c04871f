// internal/logs/logs.go

// package logs configures the structured logger for the tool: human-readable
// text on stderr, optionally fanned out to a log file as well.
package logs

import (
	"fmt"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// New builds the logger. logFile may be empty; when set, records go to both
// stderr and the file. the returned closer flushes and closes the file.
func New(level slog.Level, logFile string) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	handlers = append(handlers, slog.NewTextHandler(os.Stderr, opts))

	closer := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening log file '%s': %w", logFile, err)
		}
		handlers = append(handlers, slog.NewTextHandler(f, opts))
		closer = func() { _ = f.Close() }
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0]), closer, nil
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// ParseLevel maps the -log-level flag value onto a slog level.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
