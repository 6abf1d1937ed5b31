// Package cli implements the mvnmodel command-line interface.
//
// The commands load a dependency section from a TOML declaration file or a
// pom.xml and then write it back out: as POM XML (pom), as a styled listing
// (list), as a membership check (has), or as a diagram (graph). The CLI is
// built using cobra and logs through charmbracelet/log.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports every merged re-declaration. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level, with "15:04:05.00"
// timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// readerLogger adapts l to the Logger callback of the pom and manifest
// readers. Their messages (merged re-declarations, ignored keys) are debug
// output tagged with the file being read.
func readerLogger(l *log.Logger, path string) func(string, ...any) {
	return func(format string, args ...any) {
		l.Debug(fmt.Sprintf(format, args...), "file", path)
	}
}

// progress times one load and reports it when done. Not for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs the formatted message with the elapsed time, rounded to the
// millisecond: "Loaded 12 dependencies (3ms)".
func (p *progress) done(format string, args ...any) {
	p.logger.Infof("%s (%s)", fmt.Sprintf(format, args...), time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for the commands to pick up.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
