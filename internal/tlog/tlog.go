// Package tlog wraps charmbracelet/log for subledger's internal trace
// output. Callers opt in via the subledger.WithLogger option; with nothing
// configured the package stays silent and does no I/O.
package tlog

import (
	"os"

	"github.com/charmbracelet/log"
)

// New builds a debug-level logger tagged with prefix, in the same shape
// wordserve's internal/logger factory builds its loggers.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		Level:           log.DebugLevel,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
	})
}

// Logger is the narrow interface subledger depends on, satisfied by
// *log.Logger. Builder and Encoder treat a nil Logger as Nop (below).
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
}

type nop struct{}

func (nop) Debug(interface{}, ...interface{}) {}

// Nop is a Logger that discards everything, used as the zero-value default
// so the core stays silent unless a caller explicitly configures one.
var Nop Logger = nop{}
