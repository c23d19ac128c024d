// Package logger backs the core Logger interface with zerolog. Entries go to
// stderr so that stdout stays reserved for forecast reports.
package logger

import (
	"os"

	"github.com/rs/zerolog"

	corelogger "github.com/kilianp07/picapacity/core/logger"
)

type Logger = corelogger.Logger

// New returns the stderr logger tagged with component. APP_ENV=dev selects
// console output and LOG_LEVEL sets the minimum level (info by default).
func New(component string) Logger {
	return newZerologLogger(os.Stderr, component)
}

// Nop returns a logger that drops every entry. Used by tests and by callers
// that want a silent forecaster.
func Nop() Logger {
	return &ZerologLogger{log: zerolog.Nop()}
}
