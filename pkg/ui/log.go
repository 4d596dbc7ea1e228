package ui

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger reports non-fatal controller diagnostics: unresolved layout ids and
// unrecognized modes.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "ui"})

// SetLogger replaces the package logger. Passing nil restores the default
// stderr logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "ui"})
		return
	}
	logger = l
}
