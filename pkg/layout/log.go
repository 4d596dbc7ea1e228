package layout

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger reports non-fatal layout diagnostics, such as the unsupported
// center alignment.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "layout"})

// SetLogger replaces the package logger. Passing nil restores the default
// stderr logger. Intended for tests and embedders that route diagnostics
// elsewhere.
func SetLogger(l *log.Logger) {
	if l == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "layout"})
		return
	}
	logger = l
}
