package txnbuild

import "github.com/decred/slog"

// log is the package-level logger, disabled until a caller wires up a
// backend with UseLogger.
var log = slog.Disabled

// UseLogger sets the logger used by the txnbuild package.
func UseLogger(logger slog.Logger) {
	log = logger
}
