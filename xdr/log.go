package xdr

import "github.com/decred/slog"

// log is the package-level logger. It is disabled until a caller wires
// up a backend with UseLogger, following the same convention the
// ancestor node codebase uses in every subsystem package.
var log = slog.Disabled

// UseLogger sets the logger used by the xdr package. It is safe to call
// before any decoding/encoding happens; codec errors are already
// returned to the caller, so this is purely for optional tracing of
// malformed input during interop debugging.
func UseLogger(logger slog.Logger) {
	log = logger
}
