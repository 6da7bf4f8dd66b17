package motion

import (
	"fmt"
	"os"
)

// Warnings logs recoverable misuse (missing pools, double releases) to
// stderr. Replace it to route diagnostics elsewhere, or set it to nil to
// silence them. Programmer errors (nil owners) panic instead and are not
// routed through here.
var Warnings = func(msg string) {
	_, _ = fmt.Fprintf(os.Stderr, "[motion] warning: %s\n", msg)
}

func warnf(format string, args ...any) {
	if Warnings == nil {
		return
	}
	Warnings(fmt.Sprintf(format, args...))
}
