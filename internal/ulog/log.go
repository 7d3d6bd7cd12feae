// Package ulog is the allocator's logging shim. The allocator has no
// userspace analogue of the teacher's bare serial-port uartPuts, so this
// reproduces the shape of a sibling Go project in the same retrieval pack
// (intuitivelabs/sipsp's log_common.go): a single package-level slog.Log
// and a couple of thin wrapper functions.
package ulog

import (
	"fmt"
	"os"

	"github.com/intuitivelabs/slog"
)

// Log is the generic log used throughout the allocator.
var Log slog.Log = slog.New(slog.LERR, slog.LbackTraceL|slog.LlocInfoL,
	slog.LStdErr)

// Warn is a shorthand for logging a warning message.
func Warn(f string, a ...interface{}) {
	Log.LLog(slog.LWARN, 1, "WARNING: ualloc: ", f, a...)
}

// Fatal logs that primitive failed with err and terminates the process.
// The allocator's invariants cannot be restored once a kernel primitive
// (break extension, mapping, unmapping) refuses a request, so there is no
// recovery path here by design — only a diagnostic naming the failure
// before the process exits.
func Fatal(primitive string, err error) {
	Log.LLog(slog.LERR, 1, "FATAL: ualloc: ", fmt.Sprintf("%s failed: %v", primitive, err))
	os.Exit(2)
}
