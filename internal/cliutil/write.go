// Package cliutil provides small helpers for the scopetools CLI.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to w, reporting any write failure on
// stderr instead of returning it. Command handlers write usage text and
// reports in long runs of calls where per-call error checks would drown
// out the logic.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
