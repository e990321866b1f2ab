// Package errs wraps cockroachdb/errors so the rest of the codebase gets
// stack traces and sentinel marking without importing the library directly.
package errs

import (
	"fmt"
	"strings"

	cockroach "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cockroach.New(msg)
}

// Wrap annotates err with msg, keeping the original stack. A nil err stays
// nil so callers can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cockroach.Wrap(err, msg)
}

// Mark makes errors.Is(result, sentinel) true while the wrapped cause stays
// available for logging. When err is nil the sentinel is returned as is.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cockroach.Mark(err, sentinel)
}

// ExtractStackLines renders the verbose form of err and returns up to
// maxLines of it, enough to locate the failure in structured logs without
// dumping the whole trace.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		return lines[:maxLines]
	}
	return lines
}
