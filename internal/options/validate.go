// Package options provides validation shared by the functional option sets
// of the parser, merger, and scoper packages.
package options

import "errors"

// ValidateSingleInputSource checks that exactly one of the given input
// sources was configured. Each boolean reports whether one source (a file
// path, a reader, raw bytes, a master override) is set. Zero sources yields
// an error with noSourceMsg, two or more with multiSourceMsg.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}

	switch {
	case count == 0:
		return errors.New(noSourceMsg)
	case count > 1:
		return errors.New(multiSourceMsg)
	}
	return nil
}
