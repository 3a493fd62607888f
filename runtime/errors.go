// This package is the support library for the strenumgen code generator.
//
// Generated parsers come in two modes. A union with a catch-all variant
// parses totally: every input maps onto a variant, and unmatched labels
// are captured by the catch-all. A union without one parses fallibly and
// returns *UnknownLabelError for inputs that match no variant label. The
// unmatched input is carried verbatim so callers can report or recover it.
package strenum

import (
	"errors"
	"strconv"
)

// UnknownLabelError is returned by generated fallible parsers when the
// input matches no variant label of the union.
type UnknownLabelError struct {
	// Type is the name of the union the parse was for.
	Type string
	// Label is the unmatched input, verbatim.
	Label string
}

func (e *UnknownLabelError) Error() string {
	if e.Type == "" {
		return "strenum: unrecognized label " + strconv.Quote(e.Label)
	}
	return "strenum: unrecognized " + e.Type + " label " + strconv.Quote(e.Label)
}

// IsUnknownLabel reports whether err is (or wraps) an UnknownLabelError.
func IsUnknownLabel(err error) bool {
	var e *UnknownLabelError
	return errors.As(err, &e)
}
