package topology

import (
	"errors"
	"fmt"
)

// MalformedInputError reports an upstream record missing a required
// structural field. This indicates a schema mismatch with the discovery
// source, not ordinary noisy data, so the whole assembly aborts rather
// than producing a topology that silently omits devices.
type MalformedInputError struct {
	Kind       string // "device", "interface"
	UpstreamID int
	Field      string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed upstream %s %d: missing required field %q", e.Kind, e.UpstreamID, e.Field)
}

// IsMalformedInput reports whether err is (or wraps) a MalformedInputError,
// letting callers distinguish schema problems from upstream fetch failures.
func IsMalformedInput(err error) bool {
	var m *MalformedInputError
	return errors.As(err, &m)
}
