package finances

import (
	"errors"
	"fmt"
)

// Error kinds returned by ledger operations. Every operation validates its
// input before any mutation: a failed operation leaves collections untouched.
var (
	// ErrInvalid reports a malformed input (missing amount, category or
	// account; non-positive principal or term on a product).
	ErrInvalid = errors.New("invalid")
	// ErrNotFound reports an edit or delete referencing an id that no
	// longer exists.
	ErrNotFound = errors.New("not found")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
