package narrow

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAssertionFailed is the sentinel wrapped by every *AssertionError.
var ErrAssertionFailed = errors.New("type assertion is failed")

// AssertionError reports a value that satisfied none of the supplied
// predicates while no fallback was available.
type AssertionError struct {
	// TypeTag is the runtime type tag of the value, see TypeTag.
	TypeTag string

	// Keys are the value's key names, see Keys.
	Keys []string
}

func (e *AssertionError) Error() string {
	if e == nil {
		return ErrAssertionFailed.Error()
	}
	return fmt.Sprintf(
		"%s. object type: %s. object keys: %s",
		ErrAssertionFailed.Error(),
		e.TypeTag,
		strings.Join(e.Keys, ","),
	)
}

// Unwrap returns ErrAssertionFailed for errors.Is.
func (e *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

func newAssertionError(value any) *AssertionError {
	return &AssertionError{
		TypeTag: TypeTag(value),
		Keys:    Keys(value),
	}
}
