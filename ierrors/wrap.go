package ierrors

import (
	"fmt"
)

// Wrap annotates an error with a message.
// Wrap returns nil if err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %s", err, message)
}

// Wrapf annotates an error with a message format specifier and arguments.
// Wrapf returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}
