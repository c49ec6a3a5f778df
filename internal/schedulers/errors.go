package schedulers

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput is returned when a process set cannot be simulated.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownScheduler is returned for an unregistered policy name.
	ErrUnknownScheduler = errors.New("unknown scheduler")
)

// ValidationError describes the first offending process of a rejected set.
// ProcessID is 0 when the problem concerns the set as a whole.
type ValidationError struct {
	ProcessID int
	Field     string
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.ProcessID == 0 && e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%s: process %d: %s %s", ErrInvalidInput, e.ProcessID, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
