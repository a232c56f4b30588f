package textcleaner

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnknownStep matches every *UnknownStepError with errors.Is.
var ErrUnknownStep = errors.New("unknown step")

// UnknownStepError is returned when a step identifier is not in the registry.
type UnknownStepError struct {
	Key string
}

func (e *UnknownStepError) Error() string {
	return fmt.Sprintf("unknown step %q", e.Key)
}

// Is reports whether target is ErrUnknownStep.
func (e *UnknownStepError) Is(target error) bool {
	return target == ErrUnknownStep
}
