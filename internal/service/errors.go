package service

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownGoal      = errors.New("unknown goal")
	ErrUnknownFrequency = errors.New("unknown frequency")
	ErrInvalidInput     = errors.New("invalid input")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func formatValidationErrors(kind string, errs []error) error {
	msg := fmt.Sprintf("%s validation failed (%d errors):", kind, len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
