package oerror

import (
	"fmt"
	"strings"
)

type WaddleError struct {
	Err string
}

func New(format string, args ...any) *WaddleError {
	return &WaddleError{Err: fmt.Sprintf(format, args...)}
}

func (e *WaddleError) Error() string {
	return e.Err
}

// ValidationError collects every problem found while checking a configuration.
type ValidationError struct {
	Problems []string
}

// Addf records a problem.
func (e *ValidationError) Addf(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// OrNil returns nil if no problems were recorded.
func (e *ValidationError) OrNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	return "invalid settings: " + strings.Join(e.Problems, "; ")
}
