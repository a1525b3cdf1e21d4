package experiment

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownDemo = errors.New("experiment: unknown demo")
	ErrBadParam    = errors.New("experiment: malformed parameter")
)

// ParamError reports a parameter whose value has the wrong type.
type ParamError struct {
	Key   string
	Value string
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("experiment: parameter %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *ParamError) Unwrap() error { return e.Err }
