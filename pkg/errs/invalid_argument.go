package errs

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a local precondition violation: a credential,
// url, transport handle or required field that is nil or empty.
type InvalidArgumentError struct {
	Name string
}

func NewInvalidArgument(name string) InvalidArgumentError {
	return InvalidArgumentError{Name: name}
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s is nil or empty", e.Name)
}

func (e InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }
