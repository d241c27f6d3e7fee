package errs

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("screenboard not found")

func NewNotFound(id int) NotFoundError {
	return NotFoundError{id: id}
}

type NotFoundError struct {
	id int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("unable to find screenboard for id %d", e.id)
}

func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }
