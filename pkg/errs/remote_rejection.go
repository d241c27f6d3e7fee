package errs

import (
	"errors"
	"fmt"
	"strings"
)

var ErrRemoteRejected = errors.New("rejected by datadog")

// RemoteRejectionError carries the error strings datadog reported in the
// response envelope, verbatim and in order.
type RemoteRejectionError struct {
	Errors []string
}

func NewRemoteRejection(errors []string) RemoteRejectionError {
	return RemoteRejectionError{Errors: errors}
}

func (e RemoteRejectionError) Error() string {
	return fmt.Sprintf("datadog rejected the request: [%s]", strings.Join(e.Errors, ", "))
}

func (e RemoteRejectionError) Is(target error) bool { return target == ErrRemoteRejected }
