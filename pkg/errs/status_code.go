package errs

import "fmt"

// StatusCodeError is a non-2xx response whose body carried no envelope
// errors. The URL never includes the credential query parameters.
type StatusCodeError struct {
	StatusCode int
	URL        string
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("statusCode %v for the url %s", e.StatusCode, e.URL)
}
