package domain

import "fmt"

// ErrConnection reports that a health request could not be completed or that
// the backend answered with a non-success status.
type ErrConnection struct {
	URL    string
	Status int
	Err    error
}

func (e ErrConnection) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("API health check failed with status: %d", e.Status)
	}
	return fmt.Sprintf("API connection failed: %v", e.Err)
}

func (e ErrConnection) Unwrap() error {
	return e.Err
}

// ErrParse reports a response body that is not a valid health report.
type ErrParse struct {
	URL string
	Err error
}

func (e ErrParse) Error() string {
	return fmt.Sprintf("failed to parse health response: %v", e.Err)
}

func (e ErrParse) Unwrap() error {
	return e.Err
}

// ErrConfiguration reports an invalid settings file or environment value.
type ErrConfiguration struct {
	Field string
	Err   error
}

func (e ErrConfiguration) Error() string {
	return fmt.Sprintf("configuration error: %s: %v", e.Field, e.Err)
}

func (e ErrConfiguration) Unwrap() error {
	return e.Err
}

// ErrPathNotFound is returned when asked to reveal a path that does not exist.
type ErrPathNotFound struct {
	Path string
}

func (e ErrPathNotFound) Error() string {
	return fmt.Sprintf("file does not exist: %s", e.Path)
}
