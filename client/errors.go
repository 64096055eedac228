package client

import (
	"errors"
	"fmt"

	"github.com/infiotinc/gqlproxy/client/transport"
)

var ErrMissingBody = errors.New("body is nil, cannot decode a body that doesn't exist")

// MissingQueryError is returned for methods that have no Operation, before any request is made
type MissingQueryError struct {
	Method string
}

func (e *MissingQueryError) Error() string {
	return fmt.Sprintf("no query for method %s", e.Method)
}

// HTTPError is returned when the endpoint answers with a non 2xx status
type HTTPError struct {
	StatusCode int
	Status     string
}

func newHTTPError(res *transport.Response) *HTTPError {
	return &HTTPError{
		StatusCode: res.StatusCode,
		Status:     res.Status,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, e.Status)
}

type DecodingError struct {
	Type string
	Err  error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("cannot decode body into %s: %v", e.Type, e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

// ArgumentError is returned when a variable is bound to an argument the caller did not supply
type ArgumentError struct {
	Method   string
	Variable string
	Index    int
	Args     int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("method %s: variable %s is bound to argument %d but %d arguments were given", e.Method, e.Variable, e.Index, e.Args)
}
