package transport

import (
	"context"
	"io"
	"net/http"
)

const (
	ContentTypeHeader = "Content-Type"
	AcceptHeader      = "Accept"

	ContentTypeJSON = "application/json"
)

// Request is a wire-ready GraphQL request
type Request struct {
	Context context.Context

	Method string
	URL    string
	Header http.Header
	Body   []byte
}

func (r *Request) context() context.Context {
	if r.Context == nil {
		return context.Background()
	}

	return r.Context
}

// Response is the transport-level outcome of a Request.
// Status holds the status text only, ie "Not Found" for a 404.
// A nil Body means the response carried no body.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       io.ReadCloser
}

func NewResponse(code int, body io.ReadCloser) *Response {
	return &Response{
		StatusCode: code,
		Status:     http.StatusText(code),
		Header:     http.Header{},
		Body:       body,
	}
}

func (r *Response) Successful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) Close() {
	if r.Body != nil {
		_ = r.Body.Close()
	}
}

type Transport interface {
	// Execute blocks until the response is available
	Execute(req *Request) (*Response, error)
	// Submit returns immediately, exactly one of onSuccess or onFailure is expected to be called later
	Submit(req *Request, onSuccess func(*Response), onFailure func(error))
}
