package transport

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/atomic"
)

type MockHandler func(req *Request) (*Response, error)

// Mock answers requests whose body matches a registered body exactly, others get a 404
type Mock struct {
	handlers map[string]MockHandler
	m        sync.RWMutex
	calls    atomic.Int64
}

func NewMock() *Mock {
	return &Mock{
		handlers: map[string]MockHandler{},
	}
}

func (m *Mock) On(body string, h MockHandler) *Mock {
	m.m.Lock()
	m.handlers[body] = h
	m.m.Unlock()

	return m
}

// Respond registers a fixed response for body, an empty resBody means no body at all
func (m *Mock) Respond(body string, code int, resBody string) *Mock {
	return m.On(body, func(_ *Request) (*Response, error) {
		return NewStringResponse(code, resBody), nil
	})
}

// Calls returns how many requests reached the mock
func (m *Mock) Calls() int {
	return int(m.calls.Load())
}

func (m *Mock) Execute(req *Request) (*Response, error) {
	m.calls.Inc()

	m.m.RLock()
	h, ok := m.handlers[string(req.Body)]
	m.m.RUnlock()

	if !ok {
		return NewResponse(http.StatusNotFound, nil), nil
	}

	return h(req)
}

func (m *Mock) Submit(req *Request, onSuccess func(*Response), onFailure func(error)) {
	submit(m.Execute, req, onSuccess, onFailure)
}

func NewStringResponse(code int, body string) *Response {
	var rc io.ReadCloser
	if body != "" {
		rc = io.NopCloser(strings.NewReader(body))
	}

	return NewResponse(code, rc)
}
