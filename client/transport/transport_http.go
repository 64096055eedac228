package transport

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
)

type HttpRequestOption func(req *http.Request)

func WithHeader(key, value string) HttpRequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

type Http struct {
	// Client defaults to http.DefaultClient
	Client         *http.Client
	RequestOptions []HttpRequestOption
}

func (h *Http) client() *http.Client {
	if h.Client == nil {
		return http.DefaultClient
	}

	return h.Client
}

func (h *Http) Execute(gqlreq *Request) (*Response, error) {
	req, err := http.NewRequestWithContext(gqlreq.context(), gqlreq.Method, gqlreq.URL, bytes.NewReader(gqlreq.Body))
	if err != nil {
		return nil, err
	}

	for k, vs := range gqlreq.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	for _, ro := range h.RequestOptions {
		ro(req)
	}

	res, err := h.client().Do(req)
	if err != nil {
		return nil, err
	}

	body := res.Body
	if body == http.NoBody {
		body = nil
	}

	return &Response{
		StatusCode: res.StatusCode,
		Status:     statusText(res),
		Header:     res.Header,
		Body:       body,
	}, nil
}

func (h *Http) Submit(req *Request, onSuccess func(*Response), onFailure func(error)) {
	submit(h.Execute, req, onSuccess, onFailure)
}

// statusText strips the numeric code net/http prepends to Status
func statusText(res *http.Response) string {
	text := strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode))
	text = strings.TrimSpace(text)
	if text == "" {
		return http.StatusText(res.StatusCode)
	}

	return text
}

func submit(execute func(*Request) (*Response, error), req *Request, onSuccess func(*Response), onFailure func(error)) {
	go func() {
		res, err := execute(req)
		if err != nil {
			onFailure(err)
			return
		}

		onSuccess(res)
	}()
}
