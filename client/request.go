package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/infiotinc/gqlproxy/client/transport"
)

// OperationRequest is the JSON body sent for every call, Variables is left out when the operation has none
type OperationRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// Encode serializes the request, identical requests always encode to identical bytes
func (r OperationRequest) Encode() ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func newRequest(ctx context.Context, endpoint string, op *Operation, vars map[string]interface{}) (*transport.Request, error) {
	body, err := OperationRequest{
		Query:     op.Query,
		Variables: vars,
	}.Encode()
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set(transport.ContentTypeHeader, transport.ContentTypeJSON)
	header.Set(transport.AcceptHeader, transport.ContentTypeJSON)

	return &transport.Request{
		Context: ctx,
		Method:  http.MethodPost,
		URL:     endpoint,
		Header:  header,
		Body:    body,
	}, nil
}
