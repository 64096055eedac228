package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
)

// Decoder turns a response body into v, which is a non nil pointer
type Decoder interface {
	Decode(body io.Reader, v interface{}) error
}

type JSONDecoder struct{}

func (JSONDecoder) Decode(body io.Reader, v interface{}) error {
	if body == nil {
		return ErrMissingBody
	}

	typ := targetType(v)
	name := fmt.Sprint(typ)

	data, err := io.ReadAll(body)
	if err != nil {
		return &DecodingError{Type: name, Err: err}
	}

	// a null body would leave v untouched, so the caller would get neither a value nor an error
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return &DecodingError{Type: name, Err: fmt.Errorf("cannot decode null body")}
	}

	if err := json.Unmarshal(data, v); err != nil {
		return &DecodingError{Type: name, Err: err}
	}

	return nil
}

func targetType(v interface{}) reflect.Type {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Ptr {
		return t.Elem()
	}

	return t
}
