package client

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/jensneuse/abstractlogger"

	"github.com/infiotinc/gqlproxy/client/transport"
)

// Config holds what New needs besides the operations, only Endpoint is required
type Config struct {
	Endpoint string
	// Transport defaults to &transport.Http{}
	Transport transport.Transport
	// Decoder defaults to JSONDecoder{}
	Decoder Decoder
	// Logger defaults to abstractlogger.NoopLogger
	Logger abstractlogger.Logger
}

// Client performs the operations it was created with.
// Interface adapters embed it, so String, Equal and Hash are answered locally for every adapter.
type Client struct {
	endpoint   string
	transport  transport.Transport
	decoder    Decoder
	log        abstractlogger.Logger
	operations map[string]*Operation
}

// New validates operations and returns a Client serving them, no request is made
func New(cfg Config, operations ...Operation) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}

	c := &Client{
		endpoint:   cfg.Endpoint,
		transport:  cfg.Transport,
		decoder:    cfg.Decoder,
		log:        cfg.Logger,
		operations: make(map[string]*Operation, len(operations)),
	}

	if c.transport == nil {
		c.transport = &transport.Http{}
	}

	if c.decoder == nil {
		c.decoder = JSONDecoder{}
	}

	if c.log == nil {
		c.log = abstractlogger.NoopLogger
	}

	for _, op := range operations {
		op := op
		if err := op.validate(); err != nil {
			return nil, err
		}

		if _, ok := c.operations[op.Method]; ok {
			return nil, fmt.Errorf("duplicate operation for method %s", op.Method)
		}

		op.Vars = append([]Var(nil), op.Vars...)
		c.operations[op.Method] = &op
	}

	return c, nil
}

const (
	methodString = "String"
	methodEqual  = "Equal"
	methodHash   = "Hash"
)

// IsObjectMethod reports whether method is answered by the Client itself, such a method cannot carry a query
func IsObjectMethod(method string) bool {
	switch method {
	case methodString, methodEqual, methodHash:
		return true
	}

	return false
}

type unwrapper interface {
	unwrap() *Client
}

func (c *Client) unwrap() *Client {
	return c
}

// String describes the client, it never makes a request
func (c *Client) String() string {
	return fmt.Sprintf("client.Client{endpoint: %s, operations: %d}", c.endpoint, len(c.operations))
}

// Equal reports whether other is c, or an adapter backed by c
func (c *Client) Equal(other interface{}) bool {
	u, ok := other.(unwrapper)

	return ok && u.unwrap() == c
}

// Hash is stable for the lifetime of c
func (c *Client) Hash() uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%p", c))
}

func (c *Client) local(method string, out interface{}, args []interface{}) error {
	var v interface{}
	switch method {
	case methodString:
		v = c.String()
	case methodHash:
		v = c.Hash()
	case methodEqual:
		var other interface{}
		if len(args) > 0 {
			other = args[0]
		}
		v = c.Equal(other)
	}

	return assign(out, v)
}

func assign(out interface{}, v interface{}) error {
	if isVoid(out) {
		return nil
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return &DecodingError{Type: fmt.Sprintf("%T", out), Err: fmt.Errorf("target must be a non nil pointer")}
	}

	val := reflect.ValueOf(v)
	if !val.Type().AssignableTo(rv.Elem().Type()) {
		return &DecodingError{Type: rv.Elem().Type().String(), Err: fmt.Errorf("cannot assign %T", v)}
	}

	rv.Elem().Set(val)

	return nil
}
