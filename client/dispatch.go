package client

import (
	"context"

	"github.com/jensneuse/abstractlogger"

	"github.com/infiotinc/gqlproxy/client/transport"
)

// Unit is the result of operations that return no value, their body is never decoded
type Unit struct{}

func isVoid(out interface{}) bool {
	if out == nil {
		return true
	}

	_, ok := out.(*Unit)

	return ok
}

func (c *Client) prepare(ctx context.Context, method string, args []interface{}) (*Operation, *transport.Request, error) {
	op, ok := c.operations[method]
	if !ok {
		return nil, nil, &MissingQueryError{Method: method}
	}

	vars, err := op.variables(args)
	if err != nil {
		return nil, nil, err
	}

	req, err := newRequest(ctx, c.endpoint, op, vars)
	if err != nil {
		return nil, nil, err
	}

	return op, req, nil
}

func (c *Client) complete(op *Operation, res *transport.Response, out interface{}) error {
	defer res.Close()

	c.log.Debug("client.complete",
		abstractlogger.String("method", op.Method),
		abstractlogger.Int("status", res.StatusCode),
	)

	if !res.Successful() {
		return newHTTPError(res)
	}

	if isVoid(out) {
		return nil
	}

	return c.decoder.Decode(res.Body, out)
}

// Do runs method and blocks until its outcome is known, the result is decoded into out.
// A nil out or a *Unit discards the body.
// Transport errors are returned as is.
func (c *Client) Do(ctx context.Context, method string, out interface{}, args ...interface{}) error {
	if IsObjectMethod(method) {
		return c.local(method, out, args)
	}

	op, req, err := c.prepare(ctx, method, args)
	if err != nil {
		return err
	}

	c.log.Debug("client.Do", abstractlogger.String("method", method))

	res, err := c.transport.Execute(req)
	if err != nil {
		return err
	}

	return c.complete(op, res, out)
}

// Call runs method blocking and returns its decoded result
func Call[T any](ctx context.Context, c *Client, method string, args ...interface{}) (T, error) {
	var out T
	if err := c.Do(ctx, method, &out, args...); err != nil {
		var zero T
		return zero, err
	}

	return out, nil
}

// Exec runs a method that returns no value
func Exec(ctx context.Context, c *Client, method string, args ...interface{}) error {
	return c.Do(ctx, method, &Unit{}, args...)
}

// Submit runs method without blocking.
// Everything up to handing the request to the transport happens before it returns,
// the Future is completed exactly once from the transport callback.
func Submit[T any](ctx context.Context, c *Client, method string, args ...interface{}) *Future[T] {
	f := newFuture[T]()

	if IsObjectMethod(method) {
		var out T
		err := c.local(method, &out, args)
		f.complete(out, err)

		return f
	}

	op, req, err := c.prepare(ctx, method, args)
	if err != nil {
		var zero T
		f.complete(zero, err)

		return f
	}

	c.log.Debug("client.Submit", abstractlogger.String("method", method))

	c.transport.Submit(req, func(res *transport.Response) {
		if f.isDone() {
			res.Close()
			c.duplicate(method)
			return
		}

		var out T
		err := c.complete(op, res, &out)
		if err != nil {
			var zero T
			out = zero
		}

		if !f.complete(out, err) {
			c.duplicate(method)
		}
	}, func(err error) {
		var zero T
		if !f.complete(zero, err) {
			c.duplicate(method)
		}
	})

	return f
}

func (c *Client) duplicate(method string) {
	c.log.Warn("client.Submit: ignoring duplicate completion", abstractlogger.String("method", method))
}
