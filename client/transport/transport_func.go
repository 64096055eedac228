package transport

// Func adapts a blocking function into a Transport, Submit runs it on its own goroutine
type Func func(*Request) (*Response, error)

func (f Func) Execute(req *Request) (*Response, error) {
	return f(req)
}

func (f Func) Submit(req *Request, onSuccess func(*Response), onFailure func(error)) {
	submit(f, req, onSuccess, onFailure)
}
