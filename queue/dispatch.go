package queue

import (
	"context"
	"sync"
)

// Dispatcher hands an encoded request to the computation network.
type Dispatcher interface {
	Dispatch(ctx context.Context, req *Request, payload []byte) error
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ctx context.Context, req *Request, payload []byte) error

func (f DispatcherFunc) Dispatch(ctx context.Context, req *Request, payload []byte) error {
	return f(ctx, req, payload)
}

// Dispatched is one call captured by a Recorder.
type Dispatched struct {
	Request *Request
	Payload []byte
}

// Recorder is an in-memory Dispatcher for dry runs and tests.
type Recorder struct {
	mu    sync.Mutex
	calls []Dispatched
}

func (r *Recorder) Dispatch(ctx context.Context, req *Request, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Dispatched{Request: req, Payload: append([]byte(nil), payload...)})
	return nil
}

// Calls returns a copy of everything dispatched so far.
func (r *Recorder) Calls() []Dispatched {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Dispatched(nil), r.calls...)
}

// Len returns the number of dispatched calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}
