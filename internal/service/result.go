package service

import (
	"context"
	"fmt"
)

// State is the phase a query result is in.
type State int

const (
	StateLoading State = iota + 1
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrorKind separates an absent record from an unexpected fault.
type ErrorKind int

const (
	KindFault ErrorKind = iota
	KindNotFound
)

func (k ErrorKind) String() string {
	if k == KindNotFound {
		return "not_found"
	}
	return "fault"
}

// QueryError is the payload of a terminal error state.
type QueryError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *QueryError) Error() string {
	return e.Message
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the query found no matching record.
func (e *QueryError) NotFound() bool {
	return e.Kind == KindNotFound
}

// Result is one emission of a query: Loading, Success(value) or Error.
// The zero value is not a valid state.
type Result[T any] struct {
	state State
	value T
	err   *QueryError
}

// Loading returns the in-flight state.
func Loading[T any]() Result[T] {
	return Result[T]{state: StateLoading}
}

// Success returns a terminal state carrying value.
func Success[T any](value T) Result[T] {
	return Result[T]{state: StateSuccess, value: value}
}

// Failure returns a terminal error state.
func Failure[T any](err *QueryError) Result[T] {
	return Result[T]{state: StateError, err: err}
}

// State returns the phase of the result.
func (r Result[T]) State() State {
	return r.state
}

// Terminal reports whether no further emissions follow r.
func (r Result[T]) Terminal() bool {
	return r.state == StateSuccess || r.state == StateError
}

// Value returns the success payload.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.state == StateSuccess
}

// Err returns the error payload, nil unless the state is StateError.
func (r Result[T]) Err() *QueryError {
	return r.err
}

// Outcome is a short label for metrics and logs.
func (r Result[T]) Outcome() string {
	switch r.state {
	case StateSuccess:
		return "success"
	case StateError:
		return r.err.Kind.String()
	default:
		return r.state.String()
	}
}

// Match dispatches on the state of r. Every branch is required.
func Match[T, R any](
	r Result[T],
	onLoading func() R,
	onSuccess func(T) R,
	onError func(*QueryError) R,
) R {
	switch r.state {
	case StateLoading:
		return onLoading()
	case StateSuccess:
		return onSuccess(r.value)
	case StateError:
		return onError(r.err)
	default:
		panic(fmt.Sprintf("service: result in invalid state %d", int(r.state)))
	}
}

// Await drains ch and returns its terminal state. If ctx ends first, or
// the stream closes without a terminal state, a fault is returned.
func Await[T any](ctx context.Context, ch <-chan Result[T]) Result[T] {
	for {
		select {
		case <-ctx.Done():
			return Failure[T](&QueryError{Kind: KindFault, Message: ctx.Err().Error(), Err: ctx.Err()})
		case r, ok := <-ch:
			if !ok {
				return Failure[T](&QueryError{Kind: KindFault, Message: "query stream closed without a result"})
			}
			if r.Terminal() {
				return r
			}
		}
	}
}
