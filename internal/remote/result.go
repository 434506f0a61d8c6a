package remote

// Result is the outcome of one remote call: either Value or Err is meaningful.
// Err is always a *HTTPError or a *TransportError.
type Result[T any] struct {
	Value T
	Err   error
}

func (r Result[T]) Ok() bool { return r.Err == nil }

// Unwrap returns the pair form for callers that prefer it.
func (r Result[T]) Unwrap() (T, error) { return r.Value, r.Err }

func success[T any](v T) Result[T] { return Result[T]{Value: v} }

func failure[T any](err error) Result[T] { return Result[T]{Err: err} }

// Empty is the payload of calls answered with 204 No Content.
type Empty struct{}
