package result

import (
	"fmt"
)

// From lifts a conventional (value, error) pair into a Result.
func From[T any](value T, err error) Result[error, T] {
	if err != nil {
		return Err[error, T](err)
	}

	return Ok[error](value)
}

// Try runs f and captures both its returned error and any panic as an Err.
func Try[T any](f func() (T, error)) (r Result[error, T]) {
	defer func() {
		if p := recover(); p != nil {
			if err, ok := p.(error); ok {
				r = Err[error, T](fmt.Errorf("panic: %w", err))
				return
			}

			r = Err[error, T](fmt.Errorf("panic: %v", p))
		}
	}()

	return From(f())
}

// Unpack converts a Result with an error-typed failure back into a (value, error) pair.
func Unpack[T any](r Result[error, T]) (T, error) {
	if !r.ok {
		var zero T
		return zero, r.err
	}

	return r.value, nil
}
