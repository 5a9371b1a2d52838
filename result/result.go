// Package result provides a two-variant outcome type used to carry expected,
// data-dependent failures without panicking.
//
// A Result holds either a success value (Ok) or an error value (Err), never both.
// Go methods cannot declare their own type parameters, so the combinators that
// change the value or error type (Map, MapErr, Then, Traverse) are functions.
package result

import (
	"fmt"
)

// Result is an immutable outcome holding either a value of type T or an error of type E.
type Result[E, T any] struct {
	value T
	err   E
	ok    bool
}

// Ok constructs a successful Result.
func Ok[E, T any](value T) Result[E, T] {
	return Result[E, T]{value: value, ok: true}
}

// Err constructs a failed Result.
func Err[E, T any](err E) Result[E, T] {
	return Result[E, T]{err: err}
}

// IsOk reports whether r holds a value.
func (r Result[E, T]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r holds an error.
func (r Result[E, T]) IsErr() bool {
	return !r.ok
}

// Get returns the value and true, or the zero value and false.
func (r Result[E, T]) Get() (T, bool) {
	return r.value, r.ok
}

// Failure returns the error and true, or the zero error and false.
func (r Result[E, T]) Failure() (E, bool) {
	return r.err, !r.ok
}

// Unwrap returns the value. Calling it on an Err is a programmer error and panics.
func (r Result[E, T]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("called Unwrap on an Err value: %v", r.err))
	}

	return r.value
}

// UnwrapOr returns the value, or def when r is an Err.
func (r Result[E, T]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}

	return r.value
}

// String renders r as Ok(value) or Err(error).
func (r Result[E, T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}

	return fmt.Sprintf("Err(%v)", r.err)
}

// Map transforms the value of a successful Result and passes errors through.
func Map[E, T, U any](r Result[E, T], f func(T) U) Result[E, U] {
	if !r.ok {
		return Err[E, U](r.err)
	}

	return Ok[E](f(r.value))
}

// MapErr transforms the error of a failed Result and passes values through.
func MapErr[E, F, T any](r Result[E, T], f func(E) F) Result[F, T] {
	if r.ok {
		return Ok[F](r.value)
	}

	return Err[F, T](f(r.err))
}

// Then chains a dependent fallible step, short-circuiting on the first error.
func Then[E, T, U any](r Result[E, T], f func(T) Result[E, U]) Result[E, U] {
	if !r.ok {
		return Err[E, U](r.err)
	}

	return f(r.value)
}

// Traverse applies f to items in order and returns either the ordered values
// or the first (leftmost) error.
func Traverse[E, A, T any](items []A, f func(A) Result[E, T]) Result[E, []T] {
	return TraverseIndexed(items, func(_ int, item A) Result[E, T] {
		return f(item)
	})
}

// TraverseIndexed is Traverse with the item position passed to f.
func TraverseIndexed[E, A, T any](items []A, f func(int, A) Result[E, T]) Result[E, []T] {
	values := make([]T, 0, len(items))
	for i, item := range items {
		r := f(i, item)
		if !r.ok {
			return Err[E, []T](r.err)
		}

		values = append(values, r.value)
	}

	return Ok[E](values)
}
