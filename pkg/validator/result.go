package validator

// Result is the outcome of a single field validator. When Valid is true
// Value holds the cleaned value and Err is nil; otherwise Err describes
// the first failure and Value is the zero value.
type Result[T any] struct {
	Valid bool
	Value T
	Err   *ValidationError
}

// Ok wraps a cleaned value.
func Ok[T any](value T) Result[T] {
	return Result[T]{Valid: true, Value: value}
}

// Fail wraps a validation error.
func Fail[T any](err *ValidationError) Result[T] {
	return Result[T]{Err: err}
}

// Unpack converts the result into Go's value, error form.
func (r Result[T]) Unpack() (T, error) {
	if !r.Valid {
		var zero T
		return zero, r.Err
	}
	return r.Value, nil
}
