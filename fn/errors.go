package fn

import "errors"

// Sentinel errors returned by [Curried].
var (
	// ErrNotEnoughArguments is returned when a curried function is invoked
	// before its declared arity has been reached.
	ErrNotEnoughArguments = errors.New("fn: not enough arguments")

	// ErrTooManyArguments is returned when more arguments were supplied than
	// the declared arity.
	ErrTooManyArguments = errors.New("fn: too many arguments")
)
