package iteratee

import "errors"

// ErrUnsupportedIteratee is returned by [Resolve] when the value is not one of
// the recognised shorthands.
var ErrUnsupportedIteratee = errors.New("iteratee: unsupported iteratee")
