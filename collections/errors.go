package collections

import "errors"

// ErrInvalidIteratee is returned by the *By helpers when the iteratee
// shorthand cannot be resolved for the element type.
var ErrInvalidIteratee = errors.New("collections: invalid iteratee")
