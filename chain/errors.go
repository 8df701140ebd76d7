package chain

import "errors"

// Sentinel errors returned by mixin calls.
var (
	// ErrMixinNotFound is returned when no mixin is registered under the
	// requested name.
	ErrMixinNotFound = errors.New("chain: mixin not found")

	// ErrMixinResultType is returned when a mixin returns a value that cannot
	// be wrapped as the calling chain's type.
	ErrMixinResultType = errors.New("chain: mixin returned an unexpected type")
)
