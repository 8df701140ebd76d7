package examples

import "errors"

// ErrExampleFailed wraps every failure reported by an [Example].
var ErrExampleFailed = errors.New("examples: example failed")
