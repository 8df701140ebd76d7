package object

import "errors"

// ErrNotStruct is returned by [FromStruct] when its argument is neither a
// struct nor a pointer to one.
var ErrNotStruct = errors.New("object: value is not a struct")
