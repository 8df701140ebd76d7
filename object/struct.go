package object

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// FromStruct converts a struct (or pointer to struct) into a nested
// map[string]any so that path helpers and property iteratees can read it.
//
// Field names are taken from `mapstructure` tags when present and the field
// name otherwise. Nested structs become nested maps.
func FromStruct(v any) (map[string]any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotStruct, v)
	}

	out := make(map[string]any)
	if err := mapstructure.Decode(rv.Interface(), &out); err != nil {
		return nil, fmt.Errorf("object: decoding %T: %w", v, err)
	}
	return out, nil
}
