package lang

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var equalOptions = []cmp.Option{
	cmpopts.EquateNaNs(),
	cmpopts.EquateEmpty(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// IsEqual performs a deep comparison between a and b.
//
// Values of different dynamic types are never equal. Unexported struct
// fields take part in the comparison.
func IsEqual(a, b any) bool {
	return cmp.Equal(a, b, equalOptions...)
}

// IsMatch reports whether object contains every key of source with a deeply
// equal value. An empty source matches any object.
func IsMatch[K comparable, V any](object, source map[K]V) bool {
	for k, want := range source {
		got, ok := object[k]
		if !ok || !IsEqual(got, want) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether v has no elements, in lodash's sense: nil, empty
// strings, slices, maps, arrays and channels, nil pointers and structs
// without fields are empty. Numbers and booleans are always empty because
// they have no enumerable contents.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.Pointer:
		return rv.IsNil()
	case reflect.Struct:
		return rv.NumField() == 0
	default:
		return true
	}
}
