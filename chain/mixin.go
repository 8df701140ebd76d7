package chain

import (
	"fmt"
	"sync"
)

// MixinFunc is the signature of a registered mixin.
//
// The wrapped value is passed as an any so one mixin can serve every
// wrapper type. A mixin called through [Slice.Call] receives a []E and must
// return a []E; one called through [Object.Call] receives and returns a
// map[K]V; one called through [Chain.Call] receives and returns a T.
type MixinFunc func(value any, args ...any) any

var mixins struct {
	mu    sync.RWMutex
	funcs map[string]MixinFunc
}

func init() {
	mixins.funcs = make(map[string]MixinFunc)
}

// Mixin registers fn under name, replacing any previous mixin of that name.
// It is safe for concurrent use.
//
//	chain.Mixin("evens", func(v any, _ ...any) any {
//	    return collections.Filter(v.([]int), func(n int) bool { return n%2 == 0 })
//	})
//
//	out, _ := chain.New(1, 2, 3, 4).Call("evens") // [2 4]
func Mixin(name string, fn MixinFunc) {
	mixins.mu.Lock()
	defer mixins.mu.Unlock()
	mixins.funcs[name] = fn
}

// HasMixin reports whether a mixin is registered under name.
func HasMixin(name string) bool {
	mixins.mu.RLock()
	defer mixins.mu.RUnlock()
	_, ok := mixins.funcs[name]
	return ok
}

// FlushMixins removes every registered mixin. Intended for tests.
func FlushMixins() {
	mixins.mu.Lock()
	defer mixins.mu.Unlock()
	mixins.funcs = make(map[string]MixinFunc)
}

// CallMixin calls the named mixin with value and args. It returns
// [ErrMixinNotFound] when nothing is registered under name.
func CallMixin(name string, value any, args ...any) (any, error) {
	mixins.mu.RLock()
	fn, ok := mixins.funcs[name]
	mixins.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMixinNotFound, name)
	}
	return fn(value, args...), nil
}
