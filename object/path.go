package object

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dotted-path helpers for nested map[string]any
// ─────────────────────────────────────────────────────────────────────────────

// GetPath returns the value at the dotted path, or def[0] (or nil) when any
// segment is missing or a non-map value sits in the middle of the path.
//
//	GetPath(m, "user.address.city")        // "London"
//	GetPath(m, "user.missing", "default")  // "default"
func GetPath(m map[string]any, path string, def ...any) any {
	if v, ok := lookupPath(m, strings.Split(path, ".")); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// HasPath reports whether the dotted path exists in m.
func HasPath(m map[string]any, path string) bool {
	_, ok := lookupPath(m, strings.Split(path, "."))
	return ok
}

func lookupPath(m map[string]any, segments []string) (any, bool) {
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// SetPath writes value at the dotted path, creating intermediate maps as
// needed and replacing non-map values that are in the way. It returns m.
func SetPath(m map[string]any, path string, value any) map[string]any {
	if m == nil {
		m = make(map[string]any)
	}
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		m[path] = value
		return m
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		child = make(map[string]any)
		m[seg] = child
	}
	SetPath(child, rest, value)
	return m
}

// Unset removes the value at the dotted path and reports whether anything was
// removed. Emptied intermediate maps are kept.
func Unset(m map[string]any, path string) bool {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		_, ok := m[path]
		delete(m, path)
		return ok
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		return false
	}
	return Unset(child, rest)
}

// Dot flattens nested maps into a single level keyed by dotted paths.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			dotFlatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

// Undot expands a flat dotted map back into nested maps.
func Undot(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for path, v := range m {
		SetPath(out, path, v)
	}
	return out
}

// Merge merges src into dst and returns dst. Nested maps are merged
// recursively; any other src value overwrites dst.
func Merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, srcVal := range src {
		if dstMap, ok := dst[k].(map[string]any); ok {
			if srcMap, ok := srcVal.(map[string]any); ok {
				Merge(dstMap, srcMap)
				continue
			}
		}
		dst[k] = srcVal
	}
	return dst
}
