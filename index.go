package optics

import (
	"fmt"
	"reflect"

	"github.com/auth-platform/optics/hook"
)

// Index returns a Lens focused on one position of an indexable state:
// an int position in a slice or array, or a key in a map. The lens is
// partial: an out-of-range position or missing key yields no focus, so
// Get fails with EMPTY_FOCUS while Set and Modify return the state
// unchanged. Rebuilding copies the container and shares its elements.
func Index(key any) Optic {
	run := func(state any) ([]any, rebuildFunc, error) {
		v := reflect.ValueOf(state)
		switch v.Kind() {
		case reflect.Slice, reflect.Array:
			i, ok := key.(int)
			if !ok {
				return nil, nil, focusErrorf("index: %T cannot index a %T", key, state)
			}
			if i < 0 || i >= v.Len() {
				return nil, unchangedRebuild(state), nil
			}
			rebuild := func(vs []any) (any, error) {
				if len(vs) != 1 {
					return nil, focusErrorf("index(%d) rebuild wants 1 value, got %d", i, len(vs))
				}
				rv, err := hook.Coerce(vs[0], v.Type().Elem())
				if err != nil {
					return nil, focusErrorf("index(%d): %v", i, err)
				}
				out := copyIndexable(v)
				out.Index(i).Set(rv)
				return out.Interface(), nil
			}
			return []any{v.Index(i).Interface()}, rebuild, nil

		case reflect.Map:
			kv, err := hook.Coerce(key, v.Type().Key())
			if err != nil {
				return nil, nil, focusErrorf("index: %v", err)
			}
			ev := v.MapIndex(kv)
			if !ev.IsValid() {
				return nil, unchangedRebuild(state), nil
			}
			rebuild := func(vs []any) (any, error) {
				if len(vs) != 1 {
					return nil, focusErrorf("index(%v) rebuild wants 1 value, got %d", key, len(vs))
				}
				rv, err := hook.Coerce(vs[0], v.Type().Elem())
				if err != nil {
					return nil, focusErrorf("index(%v): %v", key, err)
				}
				out := reflect.MakeMapWithSize(v.Type(), v.Len())
				iter := v.MapRange()
				for iter.Next() {
					out.SetMapIndex(iter.Key(), iter.Value())
				}
				out.SetMapIndex(kv, rv)
				return out.Interface(), nil
			}
			return []any{ev.Interface()}, rebuild, nil
		}
		return nil, nil, focusErrorf("index: %T is not indexable", state)
	}
	return elementary(fmt.Sprintf("index(%v)", key), Lens, run)
}

// unchangedRebuild handles the partial case: zero foci, so the only
// valid rebuild takes zero replacements and returns the original.
func unchangedRebuild(state any) rebuildFunc {
	return func(vs []any) (any, error) {
		if len(vs) != 0 {
			return nil, focusErrorf("rebuild of an absent focus wants 0 values, got %d", len(vs))
		}
		return state, nil
	}
}

func copyIndexable(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Array {
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		return out
	}
	out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
	reflect.Copy(out, v)
	return out
}
