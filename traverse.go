package optics

import (
	"reflect"

	"github.com/auth-platform/optics/hook"
)

// Both returns a Traversal over the first two decomposed elements of a
// state, resolved through the hook registry. A state that decomposes
// to fewer than two elements fails with FOCUS_ERROR; elements past the
// second are untouched by rebuilds.
func Both() Optic {
	run := func(state any) ([]any, rebuildFunc, error) {
		entry, elems, err := decompose(state)
		if err != nil {
			return nil, nil, err
		}
		if len(elems) < 2 {
			return nil, nil, focusErrorf("both: %T decomposes to %d elements, need 2", state, len(elems))
		}
		rebuild := func(vs []any) (any, error) {
			if len(vs) != 2 {
				return nil, focusErrorf("both rebuild wants 2 values, got %d", len(vs))
			}
			replaced := make([]any, len(elems))
			copy(replaced, elems)
			replaced[0], replaced[1] = vs[0], vs[1]
			out, err := entry.Recompose(state, replaced)
			if err != nil {
				return nil, wrapFocus(err)
			}
			return out, nil
		}
		return []any{elems[0], elems[1]}, rebuild, nil
	}
	return elementary("both", Traversal, run)
}

// Each returns a Traversal over every decomposed element of a state,
// resolved through the hook registry. Maps are traversed in ascending
// key order with keys preserved on rebuild.
func Each() Optic {
	run := func(state any) ([]any, rebuildFunc, error) {
		entry, elems, err := decompose(state)
		if err != nil {
			return nil, nil, err
		}
		rebuild := func(vs []any) (any, error) {
			if len(vs) != len(elems) {
				return nil, focusErrorf("each rebuild wants %d values, got %d", len(elems), len(vs))
			}
			out, err := entry.Recompose(state, vs)
			if err != nil {
				return nil, wrapFocus(err)
			}
			return out, nil
		}
		return elems, rebuild, nil
	}
	return elementary("each", Traversal, run)
}

// Values returns a Traversal over a map's values in ascending key
// order, with keys preserved on rebuild. A non-map state fails with
// FOCUS_ERROR.
func Values() Optic {
	run := func(state any) ([]any, rebuildFunc, error) {
		v := reflect.ValueOf(state)
		if v.Kind() != reflect.Map {
			return nil, nil, focusErrorf("values: %T is not a map", state)
		}
		keys := hook.SortedMapKeys(v)
		foci := make([]any, len(keys))
		for i, key := range keys {
			foci[i] = v.MapIndex(key).Interface()
		}
		rebuild := func(vs []any) (any, error) {
			if len(vs) != len(keys) {
				return nil, focusErrorf("values rebuild wants %d values, got %d", len(keys), len(vs))
			}
			if len(keys) == 0 {
				return state, nil
			}
			out := reflect.MakeMapWithSize(v.Type(), len(keys))
			for i, key := range keys {
				rv, err := hook.Coerce(vs[i], v.Type().Elem())
				if err != nil {
					return nil, focusErrorf("values at key %v: %v", key.Interface(), err)
				}
				out.SetMapIndex(key, rv)
			}
			return out.Interface(), nil
		}
		return foci, rebuild, nil
	}
	return elementary("values", Traversal, run)
}

func decompose(state any) (hook.Entry, []any, error) {
	entry, err := LookupHook(state)
	if err != nil {
		return hook.Entry{}, nil, err
	}
	elems, err := entry.Decompose(state)
	if err != nil {
		return hook.Entry{}, nil, wrapFocus(err)
	}
	return entry, elems, nil
}
