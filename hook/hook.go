// Package hook maps container types to the decompose/recompose pair
// that lets them participate in multi-focus traversal. Slices, arrays
// and maps work out of the box; other types either implement the
// Decomposer interface or get registered against the process-wide
// registry during initialization.
package hook

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Entry is one registered decomposition behavior.
type Entry struct {
	// Decompose returns the state's elements in positional order.
	Decompose func(state any) ([]any, error)
	// Recompose builds a new state from the original plus a
	// replacement element sequence of the same length. It must not
	// mutate the original.
	Recompose func(state any, elems []any) (any, error)
}

// Decomposer is the compile-time alternative to registration: a type
// implementing it participates in traversal without a registry entry.
type Decomposer interface {
	// Decompose returns the value's elements in positional order.
	Decompose() []any
	// Recompose returns a new value with the given elements in place
	// of the original ones, leaving the receiver untouched.
	Recompose(elems []any) (any, error)
}

// Registry is a thread-safe store of hook entries keyed by type.
// Interface types may be registered too; they match any value whose
// type implements them.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[reflect.Type]Entry)}
}

// Register stores an entry for a type, overwriting any previous entry
// for the same type. Last write wins.
func (r *Registry) Register(t reflect.Type, e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[t] = e
}

// Get retrieves the entry registered for exactly this type.
func (r *Registry) Get(t reflect.Type) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[t]
	return entry, ok
}

// Unregister removes the entry for a type. Returns true if one was
// registered.
func (r *Registry) Unregister(t reflect.Type) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[t]; !ok {
		return false
	}
	delete(r.entries, t)
	return true
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// For resolves the entry for a concrete value. Resolution order: an
// entry registered for the value's exact type, the Decomposer
// interface, an entry registered for an interface type the value
// implements (most methods first), then the built-in slice/array and
// map behaviors.
func (r *Registry) For(state any) (Entry, bool) {
	t := reflect.TypeOf(state)
	if t == nil {
		return Entry{}, false
	}
	if entry, ok := r.Get(t); ok {
		return entry, true
	}
	if _, ok := state.(Decomposer); ok {
		return decomposerEntry, true
	}
	if entry, ok := r.interfaceFor(t); ok {
		return entry, true
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return sequenceEntry, true
	case reflect.Map:
		return mappingEntry, true
	}
	return Entry{}, false
}

// interfaceFor finds a registered interface type implemented by t,
// preferring the one with the most methods (ties broken by name) so
// the most specific protocol wins.
func (r *Registry) interfaceFor(t reflect.Type) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var (
		best      reflect.Type
		bestEntry Entry
	)
	for key, entry := range r.entries {
		if key.Kind() != reflect.Interface || !t.Implements(key) {
			continue
		}
		if best == nil || key.NumMethod() > best.NumMethod() ||
			(key.NumMethod() == best.NumMethod() && key.String() < best.String()) {
			best = key
			bestEntry = entry
		}
	}
	return bestEntry, best != nil
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry. It starts empty: slice,
// array and map support is part of resolution itself, so exact-type
// registrations shadow the built-ins without being able to break them.
func Default() *Registry {
	return defaultRegistry
}

// decomposerEntry adapts a Decomposer value to an Entry.
var decomposerEntry = Entry{
	Decompose: func(state any) ([]any, error) {
		return state.(Decomposer).Decompose(), nil
	},
	Recompose: func(state any, elems []any) (any, error) {
		return state.(Decomposer).Recompose(elems)
	},
}

// sequenceEntry is the built-in behavior for slices and arrays:
// positional decomposition, length-preserving positional replacement.
var sequenceEntry = Entry{
	Decompose: func(state any) ([]any, error) {
		v := reflect.ValueOf(state)
		elems := make([]any, v.Len())
		for i := range elems {
			elems[i] = v.Index(i).Interface()
		}
		return elems, nil
	},
	Recompose: func(state any, elems []any) (any, error) {
		v := reflect.ValueOf(state)
		if len(elems) != v.Len() {
			return nil, fmt.Errorf("sequence recompose: %d replacements for %d elements", len(elems), v.Len())
		}
		// Nothing to replace: hand back the original so a nil slice
		// stays nil.
		if len(elems) == 0 {
			return state, nil
		}
		var out reflect.Value
		if v.Kind() == reflect.Array {
			out = reflect.New(v.Type()).Elem()
		} else {
			out = reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		}
		for i, elem := range elems {
			ev, err := Coerce(elem, v.Type().Elem())
			if err != nil {
				return nil, fmt.Errorf("sequence recompose at %d: %w", i, err)
			}
			out.Index(i).Set(ev)
		}
		return out.Interface(), nil
	},
}

// mappingEntry is the built-in behavior for maps: values in ascending
// key order, keys preserved on recompose.
var mappingEntry = Entry{
	Decompose: func(state any) ([]any, error) {
		v := reflect.ValueOf(state)
		keys := SortedMapKeys(v)
		elems := make([]any, len(keys))
		for i, key := range keys {
			elems[i] = v.MapIndex(key).Interface()
		}
		return elems, nil
	},
	Recompose: func(state any, elems []any) (any, error) {
		v := reflect.ValueOf(state)
		keys := SortedMapKeys(v)
		if len(elems) != len(keys) {
			return nil, fmt.Errorf("map recompose: %d replacements for %d values", len(elems), len(keys))
		}
		// Nothing to replace: hand back the original so a nil map
		// stays nil.
		if len(elems) == 0 {
			return state, nil
		}
		out := reflect.MakeMapWithSize(v.Type(), len(keys))
		for i, key := range keys {
			ev, err := Coerce(elems[i], v.Type().Elem())
			if err != nil {
				return nil, fmt.Errorf("map recompose at key %v: %w", key.Interface(), err)
			}
			out.SetMapIndex(key, ev)
		}
		return out.Interface(), nil
	},
}

// SortedMapKeys returns a map's keys in the canonical traversal order:
// ascending numerically for integer and float keys, lexicographically
// for strings, by formatted value otherwise.
func SortedMapKeys(v reflect.Value) []reflect.Value {
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })
	return keys
}

func keyLess(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	case reflect.String:
		return a.String() < b.String()
	}
	return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
}

// Coerce converts a replacement value to something assignable to t,
// mapping nil to t's zero value. It is exported for custom hook
// implementations that rebuild containers reflectively.
func Coerce(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("cannot use %T as %v", value, t)
	}
	return rv, nil
}
