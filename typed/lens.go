// Package typed provides compile-time optics over concrete Go types.
// Where a structure's shape is known statically, a typed Lens or Prism
// catches misuse at compile time; Optic() lifts any typed optic into
// the dynamic engine so it composes with hook-based traversals.
package typed

import (
	"fmt"

	"github.com/auth-platform/optics"
	"github.com/auth-platform/optics/maybe"
	"github.com/auth-platform/optics/tuple"
)

// Lens focuses exactly one A inside an S.
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// NewLens creates a lens from a getter/setter pair. The setter must
// return a new S and leave its argument untouched.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// Get retrieves the focused value.
func (l Lens[S, A]) Get(state S) A {
	return l.get(state)
}

// Set returns a new state with the focused value replaced.
func (l Lens[S, A]) Set(state S, value A) S {
	return l.set(state, value)
}

// Modify applies a function to the focused value.
func (l Lens[S, A]) Modify(state S, fn func(A) A) S {
	return l.set(state, fn(l.get(state)))
}

// Optic lifts the lens into the dynamic engine. The state must be an S
// and replacements must be As at application time; anything else fails
// with FOCUS_ERROR.
func (l Lens[S, A]) Optic() optics.Optic {
	return optics.NewLens(
		func(state any) (any, error) {
			s, err := as[S](state, "state")
			if err != nil {
				return nil, err
			}
			return l.get(s), nil
		},
		func(state, value any) (any, error) {
			s, err := as[S](state, "state")
			if err != nil {
				return nil, err
			}
			a, err := as[A](value, "replacement")
			if err != nil {
				return nil, err
			}
			return l.set(s, a), nil
		},
	)
}

// Compose creates a lens focusing deeper: outer first, then inner
// within the outer focus.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) B {
			return inner.get(outer.get(s))
		},
		set: func(s S, b B) S {
			return outer.set(s, inner.set(outer.get(s), b))
		},
	}
}

// Identity creates the lens whose focus is the state itself.
func Identity[S any]() Lens[S, S] {
	return Lens[S, S]{
		get: func(s S) S { return s },
		set: func(_ S, s S) S { return s },
	}
}

// First creates a lens on the first element of a pair.
func First[A, B any]() Lens[tuple.Pair[A, B], A] {
	return Lens[tuple.Pair[A, B], A]{
		get: func(p tuple.Pair[A, B]) A { return p.First },
		set: func(p tuple.Pair[A, B], a A) tuple.Pair[A, B] {
			return tuple.Pair[A, B]{First: a, Second: p.Second}
		},
	}
}

// Second creates a lens on the second element of a pair.
func Second[A, B any]() Lens[tuple.Pair[A, B], B] {
	return Lens[tuple.Pair[A, B], B]{
		get: func(p tuple.Pair[A, B]) B { return p.Second },
		set: func(p tuple.Pair[A, B], b B) tuple.Pair[A, B] {
			return tuple.Pair[A, B]{First: p.First, Second: b}
		},
	}
}

// Third creates a lens on the last element of a triple. The first two
// elements are reachable by composing Leading with First or Second.
func Third[A, B, C any]() Lens[tuple.Triple[A, B, C], C] {
	return Lens[tuple.Triple[A, B, C], C]{
		get: func(t tuple.Triple[A, B, C]) C { return t.Third },
		set: func(t tuple.Triple[A, B, C], c C) tuple.Triple[A, B, C] {
			return tuple.Triple[A, B, C]{First: t.First, Second: t.Second, Third: c}
		},
	}
}

// Leading creates a lens on the first two elements of a triple, seen
// as a pair.
func Leading[A, B, C any]() Lens[tuple.Triple[A, B, C], tuple.Pair[A, B]] {
	return Lens[tuple.Triple[A, B, C], tuple.Pair[A, B]]{
		get: func(t tuple.Triple[A, B, C]) tuple.Pair[A, B] { return t.ToPair() },
		set: func(t tuple.Triple[A, B, C], p tuple.Pair[A, B]) tuple.Triple[A, B, C] {
			return tuple.Triple[A, B, C]{First: p.First, Second: p.Second, Third: t.Third}
		},
	}
}

// At creates a lens on a map's value at a key, with presence tracked
// through Maybe: setting Just inserts or replaces, setting Nothing
// deletes. The map is copied on write.
func At[K comparable, V any](key K) Lens[map[K]V, maybe.Maybe[V]] {
	return Lens[map[K]V, maybe.Maybe[V]]{
		get: func(m map[K]V) maybe.Maybe[V] {
			if v, ok := m[key]; ok {
				return maybe.Just(v)
			}
			return maybe.Nothing[V]()
		},
		set: func(m map[K]V, opt maybe.Maybe[V]) map[K]V {
			out := make(map[K]V, len(m))
			for k, v := range m {
				out[k] = v
			}
			if v, ok := opt.Get(); ok {
				out[key] = v
			} else {
				delete(out, key)
			}
			return out
		},
	}
}

// as asserts a dynamic value down to T for the engine boundary.
func as[T any](value any, what string) (T, error) {
	t, ok := value.(T)
	if !ok {
		var zero T
		return zero, &optics.Error{
			Code:    optics.CodeFocus,
			Message: fmt.Sprintf("%s is %T, want %T", what, value, zero),
		}
	}
	return t, nil
}
