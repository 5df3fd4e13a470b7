package typed

import (
	"github.com/auth-platform/optics"
	"github.com/auth-platform/optics/maybe"
)

// Prism focuses the A that may or may not be inside an S, and can
// construct an S from an A alone.
type Prism[S, A any] struct {
	match func(S) maybe.Maybe[A]
	build func(A) S
}

// NewPrism creates a prism from a partial match and a constructor.
func NewPrism[S, A any](match func(S) maybe.Maybe[A], build func(A) S) Prism[S, A] {
	return Prism[S, A]{match: match, build: build}
}

// Match attempts to extract the focused value.
func (p Prism[S, A]) Match(state S) maybe.Maybe[A] {
	return p.match(state)
}

// Build constructs a state from a focus.
func (p Prism[S, A]) Build(value A) S {
	return p.build(value)
}

// Set replaces the focused value if the prism matches; a non-matching
// state comes back unchanged.
func (p Prism[S, A]) Set(state S, value A) S {
	if p.match(state).IsNothing() {
		return state
	}
	return p.build(value)
}

// Modify applies a function to the focused value if present.
func (p Prism[S, A]) Modify(state S, fn func(A) A) S {
	v, ok := p.match(state).Get()
	if !ok {
		return state
	}
	return p.build(fn(v))
}

// Optic lifts the prism into the dynamic engine: zero foci when the
// match fails, one when it succeeds.
func (p Prism[S, A]) Optic() optics.Optic {
	return optics.NewPrism(
		func(state any) (any, bool, error) {
			s, err := as[S](state, "state")
			if err != nil {
				return nil, false, err
			}
			v, ok := p.match(s).Get()
			return v, ok, nil
		},
		func(focus any) (any, error) {
			a, err := as[A](focus, "replacement")
			if err != nil {
				return nil, err
			}
			return p.build(a), nil
		},
	)
}

// ComposePrism creates a prism focusing deeper: outer first, then
// inner within the outer focus.
func ComposePrism[S, A, B any](outer Prism[S, A], inner Prism[A, B]) Prism[S, B] {
	return Prism[S, B]{
		match: func(s S) maybe.Maybe[B] {
			return maybe.FlatMap(outer.match(s), inner.match)
		},
		build: func(b B) S {
			return outer.build(inner.build(b))
		},
	}
}

// JustOf creates a prism into the Just case of a Maybe.
func JustOf[T any]() Prism[maybe.Maybe[T], T] {
	return Prism[maybe.Maybe[T], T]{
		match: func(m maybe.Maybe[T]) maybe.Maybe[T] { return m },
		build: maybe.Just[T],
	}
}
