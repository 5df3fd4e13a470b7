// Package maybe provides an optional-value type for results that can
// legitimately be absent, such as the focus of a partial optic.
package maybe

// Maybe holds either a value (Just) or nothing (Nothing).
type Maybe[T any] struct {
	value   T
	present bool
}

// Just creates a Maybe containing a value.
func Just[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, present: true}
}

// Nothing creates an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust returns true if the Maybe contains a value.
func (m Maybe[T]) IsJust() bool {
	return m.present
}

// IsNothing returns true if the Maybe is empty.
func (m Maybe[T]) IsNothing() bool {
	return !m.present
}

// Get returns the contained value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

// MustGet returns the contained value or panics if empty.
func (m Maybe[T]) MustGet() T {
	if !m.present {
		panic("called MustGet on Nothing")
	}
	return m.value
}

// OrElse returns the contained value or a fallback.
func (m Maybe[T]) OrElse(fallback T) T {
	if m.present {
		return m.value
	}
	return fallback
}

// OrElseGet returns the contained value or computes a fallback.
func (m Maybe[T]) OrElseGet(fn func() T) T {
	if m.present {
		return m.value
	}
	return fn()
}

// Filter returns Nothing if the predicate rejects the value.
func (m Maybe[T]) Filter(predicate func(T) bool) Maybe[T] {
	if m.present && predicate(m.value) {
		return m
	}
	return Nothing[T]()
}

// ToSlice converts the Maybe to a zero- or one-element slice.
func (m Maybe[T]) ToSlice() []T {
	if m.present {
		return []T{m.value}
	}
	return nil
}

// FromPtr creates a Maybe from a possibly-nil pointer.
func FromPtr[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return Nothing[T]()
	}
	return Just(*ptr)
}

// ToPtr converts the Maybe to a possibly-nil pointer.
func (m Maybe[T]) ToPtr() *T {
	if m.present {
		v := m.value
		return &v
	}
	return nil
}

// Map applies a transformation to the contained value if present.
func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.present {
		return Just(fn(m.value))
	}
	return Nothing[U]()
}

// FlatMap applies a transformation that may itself produce Nothing.
func FlatMap[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if m.present {
		return fn(m.value)
	}
	return Nothing[U]()
}
