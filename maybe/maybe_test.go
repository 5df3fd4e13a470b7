package maybe

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestMaybeBasicOperations(t *testing.T) {
	t.Run("Just holds a value", func(t *testing.T) {
		m := Just(42)
		if !m.IsJust() || m.IsNothing() {
			t.Error("expected Just")
		}
		if v, ok := m.Get(); !ok || v != 42 {
			t.Errorf("Get() = %v, %v", v, ok)
		}
	})

	t.Run("Nothing is empty", func(t *testing.T) {
		m := Nothing[int]()
		if m.IsJust() || !m.IsNothing() {
			t.Error("expected Nothing")
		}
		if _, ok := m.Get(); ok {
			t.Error("expected no value")
		}
	})

	t.Run("MustGet panics on Nothing", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic")
			}
		}()
		Nothing[int]().MustGet()
	})

	t.Run("OrElse falls back", func(t *testing.T) {
		if got := Nothing[int]().OrElse(9); got != 9 {
			t.Errorf("got %d, want 9", got)
		}
		if got := Just(1).OrElse(9); got != 1 {
			t.Errorf("got %d, want 1", got)
		}
	})

	t.Run("OrElseGet computes the fallback lazily", func(t *testing.T) {
		called := false
		Just(1).OrElseGet(func() int { called = true; return 9 })
		if called {
			t.Error("fallback should not run for Just")
		}
	})

	t.Run("Filter rejects", func(t *testing.T) {
		if Just(3).Filter(func(n int) bool { return n > 5 }).IsJust() {
			t.Error("expected Nothing")
		}
		if !Just(7).Filter(func(n int) bool { return n > 5 }).IsJust() {
			t.Error("expected Just")
		}
	})

	t.Run("ToSlice", func(t *testing.T) {
		if got := Just(1).ToSlice(); len(got) != 1 || got[0] != 1 {
			t.Errorf("got %v", got)
		}
		if got := Nothing[int]().ToSlice(); len(got) != 0 {
			t.Errorf("got %v", got)
		}
	})
}

func TestMaybeMapLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Map on Just applies the function", prop.ForAll(
		func(n int) bool {
			doubled := Map(Just(n), func(x int) int { return x * 2 })
			v, ok := doubled.Get()
			return ok && v == n*2
		},
		gen.Int(),
	))

	properties.Property("Map on Nothing stays Nothing", prop.ForAll(
		func(n int) bool {
			return Map(Nothing[int](), func(x int) int { return x + n }).IsNothing()
		},
		gen.Int(),
	))

	properties.Property("pointer round-trip preserves the value", prop.ForAll(
		func(n int) bool {
			p := FromPtr(&n).ToPtr()
			return p != nil && *p == n
		},
		gen.Int(),
	))

	properties.Property("FlatMap chains absence", prop.ForAll(
		func(n int) bool {
			out := FlatMap(Just(n), func(int) Maybe[string] { return Nothing[string]() })
			return out.IsNothing()
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}
