package typed

import (
	"errors"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/auth-platform/optics"
	"github.com/auth-platform/optics/maybe"
)

// numeric matches strings that parse as ints.
func numeric() Prism[string, int] {
	return NewPrism(
		func(s string) maybe.Maybe[int] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return maybe.Nothing[int]()
			}
			return maybe.Just(n)
		},
		strconv.Itoa,
	)
}

func TestPrismLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	p := numeric()

	properties.Property("match after build recovers the focus", prop.ForAll(
		func(n int) bool {
			v, ok := p.Match(p.Build(n)).Get()
			return ok && v == n
		},
		gen.Int(),
	))

	properties.Property("a matching state rebuilds to itself", prop.ForAll(
		func(n int) bool {
			s := strconv.Itoa(n)
			v, ok := p.Match(s).Get()
			return ok && p.Build(v) == s
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestPrismModify(t *testing.T) {
	p := numeric()

	t.Run("matching state is transformed", func(t *testing.T) {
		if got := p.Modify("41", func(n int) int { return n + 1 }); got != "42" {
			t.Errorf("got %q, want 42", got)
		}
	})

	t.Run("non-matching state is untouched", func(t *testing.T) {
		if got := p.Modify("nope", func(n int) int { return n + 1 }); got != "nope" {
			t.Errorf("got %q, want nope", got)
		}
	})

	t.Run("set on non-matching state is untouched", func(t *testing.T) {
		if got := p.Set("nope", 7); got != "nope" {
			t.Errorf("got %q, want nope", got)
		}
	})
}

func TestPrismCompose(t *testing.T) {
	// strings that parse as ints, then only the positive ones.
	positive := NewPrism(
		func(n int) maybe.Maybe[int] {
			if n > 0 {
				return maybe.Just(n)
			}
			return maybe.Nothing[int]()
		},
		func(n int) int { return n },
	)
	p := ComposePrism(numeric(), positive)

	if _, ok := p.Match("12").Get(); !ok {
		t.Error("expected a match for 12")
	}
	if p.Match("-12").IsJust() {
		t.Error("expected no match for -12")
	}
	if got := p.Build(5); got != "5" {
		t.Errorf("got %q, want 5", got)
	}
}

func TestJustOf(t *testing.T) {
	p := JustOf[int]()
	if v, ok := p.Match(maybe.Just(3)).Get(); !ok || v != 3 {
		t.Errorf("got %v, %v", v, ok)
	}
	if p.Match(maybe.Nothing[int]()).IsJust() {
		t.Error("expected no match")
	}
}

func TestPrismLift(t *testing.T) {
	o := numeric().Optic()

	t.Run("kind is Prism", func(t *testing.T) {
		if got := o.Kind(); got != optics.Prism {
			t.Errorf("kind = %v, want Prism", got)
		}
	})

	t.Run("modify through a traversal of strings", func(t *testing.T) {
		state := []string{"1", "x", "3"}
		got, err := optics.Modify(optics.Each().Then(o), state, func(a any) any { return a.(int) * 2 })
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"2", "x", "6"}
		if g := got.([]string); g[0] != want[0] || g[1] != want[1] || g[2] != want[2] {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("non-matching state is an empty focus on get", func(t *testing.T) {
		if _, err := optics.Get(o, "x"); !errors.Is(err, optics.ErrEmptyFocus) {
			t.Errorf("got %v, want EMPTY_FOCUS", err)
		}
	})
}
