package optics

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBothOnSlice(t *testing.T) {
	state := []int{0, 1, 2, 3}

	t.Run("get returns the first focus", func(t *testing.T) {
		got, err := Get(Both(), state)
		if err != nil {
			t.Fatal(err)
		}
		if got != 0 {
			t.Errorf("got %v, want 0", got)
		}
	})

	t.Run("collect returns the first two elements", func(t *testing.T) {
		got, err := Collect(Both(), state)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]any{0, 1}, got); diff != "" {
			t.Errorf("collect mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("set replaces both foci and keeps the tail", func(t *testing.T) {
		got, err := Set(Both(), state, 4)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]int{4, 4, 2, 3}, got); diff != "" {
			t.Errorf("set mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{0, 1, 2, 3}, state); diff != "" {
			t.Errorf("original state mutated (-want +got):\n%s", diff)
		}
	})

	t.Run("modify transforms both foci", func(t *testing.T) {
		got, err := Modify(Both(), state, func(a any) any { return a.(int) + 10 })
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]int{10, 11, 2, 3}, got); diff != "" {
			t.Errorf("modify mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestComposedBothIndex(t *testing.T) {
	state := [][]int{{0, 1}, {2, 3}}
	o := Compose(Both(), Index(0))

	t.Run("collect gathers the 0th element of each row", func(t *testing.T) {
		got, err := Collect(o, state)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]any{0, 2}, got); diff != "" {
			t.Errorf("collect mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("modify only touches index 0 inside each row", func(t *testing.T) {
		got, err := Modify(o, state, func(a any) any { return a.(int) + 10 })
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([][]int{{10, 1}, {12, 3}}, got); diff != "" {
			t.Errorf("modify mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([][]int{{0, 1}, {2, 3}}, state); diff != "" {
			t.Errorf("original state mutated (-want +got):\n%s", diff)
		}
	})
}

func TestEachModify(t *testing.T) {
	got, err := Modify(Each(), []int{1, 2, 3}, func(a any) any { return a.(int) + 10 })
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{11, 12, 13}, got); diff != "" {
		t.Errorf("modify mismatch (-want +got):\n%s", diff)
	}
}

func TestStructuralSharing(t *testing.T) {
	state := [][]int{{0, 1}, {2, 3}}
	got, err := Set(Index(0), state, []int{9, 9})
	if err != nil {
		t.Fatal(err)
	}
	rows := got.([][]int)
	if &rows[1][0] != &state[1][0] {
		t.Error("untouched row should share backing storage with the original")
	}
	if &rows[0][0] == &state[0][0] {
		t.Error("replaced row should not alias the original")
	}
}

// shelf participates in traversal through an explicit registration.
type shelf struct {
	Books []string
}

func TestCustomHookTraversal(t *testing.T) {
	RegisterHook(reflect.TypeOf(shelf{}),
		func(state any) ([]any, error) {
			s := state.(shelf)
			elems := make([]any, len(s.Books))
			for i, b := range s.Books {
				elems[i] = b
			}
			return elems, nil
		},
		func(state any, elems []any) (any, error) {
			books := make([]string, len(elems))
			for i, e := range elems {
				b, ok := e.(string)
				if !ok {
					return nil, fmt.Errorf("book %d is %T", i, e)
				}
				books[i] = b
			}
			return shelf{Books: books}, nil
		},
	)

	state := shelf{Books: []string{"ada", "basic"}}
	got, err := Modify(Each(), state, func(a any) any { return a.(string) + "!" })
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(shelf{Books: []string{"ada!", "basic!"}}, got); diff != "" {
		t.Errorf("modify mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(shelf{Books: []string{"ada", "basic"}}, state); diff != "" {
		t.Errorf("original state mutated (-want +got):\n%s", diff)
	}
}

// ledger participates in traversal by implementing hook.Decomposer.
type ledger struct {
	Debit, Credit int
}

func (l ledger) Decompose() []any {
	return []any{l.Debit, l.Credit}
}

func (l ledger) Recompose(elems []any) (any, error) {
	if len(elems) != 2 {
		return nil, fmt.Errorf("ledger wants 2 elements, got %d", len(elems))
	}
	return ledger{Debit: elems[0].(int), Credit: elems[1].(int)}, nil
}

func TestDecomposerTraversal(t *testing.T) {
	got, err := Set(Both(), ledger{Debit: 3, Credit: 7}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != (ledger{}) {
		t.Errorf("got %v, want zero ledger", got)
	}
}

type opaque struct {
	N int
}

func TestErrors(t *testing.T) {
	t.Run("get out of range is an empty focus", func(t *testing.T) {
		_, err := Get(Index(9), []int{1})
		if !errors.Is(err, ErrEmptyFocus) {
			t.Errorf("got %v, want EMPTY_FOCUS", err)
		}
	})

	t.Run("each on an unhooked type is a missing hook", func(t *testing.T) {
		_, err := Collect(Each(), opaque{N: 1})
		if !errors.Is(err, ErrHookMissing) {
			t.Errorf("got %v, want HOOK_MISSING", err)
		}
	})

	t.Run("set through a fold is unsupported", func(t *testing.T) {
		fold := NewFold(func(state any) ([]any, error) {
			return []any{state}, nil
		})
		_, err := Set(fold, 1, 2)
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("got %v, want UNSUPPORTED_OPERATION", err)
		}
	})

	t.Run("set through getter-composed-traversal is unsupported", func(t *testing.T) {
		o := NewGetter(func(s any) (any, error) { return s, nil }).Then(Each())
		_, err := Set(o, []int{1, 2}, 0)
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("got %v, want UNSUPPORTED_OPERATION", err)
		}
		if _, err := Collect(o, []int{1, 2}); err != nil {
			t.Errorf("collect through the same fold failed: %v", err)
		}
	})

	t.Run("both on a short sequence violates its focus", func(t *testing.T) {
		_, err := Collect(Both(), []int{7})
		if !errors.Is(err, ErrFocus) {
			t.Errorf("got %v, want FOCUS_ERROR", err)
		}
	})

	t.Run("zero optic supports nothing", func(t *testing.T) {
		var o Optic
		if _, err := Get(o, 1); !errors.Is(err, ErrUnsupported) {
			t.Errorf("get: got %v, want UNSUPPORTED_OPERATION", err)
		}
		if _, err := Set(o, 1, 2); !errors.Is(err, ErrUnsupported) {
			t.Errorf("set: got %v, want UNSUPPORTED_OPERATION", err)
		}
	})

	t.Run("error text carries the code", func(t *testing.T) {
		_, err := Get(Index(9), []int{1})
		want := `[EMPTY_FOCUS] no focus to get in []int`
		if err == nil || err.Error() != want {
			t.Errorf("got %q, want %q", err, want)
		}
	})
}

func TestModifyE(t *testing.T) {
	boom := errors.New("boom")
	_, err := ModifyE(Each(), []int{1, 2}, func(any) (any, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want the transform's own error", err)
	}
}
