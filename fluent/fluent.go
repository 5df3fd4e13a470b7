// Package fluent provides a chained builder over the optics engine:
// a Path accumulates a composed optic step by step and then applies it
// to any state. It adds no semantics of its own; every method is a
// thin wrapper over the optics package's public operations.
package fluent

import (
	"errors"
	"fmt"

	"github.com/auth-platform/optics"
	"github.com/auth-platform/optics/maybe"
)

// Path is an unbound, immutable chain of optics. The zero of the
// builder is New(), which focuses the whole state.
type Path struct {
	optic optics.Optic
}

// New returns the path focusing the whole state.
func New() Path {
	return Path{optic: optics.Identity()}
}

// From wraps an existing optic as a path.
func From(o optics.Optic) Path {
	return Path{optic: optics.Identity().Then(o)}
}

// Then extends the path with another optic.
func (p Path) Then(o optics.Optic) Path {
	return Path{optic: p.optic.Then(o)}
}

// Field extends the path into a struct field.
func (p Path) Field(name string) Path {
	return p.Then(optics.Field(name))
}

// Index extends the path into one position of a slice, array or map.
func (p Path) Index(key any) Path {
	return p.Then(optics.Index(key))
}

// Both extends the path over the first two elements of its focus.
func (p Path) Both() Path {
	return p.Then(optics.Both())
}

// Each extends the path over every element of its focus.
func (p Path) Each() Path {
	return p.Then(optics.Each())
}

// Values extends the path over a map's values.
func (p Path) Values() Path {
	return p.Then(optics.Values())
}

// Optic returns the accumulated composed optic.
func (p Path) Optic() optics.Optic {
	return p.optic
}

// Kind returns the accumulated optic's capability kind.
func (p Path) Kind() optics.Kind {
	return p.optic.Kind()
}

// Get returns the first focus within state.
func (p Path) Get(state any) (any, error) {
	return optics.Get(p.optic, state)
}

// GetMaybe returns the first focus, or Nothing when the path focuses
// nothing in this state. Errors other than an empty focus still fail.
func (p Path) GetMaybe(state any) (maybe.Maybe[any], error) {
	v, err := optics.Get(p.optic, state)
	if err != nil {
		if errors.Is(err, optics.ErrEmptyFocus) {
			return maybe.Nothing[any](), nil
		}
		return maybe.Nothing[any](), err
	}
	return maybe.Just(v), nil
}

// Collect returns every focus within state.
func (p Path) Collect(state any) ([]any, error) {
	return optics.Collect(p.optic, state)
}

// Set replaces every focus within state by value.
func (p Path) Set(state, value any) (any, error) {
	return optics.Set(p.optic, state, value)
}

// Modify applies fn to every focus within state.
func (p Path) Modify(state any, fn func(any) any) (any, error) {
	return optics.Modify(p.optic, state, fn)
}

// ModifyE applies a fallible fn to every focus within state.
func (p Path) ModifyE(state any, fn func(any) (any, error)) (any, error) {
	return optics.ModifyE(p.optic, state, fn)
}

// Plus adds operand to every focus: ints and floats add, strings
// concatenate. The operand must have the focus's type.
func (p Path) Plus(state, operand any) (any, error) {
	return p.ModifyE(state, arithmetic("plus", operand))
}

// Minus subtracts operand from every numeric focus.
func (p Path) Minus(state, operand any) (any, error) {
	return p.ModifyE(state, arithmetic("minus", operand))
}

// Times multiplies every numeric focus by operand.
func (p Path) Times(state, operand any) (any, error) {
	return p.ModifyE(state, arithmetic("times", operand))
}

// arithmetic builds the per-focus transform behind Plus/Minus/Times.
// Every int width, every uint width and both float widths compute;
// strings concatenate under Plus only. A focus/operand type mismatch
// or an unsupported focus type fails with FOCUS_ERROR.
func arithmetic(op string, operand any) func(any) (any, error) {
	return func(focus any) (any, error) {
		switch f := focus.(type) {
		case int:
			return calc(op, f, operand)
		case int8:
			return calc(op, f, operand)
		case int16:
			return calc(op, f, operand)
		case int32:
			return calc(op, f, operand)
		case int64:
			return calc(op, f, operand)
		case uint:
			return calc(op, f, operand)
		case uint8:
			return calc(op, f, operand)
		case uint16:
			return calc(op, f, operand)
		case uint32:
			return calc(op, f, operand)
		case uint64:
			return calc(op, f, operand)
		case float32:
			return calc(op, f, operand)
		case float64:
			return calc(op, f, operand)
		case string:
			s, ok := operand.(string)
			if !ok || op != "plus" {
				return nil, mismatch(op, focus, operand)
			}
			return f + s, nil
		}
		return nil, &optics.Error{
			Code:    optics.CodeFocus,
			Message: fmt.Sprintf("%s: unsupported focus type %T", op, focus),
		}
	}
}

// calc requires the operand to carry exactly the focus's type; there
// is no implicit numeric conversion.
func calc[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | float32 | float64](op string, focus T, operand any) (any, error) {
	n, ok := operand.(T)
	if !ok {
		return nil, mismatch(op, focus, operand)
	}
	switch op {
	case "plus":
		return focus + n, nil
	case "minus":
		return focus - n, nil
	default:
		return focus * n, nil
	}
}

func mismatch(op string, focus, operand any) error {
	return &optics.Error{
		Code:    optics.CodeFocus,
		Message: fmt.Sprintf("%s: operand %T does not match focus %T", op, operand, focus),
	}
}
