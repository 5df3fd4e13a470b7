package optics

import (
	"reflect"

	"github.com/auth-platform/optics/hook"
)

// RegisterHook associates a decompose/recompose pair with a concrete
// or interface type in the process-wide registry. Registration is an
// administrative operation: do it during initialization, before optics
// are applied concurrently. A later registration for the same type
// wins.
func RegisterHook(t reflect.Type, decompose func(state any) ([]any, error), recompose func(state any, elems []any) (any, error)) {
	hook.Default().Register(t, hook.Entry{Decompose: decompose, Recompose: recompose})
}

// LookupHook resolves the decomposition behavior for a value: exact
// registered type first, then the hook.Decomposer interface, then
// registered interface types, then the built-in slice/array and map
// behaviors. It fails with HOOK_MISSING when nothing matches.
func LookupHook(state any) (hook.Entry, error) {
	entry, ok := hook.Default().For(state)
	if !ok {
		return hook.Entry{}, hookMissingf("no decomposition for %T", state)
	}
	return entry, nil
}
