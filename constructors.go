package optics

// NewLens builds a Lens from an explicit getter/setter pair. The
// setter must return a new state and leave the original untouched.
func NewLens(get func(state any) (any, error), set func(state, value any) (any, error)) Optic {
	run := func(state any) ([]any, rebuildFunc, error) {
		focus, err := get(state)
		if err != nil {
			return nil, nil, wrapFocus(err)
		}
		rebuild := func(vs []any) (any, error) {
			if len(vs) != 1 {
				return nil, focusErrorf("lens rebuild wants 1 value, got %d", len(vs))
			}
			out, err := set(state, vs[0])
			if err != nil {
				return nil, wrapFocus(err)
			}
			return out, nil
		}
		return []any{focus}, rebuild, nil
	}
	return elementary("lens", Lens, run)
}

// NewGetter builds a read-only single-focus optic from a function.
func NewGetter(get func(state any) (any, error)) Optic {
	run := func(state any) ([]any, rebuildFunc, error) {
		focus, err := get(state)
		if err != nil {
			return nil, nil, wrapFocus(err)
		}
		// Unreachable through public operations: Getter lacks the
		// write capability, so nothing ever calls this rebuild.
		rebuild := func([]any) (any, error) {
			return nil, unsupportedf("rebuild", Getter)
		}
		return []any{focus}, rebuild, nil
	}
	return elementary("getter", Getter, run)
}

// NewFold builds a read-only multi-focus optic from a function that
// enumerates foci.
func NewFold(collect func(state any) ([]any, error)) Optic {
	run := func(state any) ([]any, rebuildFunc, error) {
		foci, err := collect(state)
		if err != nil {
			return nil, nil, wrapFocus(err)
		}
		rebuild := func([]any) (any, error) {
			return nil, unsupportedf("rebuild", Fold)
		}
		return foci, rebuild, nil
	}
	return elementary("fold", Fold, run)
}

// NewIso builds an Iso from a pair of inverse functions. The focus is
// forward(state); rebuilding is backward(replacement) and ignores the
// original state entirely.
func NewIso(forward func(state any) (any, error), backward func(focus any) (any, error)) Optic {
	run := func(state any) ([]any, rebuildFunc, error) {
		focus, err := forward(state)
		if err != nil {
			return nil, nil, wrapFocus(err)
		}
		rebuild := func(vs []any) (any, error) {
			if len(vs) != 1 {
				return nil, focusErrorf("iso rebuild wants 1 value, got %d", len(vs))
			}
			out, err := backward(vs[0])
			if err != nil {
				return nil, wrapFocus(err)
			}
			return out, nil
		}
		return []any{focus}, rebuild, nil
	}
	return elementary("iso", Iso, run)
}

// NewPrism builds a Prism from a partial match and a constructor. When
// match reports no focus, Get fails with EMPTY_FOCUS and Set/Modify
// return the state unchanged; when it matches, rebuilding goes through
// build.
func NewPrism(match func(state any) (focus any, ok bool, err error), build func(focus any) (any, error)) Optic {
	run := func(state any) ([]any, rebuildFunc, error) {
		focus, ok, err := match(state)
		if err != nil {
			return nil, nil, wrapFocus(err)
		}
		if !ok {
			return nil, unchangedRebuild(state), nil
		}
		rebuild := func(vs []any) (any, error) {
			if len(vs) != 1 {
				return nil, focusErrorf("prism rebuild wants 1 value, got %d", len(vs))
			}
			out, err := build(vs[0])
			if err != nil {
				return nil, wrapFocus(err)
			}
			return out, nil
		}
		return []any{focus}, rebuild, nil
	}
	return elementary("prism", Prism, run)
}
