package optics

// Get returns the first focus of o within state. It fails with
// EMPTY_FOCUS when the optic focuses nothing in this particular state,
// and with UNSUPPORTED_OPERATION when the optic cannot be read at all.
func Get(o Optic, state any) (any, error) {
	if !o.kind.Is(Fold) {
		return nil, unsupportedf("get", o.kind)
	}
	foci, _, err := runChain(o.chain, state)
	if err != nil {
		return nil, err
	}
	if len(foci) == 0 {
		return nil, emptyFocusf("no focus to get in %T", state)
	}
	return foci[0], nil
}

// Collect returns every focus of o within state, depth-first and
// left-to-right. An optic that focuses nothing yields an empty slice.
func Collect(o Optic, state any) ([]any, error) {
	if !o.kind.Is(Fold) {
		return nil, unsupportedf("collect", o.kind)
	}
	foci, _, err := runChain(o.chain, state)
	if err != nil {
		return nil, err
	}
	return foci, nil
}

// Set returns a new state with every focus of o replaced by value.
// Untouched substructure is shared with the original state.
func Set(o Optic, state, value any) (any, error) {
	return modify(o, "set", state, func(any) (any, error) { return value, nil })
}

// Modify returns a new state with fn applied to every focus of o
// exactly once. Untouched substructure is shared with the original
// state.
func Modify(o Optic, state any, fn func(any) any) (any, error) {
	return modify(o, "modify", state, func(v any) (any, error) { return fn(v), nil })
}

// ModifyE is Modify for transforms that can fail; the first failure
// aborts the rebuild and is returned as-is.
func ModifyE(o Optic, state any, fn func(any) (any, error)) (any, error) {
	return modify(o, "modify", state, fn)
}

func modify(o Optic, op string, state any, fn func(any) (any, error)) (any, error) {
	if !o.kind.Is(Setter) {
		return nil, unsupportedf(op, o.kind)
	}
	foci, rebuild, err := runChain(o.chain, state)
	if err != nil {
		return nil, err
	}
	replacements := make([]any, len(foci))
	for i, focus := range foci {
		replaced, err := fn(focus)
		if err != nil {
			return nil, err
		}
		replacements[i] = replaced
	}
	return rebuild(replacements)
}
