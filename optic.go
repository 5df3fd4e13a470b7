// Package optics provides composable, capability-checked access into
// nested immutable data structures. An Optic describes where to find
// zero or more foci inside a state; the engine operations Get, Collect,
// Set and Modify read or rebuild the state through that description
// without ever mutating the original, sharing every untouched
// substructure with it.
//
// Optics carry no reference to any particular state: one optic can be
// applied to arbitrarily many states, from any number of goroutines.
// Composition (Then/Compose) is pure bookkeeping over the capability
// lattice and never fails; all failures surface at application time as
// *Error values.
package optics

// rebuildFunc produces a new state from a replacement value per focus,
// in focus order.
type rebuildFunc func(replacements []any) (any, error)

// runFunc enumerates the foci of an elementary optic within a state
// and returns the closure that rebuilds the state around replacements
// for exactly those foci.
type runFunc func(state any) ([]any, rebuildFunc, error)

// element is one elementary optic in a composed chain. The name is
// only used in error messages.
type element struct {
	name string
	kind Kind
	run  runFunc
}

// Optic is an immutable description of where to find zero or more foci
// inside a state and how to rebuild the state around replacements. It
// is represented as an ordered chain of elementary optics plus the
// meet of their kinds.
type Optic struct {
	kind  Kind
	chain []element
}

// Kind returns the optic's capability kind.
func (o Optic) Kind() Kind {
	return o.kind
}

// Identity returns the optic whose single focus is the state itself.
func Identity() Optic {
	return Optic{kind: Iso}
}

// elementary wraps a single run function as an Optic.
func elementary(name string, kind Kind, run runFunc) Optic {
	return Optic{kind: kind, chain: []element{{name: name, kind: kind, run: run}}}
}

// Then returns the composition of o followed by inner: inner is
// applied to every focus of o, so a k-focus optic composed with an
// m-focus optic has k*m foci. The result's kind is the meet of the two
// kinds.
func (o Optic) Then(inner Optic) Optic {
	chain := make([]element, 0, len(o.chain)+len(inner.chain))
	chain = append(chain, o.chain...)
	chain = append(chain, inner.chain...)
	return Optic{kind: o.kind.Meet(inner.kind), chain: chain}
}

// Compose returns outer.Then(inner).
func Compose(outer, inner Optic) Optic {
	return outer.Then(inner)
}

// runChain is the engine primitive: it enumerates the foci of a chain
// within a state, depth-first and left-to-right, and returns the
// rebuild closure for them. Rebuilding threads replacements through
// the nested recompositions: each outer focus is rebuilt by its inner
// rebuild closure before the outer rebuild sees it.
func runChain(chain []element, state any) ([]any, rebuildFunc, error) {
	if len(chain) == 0 {
		return []any{state}, func(vs []any) (any, error) {
			if len(vs) != 1 {
				return nil, focusErrorf("identity rebuild wants 1 value, got %d", len(vs))
			}
			return vs[0], nil
		}, nil
	}

	head, rest := chain[0], chain[1:]
	foci, rebuild, err := head.run(state)
	if err != nil {
		return nil, nil, err
	}
	if len(rest) == 0 {
		return foci, rebuild, nil
	}

	all := make([]any, 0, len(foci))
	counts := make([]int, len(foci))
	rebuilds := make([]rebuildFunc, len(foci))
	for i, focus := range foci {
		inner, innerRebuild, err := runChain(rest, focus)
		if err != nil {
			return nil, nil, err
		}
		counts[i] = len(inner)
		rebuilds[i] = innerRebuild
		all = append(all, inner...)
	}

	composed := func(vs []any) (any, error) {
		if len(vs) != len(all) {
			return nil, focusErrorf("%s rebuild wants %d values, got %d", head.name, len(all), len(vs))
		}
		subs := make([]any, len(foci))
		offset := 0
		for i := range foci {
			sub, err := rebuilds[i](vs[offset : offset+counts[i]])
			if err != nil {
				return nil, err
			}
			subs[i] = sub
			offset += counts[i]
		}
		return rebuild(subs)
	}
	return all, composed, nil
}
