package optics

import "fmt"

// Kind is the capability class of an optic. It is a bitset of the
// primitive capabilities below, so the subsumption relation between
// kinds (a Lens is a Getter, a Traversal is a Fold, ...) is bit
// containment and the greatest lower bound of two kinds is their
// bitwise intersection.
type Kind uint8

// Primitive capabilities.
const (
	// capMany: the optic can enumerate its foci for reading.
	capMany Kind = 1 << iota
	// capOne: the optic guarantees exactly one focus.
	capOne
	// capWrite: the optic can replace its foci and rebuild the state.
	capWrite
	// capBuild: the optic can construct a state from a focus alone.
	capBuild
)

// Named kinds. Composing two optics yields the meet of their kinds;
// a zero Kind is a valid optic that supports no operation at all.
const (
	Fold      = capMany
	Setter    = capWrite
	Getter    = capMany | capOne
	Traversal = capMany | capWrite
	Lens      = capMany | capOne | capWrite
	Prism     = capMany | capWrite | capBuild
	Iso       = capMany | capOne | capWrite | capBuild
)

// Meet returns the greatest lower bound of k and other: the
// capabilities an optic composed from the two can still honor.
func (k Kind) Meet(other Kind) Kind {
	return k & other
}

// Is reports whether k carries every capability of other, i.e. whether
// k is subsumed by other in the capability lattice.
func (k Kind) Is(other Kind) bool {
	return k&other == other
}

func (k Kind) String() string {
	switch k {
	case Iso:
		return "Iso"
	case Prism:
		return "Prism"
	case Lens:
		return "Lens"
	case Traversal:
		return "Traversal"
	case Getter:
		return "Getter"
	case Setter:
		return "Setter"
	case Fold:
		return "Fold"
	case 0:
		return "Invalid"
	}
	return fmt.Sprintf("Kind(0b%04b)", uint8(k))
}
