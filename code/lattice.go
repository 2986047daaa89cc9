package code

import (
	"fmt"

	"github.com/katalvlaran/stabsim/bsf"
)

// lattice accumulates qubits during family construction and resolves
// doubled-lattice coordinates, wrapping them for periodic families.
type lattice struct {
	qubits   []Qubit
	index    map[[3]int]int
	extent   [3]int
	periodic bool
}

func newLattice(extent [3]int, periodic bool) *lattice {
	return &lattice{
		index:    make(map[[3]int]int),
		extent:   extent,
		periodic: periodic,
	}
}

// addQubit registers a qubit at loc. Enumeration order defines the qubit
// indexing, so builders must scan the lattice deterministically.
func (l *lattice) addQubit(loc [3]int, axis Axis) {
	l.index[loc] = len(l.qubits)
	l.qubits = append(l.qubits, Qubit{Location: loc, Axis: axis})
}

// wrap folds loc into the fundamental domain for periodic lattices.
func (l *lattice) wrap(loc [3]int) [3]int {
	if !l.periodic {
		return loc
	}
	for a := 0; a < 3; a++ {
		if l.extent[a] > 0 {
			loc[a] = ((loc[a] % l.extent[a]) + l.extent[a]) % l.extent[a]
		}
	}

	return loc
}

// site resolves loc to a qubit index. Periodic lattices wrap first.
func (l *lattice) site(loc [3]int) (int, bool) {
	i, ok := l.index[l.wrap(loc)]

	return i, ok
}

// stabilizer assembles one generator acting with Pauli typ on the given
// locations. On periodic lattices every location must resolve (a miss is a
// geometry bug); on open-boundary lattices missing locations are dropped,
// which truncates boundary stabilizers to their surviving support.
func (l *lattice) stabilizer(kind Kind, typ Pauli, loc [3]int, orientation int, sites [][3]int) (Stabilizer, error) {
	support := make([]Site, 0, len(sites))
	for _, s := range sites {
		q, ok := l.site(s)
		if !ok {
			if l.periodic {
				return Stabilizer{}, fmt.Errorf("%w: %v (stabilizer %s at %v)", ErrNotAQubit, s, kind, loc)
			}
			continue
		}
		support = append(support, Site{Qubit: q, Pauli: typ})
	}

	return Stabilizer{
		Location:    loc,
		Kind:        kind,
		Type:        typ,
		Orientation: orientation,
		Support:     support,
	}, nil
}

// pauliOp accumulates Pauli sites into a binary-symplectic vector.
// Applying the same site twice cancels (mod-2), which lets composite
// logical representatives be built as XOR sums of simpler loops.
type pauliOp struct {
	l *lattice
	v bsf.Vector
}

func newPauliOp(l *lattice) *pauliOp {
	return &pauliOp{l: l, v: bsf.NewVector(2 * len(l.qubits))}
}

// site multiplies the accumulated operator by Pauli p at loc.
func (op *pauliOp) site(p Pauli, loc [3]int) error {
	q, ok := op.l.site(loc)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotAQubit, loc)
	}
	n := len(op.l.qubits)
	if p == PauliX || p == PauliY {
		op.v[q] ^= 1
	}
	if p == PauliZ || p == PauliY {
		op.v[n+q] ^= 1
	}

	return nil
}

// vector returns the accumulated binary-symplectic vector.
func (op *pauliOp) vector() bsf.Vector { return op.v }
