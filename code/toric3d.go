package code

// Toric 3D code on a periodic Lx×Ly×Lz cubic lattice: qubits on edges,
// Z-type weight-6 stars on vertices, X-type weight-4 loops on faces.
// n = 3·Lx·Ly·Lz, k = 3, d = min(Lx, Ly, Lz). The X logicals are strings
// along each axis; the Z logicals are dual membranes normal to each axis.

func buildToric3D(size [3]int) (*lattice, []Stabilizer, []*pauliOp, []*pauliOp, error) {
	Lx, Ly, Lz := size[0], size[1], size[2]
	l := newLattice([3]int{2 * Lx, 2 * Ly, 2 * Lz}, true)
	addCubicEdges(l)

	var stabs []Stabilizer
	for x := 0; x < 2*Lx; x += 2 {
		for y := 0; y < 2*Ly; y += 2 {
			for z := 0; z < 2*Lz; z += 2 {
				loc := [3]int{x, y, z}
				s, err := l.stabilizer(KindVertex, PauliZ, loc, 0, starSites(loc))
				if err != nil {
					return nil, nil, nil, nil, err
				}
				stabs = append(stabs, s)
			}
		}
	}

	// Faces by normal axis: the face spans the other two axes and its
	// location is odd along both of them.
	for normal := 0; normal < 3; normal++ {
		a, b := (normal+1)%3, (normal+2)%3
		lo := [3]int{1, 1, 1}
		lo[normal] = 0
		for x := lo[0]; x < 2*Lx; x += 2 {
			for y := lo[1]; y < 2*Ly; y += 2 {
				for z := lo[2]; z < 2*Lz; z += 2 {
					loc := [3]int{x, y, z}
					s, err := l.stabilizer(KindFace, PauliX, loc, normal, ringSites(loc, a, b))
					if err != nil {
						return nil, nil, nil, nil, err
					}
					stabs = append(stabs, s)
				}
			}
		}
	}

	logicalX := make([]*pauliOp, 3)
	logicalZ := make([]*pauliOp, 3)
	dims := [3]int{2 * Lx, 2 * Ly, 2 * Lz}
	for axis := 0; axis < 3; axis++ {
		xop := newPauliOp(l)
		for c := 1; c < dims[axis]; c += 2 {
			loc := [3]int{}
			loc[axis] = c
			if err := xop.site(PauliX, loc); err != nil {
				return nil, nil, nil, nil, err
			}
		}
		logicalX[axis] = xop

		b, c := (axis+1)%3, (axis+2)%3
		zop := newPauliOp(l)
		for i := 0; i < dims[b]; i += 2 {
			for j := 0; j < dims[c]; j += 2 {
				loc := [3]int{}
				loc[axis], loc[b], loc[c] = 1, i, j
				if err := zop.site(PauliZ, loc); err != nil {
					return nil, nil, nil, nil, err
				}
			}
		}
		logicalZ[axis] = zop
	}

	return l, stabs, logicalX, logicalZ, nil
}
