package code

// X-cube fracton model on a periodic cubic lattice: every vertex carries
// three weight-4 Z crosses (one per normal axis) and every cube a weight-12
// X stabilizer. k = 2·(Lx+Ly+Lz) − 3 grows with the lattice. The X
// logicals are rigid strings along the axes; each Z partner is a line of
// parallel Z operators transverse to its string, except the corner string
// of each axis, whose partner is a mod-2 sum of such lines.

func buildXCube(size [3]int) (*lattice, []Stabilizer, []*pauliOp, []*pauliOp, error) {
	Lx, Ly, Lz := size[0], size[1], size[2]
	l := newLattice([3]int{2 * Lx, 2 * Ly, 2 * Lz}, true)
	addCubicEdges(l)

	var stabs []Stabilizer
	for x := 0; x < 2*Lx; x += 2 {
		for y := 0; y < 2*Ly; y += 2 {
			for z := 0; z < 2*Lz; z += 2 {
				loc := [3]int{x, y, z}
				for normal := 0; normal < 3; normal++ {
					a, b := (normal+1)%3, (normal+2)%3
					s, err := l.stabilizer(KindCross, PauliZ, loc, normal, ringSites(loc, a, b))
					if err != nil {
						return nil, nil, nil, nil, err
					}
					stabs = append(stabs, s)
				}
			}
		}
	}
	for x := 1; x < 2*Lx; x += 2 {
		for y := 1; y < 2*Ly; y += 2 {
			for z := 1; z < 2*Lz; z += 2 {
				loc := [3]int{x, y, z}
				s, err := l.stabilizer(KindCube, PauliX, loc, 0, cubeSites(loc))
				if err != nil {
					return nil, nil, nil, nil, err
				}
				stabs = append(stabs, s)
			}
		}
	}

	var logicalX, logicalZ []*pauliOp
	dims := [3]int{2 * Lx, 2 * Ly, 2 * Lz}
	for axis := 0; axis < 3; axis++ {
		b, c := (axis+1)%3, (axis+2)%3

		at := func(aVal, bVal, cVal int) [3]int {
			loc := [3]int{}
			loc[axis], loc[b], loc[c] = aVal, bVal, cVal

			return loc
		}
		// string of X along axis at transverse position (b0, c0)
		str := func(b0, c0 int) (*pauliOp, error) {
			op := newPauliOp(l)
			for a := 1; a < dims[axis]; a += 2 {
				if err := op.site(PauliX, at(a, b0, c0)); err != nil {
					return nil, err
				}
			}

			return op, nil
		}
		// lineB accumulates Z on the axis-oriented edges running along b at
		// transverse position c0; lineC is its mirror.
		lineB := func(op *pauliOp, c0 int) error {
			for v := 0; v < dims[b]; v += 2 {
				if err := op.site(PauliZ, at(1, v, c0)); err != nil {
					return err
				}
			}

			return nil
		}
		lineC := func(op *pauliOp, b0 int) error {
			for v := 0; v < dims[c]; v += 2 {
				if err := op.site(PauliZ, at(1, b0, v)); err != nil {
					return err
				}
			}

			return nil
		}

		for b0 := 0; b0 < dims[b]; b0 += 2 {
			xop, err := str(b0, 0)
			if err != nil {
				return nil, nil, nil, nil, err
			}
			logicalX = append(logicalX, xop)

			zop := newPauliOp(l)
			if b0 == 0 {
				// The partners of the other corner-plane strings fold in so
				// that only the (0, 0) string is hit an odd number of times.
				if err := lineC(zop, 0); err != nil {
					return nil, nil, nil, nil, err
				}
				for c0 := 2; c0 < dims[c]; c0 += 2 {
					if err := lineB(zop, c0); err != nil {
						return nil, nil, nil, nil, err
					}
				}
			} else if err := lineC(zop, b0); err != nil {
				return nil, nil, nil, nil, err
			}
			logicalZ = append(logicalZ, zop)
		}
		for c0 := 2; c0 < dims[c]; c0 += 2 {
			xop, err := str(0, c0)
			if err != nil {
				return nil, nil, nil, nil, err
			}
			logicalX = append(logicalX, xop)

			zop := newPauliOp(l)
			if err := lineB(zop, c0); err != nil {
				return nil, nil, nil, nil, err
			}
			logicalZ = append(logicalZ, zop)
		}
	}

	return l, stabs, logicalX, logicalZ, nil
}
