package code

// Rhombic code on a periodic checkerboard lattice, sizes even. Each vertex
// carries four weight-3 Z triangles, one per body diagonal, with the
// diagonal directions mirrored between the two vertex sublattices; half the
// cubes carry a weight-12 X stabilizer. n = 3·Lx·Ly·Lz, k = 3,
// d = min(Lx, Ly, Lz). X logicals are sheets normal to each axis; Z
// logicals are lines of parallel single-qubit Z operators.

// triangleDeltas locate the three edges of the triangle with the given
// body-diagonal orientation, relative to its vertex.
var triangleDeltas = [4][3][3]int{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
	{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}},
	{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
}

func triangleSites(loc [3]int, orientation int) [][3]int {
	sign := 1
	if (loc[0]+loc[1]+loc[2])%4 == 2 {
		sign = -1
	}
	sites := make([][3]int, 0, 3)
	for _, d := range triangleDeltas[orientation] {
		sites = append(sites, [3]int{loc[0] + sign*d[0], loc[1] + sign*d[1], loc[2] + sign*d[2]})
	}

	return sites
}

func buildRhombic(size [3]int) (*lattice, []Stabilizer, []*pauliOp, []*pauliOp, error) {
	Lx, Ly, Lz := size[0], size[1], size[2]
	l := newLattice([3]int{2 * Lx, 2 * Ly, 2 * Lz}, true)
	addCubicEdges(l)

	var stabs []Stabilizer
	for x := 0; x < 2*Lx; x += 2 {
		for y := 0; y < 2*Ly; y += 2 {
			for z := 0; z < 2*Lz; z += 2 {
				loc := [3]int{x, y, z}
				for o := 0; o < 4; o++ {
					s, err := l.stabilizer(KindTriangle, PauliZ, loc, o, triangleSites(loc, o))
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
				if (x+y+z)%4 != 1 {
					continue
				}
				loc := [3]int{x, y, z}
				s, err := l.stabilizer(KindCube, PauliX, loc, 0, cubeSites(loc))
				if err != nil {
					return nil, nil, nil, nil, err
				}
				stabs = append(stabs, s)
			}
		}
	}

	// X sheets normal to z, y, x: every edge lying in the corresponding
	// coordinate plane through the origin.
	dims := [3]int{2 * Lx, 2 * Ly, 2 * Lz}
	logicalX := make([]*pauliOp, 3)
	for i, normal := range []int{2, 1, 0} {
		a, b := (normal+1)%3, (normal+2)%3
		op := newPauliOp(l)
		for u := 0; u < dims[a]; u++ {
			for v := 0; v < dims[b]; v++ {
				if (u+v)%2 != 1 {
					continue
				}
				loc := [3]int{}
				loc[a], loc[b] = u, v
				if err := op.site(PauliX, loc); err != nil {
					return nil, nil, nil, nil, err
				}
			}
		}
		logicalX[i] = op
	}

	// Z lines along z, y, x, ordered so that logical i anticommutes with
	// its sheet partner above and only that one.
	logicalZ := make([]*pauliOp, 3)
	lines := [3]struct {
		axis int    // direction the line runs along
		base [3]int // location of the first site; base[axis] varies
	}{
		{axis: 2, base: [3]int{0, 1, 0}},
		{axis: 1, base: [3]int{1, 0, 0}},
		{axis: 0, base: [3]int{0, 1, 0}},
	}
	for i, ln := range lines {
		op := newPauliOp(l)
		for c := 0; c < dims[ln.axis]; c += 2 {
			loc := ln.base
			loc[ln.axis] = c
			if err := op.site(PauliZ, loc); err != nil {
				return nil, nil, nil, nil, err
			}
		}
		logicalZ[i] = op
	}

	return l, stabs, logicalX, logicalZ, nil
}
