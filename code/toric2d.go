package code

// Toric 2D surface code on a periodic Lx×Ly lattice: qubits on edges,
// X-type stars on vertices, Z-type plaquettes on faces. n = 2·Lx·Ly, k = 2,
// d = min(Lx, Ly).

// cross2D are the four edge locations around a vertex or face at (x,y).
func cross2D(x, y int) [][3]int {
	return [][3]int{
		{x - 1, y, 0},
		{x + 1, y, 0},
		{x, y - 1, 0},
		{x, y + 1, 0},
	}
}

func buildToric2D(size [3]int) (*lattice, []Stabilizer, []*pauliOp, []*pauliOp, error) {
	Lx, Ly := size[0], size[1]
	l := newLattice([3]int{2 * Lx, 2 * Ly, 1}, true)

	// Edges: horizontal at (odd, even), vertical at (even, odd).
	for x := 0; x < 2*Lx; x++ {
		for y := 0; y < 2*Ly; y++ {
			if (x+y)%2 != 1 {
				continue
			}
			axis := AxisY
			if x%2 == 1 {
				axis = AxisX
			}
			l.addQubit([3]int{x, y, 0}, axis)
		}
	}

	var stabs []Stabilizer
	for x := 0; x < 2*Lx; x += 2 {
		for y := 0; y < 2*Ly; y += 2 {
			s, err := l.stabilizer(KindVertex, PauliX, [3]int{x, y, 0}, 0, cross2D(x, y))
			if err != nil {
				return nil, nil, nil, nil, err
			}
			stabs = append(stabs, s)
		}
	}
	for x := 1; x < 2*Lx; x += 2 {
		for y := 1; y < 2*Ly; y += 2 {
			s, err := l.stabilizer(KindFace, PauliZ, [3]int{x, y, 0}, 0, cross2D(x, y))
			if err != nil {
				return nil, nil, nil, nil, err
			}
			stabs = append(stabs, s)
		}
	}

	// Logical pair 0: Z loop of horizontal edges along x, X dual loop of
	// horizontal edges along y; they share exactly the edge (1,0).
	z0 := newPauliOp(l)
	for x := 1; x < 2*Lx; x += 2 {
		if err := z0.site(PauliZ, [3]int{x, 0, 0}); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	x0 := newPauliOp(l)
	for y := 0; y < 2*Ly; y += 2 {
		if err := x0.site(PauliX, [3]int{1, y, 0}); err != nil {
			return nil, nil, nil, nil, err
		}
	}

	// Logical pair 1: the same construction on vertical edges.
	z1 := newPauliOp(l)
	for y := 1; y < 2*Ly; y += 2 {
		if err := z1.site(PauliZ, [3]int{0, y, 0}); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	x1 := newPauliOp(l)
	for x := 0; x < 2*Lx; x += 2 {
		if err := x1.site(PauliX, [3]int{x, 1, 0}); err != nil {
			return nil, nil, nil, nil, err
		}
	}

	return l, stabs, []*pauliOp{x0, x1}, []*pauliOp{z0, z1}, nil
}
