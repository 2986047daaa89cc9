package code

// Planar 2D surface code with open boundaries: primal qubits at
// (even, even), dual qubits at (odd, odd), X-type vertices at (odd, even)
// and Z-type faces at (even, odd). Boundary stabilizers lose their missing
// sites and drop to weight 3 or 2. n = Lx·Ly + (Lx−1)·(Ly−1), k = 1.

func buildPlanar2D(size [3]int) (*lattice, []Stabilizer, []*pauliOp, []*pauliOp, error) {
	Lx, Ly := size[0], size[1]
	l := newLattice([3]int{2*Lx - 1, 2*Ly - 1, 1}, false)

	for x := 0; x < 2*Lx-1; x++ {
		for y := 0; y < 2*Ly-1; y++ {
			if x%2 != y%2 {
				continue
			}
			axis := AxisX
			if x%2 == 1 {
				axis = AxisY
			}
			l.addQubit([3]int{x, y, 0}, axis)
		}
	}

	var stabs []Stabilizer
	for x := 1; x < 2*Lx-1; x += 2 {
		for y := 0; y < 2*Ly-1; y += 2 {
			s, err := l.stabilizer(KindVertex, PauliX, [3]int{x, y, 0}, 0, cross2D(x, y))
			if err != nil {
				return nil, nil, nil, nil, err
			}
			stabs = append(stabs, s)
		}
	}
	for x := 0; x < 2*Lx-1; x += 2 {
		for y := 1; y < 2*Ly-1; y += 2 {
			s, err := l.stabilizer(KindFace, PauliZ, [3]int{x, y, 0}, 0, cross2D(x, y))
			if err != nil {
				return nil, nil, nil, nil, err
			}
			stabs = append(stabs, s)
		}
	}

	// Z string between the left and right boundary, X string between the
	// top and bottom one; they cross at the corner qubit.
	z0 := newPauliOp(l)
	for x := 0; x < 2*Lx-1; x += 2 {
		if err := z0.site(PauliZ, [3]int{x, 0, 0}); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	x0 := newPauliOp(l)
	for y := 0; y < 2*Ly-1; y += 2 {
		if err := x0.site(PauliX, [3]int{0, y, 0}); err != nil {
			return nil, nil, nil, nil, err
		}
	}

	return l, stabs, []*pauliOp{x0}, []*pauliOp{z0}, nil
}
