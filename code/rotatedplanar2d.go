package code

// Rotated planar surface code: qubits at (odd, odd), plaquettes at
// (even, even) in a checkerboard set by (x+y) mod 4. Z faces span the full
// y range but only interior x, X vertices the reverse, which produces the
// weight-2 boundary plaquettes of the rotated picture. n = Lx·Ly, k = 1.

// plaquetteSites are the four qubits on the corners of a rotated plaquette.
func plaquetteSites(x, y int) [][3]int {
	return [][3]int{
		{x - 1, y - 1, 0},
		{x - 1, y + 1, 0},
		{x + 1, y - 1, 0},
		{x + 1, y + 1, 0},
	}
}

func buildRotatedPlanar2D(size [3]int) (*lattice, []Stabilizer, []*pauliOp, []*pauliOp, error) {
	Lx, Ly := size[0], size[1]
	l := newLattice([3]int{2*Lx + 1, 2*Ly + 1, 1}, false)

	for x := 1; x < 2*Lx; x += 2 {
		for y := 1; y < 2*Ly; y += 2 {
			axis := AxisY
			if (x+y)%4 == 0 {
				axis = AxisX
			}
			l.addQubit([3]int{x, y, 0}, axis)
		}
	}

	var stabs []Stabilizer
	for x := 2; x < 2*Lx-1; x += 2 {
		for y := 0; y < 2*Ly+1; y += 2 {
			if (x+y)%4 != 2 {
				continue
			}
			s, err := l.stabilizer(KindFace, PauliZ, [3]int{x, y, 0}, 0, plaquetteSites(x, y))
			if err != nil {
				return nil, nil, nil, nil, err
			}
			stabs = append(stabs, s)
		}
	}
	for x := 0; x < 2*Lx+1; x += 2 {
		for y := 2; y < 2*Ly-1; y += 2 {
			if (x+y)%4 != 0 {
				continue
			}
			s, err := l.stabilizer(KindVertex, PauliX, [3]int{x, y, 0}, 0, plaquetteSites(x, y))
			if err != nil {
				return nil, nil, nil, nil, err
			}
			stabs = append(stabs, s)
		}
	}

	x0 := newPauliOp(l)
	for x := 1; x < 2*Lx; x += 2 {
		if err := x0.site(PauliX, [3]int{x, 1, 0}); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	z0 := newPauliOp(l)
	for y := 1; y < 2*Ly; y += 2 {
		if err := z0.site(PauliZ, [3]int{1, y, 0}); err != nil {
			return nil, nil, nil, nil, err
		}
	}

	return l, stabs, []*pauliOp{x0}, []*pauliOp{z0}, nil
}
