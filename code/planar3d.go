package code

// Planar 3D code: the toric 3D geometry cut open with rough boundaries at
// x = 0 and x = 2·Lx, smooth elsewhere. Only x-edges reach the rough
// boundaries, so the single X logical is a string along x and the single
// Z logical a membrane normal to x. k = 1.

func buildPlanar3D(size [3]int) (*lattice, []Stabilizer, []*pauliOp, []*pauliOp, error) {
	Lx, Ly, Lz := size[0], size[1], size[2]
	l := newLattice([3]int{2 * Lx, 2*Ly - 1, 2*Lz - 1}, false)

	for x := 1; x < 2*Lx; x += 2 {
		for y := 0; y < 2*Ly-1; y += 2 {
			for z := 0; z < 2*Lz-1; z += 2 {
				l.addQubit([3]int{x, y, z}, AxisX)
			}
		}
	}
	for x := 2; x < 2*Lx-1; x += 2 {
		for y := 1; y < 2*Ly-1; y += 2 {
			for z := 0; z < 2*Lz-1; z += 2 {
				l.addQubit([3]int{x, y, z}, AxisY)
			}
		}
	}
	for x := 2; x < 2*Lx-1; x += 2 {
		for y := 0; y < 2*Ly-1; y += 2 {
			for z := 1; z < 2*Lz-1; z += 2 {
				l.addQubit([3]int{x, y, z}, AxisZ)
			}
		}
	}

	var stabs []Stabilizer
	for x := 2; x < 2*Lx-1; x += 2 {
		for y := 0; y < 2*Ly-1; y += 2 {
			for z := 0; z < 2*Lz-1; z += 2 {
				loc := [3]int{x, y, z}
				s, err := l.stabilizer(KindVertex, PauliZ, loc, 0, starSites(loc))
				if err != nil {
					return nil, nil, nil, nil, err
				}
				stabs = append(stabs, s)
			}
		}
	}

	addFace := func(loc [3]int, normal int) error {
		a, b := (normal+1)%3, (normal+2)%3
		s, err := l.stabilizer(KindFace, PauliX, loc, normal, ringSites(loc, a, b))
		if err != nil {
			return err
		}
		stabs = append(stabs, s)

		return nil
	}
	for x := 1; x < 2*Lx; x += 2 { // xy faces
		for y := 1; y < 2*Ly-2; y += 2 {
			for z := 0; z < 2*Lz-1; z += 2 {
				if err := addFace([3]int{x, y, z}, 2); err != nil {
					return nil, nil, nil, nil, err
				}
			}
		}
	}
	for x := 1; x < 2*Lx; x += 2 { // xz faces
		for y := 0; y < 2*Ly-1; y += 2 {
			for z := 1; z < 2*Lz-2; z += 2 {
				if err := addFace([3]int{x, y, z}, 1); err != nil {
					return nil, nil, nil, nil, err
				}
			}
		}
	}
	for x := 2; x < 2*Lx-1; x += 2 { // yz faces
		for y := 1; y < 2*Ly-2; y += 2 {
			for z := 1; z < 2*Lz-2; z += 2 {
				if err := addFace([3]int{x, y, z}, 0); err != nil {
					return nil, nil, nil, nil, err
				}
			}
		}
	}

	x0 := newPauliOp(l)
	for x := 1; x < 2*Lx; x += 2 {
		if err := x0.site(PauliX, [3]int{x, 0, 0}); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	z0 := newPauliOp(l)
	for y := 0; y < 2*Ly-1; y += 2 {
		for z := 0; z < 2*Lz-1; z += 2 {
			if err := z0.site(PauliZ, [3]int{1, y, z}); err != nil {
				return nil, nil, nil, nil, err
			}
		}
	}

	return l, stabs, []*pauliOp{x0}, []*pauliOp{z0}, nil
}
