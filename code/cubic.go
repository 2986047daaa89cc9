package code

// Shared geometry for the cubic-lattice families. All 3D families place
// qubits on edges of a (doubled-coordinate) cubic lattice: an edge has
// exactly one odd coordinate, and that coordinate names its axis.

var unit = [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// addCubicEdges enumerates the edge qubits of a periodic cubic lattice in
// orientation-major order: all x-edges, then y-edges, then z-edges, each
// block scanned x, then y, then z.
func addCubicEdges(l *lattice) {
	d := l.extent
	for a := 0; a < 3; a++ {
		lo := [3]int{0, 0, 0}
		lo[a] = 1
		for x := lo[0]; x < d[0]; x += 2 {
			for y := lo[1]; y < d[1]; y += 2 {
				for z := lo[2]; z < d[2]; z += 2 {
					l.addQubit([3]int{x, y, z}, Axis(a))
				}
			}
		}
	}
}

// starSites are the six edges incident to a vertex.
func starSites(loc [3]int) [][3]int {
	sites := make([][3]int, 0, 6)
	for a := 0; a < 3; a++ {
		sites = append(sites,
			[3]int{loc[0] + unit[a][0], loc[1] + unit[a][1], loc[2] + unit[a][2]},
			[3]int{loc[0] - unit[a][0], loc[1] - unit[a][1], loc[2] - unit[a][2]},
		)
	}

	return sites
}

// ringSites are the four edges around a face or a vertex cross, spanning
// the two axes a and b.
func ringSites(loc [3]int, a, b int) [][3]int {
	return [][3]int{
		{loc[0] + unit[a][0], loc[1] + unit[a][1], loc[2] + unit[a][2]},
		{loc[0] - unit[a][0], loc[1] - unit[a][1], loc[2] - unit[a][2]},
		{loc[0] + unit[b][0], loc[1] + unit[b][1], loc[2] + unit[b][2]},
		{loc[0] - unit[b][0], loc[1] - unit[b][1], loc[2] - unit[b][2]},
	}
}

// cubeDeltas locate the twelve edges of a cube relative to its center.
var cubeDeltas = [12][3]int{
	{1, 1, 0}, {-1, -1, 0}, {1, -1, 0}, {-1, 1, 0},
	{0, 1, 1}, {0, -1, -1}, {0, 1, -1}, {0, -1, 1},
	{1, 0, 1}, {-1, 0, -1}, {1, 0, -1}, {-1, 0, 1},
}

func cubeSites(loc [3]int) [][3]int {
	sites := make([][3]int, 0, 12)
	for _, d := range cubeDeltas {
		sites = append(sites, [3]int{loc[0] + d[0], loc[1] + d[1], loc[2] + d[2]})
	}

	return sites
}
