package decoder

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/stabsim/bsf"
	"github.com/katalvlaran/stabsim/code"
)

// exactMatchLimit is the largest defect count matched by exact subset DP;
// beyond it the deterministic greedy pairing takes over.
const exactMatchLimit = 16

const infCost = int(^uint(0) >> 1)

// matchingDecoder implements MWPM decoding on 2D surface codes. Face
// (Z-type) defects are matched and repaired with X corrections, vertex
// (X-type) defects with Z corrections. Planar codes additionally let a
// defect terminate on the open boundary of its sector.
type matchingDecoder struct {
	c        *code.Code
	periodic bool
	ext      [2]int
}

func newMatching(c *code.Code) (*matchingDecoder, error) {
	if (c.Name != "Toric2DCode" && c.Name != "Planar2DCode") || c.Deformation != code.DeformationNone {
		return nil, fmt.Errorf("%w: matching supports undeformed Toric2DCode and Planar2DCode, got %s", ErrDecodingTopology, c.Name)
	}

	d := &matchingDecoder{c: c, periodic: c.Name == "Toric2DCode"}
	if d.periodic {
		d.ext = [2]int{2 * c.Size[0], 2 * c.Size[1]}
	} else {
		d.ext = [2]int{2*c.Size[0] - 1, 2*c.Size[1] - 1}
	}

	return d, nil
}

func (d *matchingDecoder) Name() string { return Matching }

// Decode matches the fired stabilizers of each type and lays X or Z
// corrections along deterministic shortest paths (x leg first, then y;
// periodic ties resolved in the positive direction).
func (d *matchingDecoder) Decode(s bsf.Vector) (bsf.Vector, error) {
	if len(s) != d.c.NumStabilizers() {
		return nil, bsf.ErrDimensionMismatch
	}

	corr := bsf.NewVector(2 * d.c.N)
	// Face defects move through X errors and exit via the y boundary;
	// vertex defects through Z errors via the x boundary.
	if err := d.decodeSector(s, code.PauliZ, 0, 1, corr); err != nil {
		return nil, err
	}
	if err := d.decodeSector(s, code.PauliX, d.c.N, 0, corr); err != nil {
		return nil, err
	}

	return corr, nil
}

// decodeSector matches the defects of one stabilizer type and XORs the
// resulting correction bits into corr at the given bit offset.
func (d *matchingDecoder) decodeSector(s bsf.Vector, typ code.Pauli, bitOffset, boundaryAxis int, corr bsf.Vector) error {
	var defects [][3]int
	for i, stab := range d.c.Stabilizers {
		if stab.Type == typ && s[i] == 1 {
			defects = append(defects, stab.Location)
		}
	}
	if len(defects) == 0 {
		return nil
	}

	cost := func(i, j int) int { return d.dist(defects[i], defects[j]) }
	bcost := func(i int) (int, bool) {
		if d.periodic {
			return 0, false
		}

		return d.boundarySteps(defects[i], boundaryAxis), true
	}

	var partner []int
	var err error
	if len(defects) <= exactMatchLimit {
		partner, err = matchExact(len(defects), cost, bcost)
	} else {
		partner, err = matchGreedy(len(defects), cost, bcost)
	}
	if err != nil {
		return err
	}

	for i, j := range partner {
		var qubits []int
		switch {
		case j == -1:
			qubits, err = d.boundaryPath(defects[i], boundaryAxis)
		case j > i:
			qubits, err = d.path(defects[i], defects[j])
		default:
			continue
		}
		if err != nil {
			return err
		}
		for _, q := range qubits {
			corr[bitOffset+q] ^= 1
		}
	}

	return nil
}

// dist is the lattice step distance between two defects of one sector.
func (d *matchingDecoder) dist(a, b [3]int) int {
	steps := 0
	for axis := 0; axis < 2; axis++ {
		diff := b[axis] - a[axis]
		if diff < 0 {
			diff = -diff
		}
		if d.periodic && d.ext[axis]-diff < diff {
			diff = d.ext[axis] - diff
		}
		steps += diff / 2
	}

	return steps
}

// boundarySteps is the step distance from a defect to the nearer open
// boundary along the sector's exit axis.
func (d *matchingDecoder) boundarySteps(loc [3]int, axis int) int {
	near := (loc[axis] + 1) / 2
	far := (d.ext[axis] - loc[axis]) / 2
	if far < near {
		return far
	}

	return near
}

// stepDir picks the walking direction along one axis: toward the target,
// through the periodic seam when that is strictly shorter, positive on ties.
func (d *matchingDecoder) stepDir(from, to, axis int) int {
	if !d.periodic {
		if to < from {
			return -1
		}

		return 1
	}
	fwd := ((to-from)%d.ext[axis] + d.ext[axis]) % d.ext[axis]
	if fwd <= d.ext[axis]-fwd {
		return 1
	}

	return -1
}

func (d *matchingDecoder) qubitAt(loc [3]int) (int, error) {
	if d.periodic {
		for axis := 0; axis < 2; axis++ {
			loc[axis] = ((loc[axis] % d.ext[axis]) + d.ext[axis]) % d.ext[axis]
		}
	}
	q, ok := d.c.QubitIndex(loc)
	if !ok {
		return 0, fmt.Errorf("%w: no qubit at %v", ErrDecodingTopology, loc)
	}

	return q, nil
}

// path walks from defect a to defect b, x leg first, and returns the
// qubits crossed.
func (d *matchingDecoder) path(a, b [3]int) ([]int, error) {
	var qubits []int
	cur := a
	for axis := 0; axis < 2; axis++ {
		dir := d.stepDir(cur[axis], b[axis], axis)
		for cur[axis] != b[axis] {
			mid := cur
			mid[axis] += dir
			q, err := d.qubitAt(mid)
			if err != nil {
				return nil, err
			}
			qubits = append(qubits, q)
			cur[axis] += 2 * dir
			if d.periodic {
				cur[axis] = ((cur[axis] % d.ext[axis]) + d.ext[axis]) % d.ext[axis]
			}
		}
	}

	return qubits, nil
}

// boundaryPath walks from a defect straight off the nearer boundary.
func (d *matchingDecoder) boundaryPath(loc [3]int, axis int) ([]int, error) {
	steps := d.boundarySteps(loc, axis)
	dir := -1
	if (d.ext[axis]-loc[axis])/2 < (loc[axis]+1)/2 {
		dir = 1
	}

	var qubits []int
	cur := loc
	for i := 0; i < steps; i++ {
		mid := cur
		mid[axis] += dir
		q, err := d.qubitAt(mid)
		if err != nil {
			return nil, err
		}
		qubits = append(qubits, q)
		cur[axis] += 2 * dir
	}

	return qubits, nil
}

// matchExact finds a minimum-cost pairing by subset DP. partner[i] is the
// matched defect, or -1 for a boundary termination.
func matchExact(n int, cost func(i, j int) int, bcost func(i int) (int, bool)) ([]int, error) {
	size := 1 << n
	dp := make([]int, size)
	choice := make([]int, size)
	for mask := 1; mask < size; mask++ {
		dp[mask] = infCost
		choice[mask] = -2
		i := bits.TrailingZeros(uint(mask))
		rest := mask &^ (1 << i)
		if bc, ok := bcost(i); ok && dp[rest] != infCost {
			dp[mask] = dp[rest] + bc
			choice[mask] = -1
		}
		for j := i + 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			r2 := rest &^ (1 << j)
			if dp[r2] == infCost {
				continue
			}
			if c := dp[r2] + cost(i, j); c < dp[mask] {
				dp[mask] = c
				choice[mask] = j
			}
		}
	}
	if dp[size-1] == infCost {
		return nil, fmt.Errorf("%w: odd defect count on a closed surface", ErrInconsistentSyndrome)
	}

	partner := make([]int, n)
	mask := size - 1
	for mask != 0 {
		i := bits.TrailingZeros(uint(mask))
		j := choice[mask]
		partner[i] = j
		mask &^= 1 << i
		if j >= 0 {
			partner[j] = i
			mask &^= 1 << j
		}
	}

	return partner, nil
}

// matchGreedy pairs defects by repeatedly taking the cheapest available
// pair or boundary exit, scanning in index order so ties are stable.
func matchGreedy(n int, cost func(i, j int) int, bcost func(i int) (int, bool)) ([]int, error) {
	partner := make([]int, n)
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
		partner[i] = -2
	}
	remaining := n

	for remaining > 0 {
		best, bi, bj := infCost, -1, -2
		for i := 0; i < n; i++ {
			if !alive[i] {
				continue
			}
			if bc, ok := bcost(i); ok && bc < best {
				best, bi, bj = bc, i, -1
			}
			for j := i + 1; j < n; j++ {
				if !alive[j] {
					continue
				}
				if c := cost(i, j); c < best {
					best, bi, bj = c, i, j
				}
			}
		}
		if bi == -1 {
			return nil, fmt.Errorf("%w: odd defect count on a closed surface", ErrInconsistentSyndrome)
		}
		partner[bi] = bj
		alive[bi] = false
		remaining--
		if bj >= 0 {
			partner[bj] = bi
			alive[bj] = false
			remaining--
		}
	}

	return partner, nil
}
