package bsf

// Word-packed GF(2) elimination. Rows are copied into []uint64 bitsets so
// XOR row operations touch cols/64 words instead of individual entries.

const wordBits = 64

// packRows copies the matrix rows into bitsets wide enough for nCols bits
// plus one optional augmentation bit per row at position nCols.
func (m *Matrix) packRows(augment Vector) [][]uint64 {
	words := (m.nCols + 1 + wordBits - 1) / wordBits
	packed := make([][]uint64, m.nRows)
	for r, row := range m.rows {
		bits := make([]uint64, words)
		for _, c := range row {
			bits[c/wordBits] |= 1 << uint(c%wordBits)
		}
		if augment != nil && augment[r] != 0 {
			bits[m.nCols/wordBits] |= 1 << uint(m.nCols%wordBits)
		}
		packed[r] = bits
	}

	return packed
}

func bitAt(bits []uint64, c int) bool {
	return bits[c/wordBits]&(1<<uint(c%wordBits)) != 0
}

func xorRow(dst, src []uint64) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// Rank returns the GF(2) rank of the matrix.
// For a stabilizer parity-check matrix H over 2n columns, n − Rank(H) is the
// number of encoded logical qubits.
// Complexity: O(rows² · cols/64).
func (m *Matrix) Rank() int {
	packed := m.packRows(nil)
	rank := 0
	for c := 0; c < m.nCols; c++ {
		// Find the first remaining row with a set bit in column c.
		pivot := -1
		for r := rank; r < m.nRows; r++ {
			if bitAt(packed[r], c) {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		packed[rank], packed[pivot] = packed[pivot], packed[rank]
		for r := 0; r < m.nRows; r++ {
			if r != rank && bitAt(packed[r], c) {
				xorRow(packed[r], packed[rank])
			}
		}
		rank++
		if rank == m.nRows {
			break
		}
	}

	return rank
}

// SolveOrdered solves M·x = target over GF(2), choosing pivot columns by
// scanning colOrder left to right. colOrder must be a permutation of all
// column indices; columns earlier in the order are preferred as pivots, and
// every non-pivot column is fixed to zero in the returned solution.
//
// This is the ordered-statistics primitive: with columns ordered by
// decreasing error likelihood, the returned x is the OSD-0 solution.
//
// Returns:
//   - ErrDimensionMismatch if len(target) != Rows().
//   - ErrBadColumnOrder if colOrder is not a permutation of 0..Cols()-1.
//   - ErrInconsistentSystem if target is outside the column space of M.
//
// Determinism: pivot selection scans rows in ascending index order; equal
// inputs always yield the identical solution.
// Complexity: O(rows · cols · cols/64).
func (m *Matrix) SolveOrdered(target Vector, colOrder []int) (Vector, error) {
	if len(target) != m.nRows {
		return nil, ErrDimensionMismatch
	}
	if len(colOrder) != m.nCols {
		return nil, ErrBadColumnOrder
	}
	seen := make([]bool, m.nCols)
	for _, c := range colOrder {
		if c < 0 || c >= m.nCols || seen[c] {
			return nil, ErrBadColumnOrder
		}
		seen[c] = true
	}

	packed := m.packRows(target)
	used := make([]bool, m.nRows)
	pivotRow := make([]int, m.nCols)
	for c := range pivotRow {
		pivotRow[c] = -1
	}

	for _, c := range colOrder {
		pivot := -1
		for r := 0; r < m.nRows; r++ {
			if !used[r] && bitAt(packed[r], c) {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		used[pivot] = true
		pivotRow[c] = pivot
		for r := 0; r < m.nRows; r++ {
			if r != pivot && bitAt(packed[r], c) {
				xorRow(packed[r], packed[pivot])
			}
		}
	}

	// Every column has been eliminated from non-pivot rows, so any unused row
	// is all-zero on the coefficient side; a surviving augmentation bit means
	// the system has no solution.
	for r := 0; r < m.nRows; r++ {
		if !used[r] && bitAt(packed[r], m.nCols) {
			return nil, ErrInconsistentSystem
		}
	}

	x := NewVector(m.nCols)
	for c := 0; c < m.nCols; c++ {
		if pivotRow[c] >= 0 && bitAt(packed[pivotRow[c]], m.nCols) {
			x[c] = 1
		}
	}

	return x, nil
}
