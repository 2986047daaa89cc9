package bsf

import "sort"

// Set sets entry (r,c) to 1. Setting an already-set entry is a no-op.
// Returns ErrIndexOutOfRange if (r,c) lies outside the matrix shape.
// Complexity: O(log d + d) for row degree d (sorted insert).
func (m *Matrix) Set(r, c int) error {
	if r < 0 || r >= m.nRows || c < 0 || c >= m.nCols {
		return ErrIndexOutOfRange
	}
	row := m.rows[r]
	i := sort.SearchInts(row, c)
	if i < len(row) && row[i] == c {
		return nil
	}
	row = append(row, 0)
	copy(row[i+1:], row[i:])
	row[i] = c
	m.rows[r] = row

	return nil
}

// Get reports whether entry (r,c) is set.
// Returns ErrIndexOutOfRange if (r,c) lies outside the matrix shape.
// Complexity: O(log d).
func (m *Matrix) Get(r, c int) (bool, error) {
	if r < 0 || r >= m.nRows || c < 0 || c >= m.nCols {
		return false, ErrIndexOutOfRange
	}
	row := m.rows[r]
	i := sort.SearchInts(row, c)

	return i < len(row) && row[i] == c, nil
}

// Row returns the sorted column support of row r.
// The returned slice is internal storage and must not be modified.
func (m *Matrix) Row(r int) ([]int, error) {
	if r < 0 || r >= m.nRows {
		return nil, ErrIndexOutOfRange
	}

	return m.rows[r], nil
}

// RowVector materializes row r as a dense Vector.
// Complexity: O(cols).
func (m *Matrix) RowVector(r int) (Vector, error) {
	if r < 0 || r >= m.nRows {
		return nil, ErrIndexOutOfRange
	}
	v := NewVector(m.nCols)
	for _, c := range m.rows[r] {
		v[c] = 1
	}

	return v, nil
}

// MulVec computes M·v over GF(2): out[r] = XOR of v over the support of row r.
// Returns ErrDimensionMismatch if len(v) != Cols().
// Complexity: O(nnz).
func (m *Matrix) MulVec(v Vector) (Vector, error) {
	if len(v) != m.nCols {
		return nil, ErrDimensionMismatch
	}
	out := NewVector(m.nRows)
	for r, row := range m.rows {
		var acc uint8
		for _, c := range row {
			acc ^= v[c]
		}
		out[r] = acc
	}

	return out, nil
}

// SwapHalves returns a new matrix with column j exchanged with column n+j,
// where n = Cols()/2. Applied to a binary-symplectic parity-check matrix it
// yields the decoding-convention check matrix: plain mat-vec against an
// error vector then equals the per-row symplectic product.
// Returns ErrOddLength if the column count is odd.
// Complexity: O(nnz).
func (m *Matrix) SwapHalves() (*Matrix, error) {
	if m.nCols%2 != 0 {
		return nil, ErrOddLength
	}
	n := m.nCols / 2
	out := NewMatrix(m.nRows, m.nCols)
	for r, row := range m.rows {
		swapped := make([]int, 0, len(row))
		for _, c := range row {
			if c < n {
				swapped = append(swapped, c+n)
			} else {
				swapped = append(swapped, c-n)
			}
		}
		sort.Ints(swapped)
		out.rows[r] = swapped
	}

	return out, nil
}

// Dense exports the matrix as a [][]uint8 bit grid (row-major).
// Complexity: O(rows·cols).
func (m *Matrix) Dense() [][]uint8 {
	out := make([][]uint8, m.nRows)
	for r := range out {
		out[r] = make([]uint8, m.nCols)
		for _, c := range m.rows[r] {
			out[r][c] = 1
		}
	}

	return out
}
