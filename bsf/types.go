// Package bsf defines core types and sentinel errors for GF(2)
// binary-symplectic linear algebra.
package bsf

import "errors"

// Sentinel errors for bsf operations.
var (
	// ErrDimensionMismatch indicates operands of incompatible lengths or shapes.
	ErrDimensionMismatch = errors.New("bsf: dimension mismatch")
	// ErrOddLength indicates a vector that cannot be split into (X|Z) halves.
	ErrOddLength = errors.New("bsf: symplectic vector length must be even")
	// ErrIndexOutOfRange indicates a row or column index outside the matrix shape.
	ErrIndexOutOfRange = errors.New("bsf: index out of range")
	// ErrBadColumnOrder indicates a column-order slice that is not a valid
	// subset/permutation of the matrix columns.
	ErrBadColumnOrder = errors.New("bsf: invalid column order")
	// ErrInconsistentSystem indicates a linear system M·x = t with t outside
	// the column space of M.
	ErrInconsistentSystem = errors.New("bsf: inconsistent linear system")
)

// Vector is a dense GF(2) vector; every entry is 0 or 1.
// For binary-symplectic use the length is 2n: entries [0,n) are the X-part,
// entries [n,2n) the Z-part.
type Vector []uint8

// Matrix is a sparse GF(2) matrix stored as sorted per-row column supports.
// The zero value is not usable; construct with NewMatrix.
//
// Memory: O(rows + nnz). Row supports are kept sorted and duplicate-free,
// which keeps mat-vec products and dense export deterministic.
type Matrix struct {
	nRows, nCols int
	rows         [][]int
}

// NewMatrix returns an all-zero nRows×nCols sparse matrix.
func NewMatrix(nRows, nCols int) *Matrix {
	return &Matrix{
		nRows: nRows,
		nCols: nCols,
		rows:  make([][]int, nRows),
	}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.nRows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.nCols }
