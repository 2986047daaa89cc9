package bsf_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/stabsim/bsf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVector_XorWeight verifies XOR arithmetic and Hamming weight.
func TestVector_XorWeight(t *testing.T) {
	a := bsf.Vector{1, 0, 1, 0}
	b := bsf.Vector{1, 1, 0, 0}

	sum, err := bsf.Xor(a, b)
	require.NoError(t, err)
	assert.Equal(t, bsf.Vector{0, 1, 1, 0}, sum, "entrywise XOR")
	assert.Equal(t, 2, sum.Weight())
	assert.False(t, sum.IsZero())
	assert.True(t, bsf.NewVector(4).IsZero())

	_, err = bsf.Xor(a, bsf.Vector{1})
	assert.ErrorIs(t, err, bsf.ErrDimensionMismatch)
}

// TestVector_SymplecticProduct checks the Pauli commutation rules in
// binary-symplectic form: X and Z on the same qubit anticommute, operators
// on disjoint qubits commute, and an operator commutes with itself.
func TestVector_SymplecticProduct(t *testing.T) {
	// n = 2 qubits, vectors of length 4: (x0 x1 | z0 z1).
	x0 := bsf.Vector{1, 0, 0, 0} // X on qubit 0
	z0 := bsf.Vector{0, 0, 1, 0} // Z on qubit 0
	z1 := bsf.Vector{0, 0, 0, 1} // Z on qubit 1
	y0 := bsf.Vector{1, 0, 1, 0} // Y on qubit 0

	cases := []struct {
		name string
		a, b bsf.Vector
		want uint8
	}{
		{"X0 vs Z0 anticommute", x0, z0, 1},
		{"X0 vs Z1 commute", x0, z1, 0},
		{"X0 vs X0 commute", x0, x0, 0},
		{"Y0 vs X0 anticommute", y0, x0, 1},
		{"Y0 vs Z0 anticommute", y0, z0, 1},
	}
	for _, tc := range cases {
		got, err := bsf.SymplecticProduct(tc.a, tc.b)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}

	_, err := bsf.SymplecticProduct(bsf.Vector{1, 0, 0}, bsf.Vector{0, 1, 0})
	assert.ErrorIs(t, err, bsf.ErrOddLength)
}

// TestMatrix_MulVec exercises the sparse GF(2) mat-vec product.
func TestMatrix_MulVec(t *testing.T) {
	// Rows: {0,1}, {1,2}, {} over 3 columns.
	m := bsf.NewMatrix(3, 3)
	require.NoError(t, m.Set(0, 0))
	require.NoError(t, m.Set(0, 1))
	require.NoError(t, m.Set(1, 1))
	require.NoError(t, m.Set(1, 2))

	out, err := m.MulVec(bsf.Vector{1, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, bsf.Vector{0, 1, 0}, out)

	_, err = m.MulVec(bsf.Vector{1})
	assert.ErrorIs(t, err, bsf.ErrDimensionMismatch)

	assert.ErrorIs(t, m.Set(3, 0), bsf.ErrIndexOutOfRange)
}

// TestMatrix_SwapHalves verifies the symplectic-to-decoding column swap.
func TestMatrix_SwapHalves(t *testing.T) {
	// 1 row, 4 columns: support {0,3} → swapped {1,2}.
	m := bsf.NewMatrix(1, 4)
	require.NoError(t, m.Set(0, 0))
	require.NoError(t, m.Set(0, 3))

	sw, err := m.SwapHalves()
	require.NoError(t, err)
	row, err := sw.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, row)

	odd := bsf.NewMatrix(1, 3)
	_, err = odd.SwapHalves()
	assert.ErrorIs(t, err, bsf.ErrOddLength)
}

// TestMatrix_Rank covers full-rank, rank-deficient and zero matrices.
func TestMatrix_Rank(t *testing.T) {
	m := bsf.NewMatrix(3, 3)
	require.NoError(t, m.Set(0, 0))
	require.NoError(t, m.Set(1, 1))
	require.NoError(t, m.Set(2, 0))
	require.NoError(t, m.Set(2, 1)) // row2 = row0 + row1
	assert.Equal(t, 2, m.Rank())

	assert.Equal(t, 0, bsf.NewMatrix(2, 5).Rank())

	id := bsf.NewMatrix(4, 4)
	for i := 0; i < 4; i++ {
		require.NoError(t, id.Set(i, i))
	}
	assert.Equal(t, 4, id.Rank())
}

// TestMatrix_SolveOrdered checks that the ordered solver reproduces the
// target exactly and prefers early columns of the order.
func TestMatrix_SolveOrdered(t *testing.T) {
	// M = [1 1 0; 0 1 1] over 3 columns.
	m := bsf.NewMatrix(2, 3)
	require.NoError(t, m.Set(0, 0))
	require.NoError(t, m.Set(0, 1))
	require.NoError(t, m.Set(1, 1))
	require.NoError(t, m.Set(1, 2))

	target := bsf.Vector{1, 0}

	x, err := m.SolveOrdered(target, []int{0, 1, 2})
	require.NoError(t, err)
	check, err := m.MulVec(x)
	require.NoError(t, err)
	assert.Equal(t, target, check, "solution must reproduce the target")
	// Columns 0 and 1 are preferred pivots: x = (1,0,0).
	assert.Equal(t, bsf.Vector{1, 0, 0}, x)

	// Reversed preference picks pivots from the tail of the order.
	x, err = m.SolveOrdered(target, []int{2, 1, 0})
	require.NoError(t, err)
	check, err = m.MulVec(x)
	require.NoError(t, err)
	assert.Equal(t, target, check)

	_, err = m.SolveOrdered(bsf.Vector{1}, []int{0, 1, 2})
	assert.ErrorIs(t, err, bsf.ErrDimensionMismatch)
	_, err = m.SolveOrdered(target, []int{0, 0, 1})
	assert.ErrorIs(t, err, bsf.ErrBadColumnOrder)
}

// TestMatrix_SolveOrdered_Inconsistent verifies detection of targets outside
// the column space.
func TestMatrix_SolveOrdered_Inconsistent(t *testing.T) {
	// Two identical rows: target (1,0) is unreachable.
	m := bsf.NewMatrix(2, 2)
	require.NoError(t, m.Set(0, 0))
	require.NoError(t, m.Set(1, 0))

	_, err := m.SolveOrdered(bsf.Vector{1, 0}, []int{0, 1})
	assert.ErrorIs(t, err, bsf.ErrInconsistentSystem)
}

// TestVector_JSON verifies the bit-array JSON form in both directions.
func TestVector_JSON(t *testing.T) {
	v := bsf.Vector{0, 1, 1, 0}
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "[0,1,1,0]", string(data))

	var back bsf.Vector
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, v, back)

	assert.Error(t, json.Unmarshal([]byte("[0,2]"), &back))
	assert.Error(t, json.Unmarshal([]byte(`"AQ=="`), &back))
}
