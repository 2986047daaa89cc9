package logical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stabsim/bsf"
	"github.com/katalvlaran/stabsim/code"
	"github.com/katalvlaran/stabsim/logical"
)

func build(t *testing.T) *code.Code {
	t.Helper()
	c, err := code.Build("Toric2DCode", 3, 3, 1)
	require.NoError(t, err)

	return c
}

func TestInCodespace(t *testing.T) {
	c := build(t)

	ok, err := logical.InCodespace(c, bsf.NewVector(2*c.N))
	require.NoError(t, err)
	assert.True(t, ok)

	row, err := c.H().RowVector(0)
	require.NoError(t, err)
	ok, err = logical.InCodespace(c, row)
	require.NoError(t, err)
	assert.True(t, ok, "stabilizers are in the codespace")

	e := bsf.NewVector(2 * c.N)
	e[0] = 1
	ok, err = logical.InCodespace(c, e)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogicalErrorsDetectLogicalOperators(t *testing.T) {
	c := build(t)

	for i, lz := range c.LogicalsZ {
		effects, err := logical.LogicalErrors(c, lz)
		require.NoError(t, err)
		// A Z logical anticommutes with its X partner and nothing else.
		assert.Equal(t, 1, effects.Weight())
		assert.EqualValues(t, 1, effects[i])
	}
	for i, lx := range c.LogicalsX {
		effects, err := logical.LogicalErrors(c, lx)
		require.NoError(t, err)
		assert.Equal(t, 1, effects.Weight())
		assert.EqualValues(t, 1, effects[c.K+i])
	}
}

func TestSuccess(t *testing.T) {
	c := build(t)

	e := bsf.NewVector(2 * c.N)
	e[3] = 1
	e[c.N+5] = 1

	// Exact inverse succeeds.
	ok, err := logical.Success(c, e.Clone(), e)
	require.NoError(t, err)
	assert.True(t, ok)

	// Correction off by a stabilizer still succeeds.
	row, err := c.H().RowVector(2)
	require.NoError(t, err)
	corr, err := bsf.Xor(e, row)
	require.NoError(t, err)
	ok, err = logical.Success(c, corr, e)
	require.NoError(t, err)
	assert.True(t, ok)

	// Correction off by a logical operator fails silently in the
	// codespace but is caught by the logical check.
	corr, err = bsf.Xor(e, c.LogicalsZ[0])
	require.NoError(t, err)
	in, err := logical.InCodespace(c, c.LogicalsZ[0])
	require.NoError(t, err)
	assert.True(t, in)
	ok, err = logical.Success(c, corr, e)
	require.NoError(t, err)
	assert.False(t, ok)

	// Correction leaving a detectable residual fails.
	ok, err = logical.Success(c, bsf.NewVector(2*c.N), e)
	require.NoError(t, err)
	assert.False(t, ok)
}
