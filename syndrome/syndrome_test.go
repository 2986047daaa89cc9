package syndrome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stabsim/bsf"
	"github.com/katalvlaran/stabsim/code"
	"github.com/katalvlaran/stabsim/syndrome"
)

func TestMeasureZeroError(t *testing.T) {
	c, err := code.Build("Toric2DCode", 3, 3, 1)
	require.NoError(t, err)

	s, err := syndrome.Measure(c, bsf.NewVector(2*c.N))
	require.NoError(t, err)
	assert.Len(t, s, c.NumStabilizers())
	assert.True(t, s.IsZero())
}

func TestMeasureStabilizerIsInvisible(t *testing.T) {
	c, err := code.Build("Toric2DCode", 3, 3, 1)
	require.NoError(t, err)

	// A stabilizer generator has trivial syndrome and trivial logical action.
	row, err := c.H().RowVector(0)
	require.NoError(t, err)
	s, err := syndrome.Measure(c, row)
	require.NoError(t, err)
	assert.True(t, s.IsZero())
}

func TestMeasureSingleXError(t *testing.T) {
	c, err := code.Build("Toric2DCode", 3, 3, 1)
	require.NoError(t, err)

	// An X error on one edge trips exactly the two adjacent Z plaquettes.
	e := bsf.NewVector(2 * c.N)
	e[0] = 1
	s, err := syndrome.Measure(c, e)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Weight())
	for i := range c.Stabilizers {
		if s[i] == 1 {
			assert.Equal(t, code.PauliZ, c.Stabilizers[i].Type)
		}
	}

	// The X sub-syndrome stays dark; the Z sub-syndrome carries both bits.
	sx, err := syndrome.ExtractX(c, s)
	require.NoError(t, err)
	assert.True(t, sx.IsZero())
	sz, err := syndrome.ExtractZ(c, s)
	require.NoError(t, err)
	assert.Equal(t, 2, sz.Weight())
}

func TestExtractPartition(t *testing.T) {
	c, err := code.Build("Planar3DCode", 2, 2, 2)
	require.NoError(t, err)

	s := bsf.NewVector(c.NumStabilizers())
	for i := range s {
		s[i] = uint8(i % 2)
	}
	sx, err := syndrome.ExtractX(c, s)
	require.NoError(t, err)
	sz, err := syndrome.ExtractZ(c, s)
	require.NoError(t, err)
	assert.Equal(t, c.NumStabilizers(), len(sx)+len(sz))

	ix := syndrome.Indices(c, code.PauliX)
	require.Len(t, ix, len(sx))
	for j, i := range ix {
		assert.Equal(t, s[i], sx[j])
	}

	_, err = syndrome.ExtractX(c, bsf.NewVector(3))
	assert.ErrorIs(t, err, bsf.ErrDimensionMismatch)
}
