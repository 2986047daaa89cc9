package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stabsim/bsf"
	"github.com/katalvlaran/stabsim/code"
	"github.com/katalvlaran/stabsim/decoder"
	"github.com/katalvlaran/stabsim/logical"
	"github.com/katalvlaran/stabsim/noise"
	"github.com/katalvlaran/stabsim/syndrome"
)

func depolarizing(t *testing.T) *noise.PauliModel {
	t.Helper()
	m, err := noise.NewPauliModel(1.0/3, 1.0/3, 1.0/3)
	require.NoError(t, err)

	return m
}

func requireConsistent(t *testing.T, c *code.Code, corr, s bsf.Vector) {
	t.Helper()
	got, err := syndrome.Measure(c, corr)
	require.NoError(t, err)
	require.Equal(t, s, got, "correction must reproduce the syndrome")
}

func TestNewUnknownDecoder(t *testing.T) {
	c, err := code.Build("Toric2DCode", 3, 3, 1)
	require.NoError(t, err)

	_, err = decoder.New("SweepDecoder", c, depolarizing(t), 0.1)
	assert.ErrorIs(t, err, decoder.ErrUnknownDecoder)
}

func TestList(t *testing.T) {
	assert.Equal(t, []string{decoder.BeliefPropagationOSD, decoder.Matching}, decoder.List())
}

func TestBPOSDZeroSyndrome(t *testing.T) {
	c, err := code.Build("Toric2DCode", 3, 3, 1)
	require.NoError(t, err)
	d, err := decoder.New(decoder.BeliefPropagationOSD, c, depolarizing(t), 0.1)
	require.NoError(t, err)

	corr, err := d.Decode(bsf.NewVector(c.NumStabilizers()))
	require.NoError(t, err)
	assert.True(t, corr.IsZero())
}

func TestBPOSDSingleError(t *testing.T) {
	c, err := code.Build("Toric2DCode", 4, 4, 1)
	require.NoError(t, err)
	d, err := decoder.New(decoder.BeliefPropagationOSD, c, depolarizing(t), 0.05)
	require.NoError(t, err)

	for _, q := range []int{0, 5, c.N + 3, c.N + 17} {
		e := bsf.NewVector(2 * c.N)
		e[q] = 1
		s, err := syndrome.Measure(c, e)
		require.NoError(t, err)

		corr, err := d.Decode(s)
		require.NoError(t, err)
		requireConsistent(t, c, corr, s)

		ok, err := logical.Success(c, corr, e)
		require.NoError(t, err)
		assert.Truef(t, ok, "single error on bit %d must decode", q)
	}
}

func TestBPOSDConsistencyAcrossFamilies(t *testing.T) {
	model := depolarizing(t)
	for _, tc := range []struct {
		family     string
		lx, ly, lz int
	}{
		{"Toric2DCode", 3, 3, 1},
		{"RotatedPlanar2DCode", 3, 3, 1},
		{"Toric3DCode", 2, 2, 2},
		{"RhombicCode", 2, 2, 2},
		{"XCubeCode", 2, 2, 2},
	} {
		t.Run(tc.family, func(t *testing.T) {
			c, err := code.Build(tc.family, tc.lx, tc.ly, tc.lz)
			require.NoError(t, err)
			d, err := decoder.New(decoder.BeliefPropagationOSD, c, model, 0.1)
			require.NoError(t, err)

			for seed := int64(1); seed <= 10; seed++ {
				e, err := model.Generate(c, 0.1, noise.RNGFromSeed(seed))
				require.NoError(t, err)
				s, err := syndrome.Measure(c, e)
				require.NoError(t, err)

				corr, err := d.Decode(s)
				require.NoError(t, err)
				requireConsistent(t, c, corr, s)

				again, err := d.Decode(s)
				require.NoError(t, err)
				assert.Equal(t, corr, again, "decoding must be deterministic")
			}
		})
	}
}

func TestBPOSDMaxIterOneFallsBackToOSD(t *testing.T) {
	c, err := code.Build("Toric2DCode", 4, 4, 1)
	require.NoError(t, err)
	model := depolarizing(t)
	d, err := decoder.New(decoder.BeliefPropagationOSD, c, model, 0.3, decoder.WithMaxIter(1))
	require.NoError(t, err)

	// Dense error patterns defeat one round of BP; OSD must still return a
	// syndrome-consistent correction.
	for seed := int64(1); seed <= 5; seed++ {
		e, err := model.Generate(c, 0.3, noise.RNGFromSeed(seed))
		require.NoError(t, err)
		s, err := syndrome.Measure(c, e)
		require.NoError(t, err)

		corr, err := d.Decode(s)
		require.NoError(t, err)
		requireConsistent(t, c, corr, s)
	}
}

func TestBPOSDOptions(t *testing.T) {
	c, err := code.Build("Toric2DCode", 3, 3, 1)
	require.NoError(t, err)
	model := depolarizing(t)
	d, err := decoder.New(decoder.BeliefPropagationOSD, c, model, 0.1,
		decoder.WithAlpha(0.5), decoder.WithChannelUpdate(true), decoder.WithMaxIter(20))
	require.NoError(t, err)

	e, err := model.Generate(c, 0.1, noise.RNGFromSeed(3))
	require.NoError(t, err)
	s, err := syndrome.Measure(c, e)
	require.NoError(t, err)
	corr, err := d.Decode(s)
	require.NoError(t, err)
	requireConsistent(t, c, corr, s)
}

func TestMatchingTopology(t *testing.T) {
	model := depolarizing(t)

	c3, err := code.Build("Toric3DCode", 2, 2, 2)
	require.NoError(t, err)
	_, err = decoder.New(decoder.Matching, c3, model, 0.1)
	assert.ErrorIs(t, err, decoder.ErrDecodingTopology)

	deformed, err := code.Build("Toric2DCode", 3, 3, 1, code.WithDeformation(code.DeformationXZZX))
	require.NoError(t, err)
	_, err = decoder.New(decoder.Matching, deformed, model, 0.1)
	assert.ErrorIs(t, err, decoder.ErrDecodingTopology)
}

func TestMatchingSingleErrorExactCorrection(t *testing.T) {
	for _, family := range []string{"Toric2DCode", "Planar2DCode"} {
		t.Run(family, func(t *testing.T) {
			c, err := code.Build(family, 4, 4, 1)
			require.NoError(t, err)
			d, err := decoder.New(decoder.Matching, c, depolarizing(t), 0.1)
			require.NoError(t, err)

			// A single X or Z error fires its adjacent stabilizers; MWPM must
			// repair exactly the same qubit.
			for _, q := range []int{0, 3, c.N + 1, c.N + 7} {
				e := bsf.NewVector(2 * c.N)
				e[q] = 1
				s, err := syndrome.Measure(c, e)
				require.NoError(t, err)

				corr, err := d.Decode(s)
				require.NoError(t, err)
				assert.Equal(t, e, corr)
			}
		})
	}
}

func TestMatchingLowRateSuccess(t *testing.T) {
	model, err := noise.NewPauliModel(0.5, 0, 0.5)
	require.NoError(t, err)
	for _, family := range []string{"Toric2DCode", "Planar2DCode"} {
		t.Run(family, func(t *testing.T) {
			c, err := code.Build(family, 4, 4, 1)
			require.NoError(t, err)
			d, err := decoder.New(decoder.Matching, c, model, 0.05)
			require.NoError(t, err)

			successes := 0
			const trials = 40
			for seed := int64(1); seed <= trials; seed++ {
				e, err := model.Generate(c, 0.05, noise.RNGFromSeed(seed))
				require.NoError(t, err)
				s, err := syndrome.Measure(c, e)
				require.NoError(t, err)

				corr, err := d.Decode(s)
				require.NoError(t, err)
				requireConsistent(t, c, corr, s)

				again, err := d.Decode(s)
				require.NoError(t, err)
				assert.Equal(t, corr, again)

				ok, err := logical.Success(c, corr, e)
				require.NoError(t, err)
				if ok {
					successes++
				}
			}
			assert.Greater(t, successes, trials/2, "well below threshold, most trials decode")
		})
	}
}

func TestMatchingGreedyFallback(t *testing.T) {
	model, err := noise.NewPauliModel(1, 0, 0)
	require.NoError(t, err)
	c, err := code.Build("Toric2DCode", 6, 6, 1)
	require.NoError(t, err)
	d, err := decoder.New(decoder.Matching, c, model, 0.4)
	require.NoError(t, err)

	// p=0.4 bit-flip noise on 72 qubits produces well over exactMatchLimit
	// defects, exercising the greedy pairing.
	for seed := int64(1); seed <= 5; seed++ {
		e, err := model.Generate(c, 0.4, noise.RNGFromSeed(seed))
		require.NoError(t, err)
		s, err := syndrome.Measure(c, e)
		require.NoError(t, err)

		corr, err := d.Decode(s)
		require.NoError(t, err)
		requireConsistent(t, c, corr, s)
	}
}

func TestMatchingInconsistentSyndrome(t *testing.T) {
	c, err := code.Build("Toric2DCode", 3, 3, 1)
	require.NoError(t, err)
	d, err := decoder.New(decoder.Matching, c, depolarizing(t), 0.1)
	require.NoError(t, err)

	// A lone defect on a closed surface admits no pairing.
	s := bsf.NewVector(c.NumStabilizers())
	s[0] = 1
	_, err = d.Decode(s)
	assert.ErrorIs(t, err, decoder.ErrInconsistentSyndrome)
}
