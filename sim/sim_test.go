package sim_test

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stabsim/code"
	"github.com/katalvlaran/stabsim/decoder"
	"github.com/katalvlaran/stabsim/sim"
)

const sampleInput = `{
  "comments": "threshold sweep",
  "ranges": {
    "label": "toric-xzzx",
    "code": {
      "model": "Toric2DCode",
      "parameters": [{"L_x": 4, "L_y": 4}, {"L_x": 6, "L_y": 6}]
    },
    "noise": {
      "model": "DeformedXZZXErrorModel",
      "parameters": [0.5, 0, 0.5]
    },
    "decoder": {
      "model": "BeliefPropagationOSDDecoder",
      "parameters": {"max_bp_iter": 10, "alpha": 0.4}
    },
    "probability": [0.05, 0.1, 0.15]
  }
}`

func TestReadInputExpand(t *testing.T) {
	spec, err := sim.ReadInput(strings.NewReader(sampleInput))
	require.NoError(t, err)
	assert.Equal(t, "threshold sweep", spec.Comments)

	cfgs, err := spec.Expand()
	require.NoError(t, err)
	require.Len(t, cfgs, 6)

	// Sizes outer, probabilities inner.
	first := cfgs[0]
	assert.Equal(t, "toric-xzzx", first.Label)
	assert.Equal(t, "Toric2DCode", first.Family)
	assert.Equal(t, 4, first.Lx)
	assert.Equal(t, code.DeformationXZZX, first.Deformation)
	assert.Equal(t, [3]float64{0.5, 0, 0.5}, first.Direction)
	assert.Equal(t, 0.05, first.Probability)
	assert.Equal(t, decoder.BeliefPropagationOSD, first.Decoder)
	assert.Equal(t, 10, first.DecoderOpts.MaxBPIter)
	assert.Equal(t, 0.4, first.DecoderOpts.Alpha)

	assert.Equal(t, 0.15, cfgs[2].Probability)
	assert.Equal(t, 6, cfgs[3].Lx)
	assert.Equal(t, 0.05, cfgs[3].Probability)
}

func TestReadInputMalformed(t *testing.T) {
	_, err := sim.ReadInput(strings.NewReader("{not json"))
	assert.ErrorIs(t, err, sim.ErrBadInput)
}

func TestExpandValidation(t *testing.T) {
	base := func() *sim.InputSpec {
		spec, err := sim.ReadInput(strings.NewReader(sampleInput))
		require.NoError(t, err)

		return spec
	}

	spec := base()
	spec.Ranges.Code.Parameters = nil
	_, err := spec.Expand()
	assert.ErrorIs(t, err, sim.ErrBadInput)

	spec = base()
	spec.Ranges.Probability = nil
	_, err = spec.Expand()
	assert.ErrorIs(t, err, sim.ErrBadInput)

	spec = base()
	spec.Ranges.Noise.Model = "AmplitudeDamping"
	_, err = spec.Expand()
	assert.ErrorIs(t, err, sim.ErrUnknownNoiseModel)

	spec = base()
	spec.Ranges.Decoder.Model = ""
	_, err = spec.Expand()
	assert.ErrorIs(t, err, sim.ErrBadInput)
}

func TestNoiseModels(t *testing.T) {
	models := sim.NoiseModels()
	assert.Equal(t, []string{"PauliErrorModel", "DeformedXZZXErrorModel", "DeformedXYErrorModel"}, models)
}

func matchingConfig() sim.RunConfig {
	return sim.RunConfig{
		Family:      code.Toric2D,
		Lx:          4,
		Ly:          4,
		Direction:   [3]float64{1, 0, 0},
		Probability: 0.08,
		Decoder:     decoder.Matching,
	}
}

func TestRunDeterministicAcrossWorkers(t *testing.T) {
	cfg := matchingConfig()
	const trials = 40

	collect := func(workers int) (sim.Stats, map[int]bool) {
		outcomes := make(map[int]bool, trials)
		stats, err := sim.Run(context.Background(), cfg, trials,
			sim.WithWorkers(workers),
			sim.WithSeed(7),
			sim.WithResultSink(func(r sim.Result) { outcomes[r.Trial] = r.Success }))
		require.NoError(t, err)

		return stats, outcomes
	}

	serial, serialOutcomes := collect(1)
	parallel, parallelOutcomes := collect(4)

	assert.Equal(t, trials, serial.Trials)
	assert.Equal(t, serial, parallel)
	assert.Equal(t, serialOutcomes, parallelOutcomes)
}

func TestRunVerboseResults(t *testing.T) {
	cfg := sim.RunConfig{
		Family:      code.Toric2D,
		Lx:          4,
		Ly:          4,
		Direction:   [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3},
		Probability: 0,
		Decoder:     decoder.BeliefPropagationOSD,
	}

	var results []sim.Result
	stats, err := sim.Run(context.Background(), cfg, 3,
		sim.WithWorkers(1),
		sim.WithVerboseResults(),
		sim.WithResultSink(func(r sim.Result) { results = append(results, r) }))
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Trials)
	assert.Equal(t, 0, stats.Failures)

	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Success)
		require.Len(t, r.Error, 64)
		require.Len(t, r.Correction, 64)
		assert.True(t, r.Error.IsZero())
		assert.True(t, r.Syndrome.IsZero())
		assert.True(t, r.Correction.IsZero())
	}
}

func TestRunBadConfig(t *testing.T) {
	cfg := matchingConfig()
	cfg.Family = "KitaevChain"
	_, err := sim.Run(context.Background(), cfg, 1)
	assert.ErrorIs(t, err, code.ErrUnknownFamily)

	cfg = matchingConfig()
	cfg.Decoder = "OracleDecoder"
	_, err = sim.Run(context.Background(), cfg, 1)
	assert.ErrorIs(t, err, decoder.ErrUnknownDecoder)

	cfg = matchingConfig()
	cfg.Direction = [3]float64{2, 0, 0}
	_, err = sim.Run(context.Background(), cfg, 1)
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := sim.Run(ctx, matchingConfig(), 1000, sim.WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
	assert.LessOrEqual(t, stats.Trials, 1000)
}

func TestStatsMath(t *testing.T) {
	s := sim.Stats{Trials: 400, Failures: 100}
	assert.InDelta(t, 0.25, s.FailureRate(), 1e-12)
	assert.InDelta(t, math.Sqrt(0.25*0.75/400), s.StdError(), 1e-12)

	assert.Zero(t, sim.Stats{}.FailureRate())
	assert.Zero(t, sim.Stats{}.StdError())
}
